package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/interviewsim/interview-server/internal/service/mappers"
	"github.com/interviewsim/interview-server/internal/store"
	"github.com/interviewsim/interview-server/internal/store/model"
)

type CompanyService struct {
	store store.Store
}

func NewCompanyService(store store.Store) *CompanyService {
	return &CompanyService{store: store}
}

func (s *CompanyService) ListCompanies(ctx context.Context) (model.CompanyList, error) {
	companies, err := s.store.Company().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}

func (s *CompanyService) GetCompany(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	company, err := s.store.Company().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrCompanyNotFound(id)
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return company, nil
}

func (s *CompanyService) CreateCompany(ctx context.Context, form mappers.CompanyCreateForm) (*model.Company, error) {
	company, err := s.store.Company().Create(ctx, form.ToModel())
	if err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	return company, nil
}

func (s *CompanyService) UpdateCompany(ctx context.Context, form mappers.CompanyUpdateForm) (*model.Company, error) {
	update := model.Company{ID: form.ID}
	if form.Name != nil {
		update.Name = *form.Name
	}
	if form.Logo != nil {
		update.Logo = form.Logo
	}

	company, err := s.store.Company().Update(ctx, update)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrCompanyNotFound(form.ID)
		}
		return nil, fmt.Errorf("failed to update company: %w", err)
	}
	return company, nil
}

func (s *CompanyService) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	if _, err := s.store.Company().Get(ctx, id); err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return NewErrCompanyNotFound(id)
		}
		return fmt.Errorf("failed to get company: %w", err)
	}

	if err := s.store.Company().Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	return nil
}
