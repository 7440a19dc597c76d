package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/interviewsim/interview-server/internal/store/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Company interface {
	InitialMigration() error
	List(ctx context.Context) (model.CompanyList, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Company, error)
	Create(ctx context.Context, company model.Company) (*model.Company, error)
	Update(ctx context.Context, company model.Company) (*model.Company, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CompanyStore struct {
	db *gorm.DB
}

// Make sure we conform to Company interface
var _ Company = (*CompanyStore)(nil)

func NewCompanyStore(db *gorm.DB) Company {
	return &CompanyStore{db: db}
}

func (s *CompanyStore) InitialMigration() error {
	return s.db.AutoMigrate(&model.Company{})
}

func (s *CompanyStore) List(ctx context.Context) (model.CompanyList, error) {
	var companies model.CompanyList
	if result := s.getDB(ctx).Model(&companies).Order("name ASC").Find(&companies); result.Error != nil {
		return nil, result.Error
	}
	return companies, nil
}

func (s *CompanyStore) Get(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	var company model.Company
	result := s.getDB(ctx).Preload("Users").First(&company, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, result.Error
	}
	return &company, nil
}

func (s *CompanyStore) Create(ctx context.Context, company model.Company) (*model.Company, error) {
	result := s.getDB(ctx).Clauses(clause.Returning{}).Create(&company)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, result.Error
	}
	return &company, nil
}

func (s *CompanyStore) Update(ctx context.Context, company model.Company) (*model.Company, error) {
	var existing model.Company
	if err := s.getDB(ctx).First(&existing, "id = ?", company.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	if err := s.getDB(ctx).Model(&existing).Updates(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, err
	}

	return s.Get(ctx, company.ID)
}

func (s *CompanyStore) Delete(ctx context.Context, id uuid.UUID) error {
	result := s.getDB(ctx).Unscoped().Delete(&model.Company{}, "id = ?", id)
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}
	return nil
}

func (s *CompanyStore) getDB(ctx context.Context) *gorm.DB {
	tx := FromContext(ctx)
	if tx != nil {
		return tx
	}
	return s.db
}
