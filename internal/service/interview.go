package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/interviewsim/interview-server/internal/service/mappers"
	"github.com/interviewsim/interview-server/internal/store"
	"github.com/interviewsim/interview-server/internal/store/model"
	"github.com/interviewsim/interview-server/pkg/metrics"
	"go.uber.org/zap"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

type InterviewService struct {
	store  store.Store
	logger *zap.SugaredLogger
}

func NewInterviewService(store store.Store) *InterviewService {
	return &InterviewService{
		store:  store,
		logger: zap.S().Named("interview_service"),
	}
}

// InterviewFilter represents filtering and paging options for listing interviews.
type InterviewFilter struct {
	UserID string
	Status string
	Limit  int
	Cursor *uuid.UUID
}

func NewInterviewFilter() *InterviewFilter {
	return &InterviewFilter{}
}

func (f *InterviewFilter) WithUserID(userID string) *InterviewFilter {
	f.UserID = userID
	return f
}

func (f *InterviewFilter) WithStatus(status string) *InterviewFilter {
	f.Status = status
	return f
}

func (f *InterviewFilter) WithLimit(limit int) *InterviewFilter {
	f.Limit = limit
	return f
}

func (f *InterviewFilter) WithCursor(cursor *uuid.UUID) *InterviewFilter {
	f.Cursor = cursor
	return f
}

func (s *InterviewService) CreateInterview(ctx context.Context, form mappers.InterviewCreateForm) (*model.Interview, error) {
	interview := form.ToModel()

	created, err := s.store.Interview().Create(ctx, interview)
	if err != nil {
		return nil, fmt.Errorf("failed to create interview: %w", err)
	}

	metrics.IncreaseInterviewsStartedMetric()
	s.logger.Infow("interview created", "interview_id", created.ID, "user_id", created.UserID)
	return created, nil
}

func (s *InterviewService) GetInterview(ctx context.Context, id uuid.UUID) (*model.Interview, error) {
	interview, err := s.store.Interview().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrInterviewNotFound(id)
		}
		return nil, fmt.Errorf("failed to get interview: %w", err)
	}
	return interview, nil
}

func (s *InterviewService) ListInterviews(ctx context.Context, filter *InterviewFilter) (model.InterviewList, *uuid.UUID, error) {
	storeFilter := store.NewInterviewQueryFilter()
	if filter.UserID != "" {
		storeFilter = storeFilter.ByUserID(filter.UserID)
	}
	if filter.Status != "" {
		storeFilter = storeFilter.ByStatus(filter.Status)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	page := store.NewPageOptions().WithLimit(limit).WithCursor(filter.Cursor)

	interviews, nextCursor, err := s.store.Interview().List(ctx, storeFilter, page)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) && filter.Cursor != nil {
			return nil, nil, NewErrInterviewNotFound(*filter.Cursor)
		}
		return nil, nil, fmt.Errorf("failed to list interviews: %w", err)
	}

	return interviews, nextCursor, nil
}

func (s *InterviewService) UpdateInterview(ctx context.Context, form mappers.InterviewUpdateForm) (*model.Interview, error) {
	existing, err := s.store.Interview().Get(ctx, form.ID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrInterviewNotFound(form.ID)
		}
		return nil, fmt.Errorf("failed to get interview: %w", err)
	}

	update := model.Interview{ID: form.ID}
	if form.Title != nil {
		update.Title = *form.Title
	}
	if form.Description != nil {
		update.Description = form.Description
	}
	if form.Status != nil && *form.Status != existing.Status {
		// Status moves forward only. Terminal states stay terminal.
		if existing.Closed() {
			return nil, NewErrInvalidStatusTransition(form.ID, existing.Status, *form.Status)
		}
		update.Status = *form.Status
	}

	updated, err := s.store.Interview().Update(ctx, update)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrInterviewNotFound(form.ID)
		}
		return nil, fmt.Errorf("failed to update interview: %w", err)
	}

	return updated, nil
}

func (s *InterviewService) DeleteInterview(ctx context.Context, id uuid.UUID) error {
	if _, err := s.store.Interview().Get(ctx, id); err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return NewErrInterviewNotFound(id)
		}
		return fmt.Errorf("failed to get interview: %w", err)
	}

	if err := s.store.Interview().Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete interview: %w", err)
	}

	s.logger.Infow("interview deleted", "interview_id", id)
	return nil
}
