package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/interviewsim/interview-server/internal/store/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Interview interface {
	InitialMigration() error
	List(ctx context.Context, filter *InterviewQueryFilter, page *PageOptions) (model.InterviewList, *uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Interview, error)
	Create(ctx context.Context, interview model.Interview) (*model.Interview, error)
	Update(ctx context.Context, interview model.Interview) (*model.Interview, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type InterviewStore struct {
	db *gorm.DB
}

// Make sure we conform to Interview interface
var _ Interview = (*InterviewStore)(nil)

func NewInterviewStore(db *gorm.DB) Interview {
	return &InterviewStore{db: db}
}

func (s *InterviewStore) InitialMigration() error {
	return s.db.AutoMigrate(&model.Interview{})
}

// List orders by creation time descending and paginates with a keyset
// cursor over (created_at, id). The cursor row is included in its page.
func (s *InterviewStore) List(ctx context.Context, filter *InterviewQueryFilter, page *PageOptions) (model.InterviewList, *uuid.UUID, error) {
	var interviews model.InterviewList

	tx := s.getDB(ctx).Model(&interviews)
	if filter != nil {
		for _, fn := range filter.QueryFn {
			tx = fn(tx)
		}
	}

	limit := 0
	if page != nil {
		limit = page.Limit
		if page.Cursor != nil {
			var cursorRow model.Interview
			if err := s.getDB(ctx).First(&cursorRow, "id = ?", *page.Cursor).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, nil, ErrRecordNotFound
				}
				return nil, nil, err
			}
			tx = tx.Where("created_at < ? OR (created_at = ? AND id <= ?)",
				cursorRow.CreatedAt, cursorRow.CreatedAt, cursorRow.ID)
		}
	}

	tx = tx.Order("created_at DESC").Order("id DESC")
	if limit > 0 {
		tx = tx.Limit(limit + 1)
	}

	if result := tx.Find(&interviews); result.Error != nil {
		return nil, nil, result.Error
	}

	var nextCursor *uuid.UUID
	if limit > 0 && len(interviews) > limit {
		next := interviews[limit].ID
		interviews = interviews[:limit]
		nextCursor = &next
	}

	if err := s.fillConversationCounts(ctx, interviews); err != nil {
		return nil, nil, err
	}

	return interviews, nextCursor, nil
}

func (s *InterviewStore) Get(ctx context.Context, id uuid.UUID) (*model.Interview, error) {
	var interview model.Interview
	result := s.getDB(ctx).Preload("Evaluation").First(&interview, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, result.Error
	}

	if err := s.getDB(ctx).Model(&model.Conversation{}).
		Where("interview_id = ?", id).
		Count(&interview.ConversationCount).Error; err != nil {
		return nil, err
	}

	return &interview, nil
}

func (s *InterviewStore) Create(ctx context.Context, interview model.Interview) (*model.Interview, error) {
	result := s.getDB(ctx).Clauses(clause.Returning{}).Create(&interview)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, result.Error
	}
	return &interview, nil
}

func (s *InterviewStore) Update(ctx context.Context, interview model.Interview) (*model.Interview, error) {
	var existing model.Interview
	if err := s.getDB(ctx).First(&existing, "id = ?", interview.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	if err := s.getDB(ctx).Model(&existing).Updates(&interview).Error; err != nil {
		return nil, err
	}

	return s.Get(ctx, interview.ID)
}

func (s *InterviewStore) Delete(ctx context.Context, id uuid.UUID) error {
	result := s.getDB(ctx).Unscoped().Select(clause.Associations).Delete(&model.Interview{ID: id})
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}
	return nil
}

// fillConversationCounts resolves per-interview turn counts with one
// grouped query instead of a query per row.
func (s *InterviewStore) fillConversationCounts(ctx context.Context, interviews model.InterviewList) error {
	if len(interviews) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(interviews))
	for _, interview := range interviews {
		ids = append(ids, interview.ID)
	}

	var rows []struct {
		InterviewID uuid.UUID
		Count       int64
	}
	if err := s.getDB(ctx).Model(&model.Conversation{}).
		Select("interview_id, COUNT(*) as count").
		Where("interview_id IN ?", ids).
		Group("interview_id").
		Scan(&rows).Error; err != nil {
		return err
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.InterviewID] = row.Count
	}
	for i := range interviews {
		interviews[i].ConversationCount = counts[interviews[i].ID]
	}
	return nil
}

func (s *InterviewStore) getDB(ctx context.Context) *gorm.DB {
	tx := FromContext(ctx)
	if tx != nil {
		return tx
	}
	return s.db
}
