package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/interviewsim/interview-server/internal/store/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Conversation interface {
	InitialMigration() error
	List(ctx context.Context, filter *ConversationQueryFilter, page *PageOptions) (model.ConversationList, *uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Conversation, error)
	Create(ctx context.Context, conversation model.Conversation) (*model.Conversation, error)
}

type ConversationStore struct {
	db *gorm.DB
}

// Make sure we conform to Conversation interface
var _ Conversation = (*ConversationStore)(nil)

func NewConversationStore(db *gorm.DB) Conversation {
	return &ConversationStore{db: db}
}

func (s *ConversationStore) InitialMigration() error {
	return s.db.AutoMigrate(&model.Conversation{})
}

// List orders by timestamp ascending, which is the canonical transcript
// order, and paginates with a keyset cursor over (timestamp, id).
func (s *ConversationStore) List(ctx context.Context, filter *ConversationQueryFilter, page *PageOptions) (model.ConversationList, *uuid.UUID, error) {
	var conversations model.ConversationList

	tx := s.getDB(ctx).Model(&conversations)
	if filter != nil {
		for _, fn := range filter.QueryFn {
			tx = fn(tx)
		}
	}

	limit := 0
	if page != nil {
		limit = page.Limit
		if page.Cursor != nil {
			var cursorRow model.Conversation
			if err := s.getDB(ctx).First(&cursorRow, "id = ?", *page.Cursor).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, nil, ErrRecordNotFound
				}
				return nil, nil, err
			}
			tx = tx.Where("timestamp > ? OR (timestamp = ? AND id >= ?)",
				cursorRow.Timestamp, cursorRow.Timestamp, cursorRow.ID)
		}
	}

	tx = tx.Order("timestamp ASC").Order("id ASC")
	if limit > 0 {
		tx = tx.Limit(limit + 1)
	}

	if result := tx.Find(&conversations); result.Error != nil {
		return nil, nil, result.Error
	}

	var nextCursor *uuid.UUID
	if limit > 0 && len(conversations) > limit {
		next := conversations[limit].ID
		conversations = conversations[:limit]
		nextCursor = &next
	}

	return conversations, nextCursor, nil
}

func (s *ConversationStore) Get(ctx context.Context, id uuid.UUID) (*model.Conversation, error) {
	var conversation model.Conversation
	result := s.getDB(ctx).First(&conversation, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, result.Error
	}
	return &conversation, nil
}

func (s *ConversationStore) Create(ctx context.Context, conversation model.Conversation) (*model.Conversation, error) {
	result := s.getDB(ctx).Clauses(clause.Returning{}).Create(&conversation)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, result.Error
	}
	return &conversation, nil
}

func (s *ConversationStore) getDB(ctx context.Context) *gorm.DB {
	tx := FromContext(ctx)
	if tx != nil {
		return tx
	}
	return s.db
}
