package store

import (
	"context"

	"gorm.io/gorm"
)

type Store interface {
	NewTransactionContext(ctx context.Context) (context.Context, error)
	Interview() Interview
	Conversation() Conversation
	Evaluation() Evaluation
	Company() Company
	User() User
	InitialMigration() error
	Close() error
}

type DataStore struct {
	db           *gorm.DB
	interview    Interview
	conversation Conversation
	evaluation   Evaluation
	company      Company
	user         User
}

func NewStore(db *gorm.DB) Store {
	return &DataStore{
		interview:    NewInterviewStore(db),
		conversation: NewConversationStore(db),
		evaluation:   NewEvaluationStore(db),
		company:      NewCompanyStore(db),
		user:         NewUserStore(db),
		db:           db,
	}
}

func (s *DataStore) NewTransactionContext(ctx context.Context) (context.Context, error) {
	return newTransactionContext(ctx, s.db)
}

func (s *DataStore) Interview() Interview {
	return s.interview
}

func (s *DataStore) Conversation() Conversation {
	return s.conversation
}

func (s *DataStore) Evaluation() Evaluation {
	return s.evaluation
}

func (s *DataStore) Company() Company {
	return s.company
}

func (s *DataStore) User() User {
	return s.user
}

func (s *DataStore) InitialMigration() error {
	if err := s.interview.InitialMigration(); err != nil {
		return err
	}
	if err := s.conversation.InitialMigration(); err != nil {
		return err
	}
	if err := s.evaluation.InitialMigration(); err != nil {
		return err
	}
	if err := s.company.InitialMigration(); err != nil {
		return err
	}
	return s.user.InitialMigration()
}

func (s *DataStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
