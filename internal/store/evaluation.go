package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/interviewsim/interview-server/internal/store/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Evaluation interface {
	InitialMigration() error
	List(ctx context.Context, filter *EvaluationQueryFilter) (model.EvaluationList, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Evaluation, error)
	GetByInterviewID(ctx context.Context, interviewID uuid.UUID) (*model.Evaluation, error)
	Create(ctx context.Context, evaluation model.Evaluation) (*model.Evaluation, error)
}

type EvaluationStore struct {
	db *gorm.DB
}

// Make sure we conform to Evaluation interface
var _ Evaluation = (*EvaluationStore)(nil)

func NewEvaluationStore(db *gorm.DB) Evaluation {
	return &EvaluationStore{db: db}
}

func (s *EvaluationStore) InitialMigration() error {
	return s.db.AutoMigrate(&model.Evaluation{})
}

func (s *EvaluationStore) List(ctx context.Context, filter *EvaluationQueryFilter) (model.EvaluationList, error) {
	var evaluations model.EvaluationList
	tx := s.getDB(ctx).Model(&evaluations).Order("created_at DESC").Preload("Interview")

	if filter != nil {
		for _, fn := range filter.QueryFn {
			tx = fn(tx)
		}
	}

	if result := tx.Find(&evaluations); result.Error != nil {
		return nil, result.Error
	}
	return evaluations, nil
}

func (s *EvaluationStore) Get(ctx context.Context, id uuid.UUID) (*model.Evaluation, error) {
	var evaluation model.Evaluation
	result := s.getDB(ctx).Preload("Interview").First(&evaluation, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, result.Error
	}
	return &evaluation, nil
}

func (s *EvaluationStore) GetByInterviewID(ctx context.Context, interviewID uuid.UUID) (*model.Evaluation, error) {
	var evaluation model.Evaluation
	result := s.getDB(ctx).First(&evaluation, "interview_id = ?", interviewID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, result.Error
	}
	return &evaluation, nil
}

// Create relies on the unique index on interview_id: a concurrent insert
// for the same interview surfaces as ErrDuplicateKey.
func (s *EvaluationStore) Create(ctx context.Context, evaluation model.Evaluation) (*model.Evaluation, error) {
	result := s.getDB(ctx).Clauses(clause.Returning{}).Create(&evaluation)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, result.Error
	}
	return &evaluation, nil
}

func (s *EvaluationStore) getDB(ctx context.Context) *gorm.DB {
	tx := FromContext(ctx)
	if tx != nil {
		return tx
	}
	return s.db
}
