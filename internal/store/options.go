package store

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BaseQuerier struct {
	QueryFn []func(tx *gorm.DB) *gorm.DB
}

type InterviewQueryFilter BaseQuerier

func NewInterviewQueryFilter() *InterviewQueryFilter {
	return &InterviewQueryFilter{QueryFn: make([]func(tx *gorm.DB) *gorm.DB, 0)}
}

func (qf *InterviewQueryFilter) ByUserID(userID string) *InterviewQueryFilter {
	qf.QueryFn = append(qf.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("user_id = ?", userID)
	})
	return qf
}

func (qf *InterviewQueryFilter) ByStatus(status string) *InterviewQueryFilter {
	qf.QueryFn = append(qf.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("status = ?", status)
	})
	return qf
}

type ConversationQueryFilter BaseQuerier

func NewConversationQueryFilter() *ConversationQueryFilter {
	return &ConversationQueryFilter{QueryFn: make([]func(tx *gorm.DB) *gorm.DB, 0)}
}

func (qf *ConversationQueryFilter) ByInterviewID(interviewID uuid.UUID) *ConversationQueryFilter {
	qf.QueryFn = append(qf.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("interview_id = ?", interviewID)
	})
	return qf
}

type EvaluationQueryFilter BaseQuerier

func NewEvaluationQueryFilter() *EvaluationQueryFilter {
	return &EvaluationQueryFilter{QueryFn: make([]func(tx *gorm.DB) *gorm.DB, 0)}
}

func (qf *EvaluationQueryFilter) ByUserID(userID string) *EvaluationQueryFilter {
	qf.QueryFn = append(qf.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("user_id = ?", userID)
	})
	return qf
}

// PageOptions drive keyset cursor pagination. The store fetches limit+1
// rows; when the extra row exists its id becomes the next cursor and the
// page resumes at that row (inclusive) on the follow-up request.
type PageOptions struct {
	Limit  int
	Cursor *uuid.UUID
}

func NewPageOptions() *PageOptions {
	return &PageOptions{}
}

func (o *PageOptions) WithLimit(limit int) *PageOptions {
	o.Limit = limit
	return o
}

func (o *PageOptions) WithCursor(cursor *uuid.UUID) *PageOptions {
	o.Cursor = cursor
	return o
}
