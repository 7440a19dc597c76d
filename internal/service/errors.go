package service

import (
	"fmt"

	"github.com/google/uuid"
)

type ErrResourceNotFound struct {
	error
}

func NewErrResourceNotFound(id uuid.UUID, resourceType string) *ErrResourceNotFound {
	return &ErrResourceNotFound{fmt.Errorf("%s %s not found", resourceType, id)}
}

func NewErrInterviewNotFound(id uuid.UUID) *ErrResourceNotFound {
	return NewErrResourceNotFound(id, "interview")
}

func NewErrEvaluationNotFound(id uuid.UUID) *ErrResourceNotFound {
	return NewErrResourceNotFound(id, "evaluation")
}

func NewErrCompanyNotFound(id uuid.UUID) *ErrResourceNotFound {
	return NewErrResourceNotFound(id, "company")
}

// ErrEvaluationExists is the conflict raised when an interview already has
// its evaluation. An interview is evaluated exactly once.
type ErrEvaluationExists struct {
	error
}

func NewErrEvaluationExists(interviewID uuid.UUID) *ErrEvaluationExists {
	return &ErrEvaluationExists{fmt.Errorf("evaluation already exists for interview %s", interviewID)}
}

// ErrInterviewClosed is raised when a turn is appended or generated against
// an interview that already reached a terminal status.
type ErrInterviewClosed struct {
	error
}

func NewErrInterviewClosed(interviewID uuid.UUID, status string) *ErrInterviewClosed {
	return &ErrInterviewClosed{fmt.Errorf("interview %s is %s and accepts no further turns", interviewID, status)}
}

// ErrInvalidStatusTransition is raised when an update tries to move an
// interview backwards out of a terminal status.
type ErrInvalidStatusTransition struct {
	error
}

func NewErrInvalidStatusTransition(interviewID uuid.UUID, from, to string) *ErrInvalidStatusTransition {
	return &ErrInvalidStatusTransition{fmt.Errorf("interview %s cannot transition from %s to %s", interviewID, from, to)}
}

// ErrUnexpectedTurn is raised when the appended turn type does not match
// the side expected to speak next.
type ErrUnexpectedTurn struct {
	error
}

func NewErrUnexpectedTurn(interviewID uuid.UUID, expected, got string) *ErrUnexpectedTurn {
	return &ErrUnexpectedTurn{fmt.Errorf("interview %s expects a %s turn, got %s", interviewID, expected, got)}
}

type ErrEmptyTranscript struct {
	error
}

func NewErrEmptyTranscript(interviewID uuid.UUID) *ErrEmptyTranscript {
	return &ErrEmptyTranscript{fmt.Errorf("interview %s has no conversations to evaluate", interviewID)}
}
