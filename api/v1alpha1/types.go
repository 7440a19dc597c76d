// Package v1alpha1 holds the wire types of the interview API.
package v1alpha1

import (
	"time"

	"github.com/google/uuid"
)

// InterviewStatus describes the lifecycle state of an interview.
type InterviewStatus string

const (
	InterviewStatusInProgress InterviewStatus = "IN_PROGRESS"
	InterviewStatusCompleted  InterviewStatus = "COMPLETED"
	InterviewStatusCancelled  InterviewStatus = "CANCELLED"
)

// MessageType tags one transcript turn. QUESTION turns are authored by the
// AI interviewer, ANSWER turns by the human candidate.
type MessageType string

const (
	MessageTypeQuestion MessageType = "QUESTION"
	MessageTypeAnswer   MessageType = "ANSWER"
)

type Interview struct {
	Id                uuid.UUID       `json:"id"`
	Title             string          `json:"title"`
	Description       *string         `json:"description,omitempty"`
	Status            InterviewStatus `json:"status"`
	UserId            string          `json:"userId"`
	ConversationCount int64           `json:"conversationCount"`
	Evaluation        *Evaluation     `json:"evaluation,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

type InterviewList struct {
	Items      []Interview `json:"items"`
	NextCursor *uuid.UUID  `json:"nextCursor,omitempty"`
}

type InterviewCreate struct {
	Title       string           `json:"title" validate:"required,min=1"`
	Description *string          `json:"description,omitempty"`
	UserId      string           `json:"userId" validate:"required"`
	Status      *InterviewStatus `json:"status,omitempty" validate:"omitempty,interview_status"`
}

type InterviewUpdate struct {
	Title       *string          `json:"title,omitempty" validate:"omitempty,min=1"`
	Description *string          `json:"description,omitempty"`
	Status      *InterviewStatus `json:"status,omitempty" validate:"omitempty,interview_status"`
}

type Conversation struct {
	Id          uuid.UUID   `json:"id"`
	InterviewId uuid.UUID   `json:"interviewId"`
	UserId      string      `json:"userId"`
	Type        MessageType `json:"type"`
	Content     string      `json:"content"`
	Timestamp   time.Time   `json:"timestamp"`
}

type ConversationList struct {
	Items      []Conversation `json:"items"`
	NextCursor *uuid.UUID     `json:"nextCursor,omitempty"`
}

type ConversationCreate struct {
	UserId  string      `json:"userId" validate:"required"`
	Type    MessageType `json:"type" validate:"required,message_type"`
	Content string      `json:"content" validate:"required,min=1"`
}

// ConversationGenerate asks the AI interviewer for the next question.
// PreviousMessages, when set, overrides the persisted transcript as prompt
// context; Prompt overrides the default interviewer system prompt.
type ConversationGenerate struct {
	UserId           string                `json:"userId" validate:"required"`
	PreviousMessages []ConversationSnippet `json:"previousMessages,omitempty" validate:"omitempty,dive"`
	Prompt           *string               `json:"prompt,omitempty"`
}

type ConversationSnippet struct {
	Type    MessageType `json:"type" validate:"required,message_type"`
	Content string      `json:"content" validate:"required,min=1"`
}

type Evaluation struct {
	Id          uuid.UUID  `json:"id"`
	InterviewId uuid.UUID  `json:"interviewId"`
	UserId      string     `json:"userId"`
	Score       int        `json:"score"`
	Feedback    string     `json:"feedback"`
	Interview   *Interview `json:"interview,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type EvaluationCreate struct {
	UserId   string `json:"userId" validate:"required"`
	Score    int    `json:"score" validate:"required,min=1,max=10"`
	Feedback string `json:"feedback"`
}

type EvaluationGenerate struct {
	UserId string `json:"userId" validate:"required"`
}

type Company struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Logo      *string   `json:"logo,omitempty"`
	Users     []User    `json:"users,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type CompanyCreate struct {
	Name string  `json:"name" validate:"required,min=1"`
	Logo *string `json:"logo,omitempty"`
}

type CompanyUpdate struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Logo *string `json:"logo,omitempty"`
}

type User struct {
	Id        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	CompanyId *uuid.UUID `json:"companyId,omitempty"`
}

// Error is the body returned with every non-2xx response.
type Error struct {
	Message   string  `json:"message"`
	RequestId *string `json:"requestId,omitempty"`
}
