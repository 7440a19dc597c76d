package mappers

import (
	"github.com/google/uuid"
	"github.com/interviewsim/interview-server/internal/store/model"
)

// InterviewCreateForm carries the validated input of an interview creation.
type InterviewCreateForm struct {
	Title       string
	Description *string
	UserID      string
	Status      string
}

func (f InterviewCreateForm) ToModel() model.Interview {
	status := f.Status
	if status == "" {
		status = model.InterviewStatusInProgress
	}
	return model.Interview{
		ID:          uuid.New(),
		Title:       f.Title,
		Description: f.Description,
		Status:      status,
		UserID:      f.UserID,
	}
}

type InterviewUpdateForm struct {
	ID          uuid.UUID
	Title       *string
	Description *string
	Status      *string
}

type ConversationCreateForm struct {
	InterviewID uuid.UUID
	UserID      string
	Type        string
	Content     string
}

func (f ConversationCreateForm) ToModel() model.Conversation {
	return model.Conversation{
		ID:          uuid.New(),
		InterviewID: f.InterviewID,
		UserID:      f.UserID,
		Type:        f.Type,
		Content:     f.Content,
	}
}

// ConversationSnippet is a caller-supplied prior turn used as prompt
// context instead of the persisted transcript.
type ConversationSnippet struct {
	Type    string
	Content string
}

type GenerateForm struct {
	InterviewID      uuid.UUID
	UserID           string
	PreviousMessages []ConversationSnippet
	Prompt           *string
}

type EvaluationCreateForm struct {
	InterviewID uuid.UUID
	UserID      string
	Score       int
	Feedback    string
}

func (f EvaluationCreateForm) ToModel() model.Evaluation {
	return model.Evaluation{
		ID:          uuid.New(),
		InterviewID: f.InterviewID,
		UserID:      f.UserID,
		Score:       f.Score,
		Feedback:    f.Feedback,
	}
}

type CompanyCreateForm struct {
	Name string
	Logo *string
}

func (f CompanyCreateForm) ToModel() model.Company {
	return model.Company{
		ID:   uuid.New(),
		Name: f.Name,
		Logo: f.Logo,
	}
}

type CompanyUpdateForm struct {
	ID   uuid.UUID
	Name *string
	Logo *string
}
