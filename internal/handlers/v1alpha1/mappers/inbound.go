package mappers

import (
	"github.com/google/uuid"
	api "github.com/interviewsim/interview-server/api/v1alpha1"
	srvMappers "github.com/interviewsim/interview-server/internal/service/mappers"
)

func InterviewCreateFormFromApi(resource api.InterviewCreate) srvMappers.InterviewCreateForm {
	form := srvMappers.InterviewCreateForm{
		Title:       resource.Title,
		Description: resource.Description,
		UserID:      resource.UserId,
	}
	if resource.Status != nil {
		form.Status = string(*resource.Status)
	}
	return form
}

func InterviewUpdateFormFromApi(id uuid.UUID, resource api.InterviewUpdate) srvMappers.InterviewUpdateForm {
	form := srvMappers.InterviewUpdateForm{
		ID:          id,
		Title:       resource.Title,
		Description: resource.Description,
	}
	if resource.Status != nil {
		status := string(*resource.Status)
		form.Status = &status
	}
	return form
}

func ConversationCreateFormFromApi(interviewID uuid.UUID, resource api.ConversationCreate) srvMappers.ConversationCreateForm {
	return srvMappers.ConversationCreateForm{
		InterviewID: interviewID,
		UserID:      resource.UserId,
		Type:        string(resource.Type),
		Content:     resource.Content,
	}
}

func GenerateFormFromApi(interviewID uuid.UUID, resource api.ConversationGenerate) srvMappers.GenerateForm {
	form := srvMappers.GenerateForm{
		InterviewID: interviewID,
		UserID:      resource.UserId,
		Prompt:      resource.Prompt,
	}
	for _, snippet := range resource.PreviousMessages {
		form.PreviousMessages = append(form.PreviousMessages, srvMappers.ConversationSnippet{
			Type:    string(snippet.Type),
			Content: snippet.Content,
		})
	}
	return form
}

func EvaluationCreateFormFromApi(interviewID uuid.UUID, resource api.EvaluationCreate) srvMappers.EvaluationCreateForm {
	return srvMappers.EvaluationCreateForm{
		InterviewID: interviewID,
		UserID:      resource.UserId,
		Score:       resource.Score,
		Feedback:    resource.Feedback,
	}
}

func CompanyCreateFormFromApi(resource api.CompanyCreate) srvMappers.CompanyCreateForm {
	return srvMappers.CompanyCreateForm{
		Name: resource.Name,
		Logo: resource.Logo,
	}
}

func CompanyUpdateFormFromApi(id uuid.UUID, resource api.CompanyUpdate) srvMappers.CompanyUpdateForm {
	return srvMappers.CompanyUpdateForm{
		ID:   id,
		Name: resource.Name,
		Logo: resource.Logo,
	}
}
