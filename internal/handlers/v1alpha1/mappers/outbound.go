package mappers

import (
	api "github.com/interviewsim/interview-server/api/v1alpha1"
	"github.com/interviewsim/interview-server/internal/store/model"
)

func InterviewToApi(interview model.Interview) api.Interview {
	out := api.Interview{
		Id:                interview.ID,
		Title:             interview.Title,
		Description:       interview.Description,
		Status:            api.InterviewStatus(interview.Status),
		UserId:            interview.UserID,
		ConversationCount: interview.ConversationCount,
		CreatedAt:         interview.CreatedAt,
		UpdatedAt:         interview.UpdatedAt,
	}
	if interview.Evaluation != nil {
		evaluation := EvaluationToApi(*interview.Evaluation)
		out.Evaluation = &evaluation
	}
	return out
}

func InterviewListToApi(interviews model.InterviewList) []api.Interview {
	items := make([]api.Interview, 0, len(interviews))
	for _, interview := range interviews {
		items = append(items, InterviewToApi(interview))
	}
	return items
}

func ConversationToApi(conversation model.Conversation) api.Conversation {
	return api.Conversation{
		Id:          conversation.ID,
		InterviewId: conversation.InterviewID,
		UserId:      conversation.UserID,
		Type:        api.MessageType(conversation.Type),
		Content:     conversation.Content,
		Timestamp:   conversation.Timestamp,
	}
}

func ConversationListToApi(conversations model.ConversationList) []api.Conversation {
	items := make([]api.Conversation, 0, len(conversations))
	for _, conversation := range conversations {
		items = append(items, ConversationToApi(conversation))
	}
	return items
}

func EvaluationToApi(evaluation model.Evaluation) api.Evaluation {
	out := api.Evaluation{
		Id:          evaluation.ID,
		InterviewId: evaluation.InterviewID,
		UserId:      evaluation.UserID,
		Score:       evaluation.Score,
		Feedback:    evaluation.Feedback,
		CreatedAt:   evaluation.CreatedAt,
	}
	if evaluation.Interview != nil {
		interview := InterviewToApi(*evaluation.Interview)
		out.Interview = &interview
	}
	return out
}

func EvaluationListToApi(evaluations model.EvaluationList) []api.Evaluation {
	items := make([]api.Evaluation, 0, len(evaluations))
	for _, evaluation := range evaluations {
		items = append(items, EvaluationToApi(evaluation))
	}
	return items
}

func CompanyToApi(company model.Company) api.Company {
	out := api.Company{
		Id:        company.ID,
		Name:      company.Name,
		Logo:      company.Logo,
		CreatedAt: company.CreatedAt,
	}
	for _, user := range company.Users {
		out.Users = append(out.Users, UserToApi(user))
	}
	return out
}

func CompanyListToApi(companies model.CompanyList) []api.Company {
	items := make([]api.Company, 0, len(companies))
	for _, company := range companies {
		items = append(items, CompanyToApi(company))
	}
	return items
}

func UserToApi(user model.User) api.User {
	return api.User{
		Id:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CompanyId: user.CompanyID,
	}
}
