package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/interviewsim/interview-server/internal/ai"
	"github.com/interviewsim/interview-server/internal/service/mappers"
	"github.com/interviewsim/interview-server/internal/store"
	"github.com/interviewsim/interview-server/internal/store/model"
	"go.uber.org/zap"
)

const defaultConversationLimit = 100

type ConversationService struct {
	store     store.Store
	completer ai.Completer
	logger    *zap.SugaredLogger
}

func NewConversationService(store store.Store, completer ai.Completer) *ConversationService {
	return &ConversationService{
		store:     store,
		completer: completer,
		logger:    zap.S().Named("conversation_service"),
	}
}

// ConversationFilter represents paging options for listing one transcript.
type ConversationFilter struct {
	InterviewID uuid.UUID
	Limit       int
	Cursor      *uuid.UUID
}

func NewConversationFilter(interviewID uuid.UUID) *ConversationFilter {
	return &ConversationFilter{InterviewID: interviewID}
}

func (f *ConversationFilter) WithLimit(limit int) *ConversationFilter {
	f.Limit = limit
	return f
}

func (f *ConversationFilter) WithCursor(cursor *uuid.UUID) *ConversationFilter {
	f.Cursor = cursor
	return f
}

func (s *ConversationService) ListConversations(ctx context.Context, filter *ConversationFilter) (model.ConversationList, *uuid.UUID, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultConversationLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	conversations, nextCursor, err := s.store.Conversation().List(ctx,
		store.NewConversationQueryFilter().ByInterviewID(filter.InterviewID),
		store.NewPageOptions().WithLimit(limit).WithCursor(filter.Cursor))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list conversations: %w", err)
	}

	return conversations, nextCursor, nil
}

// AppendConversation persists one turn. The interview must still be open
// and the turn type must match the side expected to speak next; the
// expected side flips with every append.
func (s *ConversationService) AppendConversation(ctx context.Context, form mappers.ConversationCreateForm) (*model.Conversation, error) {
	interview, err := s.loadOpenInterview(ctx, form.InterviewID)
	if err != nil {
		return nil, err
	}

	if interview.NextTurn != "" && interview.NextTurn != form.Type {
		return nil, NewErrUnexpectedTurn(interview.ID, interview.NextTurn, form.Type)
	}

	ctx, err = s.store.NewTransactionContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_, _ = store.Rollback(ctx)
	}()

	conversation, err := s.store.Conversation().Create(ctx, form.ToModel())
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}

	turnUpdate := model.Interview{ID: interview.ID, NextTurn: model.OppositeTurn(form.Type)}
	if _, err := s.store.Interview().Update(ctx, turnUpdate); err != nil {
		return nil, fmt.Errorf("failed to advance interview turn: %w", err)
	}

	if _, err := store.Commit(ctx); err != nil {
		return nil, err
	}

	return conversation, nil
}

// GenerateConversation asks the completion provider for the next
// interviewer question and persists it as a QUESTION turn. The prompt
// context is the caller-supplied turns when given, otherwise the persisted
// transcript in canonical order.
func (s *ConversationService) GenerateConversation(ctx context.Context, form mappers.GenerateForm) (*model.Conversation, error) {
	interview, err := s.loadOpenInterview(ctx, form.InterviewID)
	if err != nil {
		return nil, err
	}

	if interview.NextTurn != "" && interview.NextTurn != model.MessageTypeQuestion {
		return nil, NewErrUnexpectedTurn(interview.ID, interview.NextTurn, model.MessageTypeQuestion)
	}

	systemPrompt := ai.DefaultInterviewerPrompt
	if form.Prompt != nil && *form.Prompt != "" {
		systemPrompt = *form.Prompt
	}
	messages := []ai.Message{{Role: ai.RoleSystem, Content: systemPrompt}}

	if len(form.PreviousMessages) > 0 {
		for _, snippet := range form.PreviousMessages {
			messages = append(messages, ai.Message{Role: turnRole(snippet.Type), Content: snippet.Content})
		}
	} else {
		transcript, _, err := s.store.Conversation().List(ctx,
			store.NewConversationQueryFilter().ByInterviewID(form.InterviewID), nil)
		if err != nil {
			return nil, fmt.Errorf("failed to load transcript: %w", err)
		}
		for _, turn := range transcript {
			messages = append(messages, ai.Message{Role: turnRole(turn.Type), Content: turn.Content})
		}
	}

	content, err := s.completer.Complete(ctx, ai.CompletionKindInterview, messages)
	if err != nil {
		return nil, fmt.Errorf("failed to generate AI response: %w", err)
	}

	createForm := mappers.ConversationCreateForm{
		InterviewID: form.InterviewID,
		UserID:      form.UserID,
		Type:        model.MessageTypeQuestion,
		Content:     content,
	}

	ctx, err = s.store.NewTransactionContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_, _ = store.Rollback(ctx)
	}()

	conversation, err := s.store.Conversation().Create(ctx, createForm.ToModel())
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}

	turnUpdate := model.Interview{ID: interview.ID, NextTurn: model.MessageTypeAnswer}
	if _, err := s.store.Interview().Update(ctx, turnUpdate); err != nil {
		return nil, fmt.Errorf("failed to advance interview turn: %w", err)
	}

	if _, err := store.Commit(ctx); err != nil {
		return nil, err
	}

	s.logger.Infow("generated interviewer question", "interview_id", form.InterviewID)
	return conversation, nil
}

func (s *ConversationService) loadOpenInterview(ctx context.Context, id uuid.UUID) (*model.Interview, error) {
	interview, err := s.store.Interview().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrInterviewNotFound(id)
		}
		return nil, fmt.Errorf("failed to get interview: %w", err)
	}

	if interview.Closed() {
		return nil, NewErrInterviewClosed(interview.ID, interview.Status)
	}

	return interview, nil
}

// turnRole maps a transcript turn to a provider role. The AI is always the
// interviewer, so QUESTION turns speak as the assistant.
func turnRole(turnType string) string {
	if turnType == model.MessageTypeAnswer {
		return ai.RoleUser
	}
	return ai.RoleAssistant
}
