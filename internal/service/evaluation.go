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
	"github.com/interviewsim/interview-server/pkg/metrics"
	"go.uber.org/zap"
)

type EvaluationService struct {
	store     store.Store
	completer ai.Completer
	logger    *zap.SugaredLogger
}

func NewEvaluationService(store store.Store, completer ai.Completer) *EvaluationService {
	return &EvaluationService{
		store:     store,
		completer: completer,
		logger:    zap.S().Named("evaluation_service"),
	}
}

func (s *EvaluationService) GetEvaluation(ctx context.Context, id uuid.UUID) (*model.Evaluation, error) {
	evaluation, err := s.store.Evaluation().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrEvaluationNotFound(id)
		}
		return nil, fmt.Errorf("failed to get evaluation: %w", err)
	}
	return evaluation, nil
}

func (s *EvaluationService) ListEvaluationsByUser(ctx context.Context, userID string) (model.EvaluationList, error) {
	evaluations, err := s.store.Evaluation().List(ctx, store.NewEvaluationQueryFilter().ByUserID(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}
	return evaluations, nil
}

// CreateEvaluation records a manually scored evaluation and closes the
// interview. Both writes share one transaction: an interview is never left
// COMPLETED without its evaluation, or the reverse.
func (s *EvaluationService) CreateEvaluation(ctx context.Context, form mappers.EvaluationCreateForm) (*model.Evaluation, error) {
	if _, err := s.checkEvaluable(ctx, form.InterviewID); err != nil {
		return nil, err
	}

	return s.persistEvaluation(ctx, form.ToModel())
}

// GenerateEvaluation reconstructs the transcript, asks the completion
// provider for a scored assessment, and persists the parsed result while
// closing the interview.
func (s *EvaluationService) GenerateEvaluation(ctx context.Context, interviewID uuid.UUID, userID string) (*model.Evaluation, error) {
	if _, err := s.checkEvaluable(ctx, interviewID); err != nil {
		return nil, err
	}

	transcript, _, err := s.store.Conversation().List(ctx,
		store.NewConversationQueryFilter().ByInterviewID(interviewID), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load transcript: %w", err)
	}

	if len(transcript) == 0 {
		return nil, NewErrEmptyTranscript(interviewID)
	}

	messages := make([]ai.Message, 0, len(transcript)+2)
	messages = append(messages, ai.Message{Role: ai.RoleSystem, Content: ai.EvaluatorPrompt})
	for _, turn := range transcript {
		messages = append(messages, ai.Message{Role: turnRole(turn.Type), Content: turn.Content})
	}
	messages = append(messages, ai.Message{Role: ai.RoleUser, Content: ai.EvaluationInstruction})

	response, err := s.completer.Complete(ctx, ai.CompletionKindEvaluation, messages)
	if err != nil {
		return nil, fmt.Errorf("failed to generate AI evaluation: %w", err)
	}

	score, feedback := ai.ParseEvaluation(response)

	form := mappers.EvaluationCreateForm{
		InterviewID: interviewID,
		UserID:      userID,
		Score:       score,
		Feedback:    feedback,
	}
	return s.persistEvaluation(ctx, form.ToModel())
}

// checkEvaluable loads the interview and rejects the request when an
// evaluation already exists. The duplicate fast path; the unique index on
// evaluations.interview_id covers the race.
func (s *EvaluationService) checkEvaluable(ctx context.Context, interviewID uuid.UUID) (*model.Interview, error) {
	interview, err := s.store.Interview().Get(ctx, interviewID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrInterviewNotFound(interviewID)
		}
		return nil, fmt.Errorf("failed to get interview: %w", err)
	}

	if interview.Evaluation != nil {
		return nil, NewErrEvaluationExists(interviewID)
	}

	return interview, nil
}

func (s *EvaluationService) persistEvaluation(ctx context.Context, evaluation model.Evaluation) (*model.Evaluation, error) {
	ctx, err := s.store.NewTransactionContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_, _ = store.Rollback(ctx)
	}()

	created, err := s.store.Evaluation().Create(ctx, evaluation)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return nil, NewErrEvaluationExists(evaluation.InterviewID)
		}
		return nil, fmt.Errorf("failed to create evaluation: %w", err)
	}

	statusUpdate := model.Interview{ID: evaluation.InterviewID, Status: model.InterviewStatusCompleted}
	if _, err := s.store.Interview().Update(ctx, statusUpdate); err != nil {
		return nil, fmt.Errorf("failed to complete interview: %w", err)
	}

	if _, err := store.Commit(ctx); err != nil {
		return nil, err
	}

	metrics.IncreaseInterviewsCompletedMetric()
	s.logger.Infow("evaluation created",
		"interview_id", evaluation.InterviewID, "evaluation_id", created.ID, "score", created.Score)
	return created, nil
}
