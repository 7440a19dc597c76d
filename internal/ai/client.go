// Package ai wraps the completion provider used to drive the interviewer
// and the evaluator. The provider is stateless: every call ships the full
// role-tagged message history and receives one generated message back.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/interviewsim/interview-server/internal/config"
	"github.com/interviewsim/interview-server/pkg/metrics"
	openai "github.com/sashabaranov/go-openai"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

const (
	CompletionKindInterview  = "interview"
	CompletionKindEvaluation = "evaluation"
)

var (
	// ErrNotConfigured is returned at construction time when the provider
	// credential is missing. No call is ever attempted without it.
	ErrNotConfigured = errors.New("completion provider is not configured: OPENAI_API_KEY is missing")

	// ErrEmptyCompletion is returned when the provider answers without any
	// usable text.
	ErrEmptyCompletion = errors.New("completion provider returned no usable text")
)

type Message struct {
	Role    string
	Content string
}

// Completer is the single-shot completion contract. Implementations are
// synchronous; the only cancellation mechanism is the context.
type Completer interface {
	Complete(ctx context.Context, kind string, messages []Message) (string, error)
}

type OpenAIClient struct {
	client *openai.Client
	model  string
}

// Make sure we conform to Completer interface
var _ Completer = (*OpenAIClient)(nil)

func NewOpenAIClient(cfg *config.Config) (*OpenAIClient, error) {
	if cfg.OpenAI == nil || cfg.OpenAI.APIKey == "" {
		return nil, ErrNotConfigured
	}

	model := cfg.OpenAI.Model
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}

	return &OpenAIClient{
		client: openai.NewClient(cfg.OpenAI.APIKey),
		model:  model,
	}, nil
}

func (c *OpenAIClient) Complete(ctx context.Context, kind string, messages []Message) (string, error) {
	request := openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: make([]openai.ChatCompletionMessage, 0, len(messages)),
	}
	for _, message := range messages {
		request.Messages = append(request.Messages, openai.ChatCompletionMessage{
			Role:    message.Role,
			Content: message.Content,
		})
	}

	start := time.Now()
	response, err := c.client.CreateChatCompletion(ctx, request)
	metrics.ObserveCompletionRequestDuration(kind, time.Since(start).Seconds())
	if err != nil {
		metrics.IncreaseCompletionRequestsMetric(kind, "error")
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	if len(response.Choices) == 0 {
		metrics.IncreaseCompletionRequestsMetric(kind, "empty")
		return "", ErrEmptyCompletion
	}

	content := strings.TrimSpace(response.Choices[0].Message.Content)
	if content == "" {
		metrics.IncreaseCompletionRequestsMetric(kind, "empty")
		return "", ErrEmptyCompletion
	}

	metrics.IncreaseCompletionRequestsMetric(kind, "success")
	return content, nil
}
