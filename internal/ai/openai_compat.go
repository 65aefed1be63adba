package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/config"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Base URLs of the OpenAI-compatible chat providers.
const (
	GroqBaseURL     = "https://api.groq.com/openai/v1/"
	OpenAIBaseURL   = "https://api.openai.com/v1/"
	TogetherBaseURL = "https://api.together.xyz/v1/"
)

// DefaultModel returns the model used for a provider when none is configured.
func DefaultModel(p Provider) string {
	return config.DefaultModelFor(string(p))
}

// OpenAICompatClient talks to any chat-completions endpoint that follows the
// OpenAI schema (Groq, OpenAI, Together) through the official SDK.
type OpenAICompatClient struct {
	provider     Provider
	defaultModel string
	client       openai.Client
}

// NewOpenAICompatClient builds a client for provider against baseURL. The
// SDK's own retry loop is disabled: the Router owns the single fallback retry.
func NewOpenAICompatClient(provider Provider, apiKey, baseURL, defaultModel string) (*OpenAICompatClient, error) {
	apiKey = normalizeAPIKey(apiKey)
	if apiKey == "" {
		return nil, fmt.Errorf("%s: %w", provider, ErrMissingAPIKey)
	}
	if defaultModel == "" {
		defaultModel = DefaultModel(provider)
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
		option.WithHTTPClient(&http.Client{Timeout: 120 * time.Second}),
	)

	return &OpenAICompatClient{
		provider:     provider,
		defaultModel: defaultModel,
		client:       client,
	}, nil
}

// NewGroqClient returns the default free-tier provider.
func NewGroqClient(apiKey, defaultModel string) (*OpenAICompatClient, error) {
	return NewOpenAICompatClient(ProviderGroq, apiKey, GroqBaseURL, defaultModel)
}

// Provider implements ChatClient
func (c *OpenAICompatClient) Provider() Provider {
	return c.provider
}

// Complete implements ChatClient
func (c *OpenAICompatClient) Complete(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	start := time.Now()
	model := req.Model
	if model == "" {
		model = c.defaultModel
	}

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(model),
		Messages:    toOpenAIMessages(req.Messages),
		Temperature: openai.Float(req.temperature()),
		MaxTokens:   openai.Int(int64(req.maxTokens())),
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return nil, &APIError{Provider: c.provider, StatusCode: apiErr.StatusCode, Message: apiErr.Message}
		}
		return nil, fmt.Errorf("%s request: %w", c.provider, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%s: %w", c.provider, ErrEmptyCompletion)
	}

	respModel := resp.Model
	if respModel == "" {
		respModel = model
	}

	return &ChatResponse{
		Content:  resp.Choices[0].Message.Content,
		Model:    respModel,
		Provider: c.provider,
		Usage: Usage{
			InputTokens:  int(resp.Usage.PromptTokens),
			OutputTokens: int(resp.Usage.CompletionTokens),
		},
		Duration: time.Since(start),
	}, nil
}

func toOpenAIMessages(messages []Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			out = append(out, openai.SystemMessage(m.Content))
		case RoleAssistant:
			out = append(out, openai.AssistantMessage(m.Content))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}
