package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicClient implements ChatClient over the Messages API
type AnthropicClient struct {
	defaultModel string
	client       anthropic.Client
}

// NewAnthropicClient creates a Messages API client. baseURL may be empty.
func NewAnthropicClient(apiKey, baseURL, defaultModel string) (*AnthropicClient, error) {
	apiKey = normalizeAPIKey(apiKey)
	if apiKey == "" {
		return nil, fmt.Errorf("%s: %w", ProviderAnthropic, ErrMissingAPIKey)
	}
	if defaultModel == "" {
		defaultModel = DefaultModel(ProviderAnthropic)
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
		option.WithHTTPClient(&http.Client{Timeout: 120 * time.Second}),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &AnthropicClient{
		defaultModel: defaultModel,
		client:       anthropic.NewClient(opts...),
	}, nil
}

// Provider implements ChatClient
func (c *AnthropicClient) Provider() Provider {
	return ProviderAnthropic
}

// Complete implements ChatClient. System messages are lifted into the
// top-level system prompt; every other non-assistant role is sent as user.
func (c *AnthropicClient) Complete(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	start := time.Now()
	model := req.Model
	if model == "" {
		model = c.defaultModel
	}

	var system []string
	messages := make([]anthropic.MessageParam, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Role {
		case RoleSystem:
			system = append(system, m.Content)
		case RoleAssistant:
			messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))
		default:
			messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		}
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(model),
		MaxTokens:   int64(req.maxTokens()),
		Messages:    messages,
		Temperature: anthropic.Float(req.temperature()),
	}
	if len(system) > 0 {
		params.System = []anthropic.TextBlockParam{{Text: strings.Join(system, "\n\n")}}
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return nil, &APIError{Provider: ProviderAnthropic, StatusCode: apiErr.StatusCode, Message: http.StatusText(apiErr.StatusCode)}
		}
		return nil, fmt.Errorf("anthropic request: %w", err)
	}

	var content strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			content.WriteString(block.Text)
		}
	}
	if content.Len() == 0 {
		return nil, fmt.Errorf("anthropic: %w", ErrEmptyCompletion)
	}

	return &ChatResponse{
		Content:  content.String(),
		Model:    string(msg.Model),
		Provider: ProviderAnthropic,
		Usage: Usage{
			InputTokens:  int(msg.Usage.InputTokens),
			OutputTokens: int(msg.Usage.OutputTokens),
		},
		Duration: time.Since(start),
	}, nil
}
