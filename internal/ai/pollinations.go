package ai

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// PollinationsURL is the keyless OpenAI-compatible endpoint
const PollinationsURL = "https://text.pollinations.ai/openai"

// PollinationsClient is the free, keyless provider used when the configured
// provider has no credential or fails. The endpoint is a fixed URL rather than
// a base path, so it is called directly instead of through the SDK.
type PollinationsClient struct {
	url        string
	model      string
	httpClient *http.Client
}

type pollinationsRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

type pollinationsResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

// NewPollinationsClient returns a client for url (PollinationsURL when empty)
func NewPollinationsClient(url string) *PollinationsClient {
	if url == "" {
		url = PollinationsURL
	}
	return &PollinationsClient{
		url:        url,
		model:      DefaultModel(ProviderPollinations),
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

// Provider implements ChatClient
func (p *PollinationsClient) Provider() Provider {
	return ProviderPollinations
}

// Complete implements ChatClient. Pollinations serves its own model catalogue,
// so the request model is ignored and no max_tokens is sent.
func (p *PollinationsClient) Complete(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	start := time.Now()

	body := pollinationsRequest{
		Model:       p.model,
		Messages:    req.Messages,
		Temperature: req.temperature(),
	}

	var resp pollinationsResponse
	if err := postJSON(ctx, p.httpClient, ProviderPollinations, p.url, nil, body, &resp); err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("pollinations: %w", ErrEmptyCompletion)
	}

	model := resp.Model
	if model == "" {
		model = p.model
	}

	return &ChatResponse{
		Content:  resp.Choices[0].Message.Content,
		Model:    model,
		Provider: ProviderPollinations,
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
		},
		Duration: time.Since(start),
	}, nil
}
