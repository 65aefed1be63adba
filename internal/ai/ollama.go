package ai

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// DefaultOllamaBaseURL is the local daemon address
const DefaultOllamaBaseURL = "http://localhost:11434"

// OllamaClient implements ChatClient against a local Ollama daemon using the
// native /api/chat endpoint with streaming disabled.
type OllamaClient struct {
	baseURL      string
	defaultModel string
	httpClient   *http.Client
}

type ollamaRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
	Options  ollamaOptions   `json:"options"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaResponse struct {
	Model   string        `json:"model"`
	Message ollamaMessage `json:"message"`
	Done    bool          `json:"done"`
	Error   string        `json:"error,omitempty"`

	PromptEvalCount int `json:"prompt_eval_count"`
	EvalCount       int `json:"eval_count"`
}

// NewOllamaClient creates a client for the daemon at baseURL
func NewOllamaClient(baseURL, defaultModel string) *OllamaClient {
	if baseURL == "" {
		baseURL = DefaultOllamaBaseURL
	}
	if defaultModel == "" {
		defaultModel = DefaultModel(ProviderOllama)
	}
	return &OllamaClient{
		baseURL:      strings.TrimRight(baseURL, "/"),
		defaultModel: defaultModel,
		// local inference on large models can be slow
		httpClient: &http.Client{Timeout: 15 * time.Minute},
	}
}

// Provider implements ChatClient
func (o *OllamaClient) Provider() Provider {
	return ProviderOllama
}

// Complete implements ChatClient
func (o *OllamaClient) Complete(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	start := time.Now()
	model := req.Model
	if model == "" {
		model = o.defaultModel
	}

	body := ollamaRequest{
		Model:    model,
		Messages: make([]ollamaMessage, 0, len(req.Messages)),
		Stream:   false,
		Options: ollamaOptions{
			Temperature: req.temperature(),
			NumPredict:  req.maxTokens(),
		},
	}
	for _, m := range req.Messages {
		body.Messages = append(body.Messages, ollamaMessage{Role: string(m.Role), Content: m.Content})
	}

	var resp ollamaResponse
	if err := postJSON(ctx, o.httpClient, ProviderOllama, o.baseURL+"/api/chat", nil, body, &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, &APIError{Provider: ProviderOllama, StatusCode: http.StatusOK, Message: resp.Error}
	}
	if resp.Message.Content == "" {
		return nil, fmt.Errorf("ollama: %w", ErrEmptyCompletion)
	}

	respModel := resp.Model
	if respModel == "" {
		respModel = model
	}

	return &ChatResponse{
		Content:  resp.Message.Content,
		Model:    respModel,
		Provider: ProviderOllama,
		Usage: Usage{
			InputTokens:  resp.PromptEvalCount,
			OutputTokens: resp.EvalCount,
		},
		Duration: time.Since(start),
	}, nil
}
