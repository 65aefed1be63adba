// Package ai holds the outbound adapters for chat completion and image
// generation. Every chat provider implements ChatClient; Router picks the
// configured provider once and falls back to the keyless provider on failure.
package ai

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Provider identifies a chat completion backend
type Provider string

const (
	ProviderGroq         Provider = "groq"
	ProviderOpenAI       Provider = "openai"
	ProviderTogether     Provider = "together"
	ProviderAnthropic    Provider = "anthropic"
	ProviderOllama       Provider = "ollama"
	ProviderPollinations Provider = "pollinations"
)

// RequiresKey reports whether the provider refuses requests without an API key.
func (p Provider) RequiresKey() bool {
	switch p {
	case ProviderOllama, ProviderPollinations:
		return false
	default:
		return true
	}
}

// Request defaults shared by every provider.
const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 4096
)

// Role of a chat message
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of a conversation
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is a provider-neutral completion request. Zero Temperature and
// MaxTokens are replaced with the package defaults.
type ChatRequest struct {
	Model       string    `json:"model,omitempty"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

func (r ChatRequest) temperature() float64 {
	if r.Temperature > 0 {
		return r.Temperature
	}
	return DefaultTemperature
}

func (r ChatRequest) maxTokens() int {
	if r.MaxTokens > 0 {
		return r.MaxTokens
	}
	return DefaultMaxTokens
}

// Usage reports token consumption for one completion
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// Total returns input plus output tokens.
func (u Usage) Total() int {
	return u.InputTokens + u.OutputTokens
}

// ChatResponse is the provider-neutral completion result
type ChatResponse struct {
	Content  string        `json:"content"`
	Usage    Usage         `json:"usage"`
	Model    string        `json:"model"`
	Provider Provider      `json:"provider"`
	Duration time.Duration `json:"duration"`
}

// ChatClient is implemented by every chat provider
type ChatClient interface {
	Complete(ctx context.Context, req ChatRequest) (*ChatResponse, error)
	Provider() Provider
}

var (
	// ErrMissingAPIKey is returned by providers constructed without a key.
	ErrMissingAPIKey = errors.New("ai: missing API key")
	// ErrEmptyCompletion is returned when a provider answers 2xx with no choices.
	ErrEmptyCompletion = errors.New("ai: empty completion")
)

// APIError is a non-2xx answer from an upstream provider.
type APIError struct {
	Provider   Provider
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s request failed with status %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s request failed with status %d: %s", e.Provider, e.StatusCode, e.Message)
}

// IsRateLimited reports whether err is an upstream 429.
func IsRateLimited(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 429
}
