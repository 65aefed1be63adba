package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	provider Provider
	content  string
	err      error
	calls    int
}

func (s *stubClient) Provider() Provider { return s.provider }

func (s *stubClient) Complete(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &ChatResponse{Content: s.content, Provider: s.provider, Model: req.Model}, nil
}

func TestRouter_PrimarySuccess(t *testing.T) {
	primary := &stubClient{provider: ProviderGroq, content: "primary"}
	fallback := &stubClient{provider: ProviderPollinations, content: "fallback"}
	r := NewRouter(primary, fallback)

	resp, err := r.Complete(context.Background(), ChatRequest{Model: "m"})
	require.NoError(t, err)
	assert.Equal(t, "primary", resp.Content)
	assert.Equal(t, 0, fallback.calls)
	assert.Equal(t, ProviderGroq, r.Provider())
}

func TestRouter_RetriesOnceOnFallback(t *testing.T) {
	primary := &stubClient{provider: ProviderGroq, err: &APIError{Provider: ProviderGroq, StatusCode: 503}}
	fallback := &stubClient{provider: ProviderPollinations, content: "fallback"}
	r := NewRouter(primary, fallback)

	resp, err := r.Complete(context.Background(), ChatRequest{})
	require.NoError(t, err)
	assert.Equal(t, "fallback", resp.Content)
	assert.Equal(t, ProviderPollinations, resp.Provider)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, fallback.calls)
}

func TestRouter_FallbackFailureIsReturned(t *testing.T) {
	fbErr := &APIError{Provider: ProviderPollinations, StatusCode: 500}
	primary := &stubClient{provider: ProviderGroq, err: errors.New("dial tcp: refused")}
	fallback := &stubClient{provider: ProviderPollinations, err: fbErr}
	r := NewRouter(primary, fallback)

	_, err := r.Complete(context.Background(), ChatRequest{})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, ProviderPollinations, apiErr.Provider)
	assert.Equal(t, 1, fallback.calls)
}

func TestRouter_NoRetryOnCancellation(t *testing.T) {
	primary := &stubClient{provider: ProviderGroq, err: context.Canceled}
	fallback := &stubClient{provider: ProviderPollinations}
	r := NewRouter(primary, fallback)

	_, err := r.Complete(context.Background(), ChatRequest{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, fallback.calls)
}

func TestRouter_SameProviderFallbackDisabled(t *testing.T) {
	r := NewRouter(&stubClient{provider: ProviderPollinations}, &stubClient{provider: ProviderPollinations})
	assert.False(t, r.HasFallback())
}

func TestNewRouterFromConfig(t *testing.T) {
	tests := []struct {
		name         string
		cfg          config.AIConfig
		wantProvider Provider
		wantFallback bool
	}{
		{"groq with key", config.AIConfig{Provider: "groq", GroqAPIKey: "gsk_1"}, ProviderGroq, true},
		{"groq without key uses free tier", config.AIConfig{Provider: "groq"}, ProviderPollinations, false},
		{"anthropic without key uses free tier", config.AIConfig{Provider: "anthropic"}, ProviderPollinations, false},
		{"anthropic with key", config.AIConfig{Provider: "anthropic", AnthropicAPIKey: "sk-ant"}, ProviderAnthropic, true},
		{"together with key", config.AIConfig{Provider: "together", TogetherAPIKey: "tok"}, ProviderTogether, true},
		{"ollama needs no key", config.AIConfig{Provider: "ollama"}, ProviderOllama, true},
		{"pollinations explicitly", config.AIConfig{Provider: "pollinations"}, ProviderPollinations, false},
		{"unknown behaves like groq", config.AIConfig{Provider: "mystery", GroqAPIKey: "gsk_1"}, ProviderGroq, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRouterFromConfig(tt.cfg)
			assert.Equal(t, tt.wantProvider, r.Provider())
			assert.Equal(t, tt.wantFallback, r.HasFallback())
		})
	}
}

func TestProviderRequiresKey(t *testing.T) {
	assert.True(t, ProviderGroq.RequiresKey())
	assert.True(t, ProviderAnthropic.RequiresKey())
	assert.False(t, ProviderOllama.RequiresKey())
	assert.False(t, ProviderPollinations.RequiresKey())
}
