package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/config"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/logging"

	"go.uber.org/zap"
)

// Router sends chat requests to the configured provider and, when that call
// fails, retries exactly once on the keyless fallback provider. It is built
// once per process from AIConfig and holds no mutable state.
type Router struct {
	primary  ChatClient
	fallback ChatClient
}

// NewRouter wires primary and an optional fallback. A nil fallback, or a
// fallback serving the same provider as primary, disables the retry.
func NewRouter(primary, fallback ChatClient) *Router {
	if fallback != nil && primary != nil && fallback.Provider() == primary.Provider() {
		fallback = nil
	}
	return &Router{primary: primary, fallback: fallback}
}

// NewRouterFromConfig resolves the provider named by cfg.Provider. When that
// provider needs a key that is not configured, the keyless Pollinations
// provider becomes the primary and no fallback is kept.
func NewRouterFromConfig(cfg config.AIConfig) *Router {
	fallback := NewPollinationsClient("")

	primary, err := newProviderClient(Provider(cfg.Provider), cfg)
	if err != nil {
		logging.L().Warn("chat provider unavailable, using free tier",
			zap.String("provider", cfg.Provider),
			zap.String("fallback", string(ProviderPollinations)),
			zap.Error(err),
		)
		return NewRouter(fallback, nil)
	}

	logging.L().Info("chat provider initialized", zap.String("provider", string(primary.Provider())))
	return NewRouter(primary, fallback)
}

func newProviderClient(p Provider, cfg config.AIConfig) (ChatClient, error) {
	switch p {
	case ProviderGroq, "":
		return NewGroqClient(cfg.GroqAPIKey, cfg.AgentModel)
	case ProviderOpenAI:
		return NewOpenAICompatClient(ProviderOpenAI, cfg.OpenAIAPIKey, OpenAIBaseURL, cfg.AgentModel)
	case ProviderTogether:
		return NewOpenAICompatClient(ProviderTogether, cfg.TogetherAPIKey, TogetherBaseURL, cfg.AgentModel)
	case ProviderAnthropic:
		return NewAnthropicClient(cfg.AnthropicAPIKey, "", cfg.AgentModel)
	case ProviderOllama:
		return NewOllamaClient(cfg.OllamaBaseURL, cfg.AgentModel), nil
	case ProviderPollinations:
		return NewPollinationsClient(""), nil
	default:
		// unknown names behave like the default provider
		return NewGroqClient(cfg.GroqAPIKey, cfg.AgentModel)
	}
}

// Provider returns the primary provider
func (r *Router) Provider() Provider {
	return r.primary.Provider()
}

// HasFallback reports whether a failed primary call will be retried
func (r *Router) HasFallback() bool {
	return r.fallback != nil
}

// Complete implements ChatClient
func (r *Router) Complete(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	resp, err := r.primary.Complete(ctx, req)
	if err == nil {
		return resp, nil
	}

	if r.fallback == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil, err
	}

	logging.L().Warn("chat provider failed, retrying on fallback",
		zap.String("provider", string(r.primary.Provider())),
		zap.String("fallback", string(r.fallback.Provider())),
		zap.Error(err),
	)

	resp, fbErr := r.fallback.Complete(ctx, req)
	if fbErr != nil {
		return nil, fmt.Errorf("fallback %s after %s failure (%v): %w", r.fallback.Provider(), r.primary.Provider(), err, fbErr)
	}
	return resp, nil
}
