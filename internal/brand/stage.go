package brand

import (
	"context"
	"errors"
	"time"

	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/ai"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/logging"

	"go.uber.org/zap"
)

// ErrNoChatClient marks stages that ran without a chat client (offline runs).
var ErrNoChatClient = errors.New("no chat client configured")

// Stage names.
const (
	StageDesigner = "designer"
	StageCritic   = "critic"
	StageProducer = "producer"
)

// StageResult is the outcome of one stage. Value is always usable: when
// Fallback is set, Err holds the reason the model output was not used.
type StageResult[T any] struct {
	Value    T
	Err      error
	Fallback bool
	Usage    ai.Usage
	Model    string
	Provider ai.Provider
	Duration time.Duration
}

// StageReport is the serializable provenance of one stage.
type StageReport struct {
	Name       string `json:"name"`
	Model      string `json:"model,omitempty"`
	Provider   string `json:"provider,omitempty"`
	Fallback   bool   `json:"fallback"`
	Error      string `json:"error,omitempty"`
	DurationMs int64  `json:"durationMs"`
	Tokens     int    `json:"tokens"`
}

func (r StageResult[T]) report(name string) StageReport {
	rep := StageReport{
		Name:       name,
		Model:      r.Model,
		Provider:   string(r.Provider),
		Fallback:   r.Fallback,
		DurationMs: r.Duration.Milliseconds(),
		Tokens:     r.Usage.Total(),
	}
	if r.Err != nil {
		rep.Error = r.Err.Error()
	}
	return rep
}

type stageSpec[T any] struct {
	name     string
	system   string
	prompt   string
	fallback T
	keys     []string
	// check repairs values that decode but are out of range, returning the
	// fields it reset to the fallback.
	check func(v *T, fallback T) []string
}

// runStage asks the model for spec and merges the reply over the fallback.
// Every failure path returns the fallback; nothing is propagated.
func runStage[T any](ctx context.Context, p *Pipeline, spec stageSpec[T]) StageResult[T] {
	start := time.Now()
	log := logging.L().With(zap.String("stage", spec.name), zap.String("model", p.cfg.AgentModel))

	fail := func(err error) StageResult[T] {
		log.Warn("stage using fallback", zap.Error(err))
		return StageResult[T]{
			Value:    spec.fallback,
			Err:      err,
			Fallback: true,
			Model:    p.cfg.AgentModel,
			Duration: time.Since(start),
		}
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}
	if p.chat == nil {
		return fail(ErrNoChatClient)
	}

	resp, err := p.chat.Complete(ctx, ai.ChatRequest{
		Model: p.cfg.AgentModel,
		Messages: []ai.Message{
			{Role: ai.RoleSystem, Content: spec.system},
			{Role: ai.RoleUser, Content: spec.prompt},
		},
	})
	if err != nil {
		return fail(err)
	}

	value, report, err := mergeOver(SanitizeJSON(resp.Content), spec.fallback, spec.keys...)
	if err != nil {
		res := fail(err)
		res.Usage, res.Provider = resp.Usage, resp.Provider
		return res
	}
	if spec.check != nil {
		report.Rejected = append(report.Rejected, spec.check(&value, spec.fallback)...)
	}
	if len(report.Rejected) > 0 {
		log.Warn("kept fallback for mistyped fields", zap.Strings("fields", report.Rejected))
	}

	res := StageResult[T]{
		Value:    value,
		Usage:    resp.Usage,
		Model:    resp.Model,
		Provider: resp.Provider,
		Duration: time.Since(start),
	}
	if res.Model == "" {
		res.Model = p.cfg.AgentModel
	}
	log.Info("stage complete",
		zap.String("provider", string(res.Provider)),
		zap.Int("tokens", res.Usage.Total()),
		zap.Duration("duration", res.Duration),
	)
	return res
}
