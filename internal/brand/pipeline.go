// Package brand turns a business profile into a complete brand and
// marketing asset bundle. A build runs three model stages in order
// (Designer, Critic, Producer) and then asks the image model for a logo.
// Every stage has a deterministic fallback, so a build always completes;
// upstream trouble only lowers the quality of the result.
package brand

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/ai"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/config"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/logging"

	"go.uber.org/zap"
)

// ErrInvalidProfile is returned by Run when the profile has no business name.
var ErrInvalidProfile = errors.New("brand: business name is required")

// DefaultCooldown is the pause between stages.
const DefaultCooldown = 10 * time.Second

const defaultColorText = "blue and white"

// ImageGenerator renders a logo; "" means no image is available.
type ImageGenerator interface {
	GenerateLogo(ctx context.Context, concept string) string
}

// Observer receives stage and build measurements.
type Observer interface {
	ObserveStage(stage string, fallback bool, duration time.Duration, tokens int)
	ObserveBuild(duration time.Duration, fallbackStages int)
}

// Config holds the model names and timing of a Pipeline.
type Config struct {
	AgentModel   string
	FroBotModel  string
	ImageModel   string
	Cooldown     time.Duration
	BuildVersion string
	Now          func() time.Time
}

// DefaultConfig returns the production settings.
func DefaultConfig() Config {
	return Config{
		AgentModel:   config.DefaultAgentModel,
		FroBotModel:  config.DefaultAgentModel,
		ImageModel:   config.DefaultLogoModel,
		Cooldown:     DefaultCooldown,
		BuildVersion: BuildVersion,
		Now:          time.Now,
	}
}

// Pipeline runs builds. It holds no per-build state and is safe for
// concurrent use.
type Pipeline struct {
	chat     ai.ChatClient
	images   ImageGenerator
	observer Observer
	cfg      Config
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithObserver reports stage and build measurements to o.
func WithObserver(o Observer) Option {
	return func(p *Pipeline) { p.observer = o }
}

// NewPipeline builds a pipeline. A nil chat client makes every stage fall
// back; a nil image generator skips the logo image.
func NewPipeline(chat ai.ChatClient, images ImageGenerator, cfg Config, opts ...Option) *Pipeline {
	def := DefaultConfig()
	if cfg.AgentModel == "" {
		cfg.AgentModel = def.AgentModel
	}
	if cfg.FroBotModel == "" {
		cfg.FroBotModel = def.FroBotModel
	}
	if cfg.ImageModel == "" {
		cfg.ImageModel = def.ImageModel
	}
	if cfg.BuildVersion == "" {
		cfg.BuildVersion = def.BuildVersion
	}
	if cfg.Now == nil {
		cfg.Now = def.Now
	}

	p := &Pipeline{chat: chat, images: images, cfg: cfg}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes Designer, Critic and Producer in order, then the logo image
// step, and assembles the result. Upstream failures never surface as
// errors; the only error is ErrInvalidProfile.
func (p *Pipeline) Run(ctx context.Context, profile BusinessProfile, orderID string) (*CompleteAssets, error) {
	if strings.TrimSpace(profile.Name) == "" {
		return nil, ErrInvalidProfile
	}

	start := time.Now()
	log := logging.L().With(zap.String("order_id", orderID), zap.String("business", profile.Name))
	log.Info("build started",
		zap.String("industry", profile.Industry),
		zap.String("style", profile.Style),
		zap.String("colors", profile.Colors),
	)

	colorText := profile.Colors
	if colorText == "" {
		colorText = defaultColorText
	}
	palette := ResolveColors(colorText)
	style := ResolveStyle(profile.Style)

	design := runStage(ctx, p, stageSpec[DesignAssets]{
		name:     StageDesigner,
		system:   DesignerSystem,
		prompt:   DesignerPrompt(profile, palette, style),
		fallback: DesignFallback(profile, palette, style),
	})
	p.observeStage(StageDesigner, design.Fallback, design.Duration, design.Usage)
	p.cooldown(ctx)

	critique := runStage(ctx, p, stageSpec[Critique]{
		name:     StageCritic,
		system:   CriticSystem,
		prompt:   CriticPrompt(profile, design.Value),
		fallback: CritiqueFallback(profile, design.Value),
		check:    checkScore,
	})
	p.observeStage(StageCritic, critique.Fallback, critique.Duration, critique.Usage)
	p.cooldown(ctx)

	final := runStage(ctx, p, stageSpec[FinalAssets]{
		name:     StageProducer,
		system:   ProducerSystem,
		prompt:   ProducerPrompt(profile, design.Value),
		fallback: FinalAssetsFallback(profile, design.Value, palette, p.cfg.Now().Year()),
		keys:     producerKeys,
	})
	p.observeStage(StageProducer, final.Fallback, final.Duration, final.Usage)

	logoURL := p.logoImage(ctx, profile, design.Value)

	stages := []StageReport{
		design.report(StageDesigner),
		critique.report(StageCritic),
		final.report(StageProducer),
	}
	fallbacks, tokens := 0, 0
	for _, s := range stages {
		if s.Fallback {
			fallbacks++
		}
		tokens += s.Tokens
	}

	duration := time.Since(start)
	assets := &CompleteAssets{
		OrderID:      orderID,
		DesignAssets: design.Value,
		Critique:     critique.Value,
		FinalAssets:  final.Value,
		BusinessInfo: profile,
		LogoImageURL: logoURL,
		GeneratedAt:  p.cfg.Now().UTC(),
		AIProvider:   p.providerName() + "+fal",
		BuildVersion: p.cfg.BuildVersion,
		Models: BuildModels{
			FroBot: p.cfg.FroBotModel,
			Agent:  p.cfg.AgentModel,
			FAL:    p.cfg.ImageModel,
		},
		Metadata: BuildMetadata{
			TotalTokensUsed: tokens,
			BuildDuration:   duration.Milliseconds(),
			AgentIterations: AgentIterations,
			QualityScore:    critique.Value.QualityScore(),
			FallbackStages:  fallbacks,
		},
		Stages: stages,
	}

	if p.observer != nil {
		p.observer.ObserveBuild(duration, fallbacks)
	}
	log.Info("build complete",
		zap.Duration("duration", duration),
		zap.Float64("quality_score", assets.Metadata.QualityScore),
		zap.Int("tokens", tokens),
		zap.Int("fallback_stages", fallbacks),
		zap.Bool("logo_image", logoURL != nil),
	)
	return assets, nil
}

// cooldown waits between stages to stay under provider rate limits. A done
// context ends the wait early.
func (p *Pipeline) cooldown(ctx context.Context) {
	if p.cfg.Cooldown <= 0 {
		return
	}
	logging.L().Debug("stage cooldown", zap.Duration("cooldown", p.cfg.Cooldown))

	t := time.NewTimer(p.cfg.Cooldown)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func (p *Pipeline) logoImage(ctx context.Context, profile BusinessProfile, design DesignAssets) *string {
	if p.images == nil || ctx.Err() != nil {
		return nil
	}
	url := p.images.GenerateLogo(ctx, LogoImagePrompt(profile, design))
	if url == "" {
		logging.L().Info("logo image skipped, SVG generator will be used")
		return nil
	}
	return &url
}

func (p *Pipeline) observeStage(stage string, fallback bool, d time.Duration, usage ai.Usage) {
	if p.observer != nil {
		p.observer.ObserveStage(stage, fallback, d, usage.Total())
	}
}

func (p *Pipeline) providerName() string {
	if p.chat == nil {
		return "offline"
	}
	return string(p.chat.Provider())
}
