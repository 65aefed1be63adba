package brand

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/ai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type reply struct {
	content string
	err     error
}

// scriptedChat answers call i with replies[i]; calls past the script fail.
type scriptedChat struct {
	mu       sync.Mutex
	replies  []reply
	requests []ai.ChatRequest
	onCall   func(n int)
}

func (s *scriptedChat) Provider() ai.Provider { return ai.ProviderGroq }

func (s *scriptedChat) Complete(ctx context.Context, req ai.ChatRequest) (*ai.ChatResponse, error) {
	s.mu.Lock()
	n := len(s.requests)
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	if s.onCall != nil {
		s.onCall(n)
	}
	if n >= len(s.replies) {
		return nil, &ai.APIError{Provider: ai.ProviderGroq, StatusCode: 503}
	}
	r := s.replies[n]
	if r.err != nil {
		return nil, r.err
	}
	return &ai.ChatResponse{
		Content:  r.content,
		Provider: ai.ProviderGroq,
		Model:    req.Model,
		Usage:    ai.Usage{InputTokens: 10, OutputTokens: 20},
	}, nil
}

func (s *scriptedChat) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

type stubImages struct {
	url    string
	prompt string
}

func (s *stubImages) GenerateLogo(_ context.Context, concept string) string {
	s.prompt = concept
	return s.url
}

type countingObserver struct {
	stages    map[string]bool
	builds    int
	fallbacks int
}

func (o *countingObserver) ObserveStage(stage string, fallback bool, _ time.Duration, _ int) {
	if o.stages == nil {
		o.stages = map[string]bool{}
	}
	o.stages[stage] = fallback
}

func (o *countingObserver) ObserveBuild(_ time.Duration, fallbackStages int) {
	o.builds++
	o.fallbacks = fallbackStages
}

var fixedNow = func() time.Time { return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC) }

func acmeSpa() BusinessProfile {
	return BusinessProfile{
		Name:     "Acme Spa",
		Industry: "beauty",
		Style:    "luxury",
		Colors:   "black and gold",
		Email:    "a@b.com",
	}
}

func testPipeline(chat ai.ChatClient, images ImageGenerator, opts ...Option) *Pipeline {
	return NewPipeline(chat, images, Config{Cooldown: 0, Now: fixedNow}, opts...)
}

func TestRun_AllUpstreamFailures(t *testing.T) {
	chat := &scriptedChat{}
	obs := &countingObserver{}
	assets, err := testPipeline(chat, &stubImages{}, WithObserver(obs)).Run(context.Background(), acmeSpa(), "ord-1")
	require.NoError(t, err)

	assert.Equal(t, 3, chat.calls())
	assert.Equal(t, "#0F172A", assets.DesignAssets.Logo.PrimaryColor)
	assert.Equal(t, 8.5, assets.Critique.OverallScore)
	assert.Nil(t, assets.LogoImageURL)

	cal := assets.FinalAssets.SocialCalendar
	require.Len(t, cal, CalendarDays)
	for i, post := range cal {
		assert.Equal(t, i+1, post.Day)
	}

	assert.Equal(t, "ord-1", assets.OrderID)
	assert.Equal(t, "groq+fal", assets.AIProvider)
	assert.Equal(t, BuildVersion, assets.BuildVersion)
	assert.Equal(t, 3, assets.Metadata.FallbackStages)
	assert.Equal(t, AgentIterations, assets.Metadata.AgentIterations)
	assert.Equal(t, DefaultQualityScore, assets.Metadata.QualityScore)
	assert.Zero(t, assets.Metadata.TotalTokensUsed)
	assert.Equal(t, fixedNow(), assets.GeneratedAt)
	assert.Contains(t, assets.FinalAssets.WebsiteCopy.Global.Copyright, "© 2026 Acme Spa")

	require.Len(t, assets.Stages, 3)
	for _, s := range assets.Stages {
		assert.True(t, s.Fallback, s.Name)
		assert.NotEmpty(t, s.Error, s.Name)
	}

	assert.Equal(t, 1, obs.builds)
	assert.Equal(t, 3, obs.fallbacks)
	assert.Equal(t, map[string]bool{StageDesigner: true, StageCritic: true, StageProducer: true}, obs.stages)
}

func TestRun_MatchesFallbackGenerators(t *testing.T) {
	p := acmeSpa()
	assets, err := testPipeline(nil, nil).Run(context.Background(), p, "")
	require.NoError(t, err)

	palette := ResolveColors(p.Colors)
	design := DesignFallback(p, palette, ResolveStyle(p.Style))
	assert.Equal(t, design, assets.DesignAssets)
	assert.Equal(t, CritiqueFallback(p, design), assets.Critique)
	assert.Equal(t, FinalAssetsFallback(p, design, palette, 2026), assets.FinalAssets)
	assert.Equal(t, "offline+fal", assets.AIProvider)
	assert.Equal(t, ErrNoChatClient.Error(), assets.Stages[0].Error)
}

func TestRun_PartialDesignerReplyKeepsBrandKit(t *testing.T) {
	chat := &scriptedChat{replies: []reply{
		{content: "```json\n{\"logo\": {\"concept\": \"A gilded lotus\", \"variations\": \"Full color, Icon only\"}}\n```"},
	}}
	p := acmeSpa()
	assets, err := testPipeline(chat, nil).Run(context.Background(), p, "")
	require.NoError(t, err)

	fallback := DesignFallback(p, ResolveColors(p.Colors), ResolveStyle(p.Style))
	design := assets.DesignAssets
	assert.Equal(t, "A gilded lotus", design.Logo.Concept)
	assert.Equal(t, StringList{"Full color", "Icon only"}, design.Logo.Variations)
	assert.Equal(t, "#0F172A", design.Logo.PrimaryColor)
	assert.Equal(t, fallback.BrandKit, design.BrandKit)
	assert.Equal(t, fallback.Voice, design.Voice)

	assert.False(t, assets.Stages[0].Fallback)
	assert.Equal(t, 30, assets.Stages[0].Tokens)
	assert.Equal(t, 30, assets.Metadata.TotalTokensUsed)
	assert.Equal(t, 2, assets.Metadata.FallbackStages)

	// the critic sees the merged design
	assert.Contains(t, chat.requests[1].Messages[1].Content, "LOGO CONCEPT: A gilded lotus")
}

func TestRun_DesignerVoiceShapes(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  StringList
	}{
		{"array", `{"voice":["warm","bold"]}`, StringList{"warm", "bold"}},
		{"string", `{"voice":"warm, bold"}`, StringList{"warm", "bold"}},
		{"tone object", `{"voice":{"tone":"warm, bold"}}`, StringList{"warm", "bold"}},
		{"object without tone", `{"voice":{"energy":"high"}}`, StringList{"professional", "confident", "approachable", "expert", "trustworthy"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chat := &scriptedChat{replies: []reply{{content: tt.reply}}}
			assets, err := testPipeline(chat, nil).Run(context.Background(), acmeSpa(), "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, assets.DesignAssets.Voice)
		})
	}
}

func TestRun_CriticKeepsFallbackScoreOnTypeMismatch(t *testing.T) {
	chat := &scriptedChat{replies: []reply{
		{err: errors.New("boom")},
		{content: `Sure! {"overallScore": "nine", "strengths": "Bold palette, Clear voice", "competitiveAnalysis": "Strong."}`},
	}}
	assets, err := testPipeline(chat, nil).Run(context.Background(), acmeSpa(), "")
	require.NoError(t, err)

	c := assets.Critique
	assert.Equal(t, 8.5, c.OverallScore)
	assert.Equal(t, StringList{"Bold palette", "Clear voice"}, c.Strengths)
	assert.Equal(t, "Strong.", c.CompetitiveAnalysis)
	assert.False(t, assets.Stages[1].Fallback)
}

func TestRun_MistypedListsKeepFallback(t *testing.T) {
	chat := &scriptedChat{replies: []reply{
		{content: `{"voice":"","websitePages":[{"name":5}],"brandKit":{"spacing":["a",2]}}`},
		{content: `{"overallScore":42,"strengths":[1,2]}`},
	}}
	p := acmeSpa()
	assets, err := testPipeline(chat, nil).Run(context.Background(), p, "")
	require.NoError(t, err)

	design := DesignFallback(p, ResolveColors(p.Colors), ResolveStyle(p.Style))
	assert.Equal(t, design, assets.DesignAssets)
	assert.False(t, assets.Stages[0].Fallback)

	critique := CritiqueFallback(p, design)
	assert.Equal(t, critique.Strengths, assets.Critique.Strengths)
	assert.NotEmpty(t, assets.Critique.Strengths)
	assert.Equal(t, 8.5, assets.Critique.OverallScore)
	assert.Equal(t, 8.5, assets.Metadata.QualityScore)
}

func TestRun_OffScaleScoreKeepsFallback(t *testing.T) {
	for _, score := range []string{"42", "-3", "0", "10.5"} {
		t.Run(score, func(t *testing.T) {
			chat := &scriptedChat{replies: []reply{
				{err: errors.New("boom")},
				{content: `{"overallScore":` + score + `,"competitiveAnalysis":"Strong."}`},
			}}
			assets, err := testPipeline(chat, nil).Run(context.Background(), acmeSpa(), "")
			require.NoError(t, err)
			assert.Equal(t, 8.5, assets.Critique.OverallScore)
			assert.Equal(t, assets.Critique.OverallScore, assets.Metadata.QualityScore)
			assert.Equal(t, "Strong.", assets.Critique.CompetitiveAnalysis)
		})
	}
}

func TestRun_QualityScoreFromCritic(t *testing.T) {
	chat := &scriptedChat{replies: []reply{
		{err: errors.New("boom")},
		{content: `{"overallScore": 9.2}`},
	}}
	assets, err := testPipeline(chat, nil).Run(context.Background(), acmeSpa(), "")
	require.NoError(t, err)
	assert.Equal(t, 9.2, assets.Metadata.QualityScore)
}

func TestRun_ProducerMergesOverFallback(t *testing.T) {
	chat := &scriptedChat{replies: []reply{
		{err: errors.New("boom")},
		{err: errors.New("boom")},
		{content: `{
			"websiteCopy": {"home": {"headline": "Glow Like Never Before"}, "about": {"story": "Founded by two estheticians."}},
			"socialCalendar": [{"day": 1, "post": "hi"}],
			"clientPortalFeatures": ["Dashboard"]
		}`},
	}}
	p := acmeSpa()
	assets, err := testPipeline(chat, nil).Run(context.Background(), p, "")
	require.NoError(t, err)

	palette := ResolveColors(p.Colors)
	fb := FinalAssetsFallback(p, DesignFallback(p, palette, ResolveStyle(p.Style)), palette, 2026)
	final := assets.FinalAssets

	assert.Equal(t, "Glow Like Never Before", final.WebsiteCopy.Home.Headline)
	assert.Equal(t, fb.WebsiteCopy.Home.MetaTitle, final.WebsiteCopy.Home.MetaTitle)
	assert.Equal(t, "Founded by two estheticians.", final.WebsiteCopy.About.Story)
	assert.Equal(t, fb.WebsiteCopy.About.Mission, final.WebsiteCopy.About.Mission)
	assert.Equal(t, fb.WebsiteCopy.Pricing, final.WebsiteCopy.Pricing)
	assert.Equal(t, fb.BrandGuidelines, final.BrandGuidelines)
	assert.Equal(t, fb.LogoFinal, final.LogoFinal)

	// only logoFinal, brandGuidelines and websiteCopy are taken from the model
	assert.Len(t, final.SocialCalendar, CalendarDays)
	assert.Equal(t, fb.ClientPortalFeatures, final.ClientPortalFeatures)
	assert.False(t, assets.Stages[2].Fallback)
}

func TestRun_LogoImage(t *testing.T) {
	images := &stubImages{url: "https://cdn.fal.media/logo.png"}
	assets, err := testPipeline(nil, images).Run(context.Background(), acmeSpa(), "")
	require.NoError(t, err)

	require.NotNil(t, assets.LogoImageURL)
	assert.Equal(t, "https://cdn.fal.media/logo.png", *assets.LogoImageURL)
	assert.Contains(t, images.prompt, `luxury professional logo design for "Acme Spa", beauty business, black and gold color scheme`)
	assert.Contains(t, images.prompt, "vector style, white background")
}

func TestRun_CancelledContextSkipsUpstream(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	chat := &scriptedChat{}
	images := &stubImages{url: "https://x"}
	assets, err := testPipeline(chat, images).Run(ctx, acmeSpa(), "")
	require.NoError(t, err)

	assert.Zero(t, chat.calls())
	assert.Nil(t, assets.LogoImageURL)
	assert.Len(t, assets.FinalAssets.SocialCalendar, CalendarDays)
	for _, s := range assets.Stages {
		assert.Equal(t, context.Canceled.Error(), s.Error)
	}
}

func TestRun_CancelDuringCooldownEndsWait(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	chat := &scriptedChat{onCall: func(int) { cancel() }}
	p := NewPipeline(chat, nil, Config{Cooldown: time.Hour, Now: fixedNow})

	done := make(chan struct{})
	var assets *CompleteAssets
	go func() {
		defer close(done)
		assets, _ = p.Run(ctx, acmeSpa(), "")
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("cooldown ignored cancellation")
	}
	require.NotNil(t, assets)
	assert.Equal(t, 1, chat.calls())
	assert.Equal(t, 3, assets.Metadata.FallbackStages)
}

func TestRun_InvalidProfile(t *testing.T) {
	_, err := testPipeline(nil, nil).Run(context.Background(), BusinessProfile{Name: "  "}, "")
	assert.ErrorIs(t, err, ErrInvalidProfile)
}

func TestRun_EmptyColorsUseBlueAndWhite(t *testing.T) {
	p := acmeSpa()
	p.Colors = ""
	assets, err := testPipeline(nil, nil).Run(context.Background(), p, "")
	require.NoError(t, err)
	assert.Equal(t, ResolveColors("blue and white"), assets.DesignAssets.BrandKit.Colors)
}

func TestCompleteAssets_JSONShape(t *testing.T) {
	assets, err := testPipeline(nil, nil).Run(context.Background(), acmeSpa(), "ord-9")
	require.NoError(t, err)

	data, err := json.Marshal(assets)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	for _, key := range []string{"designAssets", "critique", "finalAssets", "businessInfo", "generatedAt", "aiProvider", "buildVersion", "models", "metadata", "stages"} {
		assert.Contains(t, m, key)
	}
	assert.Nil(t, m["logoImageUrl"])
	assert.Contains(t, m, "logoImageUrl")
}

func TestFallbacksAreDeterministic(t *testing.T) {
	p := acmeSpa()
	palette, style := ResolveColors(p.Colors), ResolveStyle(p.Style)

	assert.Equal(t, DesignFallback(p, palette, style), DesignFallback(p, palette, style))
	d := DesignFallback(p, palette, style)
	assert.Equal(t, CritiqueFallback(p, d), CritiqueFallback(p, d))
	assert.Equal(t, FinalAssetsFallback(p, d, palette, 2026), FinalAssetsFallback(p, d, palette, 2026))
}

func TestSocialCalendar(t *testing.T) {
	cal := SocialCalendar(acmeSpa())
	require.Len(t, cal, 30)

	assert.Equal(t, "Instagram", cal[0].Platform)
	assert.Equal(t, "Image Post", cal[0].ContentType)
	assert.Equal(t, "9:00 AM", cal[0].BestTime)
	assert.Equal(t, "Comment below!", cal[0].CallToAction)
	assert.Equal(t, "Link in bio!", cal[1].CallToAction)
	assert.Equal(t, "video", cal[2].MediaType)
	assert.Equal(t, "image", cal[3].MediaType)
	assert.Equal(t, StringList{"#AcmeSpa", "#beauty", "#radiant", "#business", "#entrepreneur"}, cal[0].Hashtags)
	assert.Equal(t, "Recap content", cal[29].EngagementHook)
}
