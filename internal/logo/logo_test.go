package logo

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/ai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type replyChat struct {
	reply string
	err   error
	got   ai.ChatRequest
}

func (c *replyChat) Provider() ai.Provider { return ai.ProviderGroq }

func (c *replyChat) Complete(ctx context.Context, req ai.ChatRequest) (*ai.ChatResponse, error) {
	c.got = req
	if c.err != nil {
		return nil, c.err
	}
	return &ai.ChatResponse{Content: c.reply, Provider: ai.ProviderGroq, Model: req.Model}, nil
}

func TestGenerate_UsesModelSVG(t *testing.T) {
	chat := &replyChat{reply: "Here you go:\n```svg\n<svg viewBox=\"0 0 300 100\"><text>Acme</text></svg>\n```\nEnjoy!"}
	g := NewGenerator(chat, "")

	res, err := g.Generate(context.Background(), Request{BusinessName: " Acme Spa ", Colors: "gold and black", Slogan: "Relax"})
	require.NoError(t, err)

	assert.Equal(t, SourceAI, res.Source)
	assert.Equal(t, `<svg viewBox="0 0 300 100"><text>Acme</text></svg>`, res.SVG)

	assert.Equal(t, 1500, chat.got.MaxTokens)
	assert.InDelta(t, 0.7, chat.got.Temperature, 1e-9)
	require.Len(t, chat.got.Messages, 2)
	assert.Equal(t, ai.RoleSystem, chat.got.Messages[0].Role)
	user := chat.got.Messages[1].Content
	assert.Contains(t, user, `SVG logo for "Acme Spa"`)
	assert.Contains(t, user, "Style: modern")
	assert.Contains(t, user, "Colors: Primary #0F172A, Secondary #F59E0B")
	assert.Contains(t, user, "Slogan: Relax")
}

func TestGenerate_FallsBackToTemplate(t *testing.T) {
	tests := []struct {
		name string
		chat ai.ChatClient
	}{
		{"no chat client", nil},
		{"upstream error", &replyChat{err: &ai.APIError{Provider: ai.ProviderGroq, StatusCode: 500}}},
		{"no svg in reply", &replyChat{reply: "I cannot draw logos."}},
		{"unterminated svg", &replyChat{reply: "<svg><circle/>"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := NewGenerator(tt.chat, "m").Generate(context.Background(), Request{BusinessName: "Acme Spa", Category: "bold"})
			require.NoError(t, err)
			assert.Equal(t, SourceFallback, res.Source)
			assert.True(t, strings.HasPrefix(res.SVG, "<svg"))
			assert.True(t, strings.HasSuffix(res.SVG, "</svg>"))
			assert.Contains(t, res.SVG, "ACME SPA")
		})
	}
}

func TestGenerate_MissingName(t *testing.T) {
	_, err := NewGenerator(nil, "").Generate(context.Background(), Request{BusinessName: "   "})
	assert.True(t, errors.Is(err, ErrMissingName))
}

func TestFallback_Variants(t *testing.T) {
	tests := []struct {
		category string
		want     []string
	}{
		{"luxury", []string{`id="luxuryGrad"`, "Georgia, serif", `x2="170"`, ">AS<", ">Acme Spa<"}},
		{"Elegant and calm", []string{`id="luxuryGrad"`}},
		{"bold", []string{"Arial Black", `width="96"`, ">ACME SPA<"}},
		{"strong", []string{"Arial Black"}},
		{"modern", []string{`id="grad1"`, `letter-spacing="2">MODERN<`}},
		{"", []string{`id="grad1"`, ">PROFESSIONAL<"}},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			svg := Fallback("Acme Spa", "#F59E0B", "#0F172A", tt.category)
			for _, w := range tt.want {
				assert.Contains(t, svg, w)
			}
			assert.NotContains(t, svg, "%!")
		})
	}
}

func TestFallback_EscapesMarkup(t *testing.T) {
	svg := Fallback(`<script>alert(1)</script> & Co`, defaultPrimary, defaultSecondary, "modern")
	assert.NotContains(t, svg, "<script>")
	assert.Contains(t, svg, "&lt;script&gt;")
	assert.Contains(t, svg, "&amp; Co")
}

func TestParseColors(t *testing.T) {
	tests := []struct {
		text          string
		wantPrimary   string
		wantSecondary string
	}{
		{"", defaultPrimary, defaultSecondary},
		{"something sparkly", defaultPrimary, defaultSecondary},
		{"teal", "#14B8A6", defaultSecondary},
		{"gold and black", "#0F172A", "#F59E0B"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			p, s := ParseColors(tt.text)
			assert.Equal(t, tt.wantPrimary, p)
			assert.Equal(t, tt.wantSecondary, s)
		})
	}
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "AS", Initials("acme spa and wellness"))
	assert.Equal(t, "Z", Initials("zed"))
	assert.Equal(t, "", Initials("  "))
	assert.Equal(t, "ÉC", Initials("école chic"))
}

func TestExtractSVG(t *testing.T) {
	svg, ok := ExtractSVG("```xml\n<SVG width=\"1\"></SVG>```")
	require.True(t, ok)
	assert.Equal(t, `<SVG width="1"></SVG>`, svg)
}
