// Package website turns a free-form prompt into a single self-contained
// Tailwind HTML page.
package website

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/ai"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/config"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/logging"

	"go.uber.org/zap"
)

// TailwindScript is the CDN tag every generated page must carry.
const TailwindScript = `<script src="https://cdn.tailwindcss.com"></script>`

const systemPrompt = `You are an expert web designer. Generate complete, valid HTML with TailwindCSS (via CDN).

Rules:
- Return ONLY the HTML code, no markdown, no explanations, no code blocks
- Include the TailwindCSS CDN: <script src="https://cdn.tailwindcss.com"></script>
- Create a complete HTML document with <!DOCTYPE html>, <html>, <head>, and <body>
- Make the design mobile-responsive using Tailwind classes
- Use modern, professional styling with gradients and shadows
- Include: hero section, features/services, about, CTA, and footer
- Use the brand colors provided in the prompt
- Add smooth hover effects and transitions
- Include placeholder images using https://placehold.co/`

const skeleton = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  ` + TailwindScript + `
  <title>Generated Website</title>
</head>
<body class="bg-gray-50">
%s
</body>
</html>`

var (
	// ErrMissingPrompt is returned for a blank prompt.
	ErrMissingPrompt = errors.New("website: missing prompt")
	// ErrNoChatClient is returned when no chat provider is wired.
	ErrNoChatClient = errors.New("website: no chat client configured")
)

var leadFenceRe = regexp.MustCompile("(?i)```(?:html)?")

// Generator asks the chat model for a page.
type Generator struct {
	chat  ai.ChatClient
	model string
}

// NewGenerator returns a Generator using model.
func NewGenerator(chat ai.ChatClient, model string) *Generator {
	if model == "" {
		model = config.DefaultAgentModel
	}
	return &Generator{chat: chat, model: model}
}

// Generate returns cleaned HTML for prompt. Unlike the brand pipeline there
// is no template fallback: an upstream failure is returned to the caller.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrMissingPrompt
	}
	if g == nil || g.chat == nil {
		return "", ErrNoChatClient
	}

	resp, err := g.chat.Complete(ctx, ai.ChatRequest{
		Model: g.model,
		Messages: []ai.Message{
			{Role: ai.RoleSystem, Content: systemPrompt},
			{Role: ai.RoleUser, Content: prompt},
		},
		Temperature: ai.DefaultTemperature,
		MaxTokens:   ai.DefaultMaxTokens,
	})
	if err != nil {
		logging.L().Warn("website completion failed", zap.String("provider", string(g.chat.Provider())), zap.Error(err))
		return "", fmt.Errorf("website generation: %w", err)
	}

	html := Clean(resp.Content)
	logging.L().Info("website generated",
		zap.String("provider", string(resp.Provider)),
		zap.Int("bytes", len(html)),
		zap.Int("tokens", resp.Usage.Total()),
	)
	return html, nil
}

// Clean normalises a model reply into a full HTML document: code fences are
// stripped, chatter before the document is dropped, fragments are wrapped in
// a skeleton and the Tailwind CDN is injected into <head> when missing.
func Clean(reply string) string {
	html := strings.TrimSpace(reply)

	if strings.HasPrefix(html, "```") {
		html = strings.TrimSpace(leadFenceRe.ReplaceAllString(html, ""))
	}
	if strings.HasSuffix(html, "```") {
		html = strings.TrimSpace(strings.TrimSuffix(html, "```"))
	}

	start := strings.Index(html, "<!DOCTYPE")
	if start < 0 {
		start = strings.Index(html, "<html")
	}
	if start > 0 {
		html = html[start:]
	}

	if !strings.Contains(html, "<!DOCTYPE") && !strings.Contains(html, "<html") {
		html = fmt.Sprintf(skeleton, html)
	}

	if !strings.Contains(html, "tailwindcss.com") {
		html = strings.Replace(html, "</head>", "  "+TailwindScript+"\n</head>", 1)
	}
	return html
}
