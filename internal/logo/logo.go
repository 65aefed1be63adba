// Package logo renders a vector wordmark for a business. The chat model is
// asked for raw SVG first; anything that does not contain a complete <svg>
// element is replaced by a deterministic template built from the initials.
package logo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/ai"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/brand"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/config"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/logging"

	"go.uber.org/zap"
)

// Source values reported with a generated logo.
const (
	SourceAI       = "ai"
	SourceFallback = "fallback"
)

const (
	defaultPrimary   = "#3B82F6"
	defaultSecondary = "#1E40AF"
	defaultCategory  = "modern"

	maxTokens = 1500

	systemPrompt = "You are an SVG logo designer. Output ONLY valid SVG code. No explanations, no markdown, no code blocks. Just the raw SVG starting with <svg and ending with </svg>."
)

// ErrMissingName is returned when the request carries no business name.
var ErrMissingName = errors.New("logo: missing business name")

var (
	fenceRe = regexp.MustCompile("(?i)```(?:svg|xml|html)?")
	svgRe   = regexp.MustCompile(`(?is)<svg.*</svg>`)
)

// Request describes the logo to draw.
type Request struct {
	BusinessName string `json:"businessName"`
	Colors       string `json:"colors"`
	Slogan       string `json:"slogan"`
	Category     string `json:"category"`
}

// Result is the rendered SVG and where it came from.
type Result struct {
	SVG    string `json:"svg"`
	Source string `json:"source"`
}

// Generator produces SVG logos. A nil chat client always uses the template.
type Generator struct {
	chat  ai.ChatClient
	model string
}

// NewGenerator returns a Generator that prompts model through chat.
func NewGenerator(chat ai.ChatClient, model string) *Generator {
	if model == "" {
		model = config.DefaultAgentModel
	}
	return &Generator{chat: chat, model: model}
}

// Generate never fails once the request is valid: upstream errors and
// unusable replies fall through to the template.
func (g *Generator) Generate(ctx context.Context, req Request) (Result, error) {
	name := strings.TrimSpace(req.BusinessName)
	if name == "" {
		return Result{}, ErrMissingName
	}
	req.BusinessName = name
	if strings.TrimSpace(req.Category) == "" {
		req.Category = defaultCategory
	}
	primary, secondary := ParseColors(req.Colors)

	log := logging.L().With(zap.String("business", name), zap.String("category", req.Category))

	if g != nil && g.chat != nil {
		resp, err := g.chat.Complete(ctx, ai.ChatRequest{
			Model: g.model,
			Messages: []ai.Message{
				{Role: ai.RoleSystem, Content: systemPrompt},
				{Role: ai.RoleUser, Content: prompt(req, primary, secondary)},
			},
			Temperature: ai.DefaultTemperature,
			MaxTokens:   maxTokens,
		})
		switch {
		case err != nil:
			log.Warn("logo completion failed, using template", zap.Error(err))
		default:
			if svg, ok := ExtractSVG(resp.Content); ok {
				log.Info("logo generated", zap.String("provider", string(resp.Provider)))
				return Result{SVG: svg, Source: SourceAI}, nil
			}
			log.Warn("logo reply held no svg element, using template")
		}
	}

	return Result{SVG: Fallback(name, primary, secondary, req.Category), Source: SourceFallback}, nil
}

func prompt(req Request, primary, secondary string) string {
	slogan := ""
	if req.Slogan != "" {
		slogan = "Slogan: " + req.Slogan
	}
	return fmt.Sprintf(`Generate a simple, clean SVG logo for "%s".
Style: %s
Colors: Primary %s, Secondary %s
%s

Requirements:
- Return ONLY the SVG code, nothing else
- viewBox="0 0 300 100" width="300" height="100"
- Use only basic shapes (rect, circle, text, path)
- Include the business name as text
- Keep it simple and professional
- No external fonts or images`, req.BusinessName, req.Category, primary, secondary, slogan)
}

// ExtractSVG strips code fences and returns the outermost <svg> element.
func ExtractSVG(reply string) (string, bool) {
	cleaned := strings.TrimSpace(fenceRe.ReplaceAllString(reply, ""))
	svg := svgRe.FindString(cleaned)
	if svg == "" {
		return "", false
	}
	return svg, true
}

// ParseColors picks primary and secondary hex values from free color text.
// The first known name becomes primary, the second secondary.
func ParseColors(text string) (primary, secondary string) {
	primary, secondary = defaultPrimary, defaultSecondary
	names := brand.MatchColors(text)
	if len(names) > 0 {
		primary, _ = brand.ColorHex(names[0])
	}
	if len(names) > 1 {
		secondary, _ = brand.ColorHex(names[1])
	}
	return primary, secondary
}

// Initials returns up to two upper-case initials of the words in name.
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(r)
		if utf8.RuneCountInString(b.String()) == 2 {
			break
		}
	}
	return strings.ToUpper(b.String())
}
