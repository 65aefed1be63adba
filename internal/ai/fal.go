package ai

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/config"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/logging"

	"go.uber.org/zap"
)

// FALBaseURL is the synchronous FAL inference endpoint
const FALBaseURL = "https://fal.run"

// Logo prompt framing.
const (
	logoPromptPrefix = "Professional business logo design, "
	logoPromptSuffix = ", clean vector style, minimal background, high contrast, suitable for branding, modern design, white or transparent background"
)

// ImageClient generates images through FAL. Every method returns "" when no
// image is available: missing key, upstream failure, or a reply with no URL.
type ImageClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

type falRequest struct {
	Prompt              string `json:"prompt"`
	ImageSize           string `json:"image_size"`
	NumInferenceSteps   int    `json:"num_inference_steps"`
	NumImages           int    `json:"num_images"`
	EnableSafetyChecker bool   `json:"enable_safety_checker"`
}

type falImage struct {
	URL string `json:"url"`
}

type falResponse struct {
	Images []falImage `json:"images"`
	Image  *falImage  `json:"image"`
}

func (r falResponse) url() string {
	if len(r.Images) > 0 && r.Images[0].URL != "" {
		return r.Images[0].URL
	}
	if r.Image != nil {
		return r.Image.URL
	}
	return ""
}

// NewImageClient returns a FAL client for model. An empty key is allowed and
// makes every call return "".
func NewImageClient(apiKey, model string) *ImageClient {
	if model == "" {
		model = config.DefaultLogoModel
	}
	return &ImageClient{
		apiKey:     normalizeAPIKey(apiKey),
		model:      model,
		baseURL:    FALBaseURL,
		httpClient: &http.Client{Timeout: 90 * time.Second},
	}
}

// WithBaseURL points the client at another host (tests, proxies).
func (c *ImageClient) WithBaseURL(baseURL string) *ImageClient {
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// Configured reports whether a FAL key is present
func (c *ImageClient) Configured() bool {
	return c != nil && c.apiKey != ""
}

// Model returns the FAL model path
func (c *ImageClient) Model() string {
	if c == nil {
		return ""
	}
	return c.model
}

// LogoPrompt wraps a concept description in the logo framing sent to FAL.
func LogoPrompt(concept string) string {
	return logoPromptPrefix + concept + logoPromptSuffix
}

// GenerateLogo renders a square logo for the concept description.
func (c *ImageClient) GenerateLogo(ctx context.Context, concept string) string {
	return c.generate(ctx, LogoPrompt(concept))
}

func (c *ImageClient) generate(ctx context.Context, prompt string) string {
	log := logging.L().With(zap.String("image", "logo"), zap.String("model", c.Model()))
	if !c.Configured() {
		log.Warn("FAL key not configured, skipping image generation")
		return ""
	}

	body := falRequest{
		Prompt:              prompt,
		ImageSize:           "square",
		NumInferenceSteps:   4,
		NumImages:           1,
		EnableSafetyChecker: true,
	}
	headers := map[string]string{"Authorization": "Key " + c.apiKey}

	var resp falResponse
	if err := postJSON(ctx, c.httpClient, "fal", c.baseURL+"/"+c.model, headers, body, &resp); err != nil {
		log.Warn("image generation failed", zap.Error(err))
		return ""
	}

	url := resp.url()
	if url == "" {
		log.Warn("image response carried no URL")
		return ""
	}
	log.Info("image generated")
	return url
}
