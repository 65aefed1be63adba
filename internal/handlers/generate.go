package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/frobot"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/logging"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/logo"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Chat answers one FroBot turn. Upstream failures still return 200 with an
// apology reply and fallback set.
// POST /api/chat
func (h *Handler) Chat(c *gin.Context) {
	var req frobot.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	conversation, err := req.Conversation()
	switch {
	case errors.Is(err, frobot.ErrNoMessages):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No valid messages provided"})
		return
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	reply := h.frobot.Respond(c.Request.Context(), conversation)
	h.metrics.RecordGeneratorReply("frobot", replySource(reply.Fallback))

	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"message":  reply.Message,
		"response": reply.Message,
		"fallback": reply.Fallback,
	})
}

// LogoRequest is the body of POST /api/generate-logo.
type LogoRequest struct {
	BusinessName string `json:"businessName"`
	Colors       string `json:"colors"`
	Slogan       string `json:"slogan"`
	Category     string `json:"category"`
}

// GenerateLogo returns an SVG logo, drawn by the model when it can be and by
// the template otherwise.
// POST /api/generate-logo
func (h *Handler) GenerateLogo(c *gin.Context) {
	var req LogoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid businessName"})
		return
	}

	result, err := h.logos.Generate(c.Request.Context(), logo.Request{
		BusinessName: req.BusinessName,
		Colors:       req.Colors,
		Slogan:       req.Slogan,
		Category:     req.Category,
	})
	if errors.Is(err, logo.ErrMissingName) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid businessName"})
		return
	}
	if err != nil {
		logging.L().Error("logo generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate logo"})
		return
	}

	h.metrics.RecordGeneratorReply("logo", result.Source)
	c.JSON(http.StatusOK, gin.H{"svg": result.SVG, "source": result.Source})
}

// WebsiteRequest is the body of POST /api/generate. BusinessInfo is accepted
// for client compatibility; the prompt already carries the brand details.
type WebsiteRequest struct {
	Prompt       string          `json:"prompt"`
	BusinessInfo json.RawMessage `json:"businessInfo,omitempty"`
}

// GenerateWebsite returns a single-file Tailwind landing page.
// POST /api/generate
func (h *Handler) GenerateWebsite(c *gin.Context) {
	var req WebsiteRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Prompt) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid prompt"})
		return
	}

	html, err := h.sites.Generate(c.Request.Context(), req.Prompt)
	if err != nil {
		logging.L().Error("website generation failed", zap.Error(err))
		h.metrics.RecordGeneratorReply("website", "error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.metrics.RecordGeneratorReply("website", sourceAI)
	c.JSON(http.StatusOK, gin.H{"html": html})
}

const (
	sourceAI       = "ai"
	sourceFallback = "fallback"
)

func replySource(fallback bool) string {
	if fallback {
		return sourceFallback
	}
	return sourceAI
}
