// Package handlers implements the HTTP API: brand builds, the FroBot intake
// chat, logo and website generation, Stripe checkout and webhooks, and the
// operator dashboard.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/ai"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/brand"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/db"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/frobot"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/logo"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/middleware"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/payments"

	"github.com/gin-gonic/gin"
)

// Builder runs brand builds. *brand.Pipeline satisfies it.
type Builder interface {
	Run(ctx context.Context, profile brand.BusinessProfile, orderID string) (*brand.CompleteAssets, error)
}

// BuildStore caches finished build bundles. *cache.BuildCache satisfies it.
type BuildStore interface {
	Put(ctx context.Context, orderID string, data []byte) error
	Get(ctx context.Context, orderID string) ([]byte, error)
	Health(ctx context.Context) string
	Stats() (hits, misses int64)
}

// Responder answers intake chats. *frobot.Bot satisfies it.
type Responder interface {
	Respond(ctx context.Context, conversation []ai.Message) frobot.Reply
}

// LogoGenerator produces SVG logos. *logo.Generator satisfies it.
type LogoGenerator interface {
	Generate(ctx context.Context, req logo.Request) (logo.Result, error)
}

// SiteGenerator produces landing-page HTML. *website.Generator satisfies it.
type SiteGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Payments creates checkout sessions and parses webhooks.
// *payments.StripeService satisfies it.
type Payments interface {
	IsConfigured() bool
	CreateCheckoutSession(ctx context.Context, req payments.CheckoutRequest) (*payments.CheckoutSessionResult, error)
	HandleWebhook(payload []byte, signature string) (*payments.WebhookEvent, error)
}

// AccessGate guards the dashboard. *auth.AccessGate satisfies it.
type AccessGate interface {
	middleware.TokenValidator
	Configured() bool
	Verify(code string) error
	IssueToken() (string, time.Time, error)
}

// HealthChecker reports database reachability. *db.Database satisfies it.
type HealthChecker interface {
	Health() error
}

// Recorder receives business metrics. *metrics.Metrics satisfies it.
type Recorder interface {
	RecordOrder(status string)
	RecordCheckout(result string)
	RecordWebhookEvent(eventType, result string)
	RecordGeneratorReply(generator, source string)
}

// Dependencies wires a Handler. Orders and Database are nil when no
// DATABASE_URL is configured; Metrics may be nil.
type Dependencies struct {
	Builder          Builder
	Cache            BuildStore
	FroBot           Responder
	Logos            LogoGenerator
	Sites            SiteGenerator
	Payments         Payments
	Access           AccessGate
	Orders           db.OrderRepository
	Database         HealthChecker
	Metrics          Recorder
	Version          string
	AIProvider       string
	OrderAmountCents int64
}

// Handler contains all the dependencies for API handlers
type Handler struct {
	builder     Builder
	cache       BuildStore
	frobot      Responder
	logos       LogoGenerator
	sites       SiteGenerator
	payments    Payments
	access      AccessGate
	orders      db.OrderRepository
	database    HealthChecker
	metrics     Recorder
	version     string
	aiProvider  string
	orderAmount int64
}

// NewHandler creates a new handler instance
func NewHandler(deps Dependencies) *Handler {
	h := &Handler{
		builder:     deps.Builder,
		cache:       deps.Cache,
		frobot:      deps.FroBot,
		logos:       deps.Logos,
		sites:       deps.Sites,
		payments:    deps.Payments,
		access:      deps.Access,
		orders:      deps.Orders,
		database:    deps.Database,
		metrics:     deps.Metrics,
		version:     deps.Version,
		aiProvider:  deps.AIProvider,
		orderAmount: deps.OrderAmountCents,
	}
	if h.metrics == nil {
		h.metrics = nopRecorder{}
	}
	if h.orderAmount <= 0 {
		h.orderAmount = DefaultOrderAmountCents
	}
	if h.version == "" {
		h.version = brand.BuildVersion
	}
	return h
}

// DefaultOrderAmountCents is the package price recorded on new orders.
const DefaultOrderAmountCents = 500000

// ServiceName is reported by the health endpoint.
const ServiceName = "ezhelp-builder"

// RegisterRoutes mounts every /api route on api.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	agents := api.Group("/agents")
	{
		agents.POST("/build", h.Build)
		agents.GET("/build/:orderId", h.GetBuild)
	}

	api.POST("/chat", h.Chat)
	api.POST("/generate-logo", h.GenerateLogo)
	api.POST("/generate", h.GenerateWebsite)

	api.POST("/checkout", h.Checkout)
	api.POST("/webhooks/stripe", h.StripeWebhook)

	api.POST("/verify-access", h.VerifyAccess)
	dashboard := api.Group("/dashboard", middleware.RequireDashboardToken(h.access))
	{
		dashboard.GET("/orders", h.ListOrders)
		dashboard.GET("/orders/:id", h.GetOrder)
	}
}

// Health reports service status and which backing services are reachable.
// GET /health
func (h *Handler) Health(c *gin.Context) {
	dbStatus := "disabled"
	if h.database != nil {
		dbStatus = "connected"
		if err := h.database.Health(); err != nil {
			dbStatus = "unavailable"
		}
	}

	body := gin.H{
		"status":      "healthy",
		"service":     ServiceName,
		"version":     h.version,
		"database":    dbStatus,
		"cache":       "disabled",
		"ai_provider": h.aiProvider,
		"timestamp":   time.Now().UTC(),
	}
	if h.cache != nil {
		body["cache"] = h.cache.Health(c.Request.Context())
		body["cache_hits"], body["cache_misses"] = h.cache.Stats()
	}

	c.JSON(http.StatusOK, body)
}

type nopRecorder struct{}

func (nopRecorder) RecordOrder(string) {}
func (nopRecorder) RecordCheckout(string) {}
func (nopRecorder) RecordWebhookEvent(string, string) {}
func (nopRecorder) RecordGeneratorReply(string, string) {}
