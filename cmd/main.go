package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/ai"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/auth"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/brand"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/cache"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/config"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/db"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/frobot"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/handlers"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/logging"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/logo"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/metrics"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/middleware"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/payments"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/website"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	shutdownTimeout        = 15 * time.Second
	orderCollectorInterval = 30 * time.Second
)

func main() {
	log.Println("Starting EZ Help Technology builder service")

	// Load .env file
	if err := godotenv.Load(); err != nil {
		// Try parent directory for .env
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("WARNING: No .env file found, using environment variables")
		}
	}

	secrets, err := config.ValidateAndLogSecrets()
	if err != nil {
		log.Fatalf("CRITICAL: refusing to start with invalid secrets: %v", err)
	}

	cfg := config.Load()
	logging.Init(secrets.IsProduction)
	defer logging.Sync()
	if secrets.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	app := newApp(cfg)
	defer app.close()

	httpServer := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           app.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Printf("Server ready on port %s", cfg.Server.Port)
		log.Printf("Health check: http://localhost:%s/health", cfg.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	// Graceful shutdown: listen for SIGTERM/SIGINT (Render, K8s, Docker stop)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logging.L().Error("server failed", zap.Error(err))
		app.close()
		logging.Sync()
		os.Exit(1)
	case sig := <-quit:
		log.Printf("Received signal %v, starting graceful shutdown...", sig)
	}

	// Give in-flight builds up to 15 seconds to complete
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}
	log.Println("HTTP server stopped")
}

// app owns everything main starts and must stop.
type app struct {
	router    *gin.Engine
	limiter   *middleware.IPRateLimiter
	collector *metrics.OrderMetricsCollector
	database  *db.Database
	cache     *cache.BuildCache
	closed    bool
}

func newApp(cfg *config.AppConfig) *app {
	a := &app{}
	m := metrics.Get()

	deps := handlers.Dependencies{
		Metrics:          m,
		Version:          brand.BuildVersion,
		OrderAmountCents: cfg.Pipeline.OrderAmountCents,
	}

	// Orders are optional: without DATABASE_URL builds still run, unrecorded.
	if cfg.Database.Enabled() {
		database, err := db.Open(cfg.Database)
		if err != nil {
			logging.L().Warn("database unavailable, orders will not be recorded", zap.Error(err))
		} else {
			a.database = database
			deps.Orders = db.NewOrderStore(database)
			deps.Database = database

			a.collector = metrics.NewOrderMetricsCollector(database.DB, orderCollectorInterval)
			a.collector.Start(context.Background())
		}
	} else {
		log.Println("DATABASE_URL not set - order persistence disabled")
	}

	a.cache = newBuildCache(cfg.Redis, m)
	deps.Cache = a.cache

	router := ai.NewRouterFromConfig(cfg.AI)
	images := ai.NewImageClient(cfg.Image.FalKey, cfg.Image.LogoModel)
	if !images.Configured() {
		log.Println("FAL_KEY not set - builds will ship without a logo image")
	}

	deps.AIProvider = string(router.Provider())
	deps.Builder = brand.NewPipeline(router, images, brand.Config{
		AgentModel:  cfg.AI.AgentModel,
		FroBotModel: cfg.AI.FroBotModel,
		ImageModel:  images.Model(),
		Cooldown:    cfg.Pipeline.StageCooldown,
	}, brand.WithObserver(m))
	deps.FroBot = frobot.New(router, cfg.AI.FroBotModel)
	deps.Logos = logo.NewGenerator(router, cfg.AI.AgentModel)
	deps.Sites = website.NewGenerator(router, cfg.AI.AgentModel)
	deps.Payments = payments.NewStripeService(cfg.Stripe)

	access := cfg.Access
	if access.TokenSecret == "" && !config.IsProductionEnvironment() {
		secret, err := config.GenerateSecureSecret(32)
		if err == nil {
			access.TokenSecret = secret
			log.Println("WARNING: DASHBOARD_TOKEN_SECRET not set - using a per-process secret")
		}
	}
	deps.Access = auth.NewAccessGate(access)

	m.SetBuildInfo(brand.BuildVersion, deps.AIProvider)

	a.limiter = middleware.NewIPRateLimiter(
		middleware.PerMinute(cfg.Server.RateLimitPerMinute),
		cfg.Server.RateLimitBurst,
	)
	a.router = setupRoutes(cfg.Server, handlers.NewHandler(deps), a.limiter)

	logging.L().Info("builder service initialized",
		zap.String("version", brand.BuildVersion),
		zap.String("environment", cfg.Environment),
		zap.String("ai_provider", deps.AIProvider),
		zap.Bool("ai_fallback", router.HasFallback()),
		zap.String("cache", a.cache.Backend()),
		zap.Bool("database", a.database != nil),
	)
	return a
}

// newBuildCache connects to Redis when REDIS_URL is set and falls back to
// the in-process cache when it is not or the server does not answer.
func newBuildCache(cfg config.RedisConfig, recorder cache.Recorder) *cache.BuildCache {
	if cfg.URL == "" {
		return cache.New(nil, cfg.CacheTTL, recorder)
	}

	client, err := cache.NewRedisClient(context.Background(), cfg.URL)
	if err != nil {
		logging.L().Warn("redis unavailable, using in-memory build cache", zap.Error(err))
		return cache.New(nil, cfg.CacheTTL, recorder)
	}
	return cache.New(client, cfg.CacheTTL, recorder)
}

func setupRoutes(cfg config.ServerConfig, h *handlers.Handler, limiter *middleware.IPRateLimiter) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	router.Use(middleware.SecurityHeaders())

	// Add Prometheus metrics middleware (if enabled)
	if cfg.EnableMetrics {
		router.Use(metrics.PrometheusMiddleware())
		router.GET("/metrics", metrics.PrometheusHandler())
	}
	router.Use(middleware.Logger())

	router.GET("/health", h.Health)

	api := router.Group("/api")
	api.Use(middleware.RateLimit(limiter))
	h.RegisterRoutes(api)

	return router
}

// close releases background workers and connections. Safe to call twice.
func (a *app) close() {
	if a.closed {
		return
	}
	a.closed = true

	a.limiter.Stop()
	if a.collector != nil {
		a.collector.Stop()
	}
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			log.Printf("Build cache close error: %v", err)
		}
	}
	if a.database != nil {
		if err := a.database.Close(); err != nil {
			log.Printf("Database close error: %v", err)
		}
	}
	log.Println("Graceful shutdown complete")
}
