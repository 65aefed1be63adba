package config

import (
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// AppConfig holds all application configuration (non-secret values plus the
// credentials each integration needs). It is built once at startup and passed
// explicitly to every component that needs it.
type AppConfig struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	AI       AIConfig
	Image    ImageConfig
	Stripe   StripeConfig
	Access   AccessConfig
	Pipeline PipelineConfig

	Environment string
}

// ServerConfig configures the HTTP listener and its middleware.
type ServerConfig struct {
	Port               string
	EnableMetrics      bool
	RateLimitPerMinute int
	RateLimitBurst     int
	CORSAllowedOrigins []string
}

// DatabaseConfig describes the optional order database. Driver is "postgres",
// "sqlite" or "" when persistence is disabled.
type DatabaseConfig struct {
	Driver   string
	DSN      string
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	TimeZone string
}

// Enabled reports whether a database has been configured.
func (d DatabaseConfig) Enabled() bool {
	return d.Driver != ""
}

// RedisConfig configures the build cache.
type RedisConfig struct {
	URL      string
	CacheTTL time.Duration
}

// AIConfig selects the chat provider and carries every provider credential.
type AIConfig struct {
	Provider        string
	GroqAPIKey      string
	OpenAIAPIKey    string
	TogetherAPIKey  string
	AnthropicAPIKey string
	OllamaBaseURL   string
	AgentModel      string
	FroBotModel     string
}

// ImageConfig configures the FAL image client.
type ImageConfig struct {
	FalKey    string
	LogoModel string
}

// StripeConfig configures checkout and webhook verification.
type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	SuccessURL    string
	CancelURL     string
}

// AccessConfig configures the dashboard access gate.
type AccessConfig struct {
	Code        string
	TokenSecret string
	TokenTTL    time.Duration
}

// PipelineConfig tunes the build pipeline.
type PipelineConfig struct {
	StageCooldown    time.Duration
	OrderAmountCents int64
}

// Default model identifiers.
const (
	DefaultAgentModel = "llama-3.1-8b-instant"
	DefaultLogoModel  = "fal-ai/flux/schnell"
)

var providerDefaultModels = map[string]string{
	"groq":         DefaultAgentModel,
	"openai":       "gpt-4o-mini",
	"together":     "meta-llama/Meta-Llama-3.1-70B-Instruct-Turbo",
	"anthropic":    "claude-3-5-sonnet-20241022",
	"ollama":       "llama3.1:8b",
	"pollinations": "openai",
}

// DefaultModelFor returns the chat model used for provider when AI_MODEL_AGENT
// and AI_MODEL_FROBOT are unset. Unknown providers get the Groq default.
func DefaultModelFor(provider string) string {
	if m, ok := providerDefaultModels[strings.ToLower(provider)]; ok {
		return m
	}
	return DefaultAgentModel
}

// Load reads the configuration from environment variables.
func Load() *AppConfig {
	provider := strings.ToLower(getEnv("AI_PROVIDER", "groq"))
	defaultModel := DefaultModelFor(provider)

	return &AppConfig{
		Server: ServerConfig{
			Port:               getEnv("PORT", "8080"),
			EnableMetrics:      getEnvBool("ENABLE_METRICS", true),
			RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
			RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 10),
			CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Database: ParseDatabaseURL(os.Getenv("DATABASE_URL")),
		Redis: RedisConfig{
			URL:      os.Getenv("REDIS_URL"),
			CacheTTL: getEnvDuration("BUILD_CACHE_TTL", 24*time.Hour),
		},
		AI: AIConfig{
			Provider:        provider,
			GroqAPIKey:      os.Getenv("GROQ_API_KEY"),
			OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
			TogetherAPIKey:  os.Getenv("TOGETHER_API_KEY"),
			AnthropicAPIKey: getEnvAny([]string{"ANTHROPIC_API_KEY", "CLAUDE_API_KEY"}, ""),
			OllamaBaseURL:   getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			AgentModel:      getEnv("AI_MODEL_AGENT", defaultModel),
			FroBotModel:     getEnv("AI_MODEL_FROBOT", defaultModel),
		},
		Image: ImageConfig{
			FalKey:    getEnvAny([]string{"FAL_KEY", "FAL_API_KEY"}, ""),
			LogoModel: getEnv("FAL_LOGO_MODEL", DefaultLogoModel),
		},
		Stripe: StripeConfig{
			SecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
			WebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
			SuccessURL:    getEnv("STRIPE_SUCCESS_URL", "http://localhost:3000/success"),
			CancelURL:     getEnv("STRIPE_CANCEL_URL", "http://localhost:3000/cancel"),
		},
		Access: AccessConfig{
			Code:        os.Getenv("DASHBOARD_ACCESS_CODE"),
			TokenSecret: os.Getenv("DASHBOARD_TOKEN_SECRET"),
			TokenTTL:    getEnvDuration("DASHBOARD_TOKEN_TTL", 12*time.Hour),
		},
		Pipeline: PipelineConfig{
			StageCooldown:    getEnvDuration("BUILD_STAGE_COOLDOWN", 10*time.Second),
			OrderAmountCents: int64(getEnvInt("BUILD_ORDER_AMOUNT_CENTS", 500000)),
		},
		Environment: GetEnvironment(),
	}
}

// ParseDatabaseURL turns DATABASE_URL into a DatabaseConfig. postgres:// and
// postgresql:// URLs are split into their components; sqlite://path and
// file: URLs select the embedded SQLite driver. An empty or unparsable value
// disables persistence.
func ParseDatabaseURL(databaseURL string) DatabaseConfig {
	if databaseURL == "" {
		return DatabaseConfig{}
	}

	switch {
	case strings.HasPrefix(databaseURL, "sqlite://"):
		return DatabaseConfig{Driver: "sqlite", DSN: strings.TrimPrefix(databaseURL, "sqlite://")}
	case strings.HasPrefix(databaseURL, "file:"):
		return DatabaseConfig{Driver: "sqlite", DSN: databaseURL}
	}

	u, err := url.Parse(databaseURL)
	if err != nil || (u.Scheme != "postgres" && u.Scheme != "postgresql") {
		log.Printf("WARNING: DATABASE_URL is not a postgres or sqlite URL, order persistence disabled")
		return DatabaseConfig{}
	}

	password, _ := u.User.Password()

	port := 5432
	if u.Port() != "" {
		if p, err := strconv.Atoi(u.Port()); err == nil {
			port = p
		}
	}

	sslMode := u.Query().Get("sslmode")
	if sslMode == "" {
		sslMode = "disable"
	}

	return DatabaseConfig{
		Driver:   "postgres",
		DSN:      databaseURL,
		Host:     u.Hostname(),
		Port:     port,
		User:     u.User.Username(),
		Password: password,
		DBName:   strings.TrimPrefix(u.Path, "/"),
		SSLMode:  sslMode,
		TimeZone: "UTC",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAny(keys []string, defaultValue string) string {
	for _, key := range keys {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvDuration accepts Go duration strings ("10s") or a bare number of seconds.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil && d >= 0 {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
