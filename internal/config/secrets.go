// Package config loads runtime configuration for the EZ Help builder and
// validates the secrets it depends on.
//
// Secrets are checked by name only; values are never logged. Production
// refuses to start when a required secret is missing or malformed, while
// development only warns.
package config

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"math"
	"net/url"
	"os"
	"regexp"
	"strings"
	"unicode"
)

// Environment constants
const (
	EnvProduction  = "production"
	EnvStaging     = "staging"
	EnvDevelopment = "development"
	EnvTest        = "test"
)

const (
	MinTokenSecretLength = 32
	MinAccessCodeLength  = 8
	MinDatabaseURLLength = 10
	MinStripeKeyLength   = 20
)

// SecretRequirement defines a secret and its validation rules
type SecretRequirement struct {
	Name        string
	EnvVar      string
	Description string
	Required    bool // Required in production
	MinLength   int
	Validator   func(string) error
}

// SecretsConfig holds the validated secrets
type SecretsConfig struct {
	DashboardAccessCode  string
	DashboardTokenSecret string

	StripeSecretKey     string
	StripeWebhookSecret string

	GroqAPIKey string
	FalKey     string

	DatabaseURL string

	Environment  string
	IsProduction bool
}

// SecretsValidationError collects every validation failure in one pass
type SecretsValidationError struct {
	Missing  []string
	Invalid  []string
	Warnings []string
}

func (e *SecretsValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing secrets: %s", strings.Join(e.Missing, ", ")))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, fmt.Sprintf("invalid secrets: %s", strings.Join(e.Invalid, ", ")))
	}
	return strings.Join(parts, "; ")
}

func (e *SecretsValidationError) HasErrors() bool {
	return len(e.Missing) > 0 || len(e.Invalid) > 0
}

// DefaultSecretRequirements lists the secrets the builder service reads.
// The dashboard gate is the only mandatory pair; every upstream credential is
// optional because the pipeline degrades to fallbacks without it.
func DefaultSecretRequirements() []SecretRequirement {
	return []SecretRequirement{
		{
			Name:        "Dashboard Access Code",
			EnvVar:      "DASHBOARD_ACCESS_CODE",
			Description: "Shared access code (plain, bcrypt or argon2id hash) for the internal dashboard",
			Required:    true,
			MinLength:   MinAccessCodeLength,
			Validator:   validateAccessCode,
		},
		{
			Name:        "Dashboard Token Secret",
			EnvVar:      "DASHBOARD_TOKEN_SECRET",
			Description: "HMAC key for signing dashboard session tokens",
			Required:    true,
			MinLength:   MinTokenSecretLength,
			Validator:   validateTokenSecret,
		},
		{
			Name:        "Database URL",
			EnvVar:      "DATABASE_URL",
			Description: "PostgreSQL or sqlite:// connection string for order history",
			Required:    false,
			MinLength:   MinDatabaseURLLength,
			Validator:   validateDatabaseURL,
		},
		{
			Name:        "Stripe Secret Key",
			EnvVar:      "STRIPE_SECRET_KEY",
			Description: "Stripe API secret key for checkout",
			Required:    false,
			MinLength:   MinStripeKeyLength,
			Validator:   validateStripeKey,
		},
		{
			Name:        "Stripe Webhook Secret",
			EnvVar:      "STRIPE_WEBHOOK_SECRET",
			Description: "Stripe webhook signature verification secret",
			Required:    false,
			MinLength:   MinStripeKeyLength,
			Validator:   validateStripeWebhookSecret,
		},
		{
			Name:        "Groq API Key",
			EnvVar:      "GROQ_API_KEY",
			Description: "Groq chat completions key (keyless fallback is used without it)",
			Required:    false,
		},
		{
			Name:        "FAL Key",
			EnvVar:      "FAL_KEY",
			Description: "FAL image generation key (logo imagery is skipped without it)",
			Required:    false,
		},
	}
}

// ValidateSecrets validates every known secret and returns a SecretsConfig.
// In production a non-nil error is returned for any missing required secret
// or any invalid value; callers must treat it as fatal.
func ValidateSecrets() (*SecretsConfig, error) {
	isProduction := IsProductionEnvironment()

	cfg := &SecretsConfig{
		Environment:  GetEnvironment(),
		IsProduction: isProduction,
	}

	validationErr := &SecretsValidationError{}

	for _, req := range DefaultSecretRequirements() {
		value := os.Getenv(req.EnvVar)

		if value == "" {
			if req.Required && isProduction {
				validationErr.Missing = append(validationErr.Missing, req.EnvVar)
			} else if req.Required {
				validationErr.Warnings = append(validationErr.Warnings,
					fmt.Sprintf("%s not set - dashboard access disabled until configured", req.EnvVar))
			}
			continue
		}

		if req.MinLength > 0 && len(value) < req.MinLength {
			if isProduction {
				validationErr.Invalid = append(validationErr.Invalid,
					fmt.Sprintf("%s: too short (min %d characters)", req.EnvVar, req.MinLength))
			} else {
				validationErr.Warnings = append(validationErr.Warnings,
					fmt.Sprintf("%s: shorter than recommended (%d chars, recommend %d+)", req.EnvVar, len(value), req.MinLength))
			}
		}

		if req.Validator != nil {
			if err := req.Validator(value); err != nil {
				if isProduction {
					validationErr.Invalid = append(validationErr.Invalid,
						fmt.Sprintf("%s: %s", req.EnvVar, err.Error()))
				} else {
					validationErr.Warnings = append(validationErr.Warnings,
						fmt.Sprintf("%s: %s (allowed in development)", req.EnvVar, err.Error()))
				}
			}
		}
	}

	cfg.DashboardAccessCode = os.Getenv("DASHBOARD_ACCESS_CODE")
	cfg.DashboardTokenSecret = os.Getenv("DASHBOARD_TOKEN_SECRET")
	cfg.StripeSecretKey = os.Getenv("STRIPE_SECRET_KEY")
	cfg.StripeWebhookSecret = os.Getenv("STRIPE_WEBHOOK_SECRET")
	cfg.GroqAPIKey = os.Getenv("GROQ_API_KEY")
	cfg.FalKey = getEnvAny([]string{"FAL_KEY", "FAL_API_KEY"}, "")
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")

	if isProduction && validationErr.HasErrors() {
		return nil, validationErr
	}

	if IsStagingEnvironment() && len(validationErr.Missing) > 0 {
		return nil, fmt.Errorf("staging environment requires all production secrets: %s",
			strings.Join(validationErr.Missing, ", "))
	}

	for _, warning := range validationErr.Warnings {
		log.Printf("WARNING: %s", warning)
	}

	return cfg, nil
}

// ValidateAndLogSecrets validates secrets and logs which ones are configured.
// Call it once at startup.
func ValidateAndLogSecrets() (*SecretsConfig, error) {
	log.Println("Validating secrets configuration...")

	cfg, err := ValidateSecrets()
	if err != nil {
		log.Printf("FATAL: Secrets validation failed: %v", err)
		return nil, err
	}

	log.Println("Secrets configuration status:")
	logSecretStatus("DASHBOARD_ACCESS_CODE", cfg.DashboardAccessCode != "")
	logSecretStatus("DASHBOARD_TOKEN_SECRET", cfg.DashboardTokenSecret != "")
	logSecretStatus("STRIPE_SECRET_KEY", cfg.StripeSecretKey != "")
	logSecretStatus("STRIPE_WEBHOOK_SECRET", cfg.StripeWebhookSecret != "")
	logSecretStatus("GROQ_API_KEY", cfg.GroqAPIKey != "")
	logSecretStatus("FAL_KEY", cfg.FalKey != "")
	logSecretStatus("DATABASE_URL", cfg.DatabaseURL != "")

	if cfg.IsProduction {
		log.Println("Running in PRODUCTION mode - strict secret validation enforced")
	} else {
		log.Printf("Running in %s mode - development defaults allowed", cfg.Environment)
	}

	return cfg, nil
}

func logSecretStatus(name string, configured bool) {
	if configured {
		log.Printf("  [OK] %s: configured", name)
	} else {
		log.Printf("  [--] %s: not configured", name)
	}
}

// GetEnvironment returns the current environment name, lower-cased.
func GetEnvironment() string {
	env := getEnvAny([]string{"GO_ENV", "APP_ENV", "ENVIRONMENT", "ENV"}, EnvDevelopment)
	return strings.ToLower(env)
}

// IsProductionEnvironment returns true if running in production
func IsProductionEnvironment() bool {
	env := GetEnvironment()
	return env == EnvProduction || env == "prod"
}

// IsStagingEnvironment returns true if running in staging
func IsStagingEnvironment() bool {
	env := GetEnvironment()
	return env == EnvStaging || env == "stage"
}

// --- Validators ---

var weakSecrets = []string{
	"secret",
	"changeme",
	"password",
	"test",
	"dev",
	"example",
	"default",
	"placeholder",
	"replace-me",
	"ezhelp",
}

// validateTokenSecret enforces a strong HMAC signing key.
func validateTokenSecret(secret string) error {
	lower := strings.ToLower(secret)
	for _, weak := range weakSecrets {
		if strings.Contains(lower, weak) {
			return fmt.Errorf("contains weak/placeholder value %q", weak)
		}
	}

	allAlpha, allDigit := true, true
	for _, c := range secret {
		if !unicode.IsLetter(c) {
			allAlpha = false
		}
		if !unicode.IsDigit(c) {
			allDigit = false
		}
	}
	if allAlpha {
		return errors.New("must contain non-alphabetic characters for sufficient entropy")
	}
	if allDigit {
		return errors.New("must contain non-numeric characters for sufficient entropy")
	}

	if entropy := shannonEntropy(secret); entropy < 3.0 {
		return fmt.Errorf("entropy too low (%.1f bits/char, need >= 3.0)", entropy)
	}

	if hasRepeatingPattern(secret) {
		return errors.New("appears to contain a repeating pattern")
	}

	return nil
}

var (
	bcryptHashPattern = regexp.MustCompile(`^\$2[aby]\$\d{2}\$[./A-Za-z0-9]{53}$`)
	argonHashPattern  = regexp.MustCompile(`^\$argon2id\$v=19\$m=\d+,t=\d+,p=\d+\$[A-Za-z0-9+/]+\$[A-Za-z0-9+/]+$`)
)

// validateAccessCode accepts a bcrypt hash, an argon2id hash (see ezbuild
// hash-code) or a plain code that is not an obvious placeholder.
func validateAccessCode(code string) error {
	switch {
	case strings.HasPrefix(code, "$2"):
		if !bcryptHashPattern.MatchString(code) {
			return errors.New("looks like a bcrypt hash but is malformed")
		}
		return nil
	case strings.HasPrefix(code, "$argon2"):
		if !argonHashPattern.MatchString(code) {
			return errors.New("looks like an argon2id hash but is malformed")
		}
		return nil
	}

	lower := strings.ToLower(code)
	for _, weak := range []string{"password", "changeme", "admin", "1234"} {
		if strings.Contains(lower, weak) {
			return fmt.Errorf("contains weak/placeholder value %q", weak)
		}
	}
	if hasRepeatingPattern(code) {
		return errors.New("appears to contain a repeating pattern")
	}
	return nil
}

// validateDatabaseURL checks for a PostgreSQL or SQLite connection string.
func validateDatabaseURL(rawURL string) error {
	if strings.HasPrefix(rawURL, "sqlite://") || strings.HasPrefix(rawURL, "file:") {
		return nil
	}
	if !strings.HasPrefix(rawURL, "postgres://") && !strings.HasPrefix(rawURL, "postgresql://") {
		return errors.New("must be a postgres://, postgresql:// or sqlite:// URL")
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("malformed URL: %w", err)
	}
	if parsed.Hostname() == "" {
		return errors.New("database URL must include a hostname")
	}

	if parsed.User != nil {
		if password, ok := parsed.User.Password(); ok {
			for _, weak := range []string{"password", "postgres", "changeme", "test", "example"} {
				if strings.EqualFold(password, weak) {
					return fmt.Errorf("database password %q is a known default", weak)
				}
			}
		}
	}

	return nil
}

var stripePlaceholderPattern = regexp.MustCompile(`^sk_(live|test)_[xX]+$`)

// validateStripeKey checks the Stripe secret key format.
func validateStripeKey(key string) error {
	if !strings.HasPrefix(key, "sk_live_") && !strings.HasPrefix(key, "sk_test_") {
		return errors.New("must start with sk_live_ or sk_test_")
	}
	if stripePlaceholderPattern.MatchString(key) {
		return errors.New("appears to be a placeholder value")
	}
	return nil
}

// validateStripeWebhookSecret checks webhook signing secret format.
func validateStripeWebhookSecret(secret string) error {
	if !strings.HasPrefix(secret, "whsec_") {
		return errors.New("must start with whsec_")
	}
	if len(secret) < 30 {
		return errors.New("webhook secret appears truncated")
	}
	return nil
}

// shannonEntropy calculates Shannon entropy in bits per character.
func shannonEntropy(s string) float64 {
	if len(s) == 0 {
		return 0
	}
	freq := make(map[rune]float64)
	for _, c := range s {
		freq[c]++
	}
	length := float64(len([]rune(s)))
	entropy := 0.0
	for _, count := range freq {
		p := count / length
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// hasRepeatingPattern detects simple repeating patterns (e.g., "abcabc").
func hasRepeatingPattern(s string) bool {
	n := len(s)
	if n < 6 {
		return false
	}
	for patLen := 1; patLen <= n/2; patLen++ {
		isRepeat := true
		for i := patLen; i < n; i++ {
			if s[i] != s[i%patLen] {
				isRepeat = false
				break
			}
		}
		if isRepeat {
			return true
		}
	}
	return false
}

// GenerateSecureSecret returns a URL-safe random secret of length bytes.
// Outside production the server signs dashboard tokens with one when
// DASHBOARD_TOKEN_SECRET is unset; such tokens die with the process.
func GenerateSecureSecret(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}
