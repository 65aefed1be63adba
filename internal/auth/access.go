// Package auth gates the operator dashboard behind a shared access code and
// issues short-lived session tokens once the code is verified.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/config"
)

var (
	// ErrAccessNotConfigured means no access code is set.
	ErrAccessNotConfigured = errors.New("auth: access code not configured")
	// ErrInvalidAccessCode means the supplied code does not match.
	ErrInvalidAccessCode = errors.New("auth: invalid access code")
	// ErrMissingTokenSecret means tokens cannot be signed.
	ErrMissingTokenSecret = errors.New("auth: token secret not configured")
)

// DefaultTokenTTL applies when AccessConfig.TokenTTL is zero.
const DefaultTokenTTL = 12 * time.Hour

// AccessGate verifies the dashboard access code and issues session tokens.
// The configured code is a bcrypt hash ("$2..."), an Argon2id hash
// ("$argon2id$...") or plaintext.
type AccessGate struct {
	code   string
	tokens *tokenService
}

// NewAccessGate builds a gate from configuration. When no token secret is
// set, codes can still be verified but IssueToken fails.
func NewAccessGate(cfg config.AccessConfig) *AccessGate {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &AccessGate{
		code:   strings.TrimSpace(cfg.Code),
		tokens: &tokenService{secretKey: []byte(cfg.TokenSecret), ttl: ttl, now: time.Now},
	}
}

// Configured reports whether an access code is set
func (g *AccessGate) Configured() bool {
	return g.code != ""
}

// Verify checks code against the configured access code.
func (g *AccessGate) Verify(code string) error {
	if !g.Configured() {
		return ErrAccessNotConfigured
	}
	code = strings.TrimSpace(code)

	if isHashed(g.code) {
		ok, err := verifyHashed(code, g.code)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInvalidAccessCode
		}
		return nil
	}

	// hash both sides so the comparison time does not leak the code length
	want := sha256.Sum256([]byte(g.code))
	got := sha256.Sum256([]byte(code))
	if subtle.ConstantTimeCompare(want[:], got[:]) != 1 {
		return ErrInvalidAccessCode
	}
	return nil
}

// IssueToken returns a signed session token and its expiry.
func (g *AccessGate) IssueToken() (string, time.Time, error) {
	if len(g.tokens.secretKey) == 0 {
		return "", time.Time{}, ErrMissingTokenSecret
	}
	return g.tokens.issue()
}

// ValidateToken verifies a session token issued by IssueToken.
func (g *AccessGate) ValidateToken(token string) (*Claims, error) {
	if len(g.tokens.secretKey) == 0 {
		return nil, ErrMissingTokenSecret
	}
	return g.tokens.validate(token)
}
