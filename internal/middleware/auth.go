package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/auth"

	"github.com/gin-gonic/gin"
)

const claimsKey = "dashboard_claims"

var (
	errMissingBearer = errors.New("invalid authorization header format, expected 'Bearer <token>'")
	errEmptyToken    = errors.New("token cannot be empty")
)

// TokenValidator checks dashboard session tokens. *auth.AccessGate
// satisfies it.
type TokenValidator interface {
	ValidateToken(token string) (*auth.Claims, error)
}

// RequireDashboardToken rejects requests without a valid dashboard session
// token in the Authorization header.
func RequireDashboardToken(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			AbortWithError(c, http.StatusUnauthorized, "AUTH_HEADER_MISSING", "Authorization header is required", nil)
			return
		}

		token, err := extractBearerToken(authHeader)
		if err != nil {
			AbortWithError(c, http.StatusUnauthorized, "INVALID_AUTH_HEADER", err.Error(), nil)
			return
		}

		claims, err := validator.ValidateToken(token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrMissingTokenSecret):
				AbortWithError(c, http.StatusServiceUnavailable, "AUTH_NOT_CONFIGURED", "Dashboard access is not configured", nil)
			default:
				AbortWithError(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired session token", nil)
			}
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// DashboardClaims returns the claims stored by RequireDashboardToken.
func DashboardClaims(c *gin.Context) (*auth.Claims, bool) {
	v, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}

// extractBearerToken extracts the token from Bearer authorization header
func extractBearerToken(authHeader string) (string, error) {
	const bearerPrefix = "Bearer "
	if len(authHeader) < len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
		return "", errMissingBearer
	}

	token := strings.TrimSpace(authHeader[len(bearerPrefix):])
	if token == "" {
		return "", errEmptyToken
	}

	return token, nil
}
