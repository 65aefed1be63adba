package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/auth"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDashboardRouter(validator TokenValidator) *gin.Engine {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/api/dashboard/orders", RequireDashboardToken(validator), func(c *gin.Context) {
		claims, ok := DashboardClaims(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"subject": claims.Subject})
	})
	return router
}

func TestRequireDashboardToken(t *testing.T) {
	gate := auth.NewAccessGate(config.AccessConfig{
		Code:        "letmein",
		TokenSecret: "test-secret-key-for-dashboard-middleware",
	})
	token, _, err := gate.IssueToken()
	require.NoError(t, err)

	router := setupDashboardRouter(gate)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCode   string
	}{
		{"valid token", "Bearer " + token, http.StatusOK, ""},
		{"lowercase scheme", "bearer " + token, http.StatusOK, ""},
		{"missing header", "", http.StatusUnauthorized, "AUTH_HEADER_MISSING"},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized, "INVALID_AUTH_HEADER"},
		{"empty token", "Bearer    ", http.StatusUnauthorized, "INVALID_AUTH_HEADER"},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized, "INVALID_TOKEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/dashboard/orders", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantCode == "" {
				assert.Contains(t, w.Body.String(), auth.DashboardSubject)
				return
			}
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.NotEmpty(t, body.RequestID)
		})
	}
}

func TestRequireDashboardToken_NoSecret(t *testing.T) {
	gate := auth.NewAccessGate(config.AccessConfig{Code: "letmein"})
	router := setupDashboardRouter(gate)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/orders", nil)
	req.Header.Set("Authorization", "Bearer something")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_NOT_CONFIGURED")
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr error
	}{
		{"Bearer abc", "abc", nil},
		{"BEARER abc ", "abc", nil},
		{"Bearer", "", errMissingBearer},
		{"Token abc", "", errMissingBearer},
		{"Bearer  ", "", errEmptyToken},
	}
	for _, tt := range tests {
		got, err := extractBearerToken(tt.header)
		if tt.wantErr != nil {
			assert.ErrorIs(t, err, tt.wantErr, tt.header)
			continue
		}
		require.NoError(t, err, tt.header)
		assert.Equal(t, tt.want, got)
	}
}
