// Package middleware holds the gin middleware shared by every route: request
// IDs, panic recovery, CORS, security headers, per-IP rate limiting and the
// dashboard token check.
package middleware

import (
	"fmt"
	"math"
	"net/http"
	"runtime/debug"
	"strconv"
	"sync"
	"time"

	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/logging"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error     string                 `json:"error"`
	Code      string                 `json:"code"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	RequestID string                 `json:"request_id,omitempty"`
}

// AbortWithError writes an ErrorResponse and stops the chain.
func AbortWithError(c *gin.Context, status int, code, message string, details map[string]interface{}) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		Details:   details,
		Timestamp: time.Now().UTC(),
		RequestID: GetRequestID(c),
	})
}

// GetRequestID returns the ID assigned by RequestID, or the inbound header.
func GetRequestID(c *gin.Context) string {
	if id := c.GetString(requestIDKey); id != "" {
		return id
	}
	return c.GetHeader(RequestIDHeader)
}

// RequestID middleware adds a unique request ID to each request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > 128 {
			requestID = generateRequestID()
		}

		c.Header(RequestIDHeader, requestID)
		c.Set(requestIDKey, requestID)
		c.Next()
	}
}

func generateRequestID() string {
	return uuid.NewString()
}

// Recovery middleware with custom error handling
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		requestID := GetRequestID(c)
		if requestID == "" {
			requestID = generateRequestID()
		}

		logging.L().Error("panic recovered",
			zap.String("request_id", requestID),
			zap.String("path", c.Request.URL.Path),
			zap.Any("panic", recovered),
			zap.ByteString("stack", debug.Stack()),
		)

		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
			Error:     "Internal server error",
			Code:      "INTERNAL_SERVER_ERROR",
			Timestamp: time.Now().UTC(),
			RequestID: requestID,
		})
	})
}

// Logger logs one line per request through zap. /health is skipped.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if c.Request.URL.Path == "/health" {
			return
		}
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", GetRequestID(c)),
		}
		if errs := c.Errors.ByType(gin.ErrorTypeAny).String(); errs != "" {
			fields = append(fields, zap.String("errors", errs))
		}

		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			logging.L().Error("request", fields...)
		case status >= http.StatusBadRequest:
			logging.L().Warn("request", fields...)
		default:
			logging.L().Info("request", fields...)
		}
	}
}

// CORS builds the cross-origin policy. An empty list or "*" allows any
// origin without credentials; explicit origins are allowed with credentials.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", RequestIDHeader, "Stripe-Signature"},
		ExposeHeaders: []string{RequestIDHeader},
		MaxAge:        24 * time.Hour,
	}

	wildcard := len(allowedOrigins) == 0
	for _, o := range allowedOrigins {
		if o == "*" {
			wildcard = true
		}
	}
	if wildcard {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
		cfg.AllowCredentials = true
	}
	return cors.New(cfg)
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter manages rate limiters for different IP addresses
type IPRateLimiter struct {
	limiters map[string]*clientLimiter
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
	cleanup  time.Duration
	idle     time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

// PerMinute converts a requests-per-minute budget to a rate.Limit.
func PerMinute(n int) rate.Limit {
	return rate.Limit(n) / 60
}

// NewIPRateLimiter creates a new IP-based rate limiter. Call Stop to end the
// background cleanup.
func NewIPRateLimiter(rateLimit rate.Limit, burst int) *IPRateLimiter {
	if burst < 1 {
		burst = 1
	}
	limiter := &IPRateLimiter{
		limiters: make(map[string]*clientLimiter),
		rate:     rateLimit,
		burst:    burst,
		cleanup:  10 * time.Minute,
		idle:     time.Hour,
		stop:     make(chan struct{}),
	}

	go limiter.cleanupRoutine()

	return limiter
}

// GetLimiter returns the rate limiter for a given IP
func (irl *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	irl.mu.Lock()
	defer irl.mu.Unlock()

	cl, exists := irl.limiters[ip]
	if !exists {
		cl = &clientLimiter{limiter: rate.NewLimiter(irl.rate, irl.burst)}
		irl.limiters[ip] = cl
	}
	cl.lastSeen = time.Now()

	return cl.limiter
}

// Len reports how many clients are tracked.
func (irl *IPRateLimiter) Len() int {
	irl.mu.Lock()
	defer irl.mu.Unlock()
	return len(irl.limiters)
}

// Stop ends the cleanup goroutine. Safe to call more than once.
func (irl *IPRateLimiter) Stop() {
	irl.stopOnce.Do(func() { close(irl.stop) })
}

func (irl *IPRateLimiter) cleanupRoutine() {
	ticker := time.NewTicker(irl.cleanup)
	defer ticker.Stop()

	for {
		select {
		case <-irl.stop:
			return
		case now := <-ticker.C:
			irl.evictIdle(now)
		}
	}
}

// evictIdle drops limiters not seen since now minus the idle window.
func (irl *IPRateLimiter) evictIdle(now time.Time) {
	irl.mu.Lock()
	defer irl.mu.Unlock()

	cutoff := now.Add(-irl.idle)
	for ip, cl := range irl.limiters {
		if cl.lastSeen.Before(cutoff) {
			delete(irl.limiters, ip)
		}
	}
}

// retryAfter is the wait for one token at the configured rate, in whole seconds.
func (irl *IPRateLimiter) retryAfter() int {
	if irl.rate <= 0 || irl.rate == rate.Inf {
		return 60
	}
	return int(math.Ceil(1 / float64(irl.rate)))
}

// RateLimit middleware for rate limiting by IP
func RateLimit(limiter *IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter.GetLimiter(c.ClientIP()).Allow() {
			c.Next()
			return
		}

		retry := limiter.retryAfter()
		c.Header("Retry-After", strconv.Itoa(retry))
		AbortWithError(c, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", "Rate limit exceeded", map[string]interface{}{
			"retry_after": fmt.Sprintf("%ds", retry),
			"limit":       fmt.Sprintf("%.0f requests per minute", float64(limiter.rate)*60),
		})
	}
}
