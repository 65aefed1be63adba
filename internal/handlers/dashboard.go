package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/auth"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/db"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/logging"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VerifyAccess checks the dashboard access code and issues a session token.
// POST /api/verify-access
func (h *Handler) VerifyAccess(c *gin.Context) {
	var req struct {
		Code string `json:"code"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Missing code"})
		return
	}

	if h.access == nil || !h.access.Configured() {
		logging.L().Error("DASHBOARD_ACCESS_CODE is not set")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Server misconfigured"})
		return
	}

	if err := h.access.Verify(req.Code); err != nil {
		if errors.Is(err, auth.ErrInvalidAccessCode) {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Invalid code"})
			return
		}
		logging.L().Error("access code check failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Server misconfigured"})
		return
	}

	token, expiresAt, err := h.access.IssueToken()
	switch {
	case errors.Is(err, auth.ErrMissingTokenSecret):
		// code accepted, but sessions cannot be signed
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	case err != nil:
		logging.L().Error("session token issue failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":        true,
		"token":     token,
		"expiresAt": expiresAt.UTC().Format(time.RFC3339),
	})
}

// ListOrders returns the most recent orders.
// GET /api/dashboard/orders?limit=N
func (h *Handler) ListOrders(c *gin.Context) {
	if h.orders == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database not configured"})
		return
	}

	limit := db.DefaultListLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	orders, err := h.orders.List(c.Request.Context(), limit)
	if err != nil {
		logging.L().Error("list orders failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders, "count": len(orders)})
}

// GetOrder returns one order.
// GET /api/dashboard/orders/:id
func (h *Handler) GetOrder(c *gin.Context) {
	if h.orders == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database not configured"})
		return
	}

	order, err := h.orders.Get(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, db.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	case err != nil:
		logging.L().Error("get order failed", zap.String("order_id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}
