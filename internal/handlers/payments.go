package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/db"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/logging"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/payments"
	"github.com/ezhelptechnology/ezhelptechnology-saas/pkg/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxWebhookBytes bounds a Stripe webhook body.
const maxWebhookBytes = 65536

// CheckoutRequest is the body of POST /api/checkout.
type CheckoutRequest struct {
	PriceID string `json:"priceId"`
	OrderID string `json:"orderId"`
	Email   string `json:"email"`
}

// Checkout creates a Stripe Checkout Session.
// POST /api/checkout
func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.PriceID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing priceId"})
		return
	}

	if h.payments == nil || !h.payments.IsConfigured() {
		h.metrics.RecordCheckout("unconfigured")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Payment system is not configured"})
		return
	}

	ctx := c.Request.Context()
	result, err := h.payments.CreateCheckoutSession(ctx, payments.CheckoutRequest{
		PriceID: req.PriceID,
		OrderID: req.OrderID,
		Email:   req.Email,
	})
	switch {
	case errors.Is(err, payments.ErrInvalidPriceID):
		h.metrics.RecordCheckout("invalid")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priceId"})
		return
	case err != nil:
		h.metrics.RecordCheckout("failed")
		logging.L().Error("checkout session error", zap.String("order_id", req.OrderID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.metrics.RecordCheckout("created")

	if req.OrderID != "" && h.orders != nil {
		if err := h.orders.AttachCheckoutSession(ctx, req.OrderID, result.SessionID); err != nil {
			logging.L().Warn("checkout session not attached to order",
				zap.String("order_id", req.OrderID),
				zap.String("session_id", result.SessionID),
				zap.Error(err),
			)
		}
	}

	c.JSON(http.StatusOK, gin.H{"url": result.URL, "sessionId": result.SessionID})
}

// StripeWebhook verifies a Stripe event and marks the order paid when a
// checkout completes.
// POST /api/webhooks/stripe
func (h *Handler) StripeWebhook(c *gin.Context) {
	if h.payments == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Payment system is not configured"})
		return
	}

	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBytes))
	if err != nil {
		h.metrics.RecordWebhookEvent("unknown", "unreadable")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	event, err := h.payments.HandleWebhook(payload, c.GetHeader("Stripe-Signature"))
	switch {
	case errors.Is(err, payments.ErrInvalidWebhook):
		h.metrics.RecordWebhookEvent("unknown", "invalid_signature")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook signature"})
		return
	case err != nil:
		h.metrics.RecordWebhookEvent("unknown", "invalid_payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook payload"})
		return
	}

	if event.Type != payments.EventCheckoutCompleted || event.OrderID == "" || h.orders == nil {
		h.metrics.RecordWebhookEvent(event.Type, "ignored")
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	err = h.orders.MarkPaid(c.Request.Context(), event.OrderID, event.SessionID)
	switch {
	case errors.Is(err, db.ErrOrderNotFound):
		// acknowledged so Stripe stops retrying an order this database never had
		logging.L().Warn("webhook for unknown order", zap.String("order_id", event.OrderID))
		h.metrics.RecordWebhookEvent(event.Type, "unknown_order")
	case err != nil:
		logging.L().Error("mark order paid failed", zap.String("order_id", event.OrderID), zap.Error(err))
		h.metrics.RecordWebhookEvent(event.Type, "error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	default:
		h.metrics.RecordWebhookEvent(event.Type, "processed")
		h.metrics.RecordOrder(string(models.OrderStatusPaid))
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
