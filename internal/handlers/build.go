package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/brand"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/cache"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/logging"
	"github.com/ezhelptechnology/ezhelptechnology-saas/pkg/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Order persistence outcomes reported as dbStatus.
const (
	DBStatusCreated = "created"
	DBStatusSkipped = "skipped"
	DBStatusFailed  = "failed"
)

const errBuildFieldsRequired = "businessInfo and email are required"

// BuildRequest is the body of POST /api/agents/build.
type BuildRequest struct {
	BusinessInfo json.RawMessage `json:"businessInfo"`
	Email        string          `json:"email"`
}

// BuildResponse is returned by a finished build.
type BuildResponse struct {
	Success  bool                  `json:"success"`
	OrderID  *string               `json:"orderId"`
	DBStatus string                `json:"dbStatus"`
	Assets   *brand.CompleteAssets `json:"assets"`
}

// Build records an order when a database is configured, then runs the
// three-stage pipeline. Order bookkeeping never stops the build.
// POST /api/agents/build
func (h *Handler) Build(c *gin.Context) {
	var req BuildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errBuildFieldsRequired})
		return
	}

	email := strings.TrimSpace(req.Email)
	raw := []byte(req.BusinessInfo)
	var profile brand.BusinessProfile
	if len(raw) == 0 || string(raw) == "null" || email == "" || json.Unmarshal(raw, &profile) != nil ||
		strings.TrimSpace(profile.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errBuildFieldsRequired})
		return
	}
	if profile.Email == "" {
		profile.Email = email
	}

	ctx := c.Request.Context()
	log := logging.L().With(zap.String("business", profile.Name))

	var orderID string
	dbStatus := DBStatusSkipped
	if h.orders != nil {
		order := &models.Order{
			Email:        email,
			BusinessName: profile.Name,
			BusinessInfo: string(raw),
			AmountCents:  h.orderAmount,
		}
		if err := h.orders.Create(ctx, order); err != nil {
			dbStatus = DBStatusFailed
			log.Warn("order create failed, continuing without persistence", zap.Error(err))
		} else {
			orderID = order.ID
			dbStatus = DBStatusCreated
			h.metrics.RecordOrder(string(models.OrderStatusBuilding))
		}
	}

	assets, err := h.builder.Run(ctx, profile, orderID)
	// bookkeeping outlives a client that disconnected mid-build
	ctx = context.WithoutCancel(ctx)
	if err != nil {
		log.Error("build failed", zap.String("order_id", orderID), zap.Error(err))
		h.markFailed(ctx, orderID)
		status := http.StatusInternalServerError
		if errors.Is(err, brand.ErrInvalidProfile) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	if orderID != "" {
		if err := h.orders.MarkCompleted(ctx, orderID, assets.Metadata.QualityScore); err != nil {
			log.Warn("order completion update failed", zap.String("order_id", orderID), zap.Error(err))
		} else {
			h.metrics.RecordOrder(string(models.OrderStatusCompleted))
		}
		h.cacheBuild(ctx, orderID, assets)
	}

	resp := BuildResponse{Success: true, DBStatus: dbStatus, Assets: assets}
	if orderID != "" {
		resp.OrderID = &orderID
	}
	c.JSON(http.StatusOK, resp)
}

// GetBuild returns the cached bundle of a finished build.
// GET /api/agents/build/:orderId
func (h *Handler) GetBuild(c *gin.Context) {
	orderID := c.Param("orderId")
	if h.cache == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Build not found"})
		return
	}

	data, err := h.cache.Get(c.Request.Context(), orderID)
	switch {
	case errors.Is(err, cache.ErrCacheMiss):
		c.JSON(http.StatusNotFound, gin.H{"error": "Build not found"})
		return
	case err != nil:
		logging.L().Error("build cache read failed", zap.String("order_id", orderID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load build"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"orderId": orderID,
		"assets":  json.RawMessage(data),
	})
}

func (h *Handler) cacheBuild(ctx context.Context, orderID string, assets *brand.CompleteAssets) {
	if h.cache == nil {
		return
	}
	data, err := json.Marshal(assets)
	if err != nil {
		logging.L().Warn("build encode failed", zap.String("order_id", orderID), zap.Error(err))
		return
	}
	if err := h.cache.Put(ctx, orderID, data); err != nil {
		logging.L().Warn("build cache write failed", zap.String("order_id", orderID), zap.Error(err))
	}
}

func (h *Handler) markFailed(ctx context.Context, orderID string) {
	if orderID == "" {
		return
	}
	if err := h.orders.MarkFailed(ctx, orderID); err != nil {
		logging.L().Warn("order failure update failed", zap.String("order_id", orderID), zap.Error(err))
		return
	}
	h.metrics.RecordOrder(string(models.OrderStatusFailed))
}
