package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/ezhelptechnology/ezhelptechnology-saas/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrOrderNotFound is returned when no order has the requested ID.
var ErrOrderNotFound = errors.New("db: order not found")

// List limits.
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// OrderRepository is the order bookkeeping the HTTP layer depends on.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	MarkCompleted(ctx context.Context, id string, qualityScore float64) error
	MarkFailed(ctx context.Context, id string) error
	MarkPaid(ctx context.Context, id, sessionID string) error
	AttachCheckoutSession(ctx context.Context, id, sessionID string) error
	Get(ctx context.Context, id string) (*models.Order, error)
	List(ctx context.Context, limit int) ([]models.Order, error)
}

// OrderStore implements OrderRepository with GORM.
type OrderStore struct {
	db *gorm.DB
}

// NewOrderStore returns a store over database.
func NewOrderStore(database *Database) *OrderStore {
	return &OrderStore{db: database.DB}
}

// Create inserts order, assigning a UUID and BUILDING status when unset.
func (s *OrderStore) Create(ctx context.Context, order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.Status == "" {
		order.Status = models.OrderStatusBuilding
	}
	if err := s.db.WithContext(ctx).Create(order).Error; err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

// MarkCompleted records a finished build. A paid order keeps its status.
func (s *OrderStore) MarkCompleted(ctx context.Context, id string, qualityScore float64) error {
	return s.update(ctx, id, func(o *models.Order) {
		o.QualityScore = qualityScore
		if o.Status != models.OrderStatusPaid {
			o.Status = models.OrderStatusCompleted
		}
	})
}

// MarkFailed records a build that could not produce assets.
func (s *OrderStore) MarkFailed(ctx context.Context, id string) error {
	return s.update(ctx, id, func(o *models.Order) {
		if o.Status != models.OrderStatusPaid {
			o.Status = models.OrderStatusFailed
		}
	})
}

// MarkPaid records a completed checkout.
func (s *OrderStore) MarkPaid(ctx context.Context, id, sessionID string) error {
	return s.update(ctx, id, func(o *models.Order) {
		o.Status = models.OrderStatusPaid
		if sessionID != "" {
			o.StripeSessionID = sessionID
		}
	})
}

// AttachCheckoutSession links a Stripe Checkout Session to the order.
func (s *OrderStore) AttachCheckoutSession(ctx context.Context, id, sessionID string) error {
	return s.update(ctx, id, func(o *models.Order) {
		o.StripeSessionID = sessionID
	})
}

// Get loads one order.
func (s *OrderStore) Get(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &order, nil
}

// List returns the most recent orders first. limit is clamped to
// [1, MaxListLimit]; zero or negative selects DefaultListLimit.
func (s *OrderStore) List(ctx context.Context, limit int) ([]models.Order, error) {
	switch {
	case limit <= 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}

	var orders []models.Order
	if err := s.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (s *OrderStore) update(ctx context.Context, id string, mutate func(*models.Order)) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.Order
		err := tx.Where("id = ?", id).First(&order).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		if err != nil {
			return fmt.Errorf("load order: %w", err)
		}

		mutate(&order)
		if err := tx.Save(&order).Error; err != nil {
			return fmt.Errorf("save order: %w", err)
		}
		return nil
	})
}
