package models

import (
	"time"
)

// OrderStatus tracks an order through build and payment
type OrderStatus string

const (
	OrderStatusBuilding  OrderStatus = "BUILDING"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusFailed    OrderStatus = "FAILED"
	OrderStatusPaid      OrderStatus = "PAID"
)

// Order is one brand package request. BusinessInfo holds the submitted
// profile as JSON text so the schema does not follow the profile shape.
type Order struct {
	ID              string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Email           string      `json:"email" gorm:"index;not null"`
	BusinessName    string      `json:"business_name" gorm:"not null"`
	BusinessInfo    string      `json:"business_info" gorm:"type:text"`
	Status          OrderStatus `json:"status" gorm:"type:varchar(16);index;not null;default:'BUILDING'"`
	AmountCents     int64       `json:"amount_cents" gorm:"not null;default:0"`
	QualityScore    float64     `json:"quality_score" gorm:"default:0"`
	StripeSessionID string      `json:"stripe_session_id,omitempty" gorm:"index"`
	CreatedAt       time.Time   `json:"created_at" gorm:"index"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// TableName pins the table name used by the SQL migrations
func (Order) TableName() string {
	return "orders"
}

