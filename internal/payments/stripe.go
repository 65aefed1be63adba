// Package payments wraps Stripe Checkout for website-package purchases and
// verifies the webhooks that mark orders paid.
package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/config"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/logging"

	"github.com/stripe/stripe-go/v76"
	checkoutsession "github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

// Common errors
var (
	ErrNotConfigured  = errors.New("stripe is not configured")
	ErrInvalidWebhook = errors.New("invalid webhook signature")
	ErrInvalidPriceID = errors.New("invalid price ID")
)

// EventCheckoutCompleted is the webhook type that marks an order paid.
const EventCheckoutCompleted = "checkout.session.completed"

// OrderIDKey is the checkout metadata key carrying the order ID.
const OrderIDKey = "order_id"

// StripeService creates checkout sessions and parses webhooks.
type StripeService struct {
	secretKey     string
	webhookSecret string
	successURL    string
	cancelURL     string
}

// CheckoutRequest describes one checkout.
type CheckoutRequest struct {
	PriceID string
	OrderID string
	Email   string
}

// CheckoutSessionResult represents the result of creating a checkout session
type CheckoutSessionResult struct {
	SessionID  string `json:"session_id"`
	URL        string `json:"url"`
	CustomerID string `json:"customer_id,omitempty"`
}

// WebhookEvent represents a processed webhook event
type WebhookEvent struct {
	ID             string            `json:"id"`
	Type           string            `json:"type"`
	SessionID      string            `json:"session_id,omitempty"`
	OrderID        string            `json:"order_id,omitempty"`
	CustomerID     string            `json:"customer_id,omitempty"`
	SubscriptionID string            `json:"subscription_id,omitempty"`
	Email          string            `json:"email,omitempty"`
	AmountTotal    int64             `json:"amount_total,omitempty"`
	PaymentStatus  string            `json:"payment_status,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

// NewStripeService builds the service from configuration. The Stripe API key
// is set globally, as stripe-go expects.
func NewStripeService(cfg config.StripeConfig) *StripeService {
	if cfg.SecretKey != "" {
		stripe.Key = cfg.SecretKey
	}
	return &StripeService{
		secretKey:     cfg.SecretKey,
		webhookSecret: cfg.WebhookSecret,
		successURL:    cfg.SuccessURL,
		cancelURL:     cfg.CancelURL,
	}
}

// IsConfigured returns true if Stripe is properly configured
func (s *StripeService) IsConfigured() bool {
	return s != nil && s.secretKey != ""
}

// VerifiesSignatures reports whether webhooks are checked against a secret.
func (s *StripeService) VerifiesSignatures() bool {
	return s != nil && s.webhookSecret != ""
}

// CreateCheckoutSession creates a subscription-mode Checkout Session for
// req.PriceID. A non-empty OrderID is stored in the session metadata and as
// the client reference so the webhook can find the order again.
func (s *StripeService) CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSessionResult, error) {
	if !s.IsConfigured() {
		return nil, ErrNotConfigured
	}

	priceID := strings.TrimSpace(req.PriceID)
	if priceID == "" || strings.ContainsAny(priceID, " \t\r\n") {
		return nil, ErrInvalidPriceID
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.successURL),
		CancelURL:  stripe.String(s.cancelURL),
	}
	params.Context = ctx

	if req.OrderID != "" {
		metadata := map[string]string{OrderIDKey: req.OrderID}
		params.Metadata = metadata
		params.ClientReferenceID = stripe.String(req.OrderID)
		params.SubscriptionData = &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: metadata,
		}
	}
	if email := strings.TrimSpace(req.Email); email != "" {
		params.CustomerEmail = stripe.String(email)
	}

	sess, err := checkoutsession.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	result := &CheckoutSessionResult{
		SessionID: sess.ID,
		URL:       sess.URL,
	}
	if sess.Customer != nil {
		result.CustomerID = sess.Customer.ID
	}

	logging.L().Info("checkout session created",
		zap.String("session_id", sess.ID),
		zap.String("order_id", req.OrderID),
	)
	return result, nil
}

// HandleWebhook verifies and parses a Stripe webhook. Without a webhook
// secret the payload is parsed unverified, which is only suitable for local
// development.
func (s *StripeService) HandleWebhook(payload []byte, signature string) (*WebhookEvent, error) {
	var event stripe.Event
	var err error

	if s.VerifiesSignatures() {
		event, err = webhook.ConstructEvent(payload, signature, s.webhookSecret)
		if err != nil {
			logging.L().Warn("webhook signature verification failed", zap.Error(err))
			return nil, ErrInvalidWebhook
		}
	} else {
		if err := json.Unmarshal(payload, &event); err != nil {
			return nil, fmt.Errorf("failed to parse webhook: %w", err)
		}
	}

	webhookEvent := &WebhookEvent{
		ID:   event.ID,
		Type: string(event.Type),
	}

	if event.Type == EventCheckoutCompleted {
		if event.Data == nil {
			return nil, fmt.Errorf("failed to parse checkout session: missing data")
		}
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return nil, fmt.Errorf("failed to parse checkout session: %w", err)
		}
		webhookEvent.SessionID = session.ID
		webhookEvent.Metadata = session.Metadata
		webhookEvent.OrderID = session.Metadata[OrderIDKey]
		if webhookEvent.OrderID == "" {
			webhookEvent.OrderID = session.ClientReferenceID
		}
		if session.Customer != nil {
			webhookEvent.CustomerID = session.Customer.ID
		}
		if session.Subscription != nil {
			webhookEvent.SubscriptionID = session.Subscription.ID
		}
		if session.CustomerDetails != nil {
			webhookEvent.Email = session.CustomerDetails.Email
		}
		webhookEvent.AmountTotal = session.AmountTotal
		webhookEvent.PaymentStatus = string(session.PaymentStatus)
	}

	logging.L().Info("stripe webhook processed",
		zap.String("type", webhookEvent.Type),
		zap.String("event_id", webhookEvent.ID),
		zap.String("order_id", webhookEvent.OrderID),
	)
	return webhookEvent, nil
}
