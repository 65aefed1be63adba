package payments

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
)

const testWebhookSecret = "whsec_test_secret"

func testConfig() config.StripeConfig {
	return config.StripeConfig{
		SecretKey:     "sk_test_123",
		WebhookSecret: testWebhookSecret,
		SuccessURL:    "https://ezhelp.test/success",
		CancelURL:     "https://ezhelp.test/cancel",
	}
}

// useStripeBackend points stripe-go at a local server for the test.
func useStripeBackend(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		HTTPClient:        srv.Client(),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	stripe.SetBackend(stripe.APIBackend, backend)
	t.Cleanup(func() { stripe.SetBackend(stripe.APIBackend, nil) })
}

func TestCreateCheckoutSession(t *testing.T) {
	var form map[string]string
	useStripeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasSuffix(r.URL.Path, "/checkout/sessions"), r.URL.Path)
		require.NoError(t, r.ParseForm())
		form = map[string]string{}
		for k := range r.PostForm {
			form[k] = r.PostForm.Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"cs_test_1","object":"checkout.session","url":"https://checkout.stripe.test/cs_test_1","customer":"cus_1"}`)
	})

	svc := NewStripeService(testConfig())
	res, err := svc.CreateCheckoutSession(context.Background(), CheckoutRequest{
		PriceID: "price_123",
		OrderID: "order-1",
		Email:   "owner@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "cs_test_1", res.SessionID)
	assert.Equal(t, "https://checkout.stripe.test/cs_test_1", res.URL)
	assert.Equal(t, "cus_1", res.CustomerID)

	assert.Equal(t, "subscription", form["mode"])
	assert.Equal(t, "price_123", form["line_items[0][price]"])
	assert.Equal(t, "1", form["line_items[0][quantity]"])
	assert.Equal(t, "https://ezhelp.test/success", form["success_url"])
	assert.Equal(t, "https://ezhelp.test/cancel", form["cancel_url"])
	assert.Equal(t, "order-1", form["metadata[order_id]"])
	assert.Equal(t, "order-1", form["client_reference_id"])
	assert.Equal(t, "owner@example.com", form["customer_email"])
}

func TestCreateCheckoutSession_Errors(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		svc := NewStripeService(config.StripeConfig{})
		_, err := svc.CreateCheckoutSession(context.Background(), CheckoutRequest{PriceID: "price_1"})
		assert.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("nil service", func(t *testing.T) {
		var svc *StripeService
		assert.False(t, svc.IsConfigured())
		_, err := svc.CreateCheckoutSession(context.Background(), CheckoutRequest{PriceID: "price_1"})
		assert.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("invalid price", func(t *testing.T) {
		svc := NewStripeService(testConfig())
		for _, id := range []string{"", "   ", "price 1"} {
			_, err := svc.CreateCheckoutSession(context.Background(), CheckoutRequest{PriceID: id})
			assert.ErrorIs(t, err, ErrInvalidPriceID, id)
		}
	})

	t.Run("upstream error", func(t *testing.T) {
		useStripeBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error":{"type":"invalid_request_error","message":"No such price: 'price_x'"}}`)
		})
		svc := NewStripeService(testConfig())
		_, err := svc.CreateCheckoutSession(context.Background(), CheckoutRequest{PriceID: "price_x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create checkout session")
	})
}

func checkoutCompletedPayload(metadata string) []byte {
	return []byte(fmt.Sprintf(`{
  "id": "evt_1",
  "object": "event",
  "api_version": %q,
  "type": "checkout.session.completed",
  "data": {"object": {
    "id": "cs_test_1",
    "object": "checkout.session",
    "client_reference_id": "ref-order",
    "customer": "cus_1",
    "subscription": "sub_1",
    "customer_details": {"email": "owner@example.com"},
    "amount_total": 500000,
    "payment_status": "paid",
    "metadata": %s
  }}
}`, stripe.APIVersion, metadata))
}

func sign(payload []byte, secret string) string {
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    secret,
		Timestamp: time.Now(),
	})
	return signed.Header
}

func TestHandleWebhook_CheckoutCompleted(t *testing.T) {
	svc := NewStripeService(testConfig())
	payload := checkoutCompletedPayload(`{"order_id":"order-1"}`)

	event, err := svc.HandleWebhook(payload, sign(payload, testWebhookSecret))
	require.NoError(t, err)

	assert.Equal(t, "evt_1", event.ID)
	assert.Equal(t, EventCheckoutCompleted, event.Type)
	assert.Equal(t, "cs_test_1", event.SessionID)
	assert.Equal(t, "order-1", event.OrderID)
	assert.Equal(t, "cus_1", event.CustomerID)
	assert.Equal(t, "sub_1", event.SubscriptionID)
	assert.Equal(t, "owner@example.com", event.Email)
	assert.Equal(t, int64(500000), event.AmountTotal)
	assert.Equal(t, "paid", event.PaymentStatus)
}

func TestHandleWebhook_ClientReferenceFallback(t *testing.T) {
	svc := NewStripeService(testConfig())
	payload := checkoutCompletedPayload(`{}`)

	event, err := svc.HandleWebhook(payload, sign(payload, testWebhookSecret))
	require.NoError(t, err)
	assert.Equal(t, "ref-order", event.OrderID)
}

func TestHandleWebhook_BadSignature(t *testing.T) {
	svc := NewStripeService(testConfig())
	payload := checkoutCompletedPayload(`{"order_id":"order-1"}`)

	tests := []struct {
		name      string
		signature string
	}{
		{"missing", ""},
		{"wrong secret", sign(payload, "whsec_other")},
		{"garbage", "t=1,v1=deadbeef"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.HandleWebhook(payload, tt.signature)
			assert.ErrorIs(t, err, ErrInvalidWebhook)
		})
	}
}

func TestHandleWebhook_Unverified(t *testing.T) {
	cfg := testConfig()
	cfg.WebhookSecret = ""
	svc := NewStripeService(cfg)
	assert.False(t, svc.VerifiesSignatures())

	event, err := svc.HandleWebhook(checkoutCompletedPayload(`{"order_id":"order-2"}`), "")
	require.NoError(t, err)
	assert.Equal(t, "order-2", event.OrderID)

	other, err := svc.HandleWebhook([]byte(`{"id":"evt_2","type":"invoice.paid","data":{"object":{}}}`), "")
	require.NoError(t, err)
	assert.Equal(t, "invoice.paid", other.Type)
	assert.Empty(t, other.OrderID)

	_, err = svc.HandleWebhook([]byte("not json"), "")
	assert.Error(t, err)
}
