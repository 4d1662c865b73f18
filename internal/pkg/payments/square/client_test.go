package square

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(url string) *Client {
	return &Client{
		AccessToken: "test-token",
		LocationID:  "loc_default",
		APIBaseURL:  url,
		HTTPClient:  &http.Client{Timeout: 5 * time.Second},
	}
}

func TestCreatePayment_Success(t *testing.T) {
	var gotReq CreatePaymentRequest
	var gotAuth, gotVersion string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/payments" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		gotVersion = r.Header.Get("Square-Version")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("decode request: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"payment": {
				"id": "p_123",
				"status": "COMPLETED",
				"receipt_url": "https://squareup.com/receipt/p_123",
				"amount_money": { "amount": 5000, "currency": "USD" }
			}
		}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	payment, err := c.CreatePayment(context.Background(), CreatePaymentRequest{
		SourceID:       "cnon:card-nonce",
		IdempotencyKey: "idem-1",
		AmountMoney:    Money{Amount: 5000, Currency: "USD"},
		LocationID:     "loc_1",
		BillingAddress: &Address{PostalCode: "12345"},
	})
	if err != nil {
		t.Fatalf("CreatePayment returned error: %v", err)
	}

	if payment.ID != "p_123" {
		t.Fatalf("payment id = %q, want p_123", payment.ID)
	}
	if payment.Status != "COMPLETED" {
		t.Fatalf("payment status = %q, want COMPLETED", payment.Status)
	}
	if gotAuth != "Bearer test-token" {
		t.Fatalf("authorization header = %q", gotAuth)
	}
	if gotVersion == "" {
		t.Fatalf("expected Square-Version header to be set")
	}
	if gotReq.AmountMoney.Amount != 5000 || gotReq.AmountMoney.Currency != "USD" {
		t.Fatalf("amount sent = %+v, want 5000 USD", gotReq.AmountMoney)
	}
	if gotReq.IdempotencyKey == "" {
		t.Fatalf("expected idempotency key to be sent")
	}
	if gotReq.BillingAddress == nil || gotReq.BillingAddress.PostalCode != "12345" {
		t.Fatalf("billing address not forwarded: %+v", gotReq.BillingAddress)
	}
}

func TestCreatePayment_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{
			"errors": [
				{ "category": "PAYMENT_METHOD_ERROR", "code": "CARD_DECLINED", "detail": "Card declined." }
			]
		}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.CreatePayment(context.Background(), CreatePaymentRequest{
		SourceID:       "cnon:bad-card",
		IdempotencyKey: "idem-2",
		AmountMoney:    Money{Amount: 5000, Currency: "USD"},
	})
	if err == nil {
		t.Fatalf("expected error for declined card")
	}

	apiErr, ok := IsAPIError(err)
	if !ok {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", apiErr.StatusCode)
	}
	if len(apiErr.Errors) != 1 || apiErr.Errors[0].Code != "CARD_DECLINED" {
		t.Fatalf("errors = %+v", apiErr.Errors)
	}
}

func TestCreatePayment_ValidatesInput(t *testing.T) {
	c := newTestClient("http://unused")

	if _, err := c.CreatePayment(context.Background(), CreatePaymentRequest{
		IdempotencyKey: "idem",
		AmountMoney:    Money{Amount: 5000, Currency: "USD"},
	}); err == nil {
		t.Fatalf("expected error for missing source id")
	}

	if _, err := c.CreatePayment(context.Background(), CreatePaymentRequest{
		SourceID:       "cnon:card",
		IdempotencyKey: "idem",
		AmountMoney:    Money{Amount: 0, Currency: "USD"},
	}); err == nil {
		t.Fatalf("expected error for non-positive amount")
	}

	c.AccessToken = ""
	if _, err := c.CreatePayment(context.Background(), CreatePaymentRequest{
		SourceID:       "cnon:card",
		IdempotencyKey: "idem",
		AmountMoney:    Money{Amount: 5000, Currency: "USD"},
	}); err == nil {
		t.Fatalf("expected error for missing access token")
	}
}
