package square

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/MilitiaGamingLeague/platform/internal/pkg/env"
)

const (
	defaultAPIBaseURL = "https://connect.squareup.com/v2"
	apiVersion        = "2024-01-18"
)

// Client talks to the Square Payments API.
type Client struct {
	AccessToken string
	LocationID  string
	APIBaseURL  string

	HTTPClient *http.Client
}

// Money is an amount in the smallest currency unit.
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// Address carries the billing details Square accepts on a charge.
type Address struct {
	PostalCode string `json:"postal_code,omitempty"`
}

// CreatePaymentRequest is the wire form of a charge.
type CreatePaymentRequest struct {
	SourceID       string   `json:"source_id"`
	IdempotencyKey string   `json:"idempotency_key"`
	AmountMoney    Money    `json:"amount_money"`
	LocationID     string   `json:"location_id,omitempty"`
	BillingAddress *Address `json:"billing_address,omitempty"`
	Note           string   `json:"note,omitempty"`
}

// Payment is the subset of Square's payment object the app uses.
type Payment struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	ReceiptURL  string `json:"receipt_url"`
	AmountMoney Money  `json:"amount_money"`
}

// ErrorDetail is a single entry of Square's errors array.
type ErrorDetail struct {
	Category string `json:"category"`
	Code     string `json:"code"`
	Detail   string `json:"detail"`
	Field    string `json:"field,omitempty"`
}

// APIError wraps the errors array Square returns on a declined or
// rejected charge. Callers can distinguish it from transport failures.
type APIError struct {
	StatusCode int
	Errors     []ErrorDetail
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("square api error: status=%d", e.StatusCode)
	}
	parts := make([]string, 0, len(e.Errors))
	for _, d := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s/%s: %s", d.Category, d.Code, d.Detail))
	}
	return "square api error: " + strings.Join(parts, "; ")
}

// IsAPIError reports whether err carries a Square errors array and
// returns it if so.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// NewClientFromEnv builds a client from SQUARE_* environment variables.
func NewClientFromEnv() *Client {
	return &Client{
		AccessToken: strings.TrimSpace(env.GetEnv("SQUARE_ACCESS_TOKEN", "")),
		LocationID:  strings.TrimSpace(env.GetEnv("SQUARE_LOCATION_ID", "")),
		APIBaseURL:  strings.TrimSpace(env.GetEnv("SQUARE_API_BASE_URL", defaultAPIBaseURL)),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// CreatePayment executes a charge against the Square Payments API.
func (c *Client) CreatePayment(ctx context.Context, in CreatePaymentRequest) (*Payment, error) {
	if strings.TrimSpace(c.AccessToken) == "" {
		return nil, errors.New("SQUARE_ACCESS_TOKEN is not configured")
	}
	if strings.TrimSpace(in.SourceID) == "" {
		return nil, errors.New("source id is required")
	}
	if strings.TrimSpace(in.IdempotencyKey) == "" {
		return nil, errors.New("idempotency key is required")
	}
	if in.AmountMoney.Amount <= 0 {
		return nil, errors.New("amount must be positive")
	}

	payload, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}

	url := strings.TrimRight(c.APIBaseURL, "/") + "/payments"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.AccessToken)
	req.Header.Set("Square-Version", apiVersion)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var raw struct {
			Errors []ErrorDetail `json:"errors"`
		}
		if err := json.Unmarshal(body, &raw); err == nil && len(raw.Errors) > 0 {
			return nil, &APIError{StatusCode: resp.StatusCode, Errors: raw.Errors}
		}
		return nil, fmt.Errorf("square payment request failed: status=%d body=%s", resp.StatusCode, string(body))
	}

	var out struct {
		Payment Payment `json:"payment"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, err
	}
	if strings.TrimSpace(out.Payment.ID) == "" {
		return nil, errors.New("square payment response missing payment id")
	}
	return &out.Payment, nil
}
