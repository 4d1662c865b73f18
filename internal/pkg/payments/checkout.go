package payments

import (
	"context"

	"github.com/MilitiaGamingLeague/platform/app/models"
)

// CardDetails is the raw card input a tokenizer turns into a one-time
// source token. Card numbers never reach the payment service directly.
type CardDetails struct {
	Number     string
	ExpMonth   int
	ExpYear    int
	CVV        string
	PostalCode string
}

// Tokenizer exchanges card details for a one-time source token.
type Tokenizer interface {
	Tokenize(ctx context.Context, card CardDetails) (string, error)
}

// Checkout runs the full client payment flow: tokenize the card, then
// charge the resulting token. A tokenization failure aborts before any
// payment row is written or any gateway call is made.
type Checkout struct {
	tokenizer Tokenizer
	service   *Service
}

// NewCheckout creates a checkout flow from a tokenizer and service.
func NewCheckout(tokenizer Tokenizer, service *Service) *Checkout {
	return &Checkout{tokenizer: tokenizer, service: service}
}

// Pay tokenizes the card and charges the registration entry fee.
func (c *Checkout) Pay(ctx context.Context, card CardDetails, userID uint, locationID string, meta models.PaymentMetadata) (*models.Payment, error) {
	sourceID, err := c.tokenizer.Tokenize(ctx, card)
	if err != nil {
		return nil, err
	}

	return c.service.ChargeRegistration(ctx, ChargeInput{
		UserID:     userID,
		SourceID:   sourceID,
		LocationID: locationID,
		PostalCode: card.PostalCode,
		Metadata:   meta,
	})
}
