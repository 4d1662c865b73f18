package payments

import (
	"context"

	"github.com/MilitiaGamingLeague/platform/internal/pkg/payments/square"
)

// SquareGateway adapts the Square client to the Gateway interface.
type SquareGateway struct {
	client *square.Client
}

// NewSquareGateway wraps a Square client.
func NewSquareGateway(client *square.Client) *SquareGateway {
	return &SquareGateway{client: client}
}

// Charge executes the charge via Square. The configured location is
// used when the caller does not override it.
func (g *SquareGateway) Charge(ctx context.Context, in GatewayCharge) (*GatewayResult, error) {
	locationID := in.LocationID
	if locationID == "" {
		locationID = g.client.LocationID
	}

	req := square.CreatePaymentRequest{
		SourceID:       in.SourceID,
		IdempotencyKey: in.IdempotencyKey,
		AmountMoney: square.Money{
			Amount:   in.AmountCents,
			Currency: in.Currency,
		},
		LocationID: locationID,
		Note:       in.Note,
	}
	if in.PostalCode != "" {
		req.BillingAddress = &square.Address{PostalCode: in.PostalCode}
	}

	payment, err := g.client.CreatePayment(ctx, req)
	if err != nil {
		return nil, err
	}
	return &GatewayResult{
		PaymentID:  payment.ID,
		Status:     payment.Status,
		ReceiptURL: payment.ReceiptURL,
	}, nil
}
