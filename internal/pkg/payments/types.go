package payments

import (
	"regexp"
	"strings"
)

// GatewayCharge is the provider-neutral input for a card charge.
type GatewayCharge struct {
	SourceID       string
	IdempotencyKey string
	AmountCents    int64
	Currency       string
	LocationID     string
	PostalCode     string
	Note           string
}

// GatewayResult is the provider-neutral outcome of a completed charge.
type GatewayResult struct {
	PaymentID  string
	Status     string
	ReceiptURL string
}

var nonDigits = regexp.MustCompile(`\D`)

// SanitizeZIP reduces free-form postal code input to at most five
// digits. Anything that is not a digit is dropped.
func SanitizeZIP(raw string) string {
	digits := nonDigits.ReplaceAllString(strings.TrimSpace(raw), "")
	if len(digits) > 5 {
		return digits[:5]
	}
	return digits
}
