package models

import (
	"encoding/json"
	"errors"
	"time"
)

const (
	PAYMENT_PENDING   = "pending"
	PAYMENT_COMPLETED = "completed"
	PAYMENT_FAILED    = "failed"

	PAYMENT_METHOD_SQUARE  = "square"
	PAYMENT_METHOD_CASHAPP = "cashapp"

	PAYMENT_CURRENCY_USD = "USD"
)

// Payment records a single charge attempt. A row is inserted pending
// before the gateway call and transitions to exactly one terminal state
// afterward; terminal rows are never mutated again. Retries create new
// rows, and failed rows are never deleted.
type Payment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index" json:"user_id"`
	AmountCents int64     `json:"amount_cents"`
	Currency    string    `gorm:"type:varchar(10);default:'USD'" json:"currency"`
	Method      string    `gorm:"type:varchar(50)" json:"method"`
	Status      string    `gorm:"type:varchar(50);default:'pending'" json:"status"`
	PaymentID   string    `gorm:"type:varchar(100);default:null" json:"payment_id"` // gateway payment id, set on completion
	Description string    `gorm:"type:varchar(255);default:null" json:"description"`
	Metadata    string    `gorm:"type:text;default:null" json:"metadata"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// PaymentMetadata links a payment back to the registration it pays for.
// It is flattened into the Metadata JSON column.
type PaymentMetadata struct {
	Type       EventType `json:"type"`
	EventID    uint      `json:"event_id"`
	TeamID     uint      `json:"team_id"`
	PlayersIDs []uint    `json:"players_ids"`
}

// IsTerminal reports whether the payment has reached a final state.
func (p *Payment) IsTerminal() bool {
	switch p.Status {
	case PAYMENT_COMPLETED, PAYMENT_FAILED:
		return true
	default:
		return false
	}
}

// SetMetadata serializes the registration linkage onto the payment row.
func (p *Payment) SetMetadata(m PaymentMetadata) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	p.Metadata = string(raw)
	return nil
}

// GetMetadata decodes the registration linkage from the payment row.
func (p *Payment) GetMetadata() (*PaymentMetadata, error) {
	if p.Metadata == "" {
		return nil, errors.New("payment has no metadata")
	}
	var m PaymentMetadata
	if err := json.Unmarshal([]byte(p.Metadata), &m); err != nil {
		return nil, err
	}
	return &m, nil
}
