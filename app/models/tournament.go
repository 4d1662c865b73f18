package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	TOURNAMENT_STATUS_DRAFT        = "draft"
	TOURNAMENT_STATUS_REGISTRATION = "registration"
	TOURNAMENT_STATUS_ACTIVE       = "active"
	TOURNAMENT_STATUS_COMPLETED    = "completed"

	// DefaultTournamentFeeCents applies when a tournament has no
	// configured entry fee ($50.00).
	DefaultTournamentFeeCents = 5000
)

type Tournament struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"type:varchar(150)" json:"name" validate:"required,min=3,max=150"`
	GameID        uint           `gorm:"index" json:"game_id"`
	StartDate     *time.Time     `gorm:"type:timestamp;default:null" json:"start_date"`
	EndDate       *time.Time     `gorm:"type:timestamp;default:null" json:"end_date"`
	PrizePool     string         `gorm:"type:varchar(100);default:null" json:"prize_pool"`
	Status        string         `gorm:"type:varchar(50);default:'draft'" json:"status" validate:"oneof=draft registration active completed"`
	EntryFeeCents int64          `gorm:"default:0" json:"entry_fee_cents"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (t *Tournament) Validate() error {
	v := validator.New()

	return v.Struct(t)
}

// IsOpenForRegistration reports whether teams may currently register.
func (t *Tournament) IsOpenForRegistration() bool {
	return t.Status == TOURNAMENT_STATUS_REGISTRATION
}

// FeeCents returns the configured entry fee, falling back to the default.
func (t *Tournament) FeeCents() int64 {
	if t.EntryFeeCents > 0 {
		return t.EntryFeeCents
	}
	return DefaultTournamentFeeCents
}
