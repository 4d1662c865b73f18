package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	LEAGUE_STATUS_DRAFT     = "draft"
	LEAGUE_STATUS_ACTIVE    = "active"
	LEAGUE_STATUS_COMPLETED = "completed"

	// DefaultLeagueFeeCents applies when a league has no configured
	// entry fee ($100.00).
	DefaultLeagueFeeCents = 10000
)

type League struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"type:varchar(150)" json:"name" validate:"required,min=3,max=150"`
	GameID        uint           `gorm:"index" json:"game_id"`
	CurrentSeason int            `gorm:"default:1" json:"current_season"`
	SeasonStart   *time.Time     `gorm:"type:timestamp;default:null" json:"season_start"`
	Status        string         `gorm:"type:varchar(50);default:'draft'" json:"status" validate:"oneof=draft active completed"`
	EntryFeeCents int64          `gorm:"default:0" json:"entry_fee_cents"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (l *League) Validate() error {
	v := validator.New()

	return v.Struct(l)
}

// IsOpenForRegistration reports whether teams may currently register.
// Leagues accept registrations while active, matching the sign-up flow.
func (l *League) IsOpenForRegistration() bool {
	return l.Status == LEAGUE_STATUS_ACTIVE
}

// FeeCents returns the configured entry fee, falling back to the default.
func (l *League) FeeCents() int64 {
	if l.EntryFeeCents > 0 {
		return l.EntryFeeCents
	}
	return DefaultLeagueFeeCents
}
