package models

import "time"

// Event registration lifecycle. A registration is created pending/unpaid
// when a captain submits a roster and only ever reaches approved/paid
// through a completed payment.
const (
	REGISTRATION_PENDING  = "pending"
	REGISTRATION_APPROVED = "approved"
	REGISTRATION_REJECTED = "rejected"

	PAYMENT_STATUS_UNPAID = "unpaid"
	PAYMENT_STATUS_PAID   = "paid"
)

// EventType distinguishes the two registration variants.
type EventType string

const (
	EventTournament EventType = "tournament"
	EventLeague     EventType = "league"
)

// Valid reports whether t is one of the two known event types.
func (t EventType) Valid() bool {
	switch t {
	case EventTournament, EventLeague:
		return true
	default:
		return false
	}
}

type TournamentRegistration struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	TournamentID     uint      `gorm:"uniqueIndex:idx_tournament_team;index" json:"tournament_id"`
	TeamID           uint      `gorm:"uniqueIndex:idx_tournament_team;index" json:"team_id"`
	Status           string    `gorm:"type:varchar(50);default:'pending'" json:"status"`
	PaymentStatus    string    `gorm:"type:varchar(50);default:'unpaid'" json:"payment_status"`
	RegistrationDate time.Time `gorm:"autoCreateTime" json:"registration_date"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Rosters []TournamentRoster `gorm:"foreignKey:RegistrationID" json:"rosters,omitempty"`
}

// TournamentRoster rows are written once the registration's payment
// completes, one row per fielded player.
type TournamentRoster struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	RegistrationID uint      `gorm:"uniqueIndex:idx_treg_player;index" json:"registration_id"`
	PlayerID       uint      `gorm:"uniqueIndex:idx_treg_player" json:"player_id"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type LeagueRegistration struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	LeagueID         uint      `gorm:"uniqueIndex:idx_league_team;index" json:"league_id"`
	TeamID           uint      `gorm:"uniqueIndex:idx_league_team;index" json:"team_id"`
	Status           string    `gorm:"type:varchar(50);default:'pending'" json:"status"`
	PaymentStatus    string    `gorm:"type:varchar(50);default:'unpaid'" json:"payment_status"`
	RegistrationDate time.Time `gorm:"autoCreateTime" json:"registration_date"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Rosters []LeagueRoster `gorm:"foreignKey:RegistrationID" json:"rosters,omitempty"`
}

type LeagueRoster struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	RegistrationID uint      `gorm:"uniqueIndex:idx_lreg_player;index" json:"registration_id"`
	PlayerID       uint      `gorm:"uniqueIndex:idx_lreg_player" json:"player_id"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// IsPaid reports whether the tournament registration has been paid for.
func (r *TournamentRegistration) IsPaid() bool {
	return r.PaymentStatus == PAYMENT_STATUS_PAID
}

// IsPaid reports whether the league registration has been paid for.
func (r *LeagueRegistration) IsPaid() bool {
	return r.PaymentStatus == PAYMENT_STATUS_PAID
}
