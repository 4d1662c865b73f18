package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Player is the public profile attached to a user account. It is created
// lazily on first sign-in when missing.
type Player struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      uint           `gorm:"uniqueIndex" json:"user_id" validate:"required"`
	DisplayName string         `gorm:"type:varchar(100)" json:"display_name" validate:"required,min=2,max=100"`
	Email       string         `gorm:"type:varchar(200)" json:"email" validate:"omitempty,email"`
	Bio         string         `gorm:"type:text;default:null" json:"bio" validate:"max=1000"`
	AvatarURL   string         `gorm:"type:varchar(255);default:null" json:"avatar_url" validate:"max=255"`
	GameHandle  string         `gorm:"type:varchar(100);default:null" json:"game_handle" validate:"max=100"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *Player) Validate() error {
	v := validator.New()

	return v.Struct(p)
}

// DefaultDisplayName derives the initial display name from an email address.
func DefaultDisplayName(email string) string {
	for i := 0; i < len(email); i++ {
		if email[i] == '@' {
			return email[:i]
		}
	}
	return email
}
