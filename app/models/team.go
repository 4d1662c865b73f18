package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	TEAM_ROLE_CAPTAIN = "captain"
	TEAM_ROLE_PLAYER  = "player"
)

type Team struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"uniqueIndex;type:varchar(100)" json:"name" validate:"required,min=3,max=100"`
	LogoURL   string         `gorm:"type:varchar(255);default:null" json:"logo_url" validate:"max=255"`
	BannerURL string         `gorm:"type:varchar(255);default:null" json:"banner_url" validate:"max=255"`
	Website   string         `gorm:"type:varchar(255);default:null" json:"website" validate:"omitempty,url,max=255"`
	Email     string         `gorm:"type:varchar(200);default:null" json:"email" validate:"omitempty,email"`
	CaptainID uint           `gorm:"index" json:"captain_id" validate:"required"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (t *Team) Validate() error {
	v := validator.New()

	return v.Struct(t)
}

// TeamPlayer links a user to a team roster. The captain row carries
// CanBeDeleted=false so it never disappears through member removal.
type TeamPlayer struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	TeamID       uint      `gorm:"uniqueIndex:idx_team_user;index" json:"team_id"`
	UserID       uint      `gorm:"uniqueIndex:idx_team_user;index" json:"user_id"`
	Role         string    `gorm:"type:varchar(50);default:'player'" json:"role" validate:"oneof=captain player"`
	JerseyNumber *int      `gorm:"default:null" json:"jersey_number"`
	CanBeDeleted bool      `gorm:"default:true" json:"can_be_deleted"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// IsCaptain reports whether this membership row is the captain row.
func (tp *TeamPlayer) IsCaptain() bool {
	return tp.Role == TEAM_ROLE_CAPTAIN
}
