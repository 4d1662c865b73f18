package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type Game struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"uniqueIndex;type:varchar(150)" json:"title" validate:"required,min=2,max=150"`
	Genre       string         `gorm:"type:varchar(100);default:null" json:"genre"`
	CoverURL    string         `gorm:"type:varchar(255);default:null" json:"cover_url"`
	Description string         `gorm:"type:text;default:null" json:"description"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (g *Game) Validate() error {
	v := validator.New()

	return v.Struct(g)
}
