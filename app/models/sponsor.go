package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type Sponsor struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"type:varchar(150)" json:"name" validate:"required,min=2,max=150"`
	LogoURL   string         `gorm:"type:varchar(255);default:null" json:"logo_url"`
	Website   string         `gorm:"type:varchar(255);default:null" json:"website" validate:"omitempty,url"`
	Tier      string         `gorm:"type:varchar(50);default:null" json:"tier"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (s *Sponsor) Validate() error {
	v := validator.New()

	return v.Struct(s)
}
