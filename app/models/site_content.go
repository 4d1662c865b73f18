package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SiteContent holds admin-editable sections of the public site
// (about, FAQ, terms, contact details).
type SiteContent struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Slug      string         `gorm:"uniqueIndex;type:varchar(100)" json:"slug" validate:"required,min=2,max=100"`
	Title     string         `gorm:"type:varchar(200)" json:"title"`
	Body      string         `gorm:"type:text" json:"body"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (s *SiteContent) Validate() error {
	v := validator.New()

	return v.Struct(s)
}
