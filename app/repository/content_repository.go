package repository

import (
	"errors"

	"github.com/MilitiaGamingLeague/platform/app/models"
	"gorm.io/gorm"
)

// contentRepository implements the ContentRepository interface
type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository creates a new content repository instance
func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

// Create creates a new content section in the database
func (r *contentRepository) Create(content *models.SiteContent) error {
	return r.db.Create(content).Error
}

// GetByID retrieves a content section by its ID
func (r *contentRepository) GetByID(id uint) (*models.SiteContent, error) {
	var content models.SiteContent
	err := r.db.First(&content, id).Error
	if err != nil {
		return nil, err
	}
	return &content, nil
}

// GetBySlug retrieves a content section by its slug
func (r *contentRepository) GetBySlug(slug string) (*models.SiteContent, error) {
	var content models.SiteContent
	err := r.db.Where("slug = ?", slug).First(&content).Error
	if err != nil {
		return nil, err
	}
	return &content, nil
}

// GetAll retrieves all content sections
func (r *contentRepository) GetAll() ([]models.SiteContent, error) {
	var contents []models.SiteContent
	err := r.db.Order("slug ASC").Find(&contents).Error
	return contents, err
}

// GetActive retrieves all published content sections
func (r *contentRepository) GetActive() ([]models.SiteContent, error) {
	var contents []models.SiteContent
	err := r.db.Where("is_active = ?", true).Order("slug ASC").Find(&contents).Error
	return contents, err
}

// Update updates an existing content section
func (r *contentRepository) Update(content *models.SiteContent) error {
	return r.db.Save(content).Error
}

// Delete soft deletes a content section by its ID
func (r *contentRepository) Delete(id uint) error {
	return r.db.Delete(&models.SiteContent{}, id).Error
}

// SlugExists checks whether a slug is already taken
func (r *contentRepository) SlugExists(slug string) (bool, error) {
	var content models.SiteContent
	err := r.db.Where("slug = ?", slug).First(&content).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// SlugExistsExceptID checks whether a slug is taken by a different record
func (r *contentRepository) SlugExistsExceptID(slug string, id uint) (bool, error) {
	var content models.SiteContent
	err := r.db.Where("slug = ? AND id != ?", slug, id).First(&content).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
