package repository

import (
	"github.com/MilitiaGamingLeague/platform/app/models"
	"gorm.io/gorm"
)

// sponsorRepository implements the SponsorRepository interface
type sponsorRepository struct {
	db *gorm.DB
}

// NewSponsorRepository creates a new sponsor repository instance
func NewSponsorRepository(db *gorm.DB) SponsorRepository {
	return &sponsorRepository{db: db}
}

// Create creates a new sponsor in the database
func (r *sponsorRepository) Create(sponsor *models.Sponsor) error {
	return r.db.Create(sponsor).Error
}

// GetByID retrieves a sponsor by its ID
func (r *sponsorRepository) GetByID(id uint) (*models.Sponsor, error) {
	var sponsor models.Sponsor
	err := r.db.First(&sponsor, id).Error
	if err != nil {
		return nil, err
	}
	return &sponsor, nil
}

// GetActive retrieves all sponsors shown on the public site
func (r *sponsorRepository) GetActive() ([]models.Sponsor, error) {
	var sponsors []models.Sponsor
	err := r.db.Where("is_active = ?", true).Order("tier ASC, name ASC").Find(&sponsors).Error
	return sponsors, err
}

// GetAll retrieves all sponsors
func (r *sponsorRepository) GetAll() ([]models.Sponsor, error) {
	var sponsors []models.Sponsor
	err := r.db.Order("name ASC").Find(&sponsors).Error
	return sponsors, err
}

// Update updates an existing sponsor in the database
func (r *sponsorRepository) Update(sponsor *models.Sponsor) error {
	return r.db.Save(sponsor).Error
}

// Delete soft deletes a sponsor by its ID
func (r *sponsorRepository) Delete(id uint) error {
	return r.db.Delete(&models.Sponsor{}, id).Error
}
