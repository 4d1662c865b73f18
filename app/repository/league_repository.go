package repository

import (
	"github.com/MilitiaGamingLeague/platform/app/models"
	"gorm.io/gorm"
)

// leagueRepository implements the LeagueRepository interface
type leagueRepository struct {
	db *gorm.DB
}

// NewLeagueRepository creates a new league repository instance
func NewLeagueRepository(db *gorm.DB) LeagueRepository {
	return &leagueRepository{db: db}
}

// Create creates a new league in the database
func (r *leagueRepository) Create(league *models.League) error {
	return r.db.Create(league).Error
}

// GetByID retrieves a league by its ID
func (r *leagueRepository) GetByID(id uint) (*models.League, error) {
	var league models.League
	err := r.db.First(&league, id).Error
	if err != nil {
		return nil, err
	}
	return &league, nil
}

// GetOpen retrieves all leagues currently accepting registrations
func (r *leagueRepository) GetOpen() ([]models.League, error) {
	var leagues []models.League
	err := r.db.Where("status = ?", models.LEAGUE_STATUS_ACTIVE).
		Order("season_start ASC").
		Find(&leagues).Error
	return leagues, err
}

// List retrieves a paginated list of leagues
func (r *leagueRepository) List(offset, limit int) ([]models.League, error) {
	var leagues []models.League
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&leagues).Error
	return leagues, err
}

// Update updates an existing league in the database
func (r *leagueRepository) Update(league *models.League) error {
	return r.db.Save(league).Error
}

// Delete soft deletes a league by its ID
func (r *leagueRepository) Delete(id uint) error {
	return r.db.Delete(&models.League{}, id).Error
}

// Count returns the total number of leagues
func (r *leagueRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.League{}).Count(&count).Error
	return count, err
}
