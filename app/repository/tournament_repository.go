package repository

import (
	"github.com/MilitiaGamingLeague/platform/app/models"
	"gorm.io/gorm"
)

// tournamentRepository implements the TournamentRepository interface
type tournamentRepository struct {
	db *gorm.DB
}

// NewTournamentRepository creates a new tournament repository instance
func NewTournamentRepository(db *gorm.DB) TournamentRepository {
	return &tournamentRepository{db: db}
}

// Create creates a new tournament in the database
func (r *tournamentRepository) Create(tournament *models.Tournament) error {
	return r.db.Create(tournament).Error
}

// GetByID retrieves a tournament by its ID
func (r *tournamentRepository) GetByID(id uint) (*models.Tournament, error) {
	var tournament models.Tournament
	err := r.db.First(&tournament, id).Error
	if err != nil {
		return nil, err
	}
	return &tournament, nil
}

// GetOpen retrieves all tournaments currently accepting registrations
func (r *tournamentRepository) GetOpen() ([]models.Tournament, error) {
	var tournaments []models.Tournament
	err := r.db.Where("status = ?", models.TOURNAMENT_STATUS_REGISTRATION).
		Order("start_date ASC").
		Find(&tournaments).Error
	return tournaments, err
}

// List retrieves a paginated list of tournaments
func (r *tournamentRepository) List(offset, limit int) ([]models.Tournament, error) {
	var tournaments []models.Tournament
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&tournaments).Error
	return tournaments, err
}

// Update updates an existing tournament in the database
func (r *tournamentRepository) Update(tournament *models.Tournament) error {
	return r.db.Save(tournament).Error
}

// Delete soft deletes a tournament by its ID
func (r *tournamentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Tournament{}, id).Error
}

// Count returns the total number of tournaments
func (r *tournamentRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Tournament{}).Count(&count).Error
	return count, err
}
