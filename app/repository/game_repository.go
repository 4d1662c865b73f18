package repository

import (
	"github.com/MilitiaGamingLeague/platform/app/models"
	"gorm.io/gorm"
)

// gameRepository implements the GameRepository interface
type gameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a new game repository instance
func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepository{db: db}
}

// Create creates a new game in the database
func (r *gameRepository) Create(game *models.Game) error {
	return r.db.Create(game).Error
}

// GetByID retrieves a game by its ID
func (r *gameRepository) GetByID(id uint) (*models.Game, error) {
	var game models.Game
	err := r.db.First(&game, id).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// GetActive retrieves all games shown on the public site
func (r *gameRepository) GetActive() ([]models.Game, error) {
	var games []models.Game
	err := r.db.Where("is_active = ?", true).Order("title ASC").Find(&games).Error
	return games, err
}

// GetAll retrieves all games
func (r *gameRepository) GetAll() ([]models.Game, error) {
	var games []models.Game
	err := r.db.Order("title ASC").Find(&games).Error
	return games, err
}

// Update updates an existing game in the database
func (r *gameRepository) Update(game *models.Game) error {
	return r.db.Save(game).Error
}

// Delete soft deletes a game by its ID
func (r *gameRepository) Delete(id uint) error {
	return r.db.Delete(&models.Game{}, id).Error
}
