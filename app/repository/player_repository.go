package repository

import (
	"strings"

	"github.com/MilitiaGamingLeague/platform/app/models"
	"gorm.io/gorm"
)

// playerRepository implements the PlayerRepository interface
type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new player repository instance
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

// Create creates a new player profile in the database
func (r *playerRepository) Create(player *models.Player) error {
	return r.db.Create(player).Error
}

// GetByID retrieves a player by their ID
func (r *playerRepository) GetByID(id uint) (*models.Player, error) {
	var player models.Player
	err := r.db.First(&player, id).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// GetByUserID retrieves the player profile belonging to a user account
func (r *playerRepository) GetByUserID(userID uint) (*models.Player, error) {
	var player models.Player
	err := r.db.Where("user_id = ?", userID).First(&player).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// GetByIDs retrieves all players matching the given IDs
func (r *playerRepository) GetByIDs(ids []uint) ([]models.Player, error) {
	var players []models.Player
	if len(ids) == 0 {
		return players, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&players).Error
	return players, err
}

// Update updates an existing player in the database
func (r *playerRepository) Update(player *models.Player) error {
	return r.db.Save(player).Error
}

// Delete soft deletes a player by their ID
func (r *playerRepository) Delete(id uint) error {
	return r.db.Delete(&models.Player{}, id).Error
}

// List retrieves a paginated list of players
func (r *playerRepository) List(offset, limit int) ([]models.Player, error) {
	var players []models.Player
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&players).Error
	return players, err
}

// Count returns the total number of players
func (r *playerRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Player{}).Count(&count).Error
	return count, err
}

// Search searches for players by display name or game handle
func (r *playerRepository) Search(query string) ([]models.Player, error) {
	var players []models.Player
	searchPattern := "%" + strings.TrimSpace(query) + "%"
	err := r.db.Where("display_name LIKE ? OR game_handle LIKE ?", searchPattern, searchPattern).Find(&players).Error
	return players, err
}
