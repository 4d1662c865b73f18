package repository

import (
	"github.com/MilitiaGamingLeague/platform/app/models"
	"gorm.io/gorm"
)

// teamRepository implements the TeamRepository interface
type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository instance
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

// Create creates a new team in the database
func (r *teamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by its ID
func (r *teamRepository) GetByID(id uint) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByName retrieves a team by its unique name
func (r *teamRepository) GetByName(name string) (*models.Team, error) {
	var team models.Team
	err := r.db.Where("name = ?", name).First(&team).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByCaptainID retrieves all teams captained by a user
func (r *teamRepository) GetByCaptainID(captainID uint) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Where("captain_id = ?", captainID).Find(&teams).Error
	return teams, err
}

// GetTeamsForUser retrieves all teams a user is a member of
func (r *teamRepository) GetTeamsForUser(userID uint) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Joins("JOIN team_players ON team_players.team_id = teams.id").
		Where("team_players.user_id = ?", userID).
		Find(&teams).Error
	return teams, err
}

// Update updates an existing team in the database
func (r *teamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// Delete soft deletes a team by its ID
func (r *teamRepository) Delete(id uint) error {
	return r.db.Delete(&models.Team{}, id).Error
}

// List retrieves a paginated list of teams
func (r *teamRepository) List(offset, limit int) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&teams).Error
	return teams, err
}

// Count returns the total number of teams
func (r *teamRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Team{}).Count(&count).Error
	return count, err
}

// AddMember adds a user to a team
func (r *teamRepository) AddMember(member *models.TeamPlayer) error {
	return r.db.Create(member).Error
}

// GetMember retrieves a single team membership row
func (r *teamRepository) GetMember(teamID, userID uint) (*models.TeamPlayer, error) {
	var member models.TeamPlayer
	err := r.db.Where("team_id = ? AND user_id = ?", teamID, userID).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetMembers retrieves all members of a team, captain first
func (r *teamRepository) GetMembers(teamID uint) ([]models.TeamPlayer, error) {
	var members []models.TeamPlayer
	err := r.db.Where("team_id = ?", teamID).
		Order("role = 'captain' DESC, created_at ASC").
		Find(&members).Error
	return members, err
}

// UpdateMember updates an existing membership row
func (r *teamRepository) UpdateMember(member *models.TeamPlayer) error {
	return r.db.Save(member).Error
}

// RemoveMember removes a user from a team
func (r *teamRepository) RemoveMember(teamID, userID uint) error {
	return r.db.Where("team_id = ? AND user_id = ?", teamID, userID).
		Delete(&models.TeamPlayer{}).Error
}

// CountMembers returns the number of members on a team
func (r *teamRepository) CountMembers(teamID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.TeamPlayer{}).Where("team_id = ?", teamID).Count(&count).Error
	return count, err
}

// CreateJoinRequest creates a new join request for a team
func (r *teamRepository) CreateJoinRequest(request *models.TeamJoinRequest) error {
	return r.db.Create(request).Error
}

// GetJoinRequest retrieves a join request by its ID
func (r *teamRepository) GetJoinRequest(id uint) (*models.TeamJoinRequest, error) {
	var request models.TeamJoinRequest
	err := r.db.First(&request, id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// GetPendingJoinRequests retrieves all open join requests for a team
func (r *teamRepository) GetPendingJoinRequests(teamID uint) ([]models.TeamJoinRequest, error) {
	var requests []models.TeamJoinRequest
	err := r.db.Where("team_id = ? AND status = ?", teamID, models.JOIN_REQUEST_PENDING).
		Order("created_at ASC").
		Find(&requests).Error
	return requests, err
}

// GetJoinRequestsForUser retrieves all join requests a user has filed
func (r *teamRepository) GetJoinRequestsForUser(userID uint) ([]models.TeamJoinRequest, error) {
	var requests []models.TeamJoinRequest
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&requests).Error
	return requests, err
}

// UpdateJoinRequest updates an existing join request
func (r *teamRepository) UpdateJoinRequest(request *models.TeamJoinRequest) error {
	return r.db.Save(request).Error
}
