package teams

import (
	"context"

	"github.com/MilitiaGamingLeague/platform/app/models"
	"gorm.io/gorm"
)

// Repository provides DB operations used by the team service.
type Repository interface {
	GetTeam(ctx context.Context, id uint) (*models.Team, error)
	GetMember(ctx context.Context, teamID, userID uint) (*models.TeamPlayer, error)
	AddMember(ctx context.Context, member *models.TeamPlayer) error
	RemoveMember(ctx context.Context, teamID, userID uint) error
	TransferOwnership(ctx context.Context, teamID, oldCaptainID, newCaptainID uint) error
	DisbandTeam(ctx context.Context, teamID uint) error
	GetJoinRequest(ctx context.Context, id uint) (*models.TeamJoinRequest, error)
	GetPendingJoinRequest(ctx context.Context, teamID, userID uint) (*models.TeamJoinRequest, error)
	CreateJoinRequest(ctx context.Context, request *models.TeamJoinRequest) error
	SaveJoinRequest(ctx context.Context, request *models.TeamJoinRequest) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a team repository backed by GORM.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) GetTeam(ctx context.Context, id uint) (*models.Team, error) {
	var team models.Team
	if err := r.db.WithContext(ctx).First(&team, id).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *gormRepository) GetMember(ctx context.Context, teamID, userID uint) (*models.TeamPlayer, error) {
	var member models.TeamPlayer
	err := r.db.WithContext(ctx).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *gormRepository) AddMember(ctx context.Context, member *models.TeamPlayer) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *gormRepository) RemoveMember(ctx context.Context, teamID, userID uint) error {
	return r.db.WithContext(ctx).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Delete(&models.TeamPlayer{}).Error
}

// TransferOwnership moves the captain role between two members and
// repoints the team in a single transaction. The removal protection
// follows the role: the old captain's row becomes deletable, the new
// captain's row becomes protected.
func (r *gormRepository) TransferOwnership(ctx context.Context, teamID, oldCaptainID, newCaptainID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Team{}).
			Where("id = ?", teamID).
			Update("captain_id", newCaptainID).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.TeamPlayer{}).
			Where("team_id = ? AND user_id = ?", teamID, oldCaptainID).
			Updates(map[string]interface{}{
				"role":           models.TEAM_ROLE_PLAYER,
				"can_be_deleted": true,
			}).Error; err != nil {
			return err
		}
		return tx.Model(&models.TeamPlayer{}).
			Where("team_id = ? AND user_id = ?", teamID, newCaptainID).
			Updates(map[string]interface{}{
				"role":           models.TEAM_ROLE_CAPTAIN,
				"can_be_deleted": false,
			}).Error
	})
}

// DisbandTeam removes the team, its members and open join requests in
// a single transaction.
func (r *gormRepository) DisbandTeam(ctx context.Context, teamID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", teamID).
			Delete(&models.TeamPlayer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("team_id = ?", teamID).
			Delete(&models.TeamJoinRequest{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Team{}, teamID).Error
	})
}

func (r *gormRepository) GetJoinRequest(ctx context.Context, id uint) (*models.TeamJoinRequest, error) {
	var request models.TeamJoinRequest
	if err := r.db.WithContext(ctx).First(&request, id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *gormRepository) GetPendingJoinRequest(ctx context.Context, teamID, userID uint) (*models.TeamJoinRequest, error) {
	var request models.TeamJoinRequest
	err := r.db.WithContext(ctx).
		Where("team_id = ? AND user_id = ? AND status = ?", teamID, userID, models.JOIN_REQUEST_PENDING).
		First(&request).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *gormRepository) CreateJoinRequest(ctx context.Context, request *models.TeamJoinRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *gormRepository) SaveJoinRequest(ctx context.Context, request *models.TeamJoinRequest) error {
	return r.db.WithContext(ctx).Save(request).Error
}
