package payments

import (
	"github.com/MilitiaGamingLeague/platform/app/models"
	"gorm.io/gorm"
)

// Repository provides DB operations used by the payment service.
type Repository interface {
	CreatePayment(p *models.Payment) error
	UpdatePayment(p *models.Payment) error
	GetTournament(id uint) (*models.Tournament, error)
	GetLeague(id uint) (*models.League, error)
	GetTournamentRegistrationByEvent(tournamentID, teamID uint) (*models.TournamentRegistration, error)
	GetLeagueRegistrationByEvent(leagueID, teamID uint) (*models.LeagueRegistration, error)
	ApproveTournamentRegistration(registrationID uint, playerIDs []uint) error
	ApproveLeagueRegistration(registrationID uint, playerIDs []uint) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a payment repository backed by GORM.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) CreatePayment(p *models.Payment) error {
	return r.db.Create(p).Error
}

func (r *gormRepository) UpdatePayment(p *models.Payment) error {
	return r.db.Save(p).Error
}

func (r *gormRepository) GetTournament(id uint) (*models.Tournament, error) {
	var t models.Tournament
	if err := r.db.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *gormRepository) GetLeague(id uint) (*models.League, error) {
	var l models.League
	if err := r.db.First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *gormRepository) GetTournamentRegistrationByEvent(tournamentID, teamID uint) (*models.TournamentRegistration, error) {
	var reg models.TournamentRegistration
	err := r.db.Where("tournament_id = ? AND team_id = ?", tournamentID, teamID).First(&reg).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *gormRepository) GetLeagueRegistrationByEvent(leagueID, teamID uint) (*models.LeagueRegistration, error) {
	var reg models.LeagueRegistration
	err := r.db.Where("league_id = ? AND team_id = ?", leagueID, teamID).First(&reg).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// ApproveTournamentRegistration flips the registration to approved/paid
// and writes the roster rows in a single transaction.
func (r *gormRepository) ApproveTournamentRegistration(registrationID uint, playerIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"status":         models.REGISTRATION_APPROVED,
			"payment_status": models.PAYMENT_STATUS_PAID,
		}
		if err := tx.Model(&models.TournamentRegistration{}).
			Where("id = ?", registrationID).
			Updates(updates).Error; err != nil {
			return err
		}

		rows := make([]models.TournamentRoster, 0, len(playerIDs))
		for _, pid := range playerIDs {
			rows = append(rows, models.TournamentRoster{
				RegistrationID: registrationID,
				PlayerID:       pid,
			})
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

// ApproveLeagueRegistration flips the registration to approved/paid
// and writes the roster rows in a single transaction.
func (r *gormRepository) ApproveLeagueRegistration(registrationID uint, playerIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"status":         models.REGISTRATION_APPROVED,
			"payment_status": models.PAYMENT_STATUS_PAID,
		}
		if err := tx.Model(&models.LeagueRegistration{}).
			Where("id = ?", registrationID).
			Updates(updates).Error; err != nil {
			return err
		}

		rows := make([]models.LeagueRoster, 0, len(playerIDs))
		for _, pid := range playerIDs {
			rows = append(rows, models.LeagueRoster{
				RegistrationID: registrationID,
				PlayerID:       pid,
			})
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}
