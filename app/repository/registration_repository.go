package repository

import (
	"github.com/MilitiaGamingLeague/platform/app/models"
	"gorm.io/gorm"
)

// registrationRepository implements the RegistrationRepository interface
type registrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository creates a new registration repository instance
func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

// CreateTournamentRegistration creates a new tournament registration
func (r *registrationRepository) CreateTournamentRegistration(reg *models.TournamentRegistration) error {
	return r.db.Create(reg).Error
}

// GetTournamentRegistration retrieves a tournament registration by its ID
func (r *registrationRepository) GetTournamentRegistration(id uint) (*models.TournamentRegistration, error) {
	var reg models.TournamentRegistration
	err := r.db.First(&reg, id).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// GetTournamentRegistrationByEvent retrieves the registration of a team for a tournament
func (r *registrationRepository) GetTournamentRegistrationByEvent(tournamentID, teamID uint) (*models.TournamentRegistration, error) {
	var reg models.TournamentRegistration
	err := r.db.Where("tournament_id = ? AND team_id = ?", tournamentID, teamID).First(&reg).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// ListTournamentRegistrations retrieves all registrations for a tournament
func (r *registrationRepository) ListTournamentRegistrations(tournamentID uint) ([]models.TournamentRegistration, error) {
	var regs []models.TournamentRegistration
	err := r.db.Where("tournament_id = ?", tournamentID).
		Order("registration_date ASC").
		Find(&regs).Error
	return regs, err
}

// ListTournamentRegistrationsForTeam retrieves all tournament registrations of a team
func (r *registrationRepository) ListTournamentRegistrationsForTeam(teamID uint) ([]models.TournamentRegistration, error) {
	var regs []models.TournamentRegistration
	err := r.db.Where("team_id = ?", teamID).
		Order("registration_date DESC").
		Find(&regs).Error
	return regs, err
}

// UpdateTournamentRegistration updates an existing tournament registration
func (r *registrationRepository) UpdateTournamentRegistration(reg *models.TournamentRegistration) error {
	return r.db.Save(reg).Error
}

// CreateTournamentRoster inserts the roster rows of a paid registration
func (r *registrationRepository) CreateTournamentRoster(rows []models.TournamentRoster) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.Create(&rows).Error
}

// GetTournamentRoster retrieves the roster rows of a registration
func (r *registrationRepository) GetTournamentRoster(registrationID uint) ([]models.TournamentRoster, error) {
	var rows []models.TournamentRoster
	err := r.db.Where("registration_id = ?", registrationID).Find(&rows).Error
	return rows, err
}

// CreateLeagueRegistration creates a new league registration
func (r *registrationRepository) CreateLeagueRegistration(reg *models.LeagueRegistration) error {
	return r.db.Create(reg).Error
}

// GetLeagueRegistration retrieves a league registration by its ID
func (r *registrationRepository) GetLeagueRegistration(id uint) (*models.LeagueRegistration, error) {
	var reg models.LeagueRegistration
	err := r.db.First(&reg, id).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// GetLeagueRegistrationByEvent retrieves the registration of a team for a league
func (r *registrationRepository) GetLeagueRegistrationByEvent(leagueID, teamID uint) (*models.LeagueRegistration, error) {
	var reg models.LeagueRegistration
	err := r.db.Where("league_id = ? AND team_id = ?", leagueID, teamID).First(&reg).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// ListLeagueRegistrations retrieves all registrations for a league
func (r *registrationRepository) ListLeagueRegistrations(leagueID uint) ([]models.LeagueRegistration, error) {
	var regs []models.LeagueRegistration
	err := r.db.Where("league_id = ?", leagueID).
		Order("registration_date ASC").
		Find(&regs).Error
	return regs, err
}

// ListLeagueRegistrationsForTeam retrieves all league registrations of a team
func (r *registrationRepository) ListLeagueRegistrationsForTeam(teamID uint) ([]models.LeagueRegistration, error) {
	var regs []models.LeagueRegistration
	err := r.db.Where("team_id = ?", teamID).
		Order("registration_date DESC").
		Find(&regs).Error
	return regs, err
}

// UpdateLeagueRegistration updates an existing league registration
func (r *registrationRepository) UpdateLeagueRegistration(reg *models.LeagueRegistration) error {
	return r.db.Save(reg).Error
}

// CreateLeagueRoster inserts the roster rows of a paid registration
func (r *registrationRepository) CreateLeagueRoster(rows []models.LeagueRoster) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.Create(&rows).Error
}

// GetLeagueRoster retrieves the roster rows of a registration
func (r *registrationRepository) GetLeagueRoster(registrationID uint) ([]models.LeagueRoster, error) {
	var rows []models.LeagueRoster
	err := r.db.Where("registration_id = ?", registrationID).Find(&rows).Error
	return rows, err
}
