package repository

import (
	"github.com/MilitiaGamingLeague/platform/app/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByActivationToken(token string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
	List(offset, limit int) ([]models.User, error)
	Count() (int64, error)
	CountByRole(role models.Role) (int64, error)
	Search(query string) ([]models.User, error)
}

// PlayerRepository defines the interface for player profile operations
type PlayerRepository interface {
	Create(player *models.Player) error
	GetByID(id uint) (*models.Player, error)
	GetByUserID(userID uint) (*models.Player, error)
	GetByIDs(ids []uint) ([]models.Player, error)
	Update(player *models.Player) error
	Delete(id uint) error
	List(offset, limit int) ([]models.Player, error)
	Count() (int64, error)
	Search(query string) ([]models.Player, error)
}

// TeamRepository defines the interface for team and membership operations
type TeamRepository interface {
	Create(team *models.Team) error
	GetByID(id uint) (*models.Team, error)
	GetByName(name string) (*models.Team, error)
	GetByCaptainID(captainID uint) ([]models.Team, error)
	GetTeamsForUser(userID uint) ([]models.Team, error)
	Update(team *models.Team) error
	Delete(id uint) error
	List(offset, limit int) ([]models.Team, error)
	Count() (int64, error)

	AddMember(member *models.TeamPlayer) error
	GetMember(teamID, userID uint) (*models.TeamPlayer, error)
	GetMembers(teamID uint) ([]models.TeamPlayer, error)
	UpdateMember(member *models.TeamPlayer) error
	RemoveMember(teamID, userID uint) error
	CountMembers(teamID uint) (int64, error)

	CreateJoinRequest(request *models.TeamJoinRequest) error
	GetJoinRequest(id uint) (*models.TeamJoinRequest, error)
	GetPendingJoinRequests(teamID uint) ([]models.TeamJoinRequest, error)
	GetJoinRequestsForUser(userID uint) ([]models.TeamJoinRequest, error)
	UpdateJoinRequest(request *models.TeamJoinRequest) error
}

// TournamentRepository defines the interface for tournament operations
type TournamentRepository interface {
	Create(tournament *models.Tournament) error
	GetByID(id uint) (*models.Tournament, error)
	GetOpen() ([]models.Tournament, error)
	List(offset, limit int) ([]models.Tournament, error)
	Update(tournament *models.Tournament) error
	Delete(id uint) error
	Count() (int64, error)
}

// LeagueRepository defines the interface for league operations
type LeagueRepository interface {
	Create(league *models.League) error
	GetByID(id uint) (*models.League, error)
	GetOpen() ([]models.League, error)
	List(offset, limit int) ([]models.League, error)
	Update(league *models.League) error
	Delete(id uint) error
	Count() (int64, error)
}

// RegistrationRepository defines the interface for event registrations
// and the roster rows written once a registration is paid.
type RegistrationRepository interface {
	CreateTournamentRegistration(reg *models.TournamentRegistration) error
	GetTournamentRegistration(id uint) (*models.TournamentRegistration, error)
	GetTournamentRegistrationByEvent(tournamentID, teamID uint) (*models.TournamentRegistration, error)
	ListTournamentRegistrations(tournamentID uint) ([]models.TournamentRegistration, error)
	ListTournamentRegistrationsForTeam(teamID uint) ([]models.TournamentRegistration, error)
	UpdateTournamentRegistration(reg *models.TournamentRegistration) error
	CreateTournamentRoster(rows []models.TournamentRoster) error
	GetTournamentRoster(registrationID uint) ([]models.TournamentRoster, error)

	CreateLeagueRegistration(reg *models.LeagueRegistration) error
	GetLeagueRegistration(id uint) (*models.LeagueRegistration, error)
	GetLeagueRegistrationByEvent(leagueID, teamID uint) (*models.LeagueRegistration, error)
	ListLeagueRegistrations(leagueID uint) ([]models.LeagueRegistration, error)
	ListLeagueRegistrationsForTeam(teamID uint) ([]models.LeagueRegistration, error)
	UpdateLeagueRegistration(reg *models.LeagueRegistration) error
	CreateLeagueRoster(rows []models.LeagueRoster) error
	GetLeagueRoster(registrationID uint) ([]models.LeagueRoster, error)
}

// PaymentRepository defines the interface for payment records
type PaymentRepository interface {
	Create(payment *models.Payment) error
	GetByID(id uint) (*models.Payment, error)
	GetByUserID(userID uint, offset, limit int) ([]models.Payment, error)
	Update(payment *models.Payment) error
	List(offset, limit int) ([]models.Payment, error)
	ListByStatus(status string, offset, limit int) ([]models.Payment, error)
	Count() (int64, error)
	SumCompletedCents() (int64, error)
}

// GameRepository defines the interface for game catalog operations
type GameRepository interface {
	Create(game *models.Game) error
	GetByID(id uint) (*models.Game, error)
	GetActive() ([]models.Game, error)
	GetAll() ([]models.Game, error)
	Update(game *models.Game) error
	Delete(id uint) error
}

// SponsorRepository defines the interface for sponsor operations
type SponsorRepository interface {
	Create(sponsor *models.Sponsor) error
	GetByID(id uint) (*models.Sponsor, error)
	GetActive() ([]models.Sponsor, error)
	GetAll() ([]models.Sponsor, error)
	Update(sponsor *models.Sponsor) error
	Delete(id uint) error
}

// ContentRepository defines the interface for editable site content
type ContentRepository interface {
	Create(content *models.SiteContent) error
	GetByID(id uint) (*models.SiteContent, error)
	GetBySlug(slug string) (*models.SiteContent, error)
	GetAll() ([]models.SiteContent, error)
	GetActive() ([]models.SiteContent, error)
	Update(content *models.SiteContent) error
	Delete(id uint) error
	SlugExists(slug string) (bool, error)
	SlugExistsExceptID(slug string, id uint) (bool, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	User         UserRepository
	Player       PlayerRepository
	Team         TeamRepository
	Tournament   TournamentRepository
	League       LeagueRepository
	Registration RegistrationRepository
	Payment      PaymentRepository
	Game         GameRepository
	Sponsor      SponsorRepository
	Content      ContentRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Player:       NewPlayerRepository(db),
		Team:         NewTeamRepository(db),
		Tournament:   NewTournamentRepository(db),
		League:       NewLeagueRepository(db),
		Registration: NewRegistrationRepository(db),
		Payment:      NewPaymentRepository(db),
		Game:         NewGameRepository(db),
		Sponsor:      NewSponsorRepository(db),
		Content:      NewContentRepository(db),
	}
}
