package repository

import (
	"sync"

	"gorm.io/gorm"
)

// Factory manages repository instances and ensures they are singletons
type Factory struct {
	db    *gorm.DB
	repos *Repositories
	once  sync.Once
}

// NewFactory creates a new repository factory
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{
		db: db,
	}
}

// GetRepositories returns a singleton instance of all repositories
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		f.repos = NewRepositories(f.db)
	})
	return f.repos
}

// GetUserRepository returns the user repository instance
func (f *Factory) GetUserRepository() UserRepository {
	return f.GetRepositories().User
}

// GetPlayerRepository returns the player repository instance
func (f *Factory) GetPlayerRepository() PlayerRepository {
	return f.GetRepositories().Player
}

// GetTeamRepository returns the team repository instance
func (f *Factory) GetTeamRepository() TeamRepository {
	return f.GetRepositories().Team
}

// GetTournamentRepository returns the tournament repository instance
func (f *Factory) GetTournamentRepository() TournamentRepository {
	return f.GetRepositories().Tournament
}

// GetLeagueRepository returns the league repository instance
func (f *Factory) GetLeagueRepository() LeagueRepository {
	return f.GetRepositories().League
}

// GetRegistrationRepository returns the registration repository instance
func (f *Factory) GetRegistrationRepository() RegistrationRepository {
	return f.GetRepositories().Registration
}

// GetPaymentRepository returns the payment repository instance
func (f *Factory) GetPaymentRepository() PaymentRepository {
	return f.GetRepositories().Payment
}

// GetGameRepository returns the game repository instance
func (f *Factory) GetGameRepository() GameRepository {
	return f.GetRepositories().Game
}

// GetSponsorRepository returns the sponsor repository instance
func (f *Factory) GetSponsorRepository() SponsorRepository {
	return f.GetRepositories().Sponsor
}

// GetContentRepository returns the content repository instance
func (f *Factory) GetContentRepository() ContentRepository {
	return f.GetRepositories().Content
}

// Global factory instance
var globalFactory *Factory
var factoryOnce sync.Once

// InitializeFactory initializes the global repository factory
func InitializeFactory(db *gorm.DB) {
	factoryOnce.Do(func() {
		globalFactory = NewFactory(db)
	})
}

// GetGlobalFactory returns the global repository factory instance
func GetGlobalFactory() *Factory {
	if globalFactory == nil {
		panic("Repository factory not initialized. Call InitializeFactory first.")
	}
	return globalFactory
}

// GetGlobalRepositories returns the global repositories instance
func GetGlobalRepositories() *Repositories {
	return GetGlobalFactory().GetRepositories()
}

// SetGlobalRepositoriesForTesting replaces the global factory with one
// serving the given pre-built repositories. Test helper only.
func SetGlobalRepositoriesForTesting(repos *Repositories) {
	f := &Factory{repos: repos}
	f.once.Do(func() {})
	globalFactory = f
}
