package router

import (
	"github.com/gofiber/fiber/v2"
	gothfiber "github.com/shareed2k/goth_fiber"

	"github.com/MilitiaGamingLeague/platform/app/controllers"
	"github.com/MilitiaGamingLeague/platform/internal/pkg/middleware"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	// Events and catalog data are readable without an account
	app.Get("/tournaments", controllers.HandleListTournaments)
	app.Get("/tournaments/:id", controllers.HandleGetTournament)
	app.Get("/leagues", controllers.HandleListLeagues)
	app.Get("/leagues/:id", controllers.HandleGetLeague)
	app.Get("/games", controllers.HandleListGames)
	app.Get("/sponsors", controllers.HandleListSponsors)
	app.Get("/page/:slug", controllers.HandleGetContent)

	// Public player profiles
	app.Get("/players/search", controllers.HandleSearchPlayers)
	app.Get("/players/:id", controllers.HandleGetPlayer)

	// Public team pages
	app.Get("/teams", controllers.HandleListTeams)
	app.Get("/teams/:id", controllers.HandleGetTeam)

	// Rosters become public once a registration is paid
	app.Get("/registrations/tournament/:id/roster", controllers.HandleGetTournamentRoster)
	app.Get("/registrations/league/:id/roster", controllers.HandleGetLeagueRoster)

	// Auth
	app.Post("/logout", middleware.RequireAuth, controllers.HandleAuthLogout)

	// Social OAuth
	app.Get("/auth/:provider", gothfiber.BeginAuthHandler)
	app.Get("/auth/:provider/callback", controllers.HandleOAuthCallback)
}
