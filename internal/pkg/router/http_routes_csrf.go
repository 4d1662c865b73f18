package router

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/csrf"

	"github.com/MilitiaGamingLeague/platform/app/controllers"
	"github.com/MilitiaGamingLeague/platform/internal/pkg/env"
	"github.com/MilitiaGamingLeague/platform/internal/pkg/middleware"
)

func (h HttpRouter) registerCSRFProtectedRoutes(app *fiber.App) {
	csrfConf := csrf.Config{
		KeyLookup:      "header:X-Csrf-Token",
		ContextKey:     "csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		CookieSecure:   !env.IsDev(),
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/api/")
		},
	}

	group := app.Group("", cors.New(), csrf.New(csrfConf))

	// Account
	group.Post("/register", controllers.HandleAuthRegister)
	group.Get("/activate", controllers.HandleAuthActivate)
	group.Post("/login", controllers.HandleAuthLogin)

	// Player profile
	group.Get("/user/profile", middleware.RequireAuth, controllers.HandleGetProfile)
	group.Post("/user/profile", middleware.RequireAuth, controllers.HandleUpdateProfile)
	group.Post("/user/profile/avatar", middleware.RequireAuth, controllers.HandleUploadAvatar)
	group.Post("/user/password", middleware.RequireAuth, controllers.HandleAuthUpdatePassword)
	group.Get("/user/registrations", middleware.RequireAuth, controllers.HandleMyRegistrations)
	group.Get("/user/payments", middleware.RequireAuth, controllers.HandleMyPayments)

	// Teams
	group.Post("/teams", middleware.RequireAuth, controllers.HandleCreateTeam)
	group.Post("/teams/update/:id", middleware.RequireAuth, controllers.HandleUpdateTeam)
	group.Post("/teams/:id/logo", middleware.RequireAuth, controllers.HandleUploadTeamLogo)
	group.Post("/teams/:id/join", middleware.RequireAuth, controllers.HandleRequestToJoin)
	group.Get("/teams/:id/requests", middleware.RequireAuth, controllers.HandleListJoinRequests)
	group.Post("/teams/:id/requests/:requestID/approve", middleware.RequireAuth, controllers.HandleApproveJoinRequest)
	group.Post("/teams/:id/requests/:requestID/reject", middleware.RequireAuth, controllers.HandleRejectJoinRequest)
	group.Post("/teams/:id/members/:userID/remove", middleware.RequireAuth, controllers.HandleRemoveMember)
	group.Post("/teams/:id/transfer", middleware.RequireAuth, controllers.HandleTransferOwnership)
	group.Post("/teams/:id/disband", middleware.RequireAuth, controllers.HandleDisbandTeam)

	// Event registration
	group.Post("/tournaments/:id/register", middleware.RequireAuth, controllers.HandleRegisterForTournament)
	group.Post("/leagues/:id/register", middleware.RequireAuth, controllers.HandleRegisterForLeague)
}
