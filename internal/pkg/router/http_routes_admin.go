package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MilitiaGamingLeague/platform/app/controllers"
	"github.com/MilitiaGamingLeague/platform/internal/pkg/middleware"
)

func (h HttpRouter) registerAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.RequireAdmin)
	adminGroup.Get("/", controllers.HandleAdminDashboard)
	adminGroup.Get("/users", controllers.HandleAdminListUsers)
	adminGroup.Post("/users/role/:id", controllers.HandleAdminChangeRole)

	// Game catalog
	adminGroup.Post("/games", controllers.HandleAdminCreateGame)
	adminGroup.Post("/games/update/:id", controllers.HandleAdminUpdateGame)
	adminGroup.Delete("/games/:id", controllers.HandleAdminDeleteGame)

	// Sponsors
	adminGroup.Post("/sponsors", controllers.HandleAdminCreateSponsor)
	adminGroup.Post("/sponsors/update/:id", controllers.HandleAdminUpdateSponsor)
	adminGroup.Delete("/sponsors/:id", controllers.HandleAdminDeleteSponsor)

	// Tournaments
	adminGroup.Post("/tournaments", controllers.HandleAdminCreateTournament)
	adminGroup.Post("/tournaments/update/:id", controllers.HandleAdminUpdateTournament)
	adminGroup.Delete("/tournaments/:id", controllers.HandleAdminDeleteTournament)

	// Leagues
	adminGroup.Post("/leagues", controllers.HandleAdminCreateLeague)
	adminGroup.Post("/leagues/update/:id", controllers.HandleAdminUpdateLeague)
	adminGroup.Delete("/leagues/:id", controllers.HandleAdminDeleteLeague)

	// Site content
	adminGroup.Get("/content", controllers.HandleAdminListContent)
	adminGroup.Post("/content", controllers.HandleAdminCreateContent)
	adminGroup.Post("/content/update/:id", controllers.HandleAdminUpdateContent)
	adminGroup.Delete("/content/:id", controllers.HandleAdminDeleteContent)

	// Payments and registrations
	adminGroup.Get("/payments", controllers.HandleAdminListPayments)
	adminGroup.Get("/registrations", controllers.HandleAdminListRegistrations)

	ownerGroup := app.Group("/owner", middleware.RequireOwner)
	ownerGroup.Get("/", controllers.HandleOwnerDashboard)
	ownerGroup.Get("/staff", controllers.HandleOwnerListStaff)
	ownerGroup.Post("/users/role/:id", controllers.HandleOwnerAssignRole)
}
