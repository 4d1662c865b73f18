package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/MilitiaGamingLeague/platform/app/controllers"
	"github.com/MilitiaGamingLeague/platform/internal/pkg/database"
	"github.com/MilitiaGamingLeague/platform/internal/pkg/middleware"
	"github.com/MilitiaGamingLeague/platform/internal/pkg/oauth"
	"github.com/MilitiaGamingLeague/platform/internal/pkg/objectstorage"
	"github.com/MilitiaGamingLeague/platform/internal/pkg/payments"
	"github.com/MilitiaGamingLeague/platform/internal/pkg/payments/square"
	"github.com/MilitiaGamingLeague/platform/internal/pkg/session"
	"github.com/MilitiaGamingLeague/platform/internal/pkg/teams"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// init oauth providers
	oauth.Setup()

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware)

	// Wire the team service into the team controllers
	controllers.InitTeamService(teams.NewServiceFromDB(database.GetDB()))

	// Wire the Square payment gateway when credentials are configured
	squareClient := square.NewClientFromEnv()
	if squareClient.AccessToken != "" {
		gateway := payments.NewSquareGateway(squareClient)
		controllers.InitPaymentService(payments.NewServiceFromDB(database.GetDB(), gateway))
	} else {
		log.Warn("[Router] SQUARE_ACCESS_TOKEN not set, payment endpoints disabled")
	}

	// Wire object storage when enabled
	storageCfg, err := objectstorage.LoadConfig()
	if err == nil && storageCfg.IsEnabled() {
		client, err := objectstorage.NewClient(storageCfg)
		if err != nil {
			log.Errorf("[Router] object storage setup failed: %v", err)
		} else {
			controllers.InitObjectStorage(client)
		}
	}

	h.registerPublicRoutes(app)
	h.registerAdminRoutes(app)
	h.registerCSRFProtectedRoutes(app)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
