package apiv1

import (
	"github.com/gofiber/fiber/v2"

	// Delegate to existing controllers to keep behavior consistent
	"github.com/MilitiaGamingLeague/platform/app/controllers"
)

// Pong is the ping endpoint response body.
type Pong struct {
	Ping string `json:"ping"`
}

// APIServer implements the versioned JSON API.
type APIServer struct{}

// NewAPIServer creates a new API server instance
func NewAPIServer() *APIServer {
	return &APIServer{}
}

// GetPing handles the ping endpoint
func (s *APIServer) GetPing(c *fiber.Ctx) error {
	response := Pong{
		Ping: "pong",
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// GetTournaments lists tournaments for API consumers.
func (s *APIServer) GetTournaments(c *fiber.Ctx) error {
	return controllers.HandleListTournaments(c)
}

// GetTournament returns one tournament with its registrations.
func (s *APIServer) GetTournament(c *fiber.Ctx) error {
	return controllers.HandleGetTournament(c)
}

// GetLeagues lists leagues for API consumers.
func (s *APIServer) GetLeagues(c *fiber.Ctx) error {
	return controllers.HandleListLeagues(c)
}

// GetLeague returns one league with its registrations.
func (s *APIServer) GetLeague(c *fiber.Ctx) error {
	return controllers.HandleGetLeague(c)
}

// GetGames returns the active game catalog.
func (s *APIServer) GetGames(c *fiber.Ctx) error {
	return controllers.HandleListGames(c)
}

// GetTeam returns a team with its member list.
func (s *APIServer) GetTeam(c *fiber.Ctx) error {
	return controllers.HandleGetTeam(c)
}

// RegisterHandlers attaches the v1 handlers to the given route group.
func RegisterHandlers(router fiber.Router, s *APIServer) {
	router.Get("/ping", s.GetPing)
	router.Get("/tournaments", s.GetTournaments)
	router.Get("/tournaments/:id", s.GetTournament)
	router.Get("/leagues", s.GetLeagues)
	router.Get("/leagues/:id", s.GetLeague)
	router.Get("/games", s.GetGames)
	router.Get("/teams/:id", s.GetTeam)
}
