package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/MilitiaGamingLeague/platform/app/models"
	"github.com/MilitiaGamingLeague/platform/app/repository"
	"github.com/MilitiaGamingLeague/platform/internal/pkg/usercontext"
)

// HandleAdminDashboard returns the aggregate counters for the admin area.
func HandleAdminDashboard(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()

	userCount, err := repos.User.Count()
	if err != nil {
		return errInternal(c, "Failed to load stats")
	}
	teamCount, err := repos.Team.Count()
	if err != nil {
		return errInternal(c, "Failed to load stats")
	}
	tournamentCount, err := repos.Tournament.Count()
	if err != nil {
		return errInternal(c, "Failed to load stats")
	}
	leagueCount, err := repos.League.Count()
	if err != nil {
		return errInternal(c, "Failed to load stats")
	}
	paymentCount, err := repos.Payment.Count()
	if err != nil {
		return errInternal(c, "Failed to load stats")
	}
	revenueCents, err := repos.Payment.SumCompletedCents()
	if err != nil {
		return errInternal(c, "Failed to load stats")
	}

	return c.JSON(fiber.Map{
		"users":         userCount,
		"teams":         teamCount,
		"tournaments":   tournamentCount,
		"leagues":       leagueCount,
		"payments":      paymentCount,
		"revenue_cents": revenueCents,
	})
}

// HandleAdminListUsers lists accounts, optionally filtered by ?q=.
func HandleAdminListUsers(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()

	if query := strings.TrimSpace(c.Query("q")); query != "" {
		users, err := repos.User.Search(query)
		if err != nil {
			return errInternal(c, "Search failed")
		}
		return c.JSON(fiber.Map{"users": users})
	}

	offset := queryInt(c, "offset", 0)
	limit := queryInt(c, "limit", 25)
	if limit > 100 {
		limit = 100
	}
	users, err := repos.User.List(offset, limit)
	if err != nil {
		return errInternal(c, "Failed to load users")
	}
	total, err := repos.User.Count()
	if err != nil {
		return errInternal(c, "Failed to load users")
	}
	return c.JSON(fiber.Map{"users": users, "total": total})
}

type roleChangeRequest struct {
	Role string `json:"role"`
}

// HandleAdminChangeRole assigns a new role to an account. Admins may
// only assign the user role; owners may assign any role.
func HandleAdminChangeRole(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	targetID, err := paramID(c, "id")
	if err != nil {
		return errBadRequest(c, "invalid id")
	}
	if targetID == userCtx.UserID {
		return errBadRequest(c, "You cannot change your own role")
	}

	var req roleChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return errBadRequest(c, "invalid request body")
	}
	newRole, err := models.ParseRole(req.Role)
	if err != nil {
		return errBadRequest(c, "unknown role")
	}
	if !userCtx.Role.CanAssign(newRole) {
		return errForbidden(c, "You are not allowed to assign this role")
	}

	repos := repository.GetGlobalRepositories()
	user, err := repos.User.GetByID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound(c, "User not found")
		}
		return errInternal(c, "Failed to load user")
	}

	// Admins cannot demote other staff either.
	if !userCtx.Role.CanAssign(user.Role) {
		return errForbidden(c, "You are not allowed to change this user's role")
	}

	user.Role = newRole
	if err := repos.User.Update(user); err != nil {
		return errInternal(c, "Failed to update user")
	}
	return c.JSON(fiber.Map{"id": user.ID, "role": user.Role})
}

type gameRequest struct {
	Title       string `json:"title"`
	Genre       string `json:"genre"`
	CoverURL    string `json:"cover_url"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
}

// HandleAdminCreateGame adds a game to the catalog.
func HandleAdminCreateGame(c *fiber.Ctx) error {
	var req gameRequest
	if err := c.BodyParser(&req); err != nil {
		return errBadRequest(c, "invalid request body")
	}

	game := &models.Game{
		Title:       strings.TrimSpace(req.Title),
		Genre:       strings.TrimSpace(req.Genre),
		CoverURL:    req.CoverURL,
		Description: req.Description,
		IsActive:    req.IsActive,
	}
	if err := game.Validate(); err != nil {
		return errBadRequest(c, "invalid game data")
	}
	if err := repository.GetGlobalRepositories().Game.Create(game); err != nil {
		return errInternal(c, "Failed to create game")
	}
	return c.Status(fiber.StatusCreated).JSON(game)
}

// HandleAdminUpdateGame updates a catalog entry.
func HandleAdminUpdateGame(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errBadRequest(c, "invalid id")
	}

	repos := repository.GetGlobalRepositories()
	game, err := repos.Game.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound(c, "Game not found")
		}
		return errInternal(c, "Failed to load game")
	}

	var req gameRequest
	if err := c.BodyParser(&req); err != nil {
		return errBadRequest(c, "invalid request body")
	}
	game.Title = strings.TrimSpace(req.Title)
	game.Genre = strings.TrimSpace(req.Genre)
	game.CoverURL = req.CoverURL
	game.Description = req.Description
	game.IsActive = req.IsActive
	if err := game.Validate(); err != nil {
		return errBadRequest(c, "invalid game data")
	}
	if err := repos.Game.Update(game); err != nil {
		return errInternal(c, "Failed to update game")
	}
	return c.JSON(game)
}

// HandleAdminDeleteGame removes a catalog entry.
func HandleAdminDeleteGame(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errBadRequest(c, "invalid id")
	}
	if err := repository.GetGlobalRepositories().Game.Delete(id); err != nil {
		return errInternal(c, "Failed to delete game")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type sponsorRequest struct {
	Name     string `json:"name"`
	LogoURL  string `json:"logo_url"`
	Website  string `json:"website"`
	Tier     string `json:"tier"`
	IsActive bool   `json:"is_active"`
}

// HandleAdminCreateSponsor adds a sponsor.
func HandleAdminCreateSponsor(c *fiber.Ctx) error {
	var req sponsorRequest
	if err := c.BodyParser(&req); err != nil {
		return errBadRequest(c, "invalid request body")
	}

	sponsor := &models.Sponsor{
		Name:     strings.TrimSpace(req.Name),
		LogoURL:  req.LogoURL,
		Website:  req.Website,
		Tier:     req.Tier,
		IsActive: req.IsActive,
	}
	if err := sponsor.Validate(); err != nil {
		return errBadRequest(c, "invalid sponsor data")
	}
	if err := repository.GetGlobalRepositories().Sponsor.Create(sponsor); err != nil {
		return errInternal(c, "Failed to create sponsor")
	}
	return c.Status(fiber.StatusCreated).JSON(sponsor)
}

// HandleAdminUpdateSponsor updates a sponsor.
func HandleAdminUpdateSponsor(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errBadRequest(c, "invalid id")
	}

	repos := repository.GetGlobalRepositories()
	sponsor, err := repos.Sponsor.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound(c, "Sponsor not found")
		}
		return errInternal(c, "Failed to load sponsor")
	}

	var req sponsorRequest
	if err := c.BodyParser(&req); err != nil {
		return errBadRequest(c, "invalid request body")
	}
	sponsor.Name = strings.TrimSpace(req.Name)
	sponsor.LogoURL = req.LogoURL
	sponsor.Website = req.Website
	sponsor.Tier = req.Tier
	sponsor.IsActive = req.IsActive
	if err := sponsor.Validate(); err != nil {
		return errBadRequest(c, "invalid sponsor data")
	}
	if err := repos.Sponsor.Update(sponsor); err != nil {
		return errInternal(c, "Failed to update sponsor")
	}
	return c.JSON(sponsor)
}

// HandleAdminDeleteSponsor removes a sponsor.
func HandleAdminDeleteSponsor(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errBadRequest(c, "invalid id")
	}
	if err := repository.GetGlobalRepositories().Sponsor.Delete(id); err != nil {
		return errInternal(c, "Failed to delete sponsor")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleAdminCreateTournament creates a tournament.
func HandleAdminCreateTournament(c *fiber.Ctx) error {
	tournament := new(models.Tournament)
	if err := c.BodyParser(tournament); err != nil {
		return errBadRequest(c, "invalid request body")
	}
	tournament.ID = 0
	if tournament.Status == "" {
		tournament.Status = models.TOURNAMENT_STATUS_DRAFT
	}
	if err := tournament.Validate(); err != nil {
		return errBadRequest(c, "invalid tournament data")
	}
	if err := repository.GetGlobalRepositories().Tournament.Create(tournament); err != nil {
		return errInternal(c, "Failed to create tournament")
	}
	return c.Status(fiber.StatusCreated).JSON(tournament)
}

// HandleAdminUpdateTournament updates a tournament, including its
// status and entry fee.
func HandleAdminUpdateTournament(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errBadRequest(c, "invalid id")
	}

	repos := repository.GetGlobalRepositories()
	tournament, err := repos.Tournament.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound(c, "Tournament not found")
		}
		return errInternal(c, "Failed to load tournament")
	}

	if err := c.BodyParser(tournament); err != nil {
		return errBadRequest(c, "invalid request body")
	}
	tournament.ID = id
	if err := tournament.Validate(); err != nil {
		return errBadRequest(c, "invalid tournament data")
	}
	if err := repos.Tournament.Update(tournament); err != nil {
		return errInternal(c, "Failed to update tournament")
	}
	return c.JSON(tournament)
}

// HandleAdminDeleteTournament removes a tournament.
func HandleAdminDeleteTournament(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errBadRequest(c, "invalid id")
	}
	if err := repository.GetGlobalRepositories().Tournament.Delete(id); err != nil {
		return errInternal(c, "Failed to delete tournament")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleAdminCreateLeague creates a league season.
func HandleAdminCreateLeague(c *fiber.Ctx) error {
	league := new(models.League)
	if err := c.BodyParser(league); err != nil {
		return errBadRequest(c, "invalid request body")
	}
	league.ID = 0
	if league.Status == "" {
		league.Status = models.LEAGUE_STATUS_DRAFT
	}
	if err := league.Validate(); err != nil {
		return errBadRequest(c, "invalid league data")
	}
	if err := repository.GetGlobalRepositories().League.Create(league); err != nil {
		return errInternal(c, "Failed to create league")
	}
	return c.Status(fiber.StatusCreated).JSON(league)
}

// HandleAdminUpdateLeague updates a league season.
func HandleAdminUpdateLeague(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errBadRequest(c, "invalid id")
	}

	repos := repository.GetGlobalRepositories()
	league, err := repos.League.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound(c, "League not found")
		}
		return errInternal(c, "Failed to load league")
	}

	if err := c.BodyParser(league); err != nil {
		return errBadRequest(c, "invalid request body")
	}
	league.ID = id
	if err := league.Validate(); err != nil {
		return errBadRequest(c, "invalid league data")
	}
	if err := repos.League.Update(league); err != nil {
		return errInternal(c, "Failed to update league")
	}
	return c.JSON(league)
}

// HandleAdminDeleteLeague removes a league season.
func HandleAdminDeleteLeague(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errBadRequest(c, "invalid id")
	}
	if err := repository.GetGlobalRepositories().League.Delete(id); err != nil {
		return errInternal(c, "Failed to delete league")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type contentRequest struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	IsActive bool   `json:"is_active"`
}

// HandleAdminListContent lists all content sections, active or not.
func HandleAdminListContent(c *fiber.Ctx) error {
	rows, err := repository.GetGlobalRepositories().Content.GetAll()
	if err != nil {
		return errInternal(c, "Failed to load content")
	}
	return c.JSON(fiber.Map{"content": rows})
}

// HandleAdminCreateContent creates a content section. Slugs are unique.
func HandleAdminCreateContent(c *fiber.Ctx) error {
	var req contentRequest
	if err := c.BodyParser(&req); err != nil {
		return errBadRequest(c, "invalid request body")
	}

	repos := repository.GetGlobalRepositories()
	slug := strings.TrimSpace(strings.ToLower(req.Slug))
	exists, err := repos.Content.SlugExists(slug)
	if err != nil {
		return errInternal(c, "Failed to check slug")
	}
	if exists {
		return errConflict(c, "A section with this slug already exists")
	}

	content := &models.SiteContent{
		Slug:     slug,
		Title:    strings.TrimSpace(req.Title),
		Body:     req.Body,
		IsActive: req.IsActive,
	}
	if err := content.Validate(); err != nil {
		return errBadRequest(c, "invalid content data")
	}
	if err := repos.Content.Create(content); err != nil {
		return errInternal(c, "Failed to create content")
	}
	return c.Status(fiber.StatusCreated).JSON(content)
}

// HandleAdminUpdateContent updates a content section.
func HandleAdminUpdateContent(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errBadRequest(c, "invalid id")
	}

	repos := repository.GetGlobalRepositories()
	content, err := repos.Content.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound(c, "Content not found")
		}
		return errInternal(c, "Failed to load content")
	}

	var req contentRequest
	if err := c.BodyParser(&req); err != nil {
		return errBadRequest(c, "invalid request body")
	}

	slug := strings.TrimSpace(strings.ToLower(req.Slug))
	exists, err := repos.Content.SlugExistsExceptID(slug, id)
	if err != nil {
		return errInternal(c, "Failed to check slug")
	}
	if exists {
		return errConflict(c, "A section with this slug already exists")
	}

	content.Slug = slug
	content.Title = strings.TrimSpace(req.Title)
	content.Body = req.Body
	content.IsActive = req.IsActive
	if err := content.Validate(); err != nil {
		return errBadRequest(c, "invalid content data")
	}
	if err := repos.Content.Update(content); err != nil {
		return errInternal(c, "Failed to update content")
	}
	return c.JSON(content)
}

// HandleAdminDeleteContent removes a content section.
func HandleAdminDeleteContent(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errBadRequest(c, "invalid id")
	}
	if err := repository.GetGlobalRepositories().Content.Delete(id); err != nil {
		return errInternal(c, "Failed to delete content")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleAdminListPayments lists payments, optionally by ?status=.
func HandleAdminListPayments(c *fiber.Ctx) error {
	offset := queryInt(c, "offset", 0)
	limit := queryInt(c, "limit", 25)
	if limit > 100 {
		limit = 100
	}

	repos := repository.GetGlobalRepositories()
	status := c.Query("status")
	var (
		rows []models.Payment
		err  error
	)
	if status != "" {
		rows, err = repos.Payment.ListByStatus(status, offset, limit)
	} else {
		rows, err = repos.Payment.List(offset, limit)
	}
	if err != nil {
		return errInternal(c, "Failed to load payments")
	}
	return c.JSON(fiber.Map{"payments": rows})
}

// HandleAdminListRegistrations lists a single event's registrations.
func HandleAdminListRegistrations(c *fiber.Ctx) error {
	eventType := models.EventType(c.Query("type"))
	if !eventType.Valid() {
		return errBadRequest(c, "type must be tournament or league")
	}
	eventID := uint(queryInt(c, "event_id", 0))
	if eventID == 0 {
		return errBadRequest(c, "event_id is required")
	}

	repos := repository.GetGlobalRepositories()
	if eventType == models.EventTournament {
		rows, err := repos.Registration.ListTournamentRegistrations(eventID)
		if err != nil {
			return errInternal(c, "Failed to load registrations")
		}
		return c.JSON(fiber.Map{"registrations": rows})
	}

	rows, err := repos.Registration.ListLeagueRegistrations(eventID)
	if err != nil {
		return errInternal(c, "Failed to load registrations")
	}
	return c.JSON(fiber.Map{"registrations": rows})
}
