package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/MilitiaGamingLeague/platform/app/repository"
)

// HandleListTournaments returns tournaments open for registration, or
// all of them when ?all=true.
func HandleListTournaments(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()

	if c.Query("all") == "true" {
		offset := queryInt(c, "offset", 0)
		limit := queryInt(c, "limit", 25)
		tournaments, err := repos.Tournament.List(offset, limit)
		if err != nil {
			return errInternal(c, "Failed to load tournaments")
		}
		return c.JSON(fiber.Map{"tournaments": tournaments})
	}

	tournaments, err := repos.Tournament.GetOpen()
	if err != nil {
		return errInternal(c, "Failed to load tournaments")
	}
	return c.JSON(fiber.Map{"tournaments": tournaments})
}

// HandleGetTournament returns one tournament with its registrations.
func HandleGetTournament(c *fiber.Ctx) error {
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

	registrations, err := repos.Registration.ListTournamentRegistrations(id)
	if err != nil {
		return errInternal(c, "Failed to load registrations")
	}

	return c.JSON(fiber.Map{"tournament": tournament, "registrations": registrations})
}

// HandleListLeagues returns leagues open for registration, or all of
// them when ?all=true.
func HandleListLeagues(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()

	if c.Query("all") == "true" {
		offset := queryInt(c, "offset", 0)
		limit := queryInt(c, "limit", 25)
		leagues, err := repos.League.List(offset, limit)
		if err != nil {
			return errInternal(c, "Failed to load leagues")
		}
		return c.JSON(fiber.Map{"leagues": leagues})
	}

	leagues, err := repos.League.GetOpen()
	if err != nil {
		return errInternal(c, "Failed to load leagues")
	}
	return c.JSON(fiber.Map{"leagues": leagues})
}

// HandleGetLeague returns one league with its registrations.
func HandleGetLeague(c *fiber.Ctx) error {
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

	registrations, err := repos.Registration.ListLeagueRegistrations(id)
	if err != nil {
		return errInternal(c, "Failed to load registrations")
	}

	return c.JSON(fiber.Map{"league": league, "registrations": registrations})
}

// HandleListGames returns the active game catalog.
func HandleListGames(c *fiber.Ctx) error {
	games, err := repository.GetGlobalRepositories().Game.GetActive()
	if err != nil {
		return errInternal(c, "Failed to load games")
	}
	return c.JSON(fiber.Map{"games": games})
}

// HandleListSponsors returns the active sponsor list.
func HandleListSponsors(c *fiber.Ctx) error {
	sponsors, err := repository.GetGlobalRepositories().Sponsor.GetActive()
	if err != nil {
		return errInternal(c, "Failed to load sponsors")
	}
	return c.JSON(fiber.Map{"sponsors": sponsors})
}

// HandleGetContent returns a published content section by slug.
func HandleGetContent(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return errBadRequest(c, "slug is required")
	}

	content, err := repository.GetGlobalRepositories().Content.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound(c, "Content not found")
		}
		return errInternal(c, "Failed to load content")
	}
	if !content.IsActive {
		return errNotFound(c, "Content not found")
	}

	return c.JSON(content)
}
