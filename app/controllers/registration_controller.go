package controllers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/MilitiaGamingLeague/platform/app/models"
	"github.com/MilitiaGamingLeague/platform/app/repository"
	"github.com/MilitiaGamingLeague/platform/internal/pkg/roster"
	"github.com/MilitiaGamingLeague/platform/internal/pkg/usercontext"
)

type registerTeamRequest struct {
	TeamID    uint   `json:"team_id"`
	PlayerIDs []uint `json:"player_ids"`
}

// buildRoster validates the picked players against the team and
// returns the final selection, captain first.
func buildRoster(teamID, captainID uint, picked []uint) ([]uint, error) {
	repos := repository.GetGlobalRepositories()

	selection := roster.NewSelection(captainID)
	for _, playerID := range picked {
		if playerID == captainID {
			continue
		}
		if _, err := repos.Team.GetMember(teamID, playerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errors.New("all picked players must be team members")
			}
			return nil, err
		}
		if !selection.Add(playerID) {
			return nil, errors.New("duplicate player pick or roster overflow")
		}
	}
	if !selection.Complete() {
		return nil, fmt.Errorf("roster must contain exactly %d players including the captain", roster.Size)
	}
	return selection.PlayerIDs(), nil
}

// HandleRegisterForTournament submits a team's roster for a tournament.
// The registration starts pending and unpaid; payment settles it.
func HandleRegisterForTournament(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	tournamentID, err := paramID(c, "id")
	if err != nil {
		return errBadRequest(c, "invalid id")
	}

	var req registerTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return errBadRequest(c, "invalid request body")
	}

	repos := repository.GetGlobalRepositories()
	tournament, err := repos.Tournament.GetByID(tournamentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound(c, "Tournament not found")
		}
		return errInternal(c, "Failed to load tournament")
	}
	if !tournament.IsOpenForRegistration() {
		return errConflict(c, "Tournament is not open for registration")
	}

	team, err := repos.Team.GetByID(req.TeamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound(c, "Team not found")
		}
		return errInternal(c, "Failed to load team")
	}
	if team.CaptainID != userCtx.UserID {
		return errForbidden(c, "Only the captain may register the team")
	}

	if _, err := repos.Registration.GetTournamentRegistrationByEvent(tournamentID, req.TeamID); err == nil {
		return errConflict(c, "Team is already registered for this tournament")
	}

	playerIDs, err := buildRoster(req.TeamID, team.CaptainID, req.PlayerIDs)
	if err != nil {
		return errBadRequest(c, err.Error())
	}

	registration := &models.TournamentRegistration{
		TournamentID:  tournamentID,
		TeamID:        req.TeamID,
		Status:        models.REGISTRATION_PENDING,
		PaymentStatus: models.PAYMENT_STATUS_UNPAID,
	}
	if err := repos.Registration.CreateTournamentRegistration(registration); err != nil {
		return errInternal(c, "Failed to create registration")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"registration": registration,
		"player_ids":   playerIDs,
		"fee_cents":    tournament.FeeCents(),
	})
}

// HandleRegisterForLeague submits a team's roster for a league season.
func HandleRegisterForLeague(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	leagueID, err := paramID(c, "id")
	if err != nil {
		return errBadRequest(c, "invalid id")
	}

	var req registerTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return errBadRequest(c, "invalid request body")
	}

	repos := repository.GetGlobalRepositories()
	league, err := repos.League.GetByID(leagueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound(c, "League not found")
		}
		return errInternal(c, "Failed to load league")
	}
	if !league.IsOpenForRegistration() {
		return errConflict(c, "League is not open for registration")
	}

	team, err := repos.Team.GetByID(req.TeamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound(c, "Team not found")
		}
		return errInternal(c, "Failed to load team")
	}
	if team.CaptainID != userCtx.UserID {
		return errForbidden(c, "Only the captain may register the team")
	}

	if _, err := repos.Registration.GetLeagueRegistrationByEvent(leagueID, req.TeamID); err == nil {
		return errConflict(c, "Team is already registered for this league")
	}

	playerIDs, err := buildRoster(req.TeamID, team.CaptainID, req.PlayerIDs)
	if err != nil {
		return errBadRequest(c, err.Error())
	}

	registration := &models.LeagueRegistration{
		LeagueID:      leagueID,
		TeamID:        req.TeamID,
		Status:        models.REGISTRATION_PENDING,
		PaymentStatus: models.PAYMENT_STATUS_UNPAID,
	}
	if err := repos.Registration.CreateLeagueRegistration(registration); err != nil {
		return errInternal(c, "Failed to create registration")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"registration": registration,
		"player_ids":   playerIDs,
		"fee_cents":    league.FeeCents(),
	})
}

// HandleGetTournamentRoster returns the paid roster of a registration.
func HandleGetTournamentRoster(c *fiber.Ctx) error {
	registrationID, err := paramID(c, "id")
	if err != nil {
		return errBadRequest(c, "invalid id")
	}

	repos := repository.GetGlobalRepositories()
	registration, err := repos.Registration.GetTournamentRegistration(registrationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound(c, "Registration not found")
		}
		return errInternal(c, "Failed to load registration")
	}

	rows, err := repos.Registration.GetTournamentRoster(registrationID)
	if err != nil {
		return errInternal(c, "Failed to load roster")
	}

	return c.JSON(fiber.Map{"registration": registration, "roster": rows})
}

// HandleGetLeagueRoster returns the paid roster of a registration.
func HandleGetLeagueRoster(c *fiber.Ctx) error {
	registrationID, err := paramID(c, "id")
	if err != nil {
		return errBadRequest(c, "invalid id")
	}

	repos := repository.GetGlobalRepositories()
	registration, err := repos.Registration.GetLeagueRegistration(registrationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound(c, "Registration not found")
		}
		return errInternal(c, "Failed to load registration")
	}

	rows, err := repos.Registration.GetLeagueRoster(registrationID)
	if err != nil {
		return errInternal(c, "Failed to load roster")
	}

	return c.JSON(fiber.Map{"registration": registration, "roster": rows})
}

// HandleMyRegistrations lists registrations for teams the caller captains.
func HandleMyRegistrations(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	repos := repository.GetGlobalRepositories()
	captained, err := repos.Team.GetByCaptainID(userCtx.UserID)
	if err != nil {
		return errInternal(c, "Failed to load teams")
	}

	tournamentRegs := make([]models.TournamentRegistration, 0)
	leagueRegs := make([]models.LeagueRegistration, 0)
	for _, team := range captained {
		tr, err := repos.Registration.ListTournamentRegistrationsForTeam(team.ID)
		if err != nil {
			return errInternal(c, "Failed to load registrations")
		}
		tournamentRegs = append(tournamentRegs, tr...)

		lr, err := repos.Registration.ListLeagueRegistrationsForTeam(team.ID)
		if err != nil {
			return errInternal(c, "Failed to load registrations")
		}
		leagueRegs = append(leagueRegs, lr...)
	}

	return c.JSON(fiber.Map{
		"tournament_registrations": tournamentRegs,
		"league_registrations":     leagueRegs,
	})
}
