package controllers

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/MilitiaGamingLeague/platform/app/models"
	"github.com/MilitiaGamingLeague/platform/app/repository"
	"github.com/MilitiaGamingLeague/platform/internal/pkg/objectstorage"
	"github.com/MilitiaGamingLeague/platform/internal/pkg/teams"
	"github.com/MilitiaGamingLeague/platform/internal/pkg/usercontext"
)

var teamService *teams.Service

// InitTeamService wires the team service into the handlers.
func InitTeamService(svc *teams.Service) {
	teamService = svc
}

type createTeamRequest struct {
	Name    string `json:"name"`
	Website string `json:"website"`
	Email   string `json:"email"`
}

type confirmRequest struct {
	Confirmation string `json:"confirmation"`
	NewCaptainID uint   `json:"new_captain_id,omitempty"`
}

type joinRequestBody struct {
	Message string `json:"message"`
}

// HandleCreateTeam creates a team with the caller as its captain.
func HandleCreateTeam(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	var req createTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return errBadRequest(c, "invalid request body")
	}

	repos := repository.GetGlobalRepositories()
	if _, err := repos.Team.GetByName(strings.TrimSpace(req.Name)); err == nil {
		return errConflict(c, "A team with this name already exists")
	}

	team := &models.Team{
		Name:      strings.TrimSpace(req.Name),
		Website:   strings.TrimSpace(req.Website),
		Email:     strings.TrimSpace(req.Email),
		CaptainID: userCtx.UserID,
	}
	if err := team.Validate(); err != nil {
		return errBadRequest(c, "invalid team data")
	}
	if err := repos.Team.Create(team); err != nil {
		return errInternal(c, "Failed to create team")
	}

	// The captain row is protected from removal; ownership transfer is
	// the only way it changes hands
	if err := repos.Team.AddMember(&models.TeamPlayer{
		TeamID:       team.ID,
		UserID:       userCtx.UserID,
		Role:         models.TEAM_ROLE_CAPTAIN,
		CanBeDeleted: false,
	}); err != nil {
		return errInternal(c, "Failed to add captain to team")
	}

	return c.Status(fiber.StatusCreated).JSON(team)
}

// HandleGetTeam returns a team with its member list.
func HandleGetTeam(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errBadRequest(c, "invalid id")
	}

	repos := repository.GetGlobalRepositories()
	team, err := repos.Team.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound(c, "Team not found")
		}
		return errInternal(c, "Failed to load team")
	}

	members, err := repos.Team.GetMembers(id)
	if err != nil {
		return errInternal(c, "Failed to load members")
	}

	return c.JSON(fiber.Map{"team": team, "members": members})
}

// HandleListTeams returns a paginated team list.
func HandleListTeams(c *fiber.Ctx) error {
	offset := queryInt(c, "offset", 0)
	limit := queryInt(c, "limit", 25)
	if limit > 100 {
		limit = 100
	}

	repos := repository.GetGlobalRepositories()
	teamList, err := repos.Team.List(offset, limit)
	if err != nil {
		return errInternal(c, "Failed to load teams")
	}
	total, err := repos.Team.Count()
	if err != nil {
		return errInternal(c, "Failed to load teams")
	}

	return c.JSON(fiber.Map{"teams": teamList, "total": total})
}

// HandleUpdateTeam lets the captain edit team details.
func HandleUpdateTeam(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	id, err := paramID(c, "id")
	if err != nil {
		return errBadRequest(c, "invalid id")
	}

	repos := repository.GetGlobalRepositories()
	team, err := repos.Team.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound(c, "Team not found")
		}
		return errInternal(c, "Failed to load team")
	}
	if team.CaptainID != userCtx.UserID {
		return errForbidden(c, "Only the captain may edit the team")
	}

	var req createTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return errBadRequest(c, "invalid request body")
	}
	if req.Name != "" {
		team.Name = strings.TrimSpace(req.Name)
	}
	team.Website = strings.TrimSpace(req.Website)
	team.Email = strings.TrimSpace(req.Email)

	if err := team.Validate(); err != nil {
		return errBadRequest(c, "invalid team data")
	}
	if err := repos.Team.Update(team); err != nil {
		return errInternal(c, "Failed to update team")
	}

	return c.JSON(team)
}

// HandleUploadTeamLogo stores a new team logo. Captain-only.
func HandleUploadTeamLogo(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	id, err := paramID(c, "id")
	if err != nil {
		return errBadRequest(c, "invalid id")
	}

	repos := repository.GetGlobalRepositories()
	team, err := repos.Team.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound(c, "Team not found")
		}
		return errInternal(c, "Failed to load team")
	}
	if team.CaptainID != userCtx.UserID {
		return errForbidden(c, "Only the captain may change the logo")
	}

	if storageClient == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error":   "storage_unavailable",
			"message": "Uploads are currently disabled",
		})
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		return errBadRequest(c, "logo file is required")
	}
	if fileHeader.Size > maxAvatarBytes {
		return errBadRequest(c, "logo exceeds the 5 MB limit")
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	contentType, ok := allowedImageExts[ext]
	if !ok {
		return errBadRequest(c, "unsupported image format")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errInternal(c, "Failed to read upload")
	}
	defer file.Close()

	cfg, err := objectstorage.LoadConfig()
	if err != nil {
		return errInternal(c, "Storage misconfigured")
	}
	result, err := storageClient.Upload(c.Context(), cfg.TeamLogoKey(team.ID, ext), file, fileHeader.Size, contentType)
	if err != nil {
		return errInternal(c, "Failed to store logo")
	}

	team.LogoURL = result.PublicURL
	if err := repos.Team.Update(team); err != nil {
		return errInternal(c, "Failed to update team")
	}

	return c.JSON(fiber.Map{"logo_url": result.PublicURL})
}

// HandleRequestToJoin files a join request for the caller.
func HandleRequestToJoin(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	id, err := paramID(c, "id")
	if err != nil {
		return errBadRequest(c, "invalid id")
	}

	var body joinRequestBody
	_ = c.BodyParser(&body)

	request, err := teamService.RequestToJoin(c.Context(), id, userCtx.UserID, body.Message)
	if err != nil {
		switch {
		case errors.Is(err, teams.ErrAlreadyMember), errors.Is(err, teams.ErrDuplicateRequest):
			return errConflict(c, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			return errNotFound(c, "Team not found")
		default:
			return errInternal(c, "Failed to file join request")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(request)
}

// HandleListJoinRequests returns a team's pending join requests. Captain-only.
func HandleListJoinRequests(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	id, err := paramID(c, "id")
	if err != nil {
		return errBadRequest(c, "invalid id")
	}

	repos := repository.GetGlobalRepositories()
	team, err := repos.Team.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound(c, "Team not found")
		}
		return errInternal(c, "Failed to load team")
	}
	if team.CaptainID != userCtx.UserID {
		return errForbidden(c, "Only the captain may review join requests")
	}

	requests, err := repos.Team.GetPendingJoinRequests(id)
	if err != nil {
		return errInternal(c, "Failed to load join requests")
	}
	return c.JSON(fiber.Map{"requests": requests})
}

// HandleApproveJoinRequest accepts a join request. Captain-only.
func HandleApproveJoinRequest(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	requestID, err := paramID(c, "requestID")
	if err != nil {
		return errBadRequest(c, "invalid request id")
	}

	if err := teamService.ApproveJoinRequest(c.Context(), requestID, userCtx.UserID); err != nil {
		switch {
		case errors.Is(err, teams.ErrNotCaptain):
			return errForbidden(c, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			return errNotFound(c, "Join request not found")
		default:
			return errBadRequest(c, err.Error())
		}
	}
	return c.JSON(fiber.Map{"status": models.JOIN_REQUEST_APPROVED})
}

// HandleRejectJoinRequest declines a join request. Captain-only.
func HandleRejectJoinRequest(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	requestID, err := paramID(c, "requestID")
	if err != nil {
		return errBadRequest(c, "invalid request id")
	}

	if err := teamService.RejectJoinRequest(c.Context(), requestID, userCtx.UserID); err != nil {
		switch {
		case errors.Is(err, teams.ErrNotCaptain):
			return errForbidden(c, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			return errNotFound(c, "Join request not found")
		default:
			return errBadRequest(c, err.Error())
		}
	}
	return c.JSON(fiber.Map{"status": models.JOIN_REQUEST_REJECTED})
}

// HandleRemoveMember drops a member from the team.
func HandleRemoveMember(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	id, err := paramID(c, "id")
	if err != nil {
		return errBadRequest(c, "invalid id")
	}
	memberID, err := paramID(c, "userID")
	if err != nil {
		return errBadRequest(c, "invalid user id")
	}

	if err := teamService.RemoveMember(c.Context(), id, userCtx.UserID, memberID); err != nil {
		switch {
		case errors.Is(err, teams.ErrNotCaptain):
			return errForbidden(c, err.Error())
		case errors.Is(err, teams.ErrCaptainRemoval), errors.Is(err, teams.ErrProtectedMember):
			return errConflict(c, err.Error())
		case errors.Is(err, teams.ErrNotMember), errors.Is(err, gorm.ErrRecordNotFound):
			return errNotFound(c, "Member not found")
		default:
			return errInternal(c, "Failed to remove member")
		}
	}
	return c.JSON(fiber.Map{"message": "member removed"})
}

// HandleTransferOwnership hands the team to another member. The caller
// must confirm with the exact phrase.
func HandleTransferOwnership(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	id, err := paramID(c, "id")
	if err != nil {
		return errBadRequest(c, "invalid id")
	}

	var req confirmRequest
	if err := c.BodyParser(&req); err != nil {
		return errBadRequest(c, "invalid request body")
	}

	if err := teamService.TransferOwnership(c.Context(), id, userCtx.UserID, req.NewCaptainID, req.Confirmation); err != nil {
		switch {
		case errors.Is(err, teams.ErrBadConfirmation):
			return errBadRequest(c, err.Error())
		case errors.Is(err, teams.ErrNotCaptain):
			return errForbidden(c, err.Error())
		case errors.Is(err, teams.ErrNotMember), errors.Is(err, teams.ErrSelfTransfer):
			return errConflict(c, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			return errNotFound(c, "Team not found")
		default:
			return errInternal(c, "Failed to transfer ownership")
		}
	}
	return c.JSON(fiber.Map{"message": "ownership transferred"})
}

// HandleDisbandTeam deletes the team after phrase confirmation.
func HandleDisbandTeam(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	id, err := paramID(c, "id")
	if err != nil {
		return errBadRequest(c, "invalid id")
	}

	var req confirmRequest
	if err := c.BodyParser(&req); err != nil {
		return errBadRequest(c, "invalid request body")
	}

	if err := teamService.Disband(c.Context(), id, userCtx.UserID, req.Confirmation); err != nil {
		switch {
		case errors.Is(err, teams.ErrBadConfirmation):
			return errBadRequest(c, err.Error())
		case errors.Is(err, teams.ErrNotCaptain):
			return errForbidden(c, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			return errNotFound(c, "Team not found")
		default:
			return errInternal(c, "Failed to disband team")
		}
	}
	return c.JSON(fiber.Map{"message": "team disbanded"})
}
