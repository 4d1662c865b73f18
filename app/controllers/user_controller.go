package controllers

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/MilitiaGamingLeague/platform/app/repository"
	"github.com/MilitiaGamingLeague/platform/internal/pkg/objectstorage"
	"github.com/MilitiaGamingLeague/platform/internal/pkg/usercontext"
)

// maxAvatarBytes caps avatar uploads at 5 MB.
const maxAvatarBytes = 5 * 1024 * 1024

var allowedImageExts = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
}

var storageClient *objectstorage.Client

// InitObjectStorage wires the shared storage client into the upload handlers.
func InitObjectStorage(client *objectstorage.Client) {
	storageClient = client
}

type profileUpdateRequest struct {
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
	GameHandle  string `json:"game_handle"`
}

// HandleGetProfile returns the caller's player profile.
func HandleGetProfile(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	repos := repository.GetGlobalRepositories()
	player, err := repos.Player.GetByUserID(userCtx.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound(c, "Player profile not found")
		}
		return errInternal(c, "Failed to load profile")
	}

	teams, err := repos.Team.GetTeamsForUser(userCtx.UserID)
	if err != nil {
		return errInternal(c, "Failed to load teams")
	}

	return c.JSON(fiber.Map{
		"player": player,
		"teams":  teams,
		"role":   userCtx.Role,
	})
}

// HandleUpdateProfile updates the caller's player profile.
func HandleUpdateProfile(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	var req profileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return errBadRequest(c, "invalid request body")
	}

	repos := repository.GetGlobalRepositories()
	player, err := repos.Player.GetByUserID(userCtx.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound(c, "Player profile not found")
		}
		return errInternal(c, "Failed to load profile")
	}

	if req.DisplayName != "" {
		player.DisplayName = strings.TrimSpace(req.DisplayName)
	}
	player.Bio = strings.TrimSpace(req.Bio)
	player.GameHandle = strings.TrimSpace(req.GameHandle)

	if err := player.Validate(); err != nil {
		return errBadRequest(c, "invalid profile data")
	}
	if err := repos.Player.Update(player); err != nil {
		return errInternal(c, "Failed to update profile")
	}

	return c.JSON(player)
}

// HandleUploadAvatar stores a new avatar image and updates the profile.
func HandleUploadAvatar(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	if storageClient == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error":   "storage_unavailable",
			"message": "Uploads are currently disabled",
		})
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return errBadRequest(c, "avatar file is required")
	}
	if fileHeader.Size > maxAvatarBytes {
		return errBadRequest(c, "avatar exceeds the 5 MB limit")
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
	key := cfg.AvatarKey(userCtx.UserID, ext)

	result, err := storageClient.Upload(c.Context(), key, file, fileHeader.Size, contentType)
	if err != nil {
		return errInternal(c, "Failed to store avatar")
	}

	repos := repository.GetGlobalRepositories()
	player, err := repos.Player.GetByUserID(userCtx.UserID)
	if err != nil {
		return errInternal(c, "Failed to load profile")
	}
	player.AvatarURL = result.PublicURL
	if err := repos.Player.Update(player); err != nil {
		return errInternal(c, "Failed to update profile")
	}

	return c.JSON(fiber.Map{"avatar_url": result.PublicURL})
}

// HandleGetPlayer returns a public player profile by ID.
func HandleGetPlayer(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return errBadRequest(c, "invalid id")
	}

	player, err := repository.GetGlobalRepositories().Player.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound(c, "Player not found")
		}
		return errInternal(c, "Failed to load player")
	}

	// Contact details stay private on the public endpoint
	return c.JSON(fiber.Map{
		"id":           player.ID,
		"display_name": player.DisplayName,
		"bio":          player.Bio,
		"avatar_url":   player.AvatarURL,
		"game_handle":  player.GameHandle,
	})
}

// HandleSearchPlayers searches players by display name or handle.
func HandleSearchPlayers(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		return errBadRequest(c, "query parameter q is required")
	}

	players, err := repository.GetGlobalRepositories().Player.Search(query)
	if err != nil {
		return errInternal(c, "Search failed")
	}

	out := make([]fiber.Map, 0, len(players))
	for _, p := range players {
		out = append(out, fiber.Map{
			"id":           p.ID,
			"display_name": p.DisplayName,
			"avatar_url":   p.AvatarURL,
			"game_handle":  p.GameHandle,
		})
	}
	return c.JSON(fiber.Map{"players": out})
}
