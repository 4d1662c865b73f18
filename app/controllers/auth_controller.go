package controllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/MilitiaGamingLeague/platform/app/models"
	"github.com/MilitiaGamingLeague/platform/app/repository"
	"github.com/MilitiaGamingLeague/platform/internal/pkg/env"
	"github.com/MilitiaGamingLeague/platform/internal/pkg/mail"
	"github.com/MilitiaGamingLeague/platform/internal/pkg/session"
	"github.com/MilitiaGamingLeague/platform/internal/pkg/usercontext"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleAuthRegister creates a new inactive account plus its player
// profile and mails the activation link.
func HandleAuthRegister(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return errBadRequest(c, "invalid request body")
	}

	user, err := models.CreateUser(req.Username, req.Email, req.Password)
	if err != nil {
		return errBadRequest(c, fmt.Sprintf("invalid registration data: %s", err))
	}
	if err := user.GenerateActivationToken(); err != nil {
		return errInternal(c, "Failed to create account")
	}

	repos := repository.GetGlobalRepositories()
	if _, err := repos.User.GetByEmail(req.Email); err == nil {
		return errConflict(c, "An account with this email already exists")
	}
	if err := repos.User.Create(user); err != nil {
		// The pre-check above races with concurrent registrations; the
		// unique index on email is the authority.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errConflict(c, "An account with this email already exists")
		}
		return errInternal(c, "Failed to create account")
	}

	player := &models.Player{
		UserID:      user.ID,
		DisplayName: models.DefaultDisplayName(user.Email),
		Email:       user.Email,
	}
	if err := repos.Player.Create(player); err != nil {
		log.Errorf("user %d created without player profile: %v", user.ID, err)
	}

	go func(email, token string) {
		base := env.GetEnv("PUBLIC_DOMAIN", "http://localhost:"+env.GetEnv("APP_PORT", "4000"))
		link := fmt.Sprintf("%s/activate?token=%s", base, token)
		body := fmt.Sprintf("<p>Welcome to the league!</p><p><a href=%q>Activate your account</a></p>", link)
		if err := mail.SendMail(email, "Activate your account", body); err != nil {
			log.Errorf("activation mail to %s failed: %v", email, err)
		}
	}(user.Email, user.ActivationToken)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":     user.ID,
		"email":  user.Email,
		"status": user.Status,
	})
}

// HandleAuthActivate flips an account to active via its mailed token.
func HandleAuthActivate(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		return errBadRequest(c, "activation token is required")
	}

	repos := repository.GetGlobalRepositories()
	user, err := repos.User.GetByActivationToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound(c, "Unknown activation token")
		}
		return errInternal(c, "Failed to activate account")
	}

	user.Status = models.STATUS_ACTIVE
	user.ActivationToken = ""
	if err := repos.User.Update(user); err != nil {
		return errInternal(c, "Failed to activate account")
	}

	return c.JSON(fiber.Map{"status": user.Status})
}

// HandleAuthLogin verifies credentials and opens a session.
func HandleAuthLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return errBadRequest(c, "invalid request body")
	}

	// A single message for every failure mode keeps credential probing blind
	loginFailed := func() error {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "unauthorized",
			"message": "There is a problem with the login process",
		})
	}

	repos := repository.GetGlobalRepositories()
	user, err := repos.User.GetByEmail(req.Email)
	if err != nil {
		return loginFailed()
	}
	if !user.CheckPassword(req.Password) {
		return loginFailed()
	}
	if !user.IsActive() {
		return loginFailed()
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return errInternal(c, "session init failed")
	}
	sess.Set(AUTH_KEY, true)
	sess.Set(USER_ID, user.ID)
	sess.Set(USER_NAME, user.Name)
	sess.Set(USER_ROLE, string(user.Role))
	if err := sess.Save(); err != nil {
		return errInternal(c, "session save failed")
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := repos.User.Update(user); err != nil {
		log.Warnf("last login update for user %d failed: %v", user.ID, err)
	}

	return c.JSON(fiber.Map{
		"id":   user.ID,
		"name": user.Name,
		"role": user.Role,
	})
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// HandleAuthUpdatePassword changes the password of the logged-in user.
// The current password must be verified first.
func HandleAuthUpdatePassword(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	if !userCtx.IsLoggedIn {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "unauthorized",
			"message": "You must be logged in",
		})
	}

	var req updatePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return errBadRequest(c, "invalid request body")
	}
	if len(req.NewPassword) < 6 {
		return errBadRequest(c, "new password must be at least 6 characters")
	}

	repos := repository.GetGlobalRepositories()
	user, err := repos.User.GetByID(userCtx.UserID)
	if err != nil {
		return errInternal(c, "Failed to update password")
	}
	if !user.CheckPassword(req.CurrentPassword) {
		return errForbidden(c, "Current password is incorrect")
	}

	if err := user.SetPassword(req.NewPassword); err != nil {
		return errInternal(c, "Failed to update password")
	}
	if err := repos.User.Update(user); err != nil {
		return errInternal(c, "Failed to update password")
	}

	return c.JSON(fiber.Map{"message": "password updated"})
}

// HandleAuthLogout drops the caller's session.
func HandleAuthLogout(c *fiber.Ctx) error {
	if err := session.DestroySession(c); err != nil {
		return errInternal(c, "logout failed")
	}
	return c.JSON(fiber.Map{"message": "logged out"})
}
