package usercontext

import (
	"github.com/MilitiaGamingLeague/platform/app/models"
	"github.com/gofiber/fiber/v2"
)

// UserContext represents the complete user context for a request
type UserContext struct {
	UserID     uint        `json:"user_id"`
	Username   string      `json:"username"`
	IsLoggedIn bool        `json:"is_logged_in"`
	Role       models.Role `json:"role"`
}

// IsStaff reports whether the user holds the admin or owner role
func (u UserContext) IsStaff() bool {
	return u.Role.IsStaff()
}

// IsOwner reports whether the user holds the owner role
func (u UserContext) IsOwner() bool {
	return u.Role.IsOwner()
}

// GetUserContext retrieves the user context from fiber context
// Returns a default anonymous context if none is set
func GetUserContext(c *fiber.Ctx) UserContext {
	if ctx := c.Locals("USER_CONTEXT"); ctx != nil {
		return ctx.(UserContext)
	}
	return UserContext{IsLoggedIn: false, Role: models.RoleUser}
}

// IsLoggedIn checks if the current user is logged in
func IsLoggedIn(c *fiber.Ctx) bool {
	return GetUserContext(c).IsLoggedIn
}

// IsStaff checks if the current user is an admin or the owner
func IsStaff(c *fiber.Ctx) bool {
	return GetUserContext(c).IsStaff()
}

// IsOwner checks if the current user is the owner
func IsOwner(c *fiber.Ctx) bool {
	return GetUserContext(c).IsOwner()
}

// GetUserID returns the current user's ID, or 0 if not logged in
func GetUserID(c *fiber.Ctx) uint {
	return GetUserContext(c).UserID
}

// GetUsername returns the current user's username, or empty string if not logged in
func GetUsername(c *fiber.Ctx) string {
	return GetUserContext(c).Username
}
