package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/MilitiaGamingLeague/platform/app/models"
	"github.com/MilitiaGamingLeague/platform/app/repository"
	"github.com/MilitiaGamingLeague/platform/internal/pkg/usercontext"
)

// HandleOwnerDashboard returns the owner view: staff counts and the
// completed payment revenue.
func HandleOwnerDashboard(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()

	adminCount, err := repos.User.CountByRole(models.RoleAdmin)
	if err != nil {
		return errInternal(c, "Failed to load stats")
	}
	ownerCount, err := repos.User.CountByRole(models.RoleOwner)
	if err != nil {
		return errInternal(c, "Failed to load stats")
	}
	userCount, err := repos.User.Count()
	if err != nil {
		return errInternal(c, "Failed to load stats")
	}
	revenueCents, err := repos.Payment.SumCompletedCents()
	if err != nil {
		return errInternal(c, "Failed to load stats")
	}

	return c.JSON(fiber.Map{
		"users":         userCount,
		"admins":        adminCount,
		"owners":        ownerCount,
		"revenue_cents": revenueCents,
	})
}

type promoteRequest struct {
	Role string `json:"role"`
}

// HandleOwnerAssignRole grants or revokes staff roles. Only owners
// reach this handler; CanAssign still guards the target role.
func HandleOwnerAssignRole(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	targetID, err := paramID(c, "id")
	if err != nil {
		return errBadRequest(c, "invalid id")
	}
	if targetID == userCtx.UserID {
		return errBadRequest(c, "You cannot change your own role")
	}

	var req promoteRequest
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

	user.Role = newRole
	if err := repos.User.Update(user); err != nil {
		return errInternal(c, "Failed to update user")
	}
	return c.JSON(fiber.Map{"id": user.ID, "role": user.Role})
}

// HandleOwnerListStaff lists all admin and owner accounts.
func HandleOwnerListStaff(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()

	users, err := repos.User.List(0, 1000)
	if err != nil {
		return errInternal(c, "Failed to load users")
	}

	staff := make([]models.User, 0)
	for _, u := range users {
		if u.Role.IsStaff() {
			staff = append(staff, u)
		}
	}
	return c.JSON(fiber.Map{"staff": staff})
}
