package exts

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lumenpress/lumen/pkg/internal/models"
	"github.com/lumenpress/lumen/pkg/internal/security"
)

// CurrentUser pulls the authenticated account the middleware stored, if any.
func CurrentUser(c *fiber.Ctx) (*models.Account, bool) {
	user, ok := c.Locals("user").(models.Account)
	if !ok {
		return nil, false
	}
	return &user, true
}

func EnsureAuthenticated(c *fiber.Ctx) error {
	if _, ok := CurrentUser(c); !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
	}
	return nil
}

// PolicyError translates a policy decision into the matching status code, so
// "not signed in" and "signed in but not permitted" stay distinguishable.
func PolicyError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, security.ErrAuthenticationRequired):
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, security.ErrAuthorizationDenied):
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}
