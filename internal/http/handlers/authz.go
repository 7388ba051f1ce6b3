package handlers

import (
	"errors"

	"packcatalog/internal/domain"
	applog "packcatalog/internal/log"
	"packcatalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

const sessionCookie = "sid"

// LoadUser attaches the session user to the request when the sid cookie
// resolves. Anonymous requests pass through untouched.
func LoadUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(sessionCookie)
		if sid == "" {
			return c.Next()
		}
		u, err := auth.CurrentUser(c.UserContext(), sid)
		switch {
		case errors.Is(err, domain.ErrUnauthenticated):
		case err != nil:
			return err
		default:
			c.Locals("user", u)
		}
		return c.Next()
	}
}

// RequireUser rejects requests without a session user with a bare 401.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if currentUser(c) == nil {
			applog.Security(c, "access.denied", nil)
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.Next()
	}
}

func currentUser(c *fiber.Ctx) *domain.User {
	u, _ := c.Locals("user").(*domain.User)
	return u
}
