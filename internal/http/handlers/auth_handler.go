package handlers

import (
	"errors"
	"time"

	"packcatalog/internal/log"
	"packcatalog/internal/metrics"
	"packcatalog/internal/services"
	"packcatalog/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth   *services.AuthService
	TTL    time.Duration
	Secure bool
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	username, password, err := validate.Login(c.Body())
	if err != nil {
		return err
	}

	sid, u, err := h.Auth.Login(c.UserContext(), username, password)
	if errors.Is(err, services.ErrBadCreds) {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		log.Security(c, "auth.login.fail", map[string]any{"username": username})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid username or password"})
	}
	if err != nil {
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    sid,
		Path:     "/",
		MaxAge:   int(h.TTL / time.Second),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   h.Secure,
	})
	log.Audit(c, "auth.login.success", map[string]any{"user_id": u.ID})
	return c.JSON(u)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := c.Cookies(sessionCookie)
	if err := h.Auth.Logout(c.UserContext(), sid); err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   h.Secure,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	if sid != "" {
		log.Audit(c, "auth.logout", nil)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Me returns the session user. Mounted behind RequireUser.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(currentUser(c))
}
