package handlers

import (
	"errors"

	"packcatalog/internal/domain"
	"packcatalog/internal/log"
	"packcatalog/internal/services"
	"packcatalog/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type errorBody struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// ErrorHandler turns handler errors into JSON responses. Internal details
// are logged, never sent.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var ve *validate.Error
	var fe *fiber.Error
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(errorBody{Message: ve.Message, Field: ve.Field})
	case errors.Is(err, services.ErrUnknownProduct):
		return c.Status(fiber.StatusBadRequest).JSON(errorBody{Message: err.Error(), Field: "productId"})
	case errors.Is(err, domain.ErrUnauthenticated):
		return c.SendStatus(fiber.StatusUnauthorized)
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(errorBody{Message: "Not found"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(errorBody{Message: "Conflicts with existing data"})
	case errors.As(err, &fe):
		if fe.Code == fiber.StatusNotFound && !isAPI(c) {
			return NotFound(c)
		}
		if fe.Code < fiber.StatusInternalServerError {
			return c.Status(fe.Code).JSON(errorBody{Message: fe.Message})
		}
	}

	log.Error(c, "server.error", err, nil)
	return c.Status(fiber.StatusInternalServerError).JSON(errorBody{Message: "Internal Server Error"})
}
