package handlers

import (
	"packcatalog/internal/domain"
	"packcatalog/internal/log"
	"packcatalog/internal/services"
	"packcatalog/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type InquiryHandler struct {
	Inquiries *services.InquiryService
}

type inquiryCreated struct {
	*domain.Inquiry
	WhatsappURL string `json:"whatsappUrl,omitempty"`
}

// Create is public: anyone may submit an inquiry.
func (h *InquiryHandler) Create(c *fiber.Ctx) error {
	in, err := validate.Inquiry(c.Body())
	if err != nil {
		log.Security(c, "validation.fail", map[string]any{"entity": "inquiry"})
		return err
	}
	q, link, err := h.Inquiries.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	log.Info(c, "inquiries.create", map[string]any{"inquiry_id": q.ID, "product_id": q.ProductID})
	return c.Status(fiber.StatusCreated).JSON(inquiryCreated{Inquiry: q, WhatsappURL: link})
}

func (h *InquiryHandler) List(c *fiber.Ctx) error {
	qs, err := h.Inquiries.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(qs)
}
