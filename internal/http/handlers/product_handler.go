package handlers

import (
	"errors"

	"packcatalog/internal/domain"
	"packcatalog/internal/log"
	"packcatalog/internal/services"
	"packcatalog/internal/validate"

	"github.com/gofiber/fiber/v2"
)

var errProductNotFound = fiber.NewError(fiber.StatusNotFound, "Product not found")

type ProductHandler struct {
	Catalog *services.CatalogService
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.Catalog.ListProducts(c.UserContext(), c.Query("category"), c.Query("search"))
	if err != nil {
		return err
	}
	return c.JSON(products)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return errProductNotFound
	}
	p, err := h.Catalog.GetProduct(c.UserContext(), id)
	if errors.Is(err, domain.ErrNotFound) {
		return errProductNotFound
	}
	if err != nil {
		return err
	}
	return c.JSON(p)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	in, err := validate.Product(c.Body())
	if err != nil {
		log.Security(c, "validation.fail", map[string]any{"entity": "product"})
		return err
	}
	p, err := h.Catalog.CreateProduct(c.UserContext(), in)
	if err != nil {
		return err
	}
	log.Audit(c, "products.create", map[string]any{"product_id": p.ID})
	return c.Status(fiber.StatusCreated).JSON(p)
}

// Update applies a partial update. PUT takes the same partial payload.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return errProductNotFound
	}
	patch, err := validate.ProductPatch(c.Body())
	if err != nil {
		log.Security(c, "validation.fail", map[string]any{"entity": "product"})
		return err
	}
	p, err := h.Catalog.UpdateProduct(c.UserContext(), id, patch)
	if errors.Is(err, domain.ErrNotFound) {
		return errProductNotFound
	}
	if err != nil {
		return err
	}
	log.Audit(c, "products.update", map[string]any{"product_id": p.ID})
	return c.JSON(p)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.SendStatus(fiber.StatusNoContent)
	}
	if err := h.Catalog.DeleteProduct(c.UserContext(), id); err != nil {
		return err
	}
	log.Audit(c, "products.delete", map[string]any{"product_id": id})
	return c.SendStatus(fiber.StatusNoContent)
}
