package handlers

import (
	"errors"

	"packcatalog/internal/domain"
	"packcatalog/internal/log"
	"packcatalog/internal/services"
	"packcatalog/internal/validate"

	"github.com/gofiber/fiber/v2"
)

var (
	errCategoryNotFound = fiber.NewError(fiber.StatusNotFound, "Category not found")
	errCategoryExists   = fiber.NewError(fiber.StatusConflict, "Category already exists")
)

type CategoryHandler struct {
	Catalog *services.CatalogService
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	cats, err := h.Catalog.ListCategories(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(cats)
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	in, err := validate.Category(c.Body())
	if err != nil {
		log.Security(c, "validation.fail", map[string]any{"entity": "category"})
		return err
	}
	cat, err := h.Catalog.CreateCategory(c.UserContext(), in)
	if errors.Is(err, domain.ErrConflict) {
		return errCategoryExists
	}
	if err != nil {
		return err
	}
	log.Audit(c, "categories.create", map[string]any{"category_id": cat.ID})
	return c.Status(fiber.StatusCreated).JSON(cat)
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return errCategoryNotFound
	}
	patch, err := validate.CategoryPatch(c.Body())
	if err != nil {
		log.Security(c, "validation.fail", map[string]any{"entity": "category"})
		return err
	}
	cat, err := h.Catalog.UpdateCategory(c.UserContext(), id, patch)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return errCategoryNotFound
	case errors.Is(err, domain.ErrConflict):
		return errCategoryExists
	case err != nil:
		return err
	}
	log.Audit(c, "categories.update", map[string]any{"category_id": cat.ID})
	return c.JSON(cat)
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.SendStatus(fiber.StatusNoContent)
	}
	if err := h.Catalog.DeleteCategory(c.UserContext(), id); err != nil {
		return err
	}
	log.Audit(c, "categories.delete", map[string]any{"category_id": id})
	return c.SendStatus(fiber.StatusNoContent)
}
