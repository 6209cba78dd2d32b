package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "stockroom/internal/log"
	"stockroom/internal/services"
)

type CategoryHandler struct {
	Catalog *services.CatalogService
}

// GET /categories
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	cats, err := h.Catalog.ListCategories()
	if err != nil {
		return err
	}
	return c.JSON(cats)
}

// POST /categories
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in struct {
		Name *string `json:"name"`
	}
	if err := parseBody(c, &in); err != nil {
		return err
	}
	cat, err := h.Catalog.CreateCategory(in.Name)
	if err != nil {
		return err
	}
	applog.Audit(c, "category.create", map[string]any{"id": cat.ID})
	return envelope(c, fiber.StatusCreated, "category", cat, "Categoria criada")
}
