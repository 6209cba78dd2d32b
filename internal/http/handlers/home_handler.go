package handlers

import "github.com/gofiber/fiber/v2"

type HomeHandler struct{}

// GET /
func (h *HomeHandler) Welcome(c *fiber.Ctx) error {
	return c.Render("welcome", fiber.Map{})
}

// GET /healthz
func (h *HomeHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true})
}
