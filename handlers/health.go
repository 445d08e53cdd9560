package handlers

import "github.com/gofiber/fiber/v2"

// HandleHealthCheck godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /health [get]
func HandleHealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true})
}
