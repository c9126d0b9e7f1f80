package handlers

import (
	"event-results-system/middleware"
	"event-results-system/services"

	"github.com/gofiber/fiber/v2"
)

// SetupResultRoutes wires the two result operations plus the admin-only
// snapshot export. Anything else on the results path gets an explicit 405
// naming the supported methods.
func SetupResultRoutes(app *fiber.App, resultService *services.ResultService, exportService *services.ExportService, adminToken string) {
	adminOnly := middleware.AdminTokenMiddleware(adminToken)

	// 🔓 Public read
	app.Get("/events/:id", resultService.GetEventResults)

	// 🔐 Admin-gated full replacement write
	app.Post("/events/:id", adminOnly, resultService.ReplaceEventResults)

	app.All("/events/:id", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAllow, "GET, POST")
		return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{
			"error":   "method not allowed",
			"allowed": []string{fiber.MethodGet, fiber.MethodPost},
		})
	})

	// 🔐 Snapshot export to object storage
	app.Post("/events/:id/export", adminOnly, exportService.ExportEvent)
}
