package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// AdminTokenMiddleware gates write routes behind the shared admin secret.
// The caller sends the token in X-Admin-Token; comparison is exact match.
// It runs before any body parsing or persistence work, so a rejected
// request mutates nothing.
func AdminTokenMiddleware(expectedToken string) fiber.Handler {
	if expectedToken == "" {
		log.Fatal("❌ ADMIN_TOKEN is not set — write routes cannot be protected")
	}

	return func(c *fiber.Ctx) error {
		token := c.Get("X-Admin-Token")
		if token == "" {
			log.Printf("🚫 [ADMIN_AUTH] Missing X-Admin-Token for %s", c.Path())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "admin token missing",
			})
		}

		if token != expectedToken {
			log.Printf("❌ [ADMIN_AUTH] Invalid admin token for %s", c.Path())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid admin token",
			})
		}

		return c.Next()
	}
}
