package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"github.com/Govt-of-India/mla-portal/internal/logger"
)

// AdminOnly gates a route group behind the admin API key carried in the
// X-API-Key header. The check runs before any handler touches the content
// store. An empty configured key disables admin access entirely.
func AdminOnly(adminKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		apiKey := c.Get("X-API-Key")
		if apiKey == "" {
			logger.Get().Warn().
				Str("method", c.Method()).
				Str("path", c.Path()).
				Str("ip", c.IP()).
				Msg("Admin access attempt without API key")

			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		if adminKey == "" || subtle.ConstantTimeCompare([]byte(apiKey), []byte(adminKey)) != 1 {
			logger.Get().Warn().
				Str("method", c.Method()).
				Str("path", c.Path()).
				Str("ip", c.IP()).
				Msg("Unauthorized admin access attempt")

			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		return c.Next()
	}
}
