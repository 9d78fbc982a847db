package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/Govt-of-India/mla-portal/internal/logger"
)

// LoggerConfig defines the config for the request logging middleware.
type LoggerConfig struct {
	// Next skips the middleware when it returns true. Optional.
	Next func(c *fiber.Ctx) bool

	// Logger is the zerolog logger to write to. Defaults to the global one.
	Logger *zerolog.Logger
}

// NewLogger logs one structured line per request: method, path, status,
// client IP and latency, with the handler error attached when present.
func NewLogger(config ...LoggerConfig) fiber.Handler {
	var cfg LoggerConfig
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Get()
	}

	return func(c *fiber.Ctx) error {
		if cfg.Next != nil && cfg.Next(c) {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()

		event := cfg.Logger.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Str("ip", c.IP()).
			Dur("latency", time.Since(start))
		if err != nil {
			event = event.Err(err)
		}
		event.Msg("request")

		return err
	}
}

// RequestLogger is the default request logging middleware.
func RequestLogger() fiber.Handler {
	return NewLogger()
}
