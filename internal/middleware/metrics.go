package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Govt-of-India/mla-portal/internal/metrics"
)

// Prometheus records the request counter and latency histogram for every
// request. The route pattern is used as the path label so parameterized
// routes don't explode cardinality.
func Prometheus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}
		method := c.Method()

		metrics.HTTPRequestsTotal.WithLabelValues(
			method,
			path,
			strconv.Itoa(c.Response().StatusCode()),
		).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(
			method,
			path,
		).Observe(time.Since(start).Seconds())

		return err
	}
}
