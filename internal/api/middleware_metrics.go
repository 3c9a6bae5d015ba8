package api

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/daystreak/internal/metrics"
)

func Metrics(c *fiber.Ctx) error {
	started := time.Now()
	chainErr := c.Next()

	route := routeLabel(c)
	method := c.Method()
	status := strconv.Itoa(responseStatus(c, chainErr))

	metrics.RequestsTotal.WithLabelValues(method, route, status).Inc()
	metrics.RequestDurationSeconds.WithLabelValues(method, route).Observe(time.Since(started).Seconds())
	return chainErr
}

// routeLabel keeps label cardinality bounded by using the route pattern.
func routeLabel(c *fiber.Ctx) string {
	if label, ok := c.Locals(contextRouteKey).(string); ok && label != "" {
		return label
	}
	return c.Route().Path
}
