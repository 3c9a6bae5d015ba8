package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/daystreak/internal/metrics"
)

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	limiterKey := requestLimiterKey(c)
	now := handler.now()
	if handler.authLimiter.blocked(limiterKey, now) {
		return apiError(c, fiber.StatusTooManyRequests, "too many attempts")
	}

	profileID, err := handler.authenticateRequest(c)
	if err != nil {
		handler.authLimiter.addFailure(limiterKey, now)
		metrics.AuthFailuresTotal.Inc()
		handler.requestLogger(c).Debug().Err(err).Str("ip", limiterKey).Msg("rejected bearer token")
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.authLimiter.reset(limiterKey)
	c.Locals(contextProfileIDKey, profileID)
	return c.Next()
}
