package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

const (
	contextProfileIDKey = "current_profile_id"
	contextRequestIDKey = "requestid"
	contextRouteKey     = "metrics_route"
	unmatchedRouteLabel = "unmatched"
)

func currentProfileID(c *fiber.Ctx) (string, bool) {
	profileID, ok := c.Locals(contextProfileIDKey).(string)
	return profileID, ok && profileID != ""
}

func requestID(c *fiber.Ctx) string {
	value, _ := c.Locals(contextRequestIDKey).(string)
	return value
}

// requestLogger returns the handler logger enriched with request correlation fields.
func (handler *Handler) requestLogger(c *fiber.Ctx) *zerolog.Logger {
	builder := handler.logger.With()
	if id := requestID(c); id != "" {
		builder = builder.Str("request_id", id)
	}
	if profileID, ok := currentProfileID(c); ok {
		builder = builder.Str("user_id", profileID)
	}
	logger := builder.Logger()
	return &logger
}
