package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// AccessLog writes one structured line per request, leveled by status.
func (handler *Handler) AccessLog(c *fiber.Ctx) error {
	started := time.Now()
	chainErr := c.Next()

	status := responseStatus(c, chainErr)
	logger := handler.requestLogger(c)

	var event *zerolog.Event
	switch {
	case status >= fiber.StatusInternalServerError:
		event = logger.Error().Err(chainErr)
	case status >= fiber.StatusBadRequest:
		event = logger.Warn()
	default:
		event = logger.Info()
	}

	event.
		Dur("latency", time.Since(started)).
		Int("status", status).
		Str("method", c.Method()).
		Str("uri", c.OriginalURL()).
		Str("ip", c.IP()).
		Str("user_agent", c.Get(fiber.HeaderUserAgent)).
		Msg("API")

	return chainErr
}

// responseStatus reports the status the client will see, including errors
// that the app error handler has not rendered yet.
func responseStatus(c *fiber.Ctx, chainErr error) int {
	if chainErr == nil {
		return c.Response().StatusCode()
	}
	var fiberErr *fiber.Error
	if errors.As(chainErr, &fiberErr) {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}
