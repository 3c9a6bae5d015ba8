package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/daystreak/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// respondError maps service and input errors onto HTTP responses.
func (handler *Handler) respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errInvalidPayload):
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	case errors.Is(err, errInvalidTimestamp):
		return apiError(c, fiber.StatusBadRequest, "invalid timestamp")
	case errors.Is(err, services.ErrInvalidProfileID):
		return apiError(c, fiber.StatusBadRequest, "invalid profile id")
	case errors.Is(err, services.ErrProfileNameMissing):
		return apiError(c, fiber.StatusBadRequest, "name is required")
	case errors.Is(err, services.ErrProfileNameTooLong):
		return apiError(c, fiber.StatusBadRequest, "name is too long")
	case errors.Is(err, services.ErrExerciseInFuture):
		return apiError(c, fiber.StatusBadRequest, "timestamp is in the future")
	case errors.Is(err, services.ErrProfileForbidden), errors.Is(err, services.ErrExerciseUserMismatch):
		return apiError(c, fiber.StatusForbidden, "forbidden")
	case errors.Is(err, services.ErrProfileNotFound):
		return apiError(c, fiber.StatusNotFound, "user not found")
	case errors.Is(err, services.ErrProfileExists):
		return apiError(c, fiber.StatusConflict, "profile already exists")
	default:
		handler.requestLogger(c).Error().Err(err).Msg("request failed")
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
}

// errorHandler renders errors that escape handlers, such as body limit
// violations raised by fiber itself.
func errorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "internal error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status = fiberErr.Code
		message = fiberErr.Message
	}
	return apiError(c, status, message)
}
