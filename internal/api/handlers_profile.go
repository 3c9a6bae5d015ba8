package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/daystreak/internal/metrics"
)

func (handler *Handler) CreateProfile(c *fiber.Ctx) error {
	callerID, ok := currentProfileID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input, err := handler.parseProfileInput(c, callerID)
	if err != nil {
		return handler.respondError(c, err)
	}

	profile, err := handler.profiles.CreateProfile(c.UserContext(), callerID, input)
	if err != nil {
		return handler.respondError(c, err)
	}

	metrics.ProfilesCreatedTotal.Inc()
	handler.requestLogger(c).Info().Str("profile_id", profile.ID).Msg("profile created")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"profile": profile})
}

// GetUserProfile returns the profile name with its exercise-day totals as of today.
func (handler *Handler) GetUserProfile(c *fiber.Ctx) error {
	summary, err := handler.profiles.GetUserProfile(c.UserContext(), c.Params("id"), handler.now())
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(fiber.Map{"user_profile": summary})
}
