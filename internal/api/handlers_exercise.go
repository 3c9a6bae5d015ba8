package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/daystreak/internal/metrics"
)

func (handler *Handler) CreateExerciseLog(c *fiber.Ctx) error {
	callerID, ok := currentProfileID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input, err := handler.parseExerciseLogInput(c)
	if err != nil {
		return handler.respondError(c, err)
	}

	entry, err := handler.exercises.CreateExerciseLog(c.UserContext(), callerID, input, handler.now())
	if err != nil {
		return handler.respondError(c, err)
	}

	metrics.ExerciseLogsCreatedTotal.Inc()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"exercise_log": entry})
}

func (handler *Handler) CountExerciseLogs(c *fiber.Ctx) error {
	callerID, ok := currentProfileID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	count, err := handler.exercises.CountExerciseLogs(c.UserContext(), callerID)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(fiber.Map{"total_exercise_day_count": count})
}
