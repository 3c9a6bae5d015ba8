package api

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/daystreak/internal/services"
)

var (
	errInvalidPayload   = errors.New("invalid payload")
	errInvalidTimestamp = errors.New("invalid timestamp")
)

func (handler *Handler) parseProfileInput(c *fiber.Ctx, callerID string) (services.ProfileInput, error) {
	payload := profilePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return services.ProfileInput{}, errInvalidPayload
	}
	payload.ID = strings.TrimSpace(payload.ID)

	if err := handler.validate.Struct(payload); err != nil {
		return services.ProfileInput{}, profilePayloadError(err)
	}

	input := services.ProfileInput{ID: payload.ID, Name: payload.Name}
	if input.ID == "" {
		input.ID = callerID
	}
	return input, nil
}

func profilePayloadError(err error) error {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return errInvalidPayload
	}

	switch fieldErrors[0].Field() {
	case "ID":
		return services.ErrInvalidProfileID
	case "Name":
		return services.ErrProfileNameMissing
	default:
		return errInvalidPayload
	}
}

func (handler *Handler) parseExerciseLogInput(c *fiber.Ctx) (services.ExerciseLogInput, error) {
	payload := exerciseLogPayload{}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&payload); err != nil {
			return services.ExerciseLogInput{}, errInvalidPayload
		}
	}
	payload.UserID = strings.TrimSpace(payload.UserID)

	if err := handler.validate.Struct(payload); err != nil {
		return services.ExerciseLogInput{}, services.ErrInvalidProfileID
	}

	input := services.ExerciseLogInput{UserID: payload.UserID}
	rawTimestamp := strings.TrimSpace(payload.Timestamp)
	if rawTimestamp != "" {
		timestamp, err := time.Parse(time.RFC3339, rawTimestamp)
		if err != nil {
			return services.ExerciseLogInput{}, errInvalidTimestamp
		}
		input.Timestamp = &timestamp
	}
	return input, nil
}
