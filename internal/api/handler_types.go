package api

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/terraincognita07/daystreak/internal/services"
)

const (
	authFailureLimit  = 10
	authFailureWindow = 15 * time.Minute
)

type Handler struct {
	profiles    *services.ProfileService
	exercises   *services.ExerciseService
	secretKey   []byte
	location    *time.Location
	logger      zerolog.Logger
	now         func() time.Time
	validate    *validator.Validate
	authLimiter *attemptLimiter
}

type HandlerOptions struct {
	SecretKey string
	Location  *time.Location
	Cache     services.ProfileSummaryCache
	Logger    zerolog.Logger
	// Now overrides the request clock; nil means time.Now.
	Now func() time.Time
}
