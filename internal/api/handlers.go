package api

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, options HandlerOptions) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	secret := strings.TrimSpace(options.SecretKey)
	if secret == "" {
		return nil, errors.New("secret key is required")
	}

	location := options.Location
	if location == nil {
		location = time.UTC
	}
	now := options.Now
	if now == nil {
		now = time.Now
	}

	handler := &Handler{
		secretKey:   []byte(secret),
		location:    location,
		logger:      options.Logger,
		now:         now,
		validate:    validator.New(),
		authLimiter: newAttemptLimiter(authFailureLimit, authFailureWindow),
	}
	return handler.withDependencies(database, options.Cache), nil
}
