package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/daystreak/internal/models"
)

var (
	ErrExerciseUserMismatch  = errors.New("exercise log belongs to another user")
	ErrExerciseInFuture      = errors.New("exercise timestamp is in the future")
	ErrExerciseCreateFailed  = errors.New("create exercise log failed")
	ErrExerciseProfileLookup = errors.New("load exercise profile failed")
)

type ExerciseLogRepository interface {
	Create(ctx context.Context, entry *models.ExerciseLog) error
	CountByUser(ctx context.Context, userID string) (int64, error)
}

type ExerciseProfileChecker interface {
	ExistsByID(ctx context.Context, profileID string) (bool, error)
}

type ExerciseLogInput struct {
	UserID    string
	Timestamp *time.Time
}

type ExerciseService struct {
	logs     ExerciseLogRepository
	profiles ExerciseProfileChecker
	cache    ProfileSummaryCache
	location *time.Location
}

func NewExerciseService(logs ExerciseLogRepository, profiles ExerciseProfileChecker, cache ProfileSummaryCache, location *time.Location) *ExerciseService {
	if cache == nil {
		cache = NoopProfileSummaryCache{}
	}
	if location == nil {
		location = time.UTC
	}
	return &ExerciseService{
		logs:     logs,
		profiles: profiles,
		cache:    cache,
		location: location,
	}
}

// CreateExerciseLog stores one exercise event for the caller. A missing
// timestamp means now; timestamps later than the end of today are rejected.
func (service *ExerciseService) CreateExerciseLog(ctx context.Context, callerID string, input ExerciseLogInput, now time.Time) (models.ExerciseLog, error) {
	callerProfileID, err := NormalizeProfileID(callerID)
	if err != nil {
		return models.ExerciseLog{}, err
	}

	userID := callerProfileID
	if strings.TrimSpace(input.UserID) != "" {
		requestedID, err := NormalizeProfileID(input.UserID)
		if err != nil {
			return models.ExerciseLog{}, err
		}
		if requestedID != callerProfileID {
			return models.ExerciseLog{}, ErrExerciseUserMismatch
		}
	}

	timestamp := now
	if input.Timestamp != nil {
		timestamp = *input.Timestamp
	}
	tomorrow := ExerciseDayOf(now, service.location).AddDays(1)
	if !ExerciseDayOf(timestamp, service.location).Before(tomorrow) {
		return models.ExerciseLog{}, ErrExerciseInFuture
	}

	exists, err := service.profiles.ExistsByID(ctx, userID)
	if err != nil {
		return models.ExerciseLog{}, fmt.Errorf("%w: %v", ErrExerciseProfileLookup, err)
	}
	if !exists {
		return models.ExerciseLog{}, ErrProfileNotFound
	}

	entry := models.ExerciseLog{
		UserID:    userID,
		Timestamp: timestamp.UTC(),
	}
	if err := service.logs.Create(ctx, &entry); err != nil {
		return models.ExerciseLog{}, fmt.Errorf("%w: %v", ErrExerciseCreateFailed, err)
	}

	service.cache.Invalidate(ctx, userID)
	return entry, nil
}

// CountExerciseLogs returns the raw number of stored logs, duplicates included.
func (service *ExerciseService) CountExerciseLogs(ctx context.Context, userID string) (int64, error) {
	profileID, err := NormalizeProfileID(userID)
	if err != nil {
		return 0, err
	}
	return service.logs.CountByUser(ctx, profileID)
}
