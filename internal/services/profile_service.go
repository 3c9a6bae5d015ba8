package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/terraincognita07/daystreak/internal/models"
	"gorm.io/gorm"
)

const maxProfileNameLength = 64

var (
	ErrProfileNotFound    = errors.New("user not found")
	ErrProfileExists      = errors.New("profile already exists")
	ErrProfileForbidden   = errors.New("profile belongs to another user")
	ErrInvalidProfileID   = errors.New("invalid profile id")
	ErrProfileNameMissing = errors.New("profile name is required")
	ErrProfileNameTooLong = errors.New("profile name too long")
)

type ProfileRepository interface {
	FindByID(ctx context.Context, profileID string) (models.Profile, error)
	ExistsByID(ctx context.Context, profileID string) (bool, error)
	Create(ctx context.Context, profile *models.Profile) error
}

type ProfileExerciseReader interface {
	ListByUser(ctx context.Context, userID string) ([]models.ExerciseLog, error)
}

// ProfileSummaryCache is best effort: implementations report failures as
// misses and never block a lookup.
//
// Every Invalidate bumps the user's generation. Set only stores a summary
// when the generation it was computed under is still current, so a read that
// raced with a new exercise log cannot repopulate the cache with old totals.
type ProfileSummaryCache interface {
	Get(ctx context.Context, userID string, day ExerciseDay) (UserProfileSummary, bool)
	Generation(ctx context.Context, userID string) (int64, bool)
	Set(ctx context.Context, userID string, day ExerciseDay, generation int64, summary UserProfileSummary)
	Invalidate(ctx context.Context, userID string)
}

type UserProfileSummary struct {
	Name                     string `json:"name"`
	TotalExerciseDayCount    int    `json:"total_exercise_day_count"`
	CurrentExerciseDayStreak int    `json:"current_exercise_day_streak"`
}

type ProfileInput struct {
	ID   string
	Name string
}

type ProfileService struct {
	profiles ProfileRepository
	logs     ProfileExerciseReader
	cache    ProfileSummaryCache
	location *time.Location
}

func NewProfileService(profiles ProfileRepository, logs ProfileExerciseReader, cache ProfileSummaryCache, location *time.Location) *ProfileService {
	if cache == nil {
		cache = NoopProfileSummaryCache{}
	}
	if location == nil {
		location = time.UTC
	}
	return &ProfileService{
		profiles: profiles,
		logs:     logs,
		cache:    cache,
		location: location,
	}
}

func NormalizeProfileID(raw string) (string, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", ErrInvalidProfileID
	}
	return parsed.String(), nil
}

func NormalizeProfileInput(input ProfileInput) (ProfileInput, error) {
	profileID, err := NormalizeProfileID(input.ID)
	if err != nil {
		return ProfileInput{}, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return ProfileInput{}, ErrProfileNameMissing
	}
	if utf8.RuneCountInString(name) > maxProfileNameLength {
		return ProfileInput{}, ErrProfileNameTooLong
	}
	return ProfileInput{ID: profileID, Name: name}, nil
}

func (service *ProfileService) CreateProfile(ctx context.Context, callerID string, input ProfileInput) (models.Profile, error) {
	normalized, err := NormalizeProfileInput(input)
	if err != nil {
		return models.Profile{}, err
	}
	if !strings.EqualFold(strings.TrimSpace(callerID), normalized.ID) {
		return models.Profile{}, ErrProfileForbidden
	}

	exists, err := service.profiles.ExistsByID(ctx, normalized.ID)
	if err != nil {
		return models.Profile{}, fmt.Errorf("check profile: %w", err)
	}
	if exists {
		return models.Profile{}, ErrProfileExists
	}

	profile := models.Profile{ID: normalized.ID, Name: normalized.Name}
	if err := service.profiles.Create(ctx, &profile); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.Profile{}, ErrProfileExists
		}
		return models.Profile{}, fmt.Errorf("create profile: %w", err)
	}
	return profile, nil
}

// GetUserProfile loads the profile and derives its exercise totals as of now.
func (service *ProfileService) GetUserProfile(ctx context.Context, profileID string, now time.Time) (UserProfileSummary, error) {
	normalizedID, err := NormalizeProfileID(profileID)
	if err != nil {
		return UserProfileSummary{}, err
	}

	today := ExerciseDayOf(now, service.location)
	if cached, ok := service.cache.Get(ctx, normalizedID, today); ok {
		return cached, nil
	}
	generation, cacheable := service.cache.Generation(ctx, normalizedID)

	profile, err := service.profiles.FindByID(ctx, normalizedID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserProfileSummary{}, ErrProfileNotFound
		}
		return UserProfileSummary{}, fmt.Errorf("load profile: %w", err)
	}

	logs, err := service.logs.ListByUser(ctx, normalizedID)
	if err != nil {
		return UserProfileSummary{}, fmt.Errorf("load exercise logs: %w", err)
	}

	streak := ComputeStreak(ExerciseRecordsFromLogs(logs, service.location), today)
	summary := UserProfileSummary{
		Name:                     profile.Name,
		TotalExerciseDayCount:    streak.TotalDayCount,
		CurrentExerciseDayStreak: streak.CurrentStreak,
	}
	if cacheable {
		service.cache.Set(ctx, normalizedID, today, generation, summary)
	}
	return summary, nil
}

type NoopProfileSummaryCache struct{}

func (NoopProfileSummaryCache) Get(context.Context, string, ExerciseDay) (UserProfileSummary, bool) {
	return UserProfileSummary{}, false
}

func (NoopProfileSummaryCache) Generation(context.Context, string) (int64, bool) {
	return 0, false
}

func (NoopProfileSummaryCache) Set(context.Context, string, ExerciseDay, int64, UserProfileSummary) {}

func (NoopProfileSummaryCache) Invalidate(context.Context, string) {}
