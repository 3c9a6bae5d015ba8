package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/terraincognita07/daystreak/internal/db"
	"github.com/terraincognita07/daystreak/internal/services"
	"gorm.io/gorm"
)

// RunStreakCommand prints a profile's exercise totals as of rawToday
// (YYYY-MM-DD in location) or as of now when rawToday is empty.
func RunStreakCommand(ctx context.Context, out io.Writer, database *gorm.DB, location *time.Location, profileID string, rawToday string, now time.Time) error {
	if location == nil {
		location = time.UTC
	}

	asOf := now
	if strings.TrimSpace(rawToday) != "" {
		day, err := services.ParseExerciseDay(strings.TrimSpace(rawToday))
		if err != nil {
			return fmt.Errorf("invalid --today value %q: %w", rawToday, err)
		}
		asOf = time.Date(day.Year, day.Month, day.Day, 12, 0, 0, 0, location)
	}

	repositories := db.NewRepositories(database)
	profiles := services.NewProfileService(repositories.Profiles, repositories.ExerciseLogs, nil, location)

	summary, err := profiles.GetUserProfile(ctx, profileID, asOf)
	if err != nil {
		return fmt.Errorf("load profile %s: %w", profileID, err)
	}

	_, err = fmt.Fprintf(out,
		"name: %s\ntoday: %s\ntotal_exercise_day_count: %d\ncurrent_exercise_day_streak: %d\n",
		summary.Name,
		services.ExerciseDayOf(asOf, location),
		summary.TotalExerciseDayCount,
		summary.CurrentExerciseDayStreak,
	)
	return err
}
