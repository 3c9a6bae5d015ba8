package services

import (
	"fmt"
	"time"
)

const exerciseDayLayout = "2006-01-02"

// ExerciseDay is a calendar date without time of day or zone. Two timestamps
// logged on the same local day map to the same ExerciseDay.
type ExerciseDay struct {
	Year  int
	Month time.Month
	Day   int
}

// NewExerciseDay normalizes out-of-range values the way time.Date does,
// so NewExerciseDay(2026, time.March, 0) is the last day of February.
func NewExerciseDay(year int, month time.Month, day int) ExerciseDay {
	normalized := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return ExerciseDay{Year: normalized.Year(), Month: normalized.Month(), Day: normalized.Day()}
}

func ExerciseDayOf(value time.Time, location *time.Location) ExerciseDay {
	local := DateAtLocation(value, location)
	return ExerciseDay{Year: local.Year(), Month: local.Month(), Day: local.Day()}
}

func ParseExerciseDay(raw string) (ExerciseDay, error) {
	parsed, err := time.Parse(exerciseDayLayout, raw)
	if err != nil {
		return ExerciseDay{}, fmt.Errorf("parse exercise day %q: %w", raw, err)
	}
	return ExerciseDay{Year: parsed.Year(), Month: parsed.Month(), Day: parsed.Day()}, nil
}

func (day ExerciseDay) AddDays(days int) ExerciseDay {
	return NewExerciseDay(day.Year, day.Month, day.Day+days)
}

func (day ExerciseDay) Equal(other ExerciseDay) bool {
	return day == other
}

func (day ExerciseDay) Before(other ExerciseDay) bool {
	return day.Time().Before(other.Time())
}

// IsDayBefore reports whether day is exactly one calendar day before next.
func (day ExerciseDay) IsDayBefore(next ExerciseDay) bool {
	return day.AddDays(1) == next
}

// Time returns midnight UTC of the day.
func (day ExerciseDay) Time() time.Time {
	return time.Date(day.Year, day.Month, day.Day, 0, 0, 0, 0, time.UTC)
}

func (day ExerciseDay) String() string {
	return day.Time().Format(exerciseDayLayout)
}
