package services

import (
	"testing"
	"time"
)

func TestExerciseDayAddDaysCrossesBoundaries(t *testing.T) {
	tests := []struct {
		name string
		day  ExerciseDay
		add  int
		want string
	}{
		{name: "month end", day: NewExerciseDay(2026, time.January, 31), add: 1, want: "2026-02-01"},
		{name: "leap day", day: NewExerciseDay(2028, time.February, 28), add: 1, want: "2028-02-29"},
		{name: "non leap year", day: NewExerciseDay(2026, time.February, 28), add: 1, want: "2026-03-01"},
		{name: "year end", day: NewExerciseDay(2026, time.December, 31), add: 1, want: "2027-01-01"},
		{name: "backwards into previous year", day: NewExerciseDay(2026, time.January, 1), add: -1, want: "2025-12-31"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if got := testCase.day.AddDays(testCase.add).String(); got != testCase.want {
				t.Fatalf("AddDays(%d) = %s, want %s", testCase.add, got, testCase.want)
			}
		})
	}
}

func TestExerciseDayOfIgnoresTimeOfDay(t *testing.T) {
	morning := ExerciseDayOf(time.Date(2026, 5, 4, 0, 0, 1, 0, time.UTC), time.UTC)
	night := ExerciseDayOf(time.Date(2026, 5, 4, 23, 59, 59, 0, time.UTC), time.UTC)
	if !morning.Equal(night) {
		t.Fatalf("expected %s and %s to be the same day", morning, night)
	}
}

func TestExerciseDayOfUsesLocation(t *testing.T) {
	location, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	day := ExerciseDayOf(time.Date(2026, 5, 4, 2, 0, 0, 0, time.UTC), location)
	if day.String() != "2026-05-03" {
		t.Fatalf("expected local day 2026-05-03, got %s", day)
	}
}

func TestExerciseDayIsDayBefore(t *testing.T) {
	day := NewExerciseDay(2026, time.March, 31)
	if !day.IsDayBefore(NewExerciseDay(2026, time.April, 1)) {
		t.Fatal("expected Mar 31 to be the day before Apr 1")
	}
	if day.IsDayBefore(day) {
		t.Fatal("expected a day not to be the day before itself")
	}
	if day.IsDayBefore(NewExerciseDay(2026, time.April, 2)) {
		t.Fatal("expected a two-day gap not to count")
	}
	if !day.Before(NewExerciseDay(2026, time.April, 2)) || day.Before(day) {
		t.Fatal("unexpected Before ordering")
	}
}

func TestParseExerciseDay(t *testing.T) {
	day, err := ParseExerciseDay("2026-02-28")
	if err != nil {
		t.Fatalf("ParseExerciseDay() unexpected error: %v", err)
	}
	if day != NewExerciseDay(2026, time.February, 28) {
		t.Fatalf("unexpected day %#v", day)
	}

	if _, err := ParseExerciseDay("2026-02-30"); err == nil {
		t.Fatal("expected error for invalid calendar date")
	}
	if _, err := ParseExerciseDay("28.02.2026"); err == nil {
		t.Fatal("expected error for wrong layout")
	}
}
