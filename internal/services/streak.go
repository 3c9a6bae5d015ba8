package services

import (
	"time"

	"github.com/terraincognita07/daystreak/internal/models"
)

type ExerciseRecord struct {
	UserID string
	Day    ExerciseDay
}

type StreakResult struct {
	TotalDayCount int
	CurrentStreak int
}

type streakState int

const (
	streakActive streakState = iota
	streakBroken
)

// ComputeStreak returns the number of logged exercise records and the length
// of the consecutive-day run that is still alive on today.
//
// records must be sorted oldest first. The scan starts at the most recent
// record and its state is decided once, up front: the streak is active only
// if that record falls on today or yesterday. An active streak grows by one
// for every record that sits exactly one day before the previously visited
// one and breaks for good on the first gap. Repeated records on the same day
// neither grow nor break the streak but still count towards the total. This
// departs from the earlier tracker, which treated a second log on the same
// day as a gap and ended the streak there.
//
// A single record always yields a streak of one.
func ComputeStreak(records []ExerciseRecord, today ExerciseDay) StreakResult {
	switch len(records) {
	case 0:
		return StreakResult{}
	case 1:
		return StreakResult{TotalDayCount: 1, CurrentStreak: 1}
	}

	state := streakBroken
	newest := records[len(records)-1].Day
	if newest == today || newest == today.AddDays(-1) {
		state = streakActive
	}

	result := StreakResult{}
	var lastDay ExerciseDay
	visited := false
	for index := len(records) - 1; index >= 0; index-- {
		day := records[index].Day
		result.TotalDayCount++

		if state == streakActive {
			switch {
			case !visited || day.IsDayBefore(lastDay):
				result.CurrentStreak++
			case day == lastDay:
			default:
				state = streakBroken
			}
		}

		lastDay = day
		visited = true
	}

	return result
}

func ExerciseRecordsFromLogs(logs []models.ExerciseLog, location *time.Location) []ExerciseRecord {
	records := make([]ExerciseRecord, 0, len(logs))
	for _, entry := range logs {
		records = append(records, ExerciseRecord{
			UserID: entry.UserID,
			Day:    ExerciseDayOf(entry.Timestamp, location),
		})
	}
	return records
}
