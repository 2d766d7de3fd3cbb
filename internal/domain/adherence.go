package domain

import (
	"math"
	"time"
)

// AdherenceWindowDays is the trailing window length for weekly adherence.
const AdherenceWindowDays = 7

// AdherenceSnapshot holds success percentages and missed-day counts for a
// trailing window of daily completion flags.
type AdherenceSnapshot struct {
	DietPercent       int `json:"dietPercent"`
	WorkoutPercent    int `json:"workoutPercent"`
	MissedDietDays    int `json:"missedDietDays"`
	MissedWorkoutDays int `json:"missedWorkoutDays"`
}

// WindowStats scans daily completion flags over the inclusive range of
// windowDays ending at refDate. Days with no record count as not completed.
// Percentages are rounded half-up to the nearest integer.
func WindowStats(daily map[string]DayCompletion, refDate time.Time, windowDays int) AdherenceSnapshot {
	var dietDone, workoutDone int
	for i := windowDays - 1; i >= 0; i-- {
		rec := daily[Day(refDate.AddDate(0, 0, -i))]
		if rec.Diet {
			dietDone++
		}
		if rec.Workout {
			workoutDone++
		}
	}

	return AdherenceSnapshot{
		DietPercent:       roundPercent(dietDone, windowDays),
		WorkoutPercent:    roundPercent(workoutDone, windowDays),
		MissedDietDays:    windowDays - dietDone,
		MissedWorkoutDays: windowDays - workoutDone,
	}
}

func roundPercent(count, total int) int {
	return int(math.Round(float64(count) / float64(total) * 100))
}
