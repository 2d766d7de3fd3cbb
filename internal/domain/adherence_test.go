package domain_test

import (
	"testing"
	"time"

	"slimcoach/internal/domain"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DayFormat, s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}

func TestWindowStats(t *testing.T) {
	ref := mustDate(t, "2026-08-28")

	daily := map[string]domain.DayCompletion{
		"2026-08-22": {Diet: true, Workout: true},
		"2026-08-23": {Diet: true},
		"2026-08-24": {Diet: true, Workout: true},
		"2026-08-26": {Diet: true},
		"2026-08-28": {Diet: true, Workout: true},
		// 2026-08-21 is outside the window and must not count.
		"2026-08-21": {Diet: true, Workout: true},
	}

	got := domain.WindowStats(daily, ref, domain.AdherenceWindowDays)

	if got.DietPercent != 71 {
		t.Errorf("DietPercent = %d; want 71", got.DietPercent)
	}
	if got.WorkoutPercent != 43 {
		t.Errorf("WorkoutPercent = %d; want 43", got.WorkoutPercent)
	}
	if got.MissedDietDays != 2 {
		t.Errorf("MissedDietDays = %d; want 2", got.MissedDietDays)
	}
	if got.MissedWorkoutDays != 4 {
		t.Errorf("MissedWorkoutDays = %d; want 4", got.MissedWorkoutDays)
	}
}

func TestWindowStats_EmptyHistory(t *testing.T) {
	got := domain.WindowStats(nil, mustDate(t, "2026-08-28"), domain.AdherenceWindowDays)
	if got.DietPercent != 0 || got.WorkoutPercent != 0 {
		t.Errorf("percentages = %d/%d; want 0/0", got.DietPercent, got.WorkoutPercent)
	}
	if got.MissedDietDays != 7 || got.MissedWorkoutDays != 7 {
		t.Errorf("missed days = %d/%d; want 7/7", got.MissedDietDays, got.MissedWorkoutDays)
	}
}

func TestWindowStats_PerfectWeek(t *testing.T) {
	ref := mustDate(t, "2026-08-28")
	daily := make(map[string]domain.DayCompletion)
	for i := 0; i < 7; i++ {
		daily[domain.Day(ref.AddDate(0, 0, -i))] = domain.DayCompletion{Diet: true, Workout: true}
	}

	got := domain.WindowStats(daily, ref, domain.AdherenceWindowDays)
	if got.DietPercent != 100 || got.WorkoutPercent != 100 {
		t.Errorf("percentages = %d/%d; want 100/100", got.DietPercent, got.WorkoutPercent)
	}
	if got.MissedDietDays != 0 || got.MissedWorkoutDays != 0 {
		t.Errorf("missed days = %d/%d; want 0/0", got.MissedDietDays, got.MissedWorkoutDays)
	}
}
