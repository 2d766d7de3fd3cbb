// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"errors"
	"time"
)

// DayFormat is the calendar-day key format used throughout the profile state.
const DayFormat = "2006-01-02"

var (
	// ErrInvalidWeight indicates a non-positive or non-finite weight value.
	ErrInvalidWeight = errors.New("weight must be a positive, finite number of kilograms")
	// ErrInvalidSlot indicates an hour outside the fixed hydration schedule.
	ErrInvalidSlot = errors.New("hour is outside the hydration schedule")
	// ErrProfileNotFound indicates that no profile exists for the user.
	ErrProfileNotFound = errors.New("profile not found")
)

// WeightEntry is a single dated weight measurement in kilograms. Days are
// unique keys within a history; logging a second weight for an already
// logged day overwrites the first.
type WeightEntry struct {
	Day string  `json:"day"`
	Kg  float64 `json:"kg"`
}

// DayCompletion holds the diet and workout completion flags for one
// calendar day. A missing day means both flags are false, not unknown.
type DayCompletion struct {
	Diet    bool `json:"diet"`
	Workout bool `json:"workout"`
}

// ProfileState is the full mutable state of one user profile. Every
// operation takes the state explicitly; nothing in this package holds
// ambient state, so callers can snapshot, test, and restore freely.
type ProfileState struct {
	UserID   int64   `json:"userId"`
	Name     string  `json:"name"`
	Age      int     `json:"age"`
	HeightCm float64 `json:"heightCm"`

	// StartWeight is fixed at profile creation and never changes.
	StartWeight  float64 `json:"startWeight"`
	TargetWeight float64 `json:"targetWeight"`

	WeightHistory map[string]WeightEntry   `json:"weightHistory"`
	DailyHistory  map[string]DayCompletion `json:"dailyHistory"`
	WaterLog      map[string][]int         `json:"waterLog"`
}

// NewProfileState creates a profile with empty logs. The start weight also
// serves as the baseline current weight until the first entry is logged.
func NewProfileState(userID int64, name string, age int, heightCm, startWeight, targetWeight float64) *ProfileState {
	return &ProfileState{
		UserID:        userID,
		Name:          name,
		Age:           age,
		HeightCm:      heightCm,
		StartWeight:   startWeight,
		TargetWeight:  targetWeight,
		WeightHistory: make(map[string]WeightEntry),
		DailyHistory:  make(map[string]DayCompletion),
		WaterLog:      make(map[string][]int),
	}
}

// Day returns t formatted as a profile day key.
func Day(t time.Time) string {
	return t.Format(DayFormat)
}

// ToggleDiet flips the diet completion flag for a day.
func (p *ProfileState) ToggleDiet(day string) DayCompletion {
	if p.DailyHistory == nil {
		p.DailyHistory = make(map[string]DayCompletion)
	}
	rec := p.DailyHistory[day]
	rec.Diet = !rec.Diet
	p.DailyHistory[day] = rec
	return rec
}

// ToggleWorkout flips the workout completion flag for a day.
func (p *ProfileState) ToggleWorkout(day string) DayCompletion {
	if p.DailyHistory == nil {
		p.DailyHistory = make(map[string]DayCompletion)
	}
	rec := p.DailyHistory[day]
	rec.Workout = !rec.Workout
	p.DailyHistory[day] = rec
	return rec
}

// ProfileRepository is the port for profile persistence. Save upserts the
// whole state; the storage format is the adapter's business.
type ProfileRepository interface {
	Load(ctx context.Context, userID int64) (*ProfileState, error)
	Save(ctx context.Context, state *ProfileState) error
}
