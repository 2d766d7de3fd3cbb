// Package app holds the application services and business logic.
package app

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"slimcoach/internal/domain"
	"slimcoach/internal/metrics"
)

// RecentChartEntries is the number of weight entries fed to the chart.
const RecentChartEntries = 7

var (
	// ErrInvalidProfile indicates non-positive weight or height values supplied
	// at profile creation.
	ErrInvalidProfile = errors.New("profile weights and height must be positive, finite numbers")
	// ErrProfileExists indicates the user already has a profile.
	ErrProfileExists = errors.New("profile already exists")
)

// TrackerService owns profile mutations and derived snapshots. Mutations to
// one profile are serialized through a per-user lock, so concurrent writes
// to the same key resolve last-write-wins with no partial-update visibility.
type TrackerService struct {
	repo    domain.ProfileRepository
	metrics *metrics.Manager

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

// NewTrackerService creates a TrackerService backed by the given repository.
func NewTrackerService(repo domain.ProfileRepository, m *metrics.Manager) *TrackerService {
	return &TrackerService{
		repo:    repo,
		metrics: m,
		locks:   make(map[int64]*sync.Mutex),
	}
}

func (s *TrackerService) lockFor(userID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	return l
}

// mutate loads, transforms and saves one profile under its lock.
func (s *TrackerService) mutate(ctx context.Context, userID int64, fn func(*domain.ProfileState) error) (*domain.ProfileState, error) {
	l := s.lockFor(userID)
	l.Lock()
	defer l.Unlock()

	state, err := s.repo.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := fn(state); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// CreateProfile validates and stores a brand-new profile. The start weight
// recorded here is immutable for the life of the profile, so re-creating an
// existing profile is rejected rather than overwriting it.
func (s *TrackerService) CreateProfile(ctx context.Context, userID int64, name string, age int, heightCm, startWeight, targetWeight float64) (*domain.ProfileState, error) {
	for _, v := range []float64{heightCm, startWeight, targetWeight} {
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrInvalidProfile
		}
	}

	l := s.lockFor(userID)
	l.Lock()
	defer l.Unlock()

	_, err := s.repo.Load(ctx, userID)
	if err == nil {
		return nil, ErrProfileExists
	}
	if !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, err
	}

	state := domain.NewProfileState(userID, name, age, heightCm, startWeight, targetWeight)
	if err := s.repo.Save(ctx, state); err != nil {
		return nil, err
	}
	s.metrics.IncLogOp("create_profile")
	return state, nil
}

// LogWeight records today's weight, overwriting an earlier entry for the
// same day, and returns the stored entry.
func (s *TrackerService) LogWeight(ctx context.Context, userID int64, kg float64, now time.Time) (*domain.WeightEntry, error) {
	day := domain.Day(now)
	state, err := s.mutate(ctx, userID, func(p *domain.ProfileState) error {
		return p.AppendWeight(day, kg)
	})
	if err != nil {
		return nil, err
	}
	s.metrics.IncLogOp("log_weight")
	entry := state.WeightHistory[day]
	return &entry, nil
}

// SetTargetWeight updates the goal weight.
func (s *TrackerService) SetTargetWeight(ctx context.Context, userID int64, kg float64) error {
	if kg <= 0 || math.IsNaN(kg) || math.IsInf(kg, 0) {
		return domain.ErrInvalidWeight
	}
	_, err := s.mutate(ctx, userID, func(p *domain.ProfileState) error {
		p.TargetWeight = kg
		return nil
	})
	if err != nil {
		return err
	}
	s.metrics.IncLogOp("set_target")
	return nil
}

// ToggleDiet flips the diet flag for a day and returns the new record.
func (s *TrackerService) ToggleDiet(ctx context.Context, userID int64, day string) (domain.DayCompletion, error) {
	var rec domain.DayCompletion
	_, err := s.mutate(ctx, userID, func(p *domain.ProfileState) error {
		rec = p.ToggleDiet(day)
		return nil
	})
	if err != nil {
		return domain.DayCompletion{}, err
	}
	s.metrics.IncLogOp("toggle_diet")
	return rec, nil
}

// ToggleWorkout flips the workout flag for a day and returns the new record.
func (s *TrackerService) ToggleWorkout(ctx context.Context, userID int64, day string) (domain.DayCompletion, error) {
	var rec domain.DayCompletion
	_, err := s.mutate(ctx, userID, func(p *domain.ProfileState) error {
		rec = p.ToggleWorkout(day)
		return nil
	})
	if err != nil {
		return domain.DayCompletion{}, err
	}
	s.metrics.IncLogOp("toggle_workout")
	return rec, nil
}

// ToggleWaterSlot flips an hour slot for a day and returns the hydration
// snapshot for that day.
func (s *TrackerService) ToggleWaterSlot(ctx context.Context, userID int64, day string, hour int) (domain.HydrationSnapshot, error) {
	state, err := s.mutate(ctx, userID, func(p *domain.ProfileState) error {
		return p.ToggleWaterSlot(day, hour)
	})
	if err != nil {
		return domain.HydrationSnapshot{}, err
	}
	s.metrics.IncLogOp("toggle_water")
	return state.HydrationStatus(day, hour), nil
}

// DashboardSnapshot bundles every derived view the dashboard renders.
// Nothing here is persisted; it is recomputed from state on each request.
type DashboardSnapshot struct {
	Today          string                   `json:"today"`
	Progress       domain.ProgressSnapshot  `json:"progress"`
	BMI            domain.BMISnapshot       `json:"bmi"`
	Adherence      domain.AdherenceSnapshot `json:"adherence"`
	Recommendation domain.Recommendation    `json:"recommendation"`
	Hydration      domain.HydrationSnapshot `json:"hydration"`
	Chart          []domain.WeightEntry     `json:"chart"`
}

// Dashboard recomputes all derived snapshots from the current state.
func (s *TrackerService) Dashboard(ctx context.Context, userID int64, now time.Time) (*DashboardSnapshot, error) {
	state, err := s.repo.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	current := state.CurrentWeight()
	adherence := domain.WindowStats(state.DailyHistory, now, domain.AdherenceWindowDays)

	return &DashboardSnapshot{
		Today:          domain.Day(now),
		Progress:       domain.ComputeProgress(state.StartWeight, state.TargetWeight, current),
		BMI:            domain.EvaluateBMI(current, state.HeightCm),
		Adherence:      adherence,
		Recommendation: domain.Classify(adherence.DietPercent, adherence.WorkoutPercent),
		Hydration:      state.HydrationStatus(domain.Day(now), now.Hour()),
		Chart:          state.RecentEntries(RecentChartEntries),
	}, nil
}

// RecentWeights returns the last n entries for charting.
func (s *TrackerService) RecentWeights(ctx context.Context, userID int64, n int) ([]domain.WeightEntry, error) {
	state, err := s.repo.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return state.RecentEntries(n), nil
}

// Profile returns the raw profile state.
func (s *TrackerService) Profile(ctx context.Context, userID int64) (*domain.ProfileState, error) {
	return s.repo.Load(ctx, userID)
}
