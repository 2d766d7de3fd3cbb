package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"slimcoach/internal/domain"
)

// Load reads the full profile state for a user.
func (d *DB) Load(ctx context.Context, userID int64) (*domain.ProfileState, error) {
	state := &domain.ProfileState{
		UserID:        userID,
		WeightHistory: make(map[string]domain.WeightEntry),
		DailyHistory:  make(map[string]domain.DayCompletion),
		WaterLog:      make(map[string][]int),
	}

	err := d.sql.QueryRowContext(ctx,
		"SELECT name, age, height_cm, start_weight, target_weight FROM profiles WHERE user_id = $1",
		userID,
	).Scan(&state.Name, &state.Age, &state.HeightCm, &state.StartWeight, &state.TargetWeight)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	rows, err := d.sql.QueryContext(ctx,
		"SELECT day, kg FROM weight_entries WHERE user_id = $1", userID)
	if err != nil {
		return nil, fmt.Errorf("load weights: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var e domain.WeightEntry
		if err := rows.Scan(&e.Day, &e.Kg); err != nil {
			return nil, err
		}
		state.WeightHistory[e.Day] = e
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	dayRows, err := d.sql.QueryContext(ctx,
		"SELECT day, diet, workout FROM daily_log WHERE user_id = $1", userID)
	if err != nil {
		return nil, fmt.Errorf("load daily log: %w", err)
	}
	defer dayRows.Close()
	for dayRows.Next() {
		var day string
		var rec domain.DayCompletion
		if err := dayRows.Scan(&day, &rec.Diet, &rec.Workout); err != nil {
			return nil, err
		}
		state.DailyHistory[day] = rec
	}
	if err := dayRows.Err(); err != nil {
		return nil, err
	}

	waterRows, err := d.sql.QueryContext(ctx,
		"SELECT day, hour FROM water_slots WHERE user_id = $1", userID)
	if err != nil {
		return nil, fmt.Errorf("load water slots: %w", err)
	}
	defer waterRows.Close()
	for waterRows.Next() {
		var day string
		var hour int
		if err := waterRows.Scan(&day, &hour); err != nil {
			return nil, err
		}
		state.WaterLog[day] = append(state.WaterLog[day], hour)
	}
	if err := waterRows.Err(); err != nil {
		return nil, err
	}

	return state, nil
}

// Save writes the full profile state in a single transaction. History rows
// are replaced wholesale, which keeps the stored state an exact mirror of
// the in-memory one.
func (d *DB) Save(ctx context.Context, state *domain.ProfileState) error {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO profiles (user_id, name, age, height_cm, start_weight, target_weight, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (user_id) DO UPDATE SET
		   name = EXCLUDED.name, age = EXCLUDED.age, height_cm = EXCLUDED.height_cm,
		   start_weight = EXCLUDED.start_weight, target_weight = EXCLUDED.target_weight`,
		state.UserID, state.Name, state.Age, state.HeightCm, state.StartWeight, state.TargetWeight, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}

	for _, table := range []string{"weight_entries", "daily_log", "water_slots"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE user_id = $1", state.UserID); err != nil {
			return fmt.Errorf("save %s: %w", table, err)
		}
	}

	for _, e := range state.WeightHistory {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO weight_entries (user_id, day, kg) VALUES ($1, $2, $3)",
			state.UserID, e.Day, e.Kg,
		); err != nil {
			return fmt.Errorf("save weight entry: %w", err)
		}
	}

	for day, rec := range state.DailyHistory {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO daily_log (user_id, day, diet, workout) VALUES ($1, $2, $3, $4)",
			state.UserID, day, rec.Diet, rec.Workout,
		); err != nil {
			return fmt.Errorf("save daily log: %w", err)
		}
	}

	for day, hours := range state.WaterLog {
		for _, hour := range hours {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO water_slots (user_id, day, hour) VALUES ($1, $2, $3)",
				state.UserID, day, hour,
			); err != nil {
				return fmt.Errorf("save water slot: %w", err)
			}
		}
	}

	return tx.Commit()
}
