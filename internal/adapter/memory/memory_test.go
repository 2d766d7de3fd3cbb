package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"slimcoach/internal/domain"
)

func TestProfileRepository(t *testing.T) {
	db := New()
	ctx := context.Background()

	// Load before save
	if _, err := db.Load(ctx, 1); !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}

	state := domain.NewProfileState(1, "Abebe", 30, 175, 80, 70)
	if err := state.AppendWeight("2024-03-15", 79); err != nil {
		t.Fatalf("AppendWeight: %v", err)
	}
	state.ToggleDiet("2024-03-15")
	if err := state.ToggleWaterSlot("2024-03-15", 9); err != nil {
		t.Fatalf("ToggleWaterSlot: %v", err)
	}

	if err := db.Save(ctx, state); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := db.Load(ctx, 1)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Name != "Abebe" || loaded.StartWeight != 80 {
		t.Errorf("unexpected profile fields: %+v", loaded)
	}
	if loaded.WeightHistory["2024-03-15"].Kg != 79 {
		t.Errorf("weight history not persisted: %+v", loaded.WeightHistory)
	}
	if !loaded.DailyHistory["2024-03-15"].Diet {
		t.Error("daily history not persisted")
	}
	if len(loaded.WaterLog["2024-03-15"]) != 1 {
		t.Errorf("water log not persisted: %+v", loaded.WaterLog)
	}

	// Mutating the loaded copy must not leak into the store.
	loaded.ToggleDiet("2024-03-16")
	again, err := db.Load(ctx, 1)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := again.DailyHistory["2024-03-16"]; ok {
		t.Error("mutation of a loaded copy leaked into the store")
	}
}

func TestUserRepository(t *testing.T) {
	db := New()
	ctx := context.Background()

	u, err := db.Create(ctx, "abebe", "hash")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.ID == 0 {
		t.Error("expected non-zero ID")
	}

	if _, err := db.Create(ctx, "abebe", "hash2"); err == nil {
		t.Error("expected error on duplicate username")
	}

	got, err := db.GetByUsername(ctx, "abebe")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("expected ID %d, got %d", u.ID, got.ID)
	}

	missing, err := db.GetByUsername(ctx, "nobody")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing user, got %+v", missing)
	}

	count, err := db.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 user, got %d", count)
	}
}

func TestSessionRepository(t *testing.T) {
	db := New()
	sessions := NewSessionRepo(db)
	ctx := context.Background()

	if err := sessions.Create(ctx, 1, "tok", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := sessions.Create(ctx, 1, "old", time.Now().Add(-time.Hour)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	s, err := sessions.GetByToken(ctx, "tok")
	if err != nil {
		t.Fatalf("GetByToken: %v", err)
	}
	if s.UserID != 1 {
		t.Errorf("expected userID 1, got %d", s.UserID)
	}

	if err := sessions.DeleteExpired(ctx); err != nil {
		t.Fatalf("DeleteExpired: %v", err)
	}
	if s, _ := sessions.GetByToken(ctx, "old"); s != nil {
		t.Error("expected expired session to be purged")
	}
	if s, _ := sessions.GetByToken(ctx, "tok"); s == nil {
		t.Error("live session should survive purge")
	}

	if err := sessions.Delete(ctx, "tok"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if s, _ := sessions.GetByToken(ctx, "tok"); s != nil {
		t.Error("expected deleted session to be gone")
	}
}
