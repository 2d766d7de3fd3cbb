// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"slimcoach/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu       sync.Mutex
	profiles map[int64]*domain.ProfileState
	users    []*domain.User
	sessions map[string]*domain.Session

	userIDCounter int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		profiles: make(map[int64]*domain.ProfileState),
		sessions: make(map[string]*domain.Session),
	}
}

// Ensure interfaces are met.
var _ domain.ProfileRepository = (*DB)(nil)
var _ domain.UserRepository = (*DB)(nil)
var _ domain.SessionRepository = (*SessionRepo)(nil)

// --- ProfileRepository ---

// Load returns a deep copy of the stored state, so callers can mutate it
// without the store observing partial updates.
func (db *DB) Load(ctx context.Context, userID int64) (*domain.ProfileState, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	state, ok := db.profiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return copyState(state), nil
}

// Save stores a deep copy of the given state.
func (db *DB) Save(ctx context.Context, state *domain.ProfileState) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.profiles[state.UserID] = copyState(state)
	return nil
}

func copyState(s *domain.ProfileState) *domain.ProfileState {
	out := &domain.ProfileState{
		UserID:        s.UserID,
		Name:          s.Name,
		Age:           s.Age,
		HeightCm:      s.HeightCm,
		StartWeight:   s.StartWeight,
		TargetWeight:  s.TargetWeight,
		WeightHistory: make(map[string]domain.WeightEntry, len(s.WeightHistory)),
		DailyHistory:  make(map[string]domain.DayCompletion, len(s.DailyHistory)),
		WaterLog:      make(map[string][]int, len(s.WaterLog)),
	}
	for day, e := range s.WeightHistory {
		out.WeightHistory[day] = e
	}
	for day, rec := range s.DailyHistory {
		out.DailyHistory[day] = rec
	}
	for day, hours := range s.WaterLog {
		out.WaterLog[day] = append([]int(nil), hours...)
	}
	return out
}

// --- UserRepository ---

// GetByUsername retrieves a user by username. A missing user is (nil, nil),
// not an error.
func (db *DB) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

// GetByID retrieves a user by ID.
func (db *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

// Create creates a new user.
func (db *DB) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			return nil, errors.New("username already exists")
		}
	}

	db.userIDCounter++
	u := &domain.User{
		ID:           db.userIDCounter,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	db.users = append(db.users, u)
	copied := *u
	return &copied, nil
}

// Count returns the total number of users.
func (db *DB) Count(ctx context.Context) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.users), nil
}

// --- SessionRepository ---

// SessionRepo implements session repository operations on DB.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo wraps a DB as a SessionRepository.
func NewSessionRepo(db *DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// Create creates a new session.
func (r *SessionRepo) Create(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.sessions[token] = &domain.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	return nil
}

// GetByToken retrieves a session by token. A missing session is (nil, nil),
// not an error.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	s, ok := r.db.sessions[token]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

// Delete deletes a session by token.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	delete(r.db.sessions, token)
	return nil
}

// DeleteExpired deletes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	now := time.Now()
	for token, s := range r.db.sessions {
		if now.After(s.ExpiresAt) {
			delete(r.db.sessions, token)
		}
	}
	return nil
}
