// Package sessions keeps one wizard state per user session, addressed by
// an opaque handle.
//
// The default store is SQLite (modernc.org/sqlite) opened on an in-memory
// database: sessions live exactly as long as the process and are never
// written to disk. Callers create a handle, drive the wizard through
// Update, and discard the handle with Delete when they are done.
package sessions

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/HendryAvila/energywiz/internal/profile"
	"github.com/HendryAvila/energywiz/internal/wizard"
)

var (
	// ErrNotFound is returned for an unknown or discarded session handle.
	ErrNotFound = errors.New("session not found")
	// ErrTooManySessions is returned by Create when the store is full.
	ErrTooManySessions = errors.New("too many open sessions")
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// newID generates session handles.
var newID = uuid.NewString

// Session is a wizard state bound to its handle.
type Session struct {
	ID        string        `json:"id"`
	State     *wizard.State `json:"-"`
	CreatedAt string        `json:"created_at"`
	UpdatedAt string        `json:"updated_at"`
}

// Store defines the session registry. Abstracted for testability.
type Store interface {
	Create(ctx context.Context) (*Session, error)
	Load(ctx context.Context, id string) (*Session, error)
	// Update loads the session, applies fn to its state and saves the
	// result. When fn returns an error nothing is saved and the error is
	// returned unchanged.
	Update(ctx context.Context, id string, fn func(*wizard.State) error) (*Session, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	Close() error
}

// Config holds store settings.
type Config struct {
	// DSN is the SQLite data source. ":memory:" keeps everything in RAM.
	DSN string
	// MaxSessions caps concurrently open handles; 0 means unlimited.
	MaxSessions int
}

// DefaultConfig returns an in-memory store with a modest session cap.
func DefaultConfig() Config {
	return Config{
		DSN:         ":memory:",
		MaxSessions: 64,
	}
}

// SQLiteStore implements Store on database/sql + modernc.org/sqlite.
type SQLiteStore struct {
	db  *sql.DB
	cfg Config

	// mu serializes read-modify-write cycles so two calls on the same
	// handle cannot interleave.
	mu sync.Mutex
}

// NewSQLiteStore opens the database and creates the schema.
func NewSQLiteStore(cfg Config) (*SQLiteStore, error) {
	db, err := openDB("sqlite", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("sessions: open database: %w", err)
	}

	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{db: db, cfg: cfg}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sessions: migration: %w", err)
	}
	return s, nil
}

// Close releases the database. All sessions are gone afterwards.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS wizard_sessions (
			id              TEXT    PRIMARY KEY,
			step            INTEGER NOT NULL CHECK (step BETWEEN 1 AND 8),
			answers         TEXT    NOT NULL DEFAULT '{}',
			computed_energy REAL    NOT NULL DEFAULT 0,
			created_at      TEXT    NOT NULL,
			updated_at      TEXT    NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_sessions_updated ON wizard_sessions(updated_at DESC);
	`)
	return err
}

// Create opens a new session at step 1.
func (s *SQLiteStore) Create(ctx context.Context) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cfg.MaxSessions > 0 {
		n, err := s.count(ctx)
		if err != nil {
			return nil, err
		}
		if n >= s.cfg.MaxSessions {
			return nil, fmt.Errorf("%w (limit %d)", ErrTooManySessions, s.cfg.MaxSessions)
		}
	}

	now := timestamp()
	sess := &Session{
		ID:        newID(),
		State:     wizard.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	snap := sess.State.Snapshot()
	answers, err := json.Marshal(snap.Answers)
	if err != nil {
		return nil, fmt.Errorf("sessions: marshal answers: %w", err)
	}

	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO wizard_sessions (id, step, answers, computed_energy, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sess.ID, int(snap.Step), string(answers), snap.ComputedEnergy, sess.CreatedAt, sess.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("sessions: insert %s: %w", sess.ID, err)
	}
	return sess, nil
}

// Load returns the session for id.
func (s *SQLiteStore) Load(ctx context.Context, id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx, id)
}

// Update applies fn to the session's state and persists the result.
func (s *SQLiteStore) Update(ctx context.Context, id string, fn func(*wizard.State) error) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(sess.State); err != nil {
		return nil, err
	}

	snap := sess.State.Snapshot()
	answers, err := json.Marshal(snap.Answers)
	if err != nil {
		return nil, fmt.Errorf("sessions: marshal answers: %w", err)
	}

	sess.UpdatedAt = timestamp()
	res, err := s.db.ExecContext(ctx,
		`UPDATE wizard_sessions
		 SET step = ?, answers = ?, computed_energy = ?, updated_at = ?
		 WHERE id = ?`,
		int(snap.Step), string(answers), snap.ComputedEnergy, sess.UpdatedAt, id,
	)
	if err != nil {
		return nil, fmt.Errorf("sessions: update %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return sess, nil
}

// Delete discards a session handle.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM wizard_sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sessions: delete %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// Count returns the number of open sessions.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count(ctx)
}

func (s *SQLiteStore) count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM wizard_sessions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("sessions: count: %w", err)
	}
	return n, nil
}

func (s *SQLiteStore) load(ctx context.Context, id string) (*Session, error) {
	var (
		step           int
		answersJSON    string
		computedEnergy float64
		sess           = &Session{ID: id}
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT step, answers, computed_energy, created_at, updated_at
		 FROM wizard_sessions WHERE id = ?`, id,
	).Scan(&step, &answersJSON, &computedEnergy, &sess.CreatedAt, &sess.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("sessions: load %s: %w", id, err)
	}

	var answers profile.Answers
	if err := json.Unmarshal([]byte(answersJSON), &answers); err != nil {
		return nil, fmt.Errorf("sessions: decode answers for %s: %w", id, err)
	}

	state, err := wizard.Restore(wizard.Snapshot{
		Step:           wizard.Step(step),
		Answers:        answers,
		ComputedEnergy: computedEnergy,
	})
	if err != nil {
		return nil, fmt.Errorf("sessions: %s: %w", id, err)
	}
	sess.State = state
	return sess, nil
}

// timeNow is a package-level variable for testability.
var timeNow = time.Now

func timestamp() string {
	return timeNow().UTC().Format(time.RFC3339)
}
