package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HendryAvila/energywiz/internal/profile"
	"github.com/HendryAvila/energywiz/internal/wizard"
)

func init() {
	// Freeze time for deterministic tests.
	timeNow = func() time.Time {
		return time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	}
}

func newTestStore(t *testing.T, cfg Config) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestCreate_StartsAtStepOne(t *testing.T) {
	s := newTestStore(t, DefaultConfig())
	ctx := context.Background()

	sess, err := s.Create(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, wizard.StepPersonal, sess.State.Step())
	assert.Equal(t, "2026-10-18T09:30:00Z", sess.CreatedAt)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCreate_UniqueHandles(t *testing.T) {
	s := newTestStore(t, DefaultConfig())
	ctx := context.Background()

	a, err := s.Create(ctx)
	require.NoError(t, err)
	b, err := s.Create(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestCreate_RespectsLimit(t *testing.T) {
	s := newTestStore(t, Config{DSN: ":memory:", MaxSessions: 2})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := s.Create(ctx)
		require.NoError(t, err)
	}
	_, err := s.Create(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTooManySessions))
}

func TestUpdate_PersistsAnswers(t *testing.T) {
	s := newTestStore(t, DefaultConfig())
	ctx := context.Background()

	sess, err := s.Create(ctx)
	require.NoError(t, err)

	steps := []wizard.Input{
		{Name: "Asha", Age: 25},
		{City: "Pune", Area: "Kothrud"},
		{Choice: "flat"},
		{Choice: "2bhk"},
		{Choice: "yes"},
		{Choice: "no"},
		{Choice: "yes"},
	}
	for _, in := range steps {
		_, err := s.Update(ctx, sess.ID, func(st *wizard.State) error {
			return st.Submit(st.Step(), in)
		})
		require.NoError(t, err)
	}

	loaded, err := s.Load(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepResults, loaded.State.Step())

	a := loaded.State.Answers()
	assert.Equal(t, "Asha", a.Name)
	assert.Equal(t, 25, a.Age)
	assert.Equal(t, profile.FacilityTwoBHK, a.Facility)
	require.NotNil(t, a.Fridge)
	assert.False(t, *a.Fridge)
	assert.True(t, profile.Has(a.WashingMachine))

	// 3.6 + 3 (ac) + 3 (washing machine)
	assert.InDelta(t, 9.6, loaded.State.ComputedEnergy(), 1e-9)
}

func TestUpdate_ValidationErrorLeavesStateUnchanged(t *testing.T) {
	s := newTestStore(t, DefaultConfig())
	ctx := context.Background()

	sess, err := s.Create(ctx)
	require.NoError(t, err)

	_, err = s.Update(ctx, sess.ID, func(st *wizard.State) error {
		return st.Submit(wizard.StepPersonal, wizard.Input{Name: "", Age: 25})
	})
	var verr *wizard.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, wizard.RuleEmptyField, verr.Rule)

	loaded, err := s.Load(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepPersonal, loaded.State.Step())
}

func TestUpdate_FnErrorIsNotSaved(t *testing.T) {
	s := newTestStore(t, DefaultConfig())
	ctx := context.Background()

	sess, err := s.Create(ctx)
	require.NoError(t, err)

	boom := fmt.Errorf("boom")
	_, err = s.Update(ctx, sess.ID, func(st *wizard.State) error {
		_ = st.Submit(wizard.StepPersonal, wizard.Input{Name: "Asha", Age: 25})
		return boom
	})
	assert.ErrorIs(t, err, boom)

	loaded, err := s.Load(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepPersonal, loaded.State.Step())
	assert.Empty(t, loaded.State.Answers().Name)
}

func TestLoad_UnknownHandle(t *testing.T) {
	s := newTestStore(t, DefaultConfig())
	_, err := s.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_DiscardsHandle(t *testing.T) {
	s := newTestStore(t, DefaultConfig())
	ctx := context.Background()

	sess, err := s.Create(ctx)
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, sess.ID))

	_, err = s.Load(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, sess.ID), ErrNotFound)

	_, err = s.Update(ctx, sess.ID, func(*wizard.State) error { return nil })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStores_AreIsolated(t *testing.T) {
	ctx := context.Background()
	a := newTestStore(t, DefaultConfig())
	b := newTestStore(t, DefaultConfig())

	sess, err := a.Create(ctx)
	require.NoError(t, err)

	_, err = b.Load(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewSQLiteStore_OpenError(t *testing.T) {
	orig := openDB
	defer func() { openDB = orig }()

	openDB = func(driverName, dsn string) (*sql.DB, error) {
		return nil, errors.New("driver unavailable")
	}

	_, err := NewSQLiteStore(DefaultConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "driver unavailable")
}
