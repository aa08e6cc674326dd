package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "energywiz", cfg.ServerName)
	assert.Equal(t, ":memory:", cfg.SessionDSN)
	assert.Equal(t, 64, cfg.MaxSessions)
	assert.False(t, cfg.Debug)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_NoOverrides(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ENERGYWIZ_SERVER_NAME", "home-energy")
	t.Setenv("ENERGYWIZ_MAX_SESSIONS", "5")
	t.Setenv("ENERGYWIZ_DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "home-energy", cfg.ServerName)
	assert.Equal(t, 5, cfg.MaxSessions)
	assert.True(t, cfg.Debug)
	assert.Equal(t, ":memory:", cfg.SessionDSN, "unset variables keep defaults")
}

func TestLoad_BadNumber(t *testing.T) {
	t.Setenv("ENERGYWIZ_MAX_SESSIONS", "lots")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_NegativeMaxSessions(t *testing.T) {
	t.Setenv("ENERGYWIZ_MAX_SESSIONS", "-1")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max sessions")
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	cfg := &Config{MaxSessions: -3}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server name")
	assert.Contains(t, err.Error(), "session DSN")
	assert.Contains(t, err.Error(), "max sessions")
}

func TestSessions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxSessions = 3
	sc := cfg.Sessions()
	assert.Equal(t, ":memory:", sc.DSN)
	assert.Equal(t, 3, sc.MaxSessions)
}

func TestLoad_RejectsOnDiskDSN(t *testing.T) {
	t.Setenv("ENERGYWIZ_SESSION_DSN", "/tmp/energywiz.db")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "in-memory")
}

func TestInMemoryDSN(t *testing.T) {
	tests := []struct {
		dsn  string
		want bool
	}{
		{":memory:", true},
		{"file::memory:", true},
		{"file::memory:?cache=shared", true},
		{"file:wizard?mode=memory&cache=shared", true},
		{"file:wizard.db", false},
		{"file:wizard.db?cache=shared", false},
		{"sessions.db", false},
		{"/var/lib/energywiz/sessions.db", false},
	}
	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			assert.Equal(t, tt.want, InMemoryDSN(tt.dsn))
		})
	}
}
