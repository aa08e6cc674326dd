// Package config loads energywiz runtime settings.
//
// Settings start from DefaultConfig and can be overridden through
// ENERGYWIZ_* environment variables, which is how MCP hosts pass options
// to a stdio server.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/HendryAvila/energywiz/internal/sessions"
)

// Config is the server configuration.
type Config struct {
	// ServerName is the name advertised to MCP clients.
	ServerName string `env:"ENERGYWIZ_SERVER_NAME"`
	// SessionDSN is the SQLite data source for the session registry.
	SessionDSN string `env:"ENERGYWIZ_SESSION_DSN"`
	// MaxSessions caps open wizard sessions; 0 disables the cap.
	MaxSessions int `env:"ENERGYWIZ_MAX_SESSIONS"`
	// Debug exposes read-only session snapshots as MCP resources.
	Debug bool `env:"ENERGYWIZ_DEBUG"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	def := sessions.DefaultConfig()
	return &Config{
		ServerName:  "energywiz",
		SessionDSN:  def.DSN,
		MaxSessions: def.MaxSessions,
	}
}

// Load returns DefaultConfig with environment overrides applied.
func Load() (*Config, error) {
	cfg := DefaultConfig()
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.ServerName) == "" {
		errs = append(errs, errors.New("server name must not be empty"))
	}
	switch dsn := strings.TrimSpace(c.SessionDSN); {
	case dsn == "":
		errs = append(errs, errors.New("session DSN must not be empty"))
	case !InMemoryDSN(dsn):
		errs = append(errs, fmt.Errorf("session DSN must be in-memory (:memory: or file::memory:...), got %q", dsn))
	}
	if c.MaxSessions < 0 {
		errs = append(errs, fmt.Errorf("max sessions must be >= 0, got %d", c.MaxSessions))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// InMemoryDSN reports whether dsn opens a SQLite database that lives only
// in memory. Sessions must not outlive the process.
func InMemoryDSN(dsn string) bool {
	if dsn == ":memory:" || strings.HasPrefix(dsn, "file::memory:") {
		return true
	}
	if !strings.HasPrefix(dsn, "file:") {
		return false
	}
	_, query, _ := strings.Cut(dsn, "?")
	for _, kv := range strings.Split(query, "&") {
		if kv == "mode=memory" {
			return true
		}
	}
	return false
}

// Sessions returns the session store settings.
func (c *Config) Sessions() sessions.Config {
	return sessions.Config{
		DSN:         c.SessionDSN,
		MaxSessions: c.MaxSessions,
	}
}
