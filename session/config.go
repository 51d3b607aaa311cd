package session

import (
	"errors"
	"strings"
)

var (
	// ErrNoResponder is returned when a session is created without a Responder.
	ErrNoResponder = errors.New("session: responder is required")
	// ErrEmptyWelcome is returned when no welcome text is available.
	ErrEmptyWelcome = errors.New("session: welcome text is empty")
)

// Config holds session initialization parameters.
type Config struct {
	// Welcome overrides the greeting that opens every conversation.
	Welcome string `json:"welcome,omitempty" yaml:"welcome,omitempty" env:"ASSISTANT_WELCOME"`
}

// DefaultConfig returns the default session configuration. An empty Welcome
// defers to the caller's greeting.
func DefaultConfig() Config {
	return Config{}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Welcome != "" {
		c.Welcome = source.Welcome
	}
}

// New creates a Session from configuration. cfg.Welcome takes precedence over
// welcome when set. Currently returns an in-memory session.
func New(cfg *Config, welcome string, r Responder) (Session, error) {
	if r == nil {
		return nil, ErrNoResponder
	}
	if cfg != nil && cfg.Welcome != "" {
		welcome = cfg.Welcome
	}
	if strings.TrimSpace(welcome) == "" {
		return nil, ErrEmptyWelcome
	}
	return NewMemorySession(welcome, r), nil
}
