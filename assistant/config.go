package assistant

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/tailored-agentic-units/assistant/catalog"
	"github.com/tailored-agentic-units/assistant/session"
)

const defaultObserver = "slog"

// Config holds initialization parameters for all assistant subsystems.
// Each subsystem section delegates to that subsystem's config-driven constructor.
type Config struct {
	Session  session.Config `json:"session" yaml:"session"`
	Catalog  catalog.Config `json:"catalog" yaml:"catalog"`
	Observer string         `json:"observer,omitempty" yaml:"observer,omitempty" env:"ASSISTANT_OBSERVER"`
	LogLevel string         `json:"log_level,omitempty" yaml:"log_level,omitempty" env:"ASSISTANT_LOG_LEVEL"`
}

// DefaultConfig returns a Config with sensible defaults for all subsystems.
func DefaultConfig() Config {
	return Config{
		Session:  session.DefaultConfig(),
		Catalog:  catalog.DefaultConfig(),
		Observer: defaultObserver,
		LogLevel: "info",
	}
}

// Merge applies non-zero values from source into c, delegating to each
// subsystem's Merge method.
func (c *Config) Merge(source *Config) {
	c.Session.Merge(&source.Session)
	c.Catalog.Merge(&source.Catalog)

	if source.Observer != "" {
		c.Observer = source.Observer
	}
	if source.LogLevel != "" {
		c.LogLevel = source.LogLevel
	}
}

// LoadConfig reads a JSON or YAML config file, merges it with defaults, and
// returns the resulting Config. Files ending in .yaml or .yml are parsed as
// YAML; anything else as JSON.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &loaded)
	default:
		err = json.Unmarshal(data, &loaded)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}

// ApplyEnv loads dotenv files (".env" when none are given) and then overlays
// ASSISTANT_* environment variables onto c. Missing dotenv files are
// ignored; variables already set in the environment win over file values.
func (c *Config) ApplyEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}

	var loaded Config
	if err := env.Parse(&loaded); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}

	c.Merge(&loaded)
	return nil
}
