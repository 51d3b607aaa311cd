package catalog

import "context"

// Config holds catalog initialization parameters.
type Config struct {
	Path string `json:"path,omitempty" yaml:"path,omitempty" env:"ASSISTANT_CATALOG_PATH"` // Override directory; empty uses embedded texts only.
}

// DefaultConfig returns the default catalog configuration (embedded texts only).
func DefaultConfig() Config {
	return Config{}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Path != "" {
		c.Path = source.Path
	}
}

// New creates and bootstraps a Catalog from configuration. When Path is set,
// texts found there take precedence over the embedded defaults.
func New(ctx context.Context, cfg *Config) (*Catalog, error) {
	layers := []Store{Defaults()}
	if cfg.Path != "" {
		layers = append(layers, NewDirStore(cfg.Path))
	}

	c := NewCatalog(layers...)
	if err := c.Bootstrap(ctx); err != nil {
		return nil, err
	}
	return c, nil
}
