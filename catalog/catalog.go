package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Catalog provides read access to the layered text namespace. Layers are
// applied in order, so a key present in a later layer replaces the same key
// from an earlier one. All content is loaded by Bootstrap; reads never
// trigger I/O. All methods are safe for concurrent use.
type Catalog struct {
	layers []Store
	texts  map[string]string
	mu     sync.RWMutex
}

// NewCatalog creates a Catalog over the given layers, lowest precedence first.
func NewCatalog(layers ...Store) *Catalog {
	return &Catalog{
		layers: layers,
		texts:  make(map[string]string),
	}
}

// Bootstrap loads every key of every layer and verifies that all
// RequiredKeys resolve to non-blank text.
func (c *Catalog) Bootstrap(ctx context.Context) error {
	texts := make(map[string]string)

	for i, layer := range c.layers {
		keys, err := layer.List(ctx)
		if err != nil {
			return fmt.Errorf("bootstrap layer %d index: %w", i, err)
		}
		if len(keys) == 0 {
			continue
		}

		entries, err := layer.Load(ctx, keys...)
		if err != nil {
			return fmt.Errorf("bootstrap layer %d load: %w", i, err)
		}
		for _, e := range entries {
			texts[e.Key] = strings.TrimSpace(string(e.Value))
		}
	}

	for _, key := range RequiredKeys {
		if texts[key] == "" {
			return fmt.Errorf("%w: %s", ErrMissingKey, key)
		}
	}

	c.mu.Lock()
	c.texts = texts
	c.mu.Unlock()

	return nil
}

// Text returns the text stored under key with surrounding whitespace trimmed.
func (c *Catalog) Text(key string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	text, ok := c.texts[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return text, nil
}

// Has reports whether key was loaded.
func (c *Catalog) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.texts[key]
	return ok
}

// Keys returns all loaded keys in sorted order.
func (c *Catalog) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0, len(c.texts))
	for key := range c.texts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
