// Package catalog holds the fixed texts the assistant speaks: the welcome
// messages, the canned rule replies, and the fallback template. Texts ship
// embedded with the binary and may be reworded by layering a directory with
// the same key layout on top. Rule order and matching are never configurable
// here; only wording is.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Store translates between a filesystem and the catalog key namespace.
// Implementations are stateless: they perform I/O on each call.
type Store interface {
	// List returns all available keys in the store.
	List(ctx context.Context) ([]string, error)
	// Load retrieves entries for the specified keys.
	Load(ctx context.Context, keys ...string) ([]Entry, error)
}

type fsStore struct {
	fsys fs.FS
}

// NewFSStore creates a Store backed by fsys. Keys are the slash-separated
// paths of regular files; dot-files and dot-directories are skipped.
func NewFSStore(fsys fs.FS) Store {
	return &fsStore{fsys: fsys}
}

// NewDirStore creates a Store rooted at a directory on disk. A missing root
// behaves as an empty store.
func NewDirStore(root string) Store {
	return NewFSStore(os.DirFS(root))
}

func (s *fsStore) List(_ context.Context) ([]string, error) {
	var keys []string

	err := fs.WalkDir(s.fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && path == "." {
				return fs.SkipAll
			}
			return err
		}

		if path != "." && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		keys = append(keys, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	return keys, nil
}

func (s *fsStore) Load(_ context.Context, keys ...string) ([]Entry, error) {
	entries := make([]Entry, 0, len(keys))

	for _, key := range keys {
		data, err := fs.ReadFile(s.fsys, key)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
			}
			return nil, fmt.Errorf("%w: %s: %v", ErrLoadFailed, key, err)
		}
		entries = append(entries, Entry{Key: key, Value: data})
	}

	return entries, nil
}
