package catalog_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/tailored-agentic-units/assistant/catalog"
)

func TestNew_Defaults(t *testing.T) {
	cfg := catalog.DefaultConfig()
	c, err := catalog.New(context.Background(), &cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	welcome, err := c.Text(catalog.KeyWelcome)
	if err != nil {
		t.Fatalf("Text(welcome) error = %v", err)
	}
	for _, cmd := range []string{"/explain", "/review", "/test", "/fix", "/optimize"} {
		if !strings.Contains(welcome, cmd) {
			t.Errorf("welcome text missing command %q", cmd)
		}
	}
	if welcome != strings.TrimSpace(welcome) {
		t.Error("welcome text should be trimmed")
	}
}

func TestNew_OverrideDirectory(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, catalog.KeyReplyKotlin, "Kotlin, you say?\n")

	cfg := catalog.Config{Path: root}
	c, err := catalog.New(context.Background(), &cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	got, err := c.Text(catalog.KeyReplyKotlin)
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if got != "Kotlin, you say?" {
		t.Errorf("got %q, want override text", got)
	}

	explain, err := c.Text(catalog.KeyReplyExplain)
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if !strings.HasPrefix(explain, "I'd be happy to explain!") {
		t.Errorf("non-overridden key should keep default text, got %q", explain)
	}
}

func TestBootstrap_BlankOverrideFails(t *testing.T) {
	override := catalog.NewFSStore(fstest.MapFS{
		catalog.KeyWelcome: {Data: []byte("   \n")},
	})

	c := catalog.NewCatalog(catalog.Defaults(), override)
	err := c.Bootstrap(context.Background())
	if !errors.Is(err, catalog.ErrMissingKey) {
		t.Errorf("Bootstrap() error = %v, want ErrMissingKey", err)
	}
}

func TestBootstrap_MissingRequiredKey(t *testing.T) {
	c := catalog.NewCatalog(catalog.NewFSStore(fstest.MapFS{
		catalog.KeyWelcome: {Data: []byte("hi")},
	}))

	err := c.Bootstrap(context.Background())
	if !errors.Is(err, catalog.ErrMissingKey) {
		t.Errorf("Bootstrap() error = %v, want ErrMissingKey", err)
	}
}

func TestCatalog_Text_UnknownKey(t *testing.T) {
	cfg := catalog.DefaultConfig()
	c, err := catalog.New(context.Background(), &cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := c.Text("does/not/exist.md"); !errors.Is(err, catalog.ErrKeyNotFound) {
		t.Errorf("Text() error = %v, want ErrKeyNotFound", err)
	}
	if c.Has("does/not/exist.md") {
		t.Error("Has() = true for unknown key")
	}
}

func TestCatalog_Keys_Sorted(t *testing.T) {
	cfg := catalog.DefaultConfig()
	c, err := catalog.New(context.Background(), &cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	keys := c.Keys()
	for i := 1; i < len(keys); i++ {
		if keys[i-1] > keys[i] {
			t.Fatalf("Keys() not sorted: %v", keys)
		}
	}
	if len(keys) < len(catalog.RequiredKeys) {
		t.Errorf("got %d keys, want at least %d", len(keys), len(catalog.RequiredKeys))
	}
}

func TestCatalog_ConcurrentReads(t *testing.T) {
	cfg := catalog.DefaultConfig()
	c, err := catalog.New(context.Background(), &cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for range n {
		go func() {
			defer wg.Done()
			if _, err := c.Text(catalog.KeyReplyTest); err != nil {
				t.Errorf("Text() error = %v", err)
			}
		}()
	}
	wg.Wait()
}
