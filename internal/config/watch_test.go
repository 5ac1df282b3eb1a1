package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatch(t *testing.T) {
	tmpDir := isolate(t)

	path := filepath.Join(tmpDir, "list.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items:\n  - text: one\n"), 0o644))
	// Make sure the next write moves the modification time forward.
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(path, past, past))

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	changes := make(chan *Config, 4)
	errs := make(chan error, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, tmpDir, path,
			func(cfg *Config) { changes <- cfg },
			func(err error) { errs <- err },
		)
	}()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("items:\n  - text: one\n  - text: two\n"), 0o644))

	select {
	case cfg := <-changes:
		require.Len(t, cfg.Items, 2)
		require.Equal(t, "two", cfg.Items[1].Text)
	case err := <-errs:
		t.Fatalf("unexpected reload error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the configuration to reload")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	tmpDir := isolate(t)

	err := Watch(t.Context(), tmpDir, filepath.Join(tmpDir, "missing", "list.yaml"), func(*Config) {}, func(error) {})
	require.Error(t, err)
}
