package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnv(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// startWatcher watches path and returns the change channel once the
// watcher has had time to register.
func startWatcher(t *testing.T, path string, opts ...Option) <-chan struct{} {
	t.Helper()
	w, err := NewFileWatcher(opts...)
	require.NoError(t, err)
	t.Cleanup(func() { w.Close() })

	require.NoError(t, w.Add(path))
	changes := w.Start()
	time.Sleep(50 * time.Millisecond)
	return changes
}

func requireNotified(t *testing.T, changes <-chan struct{}) {
	t.Helper()
	select {
	case <-changes:
	case <-time.After(2 * time.Second):
		t.Fatal("expected change notification")
	}
}

func assertQuiet(t *testing.T, changes <-chan struct{}, wait time.Duration) {
	t.Helper()
	select {
	case <-changes:
		t.Error("unexpected change notification")
	case <-time.After(wait):
	}
}

func TestFileWatcher(t *testing.T) {
	t.Run("detects file changes", func(t *testing.T) {
		envFile := filepath.Join(t.TempDir(), ".env")
		writeEnv(t, envFile, "KEY=value\n")

		changes := startWatcher(t, envFile)
		writeEnv(t, envFile, "KEY=changed\n")
		requireNotified(t, changes)
	})

	t.Run("debounces rapid changes", func(t *testing.T) {
		envFile := filepath.Join(t.TempDir(), ".env")
		writeEnv(t, envFile, "KEY=value\n")

		changes := startWatcher(t, envFile)
		for i := 0; i < 5; i++ {
			writeEnv(t, envFile, "KEY=value"+string(rune('0'+i))+"\n")
			time.Sleep(50 * time.Millisecond)
		}

		requireNotified(t, changes)
		assertQuiet(t, changes, 600*time.Millisecond)
	})

	t.Run("watches non-existent file directory", func(t *testing.T) {
		envFile := filepath.Join(t.TempDir(), ".env")

		changes := startWatcher(t, envFile)
		writeEnv(t, envFile, "KEY=value\n")
		requireNotified(t, changes)
	})

	t.Run("Files returns watched files", func(t *testing.T) {
		envFile := filepath.Join(t.TempDir(), ".env")

		w, err := NewFileWatcher()
		require.NoError(t, err)
		defer w.Close()

		require.NoError(t, w.Add(envFile))
		require.NoError(t, w.Add(envFile))
		assert.Len(t, w.Files(), 1)
	})

	t.Run("ignores other files in the directory", func(t *testing.T) {
		tmpDir := t.TempDir()

		changes := startWatcher(t, filepath.Join(tmpDir, ".env"), WithDebounce(20*time.Millisecond))
		writeEnv(t, filepath.Join(tmpDir, "environment-variables.md"), "| Key |\n")
		assertQuiet(t, changes, 300*time.Millisecond)
	})

	t.Run("Close is idempotent", func(t *testing.T) {
		w, err := NewFileWatcher()
		require.NoError(t, err)
		require.NoError(t, w.Close())
		assert.NoError(t, w.Close())
	})
}

func TestFileWatcherRun(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	writeEnv(t, envFile, "KEY=value\n")

	w, err := NewFileWatcher(WithDebounce(20 * time.Millisecond))
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Add(envFile))

	stop := errors.New("stop")
	var calls atomic.Int32
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	go func() {
		time.Sleep(50 * time.Millisecond)
		os.WriteFile(envFile, []byte("KEY=changed\n"), 0644)
	}()

	err = w.Run(ctx, func() error {
		calls.Add(1)
		return stop
	})
	require.ErrorIs(t, err, stop)
	assert.Equal(t, int32(1), calls.Load())
}

func TestFileWatcherRun_StopsOnCancel(t *testing.T) {
	w, err := NewFileWatcher()
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Add(filepath.Join(t.TempDir(), ".env")))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, w.Run(ctx, func() error { return errors.New("not called") }))
}
