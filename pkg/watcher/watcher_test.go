package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultsDebounce(t *testing.T) {
	w, err := New([]string{filepath.Join(t.TempDir(), "a.toml")}, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultDebounce, w.debounce)
	require.NoError(t, w.fsw.Close())
}

func TestWatchTriggersOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spokeo.toml")
	require.NoError(t, os.WriteFile(path, []byte("[broker]\n"), 0o644))

	w, err := New([]string{path}, 50*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var calls atomic.Int32
	triggered := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- w.Watch(ctx, func() {
			calls.Add(1)
			select {
			case triggered <- struct{}{}:
			default:
			}
		})
	}()

	// Give the watcher time to register, then burst a few writes.
	time.Sleep(200 * time.Millisecond)
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("[broker]\nid = \"spokeo\"\n"), 0o644))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-triggered:
	case <-ctx.Done():
		t.Fatal("expected onChange to fire")
	}

	cancel()
	require.NoError(t, <-done)
	// The burst debounces into a small number of callbacks, not one per write.
	assert.LessOrEqual(t, calls.Load(), int32(2))
}

func TestWatchIgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "watched.toml")
	unrelated := filepath.Join(dir, "unrelated.toml")
	require.NoError(t, os.WriteFile(watched, []byte("[broker]\n"), 0o644))
	require.NoError(t, os.WriteFile(unrelated, []byte("[broker]\n"), 0o644))

	w, err := New([]string{watched}, 50*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- w.Watch(ctx, func() { calls.Add(1) })
	}()

	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(unrelated, []byte("[broker]\nid = \"x\"\n"), 0o644))

	<-ctx.Done()
	require.NoError(t, <-done)
	assert.Zero(t, calls.Load())
}
