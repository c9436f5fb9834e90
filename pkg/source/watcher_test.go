package source

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

func TestWatcherFiresOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o600))

	var fired atomic.Int32
	w := NewWatcher(path, func() { fired.Add(1) })
	w.SetDebounce(20 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Watch(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	// Give the watcher a moment to register before writing.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(`[{"name":"a"}]`), 0o600))

	require.Eventually(t, func() bool {
		return fired.Load() >= 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWatcherDebouncesBursts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o600))

	var fired atomic.Int32
	w := NewWatcher(path, func() { fired.Add(1) })
	w.SetDebounce(100 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Watch(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	time.Sleep(50 * time.Millisecond)
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o600))
		time.Sleep(10 * time.Millisecond)
	}

	require.Eventually(t, func() bool {
		return fired.Load() >= 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.EqualValues(t, 1, fired.Load(), "burst of writes should coalesce into one callback")
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tools.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o600))

	var fired atomic.Int32
	w := NewWatcher(path, func() { fired.Add(1) })
	w.SetDebounce(20 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Watch(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte(`{}`), 0o600))

	time.Sleep(200 * time.Millisecond)
	assert.EqualValues(t, 0, fired.Load())
}

func TestWatcherStopsOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o600))

	w := NewWatcher(path, func() {})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Watch(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}
