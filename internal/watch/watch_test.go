package watch_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/db47h/sketchnet/internal/watch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	sketch := filepath.Join(dir, "adder.toml")
	require.NoError(t, os.WriteFile(sketch, []byte("# empty\n"), 0o644))

	changed := make(chan []string, 4)
	w, err := watch.New(50*time.Millisecond, "*.toml", nil, func(paths []string) {
		changed <- paths
	})
	require.NoError(t, err)
	require.NoError(t, w.Watch(sketch))
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(sketch, []byte("# edit\n"), 0o644))
	}

	select {
	case paths := <-changed:
		assert.Equal(t, []string{sketch}, paths)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestNew_badPattern(t *testing.T) {
	_, err := watch.New(time.Millisecond, "[", nil, func([]string) {})
	assert.Error(t, err)
}

func TestWatcher_closeUnstarted(t *testing.T) {
	w, err := watch.New(time.Millisecond, "", nil, func([]string) {})
	require.NoError(t, err)
	assert.Error(t, w.Watch(filepath.Join(t.TempDir(), "missing")))
	assert.NoError(t, w.Close())
}

func TestWatcher_closeWaitsForCallback(t *testing.T) {
	dir := t.TempDir()
	sketch := filepath.Join(dir, "adder.toml")
	require.NoError(t, os.WriteFile(sketch, []byte("# empty\n"), 0o644))

	entered := make(chan struct{}, 1)
	release := make(chan struct{})
	calls := 0
	w, err := watch.New(10*time.Millisecond, "*.toml", nil, func([]string) {
		calls++
		select {
		case entered <- struct{}{}:
		default:
		}
		<-release
	})
	require.NoError(t, err)
	require.NoError(t, w.Watch(dir))
	require.NoError(t, os.WriteFile(sketch, []byte("# edit\n"), 0o644))

	select {
	case <-entered:
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
	closed := make(chan struct{})
	go func() {
		w.Close()
		close(closed)
	}()
	select {
	case <-closed:
		t.Fatal("Close returned while onChange was running")
	case <-time.After(100 * time.Millisecond):
	}
	close(release)
	select {
	case <-closed:
	case <-time.After(5 * time.Second):
		t.Fatal("Close did not return")
	}

	n := calls
	require.NoError(t, os.WriteFile(sketch, []byte("# after close\n"), 0o644))
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, n, calls)
}
