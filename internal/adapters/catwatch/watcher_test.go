package catwatch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForChange(t *testing.T, ch <-chan string) string {
	t.Helper()
	select {
	case path := <-ch:
		return path
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change notification")
		return ""
	}
}

func TestWatcher_ReportsWriteToWatchedFile(t *testing.T) {
	dir := t.TempDir()
	catalog := filepath.Join(dir, "industries.json")
	require.NoError(t, os.WriteFile(catalog, []byte("[]"), 0o644))

	w, err := New([]string{catalog})
	require.NoError(t, err)
	defer w.Stop()

	changes := make(chan string, 4)
	go w.Run(func(path string) { changes <- path })

	// give the run loop a moment to start draining events
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(catalog, []byte(`[{"id":"welding"}]`), 0o644))

	got := waitForChange(t, changes)
	assert.Equal(t, catalog, got)
}

func TestWatcher_SeesAtomicRenameSave(t *testing.T) {
	dir := t.TempDir()
	catalog := filepath.Join(dir, "products.json")
	require.NoError(t, os.WriteFile(catalog, []byte("[]"), 0o644))

	w, err := New([]string{catalog})
	require.NoError(t, err)
	defer w.Stop()

	changes := make(chan string, 4)
	go w.Run(func(path string) { changes <- path })

	time.Sleep(50 * time.Millisecond)
	tmp := filepath.Join(dir, "products.json.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte(`[{"id":"sg-new"}]`), 0o644))
	require.NoError(t, os.Rename(tmp, catalog))

	assert.Equal(t, catalog, waitForChange(t, changes))
}

func TestWatcher_IgnoresUnwatchedSiblings(t *testing.T) {
	dir := t.TempDir()
	catalog := filepath.Join(dir, "intents.json")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(catalog, []byte("[]"), 0o644))

	w, err := New([]string{catalog})
	require.NoError(t, err)
	defer w.Stop()

	changes := make(chan string, 4)
	go w.Run(func(path string) { changes <- path })

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(other, []byte("scratch"), 0o644))

	select {
	case path := <-changes:
		t.Fatalf("unexpected notification for %s", path)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	catalog := filepath.Join(dir, "knowledge.json")
	require.NoError(t, os.WriteFile(catalog, []byte("[]"), 0o644))

	w, err := New([]string{catalog})
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		w.Run(func(string) {})
		close(done)
	}()

	w.Stop()
	w.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("run loop did not exit after Stop")
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	_, err := New([]string{filepath.Join(t.TempDir(), "missing", "x.json")})
	assert.Error(t, err)
}
