package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_SignalsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme:\n  preset: default\n"), 0644))

	w, err := New(Config{Path: path, DebounceDur: 50 * time.Millisecond})
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	ch, err := w.Start()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("theme:\n  preset: nord\n"), 0644))

	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("expected change signal after write")
	}
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: 1\n"), 0644))

	w, err := New(Config{Path: path, DebounceDur: 100 * time.Millisecond})
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	ch, err := w.Start()
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("a: 2\n"), 0644))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("expected one change signal after burst")
	}

	select {
	case <-ch:
		t.Fatal("burst should coalesce into a single signal")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: 1\n"), 0644))

	w, err := New(Config{Path: path, DebounceDur: 50 * time.Millisecond})
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	ch, err := w.Start()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644))

	select {
	case <-ch:
		t.Fatal("unrelated file should not trigger a signal")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_SurvivesAtomicRename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: 1\n"), 0644))

	w, err := New(Config{Path: path, DebounceDur: 50 * time.Millisecond})
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	ch, err := w.Start()
	require.NoError(t, err)

	tmp := filepath.Join(dir, ".tmp-save")
	require.NoError(t, os.WriteFile(tmp, []byte("a: 2\n"), 0644))
	require.NoError(t, os.Rename(tmp, path))

	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("expected change signal after rename-over save")
	}
}

func TestWatcher_StartBadDir(t *testing.T) {
	w, err := New(Config{Path: "/nonexistent-dir-for-test/config.yaml", DebounceDur: time.Millisecond})
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	_, err = w.Start()
	assert.Error(t, err)
}
