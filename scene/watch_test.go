package scene

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcher(t *testing.T) {
	dir := t.TempDir()

	watcher, err := NewWatcher(dir)
	require.NoError(t, err)

	// not a scene file
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0o644))

	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testScene), 0o644))

	select {
	case changed := <-watcher.Events:
		require.Equal(t, path, changed)
	case err := <-watcher.Errors:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		require.Fail(t, "no change reported")
	}

	require.NoError(t, watcher.Close())
	require.NoError(t, watcher.Close())

	// channels are closed after the watcher stopped
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-watcher.Events:
			return !ok
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
}

func TestWatcher_ReportsCompletedWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")

	watcher, err := NewWatcher(dir)
	require.NoError(t, err)

	defer func() { _ = watcher.Close() }()

	// an editor truncates the file and writes the new content shortly after
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(testScene), 0o644))

	select {
	case changed := <-watcher.Events:
		require.Equal(t, path, changed)

		scene, err := Load(changed)
		require.NoError(t, err)
		require.Len(t, scene.Bodies, 3)

	case err := <-watcher.Errors:
		require.NoError(t, err)

	case <-time.After(5 * time.Second):
		require.Fail(t, "no change reported")
	}

	// the burst is reported once
	select {
	case changed := <-watcher.Events:
		require.Fail(t, "unexpected second change", changed)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestNewWatcher_MissingDirectory(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}
