package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigWatchServiceSignalsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: nord\n"), 0o600))

	w := NewConfigWatchService(nil)
	started, err := w.Start(path)
	require.NoError(t, err)
	require.True(t, started)
	t.Cleanup(w.Stop)

	again, err := w.Start(path)
	require.NoError(t, err)
	assert.False(t, again, "second start is a no-op")

	ch := w.NextEvent()
	require.NotNil(t, ch)
	assert.Nil(t, w.NextEvent(), "only one waiter at a time")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o600))
	require.NoError(t, os.WriteFile(path, []byte("theme: gruvbox-dark\n"), 0o600))

	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatal("no event for the config file")
	}
	w.ResetWaiting()
	assert.NotNil(t, w.NextEvent())
}

func TestConfigWatchServiceStartWithoutPath(t *testing.T) {
	w := NewConfigWatchService(nil)
	started, err := w.Start("")
	require.NoError(t, err)
	assert.False(t, started)
	assert.Nil(t, w.NextEvent())
	w.Stop()
}

func TestConfigWatchServiceMatches(t *testing.T) {
	w := &ConfigWatchService{Path: "/home/u/.config/lazyfilm/config.yaml"}
	assert.True(t, w.Matches("/home/u/.config/lazyfilm/config.yaml"))
	assert.True(t, w.Matches("/home/u/.config/lazyfilm/./config.yaml"))
	assert.False(t, w.Matches("/home/u/.config/lazyfilm/config.yml"))
	assert.False(t, w.Matches(""))
}

func TestConfigWatchServiceShouldReload(t *testing.T) {
	w := NewConfigWatchService(nil)
	now := time.Now()
	assert.True(t, w.ShouldReload(now))
	assert.False(t, w.ShouldReload(now.Add(ConfigWatchDebounce/2)))
	assert.True(t, w.ShouldReload(now.Add(2*ConfigWatchDebounce)))
}
