package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, "dracula", cfg.Theme)
	assert.Equal(t, 30, cfg.FrameRate)
	assert.Equal(t, 125*time.Millisecond, cfg.KeyRepeatDelay)
	assert.True(t, cfg.ShowIcons)
	assert.True(t, cfg.WatchConfig)
	assert.Empty(t, cfg.Catalog)
	assert.Empty(t, cfg.DebugLog)
	assert.Empty(t, cfg.Path)
	assert.Equal(t, time.Second/30, cfg.FrameInterval())
}

func TestCoerceBool(t *testing.T) {
	tests := []struct {
		name       string
		input      any
		defaultVal bool
		expected   bool
	}{
		{name: "nil with default true", input: nil, defaultVal: true, expected: true},
		{name: "nil with default false", input: nil, defaultVal: false, expected: false},
		{name: "bool true", input: true, defaultVal: false, expected: true},
		{name: "int 0", input: 0, defaultVal: true, expected: false},
		{name: "string yes", input: " Yes ", defaultVal: false, expected: true},
		{name: "string off", input: "off", defaultVal: true, expected: false},
		{name: "garbage keeps default", input: "maybe", defaultVal: true, expected: true},
		{name: "float keeps default", input: 1.5, defaultVal: false, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, coerceBool(tt.input, tt.defaultVal))
		})
	}
}

func TestCoerceInt(t *testing.T) {
	tests := []struct {
		name       string
		input      any
		defaultVal int
		expected   int
	}{
		{name: "nil", input: nil, defaultVal: 7, expected: 7},
		{name: "int", input: 42, defaultVal: 7, expected: 42},
		{name: "bool", input: true, defaultVal: 7, expected: 7},
		{name: "numeric string", input: " 60 ", defaultVal: 7, expected: 60},
		{name: "empty string", input: "", defaultVal: 7, expected: 7},
		{name: "invalid string", input: "fast", defaultVal: 7, expected: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, coerceInt(tt.input, tt.defaultVal))
		})
	}
}

func TestParseConfig(t *testing.T) {
	t.Run("all keys", func(t *testing.T) {
		cfg := parseConfig(map[string]any{
			"theme":            "Nord",
			"catalog":          "/tmp/films.yaml",
			"debug_log":        "/tmp/lazyfilm.log",
			"frame_rate":       60,
			"key_repeat_delay": 0,
			"show_icons":       false,
			"watch_config":     "no",
		})
		assert.Equal(t, "nord", cfg.Theme)
		assert.Equal(t, "/tmp/films.yaml", cfg.Catalog)
		assert.Equal(t, "/tmp/lazyfilm.log", cfg.DebugLog)
		assert.Equal(t, 60, cfg.FrameRate)
		assert.Zero(t, cfg.KeyRepeatDelay)
		assert.False(t, cfg.ShowIcons)
		assert.False(t, cfg.WatchConfig)
	})

	t.Run("invalid values fall back to defaults", func(t *testing.T) {
		cfg := parseConfig(map[string]any{
			"theme":            "solarized-neon",
			"frame_rate":       500,
			"key_repeat_delay": -5,
			"catalog":          42,
		})
		assert.Equal(t, "dracula", cfg.Theme)
		assert.Equal(t, DefaultFrameRate, cfg.FrameRate)
		assert.Equal(t, DefaultKeyRepeatDelay, cfg.KeyRepeatDelay)
		assert.Empty(t, cfg.Catalog)
	})

	t.Run("home expansion", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		cfg := parseConfig(map[string]any{"catalog": "~/films.yaml"})
		assert.Equal(t, filepath.Join(home, "films.yaml"), cfg.Catalog)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("no config file returns defaults", func(t *testing.T) {
		tmpDir := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", tmpDir)

		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig().Theme, cfg.Theme)
		assert.Empty(t, cfg.Path)
	})

	t.Run("valid config file", func(t *testing.T) {
		tmpDir := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", tmpDir)
		configPath := filepath.Join(tmpDir, "lazyfilm", "config.yml")
		require.NoError(t, os.MkdirAll(filepath.Dir(configPath), 0o750))
		require.NoError(t, os.WriteFile(configPath, []byte("theme: gruvbox-dark\nframe_rate: 24\n"), 0o600))

		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, "gruvbox-dark", cfg.Theme)
		assert.Equal(t, 24, cfg.FrameRate)
		assert.Equal(t, configPath, cfg.Path)
	})

	t.Run("empty file", func(t *testing.T) {
		tmpDir := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", tmpDir)
		configPath := filepath.Join(tmpDir, "lazyfilm", "config.yaml")
		require.NoError(t, os.MkdirAll(filepath.Dir(configPath), 0o750))
		require.NoError(t, os.WriteFile(configPath, nil, 0o600))

		cfg, err := LoadConfig(configPath)
		require.NoError(t, err)
		assert.Equal(t, DefaultFrameRate, cfg.FrameRate)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		tmpDir := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", tmpDir)
		configPath := filepath.Join(tmpDir, "lazyfilm", "config.yaml")
		require.NoError(t, os.MkdirAll(filepath.Dir(configPath), 0o750))
		require.NoError(t, os.WriteFile(configPath, []byte("theme: [nord"), 0o600))

		cfg, err := LoadConfig(configPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config")
		assert.Equal(t, DefaultConfig().Theme, cfg.Theme)
	})

	t.Run("path outside config dir", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		outside := filepath.Join(t.TempDir(), "config.yaml")

		_, err := LoadConfig(outside)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must reside inside")
	})
}

func TestApplyOverrides(t *testing.T) {
	cfg := parseConfig(map[string]any{"theme": "nord", "frame_rate": 24})
	cfg.Path = "/etc/lazyfilm/config.yaml"

	require.NoError(t, cfg.ApplyOverrides([]string{"lf.theme=catppuccin-latte", "lf.show_icons=false"}))
	assert.Equal(t, "catppuccin-latte", cfg.Theme)
	assert.False(t, cfg.ShowIcons)
	assert.Equal(t, 24, cfg.FrameRate, "file values survive")
	assert.Equal(t, "/etc/lazyfilm/config.yaml", cfg.Path)

	require.NoError(t, cfg.ApplyOverrides(nil))

	err := cfg.ApplyOverrides([]string{"theme=nord"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `must start with "lf."`)
}

func TestParseCLIConfigOverrides(t *testing.T) {
	got, err := parseCLIConfigOverrides([]string{"lf.frame_rate=60", "lf.theme=nord", "lf.theme=dracula-light", "lf.catalog=a=b.yaml"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"frame_rate": "60",
		"theme":      "dracula-light",
		"catalog":    "a=b.yaml",
	}, got)

	_, err = parseCLIConfigOverrides([]string{"lf.theme"})
	assert.ErrorContains(t, err, "invalid config override")

	_, err = parseCLIConfigOverrides([]string{"lf.=x"})
	assert.ErrorContains(t, err, "empty config key")
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("LAZYFILM_TEST_DIR", "/data")

	got, err := expandPath("~/films.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "films.yaml"), got)

	got, err = expandPath("$LAZYFILM_TEST_DIR/films.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/data/films.yaml", got)
}

func TestIsPathWithin(t *testing.T) {
	assert.True(t, isPathWithin("/a/b", "/a/b"))
	assert.True(t, isPathWithin("/a/b", "/a/b/c.yaml"))
	assert.False(t, isPathWithin("/a/b", "/a/bc/c.yaml"))
	assert.False(t, isPathWithin("/a/b", "/a"))
}

func TestNormalizeThemeName(t *testing.T) {
	assert.Equal(t, "nord", NormalizeThemeName(" NORD "))
	assert.Empty(t, NormalizeThemeName("monokai"))
}
