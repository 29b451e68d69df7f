// Package config loads application configuration from YAML.
package config

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/chmouel/lazyfilm/internal/theme"
	"gopkg.in/yaml.v3"
)

// Frame rate limits, in frames per second.
const (
	DefaultFrameRate = 30
	MinFrameRate     = 1
	MaxFrameRate     = 120
)

// DefaultKeyRepeatDelay is the default cooldown between accepted keystrokes.
const DefaultKeyRepeatDelay = 125 * time.Millisecond

// AppConfig defines the global lazyfilm configuration options.
type AppConfig struct {
	Theme          string
	Catalog        string
	DebugLog       string
	FrameRate      int
	KeyRepeatDelay time.Duration
	ShowIcons      bool
	WatchConfig    bool

	// Path is the configuration file that was read, empty when none was found.
	Path string

	raw map[string]any
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Theme:          theme.DefaultDark(),
		FrameRate:      DefaultFrameRate,
		KeyRepeatDelay: DefaultKeyRepeatDelay,
		ShowIcons:      true,
		WatchConfig:    true,
	}
}

// FrameInterval returns the time between two frames.
func (c *AppConfig) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}

func coerceBool(value any, defaultVal bool) bool {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case string:
		text := strings.ToLower(strings.TrimSpace(v))
		switch text {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return defaultVal
}

func coerceInt(value any, defaultVal int) int {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case bool:
		return defaultVal
	case int:
		return v
	case string:
		text := strings.TrimSpace(v)
		if text == "" {
			return defaultVal
		}
		if i, err := strconv.Atoi(text); err == nil {
			return i
		}
	}
	return defaultVal
}

func coerceString(value any) string {
	s, ok := value.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

func parseConfig(data map[string]any) *AppConfig {
	cfg := DefaultConfig()
	cfg.raw = data

	if name := NormalizeThemeName(coerceString(data["theme"])); name != "" {
		cfg.Theme = name
	}

	if catalog := coerceString(data["catalog"]); catalog != "" {
		if expanded, err := expandPath(catalog); err == nil {
			cfg.Catalog = expanded
		}
	}

	if debugLog := coerceString(data["debug_log"]); debugLog != "" {
		if expanded, err := expandPath(debugLog); err == nil {
			cfg.DebugLog = expanded
		}
	}

	cfg.FrameRate = coerceInt(data["frame_rate"], DefaultFrameRate)
	if cfg.FrameRate < MinFrameRate || cfg.FrameRate > MaxFrameRate {
		cfg.FrameRate = DefaultFrameRate
	}

	delay := coerceInt(data["key_repeat_delay"], int(DefaultKeyRepeatDelay/time.Millisecond))
	if delay < 0 {
		delay = int(DefaultKeyRepeatDelay / time.Millisecond)
	}
	cfg.KeyRepeatDelay = time.Duration(delay) * time.Millisecond

	cfg.ShowIcons = coerceBool(data["show_icons"], true)
	cfg.WatchConfig = coerceBool(data["watch_config"], true)

	return cfg
}

func getConfigDir() string {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

// ConfigBase returns the directory holding the lazyfilm configuration.
func ConfigBase() string {
	return filepath.Clean(filepath.Join(getConfigDir(), "lazyfilm"))
}

// LoadConfig reads the application configuration from a YAML file.
// Without configPath the default locations are tried; a missing file yields the defaults.
func LoadConfig(configPath string) (*AppConfig, error) {
	configBase := ConfigBase()

	var paths []string

	if configPath != "" {
		expanded, err := expandPath(configPath)
		if err != nil {
			return DefaultConfig(), err
		}
		absPath, err := filepath.Abs(expanded)
		if err != nil {
			return DefaultConfig(), err
		}
		if !isPathWithin(configBase, absPath) {
			return DefaultConfig(), fmt.Errorf("config path must reside inside %s", configBase)
		}
		paths = []string{absPath}
	} else {
		paths = []string{
			filepath.Join(configBase, "config.yaml"),
			filepath.Join(configBase, "config.yml"),
		}
	}

	for _, path := range paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		// #nosec G304 -- path is constrained to the config directory after validation
		data, err := os.ReadFile(path)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("failed to read config: %w", err)
		}

		var yamlData map[string]any
		if err := yaml.Unmarshal(data, &yamlData); err != nil {
			return DefaultConfig(), fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		if yamlData == nil {
			yamlData = map[string]any{}
		}

		cfg := parseConfig(yamlData)
		cfg.Path = path
		return cfg, nil
	}

	return DefaultConfig(), nil
}

// ApplyOverrides layers --config lf.key=value overrides on top of the loaded values.
func (c *AppConfig) ApplyOverrides(overrides []string) error {
	if len(overrides) == 0 {
		return nil
	}
	parsed, err := parseCLIConfigOverrides(overrides)
	if err != nil {
		return err
	}

	merged := make(map[string]any, len(c.raw)+len(parsed))
	maps.Copy(merged, c.raw)
	maps.Copy(merged, parsed)

	path := c.Path
	*c = *parseConfig(merged)
	c.Path = path
	return nil
}

func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[1:])
	}
	return os.ExpandEnv(path), nil
}

func isPathWithin(base, target string) bool {
	base = filepath.Clean(base)
	target = filepath.Clean(target)

	rel, err := filepath.Rel(base, target)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return false
	}
	return true
}

// NormalizeThemeName returns the canonical theme name if it is supported.
func NormalizeThemeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, known := range theme.AvailableThemes() {
		if name == known {
			return name
		}
	}
	return ""
}
