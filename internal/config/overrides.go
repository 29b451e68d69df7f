package config

import (
	"fmt"
	"strings"
)

const overridePrefix = "lf."

// parseCLIConfigOverrides parses --config=lf.key=value format.
// Returns a map suitable for parseConfig(); the last value of a repeated key wins.
func parseCLIConfigOverrides(overrides []string) (map[string]any, error) {
	result := make(map[string]any)

	for _, override := range overrides {
		// Parse "lf.key=value" format
		parts := strings.SplitN(override, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid config override: %q, expected format: lf.key=value (note: use = not space)", override)
		}

		fullKey := strings.TrimSpace(parts[0])
		if !strings.HasPrefix(fullKey, overridePrefix) {
			return nil, fmt.Errorf("config override key must start with %q: %q", overridePrefix, fullKey)
		}

		key := strings.TrimPrefix(fullKey, overridePrefix)
		if key == "" {
			return nil, fmt.Errorf("empty config key in override: %q", override)
		}
		result[key] = parts[1]
	}

	return result, nil
}
