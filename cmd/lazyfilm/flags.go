// Package main provides CLI flag definitions for lazyfilm.
package main

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/chmouel/lazyfilm/internal/catalog"
	"github.com/chmouel/lazyfilm/internal/config"
	"github.com/chmouel/lazyfilm/internal/models"
)

// globalFlags returns all global flags for the application.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "catalog",
			Usage: "Path to a YAML film catalog (defaults to the built-in catalog)",
		},
		&cli.StringFlag{
			Name:    "theme",
			Aliases: []string{"t"},
			Usage:   "Override the UI theme",
		},
		&cli.StringFlag{
			Name:  "debug-log",
			Usage: "Path to debug log file",
		},
		&cli.StringFlag{
			Name:  "config-file",
			Usage: "Path to configuration file",
		},
		&cli.StringSliceFlag{
			Name:    "config",
			Aliases: []string{"C"},
			Usage:   "Override config values (repeatable): --config=lf.key=value",
		},
	}
}

// flagOverrides turns the dedicated flags into config overrides so that an
// explicit --config value for the same key still wins.
func flagOverrides(cmd *cli.Command) ([]string, error) {
	var overrides []string
	if name := cmd.String("theme"); name != "" {
		normalized := config.NormalizeThemeName(name)
		if normalized == "" {
			return nil, fmt.Errorf("unknown theme %q", name)
		}
		overrides = append(overrides, "lf.theme="+normalized)
	}
	if path := cmd.String("catalog"); path != "" {
		overrides = append(overrides, "lf.catalog="+path)
	}
	if path := cmd.String("debug-log"); path != "" {
		overrides = append(overrides, "lf.debug_log="+path)
	}
	return append(overrides, cmd.StringSlice("config")...), nil
}

// loadConfig reads the configuration file and layers the command line on top.
// It returns the overrides so a config reload can apply them again.
func loadConfig(cmd *cli.Command) (*config.AppConfig, []string, error) {
	cfg, err := config.LoadConfig(cmd.String("config-file"))
	if err != nil {
		return nil, nil, fmt.Errorf("error loading config: %w", err)
	}

	overrides, err := flagOverrides(cmd)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.ApplyOverrides(overrides); err != nil {
		return nil, nil, fmt.Errorf("error applying config overrides: %w", err)
	}
	return cfg, overrides, nil
}

func loadCatalog(cfg *config.AppConfig) ([]*models.Film, error) {
	if cfg.Catalog == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(cfg.Catalog)
}
