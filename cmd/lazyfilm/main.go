// Package main is the entry point for the lazyfilm application.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/chmouel/lazyfilm/internal/app"
	"github.com/chmouel/lazyfilm/internal/buildinfo"
	"github.com/chmouel/lazyfilm/internal/log"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

var isTerminal = func(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int
}

func main() {
	buildinfo.Set(version, commit, date, builtBy)

	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:                  "lazyfilm",
		Usage:                 "Browse a film catalog in the terminal",
		Version:               buildinfo.Version(),
		EnableShellCompletion: true,
		Writer:                os.Stdout,
		ErrWriter:             os.Stderr,

		Flags: globalFlags(),

		Commands: []*cli.Command{
			listCommand(),
			genresCommand(),
			themesCommand(),
			versionCommand(),
		},

		Action: runTUI,
	}
}

// runTUI is the default action that launches the browser when no subcommand is given.
func runTUI(ctx context.Context, cmd *cli.Command) error {
	defer func() {
		_ = log.Close()
	}()

	if !isTerminal(os.Stdout) {
		return errors.New("lazyfilm needs an interactive terminal, use `lazyfilm list` for scripted output")
	}

	cfg, overrides, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	setupDebugLog(cfg.DebugLog)

	films, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	log.Printf("starting lazyfilm %s with %d films, theme %s", buildinfo.Version(), len(films), cfg.Theme)

	model := app.NewModel(cfg, films, overrides)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}

func setupDebugLog(path string) {
	if err := log.SetFile(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error opening debug log file %q: %v\n", path, err)
	}
}
