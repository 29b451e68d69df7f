// Package main provides CLI command definitions for lazyfilm.
package main

import (
	"context"
	"fmt"
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/chmouel/lazyfilm/internal/buildinfo"
	filmcli "github.com/chmouel/lazyfilm/internal/cli"
	"github.com/chmouel/lazyfilm/internal/config"
	"github.com/chmouel/lazyfilm/internal/log"
	"github.com/chmouel/lazyfilm/internal/theme"
)

func listCommand() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "Search the catalog without starting the browser",
		Action:  handleListAction,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "genre",
				Aliases: []string{"g"},
				Usage:   "Require a genre (repeatable)",
			},
			&cli.IntFlag{
				Name:  "from",
				Usage: "Earliest release year, inclusive",
			},
			&cli.IntFlag{
				Name:  "to",
				Usage: "Latest release year, inclusive",
			},
			&cli.StringFlag{
				Name:  "actor",
				Usage: "Match part of a cast member's name",
			},
			&cli.StringFlag{
				Name:  "director",
				Usage: "Match part of the director's name",
			},
			&cli.StringFlag{
				Name:  "title",
				Usage: "Match part of the title",
			},
			&cli.StringFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   "Match title, director or cast",
			},
			&cli.BoolFlag{
				Name:    "pristine",
				Aliases: []string{"p"},
				Usage:   "Output titles only (one per line, suitable for scripting)",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output as JSON",
			},
		},
	}
}

func validateListFlags(cmd *cli.Command) error {
	if cmd.Bool("pristine") && cmd.Bool("json") {
		return fmt.Errorf("--pristine and --json are mutually exclusive")
	}
	return nil
}

// handleListAction handles the list subcommand action.
func handleListAction(_ context.Context, cmd *cli.Command) error {
	defer func() {
		_ = log.Close()
	}()
	if err := validateListFlags(cmd); err != nil {
		return err
	}

	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	setupDebugLog(cfg.DebugLog)

	films, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	found, err := filmcli.Search(films, filmcli.SearchOptions{
		Genres:   cmd.StringSlice("genre"),
		From:     int(cmd.Int("from")),
		To:       int(cmd.Int("to")),
		Actor:    cmd.String("actor"),
		Director: cmd.String("director"),
		Title:    cmd.String("title"),
		Query:    cmd.String("query"),
	}, log.Component("list"))
	if err != nil {
		return err
	}

	out := cmd.Root().Writer
	switch {
	case cmd.Bool("json"):
		return filmcli.WriteJSON(out, found)
	case cmd.Bool("pristine"):
		return filmcli.WritePristine(out, found)
	default:
		return filmcli.WriteTable(out, found)
	}
}

func genresCommand() *cli.Command {
	return &cli.Command{
		Name:  "genres",
		Usage: "List the genres used by --genre",
		Action: func(_ context.Context, cmd *cli.Command) error {
			return filmcli.WriteGenres(cmd.Root().Writer)
		},
	}
}

func themesCommand() *cli.Command {
	return &cli.Command{
		Name:  "themes",
		Usage: "List available UI themes",
		Action: func(_ context.Context, cmd *cli.Command) error {
			names := theme.AvailableThemes()
			slices.Sort(names)
			out := cmd.Root().Writer
			for _, name := range names {
				marker := ""
				if name == config.DefaultConfig().Theme {
					marker = " (default)"
				}
				if _, err := fmt.Fprintf(out, "%s%s\n", name, marker); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print build information",
		Action: func(_ context.Context, cmd *cli.Command) error {
			buildinfo.Enrich()
			_, err := fmt.Fprintln(cmd.Root().Writer, buildinfo.Summary())
			return err
		},
	}
}
