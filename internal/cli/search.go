// Package cli implements the non-interactive catalog commands.
package cli

import (
	"fmt"

	"github.com/chmouel/lazyfilm/internal/app/services"
	"github.com/chmouel/lazyfilm/internal/catalog"
	"github.com/chmouel/lazyfilm/internal/models"
	"github.com/chmouel/lazyfilm/internal/widget"
)

// SearchOptions mirrors the advanced search form. Zero values leave a
// criterion unset.
type SearchOptions struct {
	Genres   []string
	From     int
	To       int
	Actor    string
	Director string
	Title    string
	Query    string
}

// Search filters films with the same controls and pipeline the browser uses.
func Search(films []*models.Film, opts SearchOptions, logf func(string, ...any)) ([]*models.Film, error) {
	controls, err := buildControls(films, opts)
	if err != nil {
		return nil, err
	}
	return services.NewFilterPipeline(logf).Apply(films, controls), nil
}

func buildControls(films []*models.Film, opts SearchOptions) ([]widget.Widget, error) {
	var ids widget.IDSource
	var controls []widget.Widget

	for _, name := range opts.Genres {
		g, err := models.ParseGenre(name)
		if err != nil {
			return nil, err
		}
		toggle := widget.NewGenreToggle(&ids, g, 0, 0)
		toggle.SetOn(true)
		controls = append(controls, toggle)
	}

	if opts.From != 0 && opts.To != 0 && opts.From > opts.To {
		return nil, fmt.Errorf("--from %d is after --to %d", opts.From, opts.To)
	}
	// widen the range so a requested year is never clamped onto a catalog year
	lo, hi := catalog.YearBounds(films)
	for _, year := range []int{opts.From, opts.To} {
		if year != 0 {
			lo, hi = min(lo, year), max(hi, year)
		}
	}
	if opts.From != 0 {
		lower := widget.NewSlider(&ids, widget.SliderLower, lo, hi, 0, 1, 0)
		lower.SetValue(opts.From)
		controls = append(controls, lower)
	}
	if opts.To != 0 {
		upper := widget.NewSlider(&ids, widget.SliderUpper, lo, hi, 0, 1, 0)
		upper.SetValue(opts.To)
		controls = append(controls, upper)
	}

	for _, f := range []struct {
		flag  string
		usage widget.FieldUsage
		value string
	}{
		{"actor", widget.FieldActor, opts.Actor},
		{"director", widget.FieldDirector, opts.Director},
		{"title", widget.FieldTitle, opts.Title},
		{"query", widget.FieldGeneral, opts.Query},
	} {
		if f.value == "" {
			continue
		}
		field := widget.NewTextField(&ids, f.usage, "", 0, 0, 1, 1)
		field.SetValue(f.value)
		if field.Value() != f.value {
			return nil, fmt.Errorf("--%s %q: only letters, digits, spaces and -'.&: can be searched, at most %d characters",
				f.flag, f.value, widget.FieldCharLimit)
		}
		controls = append(controls, field)
	}
	return controls, nil
}
