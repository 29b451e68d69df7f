// Package catalog loads the fixed film list shown by the browser.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/chmouel/lazyfilm/internal/models"
	"gopkg.in/yaml.v3"
)

// MaxFilms is the poster grid capacity (5 columns by 2 rows).
const MaxFilms = 10

const (
	minYear = 1888
	maxYear = 2100
)

//go:embed default.yaml
var defaultCatalog []byte

type fileFormat struct {
	Films []filmRecord `yaml:"films"`
}

type filmRecord struct {
	Title       string   `yaml:"title"`
	Year        int      `yaml:"year"`
	Director    string   `yaml:"director"`
	Genres      []string `yaml:"genres"`
	Cast        []string `yaml:"cast"`
	Description string   `yaml:"description"`
	Poster      string   `yaml:"poster"`
}

// ValidationError lists every malformed record of a catalog.
type ValidationError struct {
	Source string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid catalog %s: %v", e.Source, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Load reads the catalog at path, or the embedded default catalog when path is empty.
func Load(path string) ([]*models.Film, error) {
	if path == "" {
		return Parse("default", defaultCatalog)
	}
	// #nosec G304 -- the catalog path is chosen by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(path, data)
}

// Default returns the embedded catalog.
func Default() []*models.Film {
	films, err := Parse("default", defaultCatalog)
	if err != nil {
		panic(err)
	}
	return films
}

// Parse decodes and validates a YAML catalog. Film ids are assigned 0..n-1 in file order.
func Parse(source string, data []byte) ([]*models.Film, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file fileFormat
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", source, err)
	}

	switch n := len(file.Films); {
	case n == 0:
		return nil, &ValidationError{Source: source, Err: errors.New("no films")}
	case n > MaxFilms:
		return nil, &ValidationError{Source: source, Err: fmt.Errorf("%d films, at most %d fit the poster grid", n, MaxFilms)}
	}

	var errs []error
	films := make([]*models.Film, 0, len(file.Films))
	nextID := 0
	for i, rec := range file.Films {
		info, err := rec.toInfo()
		if err != nil {
			errs = append(errs, fmt.Errorf("film #%d (%q): %w", i+1, rec.Title, err))
			continue
		}
		films = append(films, models.NewFilm(nextID, info))
		nextID++
	}
	if len(errs) > 0 {
		return nil, &ValidationError{Source: source, Err: errors.Join(errs...)}
	}
	return films, nil
}

func (r filmRecord) toInfo() (models.FilmInfo, error) {
	var errs []error

	title := strings.TrimSpace(r.Title)
	if title == "" {
		errs = append(errs, errors.New("missing title"))
	}
	director := strings.TrimSpace(r.Director)
	if director == "" {
		errs = append(errs, errors.New("missing director"))
	}
	if r.Year < minYear || r.Year > maxYear {
		errs = append(errs, fmt.Errorf("year %d outside %d..%d", r.Year, minYear, maxYear))
	}

	var genres models.GenreSet
	if len(r.Genres) == 0 {
		errs = append(errs, errors.New("no genres"))
	}
	for _, name := range r.Genres {
		g, err := models.ParseGenre(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if genres.Has(g) {
			errs = append(errs, fmt.Errorf("duplicate genre %q", g))
			continue
		}
		genres = genres.With(g)
	}

	var cast [models.CastSize]string
	if len(r.Cast) != models.CastSize {
		errs = append(errs, fmt.Errorf("cast has %d names, want %d", len(r.Cast), models.CastSize))
	} else {
		for i, name := range r.Cast {
			cast[i] = strings.TrimSpace(name)
		}
	}

	if len(errs) > 0 {
		return models.FilmInfo{}, errors.Join(errs...)
	}

	return models.FilmInfo{
		Title:       title,
		ReleaseYear: r.Year,
		Director:    director,
		Genres:      genres,
		Cast:        cast,
		Description: strings.TrimSpace(r.Description),
		Poster:      strings.TrimSpace(r.Poster),
	}, nil
}

// YearBounds returns the smallest and largest release year of films.
// Both are zero for an empty list.
func YearBounds(films []*models.Film) (lo, hi int) {
	for i, f := range films {
		year := f.ReleaseYear()
		if i == 0 || year < lo {
			lo = year
		}
		if i == 0 || year > hi {
			hi = year
		}
	}
	return lo, hi
}
