package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/chmouel/lazyfilm/internal/models"
)

// filmJSON represents the JSON output format for a film.
type filmJSON struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Year        int      `json:"year"`
	Director    string   `json:"director"`
	Genres      []string `json:"genres"`
	Cast        []string `json:"cast"`
	Description string   `json:"description,omitempty"`
}

// WriteJSON writes films as an indented JSON array.
func WriteJSON(w io.Writer, films []*models.Film) error {
	output := make([]filmJSON, 0, len(films))
	for _, f := range films {
		genres := make([]string, 0, f.Genres().Len())
		for _, g := range f.Genres().List() {
			genres = append(genres, g.String())
		}
		cast := f.Cast()
		output = append(output, filmJSON{
			ID:          f.ID(),
			Title:       f.Title(),
			Year:        f.ReleaseYear(),
			Director:    f.Director(),
			Genres:      genres,
			Cast:        cast[:],
			Description: f.Description(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// WriteTable writes films as an aligned table.
func WriteTable(w io.Writer, films []*models.Film) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TITLE\tYEAR\tDIRECTOR\tGENRES")

	for _, f := range films {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", f.Title(), f.ReleaseYear(), f.Director(), f.Genres())
	}

	return tw.Flush()
}

// WritePristine writes one title per line, suitable for scripting.
func WritePristine(w io.Writer, films []*models.Film) error {
	var sb strings.Builder
	for _, f := range films {
		sb.WriteString(f.Title())
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteGenres writes the genre vocabulary, one tag per line.
func WriteGenres(w io.Writer) error {
	for _, g := range models.AllGenres() {
		if _, err := fmt.Fprintln(w, g.String()); err != nil {
			return err
		}
	}
	return nil
}
