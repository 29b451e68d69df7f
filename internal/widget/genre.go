package widget

import (
	"github.com/chmouel/lazyfilm/internal/canvas"
	"github.com/chmouel/lazyfilm/internal/models"
	"github.com/chmouel/lazyfilm/internal/theme"
)

// GenreToggle keeps only films of its genre while switched on.
type GenreToggle struct {
	base
	genre models.Genre
}

// GenreToggleWidth returns the width a toggle for g occupies.
func GenreToggleWidth(g models.Genre) float64 {
	return float64(len(g.DisplayName()) + 2)
}

// NewGenreToggle creates a one-row toggle centred on (x, y).
func NewGenreToggle(ids *IDSource, g models.Genre, x, y float64) *GenreToggle {
	return &GenreToggle{base: newBase(ids, x, y, GenreToggleWidth(g), 1), genre: g}
}

// Genre returns the bound genre.
func (t *GenreToggle) Genre() models.Genre { return t.genre }

// Update flips the toggle when a press lands on it.
func (t *GenreToggle) Update(in Input) {
	if t.hover(in) {
		t.clicked = !t.clicked
	}
}

// SetOn switches the toggle without a pointer press.
func (t *GenreToggle) SetOn(on bool) { t.clicked = on }

// CanFilter reports whether the toggle is on.
func (t *GenreToggle) CanFilter() bool { return t.clicked }

// Filter keeps the films tagged with the toggle's genre.
func (t *GenreToggle) Filter(films []*models.Film) []*models.Film {
	if !t.CanFilter() {
		return films
	}
	return keep(films, func(f *models.Film) bool { return f.Genres().Has(t.genre) })
}

// Draw paints the genre name, filled while the toggle is on.
func (t *GenreToggle) Draw(c *canvas.Canvas, thm *theme.Theme) {
	brush := canvas.Brush{Text: thm.GenreOff}
	switch {
	case t.clicked:
		brush = canvas.Brush{Fill: thm.GenreOn, Text: thm.AccentFg, Bold: true}
	case t.highlighted:
		brush = canvas.Brush{Text: thm.Highlight, Bold: true}
	}
	if brush.Fill != "" {
		c.DrawRect(t.x, t.y, t.width, t.height, canvas.Brush{Fill: brush.Fill})
	}
	c.DrawTextCentered(t.x, int(t.y), t.genre.DisplayName(), brush)
}
