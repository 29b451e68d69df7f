// Package models defines the data objects shared across lazyfilm packages.
package models

import "strings"

// CastSize is the number of cast members recorded for every film.
const CastSize = 5

// FilmInfo is the immutable catalog record of a film.
type FilmInfo struct {
	Title       string
	ReleaseYear int
	Director    string
	Genres      GenreSet
	Cast        [CastSize]string
	Description string
	Poster      string // poster asset name, e.g. "SpiritedAway.png"
}

// Film pairs a catalog record with its on-screen presentation state.
type Film struct {
	id   int
	info FilmInfo

	// poster bounds in canvas space, centre based
	x, y          float64
	width, height float64

	highlighted bool
	active      bool
}

// NewFilm creates a film with the given identity.
func NewFilm(id int, info FilmInfo) *Film {
	return &Film{id: id, info: info}
}

// ID returns the film identity, stable for the process lifetime.
func (f *Film) ID() int { return f.id }

// Info returns a copy of the catalog record.
func (f *Film) Info() FilmInfo { return f.info }

// Title returns the film title.
func (f *Film) Title() string { return f.info.Title }

// ReleaseYear returns the release year.
func (f *Film) ReleaseYear() int { return f.info.ReleaseYear }

// Director returns the director's name.
func (f *Film) Director() string { return f.info.Director }

// Genres returns the genre set.
func (f *Film) Genres() GenreSet { return f.info.Genres }

// Cast returns the five cast names in billing order.
func (f *Film) Cast() [CastSize]string { return f.info.Cast }

// Description returns the plot summary.
func (f *Film) Description() string { return f.info.Description }

// Poster returns the poster asset name.
func (f *Film) Poster() string { return f.info.Poster }

// CastString joins the cast the way the info panel prints it.
func (f *Film) CastString() string {
	return strings.Join(f.info.Cast[:], ",  ")
}

// SetBounds places the poster; x and y are the centre.
func (f *Film) SetBounds(x, y, width, height float64) {
	f.x, f.y = x, y
	f.width, f.height = width, height
}

// Bounds returns the poster centre and size.
func (f *Film) Bounds() (x, y, width, height float64) {
	return f.x, f.y, f.width, f.height
}

// Contains reports whether the point lies strictly inside the poster.
func (f *Film) Contains(x, y float64) bool {
	return RectContains(f.x, f.y, f.width, f.height, x, y)
}

// SetHighlighted records whether the pointer hovers the poster.
func (f *Film) SetHighlighted(highlighted bool) { f.highlighted = highlighted }

// Highlighted reports whether the pointer hovers the poster.
func (f *Film) Highlighted() bool { return f.highlighted }

// SetActive pins or unpins the film.
func (f *Film) SetActive(active bool) { f.active = active }

// Active reports whether the film is pinned.
func (f *Film) Active() bool { return f.active }

// RectContains is the open axis-aligned rectangle test used by posters and controls.
// cx and cy are the rectangle centre.
func RectContains(cx, cy, width, height, x, y float64) bool {
	return x > cx-width/2 && x < cx+width/2 && y > cy-height/2 && y < cy+height/2
}
