package models

import (
	"fmt"
	"strings"
)

// Genre is a film genre tag.
type Genre int

// Genre values, in display order.
const (
	Adventure Genre = iota
	Animation
	Comedy
	Crime
	Documentary
	Drama
	Mystery
	Romance
	Thriller
	War
	genreCount
)

var genreNames = [genreCount]string{
	Adventure:   "adventure",
	Animation:   "animation",
	Comedy:      "comedy",
	Crime:       "crime",
	Documentary: "documentary",
	Drama:       "drama",
	Mystery:     "mystery",
	Romance:     "romance",
	Thriller:    "thriller",
	War:         "war",
}

// AllGenres returns every genre in display order.
func AllGenres() []Genre {
	genres := make([]Genre, 0, genreCount)
	for g := range genreCount {
		genres = append(genres, g)
	}
	return genres
}

// String returns the lowercase tag used in catalog files and on the command line.
func (g Genre) String() string {
	if g < 0 || g >= genreCount {
		return "unknown"
	}
	return genreNames[g]
}

// DisplayName returns the capitalised name shown on screen.
func (g Genre) DisplayName() string {
	name := g.String()
	return strings.ToUpper(name[:1]) + name[1:]
}

// ParseGenre resolves a genre tag case-insensitively.
func ParseGenre(s string) (Genre, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for g, name := range genreNames {
		if name == s {
			return Genre(g), nil
		}
	}
	return 0, fmt.Errorf("unknown genre %q", s)
}

// GenreSet is an unordered set of genres without duplicates.
type GenreSet uint32

// NewGenreSet builds a set from the given genres.
func NewGenreSet(genres ...Genre) GenreSet {
	var s GenreSet
	for _, g := range genres {
		s = s.With(g)
	}
	return s
}

// With returns a copy of the set that also contains g.
func (s GenreSet) With(g Genre) GenreSet {
	if g < 0 || g >= genreCount {
		return s
	}
	return s | 1<<uint(g)
}

// Has reports whether g is in the set.
func (s GenreSet) Has(g Genre) bool {
	if g < 0 || g >= genreCount {
		return false
	}
	return s&(1<<uint(g)) != 0
}

// Len returns the number of genres in the set.
func (s GenreSet) Len() int {
	n := 0
	for g := range genreCount {
		if s.Has(g) {
			n++
		}
	}
	return n
}

// List returns the genres in display order.
func (s GenreSet) List() []Genre {
	var genres []Genre
	for g := range genreCount {
		if s.Has(g) {
			genres = append(genres, g)
		}
	}
	return genres
}

// String joins the genre tags with commas.
func (s GenreSet) String() string {
	names := make([]string, 0, s.Len())
	for _, g := range s.List() {
		names = append(names, g.String())
	}
	return strings.Join(names, ",")
}
