package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chmouel/lazyfilm/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validFilm = `
  - title: Spirited Away
    year: 2001
    director: Hayao Miyazaki
    genres: [animation, adventure]
    cast: [Rumi Hiiragi, Miyu Irino, Mari Natsuki, Yumi Tamai, Bunta Sugawara]
    poster: SpiritedAway.png
    description: A young girl becomes trapped in a world of spirits.
`

func TestDefaultCatalog(t *testing.T) {
	films, err := Load("")
	require.NoError(t, err)
	require.Len(t, films, 10)

	for i, f := range films {
		assert.Equal(t, i, f.ID(), "ids follow file order")
		assert.NotEmpty(t, f.Title())
		assert.NotEmpty(t, f.Poster())
	}

	assert.Equal(t, "12 Angry Men", films[0].Title())
	assert.True(t, films[6].Genres().Has(models.Animation))

	lo, hi := YearBounds(films)
	assert.Equal(t, 1957, lo)
	assert.Equal(t, 2004, hi)
}

func TestDefaultDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() { Default() })
}

func TestParseValid(t *testing.T) {
	films, err := Parse("test", []byte("films:"+validFilm))
	require.NoError(t, err)
	require.Len(t, films, 1)

	f := films[0]
	assert.Equal(t, "Spirited Away", f.Title())
	assert.Equal(t, 2001, f.ReleaseYear())
	assert.Equal(t, "Hayao Miyazaki", f.Director())
	assert.Equal(t, models.NewGenreSet(models.Animation, models.Adventure), f.Genres())
	assert.Equal(t, "Bunta Sugawara", f.Cast()[4])
}

func TestParseRejectsMalformedRecords(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "empty",
			yaml:    "films: []",
			wantErr: "no films",
		},
		{
			name: "short cast",
			yaml: `films:
  - title: X
    year: 2000
    director: Y
    genres: [drama]
    cast: [A, B]
`,
			wantErr: "cast has 2 names",
		},
		{
			name: "unknown genre",
			yaml: `films:
  - title: X
    year: 2000
    director: Y
    genres: [western]
    cast: [A, B, C, D, E]
`,
			wantErr: `unknown genre "western"`,
		},
		{
			name: "duplicate genre",
			yaml: `films:
  - title: X
    year: 2000
    director: Y
    genres: [drama, Drama]
    cast: [A, B, C, D, E]
`,
			wantErr: `duplicate genre "drama"`,
		},
		{
			name: "bad year and title",
			yaml: `films:
  - title: ""
    year: 12
    director: Y
    genres: [drama]
    cast: [A, B, C, D, E]
`,
			wantErr: "missing title",
		},
		{
			name: "unknown field",
			yaml: `films:
  - title: X
    rating: 5
`,
			wantErr: "failed to parse catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("test", []byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseTooManyFilms(t *testing.T) {
	data := "films:" + strings.Repeat(validFilm, MaxFilms+1)
	_, err := Parse("big", []byte(data))

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "big", vErr.Source)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "films.yaml")
	require.NoError(t, os.WriteFile(path, []byte("films:"+validFilm), 0o600))

	films, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, films, 1)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read catalog")
}

func TestYearBoundsEmpty(t *testing.T) {
	lo, hi := YearBounds(nil)
	assert.Zero(t, lo)
	assert.Zero(t, hi)
}
