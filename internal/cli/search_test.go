package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chmouel/lazyfilm/internal/catalog"
	"github.com/chmouel/lazyfilm/internal/models"
)

func titles(films []*models.Film) []string {
	out := make([]string, 0, len(films))
	for _, f := range films {
		out = append(out, f.Title())
	}
	return out
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name    string
		opts    SearchOptions
		want    []string
		wantErr string
	}{
		{
			name: "no criteria keeps the catalog",
			opts: SearchOptions{},
			want: titles(catalog.Default()),
		},
		{
			name: "genres intersect",
			opts: SearchOptions{Genres: []string{"Romance", "drama"}},
			want: []string{"Chungking Express", "Eternal Sunshine of the Spotless Mind"},
		},
		{
			name: "year range is inclusive",
			opts: SearchOptions{From: 1994, To: 1997},
			want: []string{"Chungking Express", "Princess Mononoke", "Se7en"},
		},
		{
			name: "lower bound after the newest film",
			opts: SearchOptions{From: 2050},
			want: []string{},
		},
		{
			name: "upper bound before the oldest film",
			opts: SearchOptions{To: 1900},
			want: []string{},
		},
		{
			name: "range wider than the catalog",
			opts: SearchOptions{From: 1900, To: 2050},
			want: titles(catalog.Default()),
		},
		{
			name: "director",
			opts: SearchOptions{Director: "miyazaki"},
			want: []string{"Princess Mononoke", "Spirited Away"},
		},
		{
			name: "title",
			opts: SearchOptions{Title: "spirited"},
			want: []string{"Spirited Away"},
		},
		{
			name: "query matches director",
			opts: SearchOptions{Query: "LUMET"},
			want: []string{"12 Angry Men"},
		},
		{
			name: "no match",
			opts: SearchOptions{Genres: []string{"documentary", "war"}},
			want: []string{},
		},
		{
			name:    "unknown genre",
			opts:    SearchOptions{Genres: []string{"western"}},
			wantErr: "unknown genre",
		},
		{
			name:    "query with unsearchable characters",
			opts:    SearchOptions{Query: "!!"},
			wantErr: "--query",
		},
		{
			name:    "title punctuation is not rewritten",
			opts:    SearchOptions{Title: "spirited, away"},
			wantErr: "--title",
		},
		{
			name:    "query longer than a field holds",
			opts:    SearchOptions{Query: strings.Repeat("a", 65)},
			wantErr: "at most 64 characters",
		},
		{
			name:    "inverted range",
			opts:    SearchOptions{From: 2000, To: 1990},
			wantErr: "is after --to",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Search(catalog.Default(), tt.opts, nil)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(got))
		})
	}
}

func TestWriteTable(t *testing.T) {
	films, err := Search(catalog.Default(), SearchOptions{Director: "lumet"}, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, films))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "TITLE"))
	assert.Contains(t, lines[1], "12 Angry Men")
	assert.Contains(t, lines[1], "1957")
	assert.Contains(t, lines[1], "drama")
}

func TestWriteJSON(t *testing.T) {
	films, err := Search(catalog.Default(), SearchOptions{Genres: []string{"war"}}, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, films))

	var decoded []filmJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "Grave of the Fireflies", decoded[0].Title)
	assert.Equal(t, []string{"animation", "drama", "war"}, decoded[0].Genres)
	assert.Len(t, decoded[0].Cast, models.CastSize)
}

func TestWritePristineAndGenres(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePristine(&buf, catalog.Default()[:2]))
	assert.Equal(t, "12 Angry Men\nChungking Express\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteGenres(&buf))
	assert.True(t, strings.HasPrefix(buf.String(), "adventure\nanimation\n"))
	assert.Equal(t, len(models.AllGenres()), strings.Count(buf.String(), "\n"))
}
