package app

import "github.com/chmouel/lazyfilm/internal/models"

// Poster grid: 5 columns by 2 rows, placed by film id.
const (
	posterCols   = 5
	posterWidth  = 20
	posterHeight = 11
	posterLeft   = 2
	posterTop    = 4
	posterStepX  = 24
	posterStepY  = 12
)

// Info panel spans the bottom rows of the canvas.
const (
	panelTop    = 28
	panelHeight = 12
)

// Search form frame.
const (
	formLeft   = 20
	formTop    = 7
	formWidth  = 80
	formHeight = 27
)

const (
	labelX        = 22
	genreRowY     = 11
	genreFirstX   = 32
	genreStepX    = 14
	genresPerRow  = 5
	trackLeft     = 34
	trackRight    = 86
	lowerSliderY  = 18
	upperSliderY  = 21
	fieldTop      = 24
	fieldWidth    = 24
	buttonTop     = 29
	buttonWidth   = 20
	controlHeight = 3
)

// box describes a rectangle by its top-left cell and size.
type box struct {
	left, top, width, height int
}

// centre converts the box to the centre-based geometry used by widgets.
func (b box) centre() (cx, cy, w, h float64) {
	return float64(b.left) + float64(b.width)/2, float64(b.top) + float64(b.height)/2,
		float64(b.width), float64(b.height)
}

var (
	generalFieldBox   = box{38, 0, 44, controlHeight}
	advancedButtonBox = box{94, 0, 24, controlHeight}
	undoButtonBox     = box{1, 0, 5, controlHeight}
	formBox           = box{formLeft, formTop, formWidth, formHeight}
	panelBox          = box{0, panelTop, 120, panelHeight}

	actorFieldBox    = box{21, fieldTop, fieldWidth, controlHeight}
	directorFieldBox = box{48, fieldTop, fieldWidth, controlHeight}
	titleFieldBox    = box{75, fieldTop, fieldWidth, controlHeight}

	applyButtonBox = box{37, buttonTop, buttonWidth, controlHeight}
	clearButtonBox = box{63, buttonTop, buttonWidth, controlHeight}
)

// posterBox returns the grid cell of a film id.
func posterBox(id int) box {
	col, row := id%posterCols, id/posterCols
	return box{posterLeft + col*posterStepX, posterTop + row*posterStepY, posterWidth, posterHeight}
}

// placePosters assigns every film its grid position.
func placePosters(films []*models.Film) {
	for _, f := range films {
		f.SetBounds(posterBox(f.ID()).centre())
	}
}

// genreTogglePosition returns the centre of the i-th genre toggle.
func genreTogglePosition(i int) (x, y float64) {
	return float64(genreFirstX + (i%genresPerRow)*genreStepX), float64(genreRowY+2*(i/genresPerRow)) + 0.5
}
