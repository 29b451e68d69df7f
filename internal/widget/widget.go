// Package widget implements the interactive controls of the browser: buttons,
// genre toggles, year sliders and text fields. Every control can take part in
// the filter pipeline through CanFilter and Filter.
package widget

import (
	"time"

	"github.com/chmouel/lazyfilm/internal/canvas"
	"github.com/chmouel/lazyfilm/internal/models"
	"github.com/chmouel/lazyfilm/internal/theme"
)

// KeyType identifies a queued keystroke.
type KeyType int

// Keystroke kinds understood by text fields.
const (
	KeyRune KeyType = iota
	KeySpace
	KeyBackspace
)

// Key is one keystroke received since the previous frame.
type Key struct {
	Type KeyType
	Rune rune
}

// Input is the pointer and keyboard state of one frame, in canvas space.
type Input struct {
	X, Y     float64
	Pressed  bool // primary button went down since the previous frame
	Held     bool
	Dragging bool // pointer moved with the primary button held
	Keys     []Key
	Elapsed  time.Duration
}

// Widget is the contract shared by every control.
type Widget interface {
	ID() int
	Update(in Input)
	Draw(c *canvas.Canvas, thm *theme.Theme)
	Contains(x, y float64) bool
	// CanFilter reports whether the control currently contributes a predicate.
	CanFilter() bool
	// Filter returns the films that pass the control's predicate. The input
	// slice is never modified.
	Filter(films []*models.Film) []*models.Film
	ResetState()
	Clicked() bool
	Highlighted() bool
}

// IDSource hands out monotonic control ids.
type IDSource struct {
	next int
}

// Next returns a fresh id.
func (s *IDSource) Next() int {
	id := s.next
	s.next++
	return id
}

// base holds the state common to all controls. Positions are centres.
type base struct {
	id          int
	x, y        float64
	initX       float64
	initY       float64
	width       float64
	height      float64
	highlighted bool
	clicked     bool
}

func newBase(ids *IDSource, x, y, width, height float64) base {
	return base{
		id:     ids.Next(),
		x:      x,
		y:      y,
		initX:  x,
		initY:  y,
		width:  width,
		height: height,
	}
}

func (b *base) ID() int { return b.id }

func (b *base) Contains(x, y float64) bool {
	return models.RectContains(b.x, b.y, b.width, b.height, x, y)
}

func (b *base) CanFilter() bool { return false }

func (b *base) Filter(films []*models.Film) []*models.Film { return films }

func (b *base) ResetState() {
	b.clicked = false
	b.x, b.y = b.initX, b.initY
}

func (b *base) Clicked() bool { return b.clicked }

func (b *base) Highlighted() bool { return b.highlighted }

// Position returns the centre of the control.
func (b *base) Position() (x, y float64) { return b.x, b.y }

// Size returns the width and height of the control.
func (b *base) Size() (width, height float64) { return b.width, b.height }

// hover refreshes the highlight flag and reports whether a press landed on the control.
func (b *base) hover(in Input) bool {
	b.highlighted = b.Contains(in.X, in.Y)
	return b.highlighted && in.Pressed
}

// keep builds the subset of films accepted by pred.
func keep(films []*models.Film, pred func(*models.Film) bool) []*models.Film {
	kept := make([]*models.Film, 0, len(films))
	for _, f := range films {
		if pred(f) {
			kept = append(kept, f)
		}
	}
	return kept
}
