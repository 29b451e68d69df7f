package widget

import (
	"math"
	"strconv"

	"github.com/chmouel/lazyfilm/internal/canvas"
	"github.com/chmouel/lazyfilm/internal/models"
	"github.com/chmouel/lazyfilm/internal/theme"
)

// SliderRole selects which side of the year range a slider bounds.
type SliderRole int

// Slider roles.
const (
	SliderLower SliderRole = iota
	SliderUpper
)

func (r SliderRole) String() string {
	if r == SliderUpper {
		return "upper"
	}
	return "lower"
}

const knobWidth = 3

// Slider is a draggable knob on a horizontal track that bounds release years.
// The value is always within [min, max]; the knob is placed from the value.
type Slider struct {
	base
	role       SliderRole
	min, max   int
	value      int
	trackLeft  float64
	trackRight float64
}

// NewSlider creates a slider whose track spans trackLeft..trackRight on row y.
// A lower slider starts at min and an upper one at max.
func NewSlider(ids *IDSource, role SliderRole, minYear, maxYear int, trackLeft, trackRight, y float64) *Slider {
	if maxYear < minYear {
		minYear, maxYear = maxYear, minYear
	}
	if trackRight < trackLeft {
		trackLeft, trackRight = trackRight, trackLeft
	}
	s := &Slider{
		role:       role,
		min:        minYear,
		max:        maxYear,
		trackLeft:  trackLeft,
		trackRight: trackRight,
	}
	s.value = s.initialValue()
	s.base = newBase(ids, s.positionOf(s.value), y, knobWidth, 1)
	return s
}

func (s *Slider) initialValue() int {
	if s.role == SliderUpper {
		return s.max
	}
	return s.min
}

// Role returns which bound the slider sets.
func (s *Slider) Role() SliderRole { return s.role }

// Value returns the selected year.
func (s *Slider) Value() int { return s.value }

// Bounds returns the selectable range.
func (s *Slider) Bounds() (minYear, maxYear int) { return s.min, s.max }

// SetValue moves the knob to v, clamped to the slider range.
func (s *Slider) SetValue(v int) {
	s.value = clampInt(v, s.min, s.max)
	s.x = s.positionOf(s.value)
}

func (s *Slider) positionOf(v int) float64 {
	if s.max == s.min {
		return s.trackLeft
	}
	frac := float64(v-s.min) / float64(s.max-s.min)
	return s.trackLeft + frac*(s.trackRight-s.trackLeft)
}

func (s *Slider) valueAt(x float64) float64 {
	if s.trackRight == s.trackLeft {
		return float64(s.min)
	}
	frac := (x - s.trackLeft) / (s.trackRight - s.trackLeft)
	return float64(s.min) + frac*float64(s.max-s.min)
}

// Update grabs the knob on press and follows the pointer while the button is held.
func (s *Slider) Update(in Input) {
	s.highlighted = s.Contains(in.X, in.Y)
	switch {
	case in.Pressed && s.highlighted:
		s.clicked = true
	case !in.Held:
		s.clicked = false
	}
	if s.clicked && in.Dragging {
		x := math.Min(math.Max(in.X, s.trackLeft), s.trackRight)
		s.SetValue(int(math.Round(s.valueAt(x))))
	}
}

// CanFilter is always true: sliders take part in every filter run.
func (s *Slider) CanFilter() bool { return true }

// Filter keeps films on the inner side of the slider value, inclusive.
func (s *Slider) Filter(films []*models.Film) []*models.Film {
	if s.role == SliderUpper {
		return keep(films, func(f *models.Film) bool { return f.ReleaseYear() <= s.value })
	}
	return keep(films, func(f *models.Film) bool { return f.ReleaseYear() >= s.value })
}

// ResetState releases the knob and returns it to its starting year.
func (s *Slider) ResetState() {
	s.base.ResetState()
	s.value = s.initialValue()
	s.x = s.positionOf(s.value)
}

// Draw paints the track, its end labels, the knob and the current value above it.
func (s *Slider) Draw(c *canvas.Canvas, thm *theme.Theme) {
	row := int(s.y)
	left := int(math.Round(s.trackLeft))
	right := int(math.Round(s.trackRight))
	c.DrawLine(left, row, right-left+1, '─', canvas.Brush{Outline: thm.BorderDim})

	lo, hi := strconv.Itoa(s.min), strconv.Itoa(s.max)
	c.DrawText(left-len(lo)-1, row, lo, canvas.Brush{Text: thm.MutedFg})
	c.DrawText(right+2, row, hi, canvas.Brush{Text: thm.MutedFg})

	knob := canvas.Brush{Fill: thm.Border}
	if s.highlighted || s.clicked {
		knob.Fill = thm.Accent
	}
	c.DrawRect(s.x, s.y, s.width, s.height, knob)
	c.DrawTextCentered(s.x, row-1, strconv.Itoa(s.value), canvas.Brush{Text: thm.TextFg, Bold: s.clicked})
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
