package widget

import (
	"github.com/chmouel/lazyfilm/internal/canvas"
	"github.com/chmouel/lazyfilm/internal/theme"
)

// Usage tells the screen controller what a button is for.
type Usage int

// Button usages.
const (
	UsageGeneric Usage = iota
	UsageAdvancedSearch
	UsageApply
	UsageClear
	UsageUndo
)

func (u Usage) String() string {
	switch u {
	case UsageAdvancedSearch:
		return "advanced-search"
	case UsageApply:
		return "apply"
	case UsageClear:
		return "clear"
	case UsageUndo:
		return "undo"
	default:
		return "generic"
	}
}

// Button is a toggle with a text label. Glyph buttons (undo, clear field)
// draw a single symbol instead of a framed label.
type Button struct {
	base
	usage Usage
	label string
	glyph bool
}

// NewButton creates a framed text button.
func NewButton(ids *IDSource, usage Usage, label string, x, y, width, height float64) *Button {
	return &Button{base: newBase(ids, x, y, width, height), usage: usage, label: label}
}

// NewGlyphButton creates an unframed button drawn as a symbol.
func NewGlyphButton(ids *IDSource, usage Usage, glyph string, x, y, width, height float64) *Button {
	b := NewButton(ids, usage, glyph, x, y, width, height)
	b.glyph = true
	return b
}

// Usage returns the button usage.
func (b *Button) Usage() Usage { return b.usage }

// Label returns the button text.
func (b *Button) Label() string { return b.label }

// Update toggles the clicked flag when a press lands on the button.
func (b *Button) Update(in Input) {
	if b.hover(in) {
		b.clicked = !b.clicked
	}
}

// Draw paints the button.
func (b *Button) Draw(c *canvas.Canvas, thm *theme.Theme) {
	text := thm.TextFg
	if b.highlighted {
		text = thm.Highlight
	}
	if b.glyph {
		brush := canvas.Brush{Text: text, Bold: b.highlighted}
		if b.height >= 3 {
			brush.Outline = thm.BorderDim
			if b.highlighted {
				brush.Outline = thm.Highlight
			}
			c.DrawRect(b.x, b.y, b.width, b.height, brush)
		}
		c.DrawTextCentered(b.x, int(b.y), b.label, brush)
		return
	}

	brush := canvas.Brush{Fill: thm.ButtonBg, Outline: thm.Border, Text: text}
	if b.highlighted {
		brush.Fill = thm.Accent
		brush.Outline = thm.Accent
		brush.Text = thm.AccentFg
		brush.Bold = true
	}
	c.DrawRect(b.x, b.y, b.width, b.height, brush)
	c.DrawTextCentered(b.x, int(b.y), canvas.Fit(b.label, int(b.width)-2), brush)
}
