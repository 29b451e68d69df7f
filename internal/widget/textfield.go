package widget

import (
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/x/ansi"

	"github.com/chmouel/lazyfilm/internal/canvas"
	"github.com/chmouel/lazyfilm/internal/models"
	"github.com/chmouel/lazyfilm/internal/theme"
)

// FieldUsage selects which film attribute a text field searches.
type FieldUsage int

// Text field usages.
const (
	FieldActor FieldUsage = iota
	FieldDirector
	FieldTitle
	FieldGeneral
)

func (u FieldUsage) String() string {
	switch u {
	case FieldActor:
		return "actor"
	case FieldDirector:
		return "director"
	case FieldTitle:
		return "title"
	default:
		return "general"
	}
}

// DefaultKeyDelay is the minimum time between two accepted keystrokes.
const DefaultKeyDelay = 125 * time.Millisecond

// FieldCharLimit is the longest text a field holds.
const FieldCharLimit = 64

const clearWidth = 3

// TextField is a single-line search box. Clicking inside focuses it, clicking
// elsewhere drops the focus. Keystrokes queue while focused and are accepted
// one per key delay.
type TextField struct {
	base
	usage       FieldUsage
	input       textinput.Model
	clear       *Button
	keyDelay    time.Duration
	sinceAccept time.Duration
	pending     []Key
}

// NewTextField creates a framed field centred on (x, y). The embedded clear
// button sits at its right end.
func NewTextField(ids *IDSource, usage FieldUsage, placeholder string, x, y, width, height float64) *TextField {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = FieldCharLimit
	ti.Width = max(int(width)-clearWidth-3, 1)

	f := &TextField{
		base:     newBase(ids, x, y, width, height),
		usage:    usage,
		input:    ti,
		keyDelay: DefaultKeyDelay,
	}
	f.clear = NewGlyphButton(ids, UsageClear, "x", x+width/2-1-clearWidth/2.0, y, clearWidth, 1)
	return f
}

// Usage returns the attribute the field searches.
func (f *TextField) Usage() FieldUsage { return f.usage }

// Value returns the typed text.
func (f *TextField) Value() string { return f.input.Value() }

// SetValue replaces the typed text, dropping characters a user could not type.
func (f *TextField) SetValue(v string) {
	var sb strings.Builder
	for _, r := range v {
		if acceptsRune(r) {
			sb.WriteRune(r)
		}
	}
	f.input.SetValue(sb.String())
	f.input.CursorEnd()
}

// SetKeyDelay changes the keystroke cooldown. Zero accepts every queued key at once.
func (f *TextField) SetKeyDelay(d time.Duration) {
	if d < 0 {
		d = 0
	}
	f.keyDelay = d
}

// Focused reports whether the field receives keystrokes.
func (f *TextField) Focused() bool { return f.clicked }

// ClearButton returns the embedded clear control.
func (f *TextField) ClearButton() *Button { return f.clear }

// Update handles focus changes, the clear button and queued keystrokes.
func (f *TextField) Update(in Input) {
	f.highlighted = f.Contains(in.X, in.Y)

	// the clear button is hidden while the field is empty
	if f.input.Value() != "" {
		f.clear.Update(in)
	} else {
		f.clear.ResetState()
	}
	if f.clear.Clicked() {
		f.clear.ResetState()
		f.input.Reset()
		f.pending = nil
	} else if in.Pressed {
		f.setFocus(f.highlighted)
	}

	if !f.clicked {
		return
	}
	f.pending = append(f.pending, in.Keys...)
	f.sinceAccept += in.Elapsed
	for len(f.pending) > 0 && f.sinceAccept >= f.keyDelay {
		f.apply(f.pending[0])
		f.pending = f.pending[1:]
		if f.keyDelay > 0 {
			f.sinceAccept = 0
		}
	}
}

func (f *TextField) setFocus(focused bool) {
	if focused == f.clicked {
		return
	}
	f.clicked = focused
	f.pending = nil
	if focused {
		// first keystroke after focusing is accepted at once
		f.sinceAccept = f.keyDelay
		f.input.Focus()
		return
	}
	f.input.Blur()
}

func (f *TextField) apply(k Key) {
	value := []rune(f.input.Value())
	switch k.Type {
	case KeyBackspace:
		if len(value) == 0 {
			return
		}
		value = value[:len(value)-1]
	case KeySpace:
		value = append(value, ' ')
	case KeyRune:
		if !acceptsRune(k.Rune) {
			return
		}
		value = append(value, k.Rune)
	}
	f.input.SetValue(string(value))
	f.input.CursorEnd()
}

func acceptsRune(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' {
		return true
	}
	return strings.ContainsRune("-'.&:", r)
}

// CanFilter reports whether anything has been typed.
func (f *TextField) CanFilter() bool { return f.input.Value() != "" }

// Filter keeps films whose searched attribute contains the typed text,
// ignoring case. The general field accepts a match on title, director or cast.
func (f *TextField) Filter(films []*models.Film) []*models.Film {
	if !f.CanFilter() {
		return films
	}
	query := strings.ToLower(f.input.Value())
	return keep(films, func(film *models.Film) bool {
		return f.matches(film, query)
	})
}

func (f *TextField) matches(film *models.Film, query string) bool {
	has := func(s string) bool { return strings.Contains(strings.ToLower(s), query) }
	switch f.usage {
	case FieldActor:
		return has(film.CastString())
	case FieldDirector:
		return has(film.Director())
	case FieldTitle:
		return has(film.Title())
	default:
		return has(film.Title()) || has(film.Director()) || has(film.CastString())
	}
}

// ResetState drops the focus and empties the field.
func (f *TextField) ResetState() {
	f.base.ResetState()
	f.clear.ResetState()
	f.input.Reset()
	f.input.Blur()
	f.pending = nil
	f.sinceAccept = 0
}

// Draw paints the frame, the visible part of the text and the clear button.
func (f *TextField) Draw(c *canvas.Canvas, thm *theme.Theme) {
	brush := canvas.Brush{Fill: thm.FieldBg, Outline: thm.BorderDim, Text: thm.TextFg}
	switch {
	case f.clicked:
		brush.Outline = thm.Accent
	case f.highlighted:
		brush.Outline = thm.Border
	}
	c.DrawRect(f.x, f.y, f.width, f.height, brush)

	text := brush
	text.Fill = ""
	if f.input.Value() == "" {
		text.Text = thm.MutedFg
		text.Italic = true
	}
	left := int(f.x-f.width/2) + 2
	c.DrawText(left, int(f.y), canvas.Fit(ansi.Strip(f.input.View()), f.input.Width), text)

	if f.input.Value() != "" {
		f.clear.Draw(c, thm)
	}
}
