// Package canvas implements the fixed-size cell surface the browser draws on.
//
// Geometry is centre based: a rectangle of width w and height h centred on
// (cx, cy) covers the cells from cx-w/2 to cx+w/2. A cell (X, Y) has its
// centre at (X+0.5, Y+0.5), which is where pointer positions land.
package canvas

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Canvas dimensions in terminal cells.
const (
	CanvasWidth  = 120
	CanvasHeight = 40
)

// Brush describes how a shape or a string is painted. Empty colours leave
// the underlying cell untouched.
type Brush struct {
	Fill    lipgloss.Color
	Outline lipgloss.Color
	Text    lipgloss.Color
	Bold    bool
	Italic  bool
	Heavy   bool // double-line outline instead of rounded
}

type cell struct {
	ch     rune
	fg     lipgloss.Color
	bg     lipgloss.Color
	bold   bool
	italic bool
}

type border struct {
	h, v, tl, tr, bl, br rune
}

var (
	roundedBorder = border{'─', '│', '╭', '╮', '╰', '╯'}
	doubleBorder  = border{'═', '║', '╔', '╗', '╚', '╝'}
)

// Canvas is a grid of styled cells.
type Canvas struct {
	width  int
	height int
	cells  []cell
}

// New returns a blank canvas.
func New(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c := &Canvas{width: width, height: height, cells: make([]cell, width*height)}
	c.Clear("")
	return c
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in cells.
func (c *Canvas) Height() int { return c.height }

// WidthOffset returns the x coordinate at fraction f of the canvas width.
func WidthOffset(f float64) float64 { return f * CanvasWidth }

// HeightOffset returns the y coordinate at fraction f of the canvas height.
func HeightOffset(f float64) float64 { return f * CanvasHeight }

// Clear blanks every cell and paints the background colour.
func (c *Canvas) Clear(bg lipgloss.Color) {
	for i := range c.cells {
		c.cells[i] = cell{ch: ' ', bg: bg}
	}
}

func (c *Canvas) at(x, y int) *cell {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return nil
	}
	return &c.cells[y*c.width+x]
}

// span converts a centre and a size into the first covered cell and the cell count.
func span(centre, size float64) (int, int) {
	return int(math.Round(centre - size/2)), int(math.Round(size))
}

// DrawRect paints a rectangle centred on (cx, cy).
func (c *Canvas) DrawRect(cx, cy, w, h float64, b Brush) {
	left, cols := span(cx, w)
	top, rows := span(cy, h)
	if cols <= 0 || rows <= 0 {
		return
	}

	if b.Fill != "" {
		for y := top; y < top+rows; y++ {
			for x := left; x < left+cols; x++ {
				if p := c.at(x, y); p != nil {
					*p = cell{ch: ' ', bg: b.Fill}
				}
			}
		}
	}
	if b.Outline == "" || cols < 2 || rows < 2 {
		return
	}

	bd := roundedBorder
	if b.Heavy {
		bd = doubleBorder
	}
	right, bottom := left+cols-1, top+rows-1
	for x := left + 1; x < right; x++ {
		c.stroke(x, top, bd.h, b)
		c.stroke(x, bottom, bd.h, b)
	}
	for y := top + 1; y < bottom; y++ {
		c.stroke(left, y, bd.v, b)
		c.stroke(right, y, bd.v, b)
	}
	c.stroke(left, top, bd.tl, b)
	c.stroke(right, top, bd.tr, b)
	c.stroke(left, bottom, bd.bl, b)
	c.stroke(right, bottom, bd.br, b)
}

func (c *Canvas) stroke(x, y int, ch rune, b Brush) {
	p := c.at(x, y)
	if p == nil {
		return
	}
	p.ch = ch
	p.fg = b.Outline
	p.bold = b.Heavy
	p.italic = false
}

// DrawLine paints a horizontal rule of length cells starting at (x, y).
func (c *Canvas) DrawLine(x, y, length int, ch rune, b Brush) {
	fg := b.Text
	if fg == "" {
		fg = b.Outline
	}
	for i := range length {
		if p := c.at(x+i, y); p != nil {
			p.ch = ch
			p.fg = fg
			if b.Fill != "" {
				p.bg = b.Fill
			}
		}
	}
}

// DrawText writes a single line of text starting at cell (x, y).
// Escape sequences are stripped and anything past the right edge is clipped.
func (c *Canvas) DrawText(x, y int, text string, b Brush) {
	text = ansi.Strip(text)
	text = strings.NewReplacer("\n", " ", "\t", " ").Replace(text)
	for _, r := range text {
		if p := c.at(x, y); p != nil {
			p.ch = r
			if b.Text != "" {
				p.fg = b.Text
			}
			if b.Fill != "" {
				p.bg = b.Fill
			}
			p.bold = b.Bold
			p.italic = b.Italic
		}
		x++
	}
}

// DrawTextCentered writes text so that its middle sits on cx.
func (c *Canvas) DrawTextCentered(cx float64, y int, text string, b Brush) {
	text = ansi.Strip(text)
	width := len([]rune(text))
	c.DrawText(int(math.Round(cx-float64(width)/2)), y, text, b)
}

// Fit truncates text to at most width cells, marking the cut with an ellipsis.
func Fit(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(ansi.Strip(text), width, "…")
}

// Row returns the plain characters of row y.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.height {
		return ""
	}
	var sb strings.Builder
	for x := range c.width {
		sb.WriteRune(c.cells[y*c.width+x].ch)
	}
	return sb.String()
}

// String returns the plain text of the whole canvas, one line per row.
func (c *Canvas) String() string {
	rows := make([]string, c.height)
	for y := range c.height {
		rows[y] = c.Row(y)
	}
	return strings.Join(rows, "\n")
}

// Render returns the styled canvas. Neighbouring cells sharing a style are
// rendered as one run.
func (c *Canvas) Render() string {
	var out strings.Builder
	var run strings.Builder
	for y := range c.height {
		if y > 0 {
			out.WriteByte('\n')
		}
		row := c.cells[y*c.width : (y+1)*c.width]
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && sameStyle(row[x], row[start]) {
				continue
			}
			run.Reset()
			for _, cl := range row[start:x] {
				run.WriteRune(cl.ch)
			}
			out.WriteString(styleOf(row[start]).Render(run.String()))
			start = x
		}
	}
	return out.String()
}

func sameStyle(a, b cell) bool {
	return a.fg == b.fg && a.bg == b.bg && a.bold == b.bold && a.italic == b.italic
}

func styleOf(cl cell) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(cl.bold).Italic(cl.italic)
	if cl.fg != "" {
		style = style.Foreground(cl.fg)
	}
	if cl.bg != "" {
		style = style.Background(cl.bg)
	}
	return style
}
