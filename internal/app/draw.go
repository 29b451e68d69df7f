package app

import (
	"strconv"
	"strings"

	"github.com/muesli/reflow/wrap"

	"github.com/chmouel/lazyfilm/internal/canvas"
	"github.com/chmouel/lazyfilm/internal/models"
)

const (
	posterTextWidth = posterWidth - 4
	panelTextWidth  = 114
	summaryLines    = 5
)

func (c *Controller) drawHeader(cv *canvas.Canvas) {
	cv.DrawText(8, 1, "lazyfilm", canvas.Brush{Text: c.thm.Accent, Bold: true})
}

func (c *Controller) drawNoResults(cv *canvas.Canvas) {
	cv.DrawTextCentered(canvas.WidthOffset(0.5), 15, "No Results Found.", canvas.Brush{Text: c.thm.ErrorFg, Bold: true})
}

func (c *Controller) drawPoster(cv *canvas.Canvas, f *models.Film) {
	x, y, w, h := f.Bounds()
	pinned := c.selection.Active()

	brush := canvas.Brush{Fill: c.thm.PosterColor(f.ID()), Outline: c.thm.BorderDim}
	switch {
	case f.Active():
		brush.Outline = c.thm.Accent
		brush.Heavy = true
	case f.Highlighted() && pinned == nil:
		brush.Outline = c.thm.Highlight
	case f.Highlighted():
		brush.Outline = c.thm.Border
	}
	cv.DrawRect(x, y, w, h, brush)

	b := posterBox(f.ID())
	text := canvas.Brush{Text: c.thm.TextFg, Bold: true}
	if c.showIcons {
		cv.DrawTextCentered(x, b.top+2, posterIcon(f.Poster()), canvas.Brush{Text: c.thm.TextFg})
	}
	lines := strings.Split(wrap.String(f.Title(), posterTextWidth), "\n")
	for i, line := range lines {
		if i >= 4 {
			break
		}
		cv.DrawTextCentered(x, b.top+4+i, canvas.Fit(strings.TrimSpace(line), posterTextWidth), text)
	}
	cv.DrawTextCentered(x, b.top+b.height-2, strconv.Itoa(f.ReleaseYear()), canvas.Brush{Text: c.thm.TextFg, Italic: true})
}

func (c *Controller) drawInfoPanel(cv *canvas.Canvas, f *models.Film) {
	cx, cy, w, h := panelBox.centre()
	cv.DrawRect(cx, cy, w, h, canvas.Brush{Fill: c.thm.Panel, Outline: c.thm.BorderDim})

	top := panelBox.top + 1
	if f == nil {
		cv.DrawTextCentered(cx, int(cy), "Hover a poster to see its details, click it to pin them.", canvas.Brush{Text: c.thm.MutedFg, Italic: true})
		return
	}

	left := 3
	title := f.Title()
	if c.showIcons && f.Active() {
		title = iconWithSpace(iconPinned) + title
	}
	cv.DrawText(left, top, canvas.Fit(title, panelTextWidth), canvas.Brush{Text: c.thm.Accent, Bold: true})

	names := make([]string, 0, f.Genres().Len())
	for _, g := range f.Genres().List() {
		names = append(names, g.DisplayName())
	}
	cv.DrawText(left, top+1, strings.Join(names, "  "), canvas.Brush{Text: c.thm.Highlight})

	label := canvas.Brush{Text: c.thm.MutedFg}
	value := canvas.Brush{Text: c.thm.TextFg}
	rows := []struct{ name, text string }{
		{"Director:", f.Director()},
		{"Cast:", f.CastString()},
		{"Year:", strconv.Itoa(f.ReleaseYear())},
	}
	for i, r := range rows {
		cv.DrawText(left, top+2+i, r.name, label)
		cv.DrawText(left+10, top+2+i, canvas.Fit(r.text, panelTextWidth-10), value)
	}

	summary := strings.Split(wrap.String(f.Description(), panelTextWidth), "\n")
	for i, line := range summary {
		if i >= summaryLines {
			break
		}
		if i == summaryLines-1 && len(summary) > summaryLines {
			line = canvas.Fit(line+" …", panelTextWidth)
		}
		cv.DrawText(left, top+5+i, line, canvas.Brush{Text: c.thm.TextFg, Italic: true})
	}
}

func (c *Controller) drawSearchChrome(cv *canvas.Canvas) {
	cv.DrawTextCentered(canvas.WidthOffset(0.5), 4, "Advanced Search", canvas.Brush{Text: c.thm.Accent, Bold: true})

	cx, cy, w, h := formBox.centre()
	cv.DrawRect(cx, cy, w, h, canvas.Brush{Fill: c.thm.Panel, Outline: c.thm.Border})

	label := canvas.Brush{Text: c.thm.TextFg, Bold: true}
	cv.DrawText(labelX, genreRowY-2, "Genres:", label)
	cv.DrawText(labelX, lowerSliderY-2, "Year:", label)
	cv.DrawText(labelX, lowerSliderY, "From:", canvas.Brush{Text: c.thm.MutedFg})
	cv.DrawText(labelX, upperSliderY, "To:", canvas.Brush{Text: c.thm.MutedFg})

	for _, fb := range []struct {
		b    box
		name string
	}{
		{actorFieldBox, "Actor"},
		{directorFieldBox, "Director"},
		{titleFieldBox, "Title"},
	} {
		fx, _, _, _ := fb.b.centre()
		cv.DrawTextCentered(fx, fb.b.top-1, fb.name, label)
	}
}
