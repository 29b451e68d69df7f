package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chmouel/lazyfilm/internal/widget"
)

// pointerState accumulates mouse and keyboard activity between two frames.
type pointerState struct {
	x, y     int
	pressed  bool
	held     bool
	dragging bool
	keys     []widget.Key
}

func (p *pointerState) record(msg tea.MouseMsg) {
	p.x, p.y = msg.X, msg.Y
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			p.pressed = true
			p.held = true
		}
	case tea.MouseActionRelease:
		p.held = false
	case tea.MouseActionMotion:
		if p.held && msg.Button == tea.MouseButtonLeft {
			p.dragging = true
		}
	}
}

// input builds the frame input in canvas space and starts a new frame.
func (p *pointerState) input(offsetX, offsetY int, elapsed time.Duration) widget.Input {
	in := widget.Input{
		X:        float64(p.x-offsetX) + 0.5,
		Y:        float64(p.y-offsetY) + 0.5,
		Pressed:  p.pressed,
		Held:     p.held,
		Dragging: p.dragging,
		Keys:     p.keys,
		Elapsed:  elapsed,
	}
	p.pressed = false
	p.dragging = false
	p.keys = nil
	return in
}

// reset drops everything collected for the frame; the pointer position is kept.
func (p *pointerState) reset() {
	p.pressed = false
	p.held = false
	p.dragging = false
	p.keys = nil
}
