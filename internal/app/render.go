package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chmouel/lazyfilm/internal/canvas"
)

// View renders the canvas centred in the window, or the open overlay.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.screens.IsActive() {
		return m.renderScreen()
	}
	if m.tooSmall() {
		return m.renderTooSmall()
	}

	m.ctrl.Draw(m.canvas)
	return m.placeCanvas(m.canvas.Render())
}

func (m *Model) tooSmall() bool {
	// before the first WindowSizeMsg the size is unknown; draw anyway
	if m.view.WindowWidth == 0 && m.view.WindowHeight == 0 {
		return false
	}
	return m.view.WindowWidth < canvas.CanvasWidth || m.view.WindowHeight < canvas.CanvasHeight
}

func (m *Model) renderTooSmall() string {
	msg := lipgloss.NewStyle().
		Foreground(m.thm.ErrorFg).
		Bold(true).
		Render(fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d",
			canvas.CanvasWidth, canvas.CanvasHeight, m.view.WindowWidth, m.view.WindowHeight))
	hint := lipgloss.NewStyle().Foreground(m.thm.MutedFg).Render("Resize the window or press q to quit")
	return lipgloss.Place(m.view.WindowWidth, m.view.WindowHeight, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, msg, hint))
}

func (m *Model) placeCanvas(rendered string) string {
	if m.view.OffsetX == 0 && m.view.OffsetY == 0 {
		return rendered
	}
	pad := strings.Repeat(" ", m.view.OffsetX)
	lines := strings.Split(rendered, "\n")
	var sb strings.Builder
	sb.WriteString(strings.Repeat("\n", m.view.OffsetY))
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(pad)
		sb.WriteString(line)
	}
	return sb.String()
}

func (m *Model) renderScreen() string {
	overlay := m.screens.Current().View()
	width, height := m.view.WindowWidth, m.view.WindowHeight
	if width == 0 || height == 0 {
		return overlay
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, overlay)
}
