package screen

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"

	"github.com/chmouel/lazyfilm/internal/theme"
)

const helpText = `**Browsing**
- Hover a poster to show its details in the bottom panel
- Click a poster to pin it; its details stay until you click elsewhere
- Click another poster while one is pinned to switch the pin

**Quick search**
- Click the search box at the top and type: titles, directors and cast are matched
- Clearing the box (x) shows the whole catalog again

**Advanced search**
- Advanced Search opens the search form
- Click genres to require them; several genres must all match
- Drag the From / To knobs to bound the release year
- Actor, Director and Title fields match any part of the name, ignoring case
- Apply Filters shows the results, Clear Filters resets the form
- The back arrow returns to the previous screen; from the results the form keeps its values

**Keys**
- ?: Show this help
- q / Esc: Quit (when no search box is focused)
- Ctrl+C: Quit

**Configuration**
- ~/.config/lazyfilm/config.yaml: theme, catalog, frame_rate, key_repeat_delay, show_icons, watch_config
- Saving the configuration file applies the theme and key delay immediately`

// HelpScreen shows the scrollable usage guide.
type HelpScreen struct {
	Viewport viewport.Model
	Width    int
	Height   int
	Thm      *theme.Theme
}

// NewHelpScreen sizes the guide for the available window area.
func NewHelpScreen(maxWidth, maxHeight int, thm *theme.Theme) *HelpScreen {
	width := min(max(maxWidth-4, 30), 90)
	height := min(max(maxHeight-4, 10), 30)

	vp := viewport.New(width-4, height-4)
	s := &HelpScreen{
		Viewport: vp,
		Width:    width,
		Height:   height,
		Thm:      thm,
	}
	s.Viewport.SetContent(s.renderContent())
	return s
}

// Type returns the screen type.
func (s *HelpScreen) Type() Type {
	return TypeHelp
}

// Update scrolls the guide or closes it.
func (s *HelpScreen) Update(msg tea.KeyMsg) (Screen, tea.Cmd) {
	switch msg.String() {
	case keyEsc, keyQ, keyCtrlC, keyHelp:
		return nil, nil
	case "j", "down":
		s.Viewport.ScrollDown(1)
		return s, nil
	case "k", "up":
		s.Viewport.ScrollUp(1)
		return s, nil
	case "ctrl+d", " ":
		s.Viewport.HalfPageDown()
		return s, nil
	case "ctrl+u":
		s.Viewport.HalfPageUp()
		return s, nil
	}

	var cmd tea.Cmd
	s.Viewport, cmd = s.Viewport.Update(msg)
	return s, cmd
}

func (s *HelpScreen) renderContent() string {
	heading := lipgloss.NewStyle().Foreground(s.Thm.Accent).Bold(true)
	body := lipgloss.NewStyle().Foreground(s.Thm.TextFg)

	lines := strings.Split(helpText, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**") {
			out = append(out, heading.Render(strings.Trim(line, "*")))
			continue
		}
		out = append(out, body.Render(wrap.String(line, s.Viewport.Width)))
	}
	return strings.Join(out, "\n")
}

// View renders the guide in a bordered box.
func (s *HelpScreen) View() string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Thm.Accent).
		Width(s.Width).
		Padding(0, 1)

	title := lipgloss.NewStyle().
		Foreground(s.Thm.Accent).
		Bold(true).
		Render("lazyfilm help")

	footer := lipgloss.NewStyle().
		Foreground(s.Thm.MutedFg).
		Render("j/k: scroll • Ctrl+d/u: page • esc: close")

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", s.Viewport.View(), footer))
}

// SetTheme updates the theme for this screen.
func (s *HelpScreen) SetTheme(thm *theme.Theme) {
	s.Thm = thm
	s.Viewport.SetContent(s.renderContent())
}
