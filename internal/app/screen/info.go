package screen

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"

	"github.com/chmouel/lazyfilm/internal/theme"
)

const infoWidth = 64

// InfoScreen reports a failure that did not stop the browser, such as a
// configuration file that no longer parses.
type InfoScreen struct {
	Title string
	// Source names the file or setting the message is about. Optional.
	Source  string
	Message string
	Thm     *theme.Theme

	OnClose func() tea.Cmd
}

// NewInfoScreen creates a dismissable message dialog.
func NewInfoScreen(title, message string, thm *theme.Theme) *InfoScreen {
	return &InfoScreen{Title: title, Message: message, Thm: thm}
}

// NewReloadErrorScreen reports a configuration file that could not be applied.
// The running settings stay in effect.
func NewReloadErrorScreen(path string, err error, thm *theme.Theme) *InfoScreen {
	s := NewInfoScreen("Configuration reload failed", err.Error(), thm)
	s.Source = path
	return s
}

func (s *InfoScreen) Type() Type {
	return TypeInfo
}

func (s *InfoScreen) Update(msg tea.KeyMsg) (Screen, tea.Cmd) {
	switch msg.String() {
	case keyEnter, keyEsc, keyQ, keyCtrlC:
		if s.OnClose != nil {
			return nil, s.OnClose()
		}
		return nil, nil
	}
	return s, nil
}

// causes splits a wrapped error chain ("a: b: c") into one line per cause.
func causes(message string) []string {
	var lines []string
	for _, part := range strings.Split(message, ": ") {
		if part = strings.TrimSpace(part); part != "" {
			lines = append(lines, part)
		}
	}
	return lines
}

func (s *InfoScreen) View() string {
	inner := infoWidth - 4

	title := lipgloss.NewStyle().
		Foreground(s.Thm.ErrorFg).
		Bold(true).
		Render(s.Title)

	sections := []string{title}
	if s.Source != "" {
		source := lipgloss.NewStyle().Foreground(s.Thm.MutedFg).Italic(true)
		sections = append(sections, source.Render(wrap.String(s.Source, inner)))
	}

	body := lipgloss.NewStyle().Foreground(s.Thm.TextFg)
	lines := causes(s.Message)
	for i, line := range lines {
		// deeper causes are indented
		lines[i] = body.Render(wrap.String(strings.Repeat("  ", min(i, 3))+line, inner))
	}
	sections = append(sections, "", strings.Join(lines, "\n"), "")

	footer := lipgloss.NewStyle().
		Foreground(s.Thm.MutedFg).
		Render("enter/esc: dismiss")
	if s.Source != "" {
		footer = lipgloss.NewStyle().Foreground(s.Thm.MutedFg).
			Render("previous settings kept • enter/esc: dismiss")
	}
	sections = append(sections, footer)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Thm.ErrorFg).
		Padding(1, 2).
		Width(infoWidth).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// SetTheme updates the theme for this screen.
func (s *InfoScreen) SetTheme(thm *theme.Theme) {
	s.Thm = thm
}
