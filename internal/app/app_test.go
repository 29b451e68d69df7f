package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chmouel/lazyfilm/internal/app/screen"
	"github.com/chmouel/lazyfilm/internal/catalog"
	"github.com/chmouel/lazyfilm/internal/config"
	"github.com/chmouel/lazyfilm/internal/theme"
	"github.com/chmouel/lazyfilm/internal/widget"
)

func testConfig() *config.AppConfig {
	cfg := config.DefaultConfig()
	cfg.WatchConfig = false
	cfg.KeyRepeatDelay = 0
	return cfg
}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m := NewModel(testConfig(), catalog.Default(), nil)
	require.NotNil(t, m)
	return m
}

func sendMouse(m *Model, x, y int, action tea.MouseAction) {
	m.Update(tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft})
}

func sendFrame(m *Model) {
	m.Update(frameMsg{at: time.Now()})
}

func TestNewModelDefaults(t *testing.T) {
	m := NewModel(nil, catalog.Default(), nil)
	assert.NotNil(t, m.config)
	assert.Equal(t, screenMainMenu, m.Controller().Screen())
	assert.Equal(t, theme.Dracula().Accent, m.thm.Accent)
	assert.False(t, m.screens.IsActive())
}

func TestWindowSizeCentresCanvas(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 140, Height: 50})

	assert.Equal(t, 10, m.view.OffsetX)
	assert.Equal(t, 5, m.view.OffsetY)

	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 45)
	for _, line := range lines[:5] {
		assert.Empty(t, line)
	}
	assert.True(t, strings.HasPrefix(lines[5], strings.Repeat(" ", 10)))

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Zero(t, m.view.OffsetX)
	assert.Contains(t, m.View(), "Terminal too small")
}

func TestMouseMapsToCanvas(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 140, Height: 50})

	// advanced search button, shifted by the window offset
	sendMouse(m, 106+10, 1+5, tea.MouseActionPress)
	sendFrame(m)
	sendMouse(m, 106+10, 1+5, tea.MouseActionRelease)
	sendFrame(m)

	assert.Equal(t, screenSearchForm, m.Controller().Screen())
}

func TestPointerState(t *testing.T) {
	var p pointerState
	p.record(tea.MouseMsg{X: 4, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	p.record(tea.MouseMsg{X: 6, Y: 2, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})

	in := p.input(1, 1, testFrame)
	assert.InDelta(t, 5.5, in.X, 1e-9)
	assert.InDelta(t, 1.5, in.Y, 1e-9)
	assert.True(t, in.Pressed)
	assert.True(t, in.Held)
	assert.True(t, in.Dragging)
	assert.Equal(t, testFrame, in.Elapsed)

	in = p.input(1, 1, testFrame)
	assert.False(t, in.Pressed, "a press is reported once")
	assert.False(t, in.Dragging)
	assert.True(t, in.Held)

	p.record(tea.MouseMsg{X: 6, Y: 2, Action: tea.MouseActionRelease})
	in = p.input(1, 1, testFrame)
	assert.False(t, in.Held)

	// motion without a button held is a hover
	p.record(tea.MouseMsg{X: 8, Y: 3, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	in = p.input(0, 0, testFrame)
	assert.False(t, in.Dragging)
	assert.InDelta(t, 8.5, in.X, 1e-9)
}

func TestKeysFromMsg(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []widget.Key
	}{
		{"runes", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")}, []widget.Key{{Type: widget.KeyRune, Rune: 'a'}, {Type: widget.KeyRune, Rune: 'b'}}},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, []widget.Key{{Type: widget.KeySpace}}},
		{"space rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(" ")}, []widget.Key{{Type: widget.KeySpace}}},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, []widget.Key{{Type: widget.KeyBackspace}}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keysFromMsg(tt.msg))
		})
	}
}

func TestQuitKeysIgnoredWhileTyping(t *testing.T) {
	m := newTestModel(t)

	// focus the quick search field
	sendMouse(m, 50, 1, tea.MouseActionPress)
	sendFrame(m)
	sendMouse(m, 50, 1, tea.MouseActionRelease)
	sendFrame(m)
	require.True(t, m.Controller().Typing())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.Nil(t, cmd)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	assert.False(t, m.screens.IsActive())
	sendFrame(m)
	assert.Equal(t, "q", m.Controller().general.Value(), "? is not a searchable character")

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
}

func TestHelpOverlay(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	require.Equal(t, screen.TypeHelp, m.screens.Type())
	assert.Contains(t, m.View(), "lazyfilm help")

	// pointer input is dropped while the overlay is open
	sendMouse(m, 106, 1, tea.MouseActionPress)
	sendFrame(m)
	assert.Equal(t, screenMainMenu, m.Controller().Screen())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.False(t, m.screens.IsActive())
	assert.False(t, m.quitting)
}

func TestReloadConfig(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)
	dir := filepath.Join(base, "lazyfilm")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: dracula\n"), 0o600))

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	cfg.WatchConfig = false
	m := NewModel(cfg, catalog.Default(), []string{"lf.key_repeat_delay=0"})

	require.NoError(t, os.WriteFile(path, []byte("theme: nord\nshow_icons: false\n"), 0o600))
	m.reloadConfig()

	assert.Equal(t, "nord", m.config.Theme)
	assert.Equal(t, theme.Nord().Accent, m.thm.Accent)
	assert.False(t, m.Controller().showIcons)
	assert.Zero(t, m.config.KeyRepeatDelay, "overrides are re-applied")
	assert.Equal(t, path, m.config.Path)

	require.NoError(t, os.WriteFile(path, []byte("theme: [nord\n"), 0o600))
	m.reloadConfig()
	assert.Equal(t, screen.TypeInfo, m.screens.Type())
	assert.Equal(t, "nord", m.config.Theme, "a broken file keeps the running settings")
}

func TestTeaProgramFlow(t *testing.T) {
	tm := teatest.NewTestModel(
		t,
		NewModel(testConfig(), catalog.Default(), nil),
		teatest.WithInitialTermSize(120, 40),
	)

	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte("12 Angry Men"))
		},
		teatest.WithCheckInterval(50*time.Millisecond),
		teatest.WithDuration(2*time.Second),
	)

	// open the search form
	tm.Send(tea.MouseMsg{X: 106, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	time.Sleep(100 * time.Millisecond)
	tm.Send(tea.MouseMsg{X: 106, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte("Apply Filters"))
		},
		teatest.WithCheckInterval(50*time.Millisecond),
		teatest.WithDuration(2*time.Second),
	)

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte("Browsing"))
		},
		teatest.WithCheckInterval(50*time.Millisecond),
		teatest.WithDuration(2*time.Second),
	)
	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})
	time.Sleep(50 * time.Millisecond)

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))

	fm := tm.FinalModel(t)
	m, ok := fm.(*Model)
	require.True(t, ok, "final model is not *Model")
	assert.Equal(t, screenSearchForm, m.Controller().Screen())
	assert.True(t, m.quitting)
}
