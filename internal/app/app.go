// Package app implements the lazyfilm terminal browser on top of Bubble Tea.
package app

import (
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chmouel/lazyfilm/internal/app/screen"
	"github.com/chmouel/lazyfilm/internal/app/services"
	"github.com/chmouel/lazyfilm/internal/app/state"
	"github.com/chmouel/lazyfilm/internal/canvas"
	"github.com/chmouel/lazyfilm/internal/config"
	"github.com/chmouel/lazyfilm/internal/log"
	"github.com/chmouel/lazyfilm/internal/models"
	"github.com/chmouel/lazyfilm/internal/theme"
	"github.com/chmouel/lazyfilm/internal/widget"
)

// Message types for the Bubble Tea app
type (
	frameMsg         struct{ at time.Time }
	configChangedMsg struct{}
	errMsg           struct{ err error }
)

const (
	keyCtrlC = "ctrl+c"
	keyQuit  = "q"
	keyEsc   = "esc"
	keyHelp  = "?"
)

// Model is the Bubble Tea model of the film browser. It collects mouse and
// keyboard messages between frames and hands them to the Controller once per
// frame tick.
type Model struct {
	config    *config.AppConfig
	overrides []string

	ctrl   *Controller
	canvas *canvas.Canvas
	view   state.ViewState
	thm    *theme.Theme

	pointer   pointerState
	lastFrame time.Time

	screens *screen.Manager
	watch   *services.ConfigWatchService

	quitting bool
	debugf   func(string, ...any)
}

// NewModel builds the browser for films. overrides are re-applied whenever the
// configuration file is reloaded.
func NewModel(cfg *config.AppConfig, films []*models.Film, overrides []string) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	thm := theme.GetTheme(cfg.Theme)
	m := &Model{
		config:    cfg,
		overrides: overrides,
		canvas:    canvas.New(canvas.CanvasWidth, canvas.CanvasHeight),
		thm:       thm,
		screens:   screen.NewManager(),
		debugf:    log.Component("app"),
	}
	m.ctrl = NewController(ControllerOptions{
		Theme:     thm,
		ShowIcons: cfg.ShowIcons,
		KeyDelay:  cfg.KeyRepeatDelay,
		Logf:      log.Component("controller"),
	})
	m.ctrl.Init(films)
	return m
}

// Controller exposes the screen controller driven by the model.
func (m *Model) Controller() *Controller {
	return m.ctrl
}

// Init starts the frame loop and the configuration watcher.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.frameTick(), m.startConfigWatcher())
}

func (m *Model) frameTick() tea.Cmd {
	return tea.Tick(m.config.FrameInterval(), func(t time.Time) tea.Msg {
		return frameMsg{at: t}
	})
}

// Update handles Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setWindowSize(msg.Width, msg.Height)
		return m, nil

	case frameMsg:
		m.frame(msg.at)
		return m, m.frameTick()

	case tea.MouseMsg:
		if !m.screens.IsActive() {
			m.pointer.record(msg)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case configChangedMsg:
		m.watch.ResetWaiting()
		if m.watch.ShouldReload(time.Now()) {
			m.reloadConfig()
		}
		return m, m.waitForConfigEvent()

	case errMsg:
		if msg.err != nil {
			m.debugf("error: %v", msg.err)
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) frame(now time.Time) {
	var elapsed time.Duration
	if m.lastFrame.IsZero() {
		elapsed = m.config.FrameInterval()
	} else {
		elapsed = now.Sub(m.lastFrame)
	}
	m.lastFrame = now

	if m.screens.IsActive() {
		m.pointer.reset()
		return
	}
	in := m.pointer.input(m.view.OffsetX, m.view.OffsetY, elapsed)
	m.ctrl.Update(in)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == keyCtrlC {
		return m.quit()
	}
	if m.screens.IsActive() {
		return m, m.screens.HandleKey(msg)
	}

	if !m.ctrl.Typing() {
		switch key {
		case keyQuit, keyEsc:
			return m.quit()
		case keyHelp:
			m.screens.Push(screen.NewHelpScreen(m.view.WindowWidth, m.view.WindowHeight, m.thm))
			return m, nil
		}
	}
	m.pointer.keys = append(m.pointer.keys, keysFromMsg(msg)...)
	return m, nil
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if m.watch != nil {
		m.watch.Stop()
	}
	return m, tea.Quit
}

func (m *Model) setWindowSize(width, height int) {
	m.view.WindowWidth = width
	m.view.WindowHeight = height
	m.view.OffsetX = max((width-canvas.CanvasWidth)/2, 0)
	m.view.OffsetY = max((height-canvas.CanvasHeight)/2, 0)
}

// keysFromMsg converts a key message into the keystrokes text fields accept.
func keysFromMsg(msg tea.KeyMsg) []widget.Key {
	switch msg.Type {
	case tea.KeySpace:
		return []widget.Key{{Type: widget.KeySpace}}
	case tea.KeyBackspace:
		return []widget.Key{{Type: widget.KeyBackspace}}
	case tea.KeyRunes:
		keys := make([]widget.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if r == ' ' {
				keys = append(keys, widget.Key{Type: widget.KeySpace})
				continue
			}
			keys = append(keys, widget.Key{Type: widget.KeyRune, Rune: r})
		}
		return keys
	}
	return nil
}

func (m *Model) configWatchPath() string {
	if m.config.Path != "" {
		return m.config.Path
	}
	return filepath.Join(config.ConfigBase(), "config.yaml")
}

func (m *Model) startConfigWatcher() tea.Cmd {
	if !m.config.WatchConfig {
		return nil
	}
	if m.watch == nil {
		m.watch = services.NewConfigWatchService(log.Component("watch"))
	}
	started, err := m.watch.Start(m.configWatchPath())
	if err != nil {
		return func() tea.Msg {
			return errMsg{err: err}
		}
	}
	if !started {
		return nil
	}
	return m.waitForConfigEvent()
}

func (m *Model) waitForConfigEvent() tea.Cmd {
	if m.watch == nil {
		return nil
	}
	events := m.watch.NextEvent()
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		_, ok := <-events
		if !ok {
			return nil
		}
		return configChangedMsg{}
	}
}

// reloadConfig re-reads the configuration file and applies the settings
// that can change while running.
func (m *Model) reloadConfig() {
	cfg, err := config.LoadConfig(m.config.Path)
	if err == nil {
		err = cfg.ApplyOverrides(m.overrides)
	}
	if err != nil {
		m.debugf("config reload failed: %v", err)
		m.screens.Push(screen.NewReloadErrorScreen(m.config.Path, err, m.thm))
		return
	}
	if cfg.Path == "" {
		cfg.Path = m.config.Path
	}
	m.applyConfig(cfg)
	m.debugf("config reloaded: theme=%s frame_rate=%d key_repeat_delay=%s", cfg.Theme, cfg.FrameRate, cfg.KeyRepeatDelay)
}

func (m *Model) applyConfig(cfg *config.AppConfig) {
	m.config = cfg
	m.thm = theme.GetTheme(cfg.Theme)
	m.ctrl.SetTheme(m.thm)
	m.ctrl.SetShowIcons(cfg.ShowIcons)
	m.ctrl.SetKeyDelay(cfg.KeyRepeatDelay)
}
