package screen

import tea "github.com/charmbracelet/bubbletea"

// Manager keeps the stack of open overlays; the top one receives keys.
type Manager struct {
	current Screen
	stack   []Screen
}

// NewManager creates an empty screen manager.
func NewManager() *Manager {
	return &Manager{}
}

// Push shows s above the current overlay.
func (m *Manager) Push(s Screen) {
	if s == nil {
		return
	}
	if m.current != nil {
		m.stack = append(m.stack, m.current)
	}
	m.current = s
}

// Pop closes the current overlay and returns it, or nil if none was open.
func (m *Manager) Pop() Screen {
	removed := m.current
	m.current = nil
	if n := len(m.stack); n > 0 {
		m.current = m.stack[n-1]
		m.stack = m.stack[:n-1]
	}
	return removed
}

// Current returns the overlay receiving keys, or nil.
func (m *Manager) Current() Screen {
	return m.current
}

// IsActive reports whether an overlay is open.
func (m *Manager) IsActive() bool {
	return m.current != nil
}

// Type returns the type of the current overlay, or TypeNone.
func (m *Manager) Type() Type {
	if m.current == nil {
		return TypeNone
	}
	return m.current.Type()
}

// Clear closes every overlay.
func (m *Manager) Clear() {
	m.current = nil
	m.stack = m.stack[:0]
}

// HandleKey forwards msg to the current overlay and closes it when it asks to.
func (m *Manager) HandleKey(msg tea.KeyMsg) tea.Cmd {
	if m.current == nil {
		return nil
	}
	next, cmd := m.current.Update(msg)
	if next == nil {
		m.Pop()
		return cmd
	}
	m.current = next
	return cmd
}

// StackDepth returns the number of overlays below the current one.
func (m *Manager) StackDepth() int {
	return len(m.stack)
}
