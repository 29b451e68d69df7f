package services

import (
	"github.com/chmouel/lazyfilm/internal/models"
	"github.com/chmouel/lazyfilm/internal/widget"
)

// SelectionService tracks pointer hover over posters and the single pinned film.
type SelectionService struct {
	active *models.Film
	logf   func(string, ...any)
}

// NewSelectionService creates a new SelectionService.
func NewSelectionService(logf func(string, ...any)) *SelectionService {
	return &SelectionService{logf: logf}
}

// Active returns the pinned film, or nil.
func (s *SelectionService) Active() *models.Film {
	return s.active
}

// Update refreshes hover flags for the working set and applies a press:
// with nothing pinned, a press on a hovered poster pins it; with a film pinned,
// a press outside it unpins it and pins the first catalog film under the pointer.
func (s *SelectionService) Update(working, catalog []*models.Film, in widget.Input) {
	visible := make(map[int]struct{}, len(working))
	for _, f := range working {
		visible[f.ID()] = struct{}{}
	}
	for _, f := range catalog {
		_, ok := visible[f.ID()]
		f.SetHighlighted(ok && f.Contains(in.X, in.Y))
	}

	if !in.Pressed {
		return
	}

	if s.active == nil {
		for _, f := range working {
			if f.Highlighted() {
				s.activate(f)
				return
			}
		}
		return
	}

	if s.active.Contains(in.X, in.Y) {
		return
	}
	s.debugf("selection: unpinned %q", s.active.Title())
	s.active.SetActive(false)
	s.active = nil
	for _, f := range catalog {
		if f.Contains(in.X, in.Y) {
			s.activate(f)
			return
		}
	}
}

// Panel returns the film whose details should be shown: the pinned film if
// any, otherwise the hovered film of the working set.
func (s *SelectionService) Panel(working []*models.Film) *models.Film {
	if s.active != nil {
		return s.active
	}
	for _, f := range working {
		if f.Highlighted() {
			return f
		}
	}
	return nil
}

// Clear unpins the active film.
func (s *SelectionService) Clear() {
	if s.active == nil {
		return
	}
	s.active.SetActive(false)
	s.active = nil
}

func (s *SelectionService) activate(f *models.Film) {
	f.SetActive(true)
	s.active = f
	s.debugf("selection: pinned %q", f.Title())
}

func (s *SelectionService) debugf(format string, args ...any) {
	if s.logf == nil {
		return
	}
	s.logf(format, args...)
}
