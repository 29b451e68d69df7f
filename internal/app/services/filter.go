package services

import (
	"github.com/chmouel/lazyfilm/internal/models"
	"github.com/chmouel/lazyfilm/internal/widget"
)

// FilterPipeline composes the predicates of filter-capable controls into one
// pass over the catalog. Every run starts again from the full film list.
type FilterPipeline struct {
	logf func(string, ...any)
}

// NewFilterPipeline creates a new FilterPipeline.
func NewFilterPipeline(logf func(string, ...any)) *FilterPipeline {
	return &FilterPipeline{logf: logf}
}

// Apply returns the films of full accepted by every control that can filter.
// full is never modified and the result is a fresh slice, in catalog order.
func (p *FilterPipeline) Apply(full []*models.Film, controls []widget.Widget) []*models.Film {
	working := make([]*models.Film, len(full))
	copy(working, full)

	active := 0
	for _, c := range controls {
		if !c.CanFilter() {
			continue
		}
		active++
		working = c.Filter(working)
	}
	p.debugf("filter: %d active controls kept %d of %d films", active, len(working), len(full))
	return working
}

func (p *FilterPipeline) debugf(format string, args ...any) {
	if p == nil || p.logf == nil {
		return
	}
	p.logf(format, args...)
}
