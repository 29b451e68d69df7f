package app

import (
	"time"

	"github.com/chmouel/lazyfilm/internal/app/services"
	"github.com/chmouel/lazyfilm/internal/canvas"
	"github.com/chmouel/lazyfilm/internal/catalog"
	"github.com/chmouel/lazyfilm/internal/models"
	"github.com/chmouel/lazyfilm/internal/theme"
	"github.com/chmouel/lazyfilm/internal/widget"
)

// ControllerOptions tunes a Controller.
type ControllerOptions struct {
	Theme     *theme.Theme
	ShowIcons bool
	KeyDelay  time.Duration
	Logf      func(string, ...any)
}

// Controller owns the catalog, every control and the current screen. It is
// driven by one Update and one Draw call per frame.
type Controller struct {
	films   []*models.Film
	working []*models.Film
	screen  screenID
	visible []widget.Widget

	ids widget.IDSource

	general  *widget.TextField
	advanced *widget.Button
	undo     *widget.Button
	lower    *widget.Slider
	upper    *widget.Slider
	genres   []*widget.GenreToggle
	apply    *widget.Button
	clear    *widget.Button
	actor    *widget.TextField
	director *widget.TextField
	title    *widget.TextField

	mainControls    []widget.Widget
	formControls    []widget.Widget
	resultsControls []widget.Widget

	// general field value the working set was last computed from; nil forces a run
	mainQuery *string

	pipeline  *services.FilterPipeline
	selection *services.SelectionService

	thm       *theme.Theme
	showIcons bool
	keyDelay  time.Duration
	logf      func(string, ...any)
}

// NewController creates a controller with no catalog; call Init before use.
func NewController(opts ControllerOptions) *Controller {
	thm := opts.Theme
	if thm == nil {
		thm = theme.Dracula()
	}
	return &Controller{
		thm:       thm,
		showIcons: opts.ShowIcons,
		keyDelay:  opts.KeyDelay,
		logf:      opts.Logf,
		pipeline:  services.NewFilterPipeline(opts.Logf),
		selection: services.NewSelectionService(opts.Logf),
	}
}

// Init takes the catalog, builds every control from the catalog year range
// and shows the main menu.
func (c *Controller) Init(films []*models.Film) {
	c.films = films
	placePosters(films)
	lo, hi := catalog.YearBounds(films)

	c.ids = widget.IDSource{}
	ids := &c.ids

	x, y, w, h := generalFieldBox.centre()
	c.general = widget.NewTextField(ids, widget.FieldGeneral, "Search titles, directors, cast", x, y, w, h)
	x, y, w, h = advancedButtonBox.centre()
	c.advanced = widget.NewButton(ids, widget.UsageAdvancedSearch, "Advanced Search", x, y, w, h)
	x, y, w, h = undoButtonBox.centre()
	c.undo = widget.NewGlyphButton(ids, widget.UsageUndo, "↩", x, y, w, h)

	c.lower = widget.NewSlider(ids, widget.SliderLower, lo, hi, trackLeft, trackRight, lowerSliderY+0.5)
	c.upper = widget.NewSlider(ids, widget.SliderUpper, lo, hi, trackLeft, trackRight, upperSliderY+0.5)

	c.genres = nil
	for i, g := range models.AllGenres() {
		gx, gy := genreTogglePosition(i)
		c.genres = append(c.genres, widget.NewGenreToggle(ids, g, gx, gy))
	}

	x, y, w, h = applyButtonBox.centre()
	c.apply = widget.NewButton(ids, widget.UsageApply, "Apply Filters", x, y, w, h)
	x, y, w, h = clearButtonBox.centre()
	c.clear = widget.NewButton(ids, widget.UsageClear, "Clear Filters", x, y, w, h)
	x, y, w, h = actorFieldBox.centre()
	c.actor = widget.NewTextField(ids, widget.FieldActor, "Actor", x, y, w, h)
	x, y, w, h = directorFieldBox.centre()
	c.director = widget.NewTextField(ids, widget.FieldDirector, "Director", x, y, w, h)
	x, y, w, h = titleFieldBox.centre()
	c.title = widget.NewTextField(ids, widget.FieldTitle, "Title", x, y, w, h)

	c.mainControls = []widget.Widget{c.general, c.advanced}
	c.formControls = []widget.Widget{c.undo, c.lower, c.upper}
	for _, g := range c.genres {
		c.formControls = append(c.formControls, g)
	}
	c.formControls = append(c.formControls, c.apply, c.clear, c.actor, c.director, c.title)
	c.resultsControls = []widget.Widget{c.undo}

	c.SetKeyDelay(c.keyDelay)

	c.working = c.fullCatalog()
	c.mainQuery = nil
	c.setScreen(screenMainMenu, c.mainControls)
	c.debugf("init: %d films, years %d..%d", len(films), lo, hi)
}

// SetTheme switches the colours used by Draw.
func (c *Controller) SetTheme(thm *theme.Theme) {
	if thm != nil {
		c.thm = thm
	}
}

// SetShowIcons toggles poster icons.
func (c *Controller) SetShowIcons(show bool) {
	c.showIcons = show
}

// SetKeyDelay changes the keystroke cooldown of every text field.
func (c *Controller) SetKeyDelay(d time.Duration) {
	c.keyDelay = d
	for _, f := range []*widget.TextField{c.general, c.actor, c.director, c.title} {
		if f != nil {
			f.SetKeyDelay(d)
		}
	}
}

// Screen returns the current screen.
func (c *Controller) Screen() screenID { return c.screen }

// Films returns the full catalog.
func (c *Controller) Films() []*models.Film { return c.films }

// Working returns the films currently shown.
func (c *Controller) Working() []*models.Film { return c.working }

// Visible returns the controls of the current screen.
func (c *Controller) Visible() []widget.Widget { return c.visible }

// Active returns the pinned film, or nil.
func (c *Controller) Active() *models.Film { return c.selection.Active() }

// Typing reports whether a visible text field has the keyboard focus.
func (c *Controller) Typing() bool {
	for _, w := range c.visible {
		if f, ok := w.(*widget.TextField); ok && f.Focused() {
			return true
		}
	}
	return false
}

func (c *Controller) fullCatalog() []*models.Film {
	films := make([]*models.Film, len(c.films))
	copy(films, c.films)
	return films
}

func (c *Controller) setScreen(s screenID, controls []widget.Widget) {
	if c.screen != s {
		c.debugf("screen: %s -> %s", c.screen, s)
	}
	c.screen = s
	c.visible = controls
}

// Update advances one frame.
func (c *Controller) Update(in widget.Input) {
	switch c.screen {
	case screenSearchForm:
		c.updateSearchForm(in)
	case screenSearchResults:
		c.updateSearchResults(in)
	default:
		c.updateMainMenu(in)
	}
}

func (c *Controller) updateControls(in widget.Input) {
	for _, w := range c.visible {
		w.Update(in)
	}
}

func (c *Controller) updateMainMenu(in widget.Input) {
	c.updateControls(in)

	query := c.general.Value()
	if c.mainQuery == nil || *c.mainQuery != query {
		if c.general.CanFilter() {
			c.working = c.pipeline.Apply(c.films, []widget.Widget{c.general})
		} else {
			c.working = c.fullCatalog()
		}
		c.mainQuery = &query
	}

	c.selection.Update(c.working, c.films, in)

	for _, w := range c.visible {
		b, ok := w.(*widget.Button)
		if !ok || !b.Clicked() {
			continue
		}
		if b.Usage() == widget.UsageAdvancedSearch {
			b.ResetState()
			c.setScreen(screenSearchForm, c.formControls)
			break
		}
	}
}

func (c *Controller) updateSearchForm(in widget.Input) {
	c.updateControls(in)

	for _, w := range c.visible {
		b, ok := w.(*widget.Button)
		if !ok || !b.Clicked() {
			continue
		}
		switch b.Usage() {
		case widget.UsageUndo:
			b.ResetState()
			c.resetControls(c.formControls)
			c.mainQuery = nil
			c.setScreen(screenMainMenu, c.mainControls)
		case widget.UsageApply:
			b.ResetState()
			c.working = c.pipeline.Apply(c.films, c.formControls)
			c.setScreen(screenSearchResults, c.resultsControls)
		case widget.UsageClear:
			c.resetControls(c.visible)
			c.working = c.fullCatalog()
			c.debugf("search form: filters cleared")
		default:
			continue
		}
		break
	}
}

func (c *Controller) updateSearchResults(in widget.Input) {
	c.updateControls(in)
	c.selection.Update(c.working, c.films, in)

	if c.undo.Clicked() {
		c.undo.ResetState()
		c.setScreen(screenSearchForm, c.formControls)
	}
}

func (c *Controller) resetControls(controls []widget.Widget) {
	for _, w := range controls {
		w.ResetState()
	}
}

// Draw paints the current screen on cv.
func (c *Controller) Draw(cv *canvas.Canvas) {
	switch c.screen {
	case screenSearchForm:
		cv.Clear(c.thm.FormBg)
		c.drawSearchChrome(cv)
		c.drawControls(cv)
	default:
		cv.Clear(c.thm.Background)
		if c.screen == screenMainMenu {
			c.drawHeader(cv)
		}
		if len(c.working) == 0 {
			c.drawNoResults(cv)
		}
		for _, f := range c.working {
			c.drawPoster(cv, f)
		}
		c.drawControls(cv)
		c.drawInfoPanel(cv, c.selection.Panel(c.working))
	}
}

func (c *Controller) drawControls(cv *canvas.Canvas) {
	for _, w := range c.visible {
		w.Draw(cv, c.thm)
	}
}

func (c *Controller) debugf(format string, args ...any) {
	if c.logf == nil {
		return
	}
	c.logf(format, args...)
}
