package state

// Screen is one of the mutually exclusive browser screens.
type Screen int

// Screens, in the order a user reaches them.
const (
	ScreenMainMenu Screen = iota
	ScreenSearchForm
	ScreenSearchResults
)

func (s Screen) String() string {
	switch s {
	case ScreenSearchForm:
		return "search-form"
	case ScreenSearchResults:
		return "search-results"
	default:
		return "main-menu"
	}
}

// ViewState holds UI-related state for the model.
type ViewState struct {
	WindowWidth  int
	WindowHeight int
	// canvas origin inside the window
	OffsetX int
	OffsetY int
}
