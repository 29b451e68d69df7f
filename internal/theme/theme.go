// Package theme provides theme definitions and management for the TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines all colors used by the film browser.
type Theme struct {
	Background lipgloss.Color // canvas backdrop behind the poster grid
	FormBg     lipgloss.Color // backdrop of the search form
	Panel      lipgloss.Color // info panel and inner form frame
	Accent     lipgloss.Color
	AccentFg   lipgloss.Color // Foreground color for text on Accent background
	Border     lipgloss.Color
	BorderDim  lipgloss.Color
	MutedFg    lipgloss.Color
	TextFg     lipgloss.Color
	Highlight  lipgloss.Color // genre names and hovered outlines
	GenreOn    lipgloss.Color
	GenreOff   lipgloss.Color
	ButtonBg   lipgloss.Color
	FieldBg    lipgloss.Color
	ErrorFg    lipgloss.Color
	Posters    []lipgloss.Color // poster fills, picked by film id
}

// Theme names.
const (
	DraculaName         = "dracula"
	DraculaLightName    = "dracula-light"
	NordName            = "nord"
	GruvboxDarkName     = "gruvbox-dark"
	CatppuccinLatteName = "catppuccin-latte"
)

// Dracula returns the Dracula theme (dark background, vibrant colors).
func Dracula() *Theme {
	return &Theme{
		Background: lipgloss.Color("#282A36"),
		FormBg:     lipgloss.Color("#21222C"),
		Panel:      lipgloss.Color("#191A21"),
		Accent:     lipgloss.Color("#BD93F9"), // Purple
		AccentFg:   lipgloss.Color("#282A36"),
		Border:     lipgloss.Color("#6272A4"),
		BorderDim:  lipgloss.Color("#44475A"),
		MutedFg:    lipgloss.Color("#6272A4"),
		TextFg:     lipgloss.Color("#F8F8F2"),
		Highlight:  lipgloss.Color("#F1FA8C"), // Yellow
		GenreOn:    lipgloss.Color("#F1FA8C"),
		GenreOff:   lipgloss.Color("#8A7F2E"),
		ButtonBg:   lipgloss.Color("#44475A"),
		FieldBg:    lipgloss.Color("#3A3C4E"),
		ErrorFg:    lipgloss.Color("#FF5555"),
		Posters: []lipgloss.Color{
			lipgloss.Color("#6272A4"),
			lipgloss.Color("#8B5A83"),
			lipgloss.Color("#4E7A5A"),
			lipgloss.Color("#8A6A3E"),
			lipgloss.Color("#3F6E8C"),
		},
	}
}

// DraculaLight returns the Dracula theme adapted for light backgrounds.
func DraculaLight() *Theme {
	return &Theme{
		Background: lipgloss.Color("#FFFFFF"),
		FormBg:     lipgloss.Color("#F6F8FA"),
		Panel:      lipgloss.Color("#EAEEF2"),
		Accent:     lipgloss.Color("#7C3AED"),
		AccentFg:   lipgloss.Color("#FFFFFF"),
		Border:     lipgloss.Color("#8C959F"),
		BorderDim:  lipgloss.Color("#D0D7DE"),
		MutedFg:    lipgloss.Color("#6E7781"),
		TextFg:     lipgloss.Color("#24292F"),
		Highlight:  lipgloss.Color("#CA8A04"),
		GenreOn:    lipgloss.Color("#FACC15"),
		GenreOff:   lipgloss.Color("#FEF3C7"),
		ButtonBg:   lipgloss.Color("#D0D7DE"),
		FieldBg:    lipgloss.Color("#FFFFFF"),
		ErrorFg:    lipgloss.Color("#DC2626"),
		Posters: []lipgloss.Color{
			lipgloss.Color("#C7D2FE"),
			lipgloss.Color("#FBCFE8"),
			lipgloss.Color("#BBF7D0"),
			lipgloss.Color("#FDE68A"),
			lipgloss.Color("#BAE6FD"),
		},
	}
}

// Nord returns the Nord theme (arctic, north-bluish palette).
func Nord() *Theme {
	return &Theme{
		Background: lipgloss.Color("#2E3440"),
		FormBg:     lipgloss.Color("#3B4252"),
		Panel:      lipgloss.Color("#242933"),
		Accent:     lipgloss.Color("#88C0D0"), // Frost
		AccentFg:   lipgloss.Color("#2E3440"),
		Border:     lipgloss.Color("#4C566A"),
		BorderDim:  lipgloss.Color("#3B4252"),
		MutedFg:    lipgloss.Color("#7B88A1"),
		TextFg:     lipgloss.Color("#ECEFF4"),
		Highlight:  lipgloss.Color("#EBCB8B"),
		GenreOn:    lipgloss.Color("#EBCB8B"),
		GenreOff:   lipgloss.Color("#8F7A50"),
		ButtonBg:   lipgloss.Color("#434C5E"),
		FieldBg:    lipgloss.Color("#4C566A"),
		ErrorFg:    lipgloss.Color("#BF616A"),
		Posters: []lipgloss.Color{
			lipgloss.Color("#5E81AC"),
			lipgloss.Color("#B48EAD"),
			lipgloss.Color("#A3BE8C"),
			lipgloss.Color("#D08770"),
			lipgloss.Color("#81A1C1"),
		},
	}
}

// GruvboxDark returns the Gruvbox dark theme (retro groove).
func GruvboxDark() *Theme {
	return &Theme{
		Background: lipgloss.Color("#282828"),
		FormBg:     lipgloss.Color("#32302F"),
		Panel:      lipgloss.Color("#1D2021"),
		Accent:     lipgloss.Color("#FE8019"),
		AccentFg:   lipgloss.Color("#282828"),
		Border:     lipgloss.Color("#665C54"),
		BorderDim:  lipgloss.Color("#3C3836"),
		MutedFg:    lipgloss.Color("#928374"),
		TextFg:     lipgloss.Color("#EBDBB2"),
		Highlight:  lipgloss.Color("#FABD2F"),
		GenreOn:    lipgloss.Color("#FABD2F"),
		GenreOff:   lipgloss.Color("#8F6F1E"),
		ButtonBg:   lipgloss.Color("#504945"),
		FieldBg:    lipgloss.Color("#3C3836"),
		ErrorFg:    lipgloss.Color("#FB4934"),
		Posters: []lipgloss.Color{
			lipgloss.Color("#458588"),
			lipgloss.Color("#B16286"),
			lipgloss.Color("#689D6A"),
			lipgloss.Color("#D65D0E"),
			lipgloss.Color("#98971A"),
		},
	}
}

// CatppuccinLatte returns the Catppuccin Latte theme (Light).
func CatppuccinLatte() *Theme {
	return &Theme{
		Background: lipgloss.Color("#EFF1F5"),
		FormBg:     lipgloss.Color("#E6E9EF"),
		Panel:      lipgloss.Color("#DCE0E8"),
		Accent:     lipgloss.Color("#1E66F5"), // Blue
		AccentFg:   lipgloss.Color("#FFFFFF"),
		Border:     lipgloss.Color("#9CA0B0"),
		BorderDim:  lipgloss.Color("#BCC0CC"),
		MutedFg:    lipgloss.Color("#6C6F85"),
		TextFg:     lipgloss.Color("#4C4F69"),
		Highlight:  lipgloss.Color("#DF8E1D"),
		GenreOn:    lipgloss.Color("#DF8E1D"),
		GenreOff:   lipgloss.Color("#F5E0C3"),
		ButtonBg:   lipgloss.Color("#CCD0DA"),
		FieldBg:    lipgloss.Color("#FFFFFF"),
		ErrorFg:    lipgloss.Color("#D20F39"),
		Posters: []lipgloss.Color{
			lipgloss.Color("#7287FD"),
			lipgloss.Color("#EA76CB"),
			lipgloss.Color("#40A02B"),
			lipgloss.Color("#FE640B"),
			lipgloss.Color("#04A5E5"),
		},
	}
}

// PosterColor returns the poster fill for a film id.
func (t *Theme) PosterColor(id int) lipgloss.Color {
	if len(t.Posters) == 0 {
		return t.Panel
	}
	if id < 0 {
		id = -id
	}
	return t.Posters[id%len(t.Posters)]
}

// GetTheme returns a theme by name, or Dracula if not found.
func GetTheme(name string) *Theme {
	switch name {
	case DraculaLightName:
		return DraculaLight()
	case NordName:
		return Nord()
	case GruvboxDarkName:
		return GruvboxDark()
	case CatppuccinLatteName:
		return CatppuccinLatte()
	default:
		return Dracula()
	}
}

// IsLight returns true if the theme is a light theme.
func IsLight(name string) bool {
	switch name {
	case DraculaLightName, CatppuccinLatteName:
		return true
	default:
		return false
	}
}

// DefaultDark returns the default dark theme name.
func DefaultDark() string {
	return DraculaName
}

// AvailableThemes returns a list of available theme names.
func AvailableThemes() []string {
	return []string{
		DraculaName,
		DraculaLightName,
		NordName,
		GruvboxDarkName,
		CatppuccinLatteName,
	}
}
