package app

import "github.com/chmouel/lazyfilm/internal/app/state"

type screenID = state.Screen

const (
	screenMainMenu      = state.ScreenMainMenu
	screenSearchForm    = state.ScreenSearchForm
	screenSearchResults = state.ScreenSearchResults
)
