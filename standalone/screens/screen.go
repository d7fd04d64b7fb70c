package screens

import (
	"github.com/justdots/dots/standalone/types"
)

// Re-export interfaces from types package so screens can name them directly
type (
	ScreenCallback = types.ScreenCallback
	PosterMedia    = types.PosterMedia
	FocusRestorer  = types.FocusRestorer
	FocusManager   = types.FocusManager
)
