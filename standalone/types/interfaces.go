// Package types provides shared interfaces used across UI packages.
// This package exists to avoid import cycles between screens and sub-packages.
package types

import (
	"github.com/ebitenui/ebitenui/widget"
	"github.com/justdots/dots/carousel"
	"github.com/justdots/dots/content"
)

// Direction constants for navigation
const (
	DirNone  = 0
	DirUp    = 1
	DirDown  = 2
	DirLeft  = 3
	DirRight = 4
)

// Navigation zone types
const (
	NavZoneHorizontal = "horizontal" // Left/Right navigates, Up/Down exits zone
	NavZoneVertical   = "vertical"   // Up/Down navigates, Left/Right exits zone
	NavZoneStepper    = "stepper"    // Left/Right steps the gallery, Up/Down exits zone
)

// Navigation index constants
const (
	NavIndexFirst = -2 // Go to first item
	NavIndexLast  = -3 // Go to last item
)

// ScreenCallback provides callbacks for screen navigation
type ScreenCallback interface {
	SwitchToPoster()
	SwitchToTerms()
	ToggleLanguage()
	Language() content.Lang
	CopyLink(url string) // Copy an external link and confirm with a notification
	ChooseAssets()       // Ask the user for a folder of dot images
	ChooseArchive()      // Ask the user for an archive of dot images
	Exit()
	GetWindowWidth() int // For responsive layout calculations
	RequestRebuild()     // Request UI rebuild after state changes
	Media() PosterMedia
}

// PosterMedia hands out the image widgets shown on the poster. Widgets are
// fresh per call so they can be placed into a rebuilt tree; the pixel data
// behind them is cached.
type PosterMedia interface {
	Logo() widget.PreferredSizeLocateableWidget
	Dot(id, width int) widget.PreferredSizeLocateableWidget
	Gallery() widget.PreferredSizeLocateableWidget
	StepGallery(dir carousel.Direction)
	HasAssets() bool
}

// FocusRestorer is implemented by screens that support focus restoration after rebuilds
type FocusRestorer interface {
	// GetPendingFocusButton returns the button that should receive focus after rebuild
	GetPendingFocusButton() *widget.Button
	// ClearPendingFocus clears the pending focus state
	ClearPendingFocus()
}

// FocusManager interface for focus restoration and scroll management.
// Implemented by BaseScreen.
type FocusManager interface {
	RegisterFocusButton(key string, btn *widget.Button)
	SetPendingFocus(key string)
	SetScrollWidgets(sc *widget.ScrollContainer, slider *widget.Slider)
	SaveScrollPosition()
	RestoreScrollPosition()
	RegisterNavZone(name string, zoneType string, keys []string)
	SetNavTransition(fromZone string, direction int, toZone string, toIndex int)
}
