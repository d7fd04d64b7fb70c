package screens

import (
	"fmt"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/justdots/dots/standalone/style"
	"github.com/justdots/dots/standalone/types"
)

// ErrorMode distinguishes between types of config errors
type ErrorMode int

const (
	// ErrorModeCorrupted indicates the JSON file could not be parsed
	ErrorModeCorrupted ErrorMode = iota
	// ErrorModeInvalid indicates the JSON parsed but contains invalid values
	ErrorModeInvalid
)

// maxDetails caps the listed validation errors so the buttons stay on screen
const maxDetails = 5

// ErrorScreen displays startup errors for a corrupted or invalid config file
type ErrorScreen struct {
	BaseScreen

	callback ScreenCallback
	filename string
	mode     ErrorMode
	details  []string
	onAction func() // Delete (corrupted) or reset (invalid), then continue
}

// NewErrorScreen creates a new error screen
func NewErrorScreen(callback ScreenCallback) *ErrorScreen {
	s := &ErrorScreen{callback: callback}
	s.InitBase()
	return s
}

// SetError configures the screen for a file that could not be parsed.
// onDelete removes the file and continues with defaults.
func (s *ErrorScreen) SetError(filename string, onDelete func()) {
	s.filename = filename
	s.mode = ErrorModeCorrupted
	s.details = nil
	s.onAction = onDelete
}

// SetValidationError configures the screen for validation error display.
// onReset replaces the invalid values with defaults and continues.
func (s *ErrorScreen) SetValidationError(filename string, details []string, onReset func()) {
	s.filename = filename
	s.mode = ErrorModeInvalid
	s.details = details
	s.onAction = onReset
}

// Mode returns the current error mode
func (s *ErrorScreen) Mode() ErrorMode {
	return s.mode
}

// Build creates the error screen UI
func (s *ErrorScreen) Build() *widget.Container {
	s.ClearFocusButtons()

	root := style.ScreenContainer()
	center := style.CenteredContainer(style.DefaultSpacing)

	title, message, help, action := s.copy()

	center.AddChild(widget.NewText(
		widget.TextOpts.Text(title, style.HeadingFace(), style.Text),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
	))
	center.AddChild(widget.NewText(
		widget.TextOpts.Text(message, style.FontFace(), style.Text),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
	))

	if s.mode == ErrorModeInvalid {
		shown := s.details
		if len(shown) > maxDetails {
			shown = shown[:maxDetails]
		}
		for _, d := range shown {
			center.AddChild(widget.NewText(
				widget.TextOpts.Text(d, style.FontFace(), style.TextSecondary),
				widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
			))
		}
		if extra := len(s.details) - maxDetails; extra > 0 {
			center.AddChild(widget.NewText(
				widget.TextOpts.Text(fmt.Sprintf("+%d more", extra), style.FontFace(), style.TextSecondary),
				widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
			))
		}
	}

	center.AddChild(widget.NewText(
		widget.TextOpts.Text(help, style.FontFace(), style.TextSecondary),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
	))

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(style.DefaultSpacing),
		)),
	)
	actionBtn := style.PrimaryTextButton(action, style.ButtonPaddingMedium, func(args *widget.ButtonClickedEventArgs) {
		if s.onAction != nil {
			s.onAction()
		}
	})
	exitBtn := style.TextButton("Exit", style.ButtonPaddingMedium, func(args *widget.ButtonClickedEventArgs) {
		s.callback.Exit()
	})
	buttons.AddChild(actionBtn)
	buttons.AddChild(exitBtn)
	center.AddChild(buttons)

	s.RegisterFocusButton("action", actionBtn)
	s.RegisterFocusButton("exit", exitBtn)
	s.RegisterNavZone("buttons", types.NavZoneHorizontal, []string{"action", "exit"})

	root.AddChild(center)
	return root
}

func (s *ErrorScreen) copy() (title, message, help, action string) {
	if s.mode == ErrorModeInvalid {
		return "Invalid Settings",
			fmt.Sprintf("The file %q contains invalid settings:", s.filename),
			"You can reset invalid settings to defaults, or exit to fix the file by hand.",
			"Reset and Continue"
	}
	return "Configuration Error",
		fmt.Sprintf("The file %q is invalid or corrupted.", s.filename),
		"You can delete the file and start fresh, or exit to fix the file by hand.",
		"Delete and Continue"
}

// OnEnter is called when entering the error screen
func (s *ErrorScreen) OnEnter() {
	s.SetDefaultFocus("action")
}

// EnsureFocusedVisible is a no-op; the error screen never scrolls.
func (s *ErrorScreen) EnsureFocusedVisible(widget.Focuser) {}
