package standalone

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/justdots/dots/carousel"
	"github.com/justdots/dots/standalone/style"
	"github.com/justdots/dots/standalone/types"
)

// GlobalInput holds the shortcuts that work on every screen.
type GlobalInput struct {
	Screenshot bool
	Fullscreen bool
	// StepGallery is set when the gallery should move one card in GalleryDir.
	StepGallery bool
	GalleryDir  carousel.Direction
}

// UINavigation represents the result of UI input polling
type UINavigation struct {
	Direction    int  // 0=none, 1=up, 2=down, 3=left, 4=right
	Activate     bool // A/Cross button just pressed
	Back         bool // B/Circle button just pressed
	FocusChanged bool // True if navigation caused focus change this frame
}

// InputManager handles all input for UI navigation.
// It tracks gamepad state, handles repeat navigation, and provides
// a clean interface for UI code to query input state.
type InputManager struct {
	// Navigation state for repeat handling
	direction   int           // 0=none, 1=up, 2=down, 3=left, 4=right
	startTime   time.Time     // When direction was first pressed
	lastMove    time.Time     // When last move occurred
	repeatDelay time.Duration // Current repeat interval

	now func() time.Time
}

// NewInputManager creates a new input manager
func NewInputManager() *InputManager {
	return &InputManager{
		repeatDelay: style.NavStartInterval,
		now:         time.Now,
	}
}

// Update polls global shortcuts. Should be called once per frame.
// F12 takes a screenshot, F11 toggles fullscreen, and the comma and period
// keys or the gamepad shoulder buttons step the gallery.
func (im *InputManager) Update() GlobalInput {
	in := GlobalInput{
		Screenshot: inpututil.IsKeyJustPressed(ebiten.KeyF12),
		Fullscreen: inpututil.IsKeyJustPressed(ebiten.KeyF11),
	}

	back := inpututil.IsKeyJustPressed(ebiten.KeyComma)
	forward := inpututil.IsKeyJustPressed(ebiten.KeyPeriod)
	if id, ok := firstGamepad(); ok {
		back = back || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontTopLeft)
		forward = forward || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontTopRight)
	}
	if forward != back {
		in.StepGallery = true
		in.GalleryDir = carousel.Forward
		if back {
			in.GalleryDir = carousel.Backward
		}
	}
	return in
}

func firstGamepad() (ebiten.GamepadID, bool) {
	ids := ebiten.AppendGamepadIDs(nil)
	if len(ids) == 0 {
		return 0, false
	}
	return ids[0], true
}

// GetUINavigation returns the current UI navigation state.
// This handles keyboard arrow keys and gamepad D-pad/analog stick with repeat navigation,
// and A/B button presses.
func (im *InputManager) GetUINavigation() UINavigation {
	result := UINavigation{}

	// Navigation direction flags - keyboard and gamepad both contribute
	navUp := ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	navDown := ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	navLeft := ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	navRight := ebiten.IsKeyPressed(ebiten.KeyArrowRight)

	gamepadID, hasGamepad := firstGamepad()
	if hasGamepad {
		// D-pad
		navUp = navUp || ebiten.IsStandardGamepadButtonPressed(gamepadID, ebiten.StandardGamepadButtonLeftTop)
		navDown = navDown || ebiten.IsStandardGamepadButtonPressed(gamepadID, ebiten.StandardGamepadButtonLeftBottom)
		navLeft = navLeft || ebiten.IsStandardGamepadButtonPressed(gamepadID, ebiten.StandardGamepadButtonLeftLeft)
		navRight = navRight || ebiten.IsStandardGamepadButtonPressed(gamepadID, ebiten.StandardGamepadButtonLeftRight)

		// Analog stick (0.5 threshold for UI)
		axisY := ebiten.StandardGamepadAxisValue(gamepadID, ebiten.StandardGamepadAxisLeftStickVertical)
		axisX := ebiten.StandardGamepadAxisValue(gamepadID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		navUp = navUp || axisY < -0.5
		navDown = navDown || axisY > 0.5
		navLeft = navLeft || axisX < -0.5
		navRight = navRight || axisX > 0.5
	}

	// Vertical takes priority for menu-like behavior
	desiredDir := types.DirNone
	switch {
	case navUp:
		desiredDir = types.DirUp
	case navDown:
		desiredDir = types.DirDown
	case navLeft:
		desiredDir = types.DirLeft
	case navRight:
		desiredDir = types.DirRight
	}

	result.Direction = im.repeat(desiredDir)
	result.FocusChanged = result.Direction != types.DirNone

	// Activate: A button (gamepad only - Enter/Space handled by ebitenui)
	if hasGamepad {
		result.Activate = inpututil.IsStandardGamepadButtonJustPressed(gamepadID, ebiten.StandardGamepadButtonRightBottom)
	}

	// Back: ESC (keyboard) or B button (gamepad)
	result.Back = inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		(hasGamepad && inpututil.IsStandardGamepadButtonJustPressed(gamepadID, ebiten.StandardGamepadButtonRightRight))

	return result
}

// repeat applies hold-to-repeat with acceleration to the held direction.
// It returns the direction to move this frame, or DirNone.
func (im *InputManager) repeat(desiredDir int) int {
	now := im.now()

	switch {
	case desiredDir == types.DirNone:
		im.direction = types.DirNone
		im.repeatDelay = style.NavStartInterval
		return types.DirNone
	case desiredDir != im.direction:
		// Direction changed - move immediately and start tracking
		im.direction = desiredDir
		im.startTime = now
		im.lastMove = now
		im.repeatDelay = style.NavStartInterval
		return desiredDir
	}

	if now.Sub(im.startTime) < style.NavInitialDelay || now.Sub(im.lastMove) < im.repeatDelay {
		return types.DirNone
	}
	im.lastMove = now
	im.repeatDelay = max(im.repeatDelay-style.NavAcceleration, style.NavMinInterval)
	return desiredDir
}
