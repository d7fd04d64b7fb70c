package screens

import (
	"image"
	"maps"
	"math"
	"slices"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/justdots/dots/carousel"
	"github.com/justdots/dots/standalone/style"
	"github.com/justdots/dots/standalone/types"
)

// NavZone is a row or column of buttons walked with the arrow keys.
type NavZone struct {
	Type string   // types.NavZoneHorizontal, NavZoneVertical or NavZoneStepper
	Keys []string // Button keys in order (left-to-right or top-to-bottom)

	// Step moves the gallery strip for a stepper zone.
	Step func(dir carousel.Direction)
}

// NavTransition defines where to go when leaving a zone
type NavTransition struct {
	ToZone  string // Target zone name
	ToIndex int    // Index in target zone, or types.NavIndexFirst/NavIndexLast
}

// BaseScreen holds the scroll and focus state shared by the poster, terms
// and error screens. Widgets are rebuilt on every language switch, asset
// change and resize, so buttons are tracked by key and focus and scroll
// position are carried across rebuilds.
type BaseScreen struct {
	scrollContainer *widget.ScrollContainer
	vSlider         *widget.Slider
	scrollTop       float64 // fraction of the scrollable height

	focusButtons map[string]*widget.Button
	focusKeys    map[*widget.Widget]string
	pendingFocus string

	navZones       map[string]*NavZone
	navTransitions map[string]map[int]*NavTransition
	buttonToZone   map[string]string
}

// InitBase prepares the focus tables. Call it from the screen's constructor.
func (b *BaseScreen) InitBase() {
	b.ClearFocusButtons()
}

// SetScrollWidgets stores the page's scroll container and slider.
// Call this during Build() after creating the scroll container.
func (b *BaseScreen) SetScrollWidgets(scrollContainer *widget.ScrollContainer, vSlider *widget.Slider) {
	b.scrollContainer = scrollContainer
	b.vSlider = vSlider
}

// SaveScrollPosition saves the current scroll position.
// Call this before rebuilding the screen.
func (b *BaseScreen) SaveScrollPosition() {
	if b.scrollContainer != nil {
		b.scrollTop = b.scrollContainer.ScrollTop
	}
}

// RestoreScrollPosition reapplies the saved position to a rebuilt page.
func (b *BaseScreen) RestoreScrollPosition() {
	if b.scrollContainer != nil && b.scrollTop > 0 {
		b.setScrollTop(b.scrollTop)
	}
}

// ResetScroll forgets the saved scroll position so the next build starts at the top.
func (b *BaseScreen) ResetScroll() {
	b.scrollTop = 0
}

func (b *BaseScreen) setScrollTop(top float64) {
	b.scrollContainer.ScrollTop = top
	if b.vSlider != nil {
		b.vSlider.Current = int(top * 1000)
	}
}

// RegisterFocusButton registers a button under key for focus restoration
// and zone navigation. Call this during Build() for each focusable button.
func (b *BaseScreen) RegisterFocusButton(key string, btn *widget.Button) {
	if b.focusButtons == nil {
		b.ClearFocusButtons()
	}
	b.focusButtons[key] = btn
	b.focusKeys[btn.GetWidget()] = key
}

// keyOf returns the key focused was registered under, or "".
func (b *BaseScreen) keyOf(focused widget.Focuser) string {
	if focused == nil {
		return ""
	}
	w := focused.GetWidget()
	if w == nil {
		return ""
	}
	return b.focusKeys[w]
}

// SaveFocusState remembers which registered button has focus so a rebuild
// triggered by a language switch or a new image pack keeps it.
// Does nothing if pendingFocus is already set (e.g., by OnEnter).
func (b *BaseScreen) SaveFocusState(focused widget.Focuser) {
	if b.pendingFocus != "" {
		return
	}
	b.pendingFocus = b.keyOf(focused)
}

// ClearFocusButtons clears all registered focus buttons and navigation zones.
// Call this at the start of Build() before registering new buttons.
func (b *BaseScreen) ClearFocusButtons() {
	b.focusButtons = make(map[string]*widget.Button)
	b.focusKeys = make(map[*widget.Widget]string)
	b.navZones = make(map[string]*NavZone)
	b.navTransitions = make(map[string]map[int]*NavTransition)
	b.buttonToZone = make(map[string]string)
}

// SetPendingFocus sets the key of the button to focus after rebuild.
func (b *BaseScreen) SetPendingFocus(key string) {
	b.pendingFocus = key
}

// SetDefaultFocus sets the pending focus only if no focus is currently pending.
func (b *BaseScreen) SetDefaultFocus(key string) {
	if b.pendingFocus == "" {
		b.pendingFocus = key
	}
}

// GetPendingFocusButton returns the button that should receive focus after
// rebuild, or nil.
func (b *BaseScreen) GetPendingFocusButton() *widget.Button {
	if b.pendingFocus == "" {
		return nil
	}
	return b.focusButtons[b.pendingFocus]
}

// ClearPendingFocus clears the pending focus state.
func (b *BaseScreen) ClearPendingFocus() {
	b.pendingFocus = ""
}

// RegisterNavZone registers a row or column of buttons.
// zoneType should be types.NavZoneHorizontal or types.NavZoneVertical.
func (b *BaseScreen) RegisterNavZone(name string, zoneType string, keys []string) {
	b.addZone(name, &NavZone{Type: zoneType, Keys: keys})
}

// RegisterStepperZone registers the gallery's back and forward buttons.
// Left and Right step the strip through step and put focus on the button
// for that direction, so holding an arrow keeps the gallery moving.
// Up and Down leave the zone.
func (b *BaseScreen) RegisterStepperZone(name, backKey, forwardKey string, step func(dir carousel.Direction)) {
	b.addZone(name, &NavZone{
		Type: types.NavZoneStepper,
		Keys: []string{backKey, forwardKey},
		Step: step,
	})
}

func (b *BaseScreen) addZone(name string, zone *NavZone) {
	b.navZones[name] = zone
	for _, key := range zone.Keys {
		b.buttonToZone[key] = name
	}
}

// SetNavTransition defines where to navigate when leaving a zone in a direction.
func (b *BaseScreen) SetNavTransition(fromZone string, direction int, toZone string, toIndex int) {
	if b.navTransitions[fromZone] == nil {
		b.navTransitions[fromZone] = make(map[int]*NavTransition)
	}
	b.navTransitions[fromZone][direction] = &NavTransition{
		ToZone:  toZone,
		ToIndex: toIndex,
	}
}

// EnsureFocusedVisible scrolls the page so the focused button, plus a small
// margin, is inside the view. The isScrollableButton function should return
// true if the focused widget should trigger scrolling. Pass nil to scroll
// for every button.
func (b *BaseScreen) EnsureFocusedVisible(focused widget.Focuser, isScrollableButton func(*widget.Button) bool) {
	if focused == nil || b.scrollContainer == nil {
		return
	}
	btn, ok := focused.(*widget.Button)
	if !ok || (isScrollableButton != nil && !isScrollableButton(btn)) {
		return
	}
	top, ok := revealScrollTop(
		b.scrollContainer.ViewRect(),
		b.scrollContainer.ContentRect(),
		btn.GetWidget().Rect,
		b.scrollContainer.ScrollTop,
		style.SmallSpacing,
	)
	if ok {
		b.setScrollTop(top)
	}
}

// revealScrollTop returns the scroll fraction that brings target, padded by
// margin, into view with the least movement. target is in screen space, so
// it already reflects scrollTop. It reports false when no scroll is needed.
func revealScrollTop(view, content, target image.Rectangle, scrollTop float64, margin int) (float64, bool) {
	maxScroll := content.Dy() - view.Dy()
	if maxScroll <= 0 {
		return 0, false
	}
	offset := int(scrollTop * float64(maxScroll))
	top := target.Min.Y - view.Min.Y - margin
	bottom := target.Max.Y - view.Min.Y + margin
	switch {
	case top < 0:
		offset += top
	case bottom > view.Dy():
		offset += bottom - view.Dy()
	default:
		return 0, false
	}
	offset = max(0, min(offset, maxScroll))
	return float64(offset) / float64(maxScroll), true
}

// FindFocusInDirection returns the button to focus when direction is
// pressed on current. Zoned buttons follow their zone; other registered
// buttons use the nearest button on screen. A stepper zone may return
// current itself after stepping the gallery. Returns nil if no target.
func (b *BaseScreen) FindFocusInDirection(current widget.Focuser, direction int) *widget.Button {
	key := b.keyOf(current)
	if key == "" {
		return nil
	}
	if zoneName, ok := b.buttonToZone[key]; ok {
		return b.moveInZone(zoneName, key, direction)
	}
	return b.findFocusSpatial(current.GetWidget(), direction)
}

func (b *BaseScreen) moveInZone(zoneName, key string, direction int) *widget.Button {
	zone := b.navZones[zoneName]
	if zone == nil {
		return nil
	}
	index := slices.Index(zone.Keys, key)
	if index < 0 {
		return nil
	}
	target, leave := zone.move(index, direction)
	if leave {
		return b.handleZoneTransition(zoneName, direction)
	}
	if target < 0 {
		return nil
	}
	return b.focusButtons[zone.Keys[target]]
}

// move returns the index reached from index, or leave when the move crosses
// the zone's edge or runs across its axis.
func (z *NavZone) move(index, direction int) (target int, leave bool) {
	if direction == types.DirNone {
		return -1, false
	}
	back, forward := types.DirLeft, types.DirRight
	if z.Type == types.NavZoneVertical {
		back, forward = types.DirUp, types.DirDown
	}
	last := len(z.Keys) - 1

	if z.Type == types.NavZoneStepper {
		switch direction {
		case back:
			z.step(carousel.Backward)
			return 0, false
		case forward:
			z.step(carousel.Forward)
			return last, false
		}
		return -1, true
	}

	switch direction {
	case back:
		if index > 0 {
			return index - 1, false
		}
	case forward:
		if index < last {
			return index + 1, false
		}
	}
	return -1, true
}

func (z *NavZone) step(dir carousel.Direction) {
	if z.Step != nil {
		z.Step(dir)
	}
}

// handleZoneTransition returns the button entered when leaving fromZone.
func (b *BaseScreen) handleZoneTransition(fromZone string, direction int) *widget.Button {
	tr := b.navTransitions[fromZone][direction]
	if tr == nil {
		return nil
	}
	to := b.navZones[tr.ToZone]
	if to == nil || len(to.Keys) == 0 {
		return nil
	}
	i := 0
	switch {
	case tr.ToIndex == types.NavIndexLast:
		i = len(to.Keys) - 1
	case tr.ToIndex >= 0 && tr.ToIndex < len(to.Keys):
		i = tr.ToIndex
	}
	return b.focusButtons[to.Keys[i]]
}

// findFocusSpatial picks the registered button nearest to from in
// direction. Ties go to the lowest key.
func (b *BaseScreen) findFocusSpatial(from *widget.Widget, direction int) *widget.Button {
	if from == nil {
		return nil
	}
	origin := center(from.Rect)

	var best *widget.Button
	bestDist := math.MaxInt
	for _, key := range slices.Sorted(maps.Keys(b.focusButtons)) {
		btn := b.focusButtons[key]
		w := btn.GetWidget()
		if w == from {
			continue
		}
		dist, ok := spatialDistance(center(w.Rect).Sub(origin), direction)
		if ok && dist < bestDist {
			best, bestDist = btn, dist
		}
	}
	return best
}

func center(r image.Rectangle) image.Point {
	return image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

// spatialDistance scores offset d for a move in direction; drift off the
// travel axis counts four times. It reports false when d points elsewhere.
func spatialDistance(d image.Point, direction int) (int, bool) {
	switch direction {
	case types.DirUp:
		return 4*d.X*d.X + d.Y*d.Y, d.Y < 0
	case types.DirDown:
		return 4*d.X*d.X + d.Y*d.Y, d.Y > 0
	case types.DirLeft:
		return d.X*d.X + 4*d.Y*d.Y, d.X < 0
	case types.DirRight:
		return d.X*d.X + 4*d.Y*d.Y, d.X > 0
	}
	return 0, false
}
