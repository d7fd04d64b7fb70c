package screens

import (
	"image"
	"image/color"
	"testing"

	eimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/justdots/dots/carousel"
	"github.com/justdots/dots/standalone/types"
)

// testButton creates a minimal Button for testing
func testButton() *widget.Button {
	return widget.NewButton(widget.ButtonOpts.Image(&widget.ButtonImage{
		Idle: eimage.NewNineSliceColor(color.NRGBA{}),
	}))
}

// placedButton creates a button laid out at r.
func placedButton(r image.Rectangle) *widget.Button {
	btn := testButton()
	btn.GetWidget().Rect = r
	return btn
}

func newTestBase() *BaseScreen {
	b := &BaseScreen{}
	b.InitBase()
	return b
}

func TestRegisterNavZone(t *testing.T) {
	b := newTestBase()

	keys := []string{"lang", "mint"}
	b.RegisterNavZone("header", types.NavZoneHorizontal, keys)

	zone := b.navZones["header"]
	if zone == nil {
		t.Fatal("zone should be registered")
	}
	if zone.Type != types.NavZoneHorizontal || len(zone.Keys) != 2 {
		t.Errorf("zone = %+v", zone)
	}
	for _, key := range keys {
		if b.buttonToZone[key] != "header" {
			t.Errorf("button %q should map to zone 'header'", key)
		}
	}
}

func TestSetNavTransition(t *testing.T) {
	b := newTestBase()
	b.SetNavTransition("header", types.DirDown, "gallery", types.NavIndexFirst)

	tr := b.navTransitions["header"][types.DirDown]
	if tr == nil {
		t.Fatal("down transition should exist")
	}
	if tr.ToZone != "gallery" || tr.ToIndex != types.NavIndexFirst {
		t.Errorf("transition = %+v", tr)
	}
}

func TestPendingFocus(t *testing.T) {
	b := newTestBase()

	b.SetDefaultFocus("lang")
	if b.pendingFocus != "lang" {
		t.Errorf("pendingFocus = %q, want 'lang'", b.pendingFocus)
	}
	b.SetDefaultFocus("cta")
	if b.pendingFocus != "lang" {
		t.Errorf("SetDefaultFocus should not override, got %q", b.pendingFocus)
	}
	b.SetPendingFocus("cta")
	if b.pendingFocus != "cta" {
		t.Errorf("SetPendingFocus should override, got %q", b.pendingFocus)
	}
	if b.GetPendingFocusButton() != nil {
		t.Error("unregistered key should return nil")
	}

	btn := testButton()
	b.RegisterFocusButton("cta", btn)
	if b.GetPendingFocusButton() != btn {
		t.Error("registered key should return its button")
	}

	b.ClearPendingFocus()
	if b.pendingFocus != "" || b.GetPendingFocusButton() != nil {
		t.Error("pending focus should be cleared")
	}
}

func TestClearFocusButtons(t *testing.T) {
	b := newTestBase()

	b.RegisterFocusButton("a", testButton())
	b.RegisterNavZone("zone1", types.NavZoneHorizontal, []string{"a", "b"})
	b.SetNavTransition("zone1", types.DirDown, "zone2", 0)

	b.ClearFocusButtons()

	if len(b.focusButtons) != 0 || len(b.focusKeys) != 0 || len(b.navZones) != 0 || len(b.navTransitions) != 0 || len(b.buttonToZone) != 0 {
		t.Error("all focus state should be empty")
	}
}

func TestNavZoneMove(t *testing.T) {
	horizontal := &NavZone{Type: types.NavZoneHorizontal, Keys: make([]string, 5)}
	vertical := &NavZone{Type: types.NavZoneVertical, Keys: make([]string, 5)}

	tests := []struct {
		name       string
		zone       *NavZone
		index      int
		dir        int
		wantIndex  int
		transition bool
	}{
		{"left", horizontal, 2, types.DirLeft, 1, false},
		{"left edge", horizontal, 0, types.DirLeft, -1, true},
		{"right", horizontal, 1, types.DirRight, 2, false},
		{"right edge", horizontal, 4, types.DirRight, -1, true},
		{"up exits row", horizontal, 2, types.DirUp, -1, true},
		{"down exits row", horizontal, 2, types.DirDown, -1, true},
		{"none", horizontal, 2, types.DirNone, -1, false},
		{"up", vertical, 2, types.DirUp, 1, false},
		{"up edge", vertical, 0, types.DirUp, -1, true},
		{"down", vertical, 1, types.DirDown, 2, false},
		{"down edge", vertical, 4, types.DirDown, -1, true},
		{"left exits column", vertical, 2, types.DirLeft, -1, true},
		{"right exits column", vertical, 2, types.DirRight, -1, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			idx, tr := tc.zone.move(tc.index, tc.dir)
			if idx != tc.wantIndex || tr != tc.transition {
				t.Errorf("got (%d, %v), want (%d, %v)", idx, tr, tc.wantIndex, tc.transition)
			}
		})
	}
}

func TestStepperZoneStepsGallery(t *testing.T) {
	b := newTestBase()

	prev, next, choose := testButton(), testButton(), testButton()
	b.RegisterFocusButton("prev", prev)
	b.RegisterFocusButton("next", next)
	b.RegisterFocusButton("choose", choose)

	var steps []carousel.Direction
	b.RegisterStepperZone("gallery", "prev", "next", func(dir carousel.Direction) {
		steps = append(steps, dir)
	})
	b.RegisterNavZone("assets", types.NavZoneHorizontal, []string{"choose"})
	b.SetNavTransition("gallery", types.DirDown, "assets", types.NavIndexFirst)

	if got := b.FindFocusInDirection(prev, types.DirLeft); got != prev {
		t.Error("left on prev should keep focus on prev")
	}
	if got := b.FindFocusInDirection(prev, types.DirRight); got != next {
		t.Error("right on prev should move focus to next")
	}
	if got := b.FindFocusInDirection(next, types.DirRight); got != next {
		t.Error("right on next should keep focus on next")
	}
	want := []carousel.Direction{carousel.Backward, carousel.Forward, carousel.Forward}
	if len(steps) != len(want) {
		t.Fatalf("steps = %v, want %v", steps, want)
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Errorf("step %d = %v, want %v", i, steps[i], want[i])
		}
	}

	if got := b.FindFocusInDirection(next, types.DirDown); got != choose {
		t.Error("down should leave the gallery controls")
	}
	if len(steps) != 3 {
		t.Error("leaving the zone should not step the gallery")
	}
}

func TestStepperZoneWithoutStep(t *testing.T) {
	b := newTestBase()
	prev, next := testButton(), testButton()
	b.RegisterFocusButton("prev", prev)
	b.RegisterFocusButton("next", next)
	b.RegisterStepperZone("gallery", "prev", "next", nil)

	if got := b.FindFocusInDirection(next, types.DirLeft); got != prev {
		t.Error("left should still move focus to prev")
	}
}

func TestRevealScrollTop(t *testing.T) {
	view := image.Rect(0, 100, 400, 300)  // 200 tall
	content := image.Rect(0, 0, 400, 600) // 400 of scroll

	tests := []struct {
		name      string
		target    image.Rectangle
		scrollTop float64
		want      float64
		scroll    bool
	}{
		{"inside view", image.Rect(0, 150, 50, 180), 0.5, 0, false},
		{"below view", image.Rect(0, 320, 50, 350), 0, 60.0 / 400, true},
		{"above view", image.Rect(0, 60, 50, 90), 0.5, 150.0 / 400, true},
		{"clamped to top", image.Rect(0, 50, 50, 80), 0.1, 0, true},
		{"clamped to bottom", image.Rect(0, 500, 50, 530), 0.9, 1, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := revealScrollTop(view, content, tc.target, tc.scrollTop, 10)
			if ok != tc.scroll || got != tc.want {
				t.Errorf("got (%v, %v), want (%v, %v)", got, ok, tc.want, tc.scroll)
			}
		})
	}

	if _, ok := revealScrollTop(view, image.Rect(0, 0, 400, 150), image.Rect(0, 400, 10, 410), 0, 10); ok {
		t.Error("content shorter than the view should never scroll")
	}
}

func TestFindFocusSpatialForUnzonedButtons(t *testing.T) {
	b := newTestBase()

	origin := placedButton(image.Rect(100, 100, 140, 120))
	right := placedButton(image.Rect(200, 100, 240, 120))
	farRight := placedButton(image.Rect(300, 100, 340, 120))
	below := placedButton(image.Rect(100, 200, 140, 220))
	diagonal := placedButton(image.Rect(160, 160, 200, 180))
	b.RegisterFocusButton("origin", origin)
	b.RegisterFocusButton("right", right)
	b.RegisterFocusButton("far", farRight)
	b.RegisterFocusButton("below", below)
	b.RegisterFocusButton("diagonal", diagonal)

	tests := []struct {
		dir  int
		want *widget.Button
	}{
		{types.DirRight, right},
		{types.DirDown, below},
		{types.DirLeft, nil},
		{types.DirUp, nil},
	}
	for _, tc := range tests {
		if got := b.FindFocusInDirection(origin, tc.dir); got != tc.want {
			t.Errorf("direction %d: wrong target", tc.dir)
		}
	}
}

func TestHandleZoneTransition(t *testing.T) {
	b := newTestBase()

	prev, next, choose, cta := testButton(), testButton(), testButton(), testButton()
	b.RegisterFocusButton("prev", prev)
	b.RegisterFocusButton("next", next)
	b.RegisterFocusButton("choose", choose)
	b.RegisterFocusButton("cta", cta)
	b.RegisterNavZone("gallery", types.NavZoneHorizontal, []string{"prev", "next", "choose"})
	b.RegisterNavZone("cta", types.NavZoneVertical, []string{"cta"})

	if b.handleZoneTransition("gallery", types.DirDown) != nil {
		t.Error("should return nil when no transitions defined")
	}

	b.SetNavTransition("cta", types.DirUp, "gallery", types.NavIndexLast)
	b.SetNavTransition("gallery", types.DirDown, "cta", types.NavIndexFirst)
	b.SetNavTransition("gallery", types.DirUp, "missing", types.NavIndexFirst)

	if got := b.handleZoneTransition("cta", types.DirUp); got != choose {
		t.Error("NavIndexLast should pick the last button")
	}
	if got := b.handleZoneTransition("gallery", types.DirDown); got != cta {
		t.Error("NavIndexFirst should pick the first button")
	}
	if b.handleZoneTransition("gallery", types.DirUp) != nil {
		t.Error("should return nil when target zone doesn't exist")
	}
	if b.handleZoneTransition("gallery", types.DirLeft) != nil {
		t.Error("should return nil for undefined direction")
	}

	b.SetNavTransition("cta", types.DirUp, "gallery", 1)
	if got := b.handleZoneTransition("cta", types.DirUp); got != next {
		t.Error("explicit index should pick that button")
	}
}

func TestFindFocusInZone(t *testing.T) {
	b := newTestBase()

	prev, next := testButton(), testButton()
	b.RegisterFocusButton("prev", prev)
	b.RegisterFocusButton("next", next)
	b.RegisterNavZone("gallery", types.NavZoneHorizontal, []string{"prev", "next"})

	if got := b.FindFocusInDirection(prev, types.DirRight); got != next {
		t.Error("right from prev should reach next")
	}
	if got := b.FindFocusInDirection(next, types.DirLeft); got != prev {
		t.Error("left from next should reach prev")
	}
	if got := b.FindFocusInDirection(next, types.DirRight); got != nil {
		t.Error("right edge without a transition should stay put")
	}
	if got := b.FindFocusInDirection(testButton(), types.DirRight); got != nil {
		t.Error("unregistered button should not navigate")
	}
}

func TestFindFocusInDirectionNilCurrent(t *testing.T) {
	b := newTestBase()
	if b.FindFocusInDirection(nil, types.DirUp) != nil {
		t.Error("should return nil for nil current")
	}
}

func TestSaveFocusState(t *testing.T) {
	t.Run("nil focused", func(t *testing.T) {
		b := newTestBase()
		b.SaveFocusState(nil)
		if b.pendingFocus != "" {
			t.Errorf("pendingFocus should be empty, got %q", b.pendingFocus)
		}
	})

	t.Run("pending already set", func(t *testing.T) {
		b := newTestBase()
		btn := testButton()
		b.RegisterFocusButton("cta", btn)
		b.RegisterFocusButton("lang", testButton())
		b.SetPendingFocus("lang")
		b.SaveFocusState(btn)
		if b.pendingFocus != "lang" {
			t.Errorf("pendingFocus should remain 'lang', got %q", b.pendingFocus)
		}
	})

	t.Run("matches registered", func(t *testing.T) {
		b := newTestBase()
		btn := testButton()
		b.RegisterFocusButton("cta", btn)
		b.SaveFocusState(btn)
		if b.pendingFocus != "cta" {
			t.Errorf("pendingFocus = %q, want 'cta'", b.pendingFocus)
		}
	})

	t.Run("no match", func(t *testing.T) {
		b := newTestBase()
		b.RegisterFocusButton("cta", testButton())
		b.SaveFocusState(testButton())
		if b.pendingFocus != "" {
			t.Errorf("pendingFocus should be empty, got %q", b.pendingFocus)
		}
	})
}

func TestResetScroll(t *testing.T) {
	b := newTestBase()
	b.scrollTop = 0.4
	b.ResetScroll()
	if b.scrollTop != 0 {
		t.Errorf("scrollTop = %v after reset, want 0", b.scrollTop)
	}
}
