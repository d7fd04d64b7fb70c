// Package carousel implements a horizontally scrolling strip that
// auto-advances on a timer and loops by duplicating its item sequence.
// Rendering and timing are injected so the logic runs without a window.
package carousel

import (
	"math"
	"math/rand/v2"
)

// State is the lifecycle state of a Carousel.
type State int

const (
	// StateIdle is a constructed carousel with no sequence yet
	StateIdle State = iota
	// StateReady has a shuffled sequence and a mounted viewport
	StateReady
	// StateAdvancing has an armed timer that moves the strip
	StateAdvancing
	// StatePaused has an armed timer but suppresses advances
	StatePaused
	// StateUnmounted is terminal
	StateUnmounted
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateReady:
		return "Ready"
	case StateAdvancing:
		return "Advancing"
	case StatePaused:
		return "Paused"
	case StateUnmounted:
		return "Unmounted"
	default:
		return "Unknown"
	}
}

// Direction selects a manual step.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// Deps are the capabilities a Carousel drives. Any field may be nil;
// missing capabilities turn the matching operations into no-ops.
type Deps struct {
	Layout        LayoutProvider
	Scroller      Scroller
	Scheduler     Scheduler
	Resize        ResizeNotifier
	ReducedMotion func() bool // platform motion-reduction preference
	Rand          *rand.Rand  // shuffle source, global source when nil
}

// Carousel holds the item sequence and the scroll state machine.
// It is not safe for concurrent use; drive it from one goroutine.
type Carousel struct {
	opts  Options
	deps  Deps
	items []Item

	base []Item
	loop []Item

	state  State
	paused bool
	step   float64

	stopTimer    func()
	removeResize func()
}

// New creates an idle carousel for items. The items are not shuffled until Mount.
func New(items []Item, opts Options, deps Deps) *Carousel {
	opts = opts.withDefaults()
	return &Carousel{
		opts:  opts,
		deps:  deps,
		items: items,
		state: StateIdle,
		step:  opts.NominalStep(),
	}
}

// Mount shuffles the sequence once, subscribes to resize events, measures the
// step and arms the auto-advance timer. Calling Mount again has no effect.
func (c *Carousel) Mount() {
	if c.state != StateIdle {
		return
	}
	c.base = Shuffle(c.items, c.deps.Rand)
	c.loop = LoopSequence(c.base)
	c.state = StateReady

	if c.deps.Resize != nil {
		c.removeResize = c.deps.Resize.OnResize(c.RecomputeStep)
	}
	c.RecomputeStep()

	if c.deps.Scheduler == nil || c.motionReduced() {
		return
	}
	c.stopTimer = c.deps.Scheduler.Every(c.opts.AutoAdvanceInterval, c.Tick)
	if c.paused {
		c.state = StatePaused
	} else {
		c.state = StateAdvancing
	}
}

func (c *Carousel) motionReduced() bool {
	return c.opts.RespectReducedMotion && c.deps.ReducedMotion != nil && c.deps.ReducedMotion()
}

// Tick advances the strip by one step. Within one step of the end it snaps
// back to 0 without animation, where the duplicated half looks identical.
func (c *Carousel) Tick() {
	if c.state != StateAdvancing {
		return
	}
	vp, ok := c.viewport()
	if !ok {
		return
	}
	maxScroll := vp.MaxScroll()
	if maxScroll <= 0 {
		return
	}
	next := math.Min(vp.ScrollLeft+c.step, maxScroll)
	if next >= maxScroll-c.step {
		c.scrollTo(0, false)
		return
	}
	c.scrollTo(next, true)
}

// StepManual moves one step in dir, clamped to the scrollable range.
// The auto-advance timer keeps its phase.
func (c *Carousel) StepManual(dir Direction) {
	if c.state == StateIdle || c.state == StateUnmounted {
		return
	}
	c.RecomputeStep()
	vp, ok := c.viewport()
	if !ok {
		return
	}
	target := vp.ScrollLeft + c.step
	if dir == Backward {
		target = vp.ScrollLeft - c.step
	}
	maxScroll := math.Max(vp.MaxScroll(), 0)
	target = math.Max(0, math.Min(target, maxScroll))
	c.scrollTo(target, true)
}

// RecomputeStep measures the first card width plus the track gap. Either
// measurement falls back to its nominal value when layout is unavailable.
func (c *Carousel) RecomputeStep() {
	if c.state == StateUnmounted {
		return
	}
	width := float64(c.opts.CardWidth())
	gap := float64(FallbackGap)
	if c.deps.Layout != nil {
		if w, ok := c.deps.Layout.MeasureFirstItemWidth(); ok && w > 0 {
			width = w
		}
		if g, ok := c.deps.Layout.MeasureGap(); ok && g >= 0 {
			gap = g
		}
	}
	c.step = width + gap
}

// PointerEnter pauses auto-advance while the pointer is over the viewport.
func (c *Carousel) PointerEnter() {
	if c.state == StateUnmounted {
		return
	}
	c.paused = true
	if c.state == StateAdvancing {
		c.state = StatePaused
	}
}

// PointerLeave resumes auto-advance.
func (c *Carousel) PointerLeave() {
	if c.state == StateUnmounted {
		return
	}
	c.paused = false
	if c.state == StatePaused {
		c.state = StateAdvancing
	}
}

// Unmount cancels the timer and the resize subscription. Every later call is a no-op.
func (c *Carousel) Unmount() {
	if c.state == StateUnmounted {
		return
	}
	if c.stopTimer != nil {
		c.stopTimer()
		c.stopTimer = nil
	}
	if c.removeResize != nil {
		c.removeResize()
		c.removeResize = nil
	}
	c.state = StateUnmounted
}

func (c *Carousel) viewport() (Viewport, bool) {
	if c.deps.Layout == nil {
		return Viewport{}, false
	}
	return c.deps.Layout.MeasureViewport()
}

func (c *Carousel) scrollTo(offset float64, smooth bool) {
	if c.deps.Scroller != nil {
		c.deps.Scroller.ScrollTo(offset, smooth)
	}
}

// State returns the current lifecycle state.
func (c *Carousel) State() State { return c.state }

// Paused reports whether the pointer is holding the strip.
func (c *Carousel) Paused() bool { return c.paused }

// StepSize returns the last computed step in pixels.
func (c *Carousel) StepSize() float64 { return c.step }

// Base returns the shuffled sequence. It is nil before Mount.
func (c *Carousel) Base() []Item { return c.base }

// Loop returns the base sequence followed by itself.
func (c *Carousel) Loop() []Item { return c.loop }

// Options returns the effective options.
func (c *Carousel) Options() Options { return c.opts }
