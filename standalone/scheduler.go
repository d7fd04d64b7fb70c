package standalone

import (
	"slices"
	"sync"
	"time"
)

// FrameScheduler runs repeating callbacks from the game loop. Callbacks fire
// inside Update, on the same goroutine that draws, so they may touch UI
// state without locking.
type FrameScheduler struct {
	mu      sync.Mutex
	now     func() time.Time
	nextID  int
	entries map[int]*scheduled
}

type scheduled struct {
	every time.Duration
	due   time.Time
	fn    func()
}

// NewFrameScheduler creates a scheduler using the wall clock.
func NewFrameScheduler() *FrameScheduler {
	return newFrameSchedulerWithClock(time.Now)
}

func newFrameSchedulerWithClock(now func() time.Time) *FrameScheduler {
	return &FrameScheduler{
		now:     now,
		entries: make(map[int]*scheduled),
	}
}

// Every registers fn to run every d. The first run is one interval from now.
func (s *FrameScheduler) Every(d time.Duration, fn func()) (stop func()) {
	if d <= 0 || fn == nil {
		return func() {}
	}
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.entries[id] = &scheduled{every: d, due: s.now().Add(d), fn: fn}
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.entries, id)
			s.mu.Unlock()
		})
	}
}

// Update fires every due callback once, in registration order. A callback
// that fell behind by several intervals runs once and is rescheduled from now.
func (s *FrameScheduler) Update() {
	now := s.now()

	s.mu.Lock()
	var due []int
	for id, e := range s.entries {
		if !now.Before(e.due) {
			due = append(due, id)
		}
	}
	s.mu.Unlock()
	slices.Sort(due)

	for _, id := range due {
		s.mu.Lock()
		e, ok := s.entries[id]
		if ok {
			e.due = now.Add(e.every)
		}
		s.mu.Unlock()
		// A callback earlier in this pass may have stopped this one.
		if ok {
			e.fn()
		}
	}
}

// Len returns the number of active callbacks.
func (s *FrameScheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
