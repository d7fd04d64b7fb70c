package pixelart

import (
	"context"
	"image"
	"sync"

	"github.com/charmbracelet/log"
)

// Loader fetches a bitmap. Implementations should honor ctx cancellation
// but are not required to; late results are discarded by the Renderer.
type Loader interface {
	Load(ctx context.Context, src string) (image.Image, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(ctx context.Context, src string) (image.Image, error)

// Load calls f.
func (f LoaderFunc) Load(ctx context.Context, src string) (image.Image, error) {
	return f(ctx, src)
}

// Status reports what a Renderer's surface currently holds.
type Status int

const (
	StatusEmpty Status = iota
	StatusLoading
	StatusReady
	StatusFailed
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case StatusEmpty:
		return "Empty"
	case StatusLoading:
		return "Loading"
	case StatusReady:
		return "Ready"
	case StatusFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Renderer owns the upscaled surface for one (source, sizing) input.
// Changing the input starts a new asynchronous load and supersedes any
// load still in flight: results are keyed on an input generation and
// dropped when the generation has moved on.
type Renderer struct {
	loader   Loader
	logger   *log.Logger
	onChange func()

	mu      sync.Mutex
	gen     uint64
	src     string
	sizing  Sizing
	cancel  context.CancelFunc
	surface *image.NRGBA
	status  Status
	version uint64
	closed  bool

	inflight sync.WaitGroup
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithLogger sets the logger used for load failures.
func WithLogger(l *log.Logger) RendererOption {
	return func(r *Renderer) { r.logger = l }
}

// WithOnChange sets a callback run after each committed result. It is
// called from the load goroutine.
func WithOnChange(fn func()) RendererOption {
	return func(r *Renderer) { r.onChange = fn }
}

// NewRenderer creates an empty renderer that loads through loader.
func NewRenderer(loader Loader, opts ...RendererOption) *Renderer {
	r := &Renderer{loader: loader}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = log.Default()
	}
	return r
}

// Set changes the input. Setting the current input again does nothing.
// An empty src clears the surface.
func (r *Renderer) Set(src string, sizing Sizing) {
	r.mu.Lock()
	if r.closed || (r.status != StatusEmpty && src == r.src && sizing == r.sizing) {
		r.mu.Unlock()
		return
	}
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.gen++
	r.src = src
	r.sizing = sizing

	if src == "" {
		r.surface = nil
		r.status = StatusEmpty
		r.version++
		r.mu.Unlock()
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.status = StatusLoading
	gen := r.gen
	r.inflight.Add(1)
	r.mu.Unlock()

	go r.load(ctx, cancel, gen, src, sizing)
}

func (r *Renderer) load(ctx context.Context, cancel context.CancelFunc, gen uint64, src string, sizing Sizing) {
	defer r.inflight.Done()
	defer cancel()

	img, err := r.loader.Load(ctx, src)
	var surface *image.NRGBA
	if err == nil {
		surface = Render(img, sizing)
	}

	r.mu.Lock()
	if r.closed || gen != r.gen {
		r.mu.Unlock()
		return
	}
	r.cancel = nil
	if err != nil {
		r.surface = nil
		r.status = StatusFailed
	} else {
		r.surface = surface
		r.status = StatusReady
	}
	r.version++
	onChange := r.onChange
	r.mu.Unlock()

	if err != nil {
		r.logger.Warn("image load failed", "src", src, "err", err)
	}
	if onChange != nil {
		onChange()
	}
}

// Snapshot returns the current surface, its status and a version that
// changes on every committed result. The surface must not be modified.
func (r *Renderer) Snapshot() (*image.NRGBA, Status, uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.surface, r.status, r.version
}

// Source returns the current input source.
func (r *Renderer) Source() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src
}

// Close cancels any load in flight. Later results and calls are ignored.
func (r *Renderer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	r.gen++
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}

// Wait blocks until every started load has returned.
func (r *Renderer) Wait() {
	r.inflight.Wait()
}
