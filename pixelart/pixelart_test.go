package pixelart

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

// testImage returns a w x h image where each pixel has a distinct color.
func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x * 20), uint8(y * 15), uint8(x + y), 0xff})
		}
	}
	return img
}

func TestResolveScale(t *testing.T) {
	tests := []struct {
		name     string
		sizing   Sizing
		srcWidth int
		expected int
	}{
		{"default", Sizing{}, 10, 1},
		{"explicit", Sizing{Scale: 3}, 10, 3},
		{"explicit wins over target", Sizing{Scale: 2, TargetWidth: 480}, 10, 2},
		{"target 48 over 10", Sizing{TargetWidth: 48}, 10, 5},
		{"target 64 over 10", Sizing{TargetWidth: 64}, 10, 6},
		{"target rounds half up", Sizing{TargetWidth: 25}, 10, 3},
		{"target below source", Sizing{TargetWidth: 3}, 10, 1},
		{"zero explicit falls to target", Sizing{Scale: 0, TargetWidth: 120}, 10, 12},
		{"negative explicit falls to target", Sizing{Scale: -4, TargetWidth: 20}, 10, 2},
		{"zero width source", Sizing{TargetWidth: 48}, 0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveScale(tc.sizing, tc.srcWidth)
			if got != tc.expected {
				t.Errorf("ResolveScale(%+v, %d) = %d, want %d", tc.sizing, tc.srcWidth, got, tc.expected)
			}
		})
	}
}

func TestUpscaleBlocks(t *testing.T) {
	src := testImage(10, 14)
	for _, scale := range []int{1, 2, 5, 12} {
		dst := Upscale(src, scale)
		if dst.Bounds().Dx() != 10*scale || dst.Bounds().Dy() != 14*scale {
			t.Fatalf("scale %d: size %v", scale, dst.Bounds())
		}
		for y := 0; y < dst.Bounds().Dy(); y++ {
			for x := 0; x < dst.Bounds().Dx(); x++ {
				want := src.NRGBAAt(x/scale, y/scale)
				if got := dst.NRGBAAt(x, y); got != want {
					t.Fatalf("scale %d: pixel (%d,%d) = %v, want %v", scale, x, y, got, want)
				}
			}
		}
	}
}

func TestRenderTargetWidth(t *testing.T) {
	dst := Render(testImage(10, 14), Sizing{TargetWidth: 48})
	if dst.Bounds().Dx() != 50 || dst.Bounds().Dy() != 70 {
		t.Errorf("size = %v, want 50x70", dst.Bounds().Size())
	}
}

func TestDiscDeterministic(t *testing.T) {
	a := Disc(120, 0.5, DiscSize)
	b := Disc(120, 0.5, DiscSize)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("Disc output differs between calls")
	}

	c := Disc(120, 0.25, DiscSize)
	if bytes.Equal(a.Pix, c.Pix) {
		t.Error("different seeds produced identical discs")
	}
}

func TestDiscShape(t *testing.T) {
	img := Disc(200, 0.3, DiscSize)

	// Corners are outside the radius.
	for _, p := range []image.Point{{0, 0}, {95, 0}, {0, 95}, {95, 95}} {
		if a := img.NRGBAAt(p.X, p.Y).A; a != 0 {
			t.Errorf("corner %v alpha = %d, want 0", p, a)
		}
	}
	// Center and points on the axis just inside the radius are filled.
	for _, p := range []image.Point{{48, 48}, {48, 2}, {2, 48}, {94, 48}} {
		if a := img.NRGBAAt(p.X, p.Y).A; a != 0xff {
			t.Errorf("interior %v alpha = %d, want 255", p, a)
		}
	}
	// 0.48*96 = 46.08, so (48, 1) is outside.
	if a := img.NRGBAAt(48, 1).A; a != 0 {
		t.Errorf("(48,1) alpha = %d, want 0", a)
	}
}

func TestDiscLightness(t *testing.T) {
	tests := []struct {
		name string
		seed float64
		x, y int
		want int
	}{
		{"origin", 0.5, 0, 0, 45},
		{"zero seed", 0, 30, 40, 45},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DiscLightness(tc.seed, tc.x, tc.y); got != tc.want {
				t.Errorf("DiscLightness = %d, want %d", got, tc.want)
			}
		})
	}

	for y := 0; y < DiscSize; y++ {
		for x := 0; x < DiscSize; x++ {
			l := DiscLightness(0.7, x, y)
			if l < 45 || l > 90 {
				t.Fatalf("lightness %d at (%d,%d) out of range", l, x, y)
			}
		}
	}
}

func TestDiscOriginColor(t *testing.T) {
	// Lightness 45% for seed 0 everywhere: hsl(0, 70%, 45%) = rgb(195, 34, 34)
	img := Disc(0, 0, DiscSize)
	got := img.NRGBAAt(48, 48)
	if got.R < 193 || got.R > 197 || got.G < 32 || got.G > 36 || got.B < 32 || got.B > 36 {
		t.Errorf("center color = %v, want about (195,34,34)", got)
	}
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// gatedLoader blocks each source until released.
type gatedLoader struct {
	mu    sync.Mutex
	gates map[string]chan struct{}
	imgs  map[string]image.Image
	errs  map[string]error
}

func newGatedLoader() *gatedLoader {
	return &gatedLoader{
		gates: make(map[string]chan struct{}),
		imgs:  make(map[string]image.Image),
		errs:  make(map[string]error),
	}
}

func (g *gatedLoader) gate(src string) chan struct{} {
	g.mu.Lock()
	defer g.mu.Unlock()
	ch, ok := g.gates[src]
	if !ok {
		ch = make(chan struct{})
		g.gates[src] = ch
	}
	return ch
}

func (g *gatedLoader) Load(ctx context.Context, src string) (image.Image, error) {
	<-g.gate(src)
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.errs[src]; err != nil {
		return nil, err
	}
	return g.imgs[src], nil
}

func TestRendererLoads(t *testing.T) {
	loader := newGatedLoader()
	loader.imgs["a.png"] = testImage(10, 14)
	changed := make(chan struct{}, 1)
	r := NewRenderer(loader, WithLogger(quietLogger()), WithOnChange(func() { changed <- struct{}{} }))

	r.Set("a.png", Sizing{TargetWidth: 48})
	if _, status, _ := r.Snapshot(); status != StatusLoading {
		t.Fatalf("status = %v, want Loading", status)
	}
	close(loader.gate("a.png"))

	select {
	case <-changed:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for load")
	}
	surface, status, _ := r.Snapshot()
	if status != StatusReady {
		t.Fatalf("status = %v, want Ready", status)
	}
	if surface.Bounds().Dx() != 50 || surface.Bounds().Dy() != 70 {
		t.Errorf("surface = %v, want 50x70", surface.Bounds().Size())
	}
}

func TestRendererFailureLeavesEmpty(t *testing.T) {
	loader := newGatedLoader()
	loader.errs["missing.png"] = errors.New("not found")
	close(loader.gate("missing.png"))

	var logs bytes.Buffer
	r := NewRenderer(loader, WithLogger(log.New(&logs)))
	r.Set("missing.png", Sizing{Scale: 4})
	r.Wait()

	surface, status, _ := r.Snapshot()
	if surface != nil {
		t.Error("surface should be empty after failure")
	}
	if status != StatusFailed {
		t.Errorf("status = %v, want Failed", status)
	}
	if !bytes.Contains(logs.Bytes(), []byte("missing.png")) {
		t.Errorf("expected a diagnostic naming the source, got %q", logs.String())
	}

	// No retry for the same input.
	r.Set("missing.png", Sizing{Scale: 4})
	if _, status, _ := r.Snapshot(); status != StatusFailed {
		t.Errorf("same input restarted load: status = %v", status)
	}
}

func TestRendererDiscardsStaleLoad(t *testing.T) {
	loader := newGatedLoader()
	loader.imgs["old.png"] = testImage(4, 4)
	loader.imgs["new.png"] = testImage(10, 14)
	r := NewRenderer(loader, WithLogger(quietLogger()))

	r.Set("old.png", Sizing{Scale: 1})
	r.Set("new.png", Sizing{Scale: 2})
	close(loader.gate("new.png"))

	deadline := time.Now().Add(2 * time.Second)
	for {
		if _, status, _ := r.Snapshot(); status == StatusReady {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for new load")
		}
		time.Sleep(time.Millisecond)
	}
	_, _, version := r.Snapshot()

	close(loader.gate("old.png"))
	r.Wait()

	surface, status, after := r.Snapshot()
	if status != StatusReady || after != version {
		t.Errorf("stale load changed state: status %v, version %d -> %d", status, version, after)
	}
	if surface.Bounds().Dx() != 20 || surface.Bounds().Dy() != 28 {
		t.Errorf("surface = %v, want the 20x28 new image", surface.Bounds().Size())
	}
}

func TestRendererSizingChangeReloads(t *testing.T) {
	loader := newGatedLoader()
	loader.imgs["a.png"] = testImage(10, 14)
	close(loader.gate("a.png"))
	r := NewRenderer(loader, WithLogger(quietLogger()))

	r.Set("a.png", Sizing{Scale: 1})
	r.Wait()
	r.Set("a.png", Sizing{Scale: 3})
	r.Wait()

	surface, _, _ := r.Snapshot()
	if surface.Bounds().Dx() != 30 {
		t.Errorf("width = %d, want 30", surface.Bounds().Dx())
	}
}

func TestRendererCloseDiscards(t *testing.T) {
	loader := newGatedLoader()
	loader.imgs["a.png"] = testImage(10, 14)
	calls := 0
	r := NewRenderer(loader, WithLogger(quietLogger()), WithOnChange(func() { calls++ }))

	r.Set("a.png", Sizing{})
	r.Close()
	close(loader.gate("a.png"))
	r.Wait()

	if surface, _, _ := r.Snapshot(); surface != nil {
		t.Error("load committed after Close")
	}
	if calls != 0 {
		t.Errorf("onChange called %d times after Close", calls)
	}

	r.Set("b.png", Sizing{})
	if src := r.Source(); src != "a.png" {
		t.Errorf("Set after Close changed source to %q", src)
	}
}

func TestRendererCancelsContext(t *testing.T) {
	cancelled := make(chan struct{})
	loader := LoaderFunc(func(ctx context.Context, src string) (image.Image, error) {
		if src == "slow.png" {
			<-ctx.Done()
			close(cancelled)
			return nil, ctx.Err()
		}
		return testImage(2, 2), nil
	})

	var logs bytes.Buffer
	r := NewRenderer(loader, WithLogger(log.New(&logs)))
	r.Set("slow.png", Sizing{})
	r.Set("fast.png", Sizing{})

	select {
	case <-cancelled:
	case <-time.After(2 * time.Second):
		t.Fatal("superseded load was not cancelled")
	}
	r.Wait()
	if _, status, _ := r.Snapshot(); status != StatusReady {
		t.Errorf("status = %v, want Ready", status)
	}
	if bytes.Contains(logs.Bytes(), []byte("slow.png")) {
		t.Error("cancelled load should not be reported as a failure")
	}
}
