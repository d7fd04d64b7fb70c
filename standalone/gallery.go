package standalone

import (
	"image"
	"math"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/justdots/dots/carousel"
	"github.com/justdots/dots/pixelart"
	"github.com/justdots/dots/standalone/style"
)

// GalleryDeps are the collaborators of a GalleryStrip.
type GalleryDeps struct {
	Loader        pixelart.Loader
	Scheduler     carousel.Scheduler
	ReducedMotion func() bool
	WindowWidth   func() int // physical pixels
	Rand          *rand.Rand
	Now           func() time.Time
}

// galleryGeometry is the card layout in physical pixels.
type galleryGeometry struct {
	pixScale int // integer upscale of the native art
	inner    int // scaled art width
	card     int
	cardH    int
	gap      int
	pad      int
}

func computeGeometry(opts carousel.Options, logicalWidth int) galleryGeometry {
	pixScale := style.PixelScale(style.EffectiveScale(opts.ScaleFactor, logicalWidth))
	inner := opts.NativeItemWidth * pixScale
	return galleryGeometry{
		pixScale: pixScale,
		inner:    inner,
		card:     inner + style.CardPadding,
		cardH:    opts.NativeItemHeight*pixScale + style.CardPadding,
		gap:      style.GalleryGap,
		pad:      style.GalleryTrackPadding,
	}
}

// scrollWidth is the width of a track holding n cards.
func (g galleryGeometry) scrollWidth(n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(2*g.pad + n*g.card + (n-1)*g.gap)
}

// cardX is the left edge of card i relative to the unscrolled track.
func (g galleryGeometry) cardX(i int) int {
	return g.pad + i*(g.card+g.gap)
}

type scrollAnim struct {
	from, to float64
	start    time.Time
}

type texture struct {
	img     *ebiten.Image
	version uint64
}

type discKey struct {
	hue   int
	seed  float64
	width int
}

// GalleryStrip is the horizontally scrolling track driven by a Carousel. It
// measures and scrolls in physical pixels and draws only the visible cards.
// All methods run on the game loop goroutine.
type GalleryStrip struct {
	car  *carousel.Carousel
	deps GalleryDeps

	rect   image.Rectangle // on-screen viewport, set by layout
	geom   galleryGeometry
	laidW  int
	offset float64
	anim   *scrollAnim

	hovered bool

	listeners    map[int]func()
	nextListener int

	renderers map[string]*pixelart.Renderer
	closed    []*pixelart.Renderer // released by Close, awaited by Wait
	textures  map[string]*texture
	discs     map[discKey]*ebiten.Image

	cardBg      *ebiten.Image
	cardBgSize  image.Point
	cardBgTheme string

	missingText string
}

// NewGalleryStrip creates an unmounted strip for items.
func NewGalleryStrip(items []carousel.Item, opts carousel.Options, deps GalleryDeps) *GalleryStrip {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.WindowWidth == nil {
		deps.WindowWidth = func() int { return 0 }
	}
	s := &GalleryStrip{
		deps:      deps,
		listeners: make(map[int]func()),
		renderers: make(map[string]*pixelart.Renderer),
		textures:  make(map[string]*texture),
		discs:     make(map[discKey]*ebiten.Image),
	}
	s.car = carousel.New(items, opts, carousel.Deps{
		Layout:        s,
		Scroller:      s,
		Scheduler:     deps.Scheduler,
		Resize:        s,
		ReducedMotion: deps.ReducedMotion,
		Rand:          deps.Rand,
	})
	s.geom = computeGeometry(s.car.Options(), s.logicalWidth())
	return s
}

// Carousel returns the state machine behind the strip.
func (s *GalleryStrip) Carousel() *carousel.Carousel {
	return s.car
}

// Mount shuffles the items, starts auto-advance and begins loading one
// renderer per distinct image source. The loop's second half shares them.
func (s *GalleryStrip) Mount() {
	s.car.Mount()
	for _, it := range s.car.Base() {
		img, ok := it.(carousel.ImageItem)
		if !ok || s.renderers[img.Source] != nil {
			continue
		}
		r := pixelart.NewRenderer(s.deps.Loader, pixelart.WithLogger(log.Default()))
		s.renderers[img.Source] = r
	}
	s.requestImages()
}

// Close unmounts the carousel and releases every renderer and texture.
func (s *GalleryStrip) Close() {
	s.car.Unmount()
	for _, r := range s.renderers {
		r.Close()
		s.closed = append(s.closed, r)
	}
	for _, t := range s.textures {
		t.img.Deallocate()
	}
	for _, img := range s.discs {
		img.Deallocate()
	}
	if s.cardBg != nil {
		s.cardBg.Deallocate()
		s.cardBg = nil
	}
	clear(s.renderers)
	clear(s.textures)
	clear(s.discs)
}

// Wait blocks until no thumb load is running, including loads started
// before Close.
func (s *GalleryStrip) Wait() {
	for _, r := range s.renderers {
		r.Wait()
	}
	for _, r := range s.closed {
		r.Wait()
	}
}

// SetMissingText sets the label drawn on cards whose image failed to load.
func (s *GalleryStrip) SetMissingText(t string) {
	s.missingText = t
}

// Step moves one card in dir.
func (s *GalleryStrip) Step(dir carousel.Direction) {
	s.car.StepManual(dir)
}

func (s *GalleryStrip) logicalWidth() int {
	return int(float64(s.deps.WindowWidth()) / style.DPIScale())
}

func (s *GalleryStrip) ready() bool {
	return !s.rect.Empty() && len(s.car.Loop()) > 0
}

// MeasureFirstItemWidth implements carousel.LayoutProvider.
func (s *GalleryStrip) MeasureFirstItemWidth() (float64, bool) {
	if !s.ready() {
		return 0, false
	}
	return float64(s.geom.card), true
}

// MeasureGap implements carousel.LayoutProvider.
func (s *GalleryStrip) MeasureGap() (float64, bool) {
	if !s.ready() {
		return 0, false
	}
	return float64(s.geom.gap), true
}

// MeasureViewport implements carousel.LayoutProvider.
func (s *GalleryStrip) MeasureViewport() (carousel.Viewport, bool) {
	if !s.ready() {
		return carousel.Viewport{}, false
	}
	return carousel.Viewport{
		Width:       float64(s.rect.Dx()),
		ScrollLeft:  s.offset,
		ScrollWidth: s.geom.scrollWidth(len(s.car.Loop())),
	}, true
}

// ScrollTo implements carousel.Scroller. A smooth move eases out over
// style.SmoothScrollDuration and replaces any move in progress.
func (s *GalleryStrip) ScrollTo(offset float64, smooth bool) {
	offset = s.clamp(offset)
	if !smooth || offset == s.offset {
		s.offset = offset
		s.anim = nil
		return
	}
	s.anim = &scrollAnim{from: s.offset, to: offset, start: s.deps.Now()}
}

func (s *GalleryStrip) clamp(offset float64) float64 {
	maxScroll := 0.0
	if vp, ok := s.MeasureViewport(); ok {
		maxScroll = max(0, vp.MaxScroll())
	}
	return max(0, min(offset, maxScroll))
}

// Offset returns the current scroll position in pixels.
func (s *GalleryStrip) Offset() float64 {
	return s.offset
}

// OnResize implements carousel.ResizeNotifier.
func (s *GalleryStrip) OnResize(fn func()) (remove func()) {
	s.nextListener++
	id := s.nextListener
	s.listeners[id] = fn
	return func() { delete(s.listeners, id) }
}

// Update advances the scroll animation and reacts to layout changes.
// Call it once per frame.
func (s *GalleryStrip) Update() {
	s.relayout()
	s.animate()
}

func (s *GalleryStrip) relayout() {
	geom := computeGeometry(s.car.Options(), s.logicalWidth())
	if geom == s.geom && s.rect.Dx() == s.laidW {
		return
	}
	artChanged := geom.inner != s.geom.inner
	s.geom = geom
	s.laidW = s.rect.Dx()
	if artChanged {
		s.requestImages()
	}
	s.offset = s.clamp(s.offset)
	if s.anim != nil {
		s.anim.to = s.clamp(s.anim.to)
	}

	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if fn, ok := s.listeners[id]; ok {
			fn()
		}
	}
}

func (s *GalleryStrip) animate() {
	if s.anim == nil {
		return
	}
	t := float64(s.deps.Now().Sub(s.anim.start)) / float64(style.SmoothScrollDuration)
	if t >= 1 {
		s.offset = s.anim.to
		s.anim = nil
		return
	}
	s.offset = s.anim.from + (s.anim.to-s.anim.from)*style.EaseOutCubic(t)
}

func (s *GalleryStrip) requestImages() {
	sizing := pixelart.Sizing{TargetWidth: float64(s.geom.inner)}
	for src, r := range s.renderers {
		r.Set(src, sizing)
	}
}

// View returns a fresh widget showing the strip. Hover over the widget
// pauses auto-advance.
func (s *GalleryStrip) View() widget.PreferredSizeLocateableWidget {
	// A rebuilt tree never reports the exit for the old widget.
	if s.hovered {
		s.hovered = false
		s.car.PointerLeave()
	}
	v := &galleryView{strip: s}
	v.widget = widget.NewWidget(
		widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		widget.WidgetOpts.CursorEnterHandler(func(*widget.WidgetCursorEnterEventArgs) {
			s.hovered = true
			s.car.PointerEnter()
		}),
		widget.WidgetOpts.CursorExitHandler(func(*widget.WidgetCursorExitEventArgs) {
			s.hovered = false
			s.car.PointerLeave()
		}),
	)
	return v
}

func (s *GalleryStrip) draw(screen *ebiten.Image) {
	rect := s.rect
	if rect.Empty() {
		return
	}
	loop := s.car.Loop()
	if len(loop) == 0 {
		return
	}
	dst := screen.SubImage(rect).(*ebiten.Image)
	g := s.geom
	s.ensureCardBg()

	off := int(math.Round(s.offset))
	first := max(0, (off-g.pad)/(g.card+g.gap))
	top := rect.Min.Y + max(0, (rect.Dy()-g.cardH)/2)
	for i := first; i < len(loop); i++ {
		x := rect.Min.X + g.cardX(i) - off
		if x >= rect.Max.X {
			break
		}
		if x+g.card <= rect.Min.X {
			continue
		}
		opts := &ebiten.DrawImageOptions{}
		opts.GeoM.Translate(float64(x), float64(top))
		dst.DrawImage(s.cardBg, opts)
		s.drawItem(dst, loop[i], x, top)
	}
}

// ensureCardBg rebuilds the shared card background when its size or the
// theme changes.
func (s *GalleryStrip) ensureCardBg() {
	size := image.Pt(s.geom.card, s.geom.cardH)
	if s.cardBg != nil && s.cardBgSize == size && s.cardBgTheme == style.CurrentThemeName {
		return
	}
	if s.cardBg != nil {
		s.cardBg.Deallocate()
	}
	s.cardBg = ebiten.NewImage(size.X, size.Y)
	s.cardBg.Fill(style.Border)
	b := style.CardBorder
	s.cardBg.SubImage(image.Rect(b, b, size.X-b, size.Y-b)).(*ebiten.Image).Fill(style.Surface)
	s.cardBgSize = size
	s.cardBgTheme = style.CurrentThemeName
}

func (s *GalleryStrip) drawItem(dst *ebiten.Image, item carousel.Item, x, y int) {
	switch it := item.(type) {
	case carousel.ImageItem:
		s.drawThumb(dst, it.Source, x, y)
	case carousel.ProceduralItem:
		s.drawCentered(dst, s.disc(it), x, y)
	}
}

func (s *GalleryStrip) drawThumb(dst *ebiten.Image, src string, x, y int) {
	r := s.renderers[src]
	if r == nil {
		return
	}
	snap, status, version := r.Snapshot()
	switch status {
	case pixelart.StatusReady:
		tex := s.textures[src]
		if tex == nil || tex.version != version {
			if tex != nil {
				tex.img.Deallocate()
			}
			tex = &texture{img: ebiten.NewImageFromImage(snap), version: version}
			s.textures[src] = tex
		}
		s.drawCentered(dst, tex.img, x, y)
	case pixelart.StatusFailed:
		s.drawMissing(dst, x, y)
	}
}

func (s *GalleryStrip) disc(it carousel.ProceduralItem) *ebiten.Image {
	key := discKey{hue: it.Hue, seed: it.Seed, width: s.geom.inner}
	if img, ok := s.discs[key]; ok {
		return img
	}
	size := min(pixelart.DiscSize, s.geom.inner)
	art := pixelart.Render(pixelart.Disc(it.Hue, it.Seed, size), pixelart.Sizing{TargetWidth: float64(s.geom.inner)})
	img := ebiten.NewImageFromImage(art)
	s.discs[key] = img
	return img
}

func (s *GalleryStrip) drawCentered(dst, img *ebiten.Image, x, y int) {
	if img == nil {
		return
	}
	b := img.Bounds()
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(float64(x+(s.geom.card-b.Dx())/2), float64(y+(s.geom.cardH-b.Dy())/2))
	dst.DrawImage(img, opts)
}

func (s *GalleryStrip) drawMissing(dst *ebiten.Image, x, y int) {
	if s.missingText == "" {
		return
	}
	face := *style.FontFace()
	label, _ := style.TruncateToWidth(s.missingText, face, float64(s.geom.inner))
	w, h := text.Measure(label, face, 0)
	opts := &text.DrawOptions{}
	opts.GeoM.Translate(float64(x)+(float64(s.geom.card)-w)/2, float64(y)+(float64(s.geom.cardH)-h)/2)
	opts.ColorScale.ScaleWithColor(style.TextSecondary)
	text.Draw(dst, label, face, opts)
}

// galleryView adapts a GalleryStrip to the ebitenui widget tree.
type galleryView struct {
	strip  *GalleryStrip
	widget *widget.Widget
}

func (v *galleryView) GetWidget() *widget.Widget {
	return v.widget
}

func (v *galleryView) PreferredSize() (int, int) {
	g := v.strip.geom
	return g.card + 2*g.pad, g.cardH + 2*g.pad
}

func (v *galleryView) SetLocation(rect image.Rectangle) {
	v.widget.SetLocation(rect)
	v.strip.rect = rect
}

func (v *galleryView) Validate() {}

func (v *galleryView) Update(updObj *widget.UpdateObject) {
	v.widget.Update(updObj)
}

func (v *galleryView) Render(screen *ebiten.Image) {
	v.widget.Render(screen)
	v.strip.draw(screen)
}
