package standalone

import (
	"image"
	"math"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/justdots/dots/assets"
	"github.com/justdots/dots/carousel"
	"github.com/justdots/dots/content"
	"github.com/justdots/dots/pixelart"
	"github.com/justdots/dots/standalone/storage"
	"github.com/justdots/dots/standalone/style"
	"github.com/justdots/dots/standalone/types"
)

var _ types.PosterMedia = (*Media)(nil)

// logoSource is the first logo candidate; the loader walks the rest.
var logoSource = content.LogoCandidates[0]

type dotKey struct {
	id    int
	width int // physical pixels
}

// Media owns every image on the poster for one asset source: the gallery
// strip, the hero and sweepstakes dots, and the header logo. Replacing the
// asset source means closing the Media and building a new one.
type Media struct {
	loader    *assets.ImageLoader
	hasAssets bool
	gallery   *GalleryStrip

	dots        map[dotKey]*pixelart.Renderer
	dotTextures map[dotKey]*texture
	discs       map[dotKey]*ebiten.Image

	logo        *pixelart.Renderer
	logoTexture *texture

	changed atomic.Bool // set from loader goroutines
	start   time.Time
}

// MediaDeps are the collaborators of a Media.
type MediaDeps struct {
	Scheduler     carousel.Scheduler
	ReducedMotion func() bool
	WindowWidth   func() int
}

// NewMedia builds the poster images over src, which may be nil. Without a
// source the gallery shows the procedural placeholder discs.
func NewMedia(src assets.Source, cfg storage.GalleryConfig, deps MediaDeps) *Media {
	m := &Media{
		loader:      assets.NewImageLoader(src),
		hasAssets:   src != nil,
		dots:        make(map[dotKey]*pixelart.Renderer),
		dotTextures: make(map[dotKey]*texture),
		discs:       make(map[dotKey]*ebiten.Image),
		start:       time.Now(),
	}

	var items []carousel.Item
	if m.hasAssets {
		items = carousel.ImageItems(content.Thumbs())
	} else {
		items = placeholderItems()
	}
	m.gallery = NewGalleryStrip(items, GalleryOptions(cfg), GalleryDeps{
		Loader:        m.loader,
		Scheduler:     deps.Scheduler,
		ReducedMotion: deps.ReducedMotion,
		WindowWidth:   deps.WindowWidth,
		Rand:          newShuffleRand(),
	})

	if m.hasAssets {
		m.logo = pixelart.NewRenderer(m.loader,
			pixelart.WithLogger(log.Default()),
			pixelart.WithOnChange(m.markChanged),
		)
		m.logo.Set(logoSource, pixelart.Sizing{Scale: 1})
	}
	return m
}

// GalleryOptions converts the persisted gallery settings to carousel options.
func GalleryOptions(cfg storage.GalleryConfig) carousel.Options {
	return carousel.Options{
		AutoAdvanceInterval:  time.Duration(cfg.AutoAdvanceIntervalMs) * time.Millisecond,
		RespectReducedMotion: cfg.RespectReducedMotion,
		NativeItemWidth:      cfg.NativeItemWidth,
		NativeItemHeight:     cfg.NativeItemHeight,
		ScaleFactor:          cfg.ScaleFactor,
	}
}

func newShuffleRand() *rand.Rand {
	seed := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(seed, seed>>32))
}

func placeholderItems() []carousel.Item {
	dots := content.PlaceholderDots()
	items := make([]carousel.Item, len(dots))
	for i, d := range dots {
		items[i] = carousel.ProceduralItem{Hue: d.Hue, Seed: d.Seed}
	}
	return items
}

func placeholderFor(id int) content.PlaceholderDot {
	dots := content.PlaceholderDots()
	return dots[(id-1+len(dots))%len(dots)]
}

// Mount starts the gallery.
func (m *Media) Mount() {
	m.gallery.Mount()
}

// Close stops the gallery and every pending load.
func (m *Media) Close() {
	m.gallery.Close()
	for _, r := range m.dots {
		r.Close()
	}
	for _, t := range m.dotTextures {
		t.img.Deallocate()
	}
	for _, img := range m.discs {
		img.Deallocate()
	}
	if m.logo != nil {
		m.logo.Close()
	}
	if m.logoTexture != nil {
		m.logoTexture.img.Deallocate()
	}
}

// Wait blocks until every image load started by m has returned. Call it
// after Close and before closing the asset source the loads read from.
func (m *Media) Wait() {
	m.gallery.Wait()
	for _, r := range m.dots {
		r.Wait()
	}
	if m.logo != nil {
		m.logo.Wait()
	}
}

// Update advances the gallery. It reports whether the logo finished loading
// since the last call, which changes the header layout.
func (m *Media) Update() bool {
	m.gallery.Update()
	return m.changed.Swap(false)
}

func (m *Media) markChanged() {
	m.changed.Store(true)
}

// Strip returns the gallery strip.
func (m *Media) Strip() *GalleryStrip {
	return m.gallery
}

// SetLanguage updates the localized text drawn by media widgets.
func (m *Media) SetLanguage(l content.Lang) {
	m.gallery.SetMissingText(content.NewPrinter(l).T("gallery.missing"))
}

// HasAssets reports whether an asset source is configured.
func (m *Media) HasAssets() bool {
	return m.hasAssets
}

// Gallery returns a fresh widget for the gallery strip.
func (m *Media) Gallery() widget.PreferredSizeLocateableWidget {
	return m.gallery.View()
}

// StepGallery moves the gallery one card in dir.
func (m *Media) StepGallery(dir carousel.Direction) {
	m.gallery.Step(dir)
}

// Dot returns a widget showing dot id at width logical pixels.
func (m *Media) Dot(id, width int) widget.PreferredSizeLocateableWidget {
	key := dotKey{id: id, width: style.Px(width)}
	if m.hasAssets && m.dots[key] == nil {
		r := pixelart.NewRenderer(m.loader, pixelart.WithLogger(log.Default()))
		r.Set(content.ThumbPath(id), pixelart.Sizing{TargetWidth: float64(key.width)})
		m.dots[key] = r
	}
	v := &dotView{media: m, key: key}
	v.widget = widget.NewWidget()
	return v
}

// dotImage returns the current image for key, or nil while loading or after
// a failed load.
func (m *Media) dotImage(key dotKey) *ebiten.Image {
	if !m.hasAssets {
		if img, ok := m.discs[key]; ok {
			return img
		}
		p := placeholderFor(key.id)
		img := ebiten.NewImageFromImage(pixelart.Disc(p.Hue, p.Seed, key.width))
		m.discs[key] = img
		return img
	}
	r := m.dots[key]
	if r == nil {
		return nil
	}
	snap, status, version := r.Snapshot()
	if status != pixelart.StatusReady {
		return nil
	}
	tex := m.dotTextures[key]
	if tex == nil || tex.version != version {
		if tex != nil {
			tex.img.Deallocate()
		}
		tex = &texture{img: ebiten.NewImageFromImage(snap), version: version}
		m.dotTextures[key] = tex
	}
	return tex.img
}

// Logo returns a widget showing the logo image, or the pulsing dot and brand
// name when no logo is available.
func (m *Media) Logo() widget.PreferredSizeLocateableWidget {
	v := &logoView{media: m}
	v.widget = widget.NewWidget()
	return v
}

// logoImage returns the scaled logo, or nil when the fallback should draw.
func (m *Media) logoImage() *ebiten.Image {
	if m.logo == nil {
		return nil
	}
	snap, status, version := m.logo.Snapshot()
	if status != pixelart.StatusReady {
		return nil
	}
	if m.logoTexture == nil || m.logoTexture.version != version {
		if m.logoTexture != nil {
			m.logoTexture.img.Deallocate()
		}
		h := style.LogoHeight
		m.logoTexture = &texture{img: style.ScaleImage(snap, h*6, h), version: version}
	}
	return m.logoTexture.img
}

// pulsePhase returns the fade of the brand dot at elapsed: 0 at the start of
// each style.PulsePeriod, 1 halfway through.
func pulsePhase(elapsed time.Duration) float64 {
	phase := float64(elapsed%style.PulsePeriod) / float64(style.PulsePeriod)
	return 0.5 - 0.5*math.Cos(2*math.Pi*phase)
}

type dotView struct {
	media  *Media
	key    dotKey
	widget *widget.Widget
}

func (v *dotView) GetWidget() *widget.Widget { return v.widget }

func (v *dotView) PreferredSize() (int, int) {
	return v.key.width, v.key.width * 14 / 10
}

func (v *dotView) SetLocation(rect image.Rectangle) { v.widget.SetLocation(rect) }

func (v *dotView) Validate() {}

func (v *dotView) Update(updObj *widget.UpdateObject) { v.widget.Update(updObj) }

func (v *dotView) Render(screen *ebiten.Image) {
	v.widget.Render(screen)
	img := v.media.dotImage(v.key)
	if img == nil {
		return
	}
	drawCenteredIn(screen, img, v.widget.Rect)
}

type logoView struct {
	media  *Media
	widget *widget.Widget
}

func (v *logoView) GetWidget() *widget.Widget { return v.widget }

func (v *logoView) PreferredSize() (int, int) {
	if img := v.media.logoImage(); img != nil {
		b := img.Bounds()
		return b.Dx(), max(b.Dy(), style.LogoHeight)
	}
	w, _ := text.Measure(content.NewPrinter(content.DefaultLang).T("brand"), *style.HeadingFace(), 0)
	return style.PulseDot + style.SmallSpacing + int(math.Ceil(w)), style.LogoHeight
}

func (v *logoView) SetLocation(rect image.Rectangle) { v.widget.SetLocation(rect) }

func (v *logoView) Validate() {}

func (v *logoView) Update(updObj *widget.UpdateObject) { v.widget.Update(updObj) }

func (v *logoView) Render(screen *ebiten.Image) {
	v.widget.Render(screen)
	rect := v.widget.Rect
	if img := v.media.logoImage(); img != nil {
		drawCenteredIn(screen, img, rect)
		return
	}

	t := pulsePhase(time.Since(v.media.start))
	dot := style.Mix(style.Primary, style.Background, 0.6*t)
	size := style.PulseDot
	y := rect.Min.Y + (rect.Dy()-size)/2
	dotRect := image.Rect(rect.Min.X, y, rect.Min.X+size, y+size)
	screen.SubImage(dotRect).(*ebiten.Image).Fill(dot)

	face := *style.HeadingFace()
	brand := content.NewPrinter(content.DefaultLang).T("brand")
	_, h := text.Measure(brand, face, 0)
	opts := &text.DrawOptions{}
	opts.GeoM.Translate(float64(rect.Min.X+size+style.SmallSpacing), float64(rect.Min.Y)+(float64(rect.Dy())-h)/2)
	opts.ColorScale.ScaleWithColor(style.Text)
	text.Draw(screen, brand, face, opts)
}

func drawCenteredIn(screen, img *ebiten.Image, rect image.Rectangle) {
	b := img.Bounds()
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(
		float64(rect.Min.X+(rect.Dx()-b.Dx())/2),
		float64(rect.Min.Y+(rect.Dy()-b.Dy())/2),
	)
	screen.DrawImage(img, opts)
}
