package standalone

import (
	"image"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/justdots/dots/standalone/style"
)

// Notification displays temporary messages on screen. Show may be called
// from any goroutine; Draw runs on the game loop.
type Notification struct {
	mu        sync.Mutex
	message   string
	startTime time.Time
	duration  time.Duration
	now       func() time.Time

	// Pre-allocated background (avoid per-frame allocations)
	bg *ebiten.Image
}

// NewNotification creates a new notification system
func NewNotification() *Notification {
	return &Notification{now: time.Now}
}

// Show displays a notification message
func (n *Notification) Show(message string, duration time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.message = message
	n.startTime = n.now()
	n.duration = duration
}

// ShowDefault displays a notification for style.NotificationDuration
func (n *Notification) ShowDefault(message string) {
	n.Show(message, style.NotificationDuration)
}

// IsVisible returns whether the notification is currently visible
func (n *Notification) IsVisible() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.visibleLocked()
}

func (n *Notification) visibleLocked() bool {
	return n.message != "" && n.now().Sub(n.startTime) < n.duration
}

// Clear removes the current notification
func (n *Notification) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.message = ""
}

// Close releases the background image.
func (n *Notification) Close() {
	if n.bg != nil {
		n.bg.Deallocate()
		n.bg = nil
	}
}

// Draw renders the notification
func (n *Notification) Draw(screen *ebiten.Image) {
	n.mu.Lock()
	if !n.visibleLocked() {
		n.mu.Unlock()
		return
	}
	message := n.message
	n.mu.Unlock()

	n.drawWithData(screen, message)
}

// drawWithData renders a small notification in the bottom-right corner
func (n *Notification) drawWithData(screen *ebiten.Image, message string) {
	bounds := screen.Bounds()
	padding := style.OverlayPadding
	margin := style.OverlayMargin

	face := *style.FontFace()
	maxText := float64(bounds.Dx() - 2*margin - 2*padding)
	message, _ = style.TruncateToWidth(message, face, maxText)
	textWidth, textHeight := text.Measure(message, face, 0)

	bgWidth := int(textWidth) + padding*2
	bgHeight := int(textHeight) + padding*2
	bgX := bounds.Max.X - bgWidth - margin
	bgY := bounds.Max.Y - bgHeight - margin

	if n.bg == nil || n.bg.Bounds().Dx() < bgWidth || n.bg.Bounds().Dy() < bgHeight {
		if n.bg != nil {
			n.bg.Deallocate()
		}
		n.bg = ebiten.NewImage(bgWidth, bgHeight)
	}
	n.bg.Clear()
	overlayBg := style.OverlayBackground
	overlayBg.A = 230 // 90% opacity
	n.bg.Fill(overlayBg)

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(float64(bgX), float64(bgY))
	screen.DrawImage(n.bg.SubImage(image.Rect(0, 0, bgWidth, bgHeight)).(*ebiten.Image), opts)

	textOpts := &text.DrawOptions{}
	textOpts.GeoM.Translate(float64(bgX+padding), float64(bgY+padding))
	textOpts.ColorScale.ScaleWithColor(style.Text)
	text.Draw(screen, message, face, textOpts)
}
