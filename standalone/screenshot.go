package standalone

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/justdots/dots/standalone/storage"
)

// ScreenshotManager saves the rendered frame as a PNG
type ScreenshotManager struct {
	now func() time.Time
}

// NewScreenshotManager creates a new screenshot manager
func NewScreenshotManager() *ScreenshotManager {
	return &ScreenshotManager{now: time.Now}
}

// screenshotName returns the file name for a capture taken at t.
func screenshotName(t time.Time) string {
	return fmt.Sprintf("dots-%d.png", t.Unix())
}

// TakeScreenshot captures and saves a screenshot. Capture is silent; the
// saved path is returned for logging.
func (m *ScreenshotManager) TakeScreenshot(screen *ebiten.Image) (string, error) {
	dir, err := storage.GetScreenshotDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create screenshot directory: %w", err)
	}

	fullPath := filepath.Join(dir, screenshotName(m.now()))
	f, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create screenshot file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, screen); err != nil {
		return "", fmt.Errorf("failed to encode screenshot: %w", err)
	}
	return fullPath, nil
}
