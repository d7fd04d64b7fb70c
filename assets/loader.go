package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"path"
	"strings"
	"sync"

	_ "golang.org/x/image/webp"
)

// fallbackExts is the order in which image variants are tried.
var fallbackExts = []string{".png", ".PNG", ".webp"}

// Candidates returns the names tried for name: the name itself, then the
// same stem with each remaining fallback extension. Names with another
// extension are returned alone.
func Candidates(name string) []string {
	ext := path.Ext(name)
	known := false
	for _, e := range fallbackExts {
		if ext == e {
			known = true
			break
		}
	}
	if !known {
		return []string{name}
	}

	stem := strings.TrimSuffix(name, ext)
	out := []string{name}
	for _, e := range fallbackExts {
		if e != ext {
			out = append(out, stem+e)
		}
	}
	return out
}

// ImageLoader decodes images from a Source, walking the extension
// fallback chain. It satisfies pixelart.Loader.
type ImageLoader struct {
	mu  sync.RWMutex
	src Source
}

// NewImageLoader creates a loader over src. src may be nil, in which case
// every load fails with ErrNotFound until SetSource is called.
func NewImageLoader(src Source) *ImageLoader {
	return &ImageLoader{src: src}
}

// SetSource swaps the source and returns the previous one.
func (l *ImageLoader) SetSource(src Source) Source {
	l.mu.Lock()
	defer l.mu.Unlock()
	prev := l.src
	l.src = src
	return prev
}

// Source returns the current source.
func (l *ImageLoader) Source() Source {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.src
}

// Load reads and decodes the first existing candidate for name.
func (l *ImageLoader) Load(ctx context.Context, name string) (image.Image, error) {
	src := l.Source()
	if src == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	var lastErr error
	for _, candidate := range Candidates(name) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := src.ReadFile(candidate)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				if lastErr == nil {
					lastErr = err
				}
				continue
			}
			return nil, err
		}
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			lastErr = fmt.Errorf("failed to decode %s: %w", candidate, err)
			continue
		}
		return img, nil
	}
	return nil, lastErr
}
