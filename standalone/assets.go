package standalone

import (
	"errors"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/justdots/dots/assets"
	"github.com/sqweek/dialog"
)

// archiveExts are offered by the archive picker.
var archiveExts = []string{"zip", "7z", "rar", "gz", "tgz"}

// assetResult is an asset pack opened off the game loop.
type assetResult struct {
	path string
	src  assets.Source
	err  error
}

// AssetPicker opens asset packs chosen in a native dialog. Dialogs and
// archive decoding run on a goroutine; results are delivered to the game
// loop through Results.
type AssetPicker struct {
	results chan assetResult
	busy    atomic.Bool
	open    func(path string) (assets.Source, error)
}

// NewAssetPicker creates a picker.
func NewAssetPicker() *AssetPicker {
	return &AssetPicker{
		results: make(chan assetResult, 1),
		open:    assets.OpenSource,
	}
}

// ChooseFolder asks for a folder holding dots/ and the logo.
func (p *AssetPicker) ChooseFolder(title string) {
	p.run(func() (string, error) {
		return dialog.Directory().Title(title).Browse()
	})
}

// ChooseArchive asks for an archive holding dots/ and the logo.
func (p *AssetPicker) ChooseArchive(title string) {
	p.run(func() (string, error) {
		return dialog.File().Filter("Archives", archiveExts...).Title(title).Load()
	})
}

// Open opens path in the background, as if it had been chosen.
func (p *AssetPicker) Open(path string) {
	p.run(func() (string, error) { return path, nil })
}

// run runs one dialog at a time. Run dialog in goroutine to avoid blocking
// Ebiten's main thread.
func (p *AssetPicker) run(ask func() (string, error)) {
	if !p.busy.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer p.busy.Store(false)
		path, err := ask()
		if err != nil {
			if !errors.Is(err, dialog.ErrCancelled) {
				log.Warn("asset dialog failed", "err", err)
			}
			return
		}
		src, err := p.open(path)
		p.results <- assetResult{path: path, src: src, err: err}
	}()
}

// Poll returns a finished result without blocking.
func (p *AssetPicker) Poll() (assetResult, bool) {
	select {
	case r := <-p.results:
		return r, true
	default:
		return assetResult{}, false
	}
}
