package standalone

import (
	"errors"
	"testing"
	"time"

	"github.com/justdots/dots/assets"
)

func waitResult(t *testing.T, p *AssetPicker) assetResult {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if r, ok := p.Poll(); ok {
			return r
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("no asset result delivered")
	return assetResult{}
}

func TestAssetPickerOpen(t *testing.T) {
	p := NewAssetPicker()
	boom := errors.New("boom")
	p.open = func(path string) (assets.Source, error) { return nil, boom }

	if _, ok := p.Poll(); ok {
		t.Fatal("Poll should be empty before any request")
	}

	p.Open("/packs/dots.zip")
	r := waitResult(t, p)
	if r.path != "/packs/dots.zip" || !errors.Is(r.err, boom) {
		t.Errorf("result = %+v", r)
	}
}

func TestAssetPickerOneAtATime(t *testing.T) {
	p := NewAssetPicker()
	release := make(chan struct{})
	p.open = func(path string) (assets.Source, error) {
		<-release
		return nil, nil
	}

	p.Open("first")
	p.Open("second")
	close(release)

	if r := waitResult(t, p); r.path != "first" {
		t.Errorf("path = %q, want first", r.path)
	}
	time.Sleep(20 * time.Millisecond)
	if r, ok := p.Poll(); ok {
		t.Errorf("second request should have been dropped, got %q", r.path)
	}
}
