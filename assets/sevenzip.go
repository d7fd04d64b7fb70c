package assets

import (
	"fmt"

	"github.com/bodgit/sevenzip"
)

// read7z loads every image entry of a 7z archive
func read7z(p string) (*memSource, error) {
	r, err := sevenzip.OpenReader(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open 7z: %w", err)
	}
	defer r.Close()

	src := newMemSource(p)
	for _, f := range r.File {
		if f.FileInfo().IsDir() || !isImageFile(f.Name) {
			continue
		}
		if err := read7zEntry(src, f); err != nil {
			return nil, err
		}
	}
	return src, nil
}

func read7zEntry(src *memSource, f *sevenzip.File) error {
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("failed to open %s in archive: %w", f.Name, err)
	}
	defer rc.Close()

	data, err := limitedRead(rc)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", f.Name, err)
	}
	return src.add(f.Name, data)
}
