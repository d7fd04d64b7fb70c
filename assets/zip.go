package assets

import (
	"archive/zip"
	"fmt"
)

// readZIP loads every image entry of a ZIP archive
func readZIP(p string) (*memSource, error) {
	r, err := zip.OpenReader(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open zip: %w", err)
	}
	defer r.Close()

	src := newMemSource(p)
	for _, f := range r.File {
		if f.FileInfo().IsDir() || !isImageFile(f.Name) {
			continue
		}
		if err := readZIPEntry(src, f); err != nil {
			return nil, err
		}
	}
	return src, nil
}

func readZIPEntry(src *memSource, f *zip.File) error {
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
