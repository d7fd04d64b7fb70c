package assets

import (
	"fmt"
	"io"

	"github.com/nwaples/rardecode/v2"
)

// readRAR loads every image entry of a RAR archive
func readRAR(p string) (*memSource, error) {
	r, err := rardecode.OpenReader(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open rar: %w", err)
	}
	defer r.Close()

	src := newMemSource(p)
	for {
		header, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read rar entry: %w", err)
		}
		if header.IsDir || !isImageFile(header.Name) {
			continue
		}

		data, err := limitedRead(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", header.Name, err)
		}
		if err := src.add(header.Name, data); err != nil {
			return nil, err
		}
	}
	return src, nil
}
