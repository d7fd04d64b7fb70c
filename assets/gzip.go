package assets

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
)

// readTarGz loads every image entry of a tar.gz archive. A plain .gz
// holds a single unnamed stream and cannot be addressed, so it is rejected
// by the tar reader.
func readTarGz(p string) (*memSource, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open gzip: %w", err)
	}
	defer f.Close()

	gr, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gr.Close()

	return readTar(p, gr)
}

func readTar(name string, r io.Reader) (*memSource, error) {
	tr := tar.NewReader(r)
	src := newMemSource(name)

	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read tar entry: %w", err)
		}
		if header.Typeflag != tar.TypeReg || !isImageFile(header.Name) {
			continue
		}

		data, err := limitedRead(tr)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s from tar: %w", header.Name, err)
		}
		if err := src.add(header.Name, data); err != nil {
			return nil, err
		}
	}
	return src, nil
}
