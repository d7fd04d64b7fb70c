// Package assets reads the site's image files from a directory or from a
// compressed archive (ZIP, 7z, tar.gz, RAR) and decodes them for display.
package assets

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// Magic bytes for format detection
var (
	magicZIP    = []byte{0x50, 0x4B, 0x03, 0x04}
	magicZIPEnd = []byte{0x50, 0x4B, 0x05, 0x06} // empty zip
	magic7z     = []byte{0x37, 0x7A, 0xBC, 0xAF, 0x27, 0x1C}
	magicGzip   = []byte{0x1F, 0x8B}
	magicRAR    = []byte{0x52, 0x61, 0x72, 0x21} // "Rar!"
)

const (
	// maxAssetSize caps a single image file.
	maxAssetSize = 8 * 1024 * 1024
	// maxArchiveSize caps the total image bytes kept from one archive.
	maxArchiveSize = 128 * 1024 * 1024
)

// ErrNotFound is returned when a name does not exist in a source
var ErrNotFound = errors.New("asset not found")

// ErrUnsupportedFormat is returned for unrecognized file formats
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ErrFileTooLarge is returned when content exceeds a size limit
var ErrFileTooLarge = errors.New("file exceeds maximum size limit")

// Source is a read-only tree of asset files addressed by slash-separated
// names relative to its root, e.g. "dots/3.png".
type Source interface {
	ReadFile(name string) ([]byte, error)
	List() []string
	Close() error
}

type formatType int

const (
	formatUnknown formatType = iota
	formatDir
	formatZIP
	format7z
	formatGzip
	formatRAR
)

// OpenSource opens path as an asset source. Directories are read lazily;
// archives are detected by magic bytes (falling back to the extension) and
// their image entries are read into memory up front.
func OpenSource(p string) (Source, error) {
	info, err := os.Stat(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open asset source: %w", err)
	}
	if info.IsDir() {
		return newDirSource(p), nil
	}

	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	header := make([]byte, 16)
	n, err := f.Read(header)
	f.Close()
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read file header: %w", err)
	}

	switch detectFormat(header[:n], p) {
	case formatZIP:
		return readZIP(p)
	case format7z:
		return read7z(p)
	case formatGzip:
		return readTarGz(p)
	case formatRAR:
		return readRAR(p)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, p)
	}
}

// detectFormat determines the archive format based on magic bytes and extension.
func detectFormat(header []byte, p string) formatType {
	if len(header) >= 4 {
		if bytes.HasPrefix(header, magicZIP) || bytes.HasPrefix(header, magicZIPEnd) {
			return formatZIP
		}
		if bytes.HasPrefix(header, magicRAR) {
			return formatRAR
		}
	}
	if len(header) >= 6 && bytes.HasPrefix(header, magic7z) {
		return format7z
	}
	if len(header) >= 2 && bytes.HasPrefix(header, magicGzip) {
		return formatGzip
	}

	lower := strings.ToLower(p)
	switch {
	case strings.HasSuffix(lower, ".zip"):
		return formatZIP
	case strings.HasSuffix(lower, ".7z"):
		return format7z
	case strings.HasSuffix(lower, ".tar.gz"), strings.HasSuffix(lower, ".tgz"):
		return formatGzip
	case strings.HasSuffix(lower, ".rar"):
		return formatRAR
	}
	return formatUnknown
}

// isImageFile reports whether name has an extension the loader can decode.
func isImageFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".png", ".webp":
		return true
	}
	return false
}

// cleanName normalizes a request like "/dots/3.png" or "./dots/3.png" to
// "dots/3.png".
func cleanName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Clean("/" + name)
	return strings.TrimPrefix(name, "/")
}

// limitedRead reads from r up to maxAssetSize bytes, returning an error if exceeded
func limitedRead(r io.Reader) ([]byte, error) {
	lr := io.LimitReader(r, maxAssetSize+1)
	data, err := io.ReadAll(lr)
	if err != nil {
		return nil, err
	}
	if len(data) > maxAssetSize {
		return nil, ErrFileTooLarge
	}
	return data, nil
}

// dirSource reads files from a directory on demand.
type dirSource struct {
	root string
	fsys fs.FS
}

func newDirSource(root string) *dirSource {
	return &dirSource{root: root, fsys: os.DirFS(root)}
}

func (d *dirSource) ReadFile(name string) ([]byte, error) {
	name = cleanName(name)
	if !fs.ValidPath(name) || name == "." || name == "" {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	f, err := d.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	data, err := limitedRead(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

func (d *dirSource) List() []string {
	var names []string
	_ = fs.WalkDir(d.fsys, ".", func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !entry.IsDir() && isImageFile(p) {
			names = append(names, p)
		}
		return nil
	})
	slices.Sort(names)
	return names
}

func (d *dirSource) Close() error { return nil }

func (d *dirSource) String() string { return filepath.Clean(d.root) }

// memSource holds the image entries of an archive. It is safe for
// concurrent use; after Close every lookup fails with ErrNotFound.
type memSource struct {
	name string

	mu      sync.RWMutex
	entries map[string][]byte
	total   int
}

func newMemSource(name string) *memSource {
	return &memSource{name: name, entries: make(map[string][]byte)}
}

// add stores data under the normalized entry name.
func (m *memSource) add(name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.total += len(data)
	if m.total > maxArchiveSize {
		return ErrFileTooLarge
	}
	m.entries[cleanName(name)] = data
	return nil
}

// ReadFile looks up name exactly, then as a suffix under a single wrapping
// folder (archives are often built as "public/dots/3.png").
func (m *memSource) ReadFile(name string) ([]byte, error) {
	name = cleanName(name)
	m.mu.RLock()
	defer m.mu.RUnlock()
	if data, ok := m.entries[name]; ok {
		return data, nil
	}
	var best string
	for k := range m.entries {
		if !strings.HasSuffix(k, "/"+name) {
			continue
		}
		if best == "" || len(k) < len(best) || (len(k) == len(best) && k < best) {
			best = k
		}
	}
	if best != "" {
		return m.entries[best], nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

func (m *memSource) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.entries))
	for k := range m.entries {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

func (m *memSource) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
	return nil
}

func (m *memSource) String() string { return m.name }

// CountIn returns the number of images in src that live in a folder named
// dir, at the root or under a single wrapping folder.
func CountIn(src Source, dir string) int {
	n := 0
	for _, name := range src.List() {
		if strings.HasPrefix(name, dir+"/") || strings.Contains(name, "/"+dir+"/") {
			n++
		}
	}
	return n
}
