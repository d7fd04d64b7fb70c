package assets

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"
)

// pngBytes encodes a w x h image filled with c.
func pngBytes(t *testing.T, w, h int, c color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode png: %v", err)
	}
	return buf.Bytes()
}

// createTestDir writes files (slash names) under a temp directory.
func createTestDir(t *testing.T, files map[string][]byte) string {
	t.Helper()
	root := t.TempDir()
	for name, data := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatalf("Failed to create dir: %v", err)
		}
		if err := os.WriteFile(p, data, 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	return root
}

// createTestZip writes files into a temporary .zip archive.
func createTestZip(t *testing.T, files map[string][]byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "assets.zip")
	f, err := os.Create(p)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for name, data := range files {
		fw, err := w.Create(name)
		if err != nil {
			t.Fatalf("Failed to create file in zip: %v", err)
		}
		if _, err := fw.Write(data); err != nil {
			t.Fatalf("Failed to write to zip: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close zip: %v", err)
	}
	return p
}

// createTestTarGz writes files into a temporary .tar.gz archive.
func createTestTarGz(t *testing.T, files map[string][]byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "assets.tar.gz")
	f, err := os.Create(p)
	if err != nil {
		t.Fatalf("Failed to create tar.gz file: %v", err)
	}
	defer f.Close()

	gw := gzip.NewWriter(f)
	tw := tar.NewWriter(gw)
	for name, data := range files {
		hdr := &tar.Header{Name: name, Mode: 0644, Size: int64(len(data)), Typeflag: tar.TypeReg}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatalf("Failed to write tar header: %v", err)
		}
		if _, err := tw.Write(data); err != nil {
			t.Fatalf("Failed to write tar entry: %v", err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("Failed to close tar: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("Failed to close gzip: %v", err)
	}
	return p
}

func TestCandidates(t *testing.T) {
	tests := []struct {
		name     string
		expected []string
	}{
		{"dots/1.png", []string{"dots/1.png", "dots/1.PNG", "dots/1.webp"}},
		{"dots/1.PNG", []string{"dots/1.PNG", "dots/1.png", "dots/1.webp"}},
		{"logo.webp", []string{"logo.webp", "logo.png", "logo.PNG"}},
		{"logo.svg", []string{"logo.svg"}},
		{"readme", []string{"readme"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Candidates(tc.name)
			if !slices.Equal(got, tc.expected) {
				t.Errorf("Candidates(%q) = %v, want %v", tc.name, got, tc.expected)
			}
		})
	}
}

func TestCleanName(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"/dots/3.png", "dots/3.png"},
		{"./dots/3.png", "dots/3.png"},
		{"dots\\3.png", "dots/3.png"},
		{"../../etc/passwd", "etc/passwd"},
		{"logo.png", "logo.png"},
	}
	for _, tc := range tests {
		if got := cleanName(tc.in); got != tc.out {
			t.Errorf("cleanName(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name     string
		header   []byte
		path     string
		expected formatType
	}{
		{"zip magic", magicZIP, "x.bin", formatZIP},
		{"empty zip magic", magicZIPEnd, "x.bin", formatZIP},
		{"7z magic", magic7z, "x.bin", format7z},
		{"gzip magic", magicGzip, "x.bin", formatGzip},
		{"rar magic", magicRAR, "x.bin", formatRAR},
		{"zip ext", nil, "x.ZIP", formatZIP},
		{"tgz ext", nil, "x.tgz", formatGzip},
		{"tar.gz ext", nil, "x.tar.gz", formatGzip},
		{"rar ext", nil, "x.rar", formatRAR},
		{"unknown", []byte("hello"), "x.txt", formatUnknown},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := detectFormat(tc.header, tc.path); got != tc.expected {
				t.Errorf("detectFormat = %d, want %d", got, tc.expected)
			}
		})
	}
}

func TestDirSource(t *testing.T) {
	data := pngBytes(t, 10, 14, color.NRGBA{R: 255, A: 255})
	root := createTestDir(t, map[string][]byte{
		"dots/1.png": data,
		"logo.png":   data,
		"notes.txt":  []byte("skip"),
	})

	src, err := OpenSource(root)
	if err != nil {
		t.Fatalf("OpenSource failed: %v", err)
	}
	defer src.Close()

	got, err := src.ReadFile("/dots/1.png")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Error("Data mismatch")
	}

	if _, err := src.ReadFile("dots/2.png"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	if list := src.List(); !slices.Equal(list, []string{"dots/1.png", "logo.png"}) {
		t.Errorf("List = %v", list)
	}
}

func TestDirSourceStaysInRoot(t *testing.T) {
	outer := t.TempDir()
	if err := os.WriteFile(filepath.Join(outer, "secret.png"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	root := filepath.Join(outer, "assets")
	if err := os.Mkdir(root, 0755); err != nil {
		t.Fatal(err)
	}

	src, err := OpenSource(root)
	if err != nil {
		t.Fatalf("OpenSource failed: %v", err)
	}
	if _, err := src.ReadFile("../secret.png"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for path outside root, got %v", err)
	}
}

func TestDirSourceTooLarge(t *testing.T) {
	root := createTestDir(t, map[string][]byte{
		"big.png": make([]byte, maxAssetSize+1),
	})
	src, err := OpenSource(root)
	if err != nil {
		t.Fatalf("OpenSource failed: %v", err)
	}
	if _, err := src.ReadFile("big.png"); !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("Expected ErrFileTooLarge, got %v", err)
	}
}

func TestZipSource(t *testing.T) {
	data := pngBytes(t, 10, 14, color.NRGBA{G: 255, A: 255})
	p := createTestZip(t, map[string][]byte{
		"public/dots/1.png": data,
		"public/logo.png":   data,
		"public/readme.md":  []byte("skip"),
	})

	src, err := OpenSource(p)
	if err != nil {
		t.Fatalf("OpenSource failed: %v", err)
	}
	defer src.Close()

	if _, err := src.ReadFile("dots/1.png"); err != nil {
		t.Errorf("Expected lookup under wrapping folder to succeed: %v", err)
	}
	if _, err := src.ReadFile("/public/logo.png"); err != nil {
		t.Errorf("Expected exact lookup to succeed: %v", err)
	}
	if _, err := src.ReadFile("readme.md"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Non-image entries should be skipped, got %v", err)
	}
	if n := len(src.List()); n != 2 {
		t.Errorf("List has %d entries, want 2", n)
	}
}

func TestMemSourcePrefersShallowestMatch(t *testing.T) {
	m := newMemSource("test")
	_ = m.add("a/b/dots/1.png", []byte("deep"))
	_ = m.add("a/dots/1.png", []byte("shallow"))

	got, err := m.ReadFile("dots/1.png")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(got) != "shallow" {
		t.Errorf("got %q, want shallow", got)
	}
}

func TestMemSourceCloseWhileLoading(t *testing.T) {
	p := createTestZip(t, map[string][]byte{
		"public/dots/2.png": pngBytes(t, 10, 14, color.NRGBA{R: 255, A: 255}),
	})
	src, err := OpenSource(p)
	if err != nil {
		t.Fatalf("OpenSource failed: %v", err)
	}
	loader := NewImageLoader(src)

	var wg sync.WaitGroup
	start := make(chan struct{})
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			for range 50 {
				_, err := loader.Load(context.Background(), "/dots/2.png")
				if err != nil && !errors.Is(err, ErrNotFound) {
					t.Errorf("unexpected error: %v", err)
					return
				}
			}
		}()
	}
	close(start)
	if err := src.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	wg.Wait()

	if _, err := loader.Load(context.Background(), "/dots/2.png"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after Close, got %v", err)
	}
	if n := len(src.List()); n != 0 {
		t.Errorf("List has %d entries after Close", n)
	}
}

func TestTarGzSource(t *testing.T) {
	data := pngBytes(t, 10, 14, color.NRGBA{B: 255, A: 255})
	p := createTestTarGz(t, map[string][]byte{
		"dots/7.png": data,
	})

	src, err := OpenSource(p)
	if err != nil {
		t.Fatalf("OpenSource failed: %v", err)
	}
	defer src.Close()

	got, err := src.ReadFile("dots/7.png")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Error("Data mismatch")
	}
}

func TestOpenSourceErrors(t *testing.T) {
	tmpDir := t.TempDir()

	if _, err := OpenSource(filepath.Join(tmpDir, "missing")); err == nil {
		t.Error("Expected error for nonexistent path")
	}

	txt := filepath.Join(tmpDir, "notes.txt")
	if err := os.WriteFile(txt, []byte("plain text"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenSource(txt); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}

	for _, tc := range []struct {
		name    string
		content []byte
	}{
		{"corrupt.7z", append(slices.Clone(magic7z), make([]byte, 100)...)},
		{"corrupt.rar", append(slices.Clone(magicRAR), make([]byte, 100)...)},
		{"corrupt.zip", append(slices.Clone(magicZIP), make([]byte, 100)...)},
		{"corrupt.tar.gz", append(slices.Clone(magicGzip), make([]byte, 100)...)},
		{"empty.7z", []byte{}},
	} {
		p := filepath.Join(tmpDir, tc.name)
		if err := os.WriteFile(p, tc.content, 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := OpenSource(p); err == nil {
			t.Errorf("Expected error for %s", tc.name)
		}
	}
}

func TestImageLoaderFallbackChain(t *testing.T) {
	red := pngBytes(t, 10, 14, color.NRGBA{R: 255, A: 255})
	blue := pngBytes(t, 12, 12, color.NRGBA{B: 255, A: 255})
	root := createTestDir(t, map[string][]byte{
		"dots/1.png": red,
		"dots/2.PNG": blue,
		"dots/3.png": []byte("not an image"),
	})
	src, err := OpenSource(root)
	if err != nil {
		t.Fatalf("OpenSource failed: %v", err)
	}
	loader := NewImageLoader(src)
	ctx := context.Background()

	img, err := loader.Load(ctx, "/dots/1.png")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Bounds().Dx() != 10 {
		t.Errorf("width = %d, want 10", img.Bounds().Dx())
	}

	img, err = loader.Load(ctx, "/dots/2.png")
	if err != nil {
		t.Fatalf("Expected fallback to .PNG: %v", err)
	}
	if img.Bounds().Dx() != 12 {
		t.Errorf("width = %d, want 12", img.Bounds().Dx())
	}

	if _, err := loader.Load(ctx, "/dots/3.png"); err == nil {
		t.Error("Expected decode error")
	}

	if _, err := loader.Load(ctx, "/dots/4.png"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestImageLoaderNoSource(t *testing.T) {
	loader := NewImageLoader(nil)
	if _, err := loader.Load(context.Background(), "logo.png"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	root := createTestDir(t, map[string][]byte{
		"logo.png": pngBytes(t, 4, 4, color.NRGBA{A: 255}),
	})
	src, err := OpenSource(root)
	if err != nil {
		t.Fatal(err)
	}
	if prev := loader.SetSource(src); prev != nil {
		t.Error("Expected no previous source")
	}
	if _, err := loader.Load(context.Background(), "logo.png"); err != nil {
		t.Errorf("Load after SetSource failed: %v", err)
	}
}

func TestImageLoaderCancelled(t *testing.T) {
	root := createTestDir(t, map[string][]byte{
		"logo.png": pngBytes(t, 4, 4, color.NRGBA{A: 255}),
	})
	src, err := OpenSource(root)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewImageLoader(src).Load(ctx, "logo.png"); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestCountIn(t *testing.T) {
	img := pngBytes(t, 2, 2, color.NRGBA{A: 255})
	tests := []struct {
		name     string
		files    map[string][]byte
		expected int
	}{
		{"root folder", map[string][]byte{"dots/1.png": img, "dots/2.png": img, "logo.png": img}, 2},
		{"wrapped folder", map[string][]byte{"public/dots/1.png": img, "public/logo.png": img}, 1},
		{"similar name", map[string][]byte{"moredots/1.png": img}, 0},
		{"empty", map[string][]byte{"readme.txt": []byte("hi")}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src, err := OpenSource(createTestZip(t, tc.files))
			if err != nil {
				t.Fatalf("OpenSource: %v", err)
			}
			defer src.Close()
			if got := CountIn(src, "dots"); got != tc.expected {
				t.Errorf("CountIn = %d, want %d", got, tc.expected)
			}
		})
	}
}
