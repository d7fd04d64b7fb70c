package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// The data directory holds:
//
//	config.json
//	screenshots/dots-<unix ms>.png
//
// and optionally asset packs, which config.json then names by relative path.

var (
	appName     string
	baseDirOver string
)

// Init sets the application data directory name. Must be called before
// any storage operations.
func Init(dataDirName string) {
	appName = dataDirName
}

// SetBaseDir overrides the per-OS data directory. An empty dir restores
// the default.
func SetBaseDir(dir string) {
	baseDirOver = dir
}

const (
	configFile    = "config.json"
	screenshotDir = "screenshots"
)

// GetBaseDir returns the data directory: the --data-dir override, or the
// per-user location named by Init().
func GetBaseDir() (string, error) {
	if baseDirOver != "" {
		return baseDirOver, nil
	}
	return defaultBaseDir(runtime.GOOS, os.Getenv, os.UserHomeDir)
}

// defaultBaseDir returns the conventional data directory on goos:
// %APPDATA% on Windows, ~/Library/Application Support on macOS, and
// $XDG_DATA_HOME or ~/.local/share elsewhere.
func defaultBaseDir(goos string, getenv func(string) string, home func() (string, error)) (string, error) {
	if goos == "windows" {
		appData := getenv("APPDATA")
		if appData == "" {
			return "", errors.New("APPDATA environment variable not set")
		}
		return filepath.Join(appData, appName), nil
	}
	if goos != "darwin" {
		if dataHome := getenv("XDG_DATA_HOME"); dataHome != "" {
			return filepath.Join(dataHome, appName), nil
		}
	}

	h, err := home()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	if goos == "darwin" {
		return filepath.Join(h, "Library", "Application Support", appName), nil
	}
	return filepath.Join(h, ".local", "share", appName), nil
}

func inBaseDir(name string) (string, error) {
	baseDir, err := GetBaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(baseDir, name), nil
}

// EnsureDirectories creates the data directory and its screenshots folder.
func EnsureDirectories() error {
	shots, err := GetScreenshotDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(shots, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", shots, err)
	}
	return nil
}

// GetConfigPath returns the full path to config.json
func GetConfigPath() (string, error) {
	return inBaseDir(configFile)
}

// GetScreenshotDir returns the full path to the screenshots directory
func GetScreenshotDir() (string, error) {
	return inBaseDir(screenshotDir)
}

// ResolveAssetPath turns the asset pack path stored in config into one that
// can be opened. Relative paths are taken from the data directory.
func ResolveAssetPath(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	abs, err := inBaseDir(p)
	if err != nil {
		return p
	}
	return abs
}

// PortableAssetPath returns the form of an asset pack path to store in
// config: relative when p lies inside the data directory, so a data
// directory moved together with its packs keeps working, and p otherwise.
func PortableAssetPath(p string) string {
	if p == "" {
		return p
	}
	baseDir, err := GetBaseDir()
	if err != nil {
		return p
	}
	base, err := filepath.Abs(baseDir)
	if err != nil {
		return p
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	rel, err := filepath.Rel(base, abs)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return p
	}
	return rel
}

// AtomicWriteJSON writes data as indented JSON through a temporary file in
// the target directory, so readers see the old file or the new one.
func AtomicWriteJSON(path string, data any) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(jsonData); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
