package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// LoadConfig reads config.json. A missing file yields the defaults; a file
// that is not valid JSON is an error, which sends the app to the error
// screen. Keys absent from the file get their defaults, while explicit
// values are kept for ValidateConfig to judge.
func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (*Config, error) {
	config := &Config{}
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	ApplyMissingDefaults(config, detectPresentKeys(data))
	return config, nil
}

// SaveConfig saves the configuration to config.json atomically
func SaveConfig(config *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}
	return AtomicWriteJSON(path, config)
}

// CreateConfigIfMissing writes the default config on first run.
func CreateConfigIfMissing() error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	_, err = os.Stat(path)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, os.ErrNotExist):
		return SaveConfig(DefaultConfig())
	default:
		return fmt.Errorf("failed to check config: %w", err)
	}
}

// DeleteConfig removes config.json. A missing file is not an error.
func DeleteConfig() error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
