package storage

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Settings holds user-facing application settings.
type Settings struct {
	Theme   string `toml:"theme" json:"theme"`     // dashboard theme name
	Columns int    `toml:"columns" json:"columns"` // category columns per page
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	return Settings{
		Theme:   "industrial",
		Columns: 3,
	}
}

// LoadSettings reads settings from the TOML file.
// Creates the file with defaults if it doesn't exist.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			settings := DefaultSettings()
			// Non-fatal: return defaults even if the initial save fails
			_ = SaveSettings(path, &settings)
			return &settings, nil
		}
		return nil, err
	}

	var settings Settings
	if err := toml.Unmarshal(data, &settings); err != nil {
		return nil, err
	}

	// Apply defaults for missing fields
	defaults := DefaultSettings()
	if settings.Theme == "" {
		settings.Theme = defaults.Theme
	}
	if settings.Columns <= 0 {
		settings.Columns = defaults.Columns
	}

	return &settings, nil
}

// SaveSettings writes settings to the TOML file.
// Creates the directory if it doesn't exist.
func SaveSettings(path string, settings *Settings) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(settings)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultSettingsPath returns the default settings path: ~/.config/startdeck/config.toml
func DefaultSettingsPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "startdeck", "config.toml"), nil
}
