package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds the user-tunable calendar geometry and display options,
// loaded from settings.yaml in the data directory.
type Settings struct {
	// ClinicName is shown in the TUI header and ICS export.
	ClinicName string `yaml:"clinic_name"`

	// GridStartHour and GridEndHour bound the visible day (24h clock).
	GridStartHour int `yaml:"grid_start_hour"`
	GridEndHour   int `yaml:"grid_end_hour"`

	// RowsPerHour is the vertical scale of the rendered grid.
	RowsPerHour int `yaml:"rows_per_hour"`

	// MinEventRows keeps very short appointments legible.
	MinEventRows int `yaml:"min_event_rows"`

	// ColumnPadding is horizontal space reserved around a conflict cluster.
	ColumnPadding int `yaml:"column_padding"`
}

// DefaultSettings returns the settings used when no file exists yet.
func DefaultSettings() Settings {
	return Settings{
		ClinicName:    "Clinic",
		GridStartHour: 8,
		GridEndHour:   19,
		RowsPerHour:   4,
		MinEventRows:  1,
		ColumnPadding: 2,
	}
}

// LoadSettings reads settings.yaml from the data directory, writing the
// defaults on first run. Out-of-range values fall back to defaults rather
// than failing.
func LoadSettings() (Settings, error) {
	path, err := SettingsPath()
	if err != nil {
		return Settings{}, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		settings := DefaultSettings()
		if err := SaveSettings(settings); err != nil {
			return Settings{}, err
		}
		return settings, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}

	return settings.normalized(), nil
}

// SaveSettings writes the settings file.
func SaveSettings(settings Settings) error {
	path, err := SettingsPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

// normalized replaces out-of-range values with defaults.
func (s Settings) normalized() Settings {
	defaults := DefaultSettings()

	if s.GridStartHour < 0 || s.GridStartHour > 23 {
		s.GridStartHour = defaults.GridStartHour
	}
	if s.GridEndHour <= s.GridStartHour || s.GridEndHour > 24 {
		s.GridEndHour = defaults.GridEndHour
	}
	if s.RowsPerHour < 1 {
		s.RowsPerHour = defaults.RowsPerHour
	}
	if s.MinEventRows < 1 {
		s.MinEventRows = defaults.MinEventRows
	}
	if s.ColumnPadding < 0 {
		s.ColumnPadding = defaults.ColumnPadding
	}
	if s.ClinicName == "" {
		s.ClinicName = defaults.ClinicName
	}
	return s
}
