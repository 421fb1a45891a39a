// Package config persists SlickClick settings as a JSON file in the user
// config directory. Loading is forgiving: a missing file, a malformed file
// or an absent field all resolve to defaults, so the app always starts.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const appDirName = "SlickClick"

// Repeat modes.
const (
	RepeatFinite   = "finite"
	RepeatInfinite = "infinite"
)

// Settings is the persisted application state. Field names match the
// on-disk JSON document.
type Settings struct {
	Hotkey        string `json:"hotkey"`
	IntervalHours int    `json:"interval_hours"`
	IntervalMins  int    `json:"interval_mins"`
	IntervalSecs  int    `json:"interval_secs"`
	IntervalMS    int    `json:"interval_ms"`
	MouseButton   string `json:"mouse_button"`
	ClickType     string `json:"click_type"`
	RepeatMode    string `json:"repeat_mode"`
	RepeatCount   int    `json:"repeat_count"`
	ShowToast     bool   `json:"show_toast"`
	ShowOSD       bool   `json:"show_osd"`
}

// Defaults returns the settings used on first launch.
func Defaults() Settings {
	return Settings{
		Hotkey:        "F6",
		IntervalHours: 0,
		IntervalMins:  0,
		IntervalSecs:  0,
		IntervalMS:    100,
		MouseButton:   "Left",
		ClickType:     "Single",
		RepeatMode:    RepeatInfinite,
		RepeatCount:   50,
		ShowToast:     true,
		ShowOSD:       true,
	}
}

// Interval combines the four duration fields into one click interval.
func (s Settings) Interval() time.Duration {
	return time.Duration(s.IntervalHours)*time.Hour +
		time.Duration(s.IntervalMins)*time.Minute +
		time.Duration(s.IntervalSecs)*time.Second +
		time.Duration(s.IntervalMS)*time.Millisecond
}

// RepeatLimit returns the click budget for a run, 0 meaning unbounded.
func (s Settings) RepeatLimit() int {
	if s.RepeatMode != RepeatFinite {
		return 0
	}
	if s.RepeatCount < 1 {
		return 1
	}
	return s.RepeatCount
}

// Path returns the settings file location, creating nothing. When the user
// config directory cannot be resolved the working directory stands in, so
// there is always somewhere to read and write.
func Path() string {
	configDir, err := os.UserConfigDir()
	if err != nil || configDir == "" {
		return filepath.Join(".", appDirName, "config.json")
	}
	return filepath.Join(configDir, appDirName, "config.json")
}

// Load reads the settings file at the default location.
func Load() Settings {
	return LoadFrom(Path())
}

// LoadFrom reads settings from path. Fields absent from the file keep their
// defaults; a file that cannot be read or parsed yields pure defaults.
func LoadFrom(path string) Settings {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Defaults()
	}
	return cfg
}

// Save writes the settings file at the default location.
func Save(cfg Settings) error {
	return SaveTo(Path(), cfg)
}

// SaveTo writes settings to path atomically via a temp file and rename.
func SaveTo(path string, cfg Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create settings dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to persist settings: %w", err)
	}

	return nil
}

// LogPath returns the per-launch log file location, next to the settings.
func LogPath() string {
	return filepath.Join(filepath.Dir(Path()), "slickclick.log")
}
