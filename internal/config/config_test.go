package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.Hotkey != "F6" {
		t.Fatalf("default hotkey = %q, want F6", cfg.Hotkey)
	}
	if cfg.Interval() != 100*time.Millisecond {
		t.Fatalf("default interval = %v, want 100ms", cfg.Interval())
	}
	if cfg.MouseButton != "Left" || cfg.ClickType != "Single" {
		t.Fatalf("default button/type = %q/%q", cfg.MouseButton, cfg.ClickType)
	}
	if cfg.RepeatMode != "infinite" || cfg.RepeatCount != 50 {
		t.Fatalf("default repeat = %q/%d", cfg.RepeatMode, cfg.RepeatCount)
	}
	if !cfg.ShowToast || !cfg.ShowOSD {
		t.Fatalf("notifications disabled by default")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := Defaults()
	cfg.Hotkey = "F8"
	cfg.IntervalMins = 1
	cfg.IntervalMS = 250
	cfg.MouseButton = "Right"
	cfg.ClickType = "Double"
	cfg.RepeatMode = RepeatFinite
	cfg.RepeatCount = 500
	cfg.ShowOSD = false

	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	got := LoadFrom(path)
	if got != cfg {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, cfg)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	got := LoadFrom(filepath.Join(t.TempDir(), "nope.json"))
	if got != Defaults() {
		t.Fatalf("missing file: got %+v", got)
	}
}

func TestLoadKeepsDefaultsForAbsentFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"hotkey": "F9", "show_osd": false}`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	got := LoadFrom(path)
	if got.Hotkey != "F9" {
		t.Fatalf("hotkey = %q, want F9", got.Hotkey)
	}
	if got.ShowOSD {
		t.Fatalf("show_osd should be false")
	}
	if got.IntervalMS != 100 || got.MouseButton != "Left" || got.RepeatCount != 50 {
		t.Fatalf("absent fields lost defaults: %+v", got)
	}
}

func TestLoadMalformedFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"hotkey": `), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := LoadFrom(path); got != Defaults() {
		t.Fatalf("malformed file: got %+v", got)
	}
}

func TestRepeatLimit(t *testing.T) {
	cfg := Defaults()
	if limit := cfg.RepeatLimit(); limit != 0 {
		t.Fatalf("infinite mode limit = %d, want 0", limit)
	}
	cfg.RepeatMode = RepeatFinite
	cfg.RepeatCount = 100
	if limit := cfg.RepeatLimit(); limit != 100 {
		t.Fatalf("finite mode limit = %d, want 100", limit)
	}
	cfg.RepeatCount = 0
	if limit := cfg.RepeatLimit(); limit != 1 {
		t.Fatalf("zero count limit = %d, want 1", limit)
	}
}

func TestSaveIsAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := SaveTo(path, Defaults()); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind: %v", err)
	}
}

func TestPathAndLogPathShareTheAppDir(t *testing.T) {
	path := Path()
	if filepath.Base(path) != "config.json" {
		t.Fatalf("Path() = %q, want a config.json location", path)
	}
	if dir := filepath.Base(filepath.Dir(path)); dir != appDirName {
		t.Fatalf("Path() dir = %q, want %q", dir, appDirName)
	}

	logPath := LogPath()
	if filepath.Base(logPath) != "slickclick.log" {
		t.Fatalf("LogPath() = %q, want a slickclick.log location", logPath)
	}
	if filepath.Dir(logPath) != filepath.Dir(path) {
		t.Fatalf("LogPath() dir = %q, want %q", filepath.Dir(logPath), filepath.Dir(path))
	}
}
