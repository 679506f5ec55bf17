package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.DriverName != "tui" {
		t.Fatalf("expected default driver tui, got %q", cfg.App.DriverName)
	}
	if !cfg.App.Wraparound {
		t.Fatalf("expected wraparound enabled by default")
	}
	if cfg.App.ScrollSpeed != 1 {
		t.Fatalf("expected default scroll speed 1, got %d", cfg.App.ScrollSpeed)
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	cfg, err := LoadArgs(
		[]string{"-driver", "null", "-scroll-speed", "3", "-wraparound=false"},
		[]string{"RETROMENU_DRIVER=tui", "RETROMENU_SCROLL_SPEED=9"},
	)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.DriverName != "null" {
		t.Fatalf("expected flag to win, got %q", cfg.App.DriverName)
	}
	if cfg.App.ScrollSpeed != 3 {
		t.Fatalf("expected scroll speed 3, got %d", cfg.App.ScrollSpeed)
	}
	if cfg.App.Wraparound {
		t.Fatalf("expected wraparound disabled")
	}
}

func TestEnvFallback(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"RETROMENU_TRACE=1", "RETROMENU_LOG_FILE=/tmp/rm.log"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace enabled from env")
	}
	if cfg.Logging.FilePath != "/tmp/rm.log" {
		t.Fatalf("expected log file from env, got %q", cfg.Logging.FilePath)
	}
}

func TestConfigFileProvidesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := `
driver = "null"
wraparound = false
scroll_speed = 4
playlist = "/data/history.toml"

[logging]
file = "/tmp/file.log"
trace = true
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	cfg, err := LoadArgs([]string{"-config", path}, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.DriverName != "null" || cfg.App.ScrollSpeed != 4 || cfg.App.Wraparound {
		t.Fatalf("expected file values applied, got %+v", cfg.App)
	}
	if cfg.App.PlaylistPath != "/data/history.toml" {
		t.Fatalf("expected playlist path from file, got %q", cfg.App.PlaylistPath)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/file.log" {
		t.Fatalf("expected logging settings from file, got %+v", cfg.Logging)
	}
}

func TestFlagsBeatConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("driver = \"null\"\nscroll_speed = 4\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	cfg, err := LoadArgs([]string{"-config", path, "-driver", "tui"}, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.DriverName != "tui" {
		t.Fatalf("expected flag to beat file, got %q", cfg.App.DriverName)
	}
	if cfg.App.ScrollSpeed != 4 {
		t.Fatalf("expected unset flag to take file value, got %d", cfg.App.ScrollSpeed)
	}
}

func TestConfigFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("driver = {"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadArgs([]string{"-config", path}, nil); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestScrollSpeedValidation(t *testing.T) {
	if _, err := LoadArgs([]string{"-scroll-speed", "0"}, nil); err == nil {
		t.Fatalf("expected error for scroll-speed 0")
	}
}
