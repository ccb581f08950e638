package daemon

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.API.Host != "127.0.0.1" {
		t.Errorf("API.Host = %q, want %q", cfg.API.Host, "127.0.0.1")
	}
	if cfg.API.Port != 7648 {
		t.Errorf("API.Port = %d, want %d", cfg.API.Port, 7648)
	}
	if cfg.Store.Dir == "" {
		t.Error("Store.Dir should default to the keel home dir")
	}
	if cfg.Telemetry.Prometheus {
		t.Error("Prometheus should be off by default")
	}
}

func TestLoadConfig_NoFile(t *testing.T) {
	t.Setenv("KEEL_HOME", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.API.Port != 7648 {
		t.Errorf("expected default port, got %d", cfg.API.Port)
	}
}

func TestLoadConfig_RoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("KEEL_HOME", home)

	cfg := DefaultConfig()
	cfg.API.Port = 9999
	cfg.Telemetry.Prometheus = true
	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig() error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(home, "config.toml")); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if loaded.API.Port != 9999 {
		t.Errorf("API.Port = %d, want 9999", loaded.API.Port)
	}
	if !loaded.Telemetry.Prometheus {
		t.Error("Telemetry.Prometheus should survive the round trip")
	}
}
