package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Host != "0.0.0.0" || cfg.Server.Port != 8080 {
		t.Errorf("server defaults: %+v", cfg.Server)
	}
	if cfg.Limits.MaxUploadBytes != 10*1024*1024 {
		t.Errorf("max upload bytes: %d", cfg.Limits.MaxUploadBytes)
	}
	if cfg.Limits.MaxInputChars != 6000 {
		t.Errorf("max input chars: %d", cfg.Limits.MaxInputChars)
	}
	if cfg.Poll.Interval != "2s" || cfg.Poll.MaxAttempts != 30 {
		t.Errorf("poll defaults: %+v", cfg.Poll)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "pretty" {
		t.Errorf("logging defaults: %+v", cfg.Logging)
	}

	if _, err := time.ParseDuration(cfg.Poll.Interval); err != nil {
		t.Errorf("default poll interval does not parse: %v", err)
	}
}

func TestLoadTOMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[server]
port = 9090

[poll]
interval = "500ms"
max_attempts = 5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("port not overridden: %d", cfg.Server.Port)
	}
	if cfg.Poll.Interval != "500ms" || cfg.Poll.MaxAttempts != 5 {
		t.Errorf("poll not overridden: %+v", cfg.Poll)
	}
	// Untouched sections keep their defaults.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("host lost its default: %s", cfg.Server.Host)
	}
	if cfg.Limits.MaxInputChars != 6000 {
		t.Errorf("limits lost their default: %+v", cfg.Limits)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[server]\nport = 9090\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("DOCA_SERVER_PORT", "7070")
	t.Setenv("DOCA_LOGGING_LEVEL", "debug")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("env did not win over file: %d", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("logging level: %s", cfg.Logging.Level)
	}
}

func TestEmptyEnvValueIgnored(t *testing.T) {
	t.Setenv("DOCA_LOGGING_LEVEL", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("empty env var overrode default: %s", cfg.Logging.Level)
	}
}
