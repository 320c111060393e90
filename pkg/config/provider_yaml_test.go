package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestYAMLProviderLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
storage:
  postgres:
    connection-string: "host=localhost user=leafgauge dbname=leafgauge"
http:
  port: 9080
  listen-addr: "127.0.0.1"
chart:
  peak-delta-fraction: 0.25
  date-locale: "month-first"
  tooltip:
    char-width: 7.0
    line-height: 14
    pad-y: 8
    min-width: 80
    max-width: 200
    gap: 12
`)

	cfg, err := NewYAMLProvider(path).LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Storage.Postgres == nil {
		t.Fatal("expected postgres storage config")
	}
	if got, want := cfg.Storage.Postgres.ConnectionString, "host=localhost user=leafgauge dbname=leafgauge"; got != want {
		t.Errorf("connection string = %q, want %q", got, want)
	}
	if cfg.HTTP.Port != 9080 {
		t.Errorf("http port = %d, want 9080", cfg.HTTP.Port)
	}
	if cfg.HTTP.ListenAddr != "127.0.0.1" {
		t.Errorf("listen addr = %q, want 127.0.0.1", cfg.HTTP.ListenAddr)
	}
	if cfg.Chart.PeakDeltaFraction != 0.25 {
		t.Errorf("peak delta fraction = %v, want 0.25", cfg.Chart.PeakDeltaFraction)
	}
	if cfg.Chart.DateLocale != "month-first" {
		t.Errorf("date locale = %q, want month-first", cfg.Chart.DateLocale)
	}
	if cfg.Chart.Tooltip == nil {
		t.Fatal("expected tooltip config")
	}
	if cfg.Chart.Tooltip.CharWidth != 7.0 {
		t.Errorf("tooltip char width = %v, want 7.0", cfg.Chart.Tooltip.CharWidth)
	}

	// Unset fields pick up defaults
	if cfg.Chart.FavorableBand != DefaultFavorableBand {
		t.Errorf("favorable band = %v, want default %v", cfg.Chart.FavorableBand, DefaultFavorableBand)
	}
}

func TestYAMLProviderDefaults(t *testing.T) {
	path := writeConfigFile(t, `
storage:
  postgres:
    connection-string: "host=localhost"
`)

	cfg, err := NewYAMLProvider(path).LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.HTTP.Port != DefaultHTTPPort {
		t.Errorf("http port = %d, want default %d", cfg.HTTP.Port, DefaultHTTPPort)
	}
	if cfg.Chart.PeakDeltaFraction != DefaultPeakDeltaFraction {
		t.Errorf("peak delta fraction = %v, want default %v", cfg.Chart.PeakDeltaFraction, DefaultPeakDeltaFraction)
	}
	if cfg.Chart.DateLocale != DefaultDateLocale {
		t.Errorf("date locale = %q, want default %q", cfg.Chart.DateLocale, DefaultDateLocale)
	}
	if cfg.Chart.Tooltip != nil {
		t.Error("expected nil tooltip config when unset")
	}
}

func TestYAMLProviderMissingFile(t *testing.T) {
	_, err := NewYAMLProvider(filepath.Join(t.TempDir(), "nope.yaml")).LoadConfig()
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}
