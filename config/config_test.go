package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `defaults:
  tz: "Europe/Berlin"
  interval: "week"
  week_start: "sunday"
  format: "auto"
  output_format: "text"
  workers: 4
server:
  addr: ":8181"
logging:
  level: "debug"
metrics:
  prometheus_enabled: true
  prometheus_addr: ":9191"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"defaults.tz", cfg.Defaults.TZ, "Europe/Berlin"},
		{"defaults.interval", cfg.Defaults.Interval, "week"},
		{"defaults.week_start", cfg.Defaults.WeekStart, "sunday"},
		{"defaults.format", cfg.Defaults.Format, "auto"},
		{"defaults.output_format", cfg.Defaults.OutputFormat, "text"},
		{"defaults.workers", cfg.Defaults.Workers, 4},
		{"server.addr", cfg.Server.Addr, ":8181"},
		{"server.read_timeout_seconds", cfg.Server.ReadTimeoutSeconds, 10},
		{"logging.level", cfg.Logging.Level, "debug"},
		{"metrics.prometheus_enabled", cfg.Metrics.PrometheusEnabled, true},
		{"metrics.prometheus_addr", cfg.Metrics.PrometheusAddr, ":9191"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s mismatch: %v", c.name, c.got)
		}
	}
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	if _, err := Load("config.toml"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestLoadRejectsBadDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	data := `{"defaults": {"interval": "hour"}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid interval")
	}
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Defaults.TZ != "UTC" || cfg.Defaults.Format != "epoch_ms" {
		t.Errorf("unexpected defaults: %+v", cfg.Defaults)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("unexpected server addr: %s", cfg.Server.Addr)
	}
}
