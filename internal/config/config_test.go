package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Source.SheetURL == "" {
		t.Error("default sheet URL must be set")
	}
	if cfg.Source.TimeoutSeconds != 10 {
		t.Errorf("expected 10s timeout, got %d", cfg.Source.TimeoutSeconds)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("expected port 8000, got %d", cfg.Server.Port)
	}
	if cfg.Velocity.SlowAfterDays != 12 || cfg.Velocity.WarnUpToDays != 20 {
		t.Errorf("unexpected velocity thresholds: %+v", cfg.Velocity)
	}
	if cfg.Sourcing.CriticalTarget != 80 {
		t.Errorf("expected critical target 80, got %d", cfg.Sourcing.CriticalTarget)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
source:
  timeout_seconds: 30
server:
  port: 9000
goals:
  indeed_per_day: 20
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Source.TimeoutSeconds != 30 {
		t.Errorf("expected timeout override 30, got %d", cfg.Source.TimeoutSeconds)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("expected port override 9000, got %d", cfg.Server.Port)
	}
	if cfg.Goals.IndeedPerDay != 20 {
		t.Errorf("expected goal override 20, got %d", cfg.Goals.IndeedPerDay)
	}
	// Untouched sections keep their defaults.
	if cfg.Source.SheetURL == "" {
		t.Error("sheet URL default must survive a partial config")
	}
	if cfg.Workload.ElevatedAt != 3 {
		t.Errorf("expected workload default 3, got %d", cfg.Workload.ElevatedAt)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("source: [not: a: mapping"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestDefaultConfigYAMLParses(t *testing.T) {
	cfg, err := parse(DefaultConfigYAML)
	if err != nil {
		t.Fatalf("embedded default config must parse: %v", err)
	}
	if cfg.Server.Port != Default().Server.Port {
		t.Errorf("embedded config port %d diverges from Default()", cfg.Server.Port)
	}
}

func TestResolveConfigPathExplicit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, DefaultConfigYAML, 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := ResolveConfigPath(path)
	if err != nil {
		t.Fatalf("ResolveConfigPath: %v", err)
	}
	if got != path {
		t.Errorf("expected %s, got %s", path, got)
	}
}

func TestResolveConfigPathExplicitMissing(t *testing.T) {
	if _, err := ResolveConfigPath(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing explicit path")
	}
}
