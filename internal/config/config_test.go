package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSaveAndLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg := &Config{Actor: "dispatch-jane", DBPath: "/tmp/trips.db"}
	if err := SaveConfig(dir, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	want := &Config{Version: CurrentVersion, Actor: "dispatch-jane", DBPath: "/tmp/trips.db"}
	if diff := cmp.Diff(want, loaded); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	if err == nil {
		t.Error("expected error for missing config")
	}
}

func TestLoadOrDefault(t *testing.T) {
	t.Setenv("USER", "tester")

	cfg, err := LoadOrDefault(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOrDefault failed: %v", err)
	}
	if cfg.Actor != "tester" {
		t.Errorf("expected default actor 'tester', got %q", cfg.Actor)
	}
	if cfg.DBPath != "" {
		t.Errorf("expected empty db path, got %q", cfg.DBPath)
	}
}

func TestLoadOrDefault_FillsActor(t *testing.T) {
	t.Setenv("USER", "tester")
	dir := t.TempDir()
	if err := SaveConfig(dir, &Config{DBPath: "/tmp/x.db"}); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	cfg, err := LoadOrDefault(dir)
	if err != nil {
		t.Fatalf("LoadOrDefault failed: %v", err)
	}
	if cfg.Actor != "tester" || cfg.DBPath != "/tmp/x.db" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadOrDefault_Malformed(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".tripline"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(Path(dir), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadOrDefault(dir); err == nil {
		t.Error("expected parse error for malformed config")
	}
}
