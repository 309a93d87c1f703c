package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadSceneSpec_Valid(t *testing.T) {
	dir := t.TempDir()
	doc := []byte(`schema_version: v1
render:
  frame_ms: 50
actors:
  - name: title
    opacity: 0
transitions:
  - actor: title
    property: Opacity
    to: 1.0
    duration_ms: 200
    curve: ease
`)
	path := filepath.Join(dir, "scene.yml")
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		t.Fatalf("write scene: %v", err)
	}

	cfg, err := LoadSceneSpec(path)
	if err != nil {
		t.Fatalf("LoadSceneSpec: %v", err)
	}
	if len(cfg.Actors) != 1 || cfg.Actors[0].Name != "title" {
		t.Fatalf("unexpected actors: %+v", cfg.Actors)
	}
	if cfg.Actors[0].Opacity == nil || *cfg.Actors[0].Opacity != 0 {
		t.Fatalf("explicit zero opacity must survive parsing: %+v", cfg.Actors[0].Opacity)
	}
	if len(cfg.Transitions) != 1 || cfg.Transitions[0].Curve != "ease" {
		t.Fatalf("unexpected transitions: %+v", cfg.Transitions)
	}
}

func TestLoadSceneSpec_InvalidSchema(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yml")
	if err := os.WriteFile(path, []byte("schema_version: v999\n"), 0o644); err != nil {
		t.Fatalf("write scene: %v", err)
	}
	if _, err := LoadSceneSpec(path); err == nil {
		t.Fatal("expected error for unsupported schema_version")
	}
}

func TestLoadSceneSpec_MissingDuration(t *testing.T) {
	dir := t.TempDir()
	doc := []byte(`schema_version: v1
transitions:
  - actor: a
    property: X
    to: 1
`)
	path := filepath.Join(dir, "scene.yml")
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		t.Fatalf("write scene: %v", err)
	}
	if _, err := LoadSceneSpec(path); err == nil {
		t.Fatal("expected error for missing duration_ms")
	}
}

func TestLoadEngineConfig_Defaults(t *testing.T) {
	cfg, err := LoadEngineConfig("")
	if err != nil {
		t.Fatalf("LoadEngineConfig: %v", err)
	}
	if cfg.HTTPPort != 8090 {
		t.Fatalf("want default port 8090, got %d", cfg.HTTPPort)
	}
	if cfg.TickInterval != 15*time.Millisecond {
		t.Fatalf("want default tick 15ms, got %v", cfg.TickInterval)
	}
	if cfg.Scene != "scene.yml" {
		t.Fatalf("want default scene, got %q", cfg.Scene)
	}
}

func TestLoadEngineConfig_File(t *testing.T) {
	dir := t.TempDir()
	doc := []byte(`http_port: 9000
scene: other.yml
tick_interval: 25ms
log:
  level: debug
`)
	path := filepath.Join(dir, "engine.yml")
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadEngineConfig(path)
	if err != nil {
		t.Fatalf("LoadEngineConfig: %v", err)
	}
	if cfg.HTTPPort != 9000 || cfg.Scene != "other.yml" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.TickInterval != 25*time.Millisecond {
		t.Fatalf("want 25ms tick, got %v", cfg.TickInterval)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("want debug level, got %q", cfg.Log.Level)
	}
}

func TestLoadEngineConfig_EnvOverride(t *testing.T) {
	t.Setenv("TWEEN_ENGINE__HTTP_PORT", "9100")
	cfg, err := LoadEngineConfig("")
	if err != nil {
		t.Fatalf("LoadEngineConfig: %v", err)
	}
	if cfg.HTTPPort != 9100 {
		t.Fatalf("env override not applied, got %d", cfg.HTTPPort)
	}
}

func TestLoadEngineConfig_MissingFileTolerated(t *testing.T) {
	if _, err := LoadEngineConfig(filepath.Join(t.TempDir(), "absent.yml")); err != nil {
		t.Fatalf("missing config file should fall back to defaults: %v", err)
	}
}
