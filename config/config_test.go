package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config should be valid, got %v", err)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
title: Arena
scale: 0.5
seed: 42
asset_dir: fig
log_level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Title != "Arena" || cfg.Scale != 0.5 || cfg.Seed != 42 || cfg.AssetDir != "fig" || cfg.LogLevel != "debug" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Fullscreen {
		t.Errorf("fullscreen should keep its default")
	}
}

func TestLoad_KeepsDefaultsForMissingKeys(t *testing.T) {
	path := writeConfig(t, "seed: 7\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := Default()
	if cfg.Title != def.Title || cfg.Scale != def.Scale || cfg.LogLevel != def.LogLevel {
		t.Errorf("expected defaults to survive, got %+v", cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}

	if _, err := Load(writeConfig(t, "scale: [1, 2")); err == nil {
		t.Errorf("expected a parse error")
	}

	if _, err := Load(writeConfig(t, "scale: -1\n")); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid for negative scale, got %v", err)
	}

	if _, err := Load(writeConfig(t, "log_level: loud\n")); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid for unknown log level, got %v", err)
	}
}

func TestWindowSize(t *testing.T) {
	cfg := Default()
	cfg.Scale = 0.5
	w, h := cfg.WindowSize(1100, 650)
	if w != 550 || h != 325 {
		t.Errorf("expected 550x325, got %dx%d", w, h)
	}
}
