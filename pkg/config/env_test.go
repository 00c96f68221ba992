package config

import (
	"strings"
	"testing"
)

func TestParseEnvDefaults(t *testing.T) {
	var cfg Game
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Width != 3 || cfg.Dimensions != 2 || !cfg.Color {
		t.Fatalf("unexpected defaults %+v", cfg)
	}

	var arena Arena
	if err := ParseEnv(&arena); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if arena.Games != 1000 || arena.Workers != 2 || arena.Seed != 0 || arena.JSON {
		t.Fatalf("unexpected defaults %+v", arena)
	}
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("HYPERCUBE_WIDTH", "4")
	t.Setenv("HYPERCUBE_DIMENSIONS", "3")
	t.Setenv("HYPERCUBE_COLOR", "false")

	var cfg Game
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Width != 4 || cfg.Dimensions != 3 || cfg.Color {
		t.Fatalf("expected overrides, got %+v", cfg)
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("HYPERCUBE_ARENA_GAMES", "not-an-int")

	var cfg Arena
	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseEnvRequiresPrefix(t *testing.T) {
	t.Setenv("WIDTH", "7")
	t.Setenv("ARENA_GAMES", "5")

	var cfg Game
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Width != 3 {
		t.Fatalf("unprefixed WIDTH must be ignored, got %d", cfg.Width)
	}

	var arena Arena
	if err := ParseEnv(&arena); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if arena.Games != 1000 {
		t.Fatalf("unprefixed ARENA_GAMES must be ignored, got %d", arena.Games)
	}
}
