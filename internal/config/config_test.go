package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Simulation.Games != DefaultGames {
		t.Errorf("games = %d, want %d", cfg.Simulation.Games, DefaultGames)
	}
	if cfg.Simulation.MaxTurns != DefaultMaxTurns {
		t.Errorf("max turns = %d, want %d", cfg.Simulation.MaxTurns, DefaultMaxTurns)
	}
	if cfg.Simulation.Opponents != DefaultOpponents {
		t.Errorf("opponents = %d, want %d", cfg.Simulation.Opponents, DefaultOpponents)
	}
	if cfg.Simulation.Workers != 0 {
		t.Errorf("workers = %d, want 0", cfg.Simulation.Workers)
	}
	if !cfg.Simulation.EnhancedAI {
		t.Error("enhanced AI should default on")
	}
	if cfg.Simulation.Trace {
		t.Error("trace should default off")
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Errorf("logging = %s/%s, want info/console", cfg.Logging.Level, cfg.Logging.Format)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
simulation:
  games: 250
  workers: 4
  max_turns: 15
  seed: 42
  trace: true
logging:
  level: debug
  format: json
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Simulation.Games != 250 {
		t.Errorf("games = %d, want 250", cfg.Simulation.Games)
	}
	if cfg.Simulation.Workers != 4 {
		t.Errorf("workers = %d, want 4", cfg.Simulation.Workers)
	}
	if cfg.Simulation.MaxTurns != 15 {
		t.Errorf("max turns = %d, want 15", cfg.Simulation.MaxTurns)
	}
	if cfg.Simulation.Seed != 42 {
		t.Errorf("seed = %d, want 42", cfg.Simulation.Seed)
	}
	if !cfg.Simulation.Trace {
		t.Error("trace should be on")
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("logging = %s/%s, want debug/json", cfg.Logging.Level, cfg.Logging.Format)
	}

	// Untouched keys keep their defaults.
	if cfg.Simulation.Opponents != DefaultOpponents {
		t.Errorf("opponents = %d, want default %d", cfg.Simulation.Opponents, DefaultOpponents)
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("GOLDFISH_SIMULATION_GAMES", "7")
	t.Setenv("GOLDFISH_LOGGING_LEVEL", "warn")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Simulation.Games != 7 {
		t.Errorf("games = %d, want 7", cfg.Simulation.Games)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("level = %s, want warn", cfg.Logging.Level)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"zero games", "simulation:\n  games: 0\n", "games"},
		{"negative workers", "simulation:\n  workers: -1\n", "workers"},
		{"zero opponents", "simulation:\n  opponents: 0\n", "opponents"},
		{"bad level", "logging:\n  level: loud\n", "level"},
		{"bad format", "logging:\n  format: xml\n", "format"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tc.body), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
