package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML InvadersConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}

	want, err := Marshal(DefaultInvadersConfig(), "json")
	if err != nil {
		t.Fatal(err)
	}
	got, err := Marshal(fromYAML, "json")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(want) {
		t.Errorf("embedded defaults drifted from DefaultInvadersConfig:\n%s\nexpected\n%s", got, want)
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := DefaultInvadersConfig().Validate(); err != nil {
		t.Errorf("Validate() = %v, expected nil", err)
	}
}

func TestDefaultObstacleShapeHas59Blocks(t *testing.T) {
	n := 0
	for _, row := range DefaultObstacleShape {
		n += strings.Count(row, "x")
	}
	if n != 59 {
		t.Errorf("block count = %d, expected 59", n)
	}
}

func TestLoadInvadersCustomFormats(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"yaml", "custom.yaml", "gameplay:\n  lives: 7\naliens:\n  rows: 2\n"},
		{"toml", "custom.toml", "[gameplay]\nlives = 7\n\n[aliens]\nrows = 2\n"},
		{"json", "custom.json", `{"gameplay": {"lives": 7}, "aliens": {"rows": 2}}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.file)
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatal(err)
			}

			cfg, err := LoadInvaders(path)
			if err != nil {
				t.Fatalf("LoadInvaders() error = %v", err)
			}
			if cfg.Gameplay.Lives != 7 {
				t.Errorf("Lives = %d, expected 7", cfg.Gameplay.Lives)
			}
			if cfg.Aliens.Rows != 2 {
				t.Errorf("Rows = %d, expected 2", cfg.Aliens.Rows)
			}
			// Untouched keys keep their defaults.
			if cfg.Aliens.Cols != 11 {
				t.Errorf("Cols = %d, expected default 11", cfg.Aliens.Cols)
			}
		})
	}
}

func TestLoadInvadersRejectsBadFiles(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"unknown yaml key", "typo.yaml", "gameplay:\n  livez: 3\n"},
		{"unknown toml key", "typo.toml", "[gameplay]\nlivez = 3\n"},
		{"invalid value", "zero.yaml", "gameplay:\n  lives: 0\n"},
		{"broken yaml", "broken.yaml", "gameplay: [\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.file)
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadInvaders(path); err == nil {
				t.Error("LoadInvaders() error = nil, expected failure")
			}
		})
	}

	if _, err := LoadInvaders(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, expected os.ErrNotExist", err)
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := DefaultInvadersConfig()
	cfg.World.Width = 0
	cfg.Gameplay.Lives = 0
	cfg.Extra.SpawnMax = 1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, expected errors")
	}
	for _, want := range []string{"world.width", "gameplay.lives", "extra spawn range"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() = %q, missing %q", err, want)
		}
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", "", false},
		{"easy", DifficultyEasy, false},
		{" Hard ", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if tc.wantErr && !errors.Is(err, ErrUnknownPreset) {
			t.Errorf("ParsePreset(%q) error = %v, expected ErrUnknownPreset", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyInvadersPreset(t *testing.T) {
	cfg := DefaultInvadersConfig()
	ApplyInvadersPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset difficulty = %+v", cfg.Difficulty)
	}
	if cfg.Gameplay.Lives != 2 {
		t.Errorf("hard preset lives = %d, expected 2", cfg.Gameplay.Lives)
	}

	cfg = DefaultInvadersConfig()
	ApplyInvadersPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultInvadersConfig()
	ApplyInvadersPreset(&cfg, "")
	if cfg.Gameplay.Lives != 3 || cfg.Difficulty.Enabled {
		t.Error("empty preset should leave the config alone")
	}
}

func TestDifficultyManager(t *testing.T) {
	disabled := NewDifficultyManager(DefaultInvadersConfig().Difficulty)
	if got := disabled.FireInterval(42, 10000, 0); got != 42 {
		t.Errorf("disabled FireInterval() = %d, expected 42", got)
	}
	if got := disabled.FormationStep(1, 10000, 0); got != 1 {
		t.Errorf("disabled FormationStep() = %v, expected 1", got)
	}

	cfg := DefaultInvadersConfig().Difficulty
	cfg.Enabled = true
	m := NewDifficultyManager(cfg)

	if got := m.Level(0, 0); got != 0 {
		t.Errorf("Level(0) = %v, expected 0", got)
	}
	if got := m.Level(cfg.Progression.MaxAt*2, 0); got != 1 {
		t.Errorf("Level(beyond max) = %v, expected 1", got)
	}
	if got := m.FireInterval(42, cfg.Progression.MaxAt, 0); got != 21 {
		t.Errorf("FireInterval() at max = %d, expected 21", got)
	}
	if got := m.FormationStep(2, cfg.Progression.MaxAt, 0); got != 3 {
		t.Errorf("FormationStep() at max = %v, expected 3", got)
	}
}

func TestMarshalAndSchema(t *testing.T) {
	for _, format := range []string{"yaml", "toml", "json"} {
		data, err := Marshal(DefaultInvadersConfig(), format)
		if err != nil {
			t.Errorf("Marshal(%s) error = %v", format, err)
			continue
		}
		if !strings.Contains(string(data), "fire_interval_ms") {
			t.Errorf("Marshal(%s) output is missing snake_case keys", format)
		}
	}

	if _, err := Marshal(DefaultInvadersConfig(), "xml"); err == nil {
		t.Error("Marshal(xml) error = nil, expected failure")
	}

	data, err := Schema()
	if err != nil {
		t.Fatalf("Schema() error = %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("schema is not JSON: %v", err)
	}
	if doc["title"] != "Invaders configuration" {
		t.Errorf("schema title = %v", doc["title"])
	}
	if !strings.Contains(string(data), "cooldown_ms") {
		t.Error("schema is missing player.cooldown_ms")
	}
}
