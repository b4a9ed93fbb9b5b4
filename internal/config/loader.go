package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnknownPreset is returned for a difficulty name that is not a preset.
var ErrUnknownPreset = errors.New("unknown difficulty preset")

const invadersFile = "invaders.yaml"

// LoadInvaders loads the invaders configuration.
// Search order: customPath -> ~/.station/configs/invaders.yaml -> ./configs/invaders.yaml -> embedded default.
// Files are decoded on top of the built-in defaults, so a file only needs the keys it changes.
// A customPath ending in .toml or .json is decoded in that format, anything else as YAML.
func LoadInvaders(customPath string) (InvadersConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return InvadersConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decodeInvaders(customPath, data)
		if err != nil {
			return InvadersConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return InvadersConfig{}, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Files found on the search path are best-effort: a broken one is skipped.
	for _, path := range []string{userConfigPath(invadersFile), filepath.Join("configs", invadersFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decodeInvaders(path, data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg, err := decodeInvaders(invadersFile, defaultInvadersYAML)
	if err != nil {
		return DefaultInvadersConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decodeInvaders decodes data over the defaults, choosing the format by extension.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func decodeInvaders(path string, data []byte) (InvadersConfig, error) {
	cfg := DefaultInvadersConfig()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return cfg, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return cfg, fmt.Errorf("unknown keys %v", undecoded)
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return cfg, err
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, err
		}
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".station", "configs", filename)
}

// ParsePreset converts a CLI difficulty name into a preset.
// An empty name yields an empty preset, meaning "leave the config alone".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w %q (expected easy, normal, hard or fixed)", ErrUnknownPreset, name)
	}
}

// ApplyInvadersPreset modifies the config based on a difficulty preset.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Aliens.FireIntervalMS = 1000
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Aliens.FireIntervalMS = 500
	}
}
