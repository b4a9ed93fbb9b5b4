package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultObstacleShape is the classic shield mask; each x is one block.
var DefaultObstacleShape = []string{
	"  xxxxxxx",
	" xxxxxxxxx",
	"xxxxxxxxxxx",
	"xxxxxxxxxxx",
	"xxxxxxxxxxx",
	"xxx     xxx",
	"xx       xx",
}

// DefaultInvadersConfig returns the built-in configuration.
// It mirrors defaults/invaders.yaml and backs it when the embed cannot be parsed.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:        60,
			Height:       32,
			Speed:        5,
			BottomOffset: 50,
			CooldownMS:   700,
			LaserSpeed:   8,
			BobAmplitude: 1,
			BobStep:      0.1,
		},
		Aliens: AliensConfig{
			Rows:           7,
			Cols:           11,
			XDistance:      60,
			YDistance:      48,
			XOffset:        70,
			YOffset:        100,
			Width:          40,
			Height:         32,
			Step:           1,
			Descent:        2,
			FireIntervalMS: 700,
			LaserSpeed:     6,
			BobAmplitude:   1,
			BobStep:        0.1,
			Points: AlienPoints{
				Yellow: 500,
				Green:  300,
				Red:    100,
			},
		},
		Lasers: LasersConfig{
			Width:  4,
			Height: 20,
			Margin: 50,
		},
		Obstacles: ObstaclesConfig{
			Count:     6,
			BlockSize: 6,
			Y:         480,
			Shape:     append([]string(nil), DefaultObstacleShape...),
		},
		Extra: ExtraConfig{
			Width:         64,
			Height:        28,
			Speed:         4,
			Y:             80,
			Margin:        50,
			Points:        500,
			FirstSpawnMin: 40,
			FirstSpawnMax: 80,
			SpawnMin:      400,
			SpawnMax:      800,
		},
		Gameplay: GameplayConfig{
			Lives: 3,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 20000,
			},
			Scaling: ScalingConfig{
				FireRateMultiplier:  1.0,
				FormationMultiplier: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultInvadersYAML
}
