// Package config provides file-based game configuration loading and
// difficulty management.
package config

// InvadersConfig contains all tunables for the invaders round.
// Distances are world units, speeds are world units per tick and
// durations are milliseconds converted to ticks at the runtime tick rate.
type InvadersConfig struct {
	World      WorldConfig      `yaml:"world" toml:"world" json:"world"`
	Player     PlayerConfig     `yaml:"player" toml:"player" json:"player"`
	Aliens     AliensConfig     `yaml:"aliens" toml:"aliens" json:"aliens"`
	Lasers     LasersConfig     `yaml:"lasers" toml:"lasers" json:"lasers"`
	Obstacles  ObstaclesConfig  `yaml:"obstacles" toml:"obstacles" json:"obstacles"`
	Extra      ExtraConfig      `yaml:"extra" toml:"extra" json:"extra"`
	Gameplay   GameplayConfig   `yaml:"gameplay" toml:"gameplay" json:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty" json:"difficulty"`
}

// WorldConfig is the logical playfield size.
type WorldConfig struct {
	Width  float64 `yaml:"width" toml:"width" json:"width" jsonschema:"minimum=1"`
	Height float64 `yaml:"height" toml:"height" json:"height" jsonschema:"minimum=1"`
}

// PlayerConfig defines the ship.
type PlayerConfig struct {
	Width        float64 `yaml:"width" toml:"width" json:"width"`
	Height       float64 `yaml:"height" toml:"height" json:"height"`
	Speed        float64 `yaml:"speed" toml:"speed" json:"speed"`
	BottomOffset float64 `yaml:"bottom_offset" toml:"bottom_offset" json:"bottom_offset" jsonschema:"description=Distance from the bottom edge to the ship center"`
	CooldownMS   int     `yaml:"cooldown_ms" toml:"cooldown_ms" json:"cooldown_ms"`
	LaserSpeed   float64 `yaml:"laser_speed" toml:"laser_speed" json:"laser_speed"`
	BobAmplitude float64 `yaml:"bob_amplitude" toml:"bob_amplitude" json:"bob_amplitude"`
	BobStep      float64 `yaml:"bob_step" toml:"bob_step" json:"bob_step"`
}

// AliensConfig defines the formation.
type AliensConfig struct {
	Rows           int         `yaml:"rows" toml:"rows" json:"rows"`
	Cols           int         `yaml:"cols" toml:"cols" json:"cols"`
	XDistance      float64     `yaml:"x_distance" toml:"x_distance" json:"x_distance"`
	YDistance      float64     `yaml:"y_distance" toml:"y_distance" json:"y_distance"`
	XOffset        float64     `yaml:"x_offset" toml:"x_offset" json:"x_offset"`
	YOffset        float64     `yaml:"y_offset" toml:"y_offset" json:"y_offset"`
	Width          float64     `yaml:"width" toml:"width" json:"width"`
	Height         float64     `yaml:"height" toml:"height" json:"height"`
	Step           float64     `yaml:"step" toml:"step" json:"step" jsonschema:"description=Horizontal formation move per tick"`
	Descent        float64     `yaml:"descent" toml:"descent" json:"descent"`
	FireIntervalMS int         `yaml:"fire_interval_ms" toml:"fire_interval_ms" json:"fire_interval_ms"`
	LaserSpeed     float64     `yaml:"laser_speed" toml:"laser_speed" json:"laser_speed"`
	BobAmplitude   float64     `yaml:"bob_amplitude" toml:"bob_amplitude" json:"bob_amplitude"`
	BobStep        float64     `yaml:"bob_step" toml:"bob_step" json:"bob_step"`
	Points         AlienPoints `yaml:"points" toml:"points" json:"points"`
}

// AlienPoints is the score per alien color.
type AlienPoints struct {
	Yellow int `yaml:"yellow" toml:"yellow" json:"yellow"`
	Green  int `yaml:"green" toml:"green" json:"green"`
	Red    int `yaml:"red" toml:"red" json:"red"`
}

// LasersConfig defines laser geometry.
type LasersConfig struct {
	Width  float64 `yaml:"width" toml:"width" json:"width"`
	Height float64 `yaml:"height" toml:"height" json:"height"`
	Margin float64 `yaml:"margin" toml:"margin" json:"margin" jsonschema:"description=Distance past the top or bottom edge before a laser is culled"`
}

// ObstaclesConfig defines the destructible shields.
type ObstaclesConfig struct {
	Count     int      `yaml:"count" toml:"count" json:"count"`
	BlockSize float64  `yaml:"block_size" toml:"block_size" json:"block_size"`
	Y         float64  `yaml:"y" toml:"y" json:"y"`
	Shape     []string `yaml:"shape" toml:"shape" json:"shape" jsonschema:"description=Rows of the obstacle mask; x marks a block"`
}

// ExtraConfig defines the bonus ship.
type ExtraConfig struct {
	Width         float64 `yaml:"width" toml:"width" json:"width"`
	Height        float64 `yaml:"height" toml:"height" json:"height"`
	Speed         float64 `yaml:"speed" toml:"speed" json:"speed"`
	Y             float64 `yaml:"y" toml:"y" json:"y"`
	Margin        float64 `yaml:"margin" toml:"margin" json:"margin"`
	Points        int     `yaml:"points" toml:"points" json:"points"`
	FirstSpawnMin int     `yaml:"first_spawn_min" toml:"first_spawn_min" json:"first_spawn_min" jsonschema:"description=Ticks"`
	FirstSpawnMax int     `yaml:"first_spawn_max" toml:"first_spawn_max" json:"first_spawn_max" jsonschema:"description=Ticks"`
	SpawnMin      int     `yaml:"spawn_min" toml:"spawn_min" json:"spawn_min" jsonschema:"description=Ticks"`
	SpawnMax      int     `yaml:"spawn_max" toml:"spawn_max" json:"spawn_max" jsonschema:"description=Ticks"`
}

// GameplayConfig holds round-level rules.
type GameplayConfig struct {
	Lives int `yaml:"lives" toml:"lives" json:"lives"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled" json:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level" json:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression" json:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling" json:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a round.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type" json:"type" jsonschema:"enum=score,enum=time,enum=none"`
	MaxAt int    `yaml:"max_at" toml:"max_at" json:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes at level 1.0.
type ScalingConfig struct {
	FireRateMultiplier  float64 `yaml:"fire_rate_multiplier" toml:"fire_rate_multiplier" json:"fire_rate_multiplier"`   // Added to alien fire rate
	FormationMultiplier float64 `yaml:"formation_multiplier" toml:"formation_multiplier" json:"formation_multiplier"` // Added to formation step
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
