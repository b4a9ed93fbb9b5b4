package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate reports every value that would make a round unplayable.
func (c InvadersConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("player.laser_speed", c.Player.LaserSpeed)
	positive("aliens.width", c.Aliens.Width)
	positive("aliens.height", c.Aliens.Height)
	positive("aliens.step", c.Aliens.Step)
	positive("aliens.laser_speed", c.Aliens.LaserSpeed)
	positive("lasers.width", c.Lasers.Width)
	positive("lasers.height", c.Lasers.Height)
	positive("obstacles.block_size", c.Obstacles.BlockSize)
	positive("extra.width", c.Extra.Width)
	positive("extra.height", c.Extra.Height)
	positive("extra.speed", c.Extra.Speed)

	if c.Player.Speed < 0 {
		errs = append(errs, fmt.Errorf("player.speed must not be negative, got %v", c.Player.Speed))
	}
	if c.Player.CooldownMS < 0 {
		errs = append(errs, fmt.Errorf("player.cooldown_ms must not be negative, got %d", c.Player.CooldownMS))
	}
	if c.Aliens.Rows < 1 || c.Aliens.Cols < 1 {
		errs = append(errs, fmt.Errorf("aliens grid must be at least 1x1, got %dx%d", c.Aliens.Rows, c.Aliens.Cols))
	}
	if c.Aliens.Descent < 0 {
		errs = append(errs, fmt.Errorf("aliens.descent must not be negative, got %v", c.Aliens.Descent))
	}
	if c.Aliens.FireIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("aliens.fire_interval_ms must be positive, got %d", c.Aliens.FireIntervalMS))
	}
	if c.Lasers.Margin < 0 {
		errs = append(errs, fmt.Errorf("lasers.margin must not be negative, got %v", c.Lasers.Margin))
	}
	if c.Obstacles.Count < 0 {
		errs = append(errs, fmt.Errorf("obstacles.count must not be negative, got %d", c.Obstacles.Count))
	}
	if c.Obstacles.Count > 0 && !shapeHasBlocks(c.Obstacles.Shape) {
		errs = append(errs, errors.New("obstacles.shape has no blocks"))
	}
	if c.Extra.FirstSpawnMin < 1 || c.Extra.FirstSpawnMax < c.Extra.FirstSpawnMin {
		errs = append(errs, fmt.Errorf("extra first spawn range [%d, %d] is invalid", c.Extra.FirstSpawnMin, c.Extra.FirstSpawnMax))
	}
	if c.Extra.SpawnMin < 1 || c.Extra.SpawnMax < c.Extra.SpawnMin {
		errs = append(errs, fmt.Errorf("extra spawn range [%d, %d] is invalid", c.Extra.SpawnMin, c.Extra.SpawnMax))
	}
	if c.Gameplay.Lives < 1 {
		errs = append(errs, fmt.Errorf("gameplay.lives must be at least 1, got %d", c.Gameplay.Lives))
	}
	switch c.Difficulty.Progression.Type {
	case "score", "time", "none", "":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type %q is not one of score, time, none", c.Difficulty.Progression.Type))
	}

	return errors.Join(errs...)
}

func shapeHasBlocks(shape []string) bool {
	for _, row := range shape {
		if strings.ContainsRune(row, 'x') {
			return true
		}
	}
	return false
}
