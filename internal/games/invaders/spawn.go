package invaders

import (
	"math/rand"

	"github.com/vovakirdan/space-station/internal/config"
)

// Side is the edge a bonus ship enters from.
type Side int8

const (
	SideLeft Side = iota
	SideRight
)

// Scheduler runs the two tick-counted countdowns of a round: the bonus
// ship spawn and the alien fire cadence. It shares the game's RNG.
type Scheduler struct {
	rng *rand.Rand

	bonus    int
	bonusMin int
	bonusMax int

	fire     int
	interval int
	firing   bool
}

// NewScheduler creates an idle scheduler.
func NewScheduler(rng *rand.Rand, cfg config.ExtraConfig) *Scheduler {
	return &Scheduler{
		rng:      rng,
		bonusMin: cfg.SpawnMin,
		bonusMax: cfg.SpawnMax,
	}
}

// Start arms both countdowns for a new round. The first bonus countdown is
// drawn from [firstMin, firstMax]; alien fire waits one full interval.
func (s *Scheduler) Start(firstMin, firstMax, fireInterval int) {
	s.bonus = s.between(firstMin, firstMax)
	s.interval = max(fireInterval, 1)
	s.fire = s.interval
	s.firing = true
}

// Stop disarms alien fire. The bonus countdown is only advanced while the
// round is active, so it needs no stop of its own.
func (s *Scheduler) Stop() {
	s.firing = false
}

// Firing reports whether alien fire is armed.
func (s *Scheduler) Firing() bool {
	return s.firing
}

// SetFireInterval changes the cadence used after the next shot.
func (s *Scheduler) SetFireInterval(ticks int) {
	s.interval = max(ticks, 1)
}

// BonusCountdown returns the ticks left until the next bonus ship.
func (s *Scheduler) BonusCountdown() int {
	return s.bonus
}

// FireCountdown returns the ticks left until the next alien shot.
func (s *Scheduler) FireCountdown() int {
	return s.fire
}

// TickBonus advances the bonus countdown and reports whether a bonus ship
// is due. A due countdown is reseeded from [SpawnMin, SpawnMax].
func (s *Scheduler) TickBonus() bool {
	s.bonus--
	if s.bonus > 0 {
		return false
	}
	s.bonus = s.between(s.bonusMin, s.bonusMax)
	return true
}

// TickFire advances the alien fire countdown and reports whether a shot is due.
func (s *Scheduler) TickFire() bool {
	if !s.firing {
		return false
	}
	s.fire--
	if s.fire > 0 {
		return false
	}
	s.fire = s.interval
	return true
}

// PickSide chooses the edge for a bonus ship.
func (s *Scheduler) PickSide() Side {
	if s.rng.Intn(2) == 0 {
		return SideRight
	}
	return SideLeft
}

// PickIndex chooses uniformly in [0, n).
func (s *Scheduler) PickIndex(n int) int {
	return s.rng.Intn(n)
}

// between returns a uniform integer in [lo, hi].
func (s *Scheduler) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}
