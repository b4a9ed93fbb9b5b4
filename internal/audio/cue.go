// Package audio turns simulation events into short synthesized sound cues.
package audio

import "github.com/vovakirdan/space-station/internal/games/invaders"

// Cue is one sound effect.
type Cue int

const (
	CueNone Cue = iota
	CueShot
	CueAlienShot
	CueExplosion
	CueBonus
	CueBonusHit
	CueLifeLost
	CueRoundWon
	CueRoundOver

	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueShot:
		return "shot"
	case CueAlienShot:
		return "alien-shot"
	case CueExplosion:
		return "explosion"
	case CueBonus:
		return "bonus"
	case CueBonusHit:
		return "bonus-hit"
	case CueLifeLost:
		return "life-lost"
	case CueRoundWon:
		return "round-won"
	case CueRoundOver:
		return "round-over"
	default:
		return "none"
	}
}

// CueFor returns the cue an event should play, or CueNone.
func CueFor(ev invaders.Event) Cue {
	switch e := ev.(type) {
	case invaders.EntityCreated:
		switch e.Category {
		case invaders.CategoryPlayerLaser:
			return CueShot
		case invaders.CategoryAlienLaser:
			return CueAlienShot
		case invaders.CategoryExtra:
			return CueBonus
		}
	case invaders.Explosion:
		if e.Category == invaders.CategoryExtra {
			return CueBonusHit
		}
		return CueExplosion
	case invaders.LifeLost:
		return CueLifeLost
	case invaders.RoundWon:
		return CueRoundWon
	case invaders.RoundOver:
		return CueRoundOver
	}
	return CueNone
}

// CuesFor maps a tick's events to cues, each cue at most once and in
// first-seen order.
func CuesFor(events []invaders.Event) []Cue {
	var seen [cueCount]bool
	var cues []Cue
	for _, ev := range events {
		c := CueFor(ev)
		if c == CueNone || seen[c] {
			continue
		}
		seen[c] = true
		cues = append(cues, c)
	}
	return cues
}
