package invaders

import (
	"fmt"
	"math"
	"sort"

	"github.com/vovakirdan/space-station/internal/core"
)

// Script produces one input frame per tick from the current snapshot.
// Scripts drive headless rounds and must be deterministic.
type Script interface {
	Next(s Snapshot) core.InputFrame
}

// Idle starts the round and then does nothing.
type Idle struct{}

// Next implements Script.
func (Idle) Next(s Snapshot) core.InputFrame {
	if s.Phase != PhaseActive {
		return core.FrameOf(core.ActionFire)
	}
	return core.NewInputFrame()
}

// Autopilot steers under the lowest alien of the nearest column and keeps
// firing. It restarts finished rounds only when Replay is set.
type Autopilot struct {
	Replay bool
	// Deadband is how close, in world units, counts as lined up.
	Deadband float64
}

// Next implements Script.
func (a Autopilot) Next(s Snapshot) core.InputFrame {
	switch s.Phase {
	case PhaseHome:
		return core.FrameOf(core.ActionFire)
	case PhaseGameOver, PhaseWon:
		if a.Replay {
			return core.FrameOf(core.ActionFire)
		}
		return core.NewInputFrame()
	}
	if s.Player == nil || len(s.Aliens) == 0 {
		return core.FrameOf(core.ActionStop)
	}

	px, _ := s.Player.Box.Center()
	tx, ok := targetX(s, px)
	if !ok {
		return core.FrameOf(core.ActionStop, core.ActionFire)
	}

	band := a.Deadband
	if band <= 0 {
		band = 4
	}
	switch {
	case tx < px-band:
		return core.FrameOf(core.ActionLeft, core.ActionFire)
	case tx > px+band:
		return core.FrameOf(core.ActionRight, core.ActionFire)
	default:
		return core.FrameOf(core.ActionStop, core.ActionFire)
	}
}

// targetX picks the x of the lowest alien in the column closest to px.
func targetX(s Snapshot, px float64) (float64, bool) {
	lowest := make(map[int]AlienView)
	for _, al := range s.Aliens {
		if cur, ok := lowest[al.Col]; !ok || al.Box.Y > cur.Box.Y {
			lowest[al.Col] = al
		}
	}
	if len(lowest) == 0 {
		return 0, false
	}

	cols := make([]int, 0, len(lowest))
	for c := range lowest {
		cols = append(cols, c)
	}
	sort.Ints(cols)

	best, bestDist := 0.0, math.Inf(1)
	for _, c := range cols {
		x, _ := lowest[c].Box.Center()
		if d := math.Abs(x - px); d < bestDist {
			best, bestDist = x, d
		}
	}
	return best, true
}

// ScriptByName returns the named script: "autopilot" or "idle".
func ScriptByName(name string) (Script, error) {
	switch name {
	case "autopilot", "":
		return Autopilot{}, nil
	case "idle":
		return Idle{}, nil
	default:
		return nil, fmt.Errorf("unknown script %q (expected autopilot or idle)", name)
	}
}
