package invaders

import (
	"github.com/vovakirdan/space-station/internal/config"
)

// Formation owns the alien grid and moves it as one unit.
type Formation struct {
	Aliens    []*Alien
	Direction float64 // +1 right, -1 left

	descent float64
	worldW  float64
	bob     bob
}

// NewFormation lays out a full grid. Row 0 is the top row.
func NewFormation(cfg config.AliensConfig, worldW float64, newID func() EntityID) *Formation {
	f := &Formation{
		Aliens:    make([]*Alien, 0, cfg.Rows*cfg.Cols),
		Direction: 1,
		descent:   cfg.Descent,
		worldW:    worldW,
		bob:       bob{amplitude: cfg.BobAmplitude, step: cfg.BobStep},
	}

	for row := 0; row < cfg.Rows; row++ {
		color := colorForRow(row)
		for col := 0; col < cfg.Cols; col++ {
			f.Aliens = append(f.Aliens, &Alien{
				ID:     newID(),
				X:      float64(col)*cfg.XDistance + cfg.XOffset,
				Y:      float64(row)*cfg.YDistance + cfg.YOffset,
				W:      cfg.Width,
				H:      cfg.Height,
				Color:  color,
				Points: pointsFor(cfg.Points, color),
				Row:    row,
				Col:    col,
			})
		}
	}
	return f
}

func pointsFor(p config.AlienPoints, c AlienColor) int {
	switch c {
	case AlienYellow:
		return p.Yellow
	case AlienGreen:
		return p.Green
	default:
		return p.Red
	}
}

// Len returns the number of aliens in the formation.
func (f *Formation) Len() int {
	return len(f.Aliens)
}

// Advance shifts every alien by step in the current direction and applies
// the shared bob. The bob accumulates on y, so it feeds collision geometry.
func (f *Formation) Advance(step float64) {
	dy := f.bob.next()
	dx := f.Direction * step
	for _, a := range f.Aliens {
		a.X += dx
		a.Y += dy
	}
}

// CheckBounds flips the direction and drops the whole grid by the descent
// step when any alien touches the side it is moving towards. It acts at
// most once per call and reports whether it did.
func (f *Formation) CheckBounds() bool {
	hit := false
	for _, a := range f.Aliens {
		if (f.Direction > 0 && a.X+a.W/2 >= f.worldW) || (f.Direction < 0 && a.X-a.W/2 <= 0) {
			hit = true
			break
		}
	}
	if !hit {
		return false
	}

	f.Direction = -f.Direction
	for _, a := range f.Aliens {
		a.Y += f.descent
	}
	return true
}

// Compact drops dead aliens while keeping grid order.
func (f *Formation) Compact() {
	live := f.Aliens[:0]
	for _, a := range f.Aliens {
		if !a.dead {
			live = append(live, a)
		}
	}
	clear(f.Aliens[len(live):])
	f.Aliens = live
}
