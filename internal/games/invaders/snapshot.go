package invaders

import "github.com/vovakirdan/space-station/internal/core"

// Snapshot is a plain-value copy of a round. Holding one never aliases the
// game's collections.
type Snapshot struct {
	Tick      int
	Phase     Phase
	Paused    bool
	Score     int
	Lives     int
	Direction float64

	Player *EntityView
	Extra  *EntityView
	Aliens []AlienView
	Lasers []EntityView
	Blocks []EntityView

	// Countdowns in ticks
	BonusCountdown int
	FireCountdown  int
}

// EntityView is the read-only position of one entity.
type EntityView struct {
	ID       EntityID
	Category Category
	Box      core.Box
}

// AlienView adds the grid cell and color of an alien.
type AlienView struct {
	EntityView
	Color    AlienColor
	Points   int
	Row, Col int
}

// Snapshot returns the current round for rendering or inspection.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      g.tickCount,
		Phase:     g.phase,
		Paused:    g.paused,
		Score:     g.score,
		Lives:     g.lives,
		Direction: g.formation.Direction,
	}

	if g.scheduler != nil {
		s.BonusCountdown = g.scheduler.BonusCountdown()
		s.FireCountdown = g.scheduler.FireCountdown()
	}

	if g.player != nil {
		s.Player = &EntityView{ID: g.player.ID, Category: CategoryPlayer, Box: g.player.Box()}
	}
	if g.extra != nil {
		s.Extra = &EntityView{ID: g.extra.ID, Category: CategoryExtra, Box: g.extra.Box()}
	}

	s.Aliens = make([]AlienView, 0, len(g.formation.Aliens))
	for _, a := range g.formation.Aliens {
		s.Aliens = append(s.Aliens, AlienView{
			EntityView: EntityView{ID: a.ID, Category: CategoryAlien, Box: a.Box()},
			Color:      a.Color,
			Points:     a.Points,
			Row:        a.Row,
			Col:        a.Col,
		})
	}

	s.Lasers = make([]EntityView, 0, len(g.lasers))
	for _, l := range g.lasers {
		s.Lasers = append(s.Lasers, EntityView{ID: l.ID, Category: l.Category(), Box: l.Box()})
	}

	s.Blocks = make([]EntityView, 0, len(g.blocks))
	for _, b := range g.blocks {
		s.Blocks = append(s.Blocks, EntityView{ID: b.ID, Category: CategoryBlock, Box: b.Box()})
	}

	return s
}
