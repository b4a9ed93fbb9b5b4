package invaders

import (
	"github.com/vovakirdan/space-station/internal/assert"
	"github.com/vovakirdan/space-station/internal/core"
)

// body is a collision-time view of one live entity: its category, its
// index in the owning collection and its box for this tick.
type body struct {
	cat Category
	idx int
	box core.Box
}

// collisionRule resolves an overlap between a body of category first and
// one of category second.
type collisionRule struct {
	first, second Category
	resolve       func(g *Game, a, b body)
}

// collisionRules lists every category pair that interacts, in the order
// pairs are resolved within a tick. Pairs not listed pass through each other.
var collisionRules = []collisionRule{
	{CategoryPlayerLaser, CategoryAlien, (*Game).laserHitsAlien},
	{CategoryPlayerLaser, CategoryBlock, (*Game).laserHitsBlock},
	{CategoryPlayerLaser, CategoryExtra, (*Game).laserHitsExtra},
	{CategoryAlienLaser, CategoryPlayer, (*Game).laserHitsPlayer},
	{CategoryAlienLaser, CategoryBlock, (*Game).laserHitsBlock},
	{CategoryAlien, CategoryBlock, (*Game).alienHitsBlock},
	{CategoryAlien, CategoryPlayer, (*Game).alienHitsPlayer},
}

// ruleMasks is the union of both masks per rule, used to check whether
// two categories interact at all.
var ruleMasks = func() map[uint32]bool {
	m := make(map[uint32]bool, len(collisionRules))
	for _, r := range collisionRules {
		m[r.first.Mask()|r.second.Mask()] = true
	}
	return m
}()

// Interacts reports whether entities of the two categories collide.
func Interacts(a, b Category) bool {
	if a == b {
		return false
	}
	return ruleMasks[a.Mask()|b.Mask()]
}

// resolveCollisions checks every interacting pair of live entities against
// the positions reached this tick. An entity removed by one pair is ignored
// by every later pair, and resolution stops once the round is no longer active.
func (g *Game) resolveCollisions() {
	var bodies [numCategories][]body
	for c := range numCategories {
		bodies[c] = g.bodiesOf(c)
	}

	for _, rule := range collisionRules {
		for _, a := range bodies[rule.first] {
			for _, b := range bodies[rule.second] {
				if g.phase != PhaseActive {
					return
				}
				if !g.alive(a) {
					break
				}
				if !g.alive(b) || !a.box.Intersects(b.box) {
					continue
				}
				rule.resolve(g, a, b)
			}
		}
	}
}

func (g *Game) bodiesOf(cat Category) []body {
	var out []body
	switch cat {
	case CategoryPlayer:
		if g.player != nil {
			out = append(out, body{cat: cat, box: g.player.Box()})
		}
	case CategoryAlien:
		out = make([]body, 0, len(g.formation.Aliens))
		for i, a := range g.formation.Aliens {
			out = append(out, body{cat: cat, idx: i, box: a.Box()})
		}
	case CategoryPlayerLaser, CategoryAlienLaser:
		for i, l := range g.lasers {
			if l.Category() == cat {
				out = append(out, body{cat: cat, idx: i, box: l.Box()})
			}
		}
	case CategoryBlock:
		out = make([]body, 0, len(g.blocks))
		for i, b := range g.blocks {
			out = append(out, body{cat: cat, idx: i, box: b.Box()})
		}
	case CategoryExtra:
		if g.extra != nil {
			out = append(out, body{cat: cat, box: g.extra.Box()})
		}
	}
	return out
}

func (g *Game) alive(b body) bool {
	switch b.cat {
	case CategoryPlayer:
		return g.player != nil
	case CategoryAlien:
		return !g.formation.Aliens[b.idx].dead
	case CategoryPlayerLaser, CategoryAlienLaser:
		return !g.lasers[b.idx].dead
	case CategoryBlock:
		return !g.blocks[b.idx].dead
	case CategoryExtra:
		return g.extra != nil && !g.extra.dead
	}
	return false
}

// destroy marks the entity behind b as dead and reports it. Collections
// are compacted once resolution is over.
func (g *Game) destroy(b body, cause Cause) {
	var id EntityID
	var dead *bool
	switch b.cat {
	case CategoryAlien:
		a := g.formation.Aliens[b.idx]
		id, dead = a.ID, &a.dead
	case CategoryPlayerLaser, CategoryAlienLaser:
		l := g.lasers[b.idx]
		id, dead = l.ID, &l.dead
	case CategoryBlock:
		bl := g.blocks[b.idx]
		id, dead = bl.ID, &bl.dead
	case CategoryExtra:
		id, dead = g.extra.ID, &g.extra.dead
	default:
		assert.That(false, "%s cannot be destroyed", b.cat)
		return
	}

	if *dead {
		assert.That(false, "%s %d destroyed twice", b.cat, id)
		return
	}
	*dead = true
	g.emit(EntityDestroyed{ID: id, Category: b.cat, Cause: cause})
}

func (g *Game) laserHitsAlien(laser, alien body) {
	a := g.formation.Aliens[alien.idx]
	g.destroy(laser, CauseCollision)
	g.destroy(alien, CauseCollision)
	g.addScore(a.Points)
	g.emit(Explosion{X: a.X, Y: a.Y, Category: CategoryAlien})
	if g.liveAliens() == 0 {
		g.endRound(PhaseWon, false)
	}
}

// liveAliens counts aliens not yet destroyed this tick.
func (g *Game) liveAliens() int {
	n := 0
	for _, a := range g.formation.Aliens {
		if !a.dead {
			n++
		}
	}
	return n
}

func (g *Game) laserHitsBlock(laser, block body) {
	g.destroy(laser, CauseCollision)
	g.destroy(block, CauseCollision)
}

func (g *Game) laserHitsExtra(laser, extra body) {
	e := g.extra
	g.destroy(laser, CauseCollision)
	g.destroy(extra, CauseCollision)
	g.addScore(e.Points)
	g.emit(Explosion{X: e.X, Y: e.Y, Category: CategoryExtra})
}

func (g *Game) laserHitsPlayer(laser, _ body) {
	g.destroy(laser, CauseCollision)
	g.loseLife()
}

func (g *Game) alienHitsBlock(_, block body) {
	g.destroy(block, CauseCollision)
}

func (g *Game) alienHitsPlayer(_, _ body) {
	g.endRound(PhaseGameOver, true)
}
