package invaders

import (
	"math"

	"github.com/vovakirdan/space-station/internal/core"
)

// EntityID identifies an entity for the lifetime of a Game.
type EntityID uint64

// Category is the collision role of an entity.
type Category uint8

const (
	CategoryPlayer Category = iota
	CategoryAlien
	CategoryPlayerLaser
	CategoryAlienLaser
	CategoryBlock
	CategoryExtra

	numCategories
)

// Mask returns the category's bit: player=1, alien=2, player laser=4,
// alien laser=8, block=16, extra=32.
func (c Category) Mask() uint32 {
	return 1 << c
}

func (c Category) String() string {
	switch c {
	case CategoryPlayer:
		return "player"
	case CategoryAlien:
		return "alien"
	case CategoryPlayerLaser:
		return "player-laser"
	case CategoryAlienLaser:
		return "alien-laser"
	case CategoryBlock:
		return "block"
	case CategoryExtra:
		return "extra"
	default:
		return "unknown"
	}
}

// AlienColor selects an alien's sprite and point value.
type AlienColor uint8

const (
	AlienRed AlienColor = iota
	AlienGreen
	AlienYellow
)

func (c AlienColor) String() string {
	switch c {
	case AlienYellow:
		return "yellow"
	case AlienGreen:
		return "green"
	default:
		return "red"
	}
}

// colorForRow: row 0 is yellow, rows 1-2 green, the rest red.
func colorForRow(row int) AlienColor {
	switch {
	case row == 0:
		return AlienYellow
	case row <= 2:
		return AlienGreen
	default:
		return AlienRed
	}
}

// Intent is the player's requested horizontal movement.
type Intent int8

const (
	IntentStop Intent = iota
	IntentLeft
	IntentRight
)

func (i Intent) String() string {
	switch i {
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	default:
		return "stop"
	}
}

// Direction is a laser's vertical travel. The y axis points down.
type Direction int8

const (
	DirUp   Direction = -1
	DirDown Direction = 1
)

// Player is the ship. X and Y are its center.
type Player struct {
	ID   EntityID
	X, Y float64
	W, H float64

	intent   Intent
	speed    float64
	maxX     float64
	baseY    float64
	cooldown int // ticks between shots
	recharge int // ticks until the next shot is allowed
	bob      bob
}

// Box returns the player's collision box.
func (p *Player) Box() core.Box {
	return core.BoxAt(p.X, p.Y, p.W, p.H)
}

// Ready reports whether the laser has recharged.
func (p *Player) Ready() bool {
	return p.recharge == 0
}

// Update moves the ship by its intent, keeps it on screen, recharges the
// laser and applies the bob around its spawn line.
func (p *Player) Update() {
	switch p.intent {
	case IntentLeft:
		p.X -= p.speed
	case IntentRight:
		p.X += p.speed
	}
	p.X = core.ClampF(p.X, p.W/2, p.maxX-p.W/2)

	if p.recharge > 0 {
		p.recharge--
	}

	p.Y = p.baseY + p.bob.next()
}

// Alien is one member of the formation. X and Y are its center.
type Alien struct {
	ID       EntityID
	X, Y     float64
	W, H     float64
	Color    AlienColor
	Points   int
	Row, Col int

	dead bool
}

// Box returns the alien's collision box.
func (a *Alien) Box() core.Box {
	return core.BoxAt(a.X, a.Y, a.W, a.H)
}

// Laser is a shot from the player or an alien. X and Y are its center.
type Laser struct {
	ID    EntityID
	X, Y  float64
	W, H  float64
	Speed float64
	Dir   Direction

	dead bool
}

// Category derives the collision role from the direction of travel.
func (l *Laser) Category() Category {
	if l.Dir == DirUp {
		return CategoryPlayerLaser
	}
	return CategoryAlienLaser
}

// Box returns the laser's collision box.
func (l *Laser) Box() core.Box {
	return core.BoxAt(l.X, l.Y, l.W, l.H)
}

// Update moves the laser and reports whether it is still within [minY, maxY].
func (l *Laser) Update(minY, maxY float64) bool {
	l.Y += float64(l.Dir) * l.Speed
	return l.Y >= minY && l.Y <= maxY
}

// Block is one cell of an obstacle. X and Y are its top-left corner.
type Block struct {
	ID       EntityID
	X, Y     float64
	Size     float64
	Obstacle int

	dead bool
}

// Box returns the block's collision box.
func (b *Block) Box() core.Box {
	return core.Box{X: b.X, Y: b.Y, W: b.Size, H: b.Size}
}

// Extra is the bonus ship crossing the top of the screen. X and Y are its center.
type Extra struct {
	ID     EntityID
	X, Y   float64
	W, H   float64
	Speed  float64 // signed: negative travels left
	Points int

	dead bool
}

// Box returns the extra's collision box.
func (e *Extra) Box() core.Box {
	return core.BoxAt(e.X, e.Y, e.W, e.H)
}

// Update moves the extra horizontally.
func (e *Extra) Update() {
	e.X += e.Speed
}

// Gone reports whether the extra has crossed past the far edge plus margin.
func (e *Extra) Gone(worldW, margin float64) bool {
	if e.Speed < 0 {
		return e.X < -margin
	}
	return e.X > worldW+margin
}

// bob is the cosmetic vertical wobble shared by the ship and the aliens.
type bob struct {
	phase     float64
	amplitude float64
	step      float64
}

// next advances the phase and returns the offset for this tick.
func (b *bob) next() float64 {
	b.phase += b.step
	return math.Sin(b.phase) * b.amplitude
}
