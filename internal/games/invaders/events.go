package invaders

// Event is something the presentation layer may react to. The set is
// closed: only types in this package implement it.
type Event interface {
	event()
}

// Cause says why an entity left the world.
type Cause uint8

const (
	CauseCollision Cause = iota
	CauseOutOfBounds
	CauseReplaced
)

func (c Cause) String() string {
	switch c {
	case CauseCollision:
		return "collision"
	case CauseOutOfBounds:
		return "out-of-bounds"
	case CauseReplaced:
		return "replaced"
	default:
		return "unknown"
	}
}

// PhaseChanged is emitted on every phase transition.
type PhaseChanged struct {
	From, To Phase
}

func (PhaseChanged) event() {}

// RoundStarted is emitted when a round is (re)initialized. The grid, the
// obstacles and the ship are created in bulk and reported only through it.
type RoundStarted struct {
	Aliens    int
	Blocks    int
	Obstacles int
	Lives     int
}

func (RoundStarted) event() {}

// EntityCreated is emitted for lasers and bonus ships.
type EntityCreated struct {
	ID       EntityID
	Category Category
	X, Y     float64
}

func (EntityCreated) event() {}

// EntityDestroyed is emitted when an entity is removed during play.
type EntityDestroyed struct {
	ID       EntityID
	Category Category
	Cause    Cause
}

func (EntityDestroyed) event() {}

// ScoreChanged carries the points gained and the new total.
type ScoreChanged struct {
	Delta int
	Total int
}

func (ScoreChanged) event() {}

// LifeLost is emitted when an alien laser hits the ship.
type LifeLost struct {
	Remaining int
}

func (LifeLost) event() {}

// Explosion marks where an alien or bonus ship was shot down.
type Explosion struct {
	X, Y     float64
	Category Category
}

func (Explosion) event() {}

// RoundWon is emitted when the last alien is destroyed.
type RoundWon struct {
	Score int
}

func (RoundWon) event() {}

// RoundOver is emitted when the round is lost. Invaded is set when an
// alien reached the ship rather than the ship running out of lives.
type RoundOver struct {
	Score   int
	Invaded bool
}

func (RoundOver) event() {}
