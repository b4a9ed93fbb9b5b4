// Package invaders implements a deterministic, tick-stepped Space Invaders
// round: a ship, a descending alien formation, destructible obstacles and
// a bonus ship. The simulation never renders or plays sound itself; each
// tick returns the events a presentation layer needs.
package invaders

import (
	"math/rand"

	"github.com/vovakirdan/space-station/internal/assert"
	"github.com/vovakirdan/space-station/internal/config"
	"github.com/vovakirdan/space-station/internal/core"
	"github.com/vovakirdan/space-station/internal/registry"
)

// Phase is the round's state. Exactly one holds at a time.
type Phase uint8

const (
	PhaseHome Phase = iota
	PhaseActive
	PhaseGameOver
	PhaseWon
)

func (p Phase) String() string {
	switch p {
	case PhaseHome:
		return "home"
	case PhaseActive:
		return "active"
	case PhaseGameOver:
		return "game-over"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// tapFireZone is the fraction of the world height above which a tap moves
// the ship; taps below it fire.
const tapFireZone = 0.8

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the config file used by games created with New.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the preset applied by games created with New.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// Game owns every entity of a round and advances them one tick at a time.
// It is not safe for concurrent use; the host serializes all calls.
type Game struct {
	cfg        config.InvadersConfig
	configured bool
	runtime    core.RuntimeConfig
	rng        *rand.Rand
	difficulty *config.DifficultyManager
	scheduler  *Scheduler

	phase     Phase
	paused    bool
	score     int
	lives     int
	tickCount int

	nextID    EntityID
	player    *Player
	formation *Formation
	lasers    []*Laser
	blocks    []*Block
	extra     *Extra

	fireQueued bool
	pending    []Event
	last       []Event

	configErr error
}

// New creates a game whose configuration is loaded on Reset from the path
// and preset set with SetConfigPath and SetDifficultyPreset.
func New() *Game {
	return &Game{
		cfg:       config.DefaultInvadersConfig(),
		formation: &Formation{Direction: 1},
	}
}

// NewWithConfig creates a game with a fixed configuration, reset with the
// default runtime config and sitting on the home screen.
func NewWithConfig(cfg config.InvadersConfig) *Game {
	g := &Game{cfg: cfg, configured: true}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Station"
}

// Reset discards everything, reseeds the RNG and returns to the home screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	g.runtime = runtime

	if !g.configured {
		cfg, err := config.LoadInvaders(configPath)
		g.configErr = err
		if err != nil {
			cfg = config.DefaultInvadersConfig()
		}
		config.ApplyInvadersPreset(&cfg, difficultyPreset)
		g.cfg = cfg
	}

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.scheduler = NewScheduler(g.rng, g.cfg.Extra)

	g.clearEntities()
	g.phase = PhaseHome
	g.paused = false
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.tickCount = 0
	g.pending = nil
	g.last = nil
}

// ConfigErr returns the error that made the last Reset fall back to the
// default configuration, or nil.
func (g *Game) ConfigErr() error {
	return g.configErr
}

// Config returns the configuration in use.
func (g *Game) Config() config.InvadersConfig {
	return g.cfg
}

// StartRound begins a fresh round unless one is already running.
func (g *Game) StartRound() {
	if g.phase == PhaseActive {
		return
	}
	g.ResetRound()
}

// ResetRound discards the current round and starts a fresh one: full
// lives, zero score, a new grid, new obstacles and a recentered ship.
func (g *Game) ResetRound() {
	if g.scheduler == nil {
		g.Reset(core.DefaultConfig())
	}
	g.clearEntities()
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.tickCount = 0
	g.paused = false

	w, h := g.WorldSize()
	pc := g.cfg.Player
	g.player = &Player{
		ID:       g.newID(),
		X:        w / 2,
		Y:        h - pc.BottomOffset,
		W:        pc.Width,
		H:        pc.Height,
		speed:    pc.Speed,
		maxX:     w,
		baseY:    h - pc.BottomOffset,
		cooldown: core.TicksFor(pc.CooldownMS, g.runtime.TickRate),
		bob:      bob{amplitude: pc.BobAmplitude, step: pc.BobStep},
	}
	g.formation = NewFormation(g.cfg.Aliens, w, g.newID)
	g.blocks = buildObstacles(g.cfg.Obstacles, w, g.newID)

	ec := g.cfg.Extra
	g.scheduler.Start(ec.FirstSpawnMin, ec.FirstSpawnMax, g.fireInterval())

	g.setPhase(PhaseActive)
	g.emit(RoundStarted{
		Aliens:    g.formation.Len(),
		Blocks:    len(g.blocks),
		Obstacles: g.cfg.Obstacles.Count,
		Lives:     g.lives,
	})
}

// ReturnHome abandons the round and shows the home screen.
func (g *Game) ReturnHome() {
	g.clearEntities()
	g.paused = false
	g.setPhase(PhaseHome)
}

// SetPlayerIntent sets the ship's movement. It is ignored outside play.
func (g *Game) SetPlayerIntent(i Intent) {
	if g.phase != PhaseActive || g.player == nil {
		return
	}
	g.player.intent = i
}

// RequestFire asks for a player shot on the next tick. It is ignored
// outside play, and the shot is silently dropped while the laser recharges.
func (g *Game) RequestFire() {
	if g.phase != PhaseActive {
		return
	}
	g.fireQueued = true
}

// OnTapAt handles a tap in world coordinates. Outside play any tap starts a
// new round. During play the upper part of the screen steers (left half
// left, right half right) and the bottom strip fires.
func (g *Game) OnTapAt(x, y float64) {
	if g.phase != PhaseActive {
		g.ResetRound()
		return
	}

	w, h := g.WorldSize()
	switch {
	case y >= h*tapFireZone:
		g.RequestFire()
	case x < w/2:
		g.SetPlayerIntent(IntentLeft)
	default:
		g.SetPlayerIntent(IntentRight)
	}
}

// Pause freezes an active round; no time advances until Resume.
func (g *Game) Pause() {
	if g.phase == PhaseActive {
		g.paused = true
	}
}

// Resume continues a paused round.
func (g *Game) Resume() {
	g.paused = false
}

// Paused reports whether the round is frozen.
func (g *Game) Paused() bool {
	return g.paused
}

// Tick advances the round by one logical frame and returns the events it
// produced, preceded by any raised since the previous tick. Outside play
// or while paused nothing moves.
func (g *Game) Tick() []Event {
	if g.phase != PhaseActive || g.paused {
		return g.flush()
	}

	aliensBefore := g.formation.Len()
	g.tickCount++

	g.updatePlayer()
	g.updateFormation()
	g.updateLasers()
	g.updateSpawns()
	g.updateExtra()
	g.resolveCollisions()
	g.compact()
	g.checkEndConditions()

	g.verify(aliensBefore)
	return g.flush()
}

func (g *Game) updatePlayer() {
	p := g.player
	p.Update()

	if !g.fireQueued {
		return
	}
	g.fireQueued = false
	if !p.Ready() {
		return
	}
	p.recharge = p.cooldown
	g.spawnLaser(p.X, p.Y-p.H/2, DirUp, g.cfg.Player.LaserSpeed)
}

func (g *Game) updateFormation() {
	step := g.difficulty.FormationStep(g.cfg.Aliens.Step, g.score, g.tickCount)
	g.formation.Advance(step)
	g.formation.CheckBounds()
}

// updateLasers moves every laser and drops those past the vertical margin.
func (g *Game) updateLasers() {
	_, h := g.WorldSize()
	margin := g.cfg.Lasers.Margin

	live := g.lasers[:0]
	for _, l := range g.lasers {
		if l.Update(-margin, h+margin) {
			live = append(live, l)
			continue
		}
		l.dead = true
		g.emit(EntityDestroyed{ID: l.ID, Category: l.Category(), Cause: CauseOutOfBounds})
	}
	clear(g.lasers[len(live):])
	g.lasers = live
}

func (g *Game) updateSpawns() {
	if g.scheduler.TickBonus() {
		g.spawnExtra()
	}
	if g.scheduler.TickFire() {
		g.alienFire()
		g.scheduler.SetFireInterval(g.fireInterval())
	}
}

func (g *Game) updateExtra() {
	e := g.extra
	if e == nil {
		return
	}
	e.Update()
	w, _ := g.WorldSize()
	if e.Gone(w, g.cfg.Extra.Margin) {
		g.emit(EntityDestroyed{ID: e.ID, Category: CategoryExtra, Cause: CauseOutOfBounds})
		g.extra = nil
	}
}

func (g *Game) spawnLaser(x, y float64, dir Direction, speed float64) {
	l := &Laser{
		ID:    g.newID(),
		X:     x,
		Y:     y,
		W:     g.cfg.Lasers.Width,
		H:     g.cfg.Lasers.Height,
		Speed: speed,
		Dir:   dir,
	}
	g.lasers = append(g.lasers, l)
	g.emit(EntityCreated{ID: l.ID, Category: l.Category(), X: l.X, Y: l.Y})
}

// spawnExtra sends a bonus ship in from a random side. One already on
// screen is replaced.
func (g *Game) spawnExtra() {
	if g.extra != nil {
		g.emit(EntityDestroyed{ID: g.extra.ID, Category: CategoryExtra, Cause: CauseReplaced})
		g.extra = nil
	}

	ec := g.cfg.Extra
	w, _ := g.WorldSize()
	e := &Extra{
		ID:     g.newID(),
		Y:      ec.Y,
		W:      ec.Width,
		H:      ec.Height,
		Points: ec.Points,
	}
	if g.scheduler.PickSide() == SideRight {
		e.X, e.Speed = w+ec.Margin, -ec.Speed
	} else {
		e.X, e.Speed = -ec.Margin, ec.Speed
	}
	g.extra = e
	g.emit(EntityCreated{ID: e.ID, Category: CategoryExtra, X: e.X, Y: e.Y})
}

// alienFire shoots from the center of a random live alien.
func (g *Game) alienFire() {
	n := g.formation.Len()
	if n == 0 {
		return
	}
	a := g.formation.Aliens[g.scheduler.PickIndex(n)]
	g.spawnLaser(a.X, a.Y, DirDown, g.cfg.Aliens.LaserSpeed)
}

func (g *Game) fireInterval() int {
	base := core.TicksFor(g.cfg.Aliens.FireIntervalMS, g.runtime.TickRate)
	return g.difficulty.FireInterval(base, g.score, g.tickCount)
}

// compact removes every entity destroyed during collision resolution.
func (g *Game) compact() {
	g.formation.Compact()

	lasers := g.lasers[:0]
	for _, l := range g.lasers {
		if !l.dead {
			lasers = append(lasers, l)
		}
	}
	clear(g.lasers[len(lasers):])
	g.lasers = lasers

	blocks := g.blocks[:0]
	for _, b := range g.blocks {
		if !b.dead {
			blocks = append(blocks, b)
		}
	}
	clear(g.blocks[len(blocks):])
	g.blocks = blocks

	if g.extra != nil && g.extra.dead {
		g.extra = nil
	}
}

func (g *Game) checkEndConditions() {
	if g.phase != PhaseActive {
		return
	}
	switch {
	case g.formation.Len() == 0:
		g.endRound(PhaseWon, false)
	case g.lives <= 0:
		g.endRound(PhaseGameOver, false)
	}
}

func (g *Game) addScore(points int) {
	if points <= 0 {
		return
	}
	g.score += points
	g.emit(ScoreChanged{Delta: points, Total: g.score})
}

// loseLife takes one life; the last one ends the round.
func (g *Game) loseLife() {
	g.lives = max(g.lives-1, 0)
	g.emit(LifeLost{Remaining: g.lives})
	if g.lives == 0 {
		g.endRound(PhaseGameOver, false)
	}
}

// endRound leaves play for a terminal phase and stops alien fire. The
// entities stay in place so the final frame can still be drawn.
func (g *Game) endRound(to Phase, invaded bool) {
	g.scheduler.Stop()
	g.fireQueued = false
	g.setPhase(to)
	if to == PhaseWon {
		g.emit(RoundWon{Score: g.score})
	} else {
		g.emit(RoundOver{Score: g.score, Invaded: invaded})
	}
}

func (g *Game) setPhase(to Phase) {
	if g.phase == to {
		return
	}
	from := g.phase
	g.phase = to
	if to != PhaseActive {
		g.scheduler.Stop()
	}
	g.emit(PhaseChanged{From: from, To: to})
}

func (g *Game) clearEntities() {
	g.player = nil
	g.formation = &Formation{Direction: 1}
	g.lasers = nil
	g.blocks = nil
	g.extra = nil
	g.fireQueued = false
}

func (g *Game) newID() EntityID {
	g.nextID++
	return g.nextID
}

func (g *Game) emit(e Event) {
	g.pending = append(g.pending, e)
}

func (g *Game) flush() []Event {
	out := g.pending
	g.pending = nil
	g.last = out
	return out
}

// verify checks the per-tick invariants in debug builds.
func (g *Game) verify(aliensBefore int) {
	if !assert.Enabled {
		return
	}
	assert.That(g.phase <= PhaseWon, "unknown phase %d", g.phase)
	assert.That(g.lives >= 0, "negative lives %d", g.lives)
	assert.That(g.formation.Len() <= aliensBefore, "formation grew from %d to %d", aliensBefore, g.formation.Len())
	for _, a := range g.formation.Aliens {
		assert.That(!a.dead, "dead alien %d left in formation", a.ID)
	}
	for _, l := range g.lasers {
		assert.That(!l.dead, "dead laser %d left in play", l.ID)
	}
	for _, b := range g.blocks {
		assert.That(!b.dead, "dead block %d left in play", b.ID)
	}
	if g.phase == PhaseActive {
		assert.That(g.formation.Len() > 0, "active round without aliens")
	}
}

// Step applies one frame of semantic input and advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch {
	case in.Has(core.ActionBack):
		g.ReturnHome()
	case in.Has(core.ActionRestart):
		g.ResetRound()
	}

	if in.Has(core.ActionPause) {
		if g.paused {
			g.Resume()
		} else {
			g.Pause()
		}
	}

	switch {
	case in.Has(core.ActionLeft):
		g.SetPlayerIntent(IntentLeft)
	case in.Has(core.ActionRight):
		g.SetPlayerIntent(IntentRight)
	case in.Has(core.ActionStop):
		g.SetPlayerIntent(IntentStop)
	}

	if in.Has(core.ActionFire) {
		if g.phase == PhaseActive {
			g.RequestFire()
		} else {
			g.StartRound()
		}
	}

	g.Tick()
	return core.StepResult{State: g.State()}
}

// LastEvents returns the events returned by the most recent Tick or Step.
func (g *Game) LastEvents() []Event {
	return g.last
}

// State returns the summary shown by the host.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		GameOver: g.phase == PhaseGameOver || g.phase == PhaseWon,
		Paused:   g.paused,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.lives
}

// AlienCount returns the number of live aliens.
func (g *Game) AlienCount() int {
	return g.formation.Len()
}

// FormationDirection returns +1 while the grid moves right, -1 while left.
func (g *Game) FormationDirection() float64 {
	return g.formation.Direction
}

// TickCount returns the ticks advanced in the current round.
func (g *Game) TickCount() int {
	return g.tickCount
}

// WorldSize returns the logical playfield size.
func (g *Game) WorldSize() (float64, float64) {
	return g.cfg.World.Width, g.cfg.World.Height
}

func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
}
