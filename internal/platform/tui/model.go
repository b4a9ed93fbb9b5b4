package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-station/internal/audio"
	"github.com/vovakirdan/space-station/internal/core"
	"github.com/vovakirdan/space-station/internal/games/invaders"
	"github.com/vovakirdan/space-station/internal/registry"
)

// holdMS is how long a movement key keeps the ship moving after the last
// key event. Terminals report repeats but never releases.
const holdMS = 400

// Pointer is implemented by games that accept clicks on the playfield.
type Pointer interface {
	ScreenToWorld(cx, cy, screenW, screenH int) (float64, float64)
	OnTapAt(x, y float64)
}

// EventSource is implemented by games that report what happened during
// the last step.
type EventSource interface {
	LastEvents() []invaders.Event
}

// ConfigReporter is implemented by games that fall back to defaults when
// their configuration fails to load.
type ConfigReporter interface {
	ConfigErr() error
}

// Options configures the host around a game.
type Options struct {
	Config core.RuntimeConfig
	Audio  audio.Player
	Logger *log.Logger
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	audio      audio.Player
	logger     *log.Logger
	quitting   bool

	moving    core.Action
	hold      int
	holdTicks int
	taps      [][2]int
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	player := opts.Audio
	if player == nil {
		player = audio.Nop{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       h,
		audio:      player,
		logger:     logger,
		holdTicks:  core.TicksFor(holdMS, cfg.TickRate),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	if r, ok := m.game.(ConfigReporter); ok {
		if err := r.ConfigErr(); err != nil {
			m.logger.Warn("using default config", "err", err)
		}
	}
	m.logger.Info("game ready", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.audio.Close()
		m.logger.Info("quit", "score", m.gameState.Score)
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		m.moving = action
		m.hold = m.holdTicks
		m.inputFrame.Set(action)
	case core.ActionStop:
		m.hold = 0
		m.inputFrame.Set(action)
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleMouse queues left-button presses as taps for the next tick.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y >= m.screen.Height() {
		return m, nil
	}
	m.taps = append(m.taps, [2]int{msg.X, msg.Y})
	return m, nil
}

// handleResize processes window resize events. The playfield scales to
// the new size, so the round keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.applyTaps()
	m.applyHold()

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if src, ok := m.game.(EventSource); ok {
		events := src.LastEvents()
		m.audio.Handle(events)
		m.logEvents(events)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// applyTaps hands queued clicks to the game before it steps.
func (m *Model) applyTaps() {
	if len(m.taps) == 0 {
		return
	}
	if p, ok := m.game.(Pointer); ok {
		for _, t := range m.taps {
			p.OnTapAt(p.ScreenToWorld(t[0], t[1], m.screen.Width(), m.screen.Height()))
		}
	}
	m.taps = m.taps[:0]
}

// applyHold keeps a movement key pressed until its hold runs out, then stops.
func (m *Model) applyHold() {
	if m.hold <= 0 || m.inputFrame.Has(m.moving) {
		if m.hold > 0 {
			m.hold--
		}
		return
	}
	m.hold--
	if m.hold == 0 {
		m.inputFrame.Set(core.ActionStop)
		return
	}
	m.inputFrame.Set(m.moving)
}

func (m Model) logEvents(events []invaders.Event) {
	for _, ev := range events {
		switch e := ev.(type) {
		case invaders.RoundStarted:
			m.logger.Info("round started", "aliens", e.Aliens, "blocks", e.Blocks, "lives", e.Lives)
		case invaders.LifeLost:
			m.logger.Debug("life lost", "remaining", e.Remaining)
		case invaders.RoundWon:
			m.logger.Info("round won", "score", e.Score)
		case invaders.RoundOver:
			m.logger.Info("round over", "score", e.Score, "invaded", e.Invaded)
		case invaders.PhaseChanged:
			m.logger.Debug("phase", "from", e.From, "to", e.To)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".station", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
