package tui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-station/internal/config"
	"github.com/vovakirdan/space-station/internal/core"
	"github.com/vovakirdan/space-station/internal/games/invaders"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey('d'), core.ActionRight},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionStop},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionFire},
		{"p", runeKey('p'), core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"help", runeKey('?'), core.ActionNone},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Action(tt.msg); got != tt.expected {
				t.Errorf("Action(%q) = %s, expected %s", tt.msg.String(), got, tt.expected)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp() is empty")
	}
	total := 0
	for _, col := range km.FullHelp() {
		total += len(col)
	}
	if total != 10 {
		t.Errorf("FullHelp() lists %d bindings, expected 10", total)
	}
}

func quietGame() *invaders.Game {
	cfg := config.DefaultInvadersConfig()
	cfg.Aliens.FireIntervalMS = 1_000_000
	cfg.Extra.FirstSpawnMin = 1_000_000
	cfg.Extra.FirstSpawnMax = 1_000_000
	return invaders.NewWithConfig(cfg)
}

func newTestModel(g *invaders.Game) Model {
	m := NewModel(g, Options{Config: core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 1}})
	m.Init()
	return m
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return model
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	return step(t, m, TickMsg(time.Time{}))
}

func TestModelStartsRoundOnFire(t *testing.T) {
	g := quietGame()
	m := newTestModel(g)

	m = step(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = tick(t, m)

	if g.Phase() != invaders.PhaseActive {
		t.Errorf("Phase() = %s, expected active", g.Phase())
	}
}

func TestModelMovementHold(t *testing.T) {
	g := quietGame()
	m := newTestModel(g)
	g.ResetRound()

	m = step(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	startX := g.Snapshot().Player.Box.X
	m = tick(t, m)

	if x := g.Snapshot().Player.Box.X; x >= startX {
		t.Fatalf("ship did not move left: %v -> %v", startX, x)
	}

	for i := 0; i < m.holdTicks+1; i++ {
		m = tick(t, m)
	}
	stopped := g.Snapshot().Player.Box.X
	for i := 0; i < 5; i++ {
		m = tick(t, m)
	}
	if x := g.Snapshot().Player.Box.X; x != stopped {
		t.Errorf("ship kept moving after the hold expired: %v -> %v", stopped, x)
	}
}

func TestModelStopKey(t *testing.T) {
	g := quietGame()
	m := newTestModel(g)
	g.ResetRound()

	m = step(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = tick(t, m)
	m = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = tick(t, m)

	x := g.Snapshot().Player.Box.X
	for i := 0; i < 5; i++ {
		m = tick(t, m)
	}
	if got := g.Snapshot().Player.Box.X; got != x {
		t.Errorf("ship moved after stop: %v -> %v", x, got)
	}
}

func TestModelMouseTap(t *testing.T) {
	g := quietGame()
	m := newTestModel(g)

	m = step(t, m, tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if g.Phase() != invaders.PhaseHome {
		t.Fatal("tap applied before the tick")
	}
	m = tick(t, m)
	if g.Phase() != invaders.PhaseActive {
		t.Errorf("Phase() = %s, expected a tap on home to start a round", g.Phase())
	}

	m = step(t, m, tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = step(t, m, tea.MouseMsg{X: 10, Y: 24, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if len(m.taps) != 0 {
		t.Errorf("taps = %d, expected releases and help-line clicks ignored", len(m.taps))
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(quietGame())
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if !next.(Model).quitting {
		t.Error("model not quitting after q")
	}
	if v := next.(Model).View(); v != "" {
		t.Errorf("View() after quit = %q, expected empty", v)
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(quietGame())
	m = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 100x39", m.screen.Width(), m.screen.Height())
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(quietGame())
	v := m.View()

	if !strings.Contains(v, "SPACE STATION") {
		t.Error("View() missing the home screen")
	}
	if !strings.Contains(v, "quit") {
		t.Error("View() missing the help line")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() has %d lines, expected 2", len(lines))
	}
	if !strings.Contains(out, "ab") || !strings.Contains(out, "cd") {
		t.Errorf("RenderScreen() lost text: %q", out)
	}
}

func TestModelLogsConfigFallback(t *testing.T) {
	invaders.SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	t.Cleanup(func() { invaders.SetConfigPath("") })

	var buf bytes.Buffer
	m := NewModel(invaders.New(), Options{
		Config: core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 1},
		Logger: log.New(&buf),
	})
	m.Init()

	if !strings.Contains(buf.String(), "using default config") {
		t.Errorf("log = %q, expected a warning about the default config", buf.String())
	}
}
