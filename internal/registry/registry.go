// Package registry maps game IDs to factories. Games register themselves
// from init() so the CLI and TUI can find them by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/space-station/internal/core"
)

// Game is what the terminal host drives. Implementations hold pure
// simulation logic and never touch the terminal themselves.
type Game interface {
	// ID returns a unique identifier used on the command line.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset discards all state and applies the runtime config (screen size, tick rate, seed).
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick after applying the frame's actions.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a cleared screen buffer.
	Render(dst *core.Screen)

	// State returns the summary shown by the host.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new, unconfigured game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a game factory. It panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
