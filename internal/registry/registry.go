// Package registry keeps the set of playable games. Games register a factory
// from init(), so the CLI and the TUI can list and start them by ID without
// importing each game directly.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/shapeswap/internal/core"
)

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("unknown game")

// Game is the contract between a game and the platform.
// A game holds pure logic with no Bubble Tea import; the platform maps keys
// to actions, drives ticks and paints the screen buffer.
type Game interface {
	// ID returns the identifier used on the command line (e.g. "shapes").
	ID() string

	// Title returns the display name (e.g. "Shape Swap").
	Title() string

	// Reset starts a new board. It is called once before the first Step and
	// again on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one fixed tick. Cascade animation is paced in
	// ticks, so Step is called even when no key is pressed.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen buffer.
	Render(dst *core.Screen)

	// State reports whether the game is paused or busy resolving a cascade.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
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

// List returns every registered game sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})
	return result
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownGame, id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
