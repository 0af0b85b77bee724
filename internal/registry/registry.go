// Package registry maps variant IDs such as "collector" and
// "collector_smooth" to constructors. The collector package fills it from
// init, and the menu, the CLI and the SSH server all look variants up here.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/star-collector/internal/core"
)

// Game is one playable variant of the star collector.
// Implementations never import Bubble Tea. The host feeds them an InputFrame
// per tick and prints whatever they drew into the Screen.
type Game interface {
	// ID is the key used by "collector play <variant>" and the menu.
	ID() string

	// Title is shown in the menu list.
	Title() string

	// Reset starts a fresh run: score 0, full lives, level 1.
	// cfg carries the playfield size in cells and the RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Resize keeps the run going on a terminal of a new size.
	Resize(cfg core.RuntimeConfig)

	// Suspend pauses the run after the terminal lost focus.
	Suspend()

	// Step runs one tick of movement, pickups and enemy hits.
	Step(in core.InputFrame) core.StepResult

	// Render paints ground, stars, enemies, player and overlays into dst.
	Render(dst *core.Screen)

	// State reports score, lives, level and the pause/game-over flags.
	State() core.GameState
}

// GameInfo is one menu entry.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a variant with its embedded tuning.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register records a variant constructor under id.
// Registering the same id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns the registered variants ordered by ID.
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

// Create builds a fresh variant. Unknown ids are an error.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id names a registered variant.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
