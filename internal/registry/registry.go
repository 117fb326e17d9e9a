// Package registry provides a global registry for world factories.
// Worlds register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Game is the interface every playable world implements.
// A Game is owned by exactly one simulation goroutine; other goroutines only
// touch it through Intents and the frames returned by Snapshot.
type Game interface {
	// ID returns a unique identifier for this world (e.g., "earth", "planet").
	// Used for CLI commands.
	ID() string

	// Title returns a human-readable name for display (e.g., "Earth Run").
	Title() string

	// Reset initializes or re-creates the session.
	// The RuntimeConfig provides the tick rate and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Tick advances the simulation by dt real seconds, consuming the
	// intents written since the previous tick.
	Tick(dt float64) core.StepResult

	// Snapshot returns a copy of the current state for rendering.
	// The result never changes after it is returned.
	Snapshot() Frame

	// Intents returns the input flags shared with the input side.
	Intents() *core.Intents
}

// Frame is a read-only picture of a session between two ticks.
type Frame interface {
	// State returns score, health, speed and phase.
	State() core.GameState

	// Render draws the frame into the provided screen buffer.
	Render(dst *core.Screen)
}

// GameInfo contains metadata about a registered world.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a world.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a world factory to the registry.
// Typically called from an init() function.
// Panics if a world with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f()
	titles[id] = g.Title()
}

// List returns information about all registered worlds, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new world by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a world with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
