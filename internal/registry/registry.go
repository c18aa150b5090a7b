// Package registry provides a global registry for autopilot factories.
// Pilots register themselves in init() functions, allowing the CLI
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/aquarium/internal/core"
)

// Pilot steers the player fish when nobody is at the keyboard.
// Pilots only see an Observation and answer with input actions, so they
// drive the simulation through the same path a human would.
type Pilot interface {
	// ID returns a unique identifier for this pilot (e.g., "greedy").
	// Used for CLI flags and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset prepares the pilot for a new run.
	// Pilots that use randomness must derive it from seed only.
	Reset(seed int64)

	// Steer decides the input for the next tick.
	Steer(obs core.Observation) core.InputFrame
}

// PilotInfo contains metadata about a registered pilot.
type PilotInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a pilot.
type Factory func() Pilot

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a pilot factory to the registry.
// Typically called from a pilot's init() function.
// Panics if a pilot with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: pilot %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered pilots, sorted by ID.
func List() []PilotInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PilotInfo, 0, len(factories))
	for id := range factories {
		result = append(result, PilotInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new pilot by its ID.
// Returns an error if the pilot ID is not registered.
func Create(id string) (Pilot, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown pilot %q", id)
	}

	return f(), nil
}

// Exists checks if a pilot with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
