package aquarium

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/aquarium/internal/config"
)

// ErrUnknownKind is returned when a spawn request or config names a kind
// the simulation has no traits for.
var ErrUnknownKind = errors.New("aquarium: unknown creature kind")

// Kind identifies a creature variant.
type Kind int

const (
	KindPlayer Kind = iota
	KindNPC
	KindBiggerFish
	KindPowerUp
	KindSpeedFruit
	KindGyarados
	KindAngler
)

// kindNames are the config and log names of each kind.
var kindNames = map[Kind]string{
	KindPlayer:     "player",
	KindNPC:        "npc",
	KindBiggerFish: "bigger_fish",
	KindPowerUp:    "power_up",
	KindSpeedFruit: "speed_fruit",
	KindGyarados:   "gyarados",
	KindAngler:     "angler",
}

// String returns the config name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// IsPickup reports whether the kind is a boost rather than a fish.
func (k Kind) IsPickup() bool {
	return k == KindPowerUp || k == KindSpeedFruit
}

// ParseKind resolves a config name.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Behavior selects the movement rule of a creature.
type Behavior int

const (
	BehaviorWander     Behavior = iota // straight line, bounce off walls
	BehaviorPursue                     // home in on the player
	BehaviorFlee                       // run from the player when close
	BehaviorStationary                 // never moves
)

func parseBehavior(s string) (Behavior, error) {
	switch s {
	case "wander", "":
		return BehaviorWander, nil
	case "pursue":
		return BehaviorPursue, nil
	case "flee":
		return BehaviorFlee, nil
	case "stationary":
		return BehaviorStationary, nil
	}
	return 0, fmt.Errorf("aquarium: unknown behavior %q", s)
}

// Traits are the fixed per-kind parameters.
type Traits struct {
	Behavior    Behavior
	SpeedFactor float64 // multiplier applied to the spawn speed while moving
	FleeRadius  float64 // distance under which a fleeing creature runs
	Radius      float64
	Value       int
	Tracked     bool // eaten creatures of this kind count against level population
}

// TraitTable maps each spawnable kind to its traits.
type TraitTable map[Kind]Traits

// TraitsFromConfig builds the trait table from the creatures section.
func TraitsFromConfig(creatures map[string]config.CreatureConfig) (TraitTable, error) {
	table := make(TraitTable, len(creatures))
	for name, cc := range creatures {
		kind, err := ParseKind(name)
		if err != nil {
			return nil, err
		}
		if kind == KindPlayer {
			return nil, fmt.Errorf("aquarium: player traits come from the player section, not creatures")
		}
		behavior, err := parseBehavior(cc.Behavior)
		if err != nil {
			return nil, fmt.Errorf("aquarium: creature %s: %w", name, err)
		}
		table[kind] = Traits{
			Behavior:    behavior,
			SpeedFactor: cc.SpeedFactor,
			FleeRadius:  cc.FleeRadius,
			Radius:      cc.Radius,
			Value:       cc.Value,
			Tracked:     cc.Tracked,
		}
	}
	return table, nil
}

// DefaultTraits returns the trait table of the default configuration.
func DefaultTraits() TraitTable {
	table, err := TraitsFromConfig(config.DefaultAquariumConfig().Creatures)
	if err != nil {
		panic(err)
	}
	return table
}
