// Package pilots contains the autopilots that drive the player fish in
// headless simulations. Each pilot registers itself with the registry.
package pilots

import (
	"github.com/vovakirdan/aquarium/internal/core"
	"github.com/vovakirdan/aquarium/internal/registry"
)

func init() {
	registry.Register("idle", func() registry.Pilot { return &Idle{} })
	registry.Register("wander", func() registry.Pilot { return NewWander(DefaultWanderEvery) })
	registry.Register("greedy", func() registry.Pilot { return NewGreedy() })
}

// deadzone below which a steering component is ignored
const deadzone = 0.38

// Idle never touches the controls. The fish drifts with whatever heading it has.
type Idle struct{}

func (p *Idle) ID() string                             { return "idle" }
func (p *Idle) Title() string                          { return "Idle (no input)" }
func (p *Idle) Reset(int64)                            {}
func (p *Idle) Steer(core.Observation) core.InputFrame { return core.NewInputFrame() }
