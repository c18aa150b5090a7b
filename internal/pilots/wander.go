package pilots

import (
	"math/rand"

	"github.com/vovakirdan/aquarium/internal/core"
)

// DefaultWanderEvery is how many ticks the wanderer keeps a heading.
const DefaultWanderEvery = 90

var compass = []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}

// Wander picks a random compass heading every few seconds.
type Wander struct {
	every   int
	rng     *rand.Rand
	current core.InputFrame
}

// NewWander creates a wanderer that changes course every n ticks.
func NewWander(n int) *Wander {
	if n < 1 {
		n = 1
	}
	w := &Wander{every: n}
	w.Reset(1)
	return w
}

func (p *Wander) ID() string    { return "wander" }
func (p *Wander) Title() string { return "Wander (random headings)" }

// Reset reseeds the heading generator.
func (p *Wander) Reset(seed int64) {
	p.rng = rand.New(rand.NewSource(seed))
	p.current = core.NewInputFrame()
}

// Steer returns the current heading, rolling a new one on schedule.
func (p *Wander) Steer(obs core.Observation) core.InputFrame {
	if obs.Tick%uint64(p.every) == 0 { //#nosec G115 -- every is positive
		p.current = core.NewInputFrame()
		p.current.Set(compass[p.rng.Intn(len(compass))])
		if p.rng.Intn(2) == 0 {
			p.current.Set(compass[p.rng.Intn(len(compass))])
		}
	}
	return p.current.Clone()
}
