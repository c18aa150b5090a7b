package pilots

import (
	"math"

	"github.com/vovakirdan/aquarium/internal/core"
)

// Greedy chases the nearest thing it can eat and swims away from
// anything stronger that gets too close.
type Greedy struct {
	// Caution is the extra distance, beyond touching, at which a threat is avoided.
	Caution float64
}

// NewGreedy creates a greedy pilot with default caution.
func NewGreedy() *Greedy {
	return &Greedy{Caution: 90}
}

func (p *Greedy) ID() string    { return "greedy" }
func (p *Greedy) Title() string { return "Greedy (chase food, flee threats)" }
func (p *Greedy) Reset(int64)   {}

// Steer picks a heading for the next tick.
func (p *Greedy) Steer(obs core.Observation) core.InputFrame {
	var flee core.Vec
	threatened := false

	food := -1
	foodDist := math.Inf(1)

	for i, s := range obs.Creatures {
		d := core.Dist(obs.Pos, s.Pos)
		if !obs.Edible(s) {
			if d < obs.Radius+s.Radius+p.Caution {
				// Closer threats weigh more
				away := obs.Pos.Sub(s.Pos).Normalize().Scale(1 / math.Max(d, 1))
				flee = flee.Add(away)
				threatened = true
			}
			continue
		}
		if s.Pickup {
			d /= 2
		}
		if d < foodDist {
			food, foodDist = i, d
		}
	}

	switch {
	case threatened && !flee.IsZero():
		return core.Steer(p.awayFromWalls(obs, flee.Normalize()), deadzone)
	case food >= 0:
		return core.Steer(obs.Creatures[food].Pos.Sub(obs.Pos).Normalize(), deadzone)
	case obs.Heading.IsZero():
		// Nothing in sight: head for the middle of the tank
		center := core.Vec{X: obs.TankW / 2, Y: obs.TankH / 2}
		return core.Steer(center.Sub(obs.Pos).Normalize(), deadzone)
	default:
		return core.NewInputFrame()
	}
}

// awayFromWalls drops the component of dir that would pin the fish against a wall.
func (p *Greedy) awayFromWalls(obs core.Observation, dir core.Vec) core.Vec {
	margin := obs.Radius
	if (obs.Pos.X <= margin && dir.X < 0) || (obs.Pos.X >= obs.TankW-margin && dir.X > 0) {
		dir.X = 0
	}
	if (obs.Pos.Y <= margin && dir.Y < 0) || (obs.Pos.Y >= obs.TankH-margin && dir.Y > 0) {
		dir.Y = 0
	}
	if dir.IsZero() {
		// Cornered: slide along the wall towards the center
		center := core.Vec{X: obs.TankW / 2, Y: obs.TankH / 2}
		return center.Sub(obs.Pos).Normalize()
	}
	return dir.Normalize()
}
