package aquarium

import (
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/vovakirdan/aquarium/internal/core"
)

// ECS components of a creature. Every creature entity carries all four.

// Position is the creature center in tank coordinates.
type Position struct {
	X, Y float64
}

// Motion is the heading and speed of a creature.
type Motion struct {
	DX, DY  float64 // unit heading, or zero
	Speed   int
	Flipped bool // facing left
}

// Body holds the collision and economy properties.
type Body struct {
	Radius float64
	Value  int
	MaxX   float64 // movement bounds, inclusive
	MaxY   float64
}

// Species tags the creature with its kind and visual handle.
type Species struct {
	Kind   Kind
	Sprite SpriteHandle
}

// Creature is a read-only copy of one live creature.
type Creature struct {
	ID      ecs.Entity
	Kind    Kind
	Pos     core.Vec
	Dir     core.Vec
	Speed   int
	Radius  float64
	Value   int
	Flipped bool
	Sprite  SpriteHandle
}

// Circle returns the collision circle of the creature.
func (c Creature) Circle() core.Circle {
	return core.Circle{C: c.Pos, R: c.Radius}
}

// randomHeading picks each axis from {-1, 0, 1} and normalizes.
// The result is the zero vector one time in nine.
func randomHeading(rng *rand.Rand) core.Vec {
	v := core.Vec{
		X: float64(rng.Intn(3) - 1),
		Y: float64(rng.Intn(3) - 1),
	}
	return v.Normalize()
}

// moveCreature advances one creature by a single step according to its traits.
// target is the player position; hasTarget is false when there is no player.
func moveCreature(pos *Position, mot *Motion, body *Body, tr Traits, target core.Vec, hasTarget bool) {
	speed := float64(mot.Speed)

	switch tr.Behavior {
	case BehaviorStationary:
		return

	case BehaviorWander:
		step := speed * tr.SpeedFactor
		pos.X += mot.DX * step
		pos.Y += mot.DY * step
		mot.Flipped = mot.DX < 0

	case BehaviorPursue:
		if hasTarget {
			d := target.Sub(core.Vec{X: pos.X, Y: pos.Y})
			if l := d.Len(); l > 0 {
				mot.Flipped = d.X < 0
				step := speed * tr.SpeedFactor
				pos.X += d.X / l * step
				pos.Y += d.Y / l * step
			}
		}

	case BehaviorFlee:
		var d core.Vec
		var l float64
		if hasTarget {
			d = target.Sub(core.Vec{X: pos.X, Y: pos.Y})
			l = d.Len()
		}
		if l > 0 && l < tr.FleeRadius {
			mot.DX = -d.X / l
			mot.DY = -d.Y / l
			step := speed * tr.SpeedFactor
			pos.X += mot.DX * step
			pos.Y += mot.DY * step
		} else {
			pos.X += mot.DX * speed
			pos.Y += mot.DY * speed
		}
		mot.Flipped = mot.DX < 0
	}

	bounceAxis(&pos.X, &mot.DX, body.MaxX)
	bounceAxis(&pos.Y, &mot.DY, body.MaxY)
}

// bounceAxis keeps p within [0, max] and points the heading back inside.
func bounceAxis(p, d *float64, max float64) {
	if max < 0 {
		max = 0
	}
	if *p < 0 {
		*p = 0
		*d = math.Abs(*d)
	} else if *p > max {
		*p = max
		*d = -math.Abs(*d)
	}
}
