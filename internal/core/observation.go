package core

// Sighting is what an autopilot can see of one creature in the tank.
type Sighting struct {
	Pos    Vec
	Radius float64
	Value  int
	Pickup bool // boosts are harmless and always worth collecting
}

// Observation is a read-only view of the tank from the player's perspective.
// It is rebuilt every tick and carries no references into simulation state.
type Observation struct {
	Tick      uint64
	TankW     float64
	TankH     float64
	Pos       Vec
	Heading   Vec
	Radius    float64
	Power     int
	Lives     int
	Creatures []Sighting
}

// Edible reports whether the player could eat s right now.
func (o Observation) Edible(s Sighting) bool {
	return s.Pickup || o.Power >= s.Value
}
