package aquarium

import "math"

// Snapshot contains the observable game state for replay comparison.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick       uint64
	Score      int
	Lives      int
	Power      int
	Debounce   int
	PlayerX    float64
	PlayerY    float64
	PlayerDX   float64
	PlayerDY   float64
	Speed      int
	Radius     float64
	SizeBoost  int // frames left, 0 when inactive
	SpeedBoost int // frames left, 0 when inactive
	GameOver   bool
	Paused     bool

	LevelIndex int
	Wave       int
	LevelScore int

	// Creatures in live order, each as Kind, Speed, Value followed by X, Y, DX, DY
	CreatureCount int
	CreatureInts  []int
	CreatureFloat []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.scene == nil {
		return Snapshot{}
	}
	p := g.scene.Player()
	aq := g.scene.Aquarium()

	snap := Snapshot{
		Tick:       g.tick,
		Score:      p.Score(),
		Lives:      p.Lives(),
		Power:      p.Power(),
		Debounce:   p.Debounce(),
		PlayerX:    p.Pos().X,
		PlayerY:    p.Pos().Y,
		PlayerDX:   p.Dir().X,
		PlayerDY:   p.Dir().Y,
		Speed:      p.Speed(),
		Radius:     p.Radius(),
		SizeBoost:  p.SizeBoostLeft(),
		SpeedBoost: p.SpeedBoostLeft(),
		GameOver:   g.scene.GameOver(),
		Paused:     g.paused,
		LevelIndex: aq.LevelIndex(),
	}
	if lvl := aq.CurrentLevel(); lvl != nil {
		snap.Wave = lvl.CurrentWave()
		snap.LevelScore = lvl.Score()
	}

	creatures := aq.Creatures()
	snap.CreatureCount = len(creatures)
	snap.CreatureInts = make([]int, 0, len(creatures)*3)
	snap.CreatureFloat = make([]float64, 0, len(creatures)*4)
	for _, c := range creatures {
		snap.CreatureInts = append(snap.CreatureInts, int(c.Kind), c.Speed, c.Value)
		snap.CreatureFloat = append(snap.CreatureFloat, c.Pos.X, c.Pos.Y, c.Dir.X, c.Dir.Y)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Power)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Debounce) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + math.Float64bits(snap.PlayerDX)
	h = h*31 + math.Float64bits(snap.PlayerDY)
	h = h*31 + uint64(snap.Speed) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Radius)
	h = h*31 + uint64(snap.SizeBoost)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SpeedBoost) //#nosec G115 -- hash computation
	if snap.GameOver {
		h = h*31 + 1
	}
	h = h*31 + uint64(snap.LevelIndex)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Wave)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelScore)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CreatureCount) //#nosec G115 -- hash computation

	for _, v := range snap.CreatureInts {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.CreatureFloat {
		h = h*31 + math.Float64bits(v)
	}

	return h
}
