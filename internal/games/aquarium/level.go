package aquarium

import (
	"fmt"

	"github.com/vovakirdan/aquarium/internal/config"
)

// PopulationNode is the carrying capacity of one kind within a level.
type PopulationNode struct {
	Kind    Kind
	Target  int
	Current int
}

// LevelSpec is the static description of a level.
type LevelSpec struct {
	Number       int
	Description  string
	TargetScore  int
	WaveInterval float64  // seconds between waves
	Waves        [][]Kind // composition of each wave, in spawn order
	Population   []PopulationNode
}

// LevelsFromConfig expands the level table of the configuration.
func LevelsFromConfig(levels []config.LevelConfig) ([]LevelSpec, error) {
	specs := make([]LevelSpec, 0, len(levels))
	for i, lc := range levels {
		spec := LevelSpec{
			Number:       i,
			Description:  lc.Description,
			TargetScore:  lc.TargetScore,
			WaveInterval: lc.WaveInterval,
			Waves:        make([][]Kind, 0, len(lc.Waves)),
		}
		for w, groups := range lc.Waves {
			var wave []Kind
			for _, g := range groups {
				kind, err := ParseKind(g.Kind)
				if err != nil {
					return nil, fmt.Errorf("aquarium: level %d wave %d: %w", i, w, err)
				}
				for range g.Count {
					wave = append(wave, kind)
				}
			}
			spec.Waves = append(spec.Waves, wave)
		}
		for _, pc := range lc.Population {
			kind, err := ParseKind(pc.Kind)
			if err != nil {
				return nil, fmt.Errorf("aquarium: level %d population: %w", i, err)
			}
			spec.Population = append(spec.Population, PopulationNode{Kind: kind, Target: pc.Target})
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// Level tracks wave progress, population and score of one level.
//
// A level starts with waves dispatched on a timer. Once every wave has been
// dispatched it only replenishes its population until the score target is met.
type Level struct {
	spec       LevelSpec
	score      int
	wave       int
	timer      float64
	completed  bool
	population []PopulationNode
}

// NewLevel creates an initialized level.
func NewLevel(spec LevelSpec) *Level {
	l := &Level{spec: spec}
	l.Initialize()
	return l
}

// Initialize puts the level back to its starting state.
func (l *Level) Initialize() {
	l.score = 0
	l.wave = 0
	l.timer = 0
	l.completed = false
	l.population = make([]PopulationNode, len(l.spec.Population))
	for i, n := range l.spec.Population {
		l.population[i] = PopulationNode{Kind: n.Kind, Target: n.Target}
	}
}

// Reset zeroes the score and population counts but keeps wave progress.
// It is applied to a level when the aquarium moves past it.
func (l *Level) Reset() {
	l.score = 0
	for i := range l.population {
		l.population[i].Current = 0
	}
}

func (l *Level) Number() int           { return l.spec.Number }
func (l *Level) Description() string   { return l.spec.Description }
func (l *Level) TargetScore() int      { return l.spec.TargetScore }
func (l *Level) Score() int            { return l.score }
func (l *Level) CurrentWave() int      { return l.wave }
func (l *Level) MaxWaves() int         { return len(l.spec.Waves) }
func (l *Level) WaveInterval() float64 { return l.spec.WaveInterval }
func (l *Level) WaveTimer() float64    { return l.timer }

// Population returns a copy of the population nodes.
func (l *Level) Population() []PopulationNode {
	out := make([]PopulationNode, len(l.population))
	copy(out, l.population)
	return out
}

// IsCompleted reports whether the level is finished.
func (l *Level) IsCompleted() bool {
	return l.completed || l.score >= l.spec.TargetScore
}

// Update advances the wave clock by dt seconds. It returns true when the
// interval elapsed and a new wave became due; the caller spawns SpawnWave().
func (l *Level) Update(dt float64) bool {
	if l.completed {
		return false
	}
	due := false
	l.timer += dt
	if l.wave < l.MaxWaves() && l.timer >= l.spec.WaveInterval {
		l.timer = 0
		l.wave++
		due = true
	}
	if l.score >= l.spec.TargetScore {
		l.completed = true
	}
	return due
}

// SpawnWave returns the composition of the most recently dispatched wave.
func (l *Level) SpawnWave() []Kind {
	return l.WaveCreatures(l.wave - 1)
}

// WaveCreatures returns the composition of wave i, or nil if there is no such wave.
func (l *Level) WaveCreatures(i int) []Kind {
	if i < 0 || i >= len(l.spec.Waves) {
		return nil
	}
	out := make([]Kind, len(l.spec.Waves[i]))
	copy(out, l.spec.Waves[i])
	return out
}

// Credit records that a creature of kind entered the tank outside of Repopulate.
// Counts never exceed the node target.
func (l *Level) Credit(kind Kind) {
	if n := l.node(kind); n != nil && n.Current < n.Target {
		n.Current++
	}
}

// ConsumePopulation records that a creature of kind was eaten.
// Kinds without a node or with an empty node are ignored.
func (l *Level) ConsumePopulation(kind Kind, value int) {
	n := l.node(kind)
	if n == nil || n.Current <= 0 {
		return
	}
	n.Current--
	if l.completed {
		return
	}
	l.score += value
	if l.score >= l.spec.TargetScore {
		l.completed = true
	}
}

// Repopulate returns the spawn requests needed to bring every node back to
// its target, and marks those creatures as present. It returns nothing until
// all waves have been dispatched.
func (l *Level) Repopulate() []Kind {
	if l.wave < l.MaxWaves() {
		return nil
	}
	var out []Kind
	for i := range l.population {
		n := &l.population[i]
		for range n.Target - n.Current {
			out = append(out, n.Kind)
		}
		if n.Current < n.Target {
			n.Current = n.Target
		}
	}
	return out
}

// ForceAdvanceWave dispatches the next wave immediately.
// It returns false when all waves are already out.
func (l *Level) ForceAdvanceWave() bool {
	if l.wave >= l.MaxWaves() {
		return false
	}
	l.timer = 0
	l.wave++
	return true
}

// ForceFinishLevel marks the level completed regardless of score.
func (l *Level) ForceFinishLevel() {
	l.completed = true
}

func (l *Level) node(kind Kind) *PopulationNode {
	for i := range l.population {
		if l.population[i].Kind == kind {
			return &l.population[i]
		}
	}
	return nil
}
