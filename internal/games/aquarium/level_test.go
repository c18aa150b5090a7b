package aquarium

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/aquarium/internal/config"
)

func defaultSpecs(t *testing.T) []LevelSpec {
	t.Helper()
	specs, err := LevelsFromConfig(config.DefaultAquariumConfig().Levels)
	if err != nil {
		t.Fatalf("LevelsFromConfig() failed: %v", err)
	}
	return specs
}

func countKind(kinds []Kind, k Kind) int {
	n := 0
	for _, x := range kinds {
		if x == k {
			n++
		}
	}
	return n
}

// dispatchAllWaves drives the level clock until every wave is out and
// returns everything the waves asked for.
func dispatchAllWaves(l *Level) []Kind {
	var spawned []Kind
	for l.CurrentWave() < l.MaxWaves() {
		if l.Update(l.WaveInterval()) {
			spawned = append(spawned, l.SpawnWave()...)
		}
	}
	return spawned
}

func TestLevelsFromConfig(t *testing.T) {
	specs := defaultSpecs(t)
	if len(specs) != 3 {
		t.Fatalf("expected 3 levels, got %d", len(specs))
	}

	tests := []struct {
		level    int
		waves    int
		interval float64
		target   int
	}{
		{0, 3, 12, 15},
		{1, 4, 10, 30},
		{2, 5, 8, 50},
	}
	for _, tc := range tests {
		s := specs[tc.level]
		if len(s.Waves) != tc.waves || s.WaveInterval != tc.interval || s.TargetScore != tc.target {
			t.Errorf("level %d: waves=%d interval=%v target=%d", tc.level, len(s.Waves), s.WaveInterval, s.TargetScore)
		}
	}

	// Level 3, wave 5: three Gyarados then three Anglers
	want := []Kind{KindGyarados, KindGyarados, KindGyarados, KindAngler, KindAngler, KindAngler}
	if got := specs[2].Waves[4]; !reflect.DeepEqual(got, want) {
		t.Errorf("level 3 wave 5 = %v, expected %v", got, want)
	}
}

func TestLevelsFromConfigUnknownKind(t *testing.T) {
	levels := []config.LevelConfig{{
		WaveInterval: 1,
		Waves:        [][]config.SpawnGroup{{{Kind: "kraken", Count: 1}}},
	}}
	_, err := LevelsFromConfig(levels)
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}

func TestLevelWaveTiming(t *testing.T) {
	l := NewLevel(defaultSpecs(t)[0])

	if l.Update(11.9) {
		t.Fatal("wave dispatched before the interval elapsed")
	}
	if !l.Update(0.2) {
		t.Fatal("wave not dispatched after the interval elapsed")
	}
	if l.CurrentWave() != 1 {
		t.Errorf("wave = %d, expected 1", l.CurrentWave())
	}
	if l.WaveTimer() != 0 {
		t.Errorf("timer = %v, expected reset to 0", l.WaveTimer())
	}
	if got := l.SpawnWave(); !reflect.DeepEqual(got, []Kind{KindNPC, KindNPC, KindNPC, KindNPC}) {
		t.Errorf("first wave = %v, expected four NPCs", got)
	}
}

func TestLevelWavesStopAtMax(t *testing.T) {
	l := NewLevel(defaultSpecs(t)[0])
	dispatchAllWaves(l)
	if l.CurrentWave() != 3 {
		t.Fatalf("wave = %d, expected 3", l.CurrentWave())
	}
	for range 10 {
		if l.Update(12) {
			t.Fatal("no wave should be due after the last one")
		}
	}
	if l.CurrentWave() != 3 {
		t.Errorf("wave advanced past max: %d", l.CurrentWave())
	}
}

func TestRepopulateOnlyAfterAllWaves(t *testing.T) {
	l := NewLevel(defaultSpecs(t)[0])

	for l.CurrentWave() < l.MaxWaves() {
		if got := l.Repopulate(); len(got) != 0 {
			t.Fatalf("Repopulate() at wave %d returned %v, expected nothing", l.CurrentWave(), got)
		}
		l.Update(l.WaveInterval())
	}

	if got := l.Repopulate(); len(got) == 0 {
		t.Error("Repopulate() returned nothing once all waves were dispatched")
	}
}

func TestLevelZeroRepopulateScenario(t *testing.T) {
	l := NewLevel(defaultSpecs(t)[0])

	spawned := dispatchAllWaves(l)
	npcs := countKind(spawned, KindNPC)
	if npcs != 14 {
		t.Fatalf("waves spawned %d NPCs, expected 14", npcs)
	}

	// Every wave NPC is eaten
	for range npcs {
		l.ConsumePopulation(KindNPC, 1)
	}

	req := l.Repopulate()
	if got := countKind(req, KindNPC); got != 14 {
		t.Errorf("Repopulate() requested %d NPCs, expected 14", got)
	}
	if got := countKind(req, KindAngler); got != 4 {
		t.Errorf("Repopulate() requested %d anglers, expected 4", got)
	}

	// Deficit was restored in one shot
	if again := l.Repopulate(); len(again) != 0 {
		t.Errorf("second Repopulate() returned %v, expected nothing", again)
	}
}

func TestLevelZeroRepopulateWithCredits(t *testing.T) {
	l := NewLevel(defaultSpecs(t)[0])

	for _, k := range dispatchAllWaves(l) {
		l.Credit(k)
	}
	for range 14 {
		l.ConsumePopulation(KindNPC, 1)
	}
	if l.Score() != 14 {
		t.Errorf("level score = %d, expected 14", l.Score())
	}

	req := l.Repopulate()
	if got := countKind(req, KindNPC); got != 14 {
		t.Errorf("Repopulate() requested %d NPCs, expected 14", got)
	}
}

func TestCreditCappedAtTarget(t *testing.T) {
	l := NewLevel(defaultSpecs(t)[0])
	for range 50 {
		l.Credit(KindNPC)
	}
	l.Credit(KindGyarados) // no node in level 1
	for _, n := range l.Population() {
		if n.Current > n.Target {
			t.Errorf("%s current %d exceeds target %d", n.Kind, n.Current, n.Target)
		}
	}
}

func TestConsumePopulationNeverNegative(t *testing.T) {
	l := NewLevel(defaultSpecs(t)[0])

	l.ConsumePopulation(KindNPC, 1)
	l.ConsumePopulation(KindGyarados, 10) // no such node
	for _, n := range l.Population() {
		if n.Current < 0 {
			t.Errorf("%s current went negative: %d", n.Kind, n.Current)
		}
	}
	if l.Score() != 0 {
		t.Errorf("level score = %d, expected 0", l.Score())
	}
}

func TestConsumePopulationStopsScoringWhenCompleted(t *testing.T) {
	spec := LevelSpec{
		TargetScore:  3,
		WaveInterval: 1,
		Population:   []PopulationNode{{Kind: KindAngler, Target: 4}},
	}
	l := NewLevel(spec)
	l.Repopulate() // no waves: fills immediately

	l.ConsumePopulation(KindAngler, 5)
	if !l.IsCompleted() {
		t.Fatal("level should be completed after reaching the target")
	}
	score := l.Score()

	l.ConsumePopulation(KindAngler, 5)
	if l.Score() != score {
		t.Errorf("score rose after completion: %d -> %d", score, l.Score())
	}
	if n := l.Population()[0]; n.Current != 2 {
		t.Errorf("current = %d, expected 2", n.Current)
	}
}

func TestLevelUpdateNoopWhenCompleted(t *testing.T) {
	l := NewLevel(defaultSpecs(t)[0])
	l.ForceFinishLevel()
	if l.Update(100) {
		t.Error("completed level dispatched a wave")
	}
	if l.WaveTimer() != 0 || l.CurrentWave() != 0 {
		t.Error("completed level advanced its clock")
	}
	if !l.IsCompleted() {
		t.Error("ForceFinishLevel should complete the level")
	}
}

func TestLevelUpdateMarksCompleted(t *testing.T) {
	spec := LevelSpec{TargetScore: 0, WaveInterval: 1}
	l := NewLevel(spec)
	l.Update(0.1)
	if !l.IsCompleted() {
		t.Error("level with target 0 should complete on the first update")
	}
}

func TestForceAdvanceWave(t *testing.T) {
	l := NewLevel(defaultSpecs(t)[0])
	l.Update(5)
	if !l.ForceAdvanceWave() {
		t.Fatal("ForceAdvanceWave() failed")
	}
	if l.CurrentWave() != 1 || l.WaveTimer() != 0 {
		t.Errorf("wave=%d timer=%v, expected 1 and 0", l.CurrentWave(), l.WaveTimer())
	}
	l.ForceAdvanceWave()
	l.ForceAdvanceWave()
	if l.ForceAdvanceWave() {
		t.Error("ForceAdvanceWave() past the last wave should fail")
	}
}

func TestLevelResetThenInitializeMatchesFresh(t *testing.T) {
	for _, spec := range defaultSpecs(t) {
		l := NewLevel(spec)
		for _, k := range dispatchAllWaves(l) {
			l.Credit(k)
		}
		l.Repopulate()
		l.ConsumePopulation(KindNPC, 1)
		l.Update(3)

		l.Reset()
		if l.Score() != 0 {
			t.Errorf("level %d: Reset() left score %d", spec.Number, l.Score())
		}
		for _, n := range l.Population() {
			if n.Current != 0 {
				t.Errorf("level %d: Reset() left %s at %d", spec.Number, n.Kind, n.Current)
			}
		}

		l.Initialize()
		if !reflect.DeepEqual(l, NewLevel(spec)) {
			t.Errorf("level %d: Reset+Initialize differs from a fresh level", spec.Number)
		}
	}
}
