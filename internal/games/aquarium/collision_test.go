package aquarium

import (
	"testing"

	"github.com/vovakirdan/aquarium/internal/core"
)

// placeOnPlayer adds a creature exactly on top of the player.
func placeOnPlayer(t *testing.T, a *Aquarium, p *Player, kind Kind) Creature {
	t.Helper()
	return mustAdd(t, a, Spawn{Kind: kind, Pos: p.Pos(), Speed: 1})
}

func TestDetectCollisionNilSafe(t *testing.T) {
	a := newTestAquarium()
	p := newTestPlayer()
	placeOnPlayer(t, a, p, KindNPC)

	if _, ok := DetectCollision(nil, p); ok {
		t.Error("nil aquarium should never collide")
	}
	if _, ok := DetectCollision(a, nil); ok {
		t.Error("nil player should never collide")
	}
	if res := Resolve(a, nil, DefaultEconomy()); res.Outcome != OutcomeNone {
		t.Errorf("Resolve with nil player = %v, expected none", res.Outcome)
	}
}

func TestDetectCollisionStrictOverlap(t *testing.T) {
	tests := []struct {
		name string
		dx   float64
		hit  bool
	}{
		{"inside", 10, true},
		{"almost touching", 54.9, true},
		{"touching", 55, false}, // player 25 + npc 30
		{"apart", 80, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := newTestAquarium()
			p := newTestPlayer()
			mustAdd(t, a, Spawn{Kind: KindNPC, Pos: p.Pos().Add(core.Vec{X: tc.dx})})
			if _, ok := DetectCollision(a, p); ok != tc.hit {
				t.Errorf("DetectCollision() = %v, expected %v", ok, tc.hit)
			}
		})
	}
}

func TestDetectCollisionFirstMatch(t *testing.T) {
	a := newTestAquarium()
	p := newTestPlayer()
	mustAdd(t, a, Spawn{Kind: KindNPC, Pos: core.Vec{X: 10, Y: 10}})
	first := placeOnPlayer(t, a, p, KindBiggerFish)
	placeOnPlayer(t, a, p, KindNPC)

	c, ok := DetectCollision(a, p)
	if !ok || c.ID != first.ID {
		t.Errorf("expected the first overlapping creature (%s), got %s", first.Kind, c.Kind)
	}

	res := Resolve(a, p, DefaultEconomy())
	if res.Outcome != OutcomeHurt {
		t.Errorf("outcome = %v, expected hurt", res.Outcome)
	}
	if a.CreatureCount() != 3 {
		t.Errorf("only one collision per pass, count = %d", a.CreatureCount())
	}
}

func TestResolveStrongerCreatureHurts(t *testing.T) {
	a := newTestAquarium()
	p := newTestPlayer()
	p.SetDirection(1, 0)
	big := placeOnPlayer(t, a, p, KindBiggerFish)

	res := Resolve(a, p, DefaultEconomy())
	if res.Outcome != OutcomeHurt {
		t.Fatalf("outcome = %v, expected hurt", res.Outcome)
	}
	if p.Lives() != 2 {
		t.Errorf("lives = %d, expected 2", p.Lives())
	}
	if p.Debounce() != 180 {
		t.Errorf("debounce = %d, expected 180", p.Debounce())
	}
	if p.Score() != 0 {
		t.Errorf("score = %d, expected 0", p.Score())
	}
	if _, ok := a.Creature(big.ID); !ok {
		t.Error("stronger creature should stay in the tank")
	}
	if d := p.Dir(); d.X != -1 {
		t.Errorf("player should bounce back, dir = %v", d)
	}

	// Next frame: debounce absorbs the hit
	res = Resolve(a, p, DefaultEconomy())
	if res.Outcome != OutcomeShielded {
		t.Errorf("outcome = %v, expected shielded", res.Outcome)
	}
	if p.Lives() != 2 {
		t.Errorf("lives = %d during debounce, expected 2", p.Lives())
	}
}

func TestResolveGameOver(t *testing.T) {
	a := newTestAquarium()
	p := newTestPlayer()
	p.LoseLife(0)
	p.LoseLife(0)
	placeOnPlayer(t, a, p, KindGyarados)

	res := Resolve(a, p, DefaultEconomy())
	if res.Outcome != OutcomeGameOver {
		t.Errorf("outcome = %v, expected game_over", res.Outcome)
	}
	if p.Lives() != 0 {
		t.Errorf("lives = %d, expected 0", p.Lives())
	}
}

func TestResolveEatMilestones(t *testing.T) {
	tests := []struct {
		name       string
		startScore int
		power      int
		kind       Kind
		wantScore  int
		want       Milestones
		wantPower  int
	}{
		{"no milestone", 19, 5, KindBiggerFish, 24, Milestones{}, 5},
		{"speed fruit", 14, 1, KindNPC, 15, Milestones{SpeedFruit: true}, 1},
		{"power up", 19, 1, KindNPC, 20, Milestones{PowerUp: true}, 1},
		{"speed fruit and power", 29, 1, KindNPC, 30, Milestones{SpeedFruit: true, Power: true}, 2},
		{"all three", 55, 5, KindBiggerFish, 60, Milestones{PowerUp: true, SpeedFruit: true, Power: true}, 6},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := newTestAquarium()
			p := newTestPlayer()
			p.AddToScore(tc.startScore, 1)
			p.IncreasePower(tc.power - p.Power())
			food := placeOnPlayer(t, a, p, tc.kind)

			res := Resolve(a, p, DefaultEconomy())
			if res.Outcome != OutcomeEaten {
				t.Fatalf("outcome = %v, expected eaten", res.Outcome)
			}
			if _, ok := a.Creature(food.ID); ok {
				t.Error("eaten creature still in the tank")
			}
			if p.Score() != tc.wantScore {
				t.Errorf("score = %d, expected %d", p.Score(), tc.wantScore)
			}
			if res.Milestones != tc.want {
				t.Errorf("milestones = %+v, expected %+v", res.Milestones, tc.want)
			}
			if p.Power() != tc.wantPower {
				t.Errorf("power = %d, expected %d", p.Power(), tc.wantPower)
			}

			counts := a.CountByKind()
			if got, want := counts[KindPowerUp] > 0, tc.want.PowerUp; got != want {
				t.Errorf("power up spawned = %v, expected %v", got, want)
			}
			if got, want := counts[KindSpeedFruit] > 0, tc.want.SpeedFruit; got != want {
				t.Errorf("speed fruit spawned = %v, expected %v", got, want)
			}
		})
	}
}

func TestResolveEqualPowerEats(t *testing.T) {
	a := newTestAquarium()
	p := newTestPlayer()
	placeOnPlayer(t, a, p, KindNPC)

	if res := Resolve(a, p, DefaultEconomy()); res.Outcome != OutcomeEaten {
		t.Errorf("power 1 vs value 1: outcome = %v, expected eaten", res.Outcome)
	}
	if p.Score() != 1 {
		t.Errorf("score = %d, expected 1", p.Score())
	}
}

func TestResolvePowerUpPickup(t *testing.T) {
	a := newTestAquarium()
	p := newTestPlayer()
	p.SetDirection(0, 1)
	placeOnPlayer(t, a, p, KindPowerUp)

	res := Resolve(a, p, DefaultEconomy())
	if res.Outcome != OutcomeSizeBoost {
		t.Fatalf("outcome = %v, expected size_boost", res.Outcome)
	}
	if p.Power() != 2 {
		t.Errorf("power = %d, expected 2", p.Power())
	}
	if p.Radius() != 37.5 {
		t.Errorf("radius = %v, expected 37.5", p.Radius())
	}
	if d := p.Dir(); d.Y != 1 {
		t.Errorf("pickups should not bounce the player, dir = %v", d)
	}
	if a.CreatureCount() != 0 {
		t.Errorf("pickup not consumed, count = %d", a.CreatureCount())
	}

	// Second pickup while active: consumed, no stacking
	placeOnPlayer(t, a, p, KindPowerUp)
	Resolve(a, p, DefaultEconomy())
	if p.Power() != 2 || p.Radius() != 37.5 {
		t.Errorf("boost stacked: power=%d radius=%v", p.Power(), p.Radius())
	}
	if a.CreatureCount() != 0 {
		t.Errorf("second pickup not consumed, count = %d", a.CreatureCount())
	}
}

func TestResolveSpeedFruitPickup(t *testing.T) {
	a := newTestAquarium()
	p := newTestPlayer()
	placeOnPlayer(t, a, p, KindSpeedFruit)

	res := Resolve(a, p, DefaultEconomy())
	if res.Outcome != OutcomeSpeedBoost {
		t.Fatalf("outcome = %v, expected speed_boost", res.Outcome)
	}
	if p.Speed() != 15 {
		t.Errorf("speed = %d, expected 15", p.Speed())
	}
}

func TestOutcomeString(t *testing.T) {
	if OutcomeGameOver.String() != "game_over" {
		t.Errorf("OutcomeGameOver.String() = %q", OutcomeGameOver.String())
	}
	if Outcome(42).String() != "unknown" {
		t.Errorf("Outcome(42).String() = %q", Outcome(42).String())
	}
}
