package aquarium

import (
	"github.com/vovakirdan/aquarium/internal/config"
	"github.com/vovakirdan/aquarium/internal/core"
)

// Outcome classifies what a resolved collision did.
type Outcome int

const (
	OutcomeNone       Outcome = iota
	OutcomeSizeBoost          // picked up a PowerUp
	OutcomeSpeedBoost         // picked up a SpeedFruit
	OutcomeEaten              // player ate the creature
	OutcomeHurt               // creature was too strong, a life was lost
	OutcomeShielded           // creature was too strong, damage debounce absorbed it
	OutcomeGameOver           // last life lost
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeSizeBoost:
		return "size_boost"
	case OutcomeSpeedBoost:
		return "speed_boost"
	case OutcomeEaten:
		return "eaten"
	case OutcomeHurt:
		return "hurt"
	case OutcomeShielded:
		return "shielded"
	case OutcomeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Economy holds the scoring rules applied by Resolve.
type Economy struct {
	PowerUpEvery    int // spawn a PowerUp when score is a multiple of this
	SpeedFruitEvery int // spawn a SpeedFruit when score is a multiple of this
	PowerEvery      int // +1 power when score is a positive multiple of this
	DamageDebounce  int // frames
}

// EconomyFromConfig converts the economy section using the runtime tick rate.
func EconomyFromConfig(cfg config.AquariumConfig, rt core.RuntimeConfig) Economy {
	return Economy{
		PowerUpEvery:    cfg.Economy.PowerUpEvery,
		SpeedFruitEvery: cfg.Economy.SpeedFruitEvery,
		PowerEvery:      cfg.Economy.PowerEvery,
		DamageDebounce:  rt.Frames(cfg.Player.DamageDebounce),
	}
}

// DefaultEconomy returns the default rules at 60 ticks per second.
func DefaultEconomy() Economy {
	return EconomyFromConfig(config.DefaultAquariumConfig(), core.DefaultConfig())
}

// Milestones records which score bonuses fired.
type Milestones struct {
	PowerUp    bool
	SpeedFruit bool
	Power      bool
}

// Resolution is the result of one collision pass.
type Resolution struct {
	Outcome    Outcome
	Creature   Creature
	Milestones Milestones
}

// DetectCollision returns the first live creature, in insertion order,
// whose collision circle overlaps the player's. Nil arguments never collide.
func DetectCollision(a *Aquarium, p *Player) (Creature, bool) {
	if a == nil || p == nil {
		return Creature{}, false
	}
	pc := p.Circle()
	for _, e := range a.order {
		c := a.view(e)
		if pc.Intersects(c.Circle()) {
			return c, true
		}
	}
	return Creature{}, false
}

// Resolve detects the first collision and applies its effect on the player and the tank.
func Resolve(a *Aquarium, p *Player, eco Economy) Resolution {
	c, ok := DetectCollision(a, p)
	if !ok {
		return Resolution{}
	}
	res := Resolution{Creature: c}

	switch c.Kind {
	case KindPowerUp:
		p.ActivateSizeBoost()
		a.RemoveCreature(c.ID)
		res.Outcome = OutcomeSizeBoost
		return res
	case KindSpeedFruit:
		p.ActivateSpeedBoost()
		a.RemoveCreature(c.ID)
		res.Outcome = OutcomeSpeedBoost
		return res
	}

	p.ReverseDirection()

	if p.Power() < c.Value {
		if p.LoseLife(eco.DamageDebounce) {
			res.Outcome = OutcomeHurt
		} else {
			res.Outcome = OutcomeShielded
		}
		if p.Lives() <= 0 {
			res.Outcome = OutcomeGameOver
		}
		return res
	}

	a.RemoveCreature(c.ID)
	p.AddToScore(1, c.Value)
	res.Outcome = OutcomeEaten

	score := p.Score()
	if eco.PowerUpEvery > 0 && score%eco.PowerUpEvery == 0 {
		a.SpawnCreature(KindPowerUp)
		res.Milestones.PowerUp = true
	}
	if eco.SpeedFruitEvery > 0 && score%eco.SpeedFruitEvery == 0 {
		a.SpawnCreature(KindSpeedFruit)
		res.Milestones.SpeedFruit = true
	}
	if eco.PowerEvery > 0 && score > 0 && score%eco.PowerEvery == 0 {
		p.IncreasePower(1)
		res.Milestones.Power = true
	}
	return res
}
