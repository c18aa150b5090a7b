package aquarium

import (
	"math"

	"github.com/vovakirdan/aquarium/internal/config"
	"github.com/vovakirdan/aquarium/internal/core"
)

// PlayerTuning holds the player parameters with durations already in frames.
type PlayerTuning struct {
	Speed          int
	Radius         float64
	Lives          int
	Power          int
	DamageDebounce int // frames of invulnerability after a hit

	SizeBoostFrames int
	RadiusScale     float64
	PowerBonus      int

	SpeedBoostFrames int
	SpeedMultiplier  float64
}

// TuningFromConfig converts the player and boost sections using the runtime tick rate.
func TuningFromConfig(cfg config.AquariumConfig, rt core.RuntimeConfig) PlayerTuning {
	return PlayerTuning{
		Speed:            cfg.Player.Speed,
		Radius:           cfg.Player.Radius,
		Lives:            cfg.Player.Lives,
		Power:            cfg.Player.Power,
		DamageDebounce:   rt.Frames(cfg.Player.DamageDebounce),
		SizeBoostFrames:  rt.Frames(cfg.Boosts.Size.Duration),
		RadiusScale:      cfg.Boosts.Size.RadiusScale,
		PowerBonus:       cfg.Boosts.Size.PowerBonus,
		SpeedBoostFrames: rt.Frames(cfg.Boosts.Speed.Duration),
		SpeedMultiplier:  cfg.Boosts.Speed.Multiplier,
	}
}

// DefaultTuning returns the default tuning at 60 ticks per second.
func DefaultTuning() PlayerTuning {
	return TuningFromConfig(config.DefaultAquariumConfig(), core.DefaultConfig())
}

// Player is the user-controlled creature.
type Player struct {
	pos    core.Vec
	dir    core.Vec
	speed  int
	radius float64
	maxX   float64
	maxY   float64

	score    int
	lives    int
	power    int
	debounce int

	sizeActive  bool
	sizeTimer   int
	speedActive bool
	speedTimer  int
	savedSpeed  int

	sprite        SpriteHandle
	normalSprite  SpriteHandle
	boostedSprite SpriteHandle

	tuning PlayerTuning
}

// NewPlayer creates a player at (x, y) with no heading.
// The player is unbounded until SetBounds is called.
func NewPlayer(x, y float64, tuning PlayerTuning) *Player {
	power := tuning.Power
	if power < 1 {
		power = 1
	}
	return &Player{
		pos:    core.Vec{X: x, Y: y},
		speed:  tuning.Speed,
		radius: tuning.Radius,
		maxX:   math.Inf(1),
		maxY:   math.Inf(1),
		lives:  tuning.Lives,
		power:  power,
		tuning: tuning,
	}
}

// SetBounds sets the inclusive movement bounds.
func (p *Player) SetBounds(maxX, maxY float64) {
	p.maxX = maxX
	p.maxY = maxY
}

// SetSprites sets the normal and boosted visual handles.
func (p *Player) SetSprites(normal, boosted SpriteHandle) {
	p.normalSprite = normal
	p.boostedSprite = boosted
	if p.sizeActive && !boosted.IsZero() {
		p.sprite = boosted
	} else {
		p.sprite = normal
	}
}

func (p *Player) Pos() core.Vec          { return p.pos }
func (p *Player) Dir() core.Vec          { return p.dir }
func (p *Player) Speed() int             { return p.speed }
func (p *Player) Radius() float64        { return p.radius }
func (p *Player) Score() int             { return p.score }
func (p *Player) Lives() int             { return p.lives }
func (p *Player) Power() int             { return p.power }
func (p *Player) Debounce() int          { return p.debounce }
func (p *Player) Sprite() SpriteHandle   { return p.sprite }
func (p *Player) SizeBoostActive() bool  { return p.sizeActive }
func (p *Player) SizeBoostLeft() int     { return p.sizeTimer }
func (p *Player) SpeedBoostActive() bool { return p.speedActive }
func (p *Player) SpeedBoostLeft() int    { return p.speedTimer }

// Circle returns the collision circle of the player.
func (p *Player) Circle() core.Circle {
	return core.Circle{C: p.pos, R: p.radius}
}

// SetPosition teleports the player.
func (p *Player) SetPosition(x, y float64) {
	p.pos = core.Vec{X: x, Y: y}
}

// SetDirection sets the heading. The vector is normalized; zero stops the player.
func (p *Player) SetDirection(dx, dy float64) {
	p.dir = core.Vec{X: dx, Y: dy}.Normalize()
}

// ReverseDirection turns the player around.
func (p *Player) ReverseDirection() {
	p.dir = p.dir.Scale(-1)
}

// ChangeSpeed sets the nominal speed.
func (p *Player) ChangeSpeed(speed int) {
	p.speed = speed
}

// Move advances the player one step along its heading and bounces off the walls.
func (p *Player) Move() {
	p.pos = p.pos.Add(p.dir.Scale(float64(p.speed)))
	bounceAxis(&p.pos.X, &p.dir.X, p.maxX)
	bounceAxis(&p.pos.Y, &p.dir.Y, p.maxY)
}

// Update runs one frame: debounce countdown, movement, then boost timers.
func (p *Player) Update() {
	if p.debounce > 0 {
		p.debounce--
	}
	p.Move()
	p.updateSizeBoost()
	p.updateSpeedBoost()
}

// LoseLife removes one life unless the damage debounce is running.
// It returns true if a life was actually lost.
func (p *Player) LoseLife(debounce int) bool {
	if p.debounce > 0 {
		return false
	}
	lost := false
	if p.lives > 0 {
		p.lives--
		lost = true
	}
	p.debounce = debounce
	return lost
}

// AddToScore adds amount*weight to the score.
func (p *Player) AddToScore(amount, weight int) {
	p.score += amount * weight
	if p.score < 0 {
		p.score = 0
	}
}

// IncreasePower raises power by n.
func (p *Player) IncreasePower(n int) {
	p.power += n
	if p.power < 1 {
		p.power = 1
	}
}

// ActivateSizeBoost starts the size boost. It returns false if one is already running.
func (p *Player) ActivateSizeBoost() bool {
	if p.sizeActive {
		return false
	}
	p.sizeActive = true
	p.sizeTimer = p.tuning.SizeBoostFrames
	p.power += p.tuning.PowerBonus
	if !p.boostedSprite.IsZero() {
		p.sprite = p.boostedSprite
	}
	p.radius = p.tuning.Radius * p.tuning.RadiusScale
	return true
}

func (p *Player) updateSizeBoost() {
	if !p.sizeActive {
		return
	}
	p.sizeTimer--
	if p.sizeTimer > 0 {
		return
	}
	p.sizeActive = false
	p.sizeTimer = 0
	p.power -= p.tuning.PowerBonus
	if p.power < 1 {
		p.power = 1
	}
	p.radius = p.tuning.Radius
	p.sprite = p.normalSprite
}

// ActivateSpeedBoost starts the speed boost. It returns false if one is already running.
func (p *Player) ActivateSpeedBoost() bool {
	if p.speedActive {
		return false
	}
	p.speedActive = true
	p.speedTimer = p.tuning.SpeedBoostFrames
	p.savedSpeed = p.speed
	p.speed = int(float64(p.speed) * p.tuning.SpeedMultiplier)
	return true
}

func (p *Player) updateSpeedBoost() {
	if !p.speedActive {
		return
	}
	p.speedTimer--
	if p.speedTimer > 0 {
		return
	}
	p.speedActive = false
	p.speedTimer = 0
	p.speed = p.savedSpeed
}
