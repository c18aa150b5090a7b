package aquarium

import (
	"io"

	"github.com/charmbracelet/log"
)

// Cadence fires once every N calls to Tick.
type Cadence struct {
	every int
	count int
}

// NewCadence creates a cadence firing every n ticks. n < 1 fires every tick.
func NewCadence(n int) *Cadence {
	if n < 1 {
		n = 1
	}
	return &Cadence{every: n}
}

// Tick counts one frame and reports whether the cadence fired.
func (c *Cadence) Tick() bool {
	c.count++
	if c.count >= c.every {
		c.count = 0
		return true
	}
	return false
}

// Every returns the cadence period in frames.
func (c *Cadence) Every() int { return c.every }

// Frame is what happened during one Scene.Update.
type Frame struct {
	Gated     bool // collision and tank update ran this frame
	Collision Resolution
	Tank      Report
	GameOver  bool
	JustEnded bool // game over was reached during this frame
}

// Scene ties the player and the aquarium together and runs the frame loop.
type Scene struct {
	player   *Player
	aquarium *Aquarium
	economy  Economy
	cadence  *Cadence
	levelDT  float64 // seconds of level time per gated update
	gameOver bool
	logger   *log.Logger
}

// NewScene creates a scene. Collisions and the tank advance once every
// cadence frames; levelDT is the level time credited to each such update.
func NewScene(player *Player, aq *Aquarium, eco Economy, cadence int, levelDT float64, logger *log.Logger) *Scene {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Scene{
		player:   player,
		aquarium: aq,
		economy:  eco,
		cadence:  NewCadence(cadence),
		levelDT:  levelDT,
		logger:   logger,
	}
}

func (s *Scene) Player() *Player     { return s.player }
func (s *Scene) Aquarium() *Aquarium { return s.aquarium }
func (s *Scene) GameOver() bool      { return s.gameOver }

// Update advances one frame: the player moves, then on gated frames the
// first collision is resolved and the tank advances. Once the game is over
// nothing changes any more.
func (s *Scene) Update() Frame {
	if s.gameOver {
		return Frame{GameOver: true}
	}

	if s.player != nil {
		s.player.Update()
	}

	if !s.cadence.Tick() {
		return Frame{}
	}
	f := Frame{Gated: true}

	f.Collision = Resolve(s.aquarium, s.player, s.economy)
	s.logCollision(f.Collision)
	if f.Collision.Outcome == OutcomeGameOver {
		s.gameOver = true
		f.GameOver = true
		f.JustEnded = true
		s.logger.Info("game over", "score", s.player.Score(), "level", s.aquarium.LevelIndex()+1)
		return f
	}

	if s.aquarium != nil {
		f.Tank = s.aquarium.Update(s.player, s.levelDT)
	}
	return f
}

func (s *Scene) logCollision(res Resolution) {
	switch res.Outcome {
	case OutcomeNone:
	case OutcomeSizeBoost:
		s.logger.Info("size boost", "power", s.player.Power())
	case OutcomeSpeedBoost:
		s.logger.Info("speed boost", "speed", s.player.Speed())
	case OutcomeHurt:
		s.logger.Info("player lost a life", "lives", s.player.Lives(), "by", res.Creature.Kind)
	case OutcomeEaten:
		s.logger.Debug("ate creature", "kind", res.Creature.Kind, "score", s.player.Score())
		if res.Milestones.Power {
			s.logger.Info("power up", "power", s.player.Power())
		}
	}
}
