package aquarium

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/aquarium/internal/config"
	"github.com/vovakirdan/aquarium/internal/core"
)

// Step events reported in core.StepResult.Events.
const (
	EventSizeBoost  = "size_boost"
	EventSpeedBoost = "speed_boost"
	EventEaten      = "eaten"
	EventHurt       = "hurt"
	EventGameOver   = "game_over"
	EventWave       = "wave"
	EventLevelUp    = "level_up"
	EventPowerUp    = "power_up"
)

// HUD is the heads-up information a front end would display.
type HUD struct {
	Score       int
	Power       int
	Lives       int
	Level       int // 1-based
	Wave        int
	MaxWaves    int
	LevelScore  int
	TargetScore int
	Description string
}

// Game wraps a Scene with input handling, pause and restart.
type Game struct {
	cfg     config.AquariumConfig
	traits  TraitTable
	levels  []LevelSpec
	sprites SpriteProvider
	logger  *log.Logger

	runtime core.RuntimeConfig
	scene   *Scene
	tick    uint64
	paused  bool
}

// GameOption customizes a Game.
type GameOption func(*Game)

// WithLogger sets the diagnostics logger.
func WithLogger(l *log.Logger) GameOption {
	return func(g *Game) { g.logger = l }
}

// WithSprites sets the sprite provider.
func WithSprites(p SpriteProvider) GameOption {
	return func(g *Game) { g.sprites = p }
}

// New creates a game from a configuration. Call Reset before stepping it.
func New(cfg config.AquariumConfig, opts ...GameOption) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	traits, err := TraitsFromConfig(cfg.Creatures)
	if err != nil {
		return nil, err
	}
	levels, err := LevelsFromConfig(cfg.Levels)
	if err != nil {
		return nil, err
	}
	for _, spec := range levels {
		for _, wave := range spec.Waves {
			for _, k := range wave {
				if _, ok := traits[k]; !ok {
					return nil, fmt.Errorf("aquarium: level %d spawns %s which has no traits: %w", spec.Number+1, k, ErrUnknownKind)
				}
			}
		}
	}

	g := &Game{
		cfg:     cfg,
		traits:  traits,
		levels:  levels,
		sprites: DefaultCatalog(),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "aquarium" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Aquarium" }

// Reset initializes or restarts the game.
// Tank size comes from the runtime config when set, otherwise from the aquarium config.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TankW <= 0 {
		runtime.TankW = g.cfg.Tank.Width
	}
	if runtime.TankH <= 0 {
		runtime.TankH = g.cfg.Tank.Height
	}
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	g.runtime = runtime
	g.tick = 0
	g.paused = false

	aq := NewAquarium(Options{
		Width:         runtime.TankW,
		Height:        runtime.TankH,
		Margin:        g.cfg.Tank.Margin,
		MaxPopulation: g.cfg.Tank.MaxPopulation,
		MinSpeed:      g.cfg.Spawn.MinSpeed,
		MaxSpeed:      g.cfg.Spawn.MaxSpeed,
		Traits:        g.traits,
		Sprites:       g.sprites,
		Rand:          rand.New(rand.NewSource(runtime.Seed)),
		Logger:        g.logger,
	})
	for _, spec := range g.levels {
		aq.AddLevel(NewLevel(spec))
	}

	player := NewPlayer(float64(runtime.TankW)/2, float64(runtime.TankH)/2, TuningFromConfig(g.cfg, runtime))
	player.SetBounds(aq.Bounds())
	normal, _ := g.sprites.Sprite(KindPlayer)
	player.SetSprites(normal, PlayerBoosted)

	every := g.cfg.Collision.EveryFrames
	levelDT := runtime.Seconds(max(every, 1))
	g.scene = NewScene(player, aq, EconomyFromConfig(g.cfg, runtime), every, levelDT, g.logger)

	if lvl := aq.CurrentLevel(); lvl != nil {
		g.logger.Info(lvl.Description(), "level", 1, "seed", runtime.Seed)
	}
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.scene == nil {
		g.Reset(core.DefaultConfig())
	}

	if in.Has(core.ActionRestart) && g.scene.GameOver() {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) && !g.scene.GameOver() {
		g.paused = !g.paused
	}
	if g.paused || g.scene.GameOver() {
		return core.StepResult{State: g.State()}
	}

	if dir, ok := in.Heading(); ok {
		g.scene.Player().SetDirection(dir.X, dir.Y)
	}
	if in.Has(core.ActionSkipWave) {
		g.scene.Aquarium().ForceAdvanceWave()
	}
	if in.Has(core.ActionSkipLevel) {
		g.scene.Aquarium().ForceFinishLevel()
	}

	g.tick++
	frame := g.scene.Update()

	return core.StepResult{
		State:  g.State(),
		Events: frameEvents(frame),
	}
}

func frameEvents(f Frame) []string {
	if !f.Gated {
		return nil
	}
	var events []string
	switch f.Collision.Outcome {
	case OutcomeSizeBoost:
		events = append(events, EventSizeBoost)
	case OutcomeSpeedBoost:
		events = append(events, EventSpeedBoost)
	case OutcomeEaten:
		events = append(events, EventEaten)
		if f.Collision.Milestones.Power {
			events = append(events, EventPowerUp)
		}
	case OutcomeHurt:
		events = append(events, EventHurt)
	case OutcomeGameOver:
		events = append(events, EventHurt, EventGameOver)
	}
	if f.Tank.WaveDispatched {
		events = append(events, EventWave)
	}
	if f.Tank.LevelCompleted {
		events = append(events, EventLevelUp)
	}
	return events
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.scene == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.scene.Player().Score(),
		GameOver: g.scene.GameOver(),
		Paused:   g.paused,
	}
}

// Tick returns the number of simulated ticks since the last reset.
func (g *Game) Tick() uint64 { return g.tick }

// Scene exposes the underlying scene.
func (g *Game) Scene() *Scene { return g.scene }

// HUD returns the values a front end would display.
func (g *Game) HUD() HUD {
	if g.scene == nil {
		return HUD{}
	}
	p := g.scene.Player()
	aq := g.scene.Aquarium()
	h := HUD{
		Score: p.Score(),
		Power: p.Power(),
		Lives: p.Lives(),
		Level: aq.LevelIndex() + 1,
	}
	if lvl := aq.CurrentLevel(); lvl != nil {
		h.Wave = lvl.CurrentWave()
		h.MaxWaves = lvl.MaxWaves()
		h.LevelScore = lvl.Score()
		h.TargetScore = lvl.TargetScore()
		h.Description = lvl.Description()
	}
	return h
}

// Observe builds the autopilot view of the tank.
func (g *Game) Observe() core.Observation {
	if g.scene == nil {
		return core.Observation{}
	}
	p := g.scene.Player()
	aq := g.scene.Aquarium()
	obs := core.Observation{
		Tick:    g.tick,
		TankW:   float64(aq.Width()),
		TankH:   float64(aq.Height()),
		Pos:     p.Pos(),
		Heading: p.Dir(),
		Radius:  p.Radius(),
		Power:   p.Power(),
		Lives:   p.Lives(),
	}
	for _, c := range aq.Creatures() {
		obs.Creatures = append(obs.Creatures, core.Sighting{
			Pos:    c.Pos,
			Radius: c.Radius,
			Value:  c.Value,
			Pickup: c.Kind.IsPickup(),
		})
	}
	return obs
}
