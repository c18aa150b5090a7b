// Package aquarium implements the "eat or be eaten" tank simulation: creatures,
// the aquarium container, wave-driven levels and the collision economy.
package aquarium

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/mlange-42/ark/ecs"

	"github.com/vovakirdan/aquarium/internal/core"
)

// Options configures a new Aquarium.
type Options struct {
	Width         int
	Height        int
	Margin        float64 // bounds are (Width-Margin, Height-Margin)
	MaxPopulation int     // advisory; exceeding it only logs a warning
	MinSpeed      int
	MaxSpeed      int
	Traits        TraitTable
	Sprites       SpriteProvider
	Rand          *rand.Rand
	Logger        *log.Logger
}

// Spawn describes a creature to add.
type Spawn struct {
	Kind  Kind
	Pos   core.Vec
	Dir   core.Vec // normalized on insert
	Speed int
}

// Report summarizes what a Repopulate call did.
type Report struct {
	WaveDispatched bool
	Wave           int // 1-based number of the dispatched wave
	LevelCompleted bool
	Spawned        int
}

// Aquarium owns every live creature and the level sequence.
// Creatures live in an ECS world; order keeps insertion order for first-match scans.
type Aquarium struct {
	width, height int
	margin        float64
	maxPopulation int
	minSpeed      int
	maxSpeed      int

	world  *ecs.World
	mapper *ecs.Map4[Position, Motion, Body, Species]
	order  []ecs.Entity

	levels       []*Level
	currentLevel int

	traits  TraitTable
	sprites SpriteProvider
	rng     *rand.Rand
	logger  *log.Logger
	overCap bool
}

// NewAquarium creates an empty aquarium.
func NewAquarium(opts Options) *Aquarium {
	world := ecs.NewWorld()

	a := &Aquarium{
		width:         opts.Width,
		height:        opts.Height,
		margin:        opts.Margin,
		maxPopulation: opts.MaxPopulation,
		minSpeed:      opts.MinSpeed,
		maxSpeed:      opts.MaxSpeed,
		world:         world,
		mapper:        ecs.NewMap4[Position, Motion, Body, Species](world),
		traits:        opts.Traits,
		sprites:       opts.Sprites,
		rng:           opts.Rand,
		logger:        opts.Logger,
	}

	if a.traits == nil {
		a.traits = DefaultTraits()
	}
	if a.sprites == nil {
		a.sprites = AssetCatalog{}
	}
	if a.rng == nil {
		a.rng = rand.New(rand.NewSource(1))
	}
	if a.logger == nil {
		a.logger = log.New(io.Discard)
	}
	if a.minSpeed < 1 {
		a.minSpeed = 1
	}
	if a.maxSpeed < a.minSpeed {
		a.maxSpeed = a.minSpeed
	}

	return a
}

func (a *Aquarium) Width() int  { return a.width }
func (a *Aquarium) Height() int { return a.height }

// Bounds returns the inclusive movement bounds of creatures.
func (a *Aquarium) Bounds() (float64, float64) {
	return float64(a.width) - a.margin, float64(a.height) - a.margin
}

// AddLevel appends a level to the sequence. Nil levels are ignored.
func (a *Aquarium) AddLevel(l *Level) {
	if l == nil {
		return
	}
	a.levels = append(a.levels, l)
}

// LevelCount returns the number of levels in the sequence.
func (a *Aquarium) LevelCount() int {
	return len(a.levels)
}

// LevelIndex returns how many levels have been completed so far.
// The active level is LevelIndex() mod LevelCount().
func (a *Aquarium) LevelIndex() int {
	return a.currentLevel
}

// CurrentLevel returns the active level, or nil when there are none.
func (a *Aquarium) CurrentLevel() *Level {
	if len(a.levels) == 0 {
		return nil
	}
	return a.levels[a.currentLevel%len(a.levels)]
}

// AddCreature inserts a creature at the end of the live order.
func (a *Aquarium) AddCreature(s Spawn) (ecs.Entity, error) {
	tr, ok := a.traits[s.Kind]
	if !ok || s.Kind == KindPlayer {
		return ecs.Entity{}, ErrUnknownKind
	}

	maxX, maxY := a.Bounds()
	sprite, _ := a.sprites.Sprite(s.Kind)
	dir := s.Dir.Normalize()

	pos := Position{X: s.Pos.X, Y: s.Pos.Y}
	mot := Motion{DX: dir.X, DY: dir.Y, Speed: s.Speed, Flipped: dir.X < 0}
	body := Body{Radius: tr.Radius, Value: tr.Value, MaxX: maxX, MaxY: maxY}
	species := Species{Kind: s.Kind, Sprite: sprite}

	e := a.mapper.NewEntity(&pos, &mot, &body, &species)
	a.order = append(a.order, e)
	a.checkCap()
	return e, nil
}

// SpawnCreature adds a creature of kind at a random position with a random speed.
// Unknown kinds are logged and ignored.
func (a *Aquarium) SpawnCreature(kind Kind) (ecs.Entity, error) {
	tr, ok := a.traits[kind]
	if !ok || kind == KindPlayer {
		a.logger.Error("unknown creature kind to spawn", "kind", kind)
		return ecs.Entity{}, ErrUnknownKind
	}

	s := Spawn{
		Kind: kind,
		Pos: core.Vec{
			X: float64(a.rng.Intn(max(a.width, 1))),
			Y: float64(a.rng.Intn(max(a.height, 1))),
		},
	}
	if tr.Behavior != BehaviorStationary {
		s.Speed = a.minSpeed + a.rng.Intn(a.maxSpeed-a.minSpeed+1)
		s.Dir = randomHeading(a.rng)
	}

	e, err := a.AddCreature(s)
	if err != nil {
		return e, err
	}
	a.logger.Debug("spawned creature", "kind", kind, "x", s.Pos.X, "y", s.Pos.Y, "speed", s.Speed)
	return e, nil
}

// RemoveCreature removes a creature that was eaten. Population-tracked kinds
// are deducted from the active level first. Missing ids are ignored.
func (a *Aquarium) RemoveCreature(id ecs.Entity) bool {
	idx := a.indexOf(id)
	if idx < 0 {
		return false
	}

	_, _, body, species := a.mapper.Get(id)
	if tr := a.traits[species.Kind]; tr.Tracked {
		if lvl := a.CurrentLevel(); lvl != nil {
			lvl.ConsumePopulation(species.Kind, body.Value)
		}
	}

	a.world.RemoveEntity(id)
	a.order = append(a.order[:idx], a.order[idx+1:]...)
	a.checkCap()
	return true
}

// ClearCreatures removes every creature without touching level accounting.
func (a *Aquarium) ClearCreatures() {
	for _, e := range a.order {
		if a.world.Alive(e) {
			a.world.RemoveEntity(e)
		}
	}
	a.order = a.order[:0]
	a.overCap = false
}

// CreatureCount returns the number of live creatures.
func (a *Aquarium) CreatureCount() int {
	return len(a.order)
}

// CreatureAt returns the creature at position i of the live order.
func (a *Aquarium) CreatureAt(i int) (Creature, bool) {
	if i < 0 || i >= len(a.order) {
		return Creature{}, false
	}
	return a.view(a.order[i]), true
}

// Creature returns the live creature with the given id.
func (a *Aquarium) Creature(id ecs.Entity) (Creature, bool) {
	if a.indexOf(id) < 0 {
		return Creature{}, false
	}
	return a.view(id), true
}

// Creatures returns all live creatures in order.
func (a *Aquarium) Creatures() []Creature {
	out := make([]Creature, len(a.order))
	for i, e := range a.order {
		out[i] = a.view(e)
	}
	return out
}

// CountByKind returns the number of live creatures of each kind.
func (a *Aquarium) CountByKind() map[Kind]int {
	counts := make(map[Kind]int)
	for _, e := range a.order {
		_, _, _, species := a.mapper.Get(e)
		counts[species.Kind]++
	}
	return counts
}

// Update moves every creature once, then advances the active level by dt seconds.
// player may be nil, in which case pursuers and fleers ignore it.
func (a *Aquarium) Update(player *Player, dt float64) Report {
	var target core.Vec
	hasTarget := player != nil
	if hasTarget {
		target = player.Pos()
	}

	for _, e := range a.order {
		pos, mot, body, species := a.mapper.Get(e)
		moveCreature(pos, mot, body, a.traits[species.Kind], target, hasTarget)
	}

	return a.Repopulate(dt)
}

// Repopulate advances the active level clock, dispatches a due wave, handles
// level completion and refills population deficits.
func (a *Aquarium) Repopulate(dt float64) Report {
	var rep Report
	level := a.CurrentLevel()
	if level == nil {
		return rep
	}

	if level.Update(dt) {
		rep.WaveDispatched = true
		rep.Wave = level.CurrentWave()
		for _, kind := range level.SpawnWave() {
			if _, err := a.SpawnCreature(kind); err == nil {
				level.Credit(kind)
				rep.Spawned++
			}
		}
		a.logger.Info("wave dispatched", "level", level.Number()+1, "wave", rep.Wave, "of", level.MaxWaves())
	}

	if level.IsCompleted() {
		a.logger.Info("level completed", "level", level.Number()+1, "score", level.Score())
		level.Reset()
		a.currentLevel++
		level = a.CurrentLevel()
		level.Initialize()
		a.ClearCreatures()
		rep.LevelCompleted = true
		a.logger.Info(level.Description(), "level", level.Number()+1)
	}

	for _, kind := range level.Repopulate() {
		if _, err := a.SpawnCreature(kind); err == nil {
			rep.Spawned++
		}
	}

	return rep
}

// ForceAdvanceWave dispatches the next wave of the active level immediately.
func (a *Aquarium) ForceAdvanceWave() bool {
	level := a.CurrentLevel()
	if level == nil || !level.ForceAdvanceWave() {
		return false
	}
	for _, kind := range level.SpawnWave() {
		if _, err := a.SpawnCreature(kind); err == nil {
			level.Credit(kind)
		}
	}
	return true
}

// ForceFinishLevel marks the active level completed; the next Repopulate moves on.
func (a *Aquarium) ForceFinishLevel() {
	if level := a.CurrentLevel(); level != nil {
		level.ForceFinishLevel()
	}
}

func (a *Aquarium) indexOf(id ecs.Entity) int {
	if !a.world.Alive(id) {
		return -1
	}
	for i, e := range a.order {
		if e == id {
			return i
		}
	}
	return -1
}

func (a *Aquarium) view(e ecs.Entity) Creature {
	pos, mot, body, species := a.mapper.Get(e)
	return Creature{
		ID:      e,
		Kind:    species.Kind,
		Pos:     core.Vec{X: pos.X, Y: pos.Y},
		Dir:     core.Vec{X: mot.DX, Y: mot.DY},
		Speed:   mot.Speed,
		Radius:  body.Radius,
		Value:   body.Value,
		Flipped: mot.Flipped,
		Sprite:  species.Sprite,
	}
}

func (a *Aquarium) checkCap() {
	if a.maxPopulation <= 0 {
		return
	}
	over := len(a.order) > a.maxPopulation
	if over && !a.overCap {
		a.logger.Warn("population above advisory cap", "count", len(a.order), "cap", a.maxPopulation)
	}
	a.overCap = over
}
