// Package telemetry aggregates per-window simulation statistics and writes
// them, along with per-run results, as CSV for offline analysis.
package telemetry

import (
	"github.com/vovakirdan/aquarium/internal/core"
	"github.com/vovakirdan/aquarium/internal/games/aquarium"
)

// WindowStats holds aggregated statistics for a window of ticks.
type WindowStats struct {
	Run             int     `csv:"run"`
	WindowStartTick uint64  `csv:"-"`
	WindowEndTick   uint64  `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Sampled at window end
	Level     int `csv:"level"`
	Wave      int `csv:"wave"`
	Score     int `csv:"score"`
	Lives     int `csv:"lives"`
	Power     int `csv:"power"`
	Creatures int `csv:"creatures"`
	NPC       int `csv:"npc"`
	Bigger    int `csv:"bigger_fish"`
	Gyarados  int `csv:"gyarados"`
	Angler    int `csv:"angler"`
	Pickups   int `csv:"pickups"`

	// Events during window
	Eaten       int `csv:"eaten"`
	Hurt        int `csv:"hurt"`
	SizeBoosts  int `csv:"size_boosts"`
	SpeedBoosts int `csv:"speed_boosts"`
	PowerUps    int `csv:"power_ups"`
	Waves       int `csv:"waves"`
	LevelUps    int `csv:"level_ups"`
}

// Collector counts step events and emits a WindowStats every window ticks.
type Collector struct {
	run      int
	window   uint64
	tickRate int
	start    uint64
	current  WindowStats
}

// NewCollector creates a collector for one run. window < 1 means one second of ticks.
func NewCollector(run, window, tickRate int) *Collector {
	if tickRate <= 0 {
		tickRate = 60
	}
	if window < 1 {
		window = tickRate
	}
	return &Collector{
		run:      run,
		window:   uint64(window), //#nosec G115 -- window is positive
		tickRate: tickRate,
	}
}

// Record accounts for one step of g. It returns the finished window when
// the step closes one.
func (c *Collector) Record(g *aquarium.Game, res core.StepResult) (WindowStats, bool) {
	for _, ev := range res.Events {
		switch ev {
		case aquarium.EventEaten:
			c.current.Eaten++
		case aquarium.EventHurt:
			c.current.Hurt++
		case aquarium.EventSizeBoost:
			c.current.SizeBoosts++
		case aquarium.EventSpeedBoost:
			c.current.SpeedBoosts++
		case aquarium.EventPowerUp:
			c.current.PowerUps++
		case aquarium.EventWave:
			c.current.Waves++
		case aquarium.EventLevelUp:
			c.current.LevelUps++
		}
	}

	tick := g.Tick()
	if tick == 0 || (tick%c.window != 0 && !res.State.GameOver) {
		return WindowStats{}, false
	}
	return c.close(g), true
}

// Flush closes the current partial window, if it covers any ticks.
func (c *Collector) Flush(g *aquarium.Game) (WindowStats, bool) {
	if g.Tick() <= c.start {
		return WindowStats{}, false
	}
	return c.close(g), true
}

func (c *Collector) close(g *aquarium.Game) WindowStats {
	w := c.current
	w.Run = c.run
	w.WindowStartTick = c.start
	w.WindowEndTick = g.Tick()
	w.SimTimeSec = float64(w.WindowEndTick) / float64(c.tickRate)

	h := g.HUD()
	w.Level = h.Level
	w.Wave = h.Wave
	w.Score = h.Score
	w.Lives = h.Lives
	w.Power = h.Power

	counts := g.Scene().Aquarium().CountByKind()
	for _, n := range counts {
		w.Creatures += n
	}
	w.NPC = counts[aquarium.KindNPC]
	w.Bigger = counts[aquarium.KindBiggerFish]
	w.Gyarados = counts[aquarium.KindGyarados]
	w.Angler = counts[aquarium.KindAngler]
	w.Pickups = counts[aquarium.KindPowerUp] + counts[aquarium.KindSpeedFruit]

	c.start = w.WindowEndTick
	c.current = WindowStats{}
	return w
}
