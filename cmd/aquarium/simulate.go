package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/aquarium/internal/config"
	"github.com/vovakirdan/aquarium/internal/core"
	"github.com/vovakirdan/aquarium/internal/games/aquarium"
	"github.com/vovakirdan/aquarium/internal/registry"
	"github.com/vovakirdan/aquarium/internal/storage"
	"github.com/vovakirdan/aquarium/internal/telemetry"
)

var (
	flagFrames    int
	flagRuns      int
	flagPilot     string
	flagTelemetry string
	flagWindow    int
	flagNoSave    bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the simulation with an autopilot",
	Long: `Run the aquarium headless, steered by an autopilot, for a fixed number
of frames or until game over. Each run uses seed, seed+1, ... and is saved
to the runs database.

Examples:
  aquarium simulate
  aquarium simulate --pilot wander --runs 20 --seed 7
  aquarium simulate --frames 18000 --telemetry out/ --window 300`,
	Run: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 36000, "Maximum frames per run")
	simulateCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of runs")
	simulateCmd.Flags().StringVar(&flagPilot, "pilot", "greedy", "Autopilot ID (see 'aquarium pilots')")
	simulateCmd.Flags().StringVar(&flagTelemetry, "telemetry", "", "Directory for telemetry.csv, runs.csv and config.yaml")
	simulateCmd.Flags().IntVar(&flagWindow, "window", 60, "Telemetry window in frames")
	simulateCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record runs in the database")
}

func runSimulate(cmd *cobra.Command, args []string) {
	logger, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !registry.Exists(flagPilot) {
		fmt.Fprintf(os.Stderr, "Error: unknown pilot %q\n", flagPilot)
		fmt.Fprintln(os.Stderr, "Run 'aquarium pilots' to see available pilots.")
		os.Exit(1)
	}
	if flagRuns < 1 || flagFrames < 1 {
		fmt.Fprintln(os.Stderr, "Error: --runs and --frames must be positive")
		os.Exit(1)
	}

	cfg, preset, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	out, err := telemetry.NewOutputManager(flagTelemetry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating telemetry output: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()
	if err := out.WriteConfig(cfg); err != nil {
		logger.Warn("could not write config snapshot", "error", err)
	}

	var store *storage.Store
	if !flagNoSave {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open runs database", "error", err)
			// Continue without storage
		} else {
			defer store.Close()
		}
	}

	seed := baseSeed()
	fmt.Printf("Simulating %d run(s) of %q, %d frames max, difficulty %s, seed %d\n", flagRuns, flagPilot, flagFrames, preset, seed)
	fmt.Println()
	fmt.Printf("  %-4s  %-20s  %-6s  %-5s  %-8s  %s\n", "Run", "Seed", "Score", "Level", "Frames", "Result")
	fmt.Printf("  %-4s  %-20s  %-6s  %-5s  %-8s  %s\n", "---", "----", "-----", "-----", "------", "------")

	results := make([]telemetry.RunSummary, 0, flagRuns)
	for i := range flagRuns {
		res, err := simulateRun(cfg, i, seed+int64(i), logger, out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error in run %d: %v\n", i, err)
			os.Exit(1)
		}
		res.Difficulty = string(preset)
		results = append(results, res)

		if err := out.WriteRun(res); err != nil {
			logger.Warn("could not write run row", "run", i, "error", err)
		}
		if store != nil {
			if _, err := store.SaveRun(storage.RunRecord{
				Pilot:      res.Pilot,
				Seed:       res.Seed,
				Difficulty: res.Difficulty,
				Score:      res.Score,
				Level:      res.Level,
				Frames:     res.Frames,
				GameOver:   res.GameOver,
			}); err != nil {
				logger.Warn("could not save run", "run", i, "error", err)
			}
		}

		result := "survived"
		if res.GameOver {
			result = "eaten"
		}
		fmt.Printf("  %-4d  %-20d  %-6d  %-5d  %-8d  %s\n", i, res.Seed, res.Score, res.Level, res.Frames, result)
	}

	s := telemetry.Summarize(telemetry.Scores(results))
	fmt.Println()
	fmt.Printf("Score: mean %.1f  stddev %.1f  median %.0f  min %.0f  max %.0f\n", s.Mean, s.StdDev, s.Median, s.Min, s.Max)
	if dir := out.Dir(); dir != "" {
		fmt.Printf("Telemetry written to %s\n", dir)
	}
	if store != nil {
		if high, err := store.HighScore(flagPilot); err == nil {
			fmt.Printf("Best %s run on record: %d\n", flagPilot, high)
		}
	}
}

// simulateRun plays one seeded run to completion and streams its telemetry windows.
func simulateRun(cfg config.AquariumConfig, run int, seed int64, logger *log.Logger, out *telemetry.OutputManager) (telemetry.RunSummary, error) {
	pilot, err := registry.Create(flagPilot)
	if err != nil {
		return telemetry.RunSummary{}, err
	}
	game, err := aquarium.New(cfg, aquarium.WithLogger(logger.With("run", run)))
	if err != nil {
		return telemetry.RunSummary{}, err
	}

	game.Reset(core.RuntimeConfig{TickRate: flagFPS, Seed: seed})
	pilot.Reset(seed)
	collector := telemetry.NewCollector(run, flagWindow, flagFPS)

	bestLevel := 1
	gameOver := false
	for range flagFrames {
		res := game.Step(pilot.Steer(game.Observe()))
		if w, ok := collector.Record(game, res); ok {
			if err := out.WriteTelemetry(w); err != nil {
				return telemetry.RunSummary{}, err
			}
		}
		bestLevel = max(bestLevel, game.HUD().Level)
		if res.State.GameOver {
			gameOver = true
			break
		}
	}
	if w, ok := collector.Flush(game); ok {
		if err := out.WriteTelemetry(w); err != nil {
			return telemetry.RunSummary{}, err
		}
	}

	return telemetry.RunSummary{
		Run:      run,
		Pilot:    pilot.ID(),
		Seed:     seed,
		Score:    game.State().Score,
		Level:    bestLevel,
		Frames:   int(game.Tick()), //#nosec G115 -- bounded by --frames
		GameOver: gameOver,
	}, nil
}
