// aquarium runs the "eat or be eaten" tank simulation headless, driven by autopilots.
//
// Usage:
//
//	aquarium simulate          - Run the simulation with an autopilot
//	aquarium levels            - Show the level table
//	aquarium pilots            - List available autopilots
//	aquarium scores [pilot]    - Show best runs and pilot statistics
//
// Global flags:
//
//	--fps <rate>            - Set tick rate (default: 60)
//	--seed <value>          - Set RNG seed for reproducible runs
//	--db <path>             - Set database path (default: $XDG_DATA_HOME/aquarium/scores.db)
//	--config <path>         - Load the aquarium configuration from a file
//	--difficulty <preset>   - easy, normal or hard
//	--log-level <level>     - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/aquarium/internal/config"

	// Import pilots to register them
	_ "github.com/vovakirdan/aquarium/internal/pilots"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "aquarium",
	Short: "Aquarium - an eat or be eaten tank simulation",
	Long: `Aquarium simulates a tank where a player fish eats smaller creatures,
avoids bigger ones and grows through waves of increasingly dangerous levels.

Available commands:
  simulate - Run the simulation with an autopilot
  levels   - Show the level table
  pilots   - List available autopilots
  scores   - View best runs

Examples:
  aquarium simulate --pilot greedy --runs 10
  aquarium simulate --difficulty hard --telemetry out/
  aquarium levels
  aquarium scores greedy`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", filepath.Join(xdg.DataHome, "aquarium", "scores.db"), "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to aquarium config (YAML)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(pilotsCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the diagnostics logger from --log-level.
func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "aquarium",
		Level:           level,
	}), nil
}

// loadConfig resolves --config and applies --difficulty.
func loadConfig() (config.AquariumConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.AquariumConfig{}, "", err
	}
	cfg, err := config.LoadAquarium(flagConfig)
	if err != nil {
		return config.AquariumConfig{}, "", err
	}
	config.ApplyAquariumPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.AquariumConfig{}, "", err
	}
	return cfg, preset, nil
}

// baseSeed returns --seed, or a time-based seed when it is 0.
func baseSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
