package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/aquarium/internal/config"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the level table",
	Long: `Print every level of the active configuration: target score, wave
interval, wave compositions and steady-state population.

The --config and --difficulty flags are applied before printing.`,
	Run: runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	cfg, preset, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Levels (%s)\n", preset)
	for i, lvl := range cfg.Levels {
		fmt.Println()
		title := lvl.Description
		if title == "" {
			title = fmt.Sprintf("Level %d", i+1)
		}
		fmt.Println(title)
		fmt.Printf("  target score:  %d\n", lvl.TargetScore)
		fmt.Printf("  wave interval: %gs\n", lvl.WaveInterval)
		for w, wave := range lvl.Waves {
			fmt.Printf("  wave %d:        %s\n", w+1, formatWave(wave))
		}
		fmt.Printf("  population:    %s\n", formatPopulation(lvl.Population))
	}
}

func formatWave(wave []config.SpawnGroup) string {
	parts := make([]string, 0, len(wave))
	for _, g := range wave {
		parts = append(parts, fmt.Sprintf("%d %s", g.Count, g.Kind))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}

func formatPopulation(pop []config.PopulationConfig) string {
	parts := make([]string, 0, len(pop))
	for _, p := range pop {
		parts = append(parts, fmt.Sprintf("%s x%d", p.Kind, p.Target))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}
