package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/aquarium/internal/registry"
	"github.com/vovakirdan/aquarium/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [pilot]",
	Short: "Show best runs and pilot statistics",
	Long: `Display the top 10 runs, either of one pilot or of all pilots,
followed by aggregated statistics.

Examples:
  aquarium scores
  aquarium scores greedy`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	pilot := ""
	if len(args) == 1 {
		pilot = args[0]
		if !registry.Exists(pilot) {
			fmt.Fprintf(os.Stderr, "Error: unknown pilot %q\n", pilot)
			fmt.Fprintln(os.Stderr, "Run 'aquarium pilots' to see available pilots.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(pilot, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if pilot == "" {
		fmt.Println("Best Runs - all pilots")
	} else {
		fmt.Printf("Best Runs - %s\n", pilot)
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'aquarium simulate' to record the first one!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-5s  %-8s  %-10s  %s\n", "Rank", "Pilot", "Score", "Level", "Frames", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-5s  %-8s  %-10s  %s\n", "----", "-----", "-----", "-----", "------", "----------", "----")
	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8s  %-6d  %-5d  %-8d  %-10s  %s\n", i+1, r.Pilot, r.Score, r.Level, r.Frames, r.Difficulty, dateStr)
	}

	all, err := store.GetAllPilotStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		if pilot == "" || id == pilot {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	fmt.Println()
	fmt.Printf("  %-8s  %-5s  %-6s  %-7s  %-10s  %s\n", "Pilot", "Runs", "Best", "Average", "Best Level", "Game Overs")
	fmt.Printf("  %-8s  %-5s  %-6s  %-7s  %-10s  %s\n", "-----", "----", "----", "-------", "----------", "----------")
	for _, id := range ids {
		s := all[id]
		fmt.Printf("  %-8s  %-5d  %-6d  %-7.1f  %-10d  %d\n", s.Pilot, s.Runs, s.HighScore, s.AvgScore, s.BestLevel, s.GameOvers)
	}
}
