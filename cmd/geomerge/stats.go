package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvendramini/geomerge/internal/storage"
)

var flagRunLimit int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show run history for a world",
	Long: `Display aggregate statistics and recent runs for a world.

Examples:
  geomerge stats
  geomerge stats --world seaside --runs 20`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagRunLimit, "runs", 10, "Number of recent runs to show")
}

func runStats(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening worlds database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.Stats(flagWorld)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("World %q\n", flagWorld)
	fmt.Println()

	if stats.Runs == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'geomerge play --world %s' to record the first run!\n", flagWorld)
		return
	}

	fmt.Printf("Runs: %d  Wins: %d  Best token: %d\n", stats.Runs, stats.Wins, stats.BestHeld)
	fmt.Println()

	runs, err := store.RecentRuns(flagWorld, flagRunLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("  %-6s  %-4s  %-10s  %s\n", "Token", "Won", "Duration", "Date")
	fmt.Printf("  %-6s  %-4s  %-10s  %s\n", "-----", "---", "--------", "----")
	for _, run := range runs {
		won := "no"
		if run.Won {
			won = "yes"
		}
		fmt.Printf("  %-6d  %-4s  %-10s  %s\n",
			run.Held, won,
			fmt.Sprintf("%ds", run.Duration),
			run.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
}
