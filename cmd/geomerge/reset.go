package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvendramini/geomerge/internal/storage"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe a world's saved progress",
	Long: `Delete the saved cell snapshot for a world. The spawn layout is
deterministic, so the next session regenerates the same tokens with
nothing collected. Run history is kept; use 'worlds delete' to remove
a world entirely.

Examples:
  geomerge reset
  geomerge reset --world seaside`,
	Args: cobra.NoArgs,
	Run:  runReset,
}

func runReset(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening worlds database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.ClearSnapshot(flagWorld); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing world %q: %v\n", flagWorld, err)
		os.Exit(1)
	}

	fmt.Printf("World %q reset.\n", flagWorld)
}
