package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvendramini/geomerge/internal/storage"
	"github.com/vvendramini/geomerge/internal/world"
)

var worldsCmd = &cobra.Command{
	Use:   "worlds",
	Short: "List, export, or delete saved worlds",
	Long: `Manage the worlds stored in the database.

Examples:
  geomerge worlds
  geomerge worlds export seaside > seaside.yaml
  geomerge worlds delete seaside`,
	Args: cobra.NoArgs,
	Run:  runWorldsList,
}

var worldsExportCmd = &cobra.Command{
	Use:   "export <world>",
	Short: "Dump a world's snapshot as YAML",
	Args:  cobra.ExactArgs(1),
	Run:   runWorldsExport,
}

var worldsDeleteCmd = &cobra.Command{
	Use:   "delete <world>",
	Short: "Delete a world's snapshot and run history",
	Args:  cobra.ExactArgs(1),
	Run:   runWorldsDelete,
}

func init() {
	worldsCmd.AddCommand(worldsExportCmd)
	worldsCmd.AddCommand(worldsDeleteCmd)
}

func openWorldsStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening worlds database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runWorldsList(_ *cobra.Command, _ []string) {
	store := openWorldsStore()
	defer store.Close()

	names, err := store.WorldNames()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing worlds: %v\n", err)
		os.Exit(1)
	}

	if len(names) == 0 {
		fmt.Println("No saved worlds.")
		return
	}
	for _, name := range names {
		fmt.Println(name)
	}
}

func runWorldsExport(_ *cobra.Command, args []string) {
	store := openWorldsStore()
	defer store.Close()

	cells, err := store.LoadSnapshot(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading world %q: %v\n", args[0], err)
		os.Exit(1)
	}

	snap := world.NewSnapshot()
	for key, cell := range cells {
		snap.Cells[key] = world.CellState{Value: cell.Value, Collected: cell.Collected}
	}

	data, err := snap.EncodeYAML()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding world %q: %v\n", args[0], err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}

func runWorldsDelete(_ *cobra.Command, args []string) {
	store := openWorldsStore()
	defer store.Close()

	if err := store.DeleteWorld(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting world %q: %v\n", args[0], err)
		os.Exit(1)
	}
	fmt.Printf("World %q deleted.\n", args[0])
}
