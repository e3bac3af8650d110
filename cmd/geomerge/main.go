// geomerge is a terminal client for a location-based token merging game.
// The world is an infinite lattice of cells seeded deterministically with
// tokens; walk around, pick tokens up, and merge equal values until you
// reach the target.
//
// Usage:
//
//	geomerge play              - Play with button movement
//	geomerge walk <track>      - Replay a recorded route through the world
//	geomerge serve             - Start SSH server for remote play
//	geomerge reset             - Wipe a world's saved progress
//	geomerge stats             - Show run history for a world
//	geomerge worlds            - List, export, or delete saved worlds
//
// Global flags:
//
//	--config <path>  - Custom game config YAML
//	--db <path>      - Database path (default: ~/.geomerge/worlds.db)
//	--world <name>   - World name for persistence (default: "default")
//	--seed <value>   - Override the spawn seed (0 = keep config value)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvendramini/geomerge/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
	flagWorld  string
	flagSeed   uint64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "geomerge",
	Short: "GeoMerge - merge tokens on an infinite lattice",
	Long: `GeoMerge is a terminal take on location-based merge games. Tokens
spawn deterministically across an infinite grid of cells; pick up a
token, carry it to a matching one, and merge your way to the target.

Available commands:
  play     - Play with button movement
  walk     - Replay a recorded route through the world
  serve    - Start SSH server for remote play
  reset    - Wipe a world's saved progress
  stats    - View run history
  worlds   - List, export, or delete saved worlds

Examples:
  geomerge play
  geomerge play --world seaside
  geomerge walk tracks/campus.yaml --jitter 0.3
  geomerge serve --ssh :2222
  geomerge stats --world seaside`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.geomerge/worlds.db", "Path to worlds database")
	rootCmd.PersistentFlags().StringVar(&flagWorld, "world", "default", "World name for saved progress")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "Spawn seed override (0 = use config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(walkCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(worldsCmd)
}

// loadGameConfig loads the layered config and applies the seed override.
func loadGameConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.GameConfig{}, err
	}
	if flagSeed != 0 {
		cfg.Spawn.Seed = flagSeed
	}
	return cfg, nil
}
