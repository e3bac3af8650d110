package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vvendramini/geomerge/internal/config"
	"github.com/vvendramini/geomerge/internal/platform/tui"
	"github.com/vvendramini/geomerge/internal/session"
	"github.com/vvendramini/geomerge/internal/storage"
	"github.com/vvendramini/geomerge/internal/world"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play with button movement",
	Long: `Start an interactive session moving with directional keys.

Controls:
  Arrows/WASD - Walk north, south, east, west
  H/J/K/L     - Aim the interaction cursor
  Enter/Space - Pick up or merge at the cursor
  R           - Reset the world
  M           - Toggle walk mode (when a track is loaded)
  Q/Ctrl+C    - Quit

Examples:
  geomerge play
  geomerge play --world seaside --seed 99
  geomerge play --config ./my-world.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Probe the terminal early so tiny windows fail fast.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		side := 2*cfg.World.NeighborhoodRadius + 1
		if h < side+4 || w < side*5 {
			fmt.Fprintf(os.Stderr, "Terminal too small: need at least %dx%d\n", side*5, side+4)
			os.Exit(1)
		}
	}

	runSession(cfg, tui.Options{})
}

// runSession wires storage, the world store, and the session together,
// then hands control to the UI. Shared by play and walk.
func runSession(cfg config.GameConfig, opts tui.Options) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "geomerge"})
	opts.Logger = logger

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open worlds database: %v\n", err)
		// Continue without storage, progress just won't survive
		store = nil
	}

	cells := world.New(cfg.Policy(), cfg.Generator())
	sess := session.New(cfg, cells)
	if store != nil && cfg.Policy() == world.PolicyMemoryful {
		sess.AttachPersister(store.World(flagWorld, logger))
		sess.Restore()
	}

	opts.OnFinish = func(held int, won bool, elapsed time.Duration) {
		if store == nil {
			return
		}
		if _, saveErr := store.SaveRun(flagWorld, held, won, int(elapsed.Seconds())); saveErr != nil {
			logger.Warn("could not save run", "world", flagWorld, "error", saveErr)
		}
	}

	runErr := tui.Run(sess, opts)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", runErr)
		os.Exit(1)
	}
}
