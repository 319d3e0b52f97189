package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/turbine-climb/internal/core"
	"github.com/vovakirdan/turbine-climb/internal/platform/tui"
	"github.com/vovakirdan/turbine-climb/internal/registry"
	"github.com/vovakirdan/turbine-climb/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Start a climb",
	Long: `Start climbing right away.

Controls:
  Up/W/K       - Climb (hold)
  Down/S/J     - Climb down (hold)
  Left/Right   - Switch ladder
  R/Enter      - Restart (after the climb ends)
  Esc/B        - Leave (after the climb ends)
  Ctrl+S       - Save a screenshot
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Examples:
  climb play
  climb play --seed 42
  climb play --config ./hard.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

// terminalConfig builds a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database, or returns nil with a warning.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "climb"
	if len(args) > 0 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'climb list' to see available games)", err)
	}

	logger, closeLog, err := newLogger("climb")
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, terminalConfig(), logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
