// climb runs Turbine Climb in the terminal or over SSH.
//
// Usage:
//
//	climb                    - Climb right away
//	climb play               - Climb right away
//	climb menu               - Start the menu with the climb and high scores
//	climb serve              - Start SSH server for remote play
//	climb scores             - Show recent climbs and stats
//	climb config             - Print or validate a configuration file
//	climb list               - List available games
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.turbine-climb/scores.db)
//	--config <path>     - Load a YAML or TOML climb config
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//	--log-file <path>   - Write logs to a file; logs are discarded otherwise
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/turbine-climb/internal/config"
	// Registers the climb game
	"github.com/vovakirdan/turbine-climb/internal/games/climb"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "climb",
	Short: "Turbine Climb - climb a wind turbine in your terminal",
	Long: `Turbine Climb is a terminal game: climb the ladders of a wind turbine
to the top while dodging falling and flying birds.

Hold Up to climb, switch ladders with Left/Right. Three hits and you fall.

Available commands:
  play     - Start a climb directly (default)
  menu     - Menu with the climb and high scores
  serve    - Start SSH server for remote play
  scores   - View recent climbs
  config   - Print or validate configuration
  list     - Show available games

Examples:
  climb
  climb play --seed 42
  climb menu
  climb serve --ssh :2222
  climb scores --limit 20
  climb config > climb.yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return useConfig(flagConfig)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runPlay(cmd, nil)
	},
}

// useConfig checks a --config file up front and hands it to the game.
// The game itself falls back to defaults, so a broken file would otherwise
// go unnoticed.
func useConfig(path string) error {
	if path != "" {
		if _, err := config.LoadClimb(path); err != nil {
			return err
		}
	}
	climb.SetConfigPath(path)
	return nil
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.turbine-climb/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a climb config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
