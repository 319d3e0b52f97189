package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/turbine-climb/internal/config"
)

var flagValidate string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config or validate a config file",
	Long: `Print the built-in climb configuration as YAML, or check a file.

A config file only needs the values it changes. Files ending in .toml are
read as TOML, everything else as YAML.

Examples:
  climb config > ~/.turbine-climb/configs/climb.yaml
  climb config --validate ./hard.toml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagValidate, "validate", "", "Validate this config file and exit")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagValidate == "" {
		_, err := os.Stdout.Write(config.GetDefaultYAML("climb"))
		return err
	}

	cfg, err := config.LoadClimb(flagValidate)
	if err != nil {
		return err
	}
	fmt.Printf("%s: ok (%d lanes, %.0f ft in %.0f s)\n",
		flagValidate, len(cfg.Lanes), cfg.Progress.StartingHeight, cfg.Progress.ClimbDurationMs/1000)
	return nil
}
