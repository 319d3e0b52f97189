package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/turbine-climb/internal/registry"
	"github.com/vovakirdan/turbine-climb/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show recent climbs and stats",
	Long: `Display the most recent climbs and overall stats.

Examples:
  climb scores
  climb scores --limit 25`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of climbs to show")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := "climb"
	if len(args) > 0 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'climb list' to see available games)", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	climbs, err := store.RecentClimbs(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("error retrieving climbs: %w", err)
	}

	fmt.Printf("Recent climbs - %s\n", game.Title())
	fmt.Println()

	if len(climbs) == 0 {
		fmt.Println("No climbs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'climb play %s' to set the first high score!\n", gameID)
		return nil
	}

	printClimbs(climbs)

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return fmt.Errorf("error retrieving stats: %w", err)
	}
	fmt.Println()
	fmt.Printf("Climbs: %d  Summits: %d  Best: %d  Avg: %.0f\n",
		stats.GamesCount, stats.Wins, stats.HighScore, stats.AvgScore)
	if stats.FastestWin > 0 {
		fmt.Printf("Fastest summit: %s\n", stats.FastestWin.Round(100*time.Millisecond))
	}
	return nil
}

func printClimbs(climbs []storage.ClimbRecord) {
	fmt.Printf("  %-3s  %-6s  %-7s  %-9s  %-5s  %-8s  %s\n",
		"#", "Result", "Score", "Height", "Lives", "Time", "Date")
	fmt.Printf("  %-3s  %-6s  %-7s  %-9s  %-5s  %-8s  %s\n",
		"-", "------", "-----", "------", "-----", "----", "----")

	for i, c := range climbs {
		result := "fell"
		if c.Outcome == "won" {
			result = "summit"
		}
		fmt.Printf("  %-3d  %-6s  %-7d  %-9s  %-5d  %-8s  %s\n",
			i+1,
			result,
			c.Score,
			fmt.Sprintf("%.1f ft", c.HeightRemaining),
			c.Lives,
			c.Elapsed.Round(100*time.Millisecond),
			c.CreatedAt.Local().Format("2006-01-02 15:04"),
		)
	}
}
