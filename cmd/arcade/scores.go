package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/orba-arcade/internal/registry"
)

var flagStats bool

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the leaderboard of the specified game.

With --stats, also show play statistics from the scores database.

Examples:
  arcade scores cyberstrike
  arcade scores zenvoid --store local
  arcade scores prism --stats`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Show play statistics (sqlite store only)")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]
	info, ok := registry.Info(gameID)
	if !ok {
		return fmt.Errorf("%w: %q (run 'arcade list' to see available games)", registry.ErrUnknownGame, gameID)
	}

	e, err := openEnv(false)
	if err != nil {
		return err
	}
	defer e.Close()
	if e.board == nil {
		return errors.New("no leaderboard available")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	entries, err := e.board.Top(ctx, gameID)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "----", "------", "-----", "----")
	for i, entry := range entries {
		dateStr := entry.Time().Local().Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-10d  %s\n", i+1, entry.Player, entry.Score, dateStr)
	}

	if !flagStats {
		return nil
	}
	if e.store == nil {
		return errors.New("--stats needs the sqlite store")
	}
	stats, err := e.store.GetGameStats(gameID)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Games played: %d\n", stats.GamesCount)
	fmt.Printf("Players:      %d\n", stats.Players)
	fmt.Printf("Best:         %d\n", stats.HighScore)
	fmt.Printf("Average:      %.1f\n", stats.AvgScore)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played:  %s\n", stats.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
