package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/orba-arcade/internal/platform/desktop"
)

var (
	flagCols int
	flagRows int
	flagZoom float64
)

var windowCmd = &cobra.Command{
	Use:   "window <game>",
	Short: "Play a game in a desktop window",
	Long: `Open a desktop window and play the specified game there.

The window draws the same character screen as the terminal, but keys are
tracked as real presses and releases and the mouse moves a cursor.

Examples:
  arcade window echorealm
  arcade window gravitywell --zoom 2
  arcade window nebula --cols 120 --rows 40 --difficulty hard`,
	Args: cobra.ExactArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagCols, "cols", 100, "Screen width in characters")
	windowCmd.Flags().IntVar(&flagRows, "rows", 36, "Screen height in characters")
	windowCmd.Flags().Float64Var(&flagZoom, "zoom", 1.5, "Window scale")
	windowCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	windowCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runWindow(_ *cobra.Command, args []string) error {
	game, err := createGame(args[0], flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	e, err := openEnv(false)
	if err != nil {
		return err
	}
	defer e.Close()

	return desktop.Run(game, desktop.Config{
		Cols: flagCols,
		Rows: flagRows,
		Zoom: flagZoom,
		Seed: flagSeed,
		Host: e.host(),
	})
}
