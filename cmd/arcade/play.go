package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/orba-arcade/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game in this terminal.

Controls:
  Arrows/WASD  - Move or aim
  Space        - Fire / act
  E/X          - Special
  1-4          - Lanes (Echo Realm)
  Enter        - Start
  P            - Pause
  R            - Restart (after game over)
  Esc          - Leave (when paused or over)
  Q/Ctrl+C     - Quit
  Ctrl+S       - Screenshot

Difficulty options:
  easy   - Gentler pacing and more lives
  normal - The tuned defaults
  hard   - Faster pacing and fewer lives
  fixed  - No progression between levels

Examples:
  arcade play cyberstrike
  arcade play zenvoid --difficulty easy
  arcade play prism --config ./my-prism.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) error {
	game, err := createGame(args[0], flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	e, err := openEnv(true)
	if err != nil {
		return err
	}
	defer e.Close()

	if err := tui.Run(game, runtimeConfig(), e.host()); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
