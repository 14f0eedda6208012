package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/orba-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Pick a game, then a difficulty. Leaving a finished or paused game
returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Leaderboards
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30 --player ada
  arcade menu --store local`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runMenu(_ *cobra.Command, _ []string) error {
	e, err := openEnv(true)
	if err != nil {
		return err
	}
	defer e.Close()

	return tui.RunSession(runtimeConfig(), e.host(), flagConfig)
}
