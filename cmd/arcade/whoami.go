package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/orba-arcade/internal/profile"
)

var flagSetName string

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show or set the player name",
	Long: `Print the name scores are submitted under.

The name is kept in the per-user save area and survives restarts. Empty
or blank names fall back to "` + profile.DefaultName + `".

Examples:
  arcade whoami
  arcade whoami --set ada`,
	RunE: runWhoami,
}

func init() {
	whoamiCmd.Flags().StringVar(&flagSetName, "set", "", "Store a new player name")
}

func runWhoami(cmd *cobra.Command, _ []string) error {
	e, err := openEnv(false)
	if err != nil {
		return err
	}
	defer e.Close()

	if cmd.Flags().Changed("set") {
		if err := profile.Save(e.kv, flagSetName); err != nil {
			return fmt.Errorf("cannot store player name: %w", err)
		}
		e.player = profile.Load(e.kv)
	}
	fmt.Println(e.player)
	return nil
}
