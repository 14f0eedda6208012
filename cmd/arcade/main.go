// arcade is an arcade portal of real-time mini-games for the terminal, SSH
// and a desktop window.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game in the terminal
//	arcade menu              - Start menu to pick games interactively
//	arcade window <game>     - Play a game in a desktop window
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show the leaderboard of a game
//	arcade whoami            - Show or set the player name
//	arcade sim <game>        - Run a headless deterministic session
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default: ~/.arcade/scores.db)
//	--store <kind>    - Leaderboard backend: sqlite or local
//	--player <name>   - Play under this name (stored for later runs)
//	--log <path>      - Write logs to a file
//	--verbose         - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagStore   string
	flagPlayer  string
	flagLogPath string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Orba Arcade - real-time mini-games in your terminal",
	Long: `Orba Arcade is a portal of short real-time games: shooters, rhythm,
stacking, swinging, infiltration, alignment and deduction.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View the leaderboard
  whoami   - Show or set the player name
  sim      - Headless deterministic run

Examples:
  arcade list
  arcade play solarflare
  arcade menu --player ada
  arcade window echorealm
  arcade serve --ssh :2222
  arcade scores zenvoid`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", storeSQLite, "Leaderboard backend: sqlite or local")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Player name for submitted scores (remembered)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log at debug level")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(simCmd)
}
