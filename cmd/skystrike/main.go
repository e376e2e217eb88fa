// skystrike is a terminal space shooter: dodge and destroy descending enemies
// while your score and remaining lives are tracked across the round.
//
// Usage:
//
//	skystrike play           - Play in the current terminal
//	skystrike scores         - Show the high-score table
//	skystrike serve          - Start an SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible rounds
//	--db <path>     - Set database path (default: ~/.skystrike/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skystrike",
	Short: "Sky Strike - a terminal space shooter",
	Long: `Sky Strike is a terminal space shooter. Pilot your craft, fire the
triple cannons, and survive the waves for as long as your three lives last.

Available commands:
  play     - Play in the current terminal
  scores   - View the high-score table
  serve    - Start an SSH server for remote play

Examples:
  skystrike play
  skystrike play --seed 42
  skystrike scores --interactive
  skystrike serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skystrike/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
