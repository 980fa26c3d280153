// twocars is a terminal rendition of the classic two-cars arcade game:
// steer two cars across four lanes, catch the circles, dodge the boxes.
//
// Usage:
//
//	twocars play             - Play in the current terminal
//	twocars serve            - Start SSH server for remote play
//	twocars scores           - Show the best recorded rounds
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.twocars/rounds.db)
//	--highscore <path>  - Set highscore file path (default: ~/.twocars/highscore.dat)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagHighscore string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "twocars",
	Short: "Two Cars - a four-lane arcade game in your terminal",
	Long: `Two Cars is a terminal arcade game. You drive two cars at once:
the blue car on the left pair of lanes and the red car on the right
pair. Circles of your car's color must be caught; boxes must be dodged.
One mistake ends the round.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View the best recorded rounds

Examples:
  twocars play
  twocars play --difficulty hard
  twocars serve --ssh :2222
  twocars scores --interactive`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.twocars/rounds.db", "Path to rounds database")
	rootCmd.PersistentFlags().StringVar(&flagHighscore, "highscore", "~/.twocars/highscore.dat", "Path to highscore file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
