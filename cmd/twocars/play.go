package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/twocars/internal/config"
	"github.com/vovakirdan/twocars/internal/core"
	"github.com/vovakirdan/twocars/internal/game"
	"github.com/vovakirdan/twocars/internal/platform/tui"
	"github.com/vovakirdan/twocars/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game session in the current terminal.

Controls:
  A/Left     - Switch the blue car's lane
  D/Right    - Switch the red car's lane
  R          - Restart (after a crash)
  H          - Back to menu (after a crash)
  Esc        - Abandon the round
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slow ramp-up of speed and spawn rate
  normal - Default ramp-up
  hard   - Fast ramp-up
  fixed  - No ramp-up at all

Examples:
  twocars play
  twocars play --difficulty hard
  twocars play --config ./my-tuning.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		preset := config.DifficultyPreset(flagDifficulty)
		switch preset {
		case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
			config.ApplyPreset(&gameCfg, preset)
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
			os.Exit(1)
		}
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open the highscore file
	var hs game.HighscoreStore
	if file, hsErr := storage.NewHighscoreFile(flagHighscore); hsErr == nil {
		hs = file
	} else {
		fmt.Fprintf(os.Stderr, "Warning: could not open highscore file: %v\n", hsErr)
	}

	// Open the round log
	var rounds game.RoundRecorder
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open rounds database: %v\n", err)
		// Continue without storage - game still works
	} else {
		rounds = store
	}

	g := game.New(gameCfg, hs, rounds)
	runErr := tui.Run(g, rt)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
