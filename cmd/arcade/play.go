package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lights-arcade/internal/games/lightsout"
	"github.com/vovakirdan/lights-arcade/internal/platform/tui"
	"github.com/vovakirdan/lights-arcade/internal/registry"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: lightsout).

Controls:
  Arrows/WASD/HJKL  - Move the cursor
  Space/Enter       - Toggle the cell under the cursor
  Mouse click       - Toggle the clicked cell
  [ / ]             - Previous / next difficulty
  R                 - Reset the board
  Ctrl+S            - Save a text screenshot
  Esc/Q/Ctrl+C      - Quit

Difficulty options:
  easy   - 3x3 board
  normal - 4x4 board
  hard   - 5x5 board

Without --difficulty the saved default from 'arcade settings' is used.

Examples:
  arcade play
  arcade play lightsout --difficulty hard
  arcade play --config ./my-lightsout.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty: easy, normal, hard")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := lightsout.GameID
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	difficulty := flagDifficulty
	if difficulty != "" {
		if _, ok := lightsout.ParseDifficulty(difficulty); !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (want easy, normal or hard)\n", difficulty)
			os.Exit(1)
		}
	}

	svc, err := openServices()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if difficulty == "" {
		difficulty = svc.Settings.Current().Game.Difficulty
	}

	cfg := terminalConfig()
	cfg.Difficulty = difficulty

	game, err := registry.Create(gameID)
	if err != nil {
		svc.Close()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(game, svc, cfg)

	// Close store before potential exit
	svc.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
