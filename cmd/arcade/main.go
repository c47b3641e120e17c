// arcade is a terminal arcade built around the Lights Out puzzle.
//
// Usage:
//
//	arcade list                 - List available games
//	arcade play [game]          - Play a game (default: lightsout)
//	arcade menu                 - Start menu to pick games interactively
//	arcade serve                - Start SSH server for remote play
//	arcade scores [difficulty]  - Show best scores and clear history
//	arcade settings             - Show or reset saved settings
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--log-level <level>   - debug, info, warn or error (default: warn)
//	--settings-app <name> - Data directory name for saved settings
//	--config <path>       - Custom Lights Out config YAML
//
// ARCADE_DB and ARCADE_LOG_LEVEL override the defaults of --db and
// --log-level, and may be set in a .env file.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/lights-arcade/internal/games/lightsout"
)

var (
	// Global flags
	flagFPS         int
	flagDBPath      string
	flagLogLevel    string
	flagSettingsApp string
	flagConfig      string
)

// logger is the root logger, configured before any command runs.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "arcade",
	Level:           log.WarnLevel,
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Lights Arcade - Uncover pictures in your terminal",
	Long: `Lights Arcade is a terminal puzzle game. Toggle a cell to flip it and
its neighbours; reveal every cell to uncover the hidden picture.

Available commands:
  list      - Show all available games
  play      - Play a game directly
  menu      - Interactive menu with scores, gallery and settings
  serve     - Start SSH server for remote play
  scores    - View best scores and clear history
  settings  - Show or reset saved settings

Examples:
  arcade play
  arcade play lightsout --difficulty hard
  arcade menu
  arcade serve --ssh :2222
  arcade scores easy`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		return nil
	},
}

// envOr returns the environment value of key, or def when unset.
func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func init() {
	// A missing .env is fine; it only supplies defaults.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: could not read .env: %v\n", err)
	}

	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", envOr("ARCADE_DB", "~/.arcade/scores.db"), "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", envOr("ARCADE_LOG_LEVEL", "warn"), "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagSettingsApp, "settings-app", "lights_arcade", "Data directory name for saved settings")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom Lights Out config YAML")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(settingsCmd)
}
