package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/lights-arcade/internal/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show saved settings and progress",
	Long: `Print the saved settings and progress as YAML.

Examples:
  arcade settings
  arcade settings reset`,
	Args: cobra.NoArgs,
	Run:  runSettingsShow,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings and clear progress",
	Args:  cobra.NoArgs,
	Run:   runSettingsReset,
}

func init() {
	settingsCmd.AddCommand(settingsResetCmd)
}

func openSettings() *settings.Store {
	st, err := settings.Open(flagSettingsApp, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening settings: %v\n", err)
		os.Exit(1)
	}
	return st
}

func runSettingsShow(_ *cobra.Command, _ []string) {
	data, err := yaml.Marshal(openSettings().Current())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}

func runSettingsReset(_ *cobra.Command, _ []string) {
	if err := openSettings().Reset(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Settings restored to defaults.")
}
