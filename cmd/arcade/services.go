package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/lights-arcade/internal/config"
	"github.com/vovakirdan/lights-arcade/internal/core"
	"github.com/vovakirdan/lights-arcade/internal/platform/tui"
	"github.com/vovakirdan/lights-arcade/internal/settings"
	"github.com/vovakirdan/lights-arcade/internal/storage"
)

// openServices opens the scores database, settings and game config. Only a
// broken config file is fatal; the others degrade to in-memory state.
func openServices() (*tui.Services, error) {
	gameCfg, err := config.LoadLightsOut(flagConfig)
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	st, err := settings.Open(flagSettingsApp, logger)
	if err != nil {
		logger.Warn("settings will not be saved", "error", err)
		st = settings.New(nil, logger)
	}

	return tui.NewServices(store, st, gameCfg, logger), nil
}

// terminalConfig returns a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	return cfg.Normalize()
}
