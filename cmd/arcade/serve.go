package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lights-arcade/internal/platform/jobs"
	"github.com/vovakirdan/lights-arcade/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagPruneEvery  time.Duration
	flagRetainDays  int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the arcade SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets their own session with the arcade menu.
Scores and settings are stored per-server (all users share them).
While serving, clear history older than --retain-days is pruned
every --prune-every. Best scores are never pruned.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  arcade serve                           # Listen on :23234 with auto-generated key
  arcade serve --ssh :2222               # Listen on port 2222
  arcade serve --host-key ./my_host_key  # Use specific host key
  arcade serve --retain-days 30          # Keep a month of history

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	def := jobs.DefaultPruneConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().DurationVar(&flagPruneEvery, "prune-every", def.Every, "How often to prune old clear history")
	serveCmd.Flags().IntVar(&flagRetainDays, "retain-days", int(def.Retain/(24*time.Hour)), "Days of clear history to keep (0 disables pruning)")
}

func runServe(_ *cobra.Command, _ []string) {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// serve runs the SSH server until interrupted. Deferred cleanup runs before
// the caller exits.
func serve() error {
	svc, err := openServices()
	if err != nil {
		return err
	}
	defer svc.Close()

	if svc.Store != nil && flagRetainDays > 0 {
		sched, err := jobs.StartPruner(svc.Store, jobs.PruneConfig{
			Every:  flagPruneEvery,
			Retain: time.Duration(flagRetainDays) * 24 * time.Hour,
		}, logger)
		if err != nil {
			logger.Warn("clear history will not be pruned", "error", err)
		} else {
			defer func() {
				if err := sched.Shutdown(); err != nil {
					logger.Warn("could not stop pruner", "error", err)
				}
			}()
		}
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS

	server, err := tui.NewSSHServer(cfg, svc)
	if err != nil {
		return err
	}

	fmt.Printf("Starting arcade SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
