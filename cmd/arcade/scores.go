package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lights-arcade/internal/games/lightsout"
	"github.com/vovakirdan/lights-arcade/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show best scores and clear history",
	Long: `Without arguments, display the best run of every difficulty.
With a difficulty, also list its most recent clears.

Examples:
  arcade scores
  arcade scores hard
  arcade scores easy --limit 25
  arcade scores reset hard`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

var scoresResetCmd = &cobra.Command{
	Use:   "reset [difficulty]",
	Short: "Forget best scores (all, or one difficulty)",
	Long: `Delete the saved best runs so the next clear sets a fresh record.
Clear history is kept.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScoresReset,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of recent clears to show")
	scoresCmd.AddCommand(scoresResetCmd)
}

// parseDifficultyArg exits on an unknown difficulty.
func parseDifficultyArg(arg string) lightsout.Difficulty {
	d, ok := lightsout.ParseDifficulty(arg)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (want easy, normal or hard)\n", arg)
		os.Exit(1)
	}
	return d
}

func runScoresReset(_ *cobra.Command, args []string) {
	prefix := lightsout.ScoreKeyPrefix
	if len(args) > 0 {
		prefix = lightsout.ScoreKey(parseDifficultyArg(args[0]))
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	n, err := store.ResetScores(prefix)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resetting scores: %v\n", err)
		os.Exit(1)
	}
	logger.Info("best scores reset", "prefix", prefix, "removed", n)
	fmt.Printf("Removed %d best score(s).\n", n)
}

func runScores(_ *cobra.Command, args []string) {
	var only lightsout.Difficulty
	if len(args) > 0 {
		only = parseDifficultyArg(args[0])
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scorer := lightsout.NewScorer(store, lightsout.WithLogger(logger))

	fmt.Println("Best Scores - Lights Out")
	fmt.Println()
	fmt.Printf("  %-8s  %-5s  %-6s  %-6s  %-7s  %s\n", "Level", "Board", "Moves", "Time", "Clears", "Set on")
	fmt.Printf("  %-8s  %-5s  %-6s  %-6s  %-7s  %s\n", "-----", "-----", "-----", "----", "------", "------")

	bests := scorer.LoadAll()
	for _, d := range lightsout.Difficulties() {
		if only != "" && d != only {
			continue
		}
		rows, cols := d.Dimensions()
		board := fmt.Sprintf("%dx%d", rows, cols)

		rec, ok := bests[d]
		if !ok {
			fmt.Printf("  %-8s  %-5s  %-6s  %-6s  %-7s  %s\n", d.Label(), board, "-", "-", "0", "-")
			continue
		}
		fmt.Printf("  %-8s  %-5s  %-6d  %-6s  %-7d  %s\n",
			d.Label(), board, rec.BestMoves, lightsout.FormatTime(rec.BestTimeSeconds),
			rec.ClearCount, rec.AchievedAt.Local().Format("2006-01-02 15:04"))
	}

	if only == "" {
		fmt.Println()
		fmt.Println("Run 'arcade scores <difficulty>' to see recent clears.")
		return
	}

	if err := printHistory(store, only); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving clears: %v\n", err)
		os.Exit(1)
	}
}

// printHistory lists the recent clears and summary statistics of d.
func printHistory(store *storage.Store, d lightsout.Difficulty) error {
	clears, err := store.RecentClears(string(d), flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Recent clears - %s\n", d.Label())
	fmt.Println()

	if len(clears) == 0 {
		fmt.Println("No clears recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play --difficulty %s' to set the first one!\n", d)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-4s  %s\n", "#", "Moves", "Time", "Best", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-4s  %s\n", "-", "-----", "----", "----", "----")
	for i, c := range clears {
		best := ""
		if c.NewBest {
			best = "*"
		}
		fmt.Printf("  %-4d  %-6d  %-6s  %-4s  %s\n",
			i+1, c.Moves, lightsout.FormatTime(c.Seconds), best, c.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	stats, err := store.ClearStats(string(d))
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("%d clears, %.1f moves on average, fastest %s\n",
		stats.Count, stats.AvgMoves, lightsout.FormatTime(stats.BestSeconds))
	return nil
}
