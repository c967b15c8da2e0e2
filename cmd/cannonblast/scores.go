package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/core"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/storage"
)

var (
	flagScoresMode   string
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs and the infinite high score",
	Long: `Display the best recorded runs of a mode, or the most recent runs of
every mode with --recent.

Examples:
  cannonblast scores
  cannonblast scores --mode infinite --limit 20
  cannonblast scores --recent
  cannonblast scores --mode campaign --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresMode, "mode", "campaign", "campaign or infinite")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the latest runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the recorded runs of --mode")
}

func runScores(_ *cobra.Command, _ []string) error {
	mode, err := core.ParseMode(flagScoresMode)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(mode.String()); err != nil {
			return err
		}
		fmt.Printf("Cleared %s runs.\n", mode)
		return nil
	}

	hs, err := store.HighScore()
	if err != nil {
		return err
	}
	fmt.Printf("Infinite high score: %d\n\n", hs)

	var runs []storage.Run
	if flagScoresRecent {
		fmt.Println("Recent runs")
		runs, err = store.RecentRuns(flagScoresLimit)
	} else {
		fmt.Printf("Best %s runs\n", mode)
		runs, err = store.BestRuns(mode.String(), flagScoresLimit)
	}
	if err != nil {
		return err
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'cannonblast play' to record the first one!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-7s  %-5s  %-6s  %s\n", "Rank", "Mode", "Stage", "Score", "Stars", "Result", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-7s  %-5s  %-6s  %s\n", "----", "----", "-----", "-----", "-----", "------", "----")
	for i, r := range runs {
		stage := fmt.Sprintf("L%d", r.Level)
		if r.Mode == core.ModeInfinite.String() {
			stage = fmt.Sprintf("R%d", r.Round)
		}
		fmt.Printf("  %-4d  %-8s  %-6s  %-7d  %-5d  %-6s  %s\n",
			i+1, r.Mode, stage, r.Score, r.Stars, r.Outcome, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(mode.String()); err == nil && stats.Runs > 0 {
		fmt.Println()
		fmt.Printf("%s: %d runs, best %d, average %.0f, last played %s\n",
			mode, stats.Runs, stats.Best, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
