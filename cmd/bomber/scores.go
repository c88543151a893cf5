package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bomb-arcade/internal/registry"
	"github.com/vovakirdan/bomb-arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresAll   bool
	flagScoresRun   string
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores for a variant",
	Long: `Display the top high scores for a variant (default: bomber).

Examples:
  bomber scores
  bomber scores bomber_classic --limit 25
  bomber scores --all
  bomber scores --run 4f1c2e0a-...
  bomber scores bomber --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every recorded run, newest first")
	scoresCmd.Flags().StringVar(&flagScoresRun, "run", "", "Show the score of a single run ID")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the variant")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := "bomber"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'bomber list' to see available variants.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		appLogger.Info("scores cleared", "game", gameID)
		fmt.Printf("Cleared all scores for %s.\n", title)
		return

	case flagScoresRun != "":
		rec, err := store.ScoreByRun(flagScoresRun)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving run: %v\n", err)
			return
		}
		if rec == nil {
			fmt.Printf("No score recorded for run %s.\n", flagScoresRun)
			return
		}
		printScores(title, []storage.ScoreRecord{*rec})
		return
	}

	var scores []storage.ScoreRecord
	if flagScoresAll {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	if len(scores) == 0 {
		fmt.Printf("High Scores - %s\n\n", title)
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'bomber play %s' to set the first high score!\n", gameID)
		return
	}

	printScores(title, scores)

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		appLogger.Warn("could not load stats", "game", gameID, "error", err)
		return
	}
	fmt.Println()
	fmt.Printf("Best: %d  Best level: %d  Games: %d  Average: %.0f\n",
		stats.HighScore, stats.BestLevel, stats.GamesCount, stats.AvgScore)
}

func printScores(title string, scores []storage.ScoreRecord) {
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	fmt.Printf("  %-4s  %-8s  %-5s  %-12s  %-16s  %s\n", "Rank", "Score", "Level", "Player", "Date", "Run")
	fmt.Printf("  %-4s  %-8s  %-5s  %-12s  %-16s  %s\n", "----", "-----", "-----", "------", "----", "---")

	for i, rec := range scores {
		player := rec.Player
		if player == "" {
			player = "-"
		}
		run := rec.RunID
		if len(run) > 8 {
			run = run[:8]
		}
		fmt.Printf("  %-4d  %-8d  %-5d  %-12s  %-16s  %s\n",
			i+1, rec.Score, rec.Level, player, rec.CreatedAt.Format("2006-01-02 15:04"), run)
	}
}
