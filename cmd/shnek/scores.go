package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shnek/internal/game"
	"github.com/vovakirdan/shnek/internal/storage"
)

var (
	flagScoresPilot string
	flagScoresLimit int
	flagScoresStats bool
	flagScoresClear bool
	flagScoresAll   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores saved by 'shnek sim --save'.

Examples:
  shnek scores
  shnek scores --pilot greedy --limit 5
  shnek scores --all
  shnek scores --stats
  shnek scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresPilot, "pilot", "", "Only show scores of this pilot")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show per-pilot statistics")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every saved score, ignoring --limit")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all saved scores")
}

func runScores(cmd *cobra.Command, args []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearScores(game.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
	case flagScoresStats:
		if err := printStats(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
			os.Exit(1)
		}
	default:
		if err := printTopScores(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			os.Exit(1)
		}
	}
}

// loadScores picks the score listing for the given filters. all ignores limit.
func loadScores(store *storage.Store, pilot string, limit int, all bool) ([]storage.ScoreEntry, error) {
	if !all {
		if pilot != "" {
			return store.TopScoresByPilot(game.ID, pilot, limit)
		}
		return store.TopScores(game.ID, limit)
	}

	scores, err := store.AllScores(game.ID)
	if err != nil || pilot == "" {
		return scores, err
	}
	filtered := scores[:0]
	for _, e := range scores {
		if e.Pilot == pilot {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

func printTopScores(store *storage.Store) error {
	scores, err := loadScores(store, flagScoresPilot, flagScoresLimit, flagScoresAll)
	if err != nil {
		return err
	}

	fmt.Println(render(titleStyle, "High Scores - Shnek"))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println(render(hintStyle, "Run 'shnek sim --save' to set the first high score!"))
		return nil
	}

	t := newTable("Rank", "Score", "Length", "Pilot", "Time", "Ended by", "Seed", "Date")
	for i, e := range scores {
		cause := e.Cause
		if cause == "" {
			cause = "time limit"
		}
		t.Row(
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", e.Score),
			fmt.Sprintf("%d", e.Length),
			e.Pilot,
			fmt.Sprintf("%.1fs", e.Duration),
			cause,
			fmt.Sprintf("%d", e.Seed),
			e.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	fmt.Println(t)

	// Show high score
	fmt.Println()
	if high, err := store.HighScore(game.ID); err == nil {
		fmt.Printf("Best: %s\n", render(goodStyle, fmt.Sprintf("%d", high)))
	}
	return nil
}

func printStats(store *storage.Store) error {
	total, err := store.GetGameStats(game.ID)
	if err != nil {
		return err
	}
	pilots, err := store.GetPilotStats(game.ID)
	if err != nil {
		return err
	}

	fmt.Println(render(titleStyle, "Statistics - Shnek"))
	fmt.Println()

	if total.RunsCount == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(pilots))
	for id := range pilots {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	t := newTable("Pilot", "Runs", "Best", "Average", "Longest", "Last run")
	row := func(name string, st *storage.GameStats) {
		t.Row(
			name,
			fmt.Sprintf("%d", st.RunsCount),
			fmt.Sprintf("%d", st.HighScore),
			fmt.Sprintf("%.1f", st.AvgScore),
			fmt.Sprintf("%.1fs", st.LongestRun),
			st.LastPlayed.Format("2006-01-02 15:04"),
		)
	}
	for _, id := range ids {
		row(id, pilots[id])
	}
	row("all", total)
	fmt.Println(t)
	return nil
}
