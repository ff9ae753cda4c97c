package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagScoresLimit int
	flagStats       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show high scores for a variant",
	Long: `Display the best runs for the given variant.

Examples:
  tetris scores tetris
  tetris scores tetris_wide --limit 20
  tetris scores tetris --stats`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Also show totals for the variant")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'tetris list' to see the variants", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n\n", game.Title())

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tetris play %s' to set the first high score!\n", gameID)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Rank\tScore\tLines\tWhen")
	fmt.Fprintln(w, "  ----\t-----\t-----\t----")
	for i, r := range runs {
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s\n", i+1, humanize.Comma(int64(r.Score)), humanize.Comma(int64(r.Lines)), humanize.Time(r.CreatedAt))
	}
	w.Flush()

	if !flagStats {
		return nil
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Games:       %s\n", humanize.Comma(int64(stats.GamesCount)))
	fmt.Printf("Best:        %s\n", humanize.Comma(int64(stats.HighScore)))
	fmt.Printf("Average:     %s\n", humanize.CommafWithDigits(stats.AvgScore, 1))
	fmt.Printf("Total lines: %s\n", humanize.Comma(stats.TotalLines))
	fmt.Printf("Last played: %s\n", humanize.Time(stats.LastPlayed))
	return nil
}
