package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryPlain bool
	flagHistoryID    string
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded matches",
	Long: `Display the most recent matches from the history database.

By default the matches are shown in a scrollable table; --plain prints
them as text, which is handy for piping.

Examples:
  pong history
  pong history --limit 50
  pong history --plain
  pong history --id 3f2a9c1e-...      # Show one match
  pong history --clear                # Delete every recorded match`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Maximum number of matches to show")
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print plain text instead of the interactive table")
	historyCmd.Flags().StringVar(&flagHistoryID, "id", "", "Show a single match by its ID")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded matches")
	historyCmd.MarkFlagsMutuallyExclusive("id", "clear")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearMatches(); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error clearing match history: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Match history cleared.")
		return
	}

	if flagHistoryID != "" {
		m, err := store.MatchByID(flagHistoryID)
		if err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error retrieving match: %v\n", err)
			os.Exit(1)
		}
		if m == nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "No match with ID %q\n", flagHistoryID)
			os.Exit(1)
		}
		printMatch(*m)
		return
	}

	if !flagHistoryPlain {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunHistory(store, flagHistoryLimit, width, height); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error showing history: %v\n", err)
			os.Exit(1)
		}
		return
	}

	matches, err := store.RecentMatches(flagHistoryLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Match History")
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Run 'pong' to play the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-12s  %-7s  %-12s  %-12s  %5s  %8s  %s\n",
		"Date", "Player 1", "Score", "Player 2", "Winner", "Rally", "Time", "Source")
	fmt.Printf("  %-16s  %-12s  %-7s  %-12s  %-12s  %5s  %8s  %s\n",
		"----", "--------", "-----", "--------", "------", "-----", "----", "------")

	for _, m := range matches {
		fmt.Printf("  %-16s  %-12s  %-7s  %-12s  %-12s  %5d  %8s  %s\n",
			m.CreatedAt.Local().Format("2006-01-02 15:04"),
			m.Player1,
			fmt.Sprintf("%d - %d", m.Score1, m.Score2),
			m.Player2,
			m.Winner(),
			m.LongestRally,
			m.Duration.Round(time.Second),
			m.Source,
		)
	}

	// Show totals
	stats, err := store.Stats()
	if err == nil && stats.Matches > 0 {
		fmt.Println()
		fmt.Printf("  %s\n", tui.FormatStats(*stats))
	}
}

func printMatch(m storage.Match) {
	fmt.Printf("ID:            %s\n", m.ID)
	fmt.Printf("Date:          %s\n", m.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("Players:       %s vs %s\n", m.Player1, m.Player2)
	fmt.Printf("Score:         %d - %d\n", m.Score1, m.Score2)
	fmt.Printf("Winner:        %s\n", m.Winner())
	fmt.Printf("Ticks:         %d (%s)\n", m.Ticks, m.Duration.Round(time.Millisecond))
	fmt.Printf("Longest rally: %d\n", m.LongestRally)
	fmt.Printf("Source:        %s\n", m.Source)
}
