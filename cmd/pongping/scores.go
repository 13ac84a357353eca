package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pongping/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recent sessions",
	Long: `Display the most recent sessions and the points won overall.

Scores always start from zero in a new session; this command only shows
the history of finished ones.

Examples:
  pongping scores
  pongping scores --limit 25`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of sessions to show")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening history database: %w", err)
	}
	defer store.Close()

	sessions, err := store.RecentSessions(flagLimit)
	if err != nil {
		return fmt.Errorf("error retrieving sessions: %w", err)
	}

	fmt.Println("Recent Sessions - Pong Ping")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pongping play' to record the first one!")
		return nil
	}

	// Print header
	fmt.Printf("  %-16s  %-7s  %-6s  %-6s  %-6s  %s\n", "Date", "Backend", "P1", "P2", "Points", "Winner")
	fmt.Printf("  %-16s  %-7s  %-6s  %-6s  %-6s  %s\n", "----", "-------", "--", "--", "------", "------")

	for _, s := range sessions {
		fmt.Printf("  %-16s  %-7s  %-6d  %-6d  %-6d  %s\n",
			s.StartedAt.Format("2006-01-02 15:04"), s.Backend, s.Score1, s.Score2, s.Points, winner(s))
	}

	totals, err := store.Totals()
	if err != nil {
		return fmt.Errorf("error retrieving totals: %w", err)
	}
	fmt.Println()
	fmt.Printf("Sessions: %d  Points: %d  (P1 won %d, P2 won %d)\n",
		totals.Sessions, totals.Points, totals.Player1Won, totals.Player2Won)
	return nil
}

// winner describes who was ahead when the session ended.
func winner(s storage.SessionEntry) string {
	switch {
	case s.EndedAt.IsZero():
		return "in progress"
	case s.Score1 > s.Score2:
		return "P1"
	case s.Score2 > s.Score1:
		return "P2"
	default:
		return "draw"
	}
}
