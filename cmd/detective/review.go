package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"detective/internal/config"
	"detective/internal/errors"
	"detective/internal/logging"
)

var errNoJournal = errors.NewSentinel("no journal configured, set DETECTIVE_JOURNAL")

func newReviewCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Show the most recent verdicts from the journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(os.LookupEnv)
			if err != nil {
				return err
			}
			if cfg.Journal == "" {
				return errNoJournal
			}

			journal, err := logging.NewJournal(cfg.Journal)
			if err != nil {
				return err
			}
			defer journal.Close()

			entries, err := journal.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return printEntries(cmd.OutOrStdout(), entries)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "number of verdicts to show")

	return cmd
}

func printEntries(w io.Writer, entries []logging.JournalEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No verdicts found. Play the game first to generate data!")
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Recent verdicts (%d):\n\n", len(entries))
	for _, e := range entries {
		fmt.Fprintf(&b, "[%d] %s | %s | %s (%d)\n",
			e.ID, e.Timestamp.Local().Format("2006-01-02 15:04:05"), e.Accused, e.Verdict, e.Votes)
		fmt.Fprintf(&b, "Session: %s\n", e.SessionID)
		if len(e.Clues) == 0 {
			b.WriteString("Clues: none\n")
		} else {
			fmt.Fprintf(&b, "Clues: %s\n", strings.Join(e.Clues, "; "))
		}
		for _, line := range e.Transcript {
			fmt.Fprintf(&b, "  %s\n", line)
		}
		b.WriteString(strings.Repeat("-", 50) + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
