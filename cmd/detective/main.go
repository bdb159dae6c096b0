// Detective is a terminal mystery game: explore the manor, collect clues and accuse the culprit.
package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"detective/internal/errors"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := newRootCommand().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var plain bool

	root := &cobra.Command{
		Use:           "detective",
		Short:         "Explore the manor, collect clues and accuse a suspect",
		Long:          `Detective na Mansão: walk the manor's rooms, keep the clues you trust and name the culprit.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return play(cmd.Context(), plain, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	root.Flags().BoolVar(&plain, "plain", false, "play with plain line prompts instead of the full-screen interface")
	root.AddCommand(newReviewCommand())

	return root
}
