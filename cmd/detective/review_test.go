package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"detective/internal/logging"
)

func TestPrintEntries(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var b strings.Builder
		require.NoError(t, printEntries(&b, nil))
		require.Contains(t, b.String(), "No verdicts found")
	})

	t.Run("entries", func(t *testing.T) {
		var b strings.Builder
		require.NoError(t, printEntries(&b, []logging.JournalEntry{
			{
				ID:         2,
				SessionID:  "s-2",
				Timestamp:  time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
				Accused:    "Alice",
				Votes:      2,
				Verdict:    "sufficient",
				Clues:      []string{"Botão preto perdido", "Pegada de lama pequeno tamanho"},
				Transcript: []string{"Hall: exit", `accuse "Alice": 2`},
			},
			{ID: 1, SessionID: "s-1", Accused: "Diana", Verdict: "no_evidence"},
		}))

		out := b.String()
		require.Contains(t, out, "Recent verdicts (2):")
		require.Contains(t, out, "| Alice | sufficient (2)")
		require.Contains(t, out, "Clues: Botão preto perdido; Pegada de lama pequeno tamanho")
		require.Contains(t, out, `  accuse "Alice": 2`)
		require.Contains(t, out, "Clues: none")
	})
}
