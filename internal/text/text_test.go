package text_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"detective/internal/game/events"
	"detective/internal/game/explore"
	"detective/internal/game/rooms"
	"detective/internal/game/suspects"
	"detective/internal/game/verdict"
	"detective/internal/text"
)

func TestEvent(t *testing.T) {
	found := events.New(events.ClueFound, "Hall")
	found.Clue = "Pegada de lama pequeno tamanho"
	require.Equal(t, []string{`Você encontrou uma pista: "Pegada de lama pequeno tamanho"`}, text.Event(found))

	require.Equal(t, []string{"", "Você está na sala: Hall"}, text.Event(events.New(events.Enter, "Hall")))

	noPath := events.New(events.NoPath, "Cozinha")
	noPath.Target = rooms.Left.String()
	require.Equal(t, []string{"Não há caminho à esquerda."}, text.Event(noPath))
	noPath.Target = rooms.Right.String()
	require.Equal(t, []string{"Não há caminho à direita."}, text.Event(noPath))

	back := events.New(events.Backtrack, "Biblioteca")
	back.Target = "Hall"
	require.Equal(t, []string{"↩ Voltando para Hall..."}, text.Event(back))

	require.Empty(t, text.Event(events.New(events.Move, "Hall")))
}

func TestPrompt(t *testing.T) {
	room := rooms.Build("Cozinha", "", nil, rooms.Build("Porão", "", nil, nil))
	require.Equal(t,
		"Movimente-se: (d) direita: Porão, (s) sair desta sala, (p) pistas. Escolha: ",
		text.Prompt(explore.PromptMove, room))
	require.Contains(t, text.Prompt(explore.PromptCollect, room), "c = coletar")
	require.Equal(t, "", text.Prompt(explore.PromptNone, room))
	require.Equal(t, "", text.Prompt(explore.PromptMove, nil))
}

func TestClueList(t *testing.T) {
	require.Equal(t, []string{"Nenhuma pista coletada."}, text.ClueList(nil))
	require.Equal(t, []string{"Pistas que você coletou:", " - a", " - b"}, text.ClueList([]string{"a", "b"}))
}

func TestSummary(t *testing.T) {
	lines := text.Summary([]string{"a"}, 2, 9, []suspects.Suspect{
		{Name: "Alice", Description: "a governanta"},
		{Name: "Bianca"},
	})
	require.Equal(t, []string{
		"Pistas que você coletou:",
		" - a",
		"Você visitou 2 de 9 salas.",
		"",
		"Suspeitos conhecidos:",
		" - Alice (a governanta)",
		" - Bianca",
	}, lines)
}

func TestVerdict(t *testing.T) {
	tests := []struct {
		v    verdict.Verdict
		want string
	}{
		{
			v:    verdict.Verdict{Accused: "Alice", Votes: 2, Class: verdict.Sufficient},
			want: "SUCESSO: 2 pista(s) apontam para Alice. Há evidências suficientes para a acusação.",
		},
		{
			v:    verdict.Verdict{Accused: "Bianca", Votes: 1, Class: verdict.Insufficient},
			want: "FRACO: 1 pista aponta para Bianca. Não há pistas suficientes (mínimo 2).",
		},
		{
			v:    verdict.Verdict{Accused: "Carlos", Votes: 0, Class: verdict.NoEvidence},
			want: "INOCENTE (pelo menos com as pistas coletadas): 0 pistas apontam para Carlos.",
		},
	}
	for _, tt := range tests {
		lines := text.Verdict(tt.v)
		require.Len(t, lines, 3)
		require.Equal(t, "Resultado da acusação contra '"+tt.v.Accused+"':", lines[1])
		require.Equal(t, tt.want, lines[2])
	}
}

func TestUnknownSuspect(t *testing.T) {
	require.Equal(t, []string{"'Rafaell' não está entre os suspeitos conhecidos. Você quis dizer Rafael?"},
		text.UnknownSuspect("Rafaell", "Rafael"))
	require.Equal(t, []string{"'Zé' não está entre os suspeitos conhecidos."}, text.UnknownSuspect("Zé", ""))
}
