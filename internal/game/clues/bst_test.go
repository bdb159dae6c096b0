package clues_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"detective/internal/game/clues"
)

var manorClues = []string{
	"Pegada de lama pequeno tamanho",
	"Fio de cabelo ruivo preso ao livro",
	"Pegada de lama grande",
	"Bilhete rasgado com iniciais R.J.",
	"Frasco de perfume caro",
	"Mancha de vinho tinto",
	"Botão preto perdido",
	"Anel com pedra azul",
	"Ferramenta com marcas de sangue",
}

func TestSet_InOrderIsSorted(t *testing.T) {
	s := clues.New()
	for _, c := range manorClues {
		require.True(t, s.Insert(c))
	}

	got := slices.Collect(s.InOrder())
	want := slices.Clone(manorClues)
	slices.Sort(want)
	require.Equal(t, want, got)
	require.Equal(t, len(manorClues), s.Len())
}

func TestSet_InsertionOrderDoesNotMatter(t *testing.T) {
	want := slices.Clone(manorClues)
	slices.Sort(want)

	rnd := rand.New(rand.NewPCG(1, 2))
	for i := range 50 {
		shuffled := slices.Clone(manorClues)
		// Repeat a few clues so duplicates are exercised too.
		shuffled = append(shuffled, manorClues[i%len(manorClues)], manorClues[(i*7)%len(manorClues)])
		rnd.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		s := clues.New()
		for _, c := range shuffled {
			s.Insert(c)
		}

		got := slices.Collect(s.InOrder())
		require.Equal(t, want, got, "insertion order %v", shuffled)
		require.True(t, slices.IsSorted(got))
		require.Equal(t, len(want), s.Len())
	}
}

func TestSet_InsertIsIdempotent(t *testing.T) {
	s := clues.New()
	require.True(t, s.Insert("Mancha de vinho tinto"))
	require.True(t, s.Insert("Anel com pedra azul"))
	before := slices.Collect(s.InOrder())

	require.False(t, s.Insert("Mancha de vinho tinto"))
	require.Equal(t, 2, s.Len())
	require.Equal(t, before, slices.Collect(s.InOrder()))
}

func TestSet_ZeroValue(t *testing.T) {
	var s clues.Set
	require.Equal(t, 0, s.Len())
	require.Equal(t, 0, s.Depth())
	require.Empty(t, slices.Collect(s.InOrder()))
}

func TestSet_ExactComparison(t *testing.T) {
	s := clues.New()
	require.True(t, s.Insert("Pegada de lama grande"))
	// Comparison is exact, no case folding.
	require.True(t, s.Insert("pegada de lama grande"))
	require.Equal(t, []string{"Pegada de lama grande", "pegada de lama grande"}, slices.Collect(s.InOrder()))
}

func TestSet_InOrderIsRestartable(t *testing.T) {
	s := clues.New()
	for _, c := range manorClues {
		s.Insert(c)
	}

	var first []string
	for c := range s.InOrder() {
		first = append(first, c)
		if len(first) == 3 {
			break
		}
	}
	require.Len(t, first, 3)
	require.Equal(t, first, slices.Collect(s.InOrder())[:3])
}

func TestSet_UnbalancedDepth(t *testing.T) {
	s := clues.New()
	for _, c := range []string{"a", "b", "c", "d"} {
		s.Insert(c)
	}
	// Sorted insertion degenerates into a list.
	require.Equal(t, 4, s.Depth())
}
