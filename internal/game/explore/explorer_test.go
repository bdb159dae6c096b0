package explore_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"detective/internal/game/clues"
	"detective/internal/game/events"
	"detective/internal/game/explore"
	"detective/internal/game/rooms"
)

// newManor builds
//
//	Hall (clue) ── Biblioteca (clue) ── Escritorio (clue, leaf)
//	           │                   └── Jardim (no clue, leaf)
//	           └── Cozinha (no clue) ── Porão (clue, leaf)
func newManor() *rooms.Room {
	office := rooms.Build("Escritorio", "Bilhete rasgado com iniciais R.J.", nil, nil)
	garden := rooms.Build("Jardim", "", nil, nil)
	library := rooms.Build("Biblioteca", "Fio de cabelo ruivo preso ao livro", office, garden)
	cellar := rooms.Build("Porão", "Ferramenta com marcas de sangue", nil, nil)
	kitchen := rooms.Build("Cozinha", "", nil, cellar)
	return rooms.Build("Hall", "Pegada de lama pequeno tamanho", library, kitchen)
}

func types(ts ...events.Type) []events.Type {
	return ts
}

func TestExplorer_LeafRootEndsWithoutInput(t *testing.T) {
	x := explore.New(rooms.Build("Quarto", "", nil, nil), clues.New(), explore.Options{})

	evs := x.Start()
	require.Equal(t, types(events.Enter, events.NoClue, events.DeadEnd, events.Exit), events.Types(evs))
	require.True(t, x.Done())
	require.Equal(t, explore.PromptNone, x.Prompt())
	require.Nil(t, x.Handle("e"))
}

func TestExplorer_LeafWithClue(t *testing.T) {
	set := clues.New()
	x := explore.New(rooms.Build("Quarto2", "Anel com pedra azul", nil, nil), set, explore.Options{})

	evs := x.Start()
	require.Equal(t, types(events.Enter, events.ClueFound), events.Types(evs))
	require.Equal(t, "Anel com pedra azul", evs[1].Clue)
	require.Equal(t, explore.PromptCollect, x.Prompt())

	evs = x.Handle("c")
	require.Equal(t, types(events.Collect, events.DeadEnd, events.Exit), events.Types(evs))
	require.True(t, x.Done())
	require.Equal(t, []string{"Anel com pedra azul"}, slices.Collect(set.InOrder()))
}

func TestExplorer_DeclineReturnsWithoutMoveMenu(t *testing.T) {
	set := clues.New()
	x := explore.New(newManor(), set, explore.Options{})

	x.Start()
	require.Equal(t, explore.PromptCollect, x.Prompt())

	evs := x.Handle("n")
	require.Equal(t, types(events.Decline, events.Exit), events.Types(evs))
	require.True(t, x.Done())
	require.Equal(t, 0, set.Len())
}

func TestExplorer_DeclineInChildUnwindsToExit(t *testing.T) {
	x := explore.New(newManor(), clues.New(), explore.Options{})
	x.Start()
	x.Handle("c")
	require.Equal(t, explore.PromptMove, x.Prompt())

	x.Handle("e")
	require.Equal(t, "Biblioteca", x.Current().Name())
	require.Equal(t, []string{"Hall", "Biblioteca"}, x.Path())

	evs := x.Handle("não")
	require.Equal(t, types(events.Decline, events.Backtrack, events.Exit), events.Types(evs))
	require.Equal(t, "Biblioteca", evs[1].Room)
	require.Equal(t, "Hall", evs[1].Target)
	require.True(t, x.Done())
	require.Nil(t, x.Current())
}

func TestExplorer_CollectAlongThePath(t *testing.T) {
	set := clues.New()
	x := explore.New(newManor(), set, explore.Options{})

	x.Start()
	x.Handle("c")

	evs := x.Handle("e")
	require.Equal(t, types(events.Move, events.Enter, events.ClueFound), events.Types(evs))
	require.Equal(t, "Hall", evs[0].Room)
	require.Equal(t, "Biblioteca", evs[0].Target)

	x.Handle("C")
	evs = x.Handle("E")
	require.Equal(t, types(events.Move, events.Enter, events.ClueFound), events.Types(evs))

	evs = x.Handle("c")
	require.Equal(t,
		types(events.Collect, events.DeadEnd, events.Backtrack, events.Backtrack, events.Exit),
		events.Types(evs))
	require.True(t, x.Done())

	require.Equal(t, []string{
		"Bilhete rasgado com iniciais R.J.",
		"Fio de cabelo ruivo preso ao livro",
		"Pegada de lama pequeno tamanho",
	}, slices.Collect(set.InOrder()))
	require.Equal(t, 3, x.Visited())
}

func TestExplorer_RoomWithoutClueGoesStraightToMoveMenu(t *testing.T) {
	x := explore.New(newManor(), clues.New(), explore.Options{})
	x.Start()
	x.Handle("c")

	evs := x.Handle("d")
	require.Equal(t, types(events.Move, events.Enter, events.NoClue), events.Types(evs))
	require.Equal(t, explore.PromptMove, x.Prompt())
	require.Equal(t, "Cozinha", x.Current().Name())
}

func TestExplorer_InvalidMovesRePrompt(t *testing.T) {
	x := explore.New(newManor(), clues.New(), explore.Options{})
	x.Start()
	x.Handle("c")
	x.Handle("d")

	tests := []struct {
		input string
		want  events.Type
	}{
		{input: "", want: events.Invalid},
		{input: "   ", want: events.Invalid},
		{input: "x", want: events.Invalid},
		{input: "42", want: events.Invalid},
		// Cozinha has no room on the left.
		{input: "e", want: events.NoPath},
	}
	for _, tt := range tests {
		evs := x.Handle(tt.input)
		require.Len(t, evs, 1, "input %q", tt.input)
		require.Equal(t, tt.want, evs[0].Type, "input %q", tt.input)
		require.Equal(t, explore.PromptMove, x.Prompt(), "input %q", tt.input)
		require.Equal(t, "Cozinha", x.Current().Name())
	}
}

func TestExplorer_BlankInputAtCollectRePrompts(t *testing.T) {
	set := clues.New()
	x := explore.New(newManor(), set, explore.Options{})
	x.Start()

	evs := x.Handle("")
	require.Equal(t, types(events.Invalid), events.Types(evs))
	require.Equal(t, explore.PromptCollect, x.Prompt())
	require.Equal(t, 0, set.Len())
}

func TestExplorer_ExitFromDeepRoom(t *testing.T) {
	x := explore.New(newManor(), clues.New(), explore.Options{})
	x.Start()
	x.Handle("c")
	x.Handle("d")

	evs := x.Handle("s")
	require.Equal(t, types(events.Backtrack, events.Exit), events.Types(evs))
	require.Equal(t, "Hall", evs[1].Room)
	require.True(t, x.Done())
}

func TestExplorer_ListClues(t *testing.T) {
	x := explore.New(newManor(), clues.New(), explore.Options{})
	x.Start()
	x.Handle("c")

	evs := x.Handle("p")
	require.Equal(t, types(events.ListClues), events.Types(evs))
	require.Equal(t, []string{"Pegada de lama pequeno tamanho"}, evs[0].Clues)
	require.Equal(t, explore.PromptMove, x.Prompt())
}

func TestExplorer_AutoCollect(t *testing.T) {
	set := clues.New()
	x := explore.New(newManor(), set, explore.Options{AutoCollect: true})

	evs := x.Start()
	require.Equal(t, types(events.Enter, events.ClueFound, events.Collect), events.Types(evs))
	require.Equal(t, explore.PromptMove, x.Prompt())

	evs = x.Handle("d")
	require.Equal(t, types(events.Move, events.Enter, events.NoClue), events.Types(evs))
	evs = x.Handle("d")
	require.Equal(t,
		types(events.Move, events.Enter, events.ClueFound, events.Collect,
			events.DeadEnd, events.Backtrack, events.Backtrack, events.Exit),
		events.Types(evs))
	require.Equal(t, 2, set.Len())
}

func TestExplorer_DuplicateClue(t *testing.T) {
	set := clues.New()
	set.Insert("Anel com pedra azul")
	x := explore.New(rooms.Build("Quarto2", "Anel com pedra azul", nil, nil), set, explore.Options{})
	x.Start()

	evs := x.Handle("c")
	require.Equal(t, types(events.Duplicate, events.DeadEnd, events.Exit), events.Types(evs))
	require.Equal(t, 1, set.Len())
}

func TestExplorer_StartTwice(t *testing.T) {
	x := explore.New(newManor(), clues.New(), explore.Options{})
	require.Equal(t, explore.Idle, x.State())
	require.Nil(t, x.Current())
	require.False(t, x.Done())

	x.Start()
	require.Nil(t, x.Start())
	require.Equal(t, explore.AwaitCollect, x.State())
}

func TestExplorer_NilRoot(t *testing.T) {
	x := explore.New(nil, clues.New(), explore.Options{})
	evs := x.Start()
	require.Equal(t, types(events.Exit), events.Types(evs))
	require.True(t, x.Done())
}

func TestExplorer_RejectKeepsThePrompt(t *testing.T) {
	set := clues.New()
	x := explore.New(newManor(), set, explore.Options{})
	require.Nil(t, x.Reject("c"))

	x.Start()
	evs := x.Reject("cccc")
	require.Equal(t, types(events.Invalid), events.Types(evs))
	require.Equal(t, "Hall", evs[0].Room)
	require.Equal(t, explore.PromptCollect, x.Prompt())
	require.Equal(t, 0, set.Len())

	x.Handle("c")
	evs = x.Reject("eeee")
	require.Equal(t, types(events.Invalid), events.Types(evs))
	require.Equal(t, explore.PromptMove, x.Prompt())
	require.Equal(t, "Hall", x.Current().Name())

	x.Handle("s")
	require.Nil(t, x.Reject("e"))
}

func TestState_String(t *testing.T) {
	require.Equal(t, "idle", explore.Idle.String())
	require.Equal(t, "await_collect", explore.AwaitCollect.String())
	require.Equal(t, "await_move", explore.AwaitMove.String())
	require.Equal(t, "exited", explore.Exited.String())
}
