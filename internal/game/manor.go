package game

import (
	"detective/internal/errors"
	"detective/internal/game/directory"
	"detective/internal/game/rooms"
	"detective/internal/game/suspects"
)

// Case is the static configuration of a game: the manor, what each clue says about whom, and the suspects.
type Case struct {
	Manor     *rooms.Map
	Directory *directory.Table
	Suspects  *suspects.Roster
}

// Evidence ties a clue to the suspect it incriminates.
type Evidence struct {
	Clue    string
	Suspect string
}

var manorEvidence = []Evidence{
	{Clue: "Pegada de lama pequeno tamanho", Suspect: "Alice"},
	{Clue: "Pegada de lama grande", Suspect: "Carlos"},
	{Clue: "Fio de cabelo ruivo preso ao livro", Suspect: "Bianca"},
	{Clue: "Bilhete rasgado com iniciais R.J.", Suspect: "Rafael"},
	{Clue: "Frasco de perfume caro", Suspect: "Bianca"},
	{Clue: "Mancha de vinho tinto", Suspect: "Carlos"},
	{Clue: "Botão preto perdido", Suspect: "Alice"},
	{Clue: "Anel com pedra azul", Suspect: "Diana"},
	{Clue: "Ferramenta com marcas de sangue", Suspect: "Rafael"},
}

var manorSuspects = []suspects.Suspect{
	{Name: "Alice", Description: "a governanta"},
	{Name: "Bianca", Description: "a sobrinha ruiva"},
	{Name: "Carlos", Description: "o cozinheiro"},
	{Name: "Diana", Description: "a herdeira"},
	{Name: "Rafael", Description: "o jardineiro"},
}

// NewManor builds the fixed manor map.
//
//	Hall ── Biblioteca ── Escritorio ── Quarto1
//	   │             │             └── Quarto2
//	   │             └── Jardim
//	   └── Sala de Jantar ── Cozinha
//	                     └── Porão
func NewManor() (*rooms.Map, error) {
	bedroom1 := rooms.Build("Quarto1", "Botão preto perdido", nil, nil)
	bedroom2 := rooms.Build("Quarto2", "Anel com pedra azul", nil, nil)
	office := rooms.Build("Escritorio", "Bilhete rasgado com iniciais R.J.", bedroom1, bedroom2)
	garden := rooms.Build("Jardim", "Frasco de perfume caro", nil, nil)
	library := rooms.Build("Biblioteca", "Fio de cabelo ruivo preso ao livro", office, garden)

	kitchen := rooms.Build("Cozinha", "Pegada de lama grande", nil, nil)
	cellar := rooms.Build("Porão", "Ferramenta com marcas de sangue", nil, nil)
	dining := rooms.Build("Sala de Jantar", "Mancha de vinho tinto", kitchen, cellar)

	hall := rooms.Build("Hall", "Pegada de lama pequeno tamanho", library, dining)

	m, err := rooms.NewMap(hall)
	if err != nil {
		return nil, errors.Wrap(err, "build manor")
	}
	return m, nil
}

// NewDirectory loads evidence into a new clue → suspect table.
func NewDirectory(evidence []Evidence) (*directory.Table, error) {
	dir, err := directory.New(directory.DefaultSize)
	if err != nil {
		return nil, errors.Wrap(err, "new directory")
	}
	for _, e := range evidence {
		dir.Put(e.Clue, e.Suspect)
	}
	return dir, nil
}

// NewDefaultCase assembles the manor mystery.
func NewDefaultCase() (Case, error) {
	manor, err := NewManor()
	if err != nil {
		return Case{}, err
	}
	dir, err := NewDirectory(manorEvidence)
	if err != nil {
		return Case{}, err
	}
	return Case{
		Manor:     manor,
		Directory: dir,
		Suspects:  suspects.NewRoster(manorSuspects...),
	}, nil
}
