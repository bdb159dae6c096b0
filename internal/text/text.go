// Package text renders everything the player reads. Messages go through gettext so a catalog can replace
// the built-in Portuguese wording.
package text

import (
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"

	"detective/internal/game/events"
	"detective/internal/game/explore"
	"detective/internal/game/rooms"
	"detective/internal/game/suspects"
	"detective/internal/game/verdict"
)

const domain = "detective"

// Configure loads the gettext catalog for lang from dir. An empty dir keeps the built-in text.
func Configure(dir, lang string) {
	if dir == "" {
		return
	}
	gotext.Configure(dir, lang, domain)
}

func Welcome() []string {
	return []string{
		gotext.Get("=== Bem-vindo ao Detetive na Mansão ==="),
		"",
		gotext.Get("Instruções: explore a mansão. Em cada sala poderá haver uma pista."),
		gotext.Get("Coletar: digite 'c' quando perguntado. Movimente-se com 'e' (esquerda), 'd' (direita), 's' (sair)."),
		gotext.Get("Digite 'p' para rever as pistas coletadas."),
	}
}

// Event renders one exploration event. Some events have nothing to show.
func Event(ev events.Event) []string {
	switch ev.Type {
	case events.Enter:
		return []string{"", gotext.Get("Você está na sala: %s", ev.Room)}
	case events.ClueFound:
		return []string{gotext.Get("Você encontrou uma pista: \"%s\"", ev.Clue)}
	case events.NoClue:
		return []string{gotext.Get("Nenhuma pista nesta sala.")}
	case events.Collect:
		return []string{gotext.Get("✅ Pista coletada.")}
	case events.Duplicate:
		return []string{gotext.Get("Você já tinha essa pista.")}
	case events.Decline:
		return []string{gotext.Get("Você deixou a pista para trás.")}
	case events.DeadEnd:
		return []string{gotext.Get("Esta sala não tem saídas.")}
	case events.NoPath:
		if ev.Target == rooms.Left.String() {
			return []string{gotext.Get("Não há caminho à esquerda.")}
		}
		return []string{gotext.Get("Não há caminho à direita.")}
	case events.Invalid:
		return []string{gotext.Get("Opção inválida. Tente novamente.")}
	case events.ListClues:
		return ClueList(ev.Clues)
	case events.Backtrack:
		return []string{gotext.Get("↩ Voltando para %s...", ev.Target)}
	case events.Exit:
		return []string{"", gotext.Get("=== Exploração encerrada ===")}
	default:
		return nil
	}
}

// Events renders evs in order.
func Events(evs []events.Event) []string {
	var lines []string
	for _, ev := range evs {
		lines = append(lines, Event(ev)...)
	}
	return lines
}

// Prompt returns the question for p asked in room.
func Prompt(p explore.Prompt, room *rooms.Room) string {
	switch p {
	case explore.PromptCollect:
		return gotext.Get("Deseja coletar essa pista? (c = coletar / n = não coletar): ")
	case explore.PromptMove:
		if room == nil {
			return ""
		}
		options := make([]string, 0, 4)
		if left := room.Navigate(rooms.Left); left != nil {
			options = append(options, gotext.Get("(e) esquerda: %s", left.Name()))
		}
		if right := room.Navigate(rooms.Right); right != nil {
			options = append(options, gotext.Get("(d) direita: %s", right.Name()))
		}
		options = append(options, gotext.Get("(s) sair desta sala"), gotext.Get("(p) pistas"))
		return gotext.Get("Movimente-se: %s. Escolha: ", strings.Join(options, ", "))
	default:
		return ""
	}
}

// ClueList renders collected clues, already sorted.
func ClueList(clues []string) []string {
	if len(clues) == 0 {
		return []string{gotext.Get("Nenhuma pista coletada.")}
	}
	lines := make([]string, 0, len(clues)+1)
	lines = append(lines, gotext.Get("Pistas que você coletou:"))
	for _, c := range clues {
		lines = append(lines, " - "+c)
	}
	return lines
}

// Summary closes the exploration phase and introduces the accusation.
func Summary(clues []string, visited, total int, roster []suspects.Suspect) []string {
	lines := ClueList(clues)
	lines = append(lines, gotext.Get("Você visitou %d de %d salas.", visited, total), "", gotext.Get("Suspeitos conhecidos:"))
	for _, s := range roster {
		if s.Description == "" {
			lines = append(lines, " - "+s.Name)
			continue
		}
		lines = append(lines, fmt.Sprintf(" - %s (%s)", s.Name, s.Description))
	}
	return lines
}

func AccusePrompt() string {
	return gotext.Get("Quem você acusa? Digite o nome do suspeito (ex: Alice): ")
}

func NoAccusation() []string {
	return []string{gotext.Get("Nenhum acusado informado. Encerrando.")}
}

// UnknownSuspect warns about a name outside the roster, with a suggestion when one is close.
func UnknownSuspect(name, suggestion string) []string {
	if suggestion == "" {
		return []string{gotext.Get("'%s' não está entre os suspeitos conhecidos.", name)}
	}
	return []string{gotext.Get("'%s' não está entre os suspeitos conhecidos. Você quis dizer %s?", name, suggestion)}
}

// Verdict renders the outcome of an accusation.
func Verdict(v verdict.Verdict) []string {
	lines := []string{"", gotext.Get("Resultado da acusação contra '%s':", v.Accused)}
	switch v.Class {
	case verdict.Sufficient:
		lines = append(lines, gotext.Get("SUCESSO: %d pista(s) apontam para %s. Há evidências suficientes para a acusação.", v.Votes, v.Accused))
	case verdict.Insufficient:
		lines = append(lines, gotext.Get("FRACO: %d pista aponta para %s. Não há pistas suficientes (mínimo %d).", v.Votes, v.Accused, verdict.MinVotes))
	default:
		lines = append(lines, gotext.Get("INOCENTE (pelo menos com as pistas coletadas): %d pistas apontam para %s.", v.Votes, v.Accused))
	}
	return lines
}

func Goodbye() []string {
	return []string{"", gotext.Get("Obrigado por jogar!")}
}

// PressAnyKey tells the player how to leave the full-screen interface once the game is over.
func PressAnyKey() string {
	return gotext.Get("(pressione qualquer tecla para sair)")
}
