package game

import (
	"fmt"
	"strings"

	"detective/internal/game/events"
)

// History is the bounded transcript of a session's decisions, kept for the journal.
type History struct {
	exchanges []string
	maxSize   int
}

func NewHistory(maxSize int) *History {
	return &History{
		exchanges: make([]string, 0, maxSize),
		maxSize:   maxSize,
	}
}

// AddEvents records the events that change the course of the session.
func (h *History) AddEvents(evs []events.Event) {
	for _, ev := range events.Filter(evs, events.Collect, events.Decline, events.Move, events.DeadEnd, events.Exit) {
		switch ev.Type {
		case events.Collect, events.Decline:
			h.add(fmt.Sprintf("%s: %s %q", ev.Room, ev.Type, ev.Clue))
		case events.Move:
			h.add(fmt.Sprintf("%s: %s -> %s", ev.Room, ev.Type, ev.Target))
		default:
			h.add(fmt.Sprintf("%s: %s", ev.Room, ev.Type))
		}
	}
}

func (h *History) AddAccusation(name string, votes int) {
	h.add(fmt.Sprintf("accuse %q: %d", name, votes))
}

func (h *History) add(entry string) {
	h.exchanges = append(h.exchanges, entry)

	if len(h.exchanges) > h.maxSize {
		h.exchanges = h.exchanges[len(h.exchanges)-h.maxSize:]
	}
}

func (h *History) GetEntries() []string {
	result := make([]string, len(h.exchanges))
	copy(result, h.exchanges)
	return result
}

func (h *History) String() string {
	return strings.Join(h.exchanges, "\n")
}
