package events

import (
	"time"

	"github.com/google/uuid"
)

// Type is the kind of thing that happened during exploration.
type Type string

const (
	Enter     Type = "enter"
	ClueFound Type = "clue_found"
	NoClue    Type = "no_clue"
	Collect   Type = "collect"
	Duplicate Type = "duplicate"
	Decline   Type = "decline"
	DeadEnd   Type = "dead_end"
	Move      Type = "move"
	NoPath    Type = "no_path"
	Invalid   Type = "invalid"
	ListClues Type = "list_clues"
	Backtrack Type = "backtrack"
	Exit      Type = "exit"
)

// Event is the record of one step of the exploration. Rendering it for the player is left to the caller.
type Event struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	Room      string    `json:"room,omitempty"`
	Target    string    `json:"target,omitempty"`
	Clue      string    `json:"clue,omitempty"`
	Clues     []string  `json:"clues,omitempty"`
	Input     string    `json:"input,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func New(t Type, room string) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      t,
		Room:      room,
		Timestamp: time.Now(),
	}
}

// Types lists the types of evs in order.
func Types(evs []Event) []Type {
	out := make([]Type, len(evs))
	for i, ev := range evs {
		out[i] = ev.Type
	}
	return out
}
