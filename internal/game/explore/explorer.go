// Package explore drives a player through the manor map and collects the clues they accept.
//
// The Explorer is a state machine fed one line of player input at a time. It performs no I/O: every step
// returns the events it produced and the caller decides how to show them.
package explore

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/zyedidia/generic/mapset"

	"detective/internal/game/clues"
	"detective/internal/game/events"
	"detective/internal/game/rooms"
)

// State of the exploration.
type State int

const (
	Idle State = iota
	AwaitCollect
	AwaitMove
	Exited
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case AwaitCollect:
		return "await_collect"
	case AwaitMove:
		return "await_move"
	case Exited:
		return "exited"
	default:
		return "unknown"
	}
}

// Prompt is the question the player has to answer next.
type Prompt int

const (
	PromptNone Prompt = iota
	PromptCollect
	PromptMove
)

// Player keys.
const (
	KeyCollect = 'c'
	KeyLeft    = 'e'
	KeyRight   = 'd'
	KeyExit    = 's'
	KeyList    = 'p'
)

type Options struct {
	// AutoCollect takes every clue found without asking.
	AutoCollect bool
}

type Explorer struct {
	root    *rooms.Room
	clues   *clues.Set
	opts    Options
	state   State
	stack   []*rooms.Room
	visited mapset.Set[string]
}

// New creates an explorer starting at root that collects into set.
func New(root *rooms.Room, set *clues.Set, opts Options) *Explorer {
	return &Explorer{
		root:    root,
		clues:   set,
		opts:    opts,
		state:   Idle,
		visited: mapset.New[string](),
	}
}

// Start enters the root room. Calling it again has no effect.
func (x *Explorer) Start() []events.Event {
	if x.state != Idle {
		return nil
	}
	if x.root == nil {
		x.state = Exited
		return []events.Event{events.New(events.Exit, "")}
	}
	return x.enter(x.root)
}

// Handle applies one line of player input to the current prompt.
func (x *Explorer) Handle(input string) []events.Event {
	switch x.state {
	case AwaitCollect:
		return x.handleCollect(input)
	case AwaitMove:
		return x.handleMove(input)
	default:
		return nil
	}
}

// Reject reports input that could not be read as a choice. The pending prompt stays open.
func (x *Explorer) Reject(input string) []events.Event {
	if x.state != AwaitCollect && x.state != AwaitMove {
		return nil
	}
	return []events.Event{invalid(x.Current(), input)}
}

func (x *Explorer) State() State {
	return x.state
}

func (x *Explorer) Prompt() Prompt {
	switch x.state {
	case AwaitCollect:
		return PromptCollect
	case AwaitMove:
		return PromptMove
	default:
		return PromptNone
	}
}

func (x *Explorer) Done() bool {
	return x.state == Exited
}

// Current returns the room the player is in, or nil before Start and after exiting.
func (x *Explorer) Current() *rooms.Room {
	if len(x.stack) == 0 {
		return nil
	}
	return x.stack[len(x.stack)-1]
}

// Path returns the names of the rooms from the root to the current room.
func (x *Explorer) Path() []string {
	names := make([]string, len(x.stack))
	for i, r := range x.stack {
		names[i] = r.Name()
	}
	return names
}

// Visited returns how many distinct rooms the player entered.
func (x *Explorer) Visited() int {
	return x.visited.Size()
}

func (x *Explorer) enter(r *rooms.Room) []events.Event {
	x.stack = append(x.stack, r)
	x.visited.Put(r.Name())

	evs := []events.Event{events.New(events.Enter, r.Name())}

	clue, ok := r.Clue()
	if !ok {
		evs = append(evs, events.New(events.NoClue, r.Name()))
		return append(evs, x.afterClue(r)...)
	}

	found := events.New(events.ClueFound, r.Name())
	found.Clue = clue
	evs = append(evs, found)

	if x.opts.AutoCollect {
		evs = append(evs, x.collect(r, clue))
		return append(evs, x.afterClue(r)...)
	}

	x.state = AwaitCollect
	return evs
}

func (x *Explorer) collect(r *rooms.Room, clue string) events.Event {
	t := events.Collect
	if !x.clues.Insert(clue) {
		t = events.Duplicate
	}
	ev := events.New(t, r.Name())
	ev.Clue = clue
	return ev
}

// afterClue leaves a room without exits or waits for a movement choice.
func (x *Explorer) afterClue(r *rooms.Room) []events.Event {
	if r.IsLeaf() {
		evs := []events.Event{events.New(events.DeadEnd, r.Name())}
		return append(evs, x.unwind()...)
	}
	x.state = AwaitMove
	return nil
}

func (x *Explorer) handleCollect(input string) []events.Event {
	r := x.Current()
	key, ok := firstKey(input)
	if !ok {
		return []events.Event{invalid(r, input)}
	}

	clue, _ := r.Clue()
	if key != KeyCollect {
		// Declining returns to the caller without offering the way onward.
		ev := events.New(events.Decline, r.Name())
		ev.Clue = clue
		return append([]events.Event{ev}, x.unwind()...)
	}

	evs := []events.Event{x.collect(r, clue)}
	return append(evs, x.afterClue(r)...)
}

func (x *Explorer) handleMove(input string) []events.Event {
	r := x.Current()
	key, ok := firstKey(input)
	if !ok {
		return []events.Event{invalid(r, input)}
	}

	switch key {
	case KeyLeft:
		return x.move(r, rooms.Left)
	case KeyRight:
		return x.move(r, rooms.Right)
	case KeyExit:
		return x.unwind()
	case KeyList:
		ev := events.New(events.ListClues, r.Name())
		ev.Clues = make([]string, 0, x.clues.Len())
		for c := range x.clues.InOrder() {
			ev.Clues = append(ev.Clues, c)
		}
		return []events.Event{ev}
	default:
		return []events.Event{invalid(r, input)}
	}
}

func (x *Explorer) move(r *rooms.Room, d rooms.Direction) []events.Event {
	next := r.Navigate(d)
	if next == nil {
		ev := events.New(events.NoPath, r.Name())
		ev.Target = d.String()
		return []events.Event{ev}
	}

	ev := events.New(events.Move, r.Name())
	ev.Target = next.Name()
	return append([]events.Event{ev}, x.enter(next)...)
}

// unwind returns from the current room. A room whose child returned has nothing left to offer, so it returns
// as well and the whole path collapses until the player is out of the manor.
func (x *Explorer) unwind() []events.Event {
	var evs []events.Event
	var last string
	for len(x.stack) > 0 {
		top := x.stack[len(x.stack)-1]
		x.stack = x.stack[:len(x.stack)-1]
		last = top.Name()
		if parent := x.Current(); parent != nil {
			ev := events.New(events.Backtrack, top.Name())
			ev.Target = parent.Name()
			evs = append(evs, ev)
		}
	}
	x.state = Exited
	return append(evs, events.New(events.Exit, last))
}

func invalid(r *rooms.Room, input string) events.Event {
	ev := events.New(events.Invalid, r.Name())
	ev.Input = input
	return ev
}

// firstKey returns the lower-cased first character of input. Blank input has no key.
func firstKey(input string) (rune, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.ToLower(r), true
}
