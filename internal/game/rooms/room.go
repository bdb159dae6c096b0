// Package rooms holds the manor map: a binary tree of rooms built once and only read afterwards.
package rooms

// Direction selects a child of a room.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Room is a node of the manor map. Each room owns its children; no room is shared between parents.
type Room struct {
	name  string
	clue  string
	left  *Room
	right *Room
}

// Build creates a room with optional children. An empty clue means the room has none.
func Build(name, clue string, left, right *Room) *Room {
	return &Room{
		name:  name,
		clue:  clue,
		left:  left,
		right: right,
	}
}

func (r *Room) Name() string {
	return r.name
}

// Clue returns the clue found in the room, if any.
func (r *Room) Clue() (string, bool) {
	return r.clue, r.clue != ""
}

// Navigate returns the child in direction d, or nil when there is none.
func (r *Room) Navigate(d Direction) *Room {
	switch d {
	case Left:
		return r.left
	case Right:
		return r.right
	default:
		return nil
	}
}

// IsLeaf reports whether the room has no exits.
func (r *Room) IsLeaf() bool {
	return r.left == nil && r.right == nil
}

// walk visits r and its descendants in pre-order until visit returns false.
func (r *Room) walk(visit func(*Room) bool) bool {
	if r == nil {
		return true
	}
	if !visit(r) {
		return false
	}
	return r.left.walk(visit) && r.right.walk(visit)
}
