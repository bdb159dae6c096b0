package rooms

import (
	"log/slog"

	"github.com/dolthub/swiss"

	"detective/internal/errors"
)

var ErrDuplicateRoom = errors.NewSentinel("duplicate room name")

// Map is a finished room tree together with an index from room name to room.
type Map struct {
	root  *Room
	index *swiss.Map[string, *Room]
}

// NewMap indexes the tree under root. Room names must be unique.
func NewMap(root *Room) (*Map, error) {
	m := &Map{
		root:  root,
		index: swiss.NewMap[string, *Room](16),
	}

	var err error
	root.walk(func(r *Room) bool {
		if m.index.Has(r.name) {
			err = errors.Wrap(ErrDuplicateRoom, "index room", slog.String("room", r.name))
			return false
		}
		m.index.Put(r.name, r)
		return true
	})
	if err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Map) Root() *Room {
	return m.root
}

// Len returns the number of rooms.
func (m *Map) Len() int {
	return m.index.Count()
}
