// Package directory maps clue text to the suspect it incriminates with a fixed-size chained hash table.
package directory

import (
	"log/slog"

	"detective/internal/errors"
)

// DefaultSize is the bucket count used for the manor: a prime well above the number of clues.
const DefaultSize = 101

var ErrInvalidSize = errors.NewSentinel("table size must be positive")

type entry struct {
	key   string
	value string
	next  *entry
}

// Table is a hash table with separate chaining. Its bucket count is fixed at construction.
type Table struct {
	buckets []*entry
	count   int
}

// New creates a table with size buckets.
func New(size int) (*Table, error) {
	if size < 1 {
		return nil, errors.Wrap(ErrInvalidSize, "new table", slog.Int("size", size))
	}
	return &Table{buckets: make([]*entry, size)}, nil
}

// Hash is the djb2 hash of key (hash*33 + byte, seeded with 5381) reduced to a bucket index.
func Hash(key string, size int) int {
	var h uint64 = 5381
	for i := 0; i < len(key); i++ {
		h = h<<5 + h + uint64(key[i])
	}
	return int(h % uint64(size))
}

// Put associates value with key, replacing the value of an existing key.
func (t *Table) Put(key, value string) {
	idx := Hash(key, len(t.buckets))
	for e := t.buckets[idx]; e != nil; e = e.next {
		if e.key == key {
			e.value = value
			return
		}
	}
	t.buckets[idx] = &entry{key: key, value: value, next: t.buckets[idx]}
	t.count++
}

// Get returns the value stored for key.
func (t *Table) Get(key string) (string, bool) {
	for e := t.buckets[Hash(key, len(t.buckets))]; e != nil; e = e.next {
		if e.key == key {
			return e.value, true
		}
	}
	return "", false
}

// Len returns the number of keys.
func (t *Table) Len() int {
	return t.count
}

// Size returns the number of buckets.
func (t *Table) Size() int {
	return len(t.buckets)
}

// LongestChain returns the length of the longest bucket chain.
func (t *Table) LongestChain() int {
	longest := 0
	for _, head := range t.buckets {
		n := 0
		for e := head; e != nil; e = e.next {
			n++
		}
		longest = max(longest, n)
	}
	return longest
}
