// Package clues keeps the clues a player collected in a binary search tree ordered by their text.
package clues

import (
	"iter"
	"strings"
)

type node struct {
	clue        string
	left, right *node
}

// Set is an unbalanced binary search tree of unique clues. The zero value is an empty set.
type Set struct {
	root *node
	size int
}

func New() *Set {
	return &Set{}
}

// Insert adds clue and reports whether it was new. Inserting a clue already present leaves the tree untouched.
func (s *Set) Insert(clue string) bool {
	var added bool
	s.root, added = insert(s.root, clue)
	if added {
		s.size++
	}
	return added
}

func insert(n *node, clue string) (*node, bool) {
	if n == nil {
		return &node{clue: clue}, true
	}

	var added bool
	switch c := strings.Compare(clue, n.clue); {
	case c < 0:
		n.left, added = insert(n.left, clue)
	case c > 0:
		n.right, added = insert(n.right, clue)
	}
	return n, added
}

func (s *Set) Len() int {
	return s.size
}

// InOrder yields the clues in ascending order. Each call starts a fresh walk.
func (s *Set) InOrder() iter.Seq[string] {
	return func(yield func(string) bool) {
		walk(s.root, yield)
	}
}

func walk(n *node, yield func(string) bool) bool {
	if n == nil {
		return true
	}
	return walk(n.left, yield) && yield(n.clue) && walk(n.right, yield)
}

// Depth returns the height of the tree, 0 for an empty set.
func (s *Set) Depth() int {
	return depth(s.root)
}

func depth(n *node) int {
	if n == nil {
		return 0
	}
	return 1 + max(depth(n.left), depth(n.right))
}
