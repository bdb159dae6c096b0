// Package verdict scores an accusation against the collected clues.
package verdict

import (
	"detective/internal/game/clues"
	"detective/internal/game/directory"
)

// Class is the outcome of an accusation.
type Class int

const (
	NoEvidence Class = iota
	Insufficient
	Sufficient
)

// MinVotes is the number of incriminating clues needed for a sufficient accusation.
const MinVotes = 2

func (c Class) String() string {
	switch c {
	case Sufficient:
		return "sufficient"
	case Insufficient:
		return "insufficient"
	default:
		return "no_evidence"
	}
}

// Verdict is the scored accusation.
type Verdict struct {
	Accused string
	Votes   int
	Class   Class
}

// Tally counts the collected clues the directory attributes to accused. Clues missing from the directory
// incriminate nobody. Names are compared exactly.
func Tally(set *clues.Set, dir *directory.Table, accused string) int {
	votes := 0
	for clue := range set.InOrder() {
		if suspect, ok := dir.Get(clue); ok && suspect == accused {
			votes++
		}
	}
	return votes
}

// Classify maps a vote count to its class.
func Classify(votes int) Class {
	switch {
	case votes >= MinVotes:
		return Sufficient
	case votes == 1:
		return Insufficient
	default:
		return NoEvidence
	}
}

// Judge tallies and classifies the accusation of accused.
func Judge(set *clues.Set, dir *directory.Table, accused string) Verdict {
	votes := Tally(set, dir, accused)
	return Verdict{
		Accused: accused,
		Votes:   votes,
		Class:   Classify(votes),
	}
}
