// Package suspects lists the people who can be accused.
package suspects

import (
	"github.com/dolthub/swiss"
	"github.com/schollz/closestmatch"
)

type Suspect struct {
	Name        string
	Description string
}

// Roster is the ordered list of suspects with an index by name.
type Roster struct {
	suspects []Suspect
	byName   *swiss.Map[string, Suspect]
	matcher  *closestmatch.ClosestMatch
}

func NewRoster(suspects ...Suspect) *Roster {
	r := &Roster{
		byName: swiss.NewMap[string, Suspect](uint32(len(suspects))),
	}
	names := make([]string, 0, len(suspects))
	for _, s := range suspects {
		if r.byName.Has(s.Name) {
			continue
		}
		r.byName.Put(s.Name, s)
		r.suspects = append(r.suspects, s)
		names = append(names, s.Name)
	}
	if len(names) > 0 {
		r.matcher = closestmatch.New(names, []int{1, 2})
	}
	return r
}

// All returns the suspects in the order they were given.
func (r *Roster) All() []Suspect {
	out := make([]Suspect, len(r.suspects))
	copy(out, r.suspects)
	return out
}

// Known reports whether name is exactly the name of a suspect.
func (r *Roster) Known(name string) bool {
	return r.byName.Has(name)
}

// Suggest returns the suspect name closest to name, or "" when name is known or nothing is close.
func (r *Roster) Suggest(name string) string {
	if name == "" || r.matcher == nil || r.Known(name) {
		return ""
	}
	return r.matcher.Closest(name)
}
