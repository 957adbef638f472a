package seating

import (
	"slices"

	"github.com/samber/lo"
)

// FamilySet is the set of distinct family ids reachable from a component.
type FamilySet map[string]struct{}

func NewFamilySet(ids ...string) FamilySet {
	set := make(FamilySet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (s FamilySet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Union returns a new set, neither operand is modified.
func (s FamilySet) Union(other FamilySet) FamilySet {
	union := make(FamilySet, len(s)+len(other))
	for id := range s {
		union[id] = struct{}{}
	}
	for id := range other {
		union[id] = struct{}{}
	}
	return union
}

// Sorted returns the ids in ordinal order.
func (s FamilySet) Sorted() []string {
	ids := lo.Keys(s)
	slices.Sort(ids)
	return ids
}
