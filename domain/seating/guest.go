package seating

import (
	"fmt"
	"iter"

	"wedding-planner/errors"
)

// Guest is the leaf of the seating composite. It is immutable once created.
// The engine does not track whether a guest is seated: the caller must not
// place the same guest at two tables.
type Guest struct {
	name     string
	familyID string
}

func NewGuest(name, familyID string) *Guest {
	return &Guest{name: name, familyID: familyID}
}

// GuestName is the bare name, Name is the display name "Ivan (Petrovi)".
func (g *Guest) GuestName() string { return g.name }

func (g *Guest) FamilyID() string { return g.familyID }

func (g *Guest) Name() string {
	return fmt.Sprintf("%s (%s)", g.name, g.familyID)
}

func (g *Guest) GuestCount() int { return 1 }

func (g *Guest) Guests() iter.Seq[*Guest] {
	return func(yield func(*Guest) bool) {
		yield(g)
	}
}

func (g *Guest) Families() FamilySet {
	return NewFamilySet(g.familyID)
}

func (g *Guest) CanAdd(SeatComponent) bool { return false }

func (g *Guest) Add(SeatComponent) error {
	return fmt.Errorf("%w: cannot add to a guest", errors.ErrUnsupportedOperation)
}

func (g *Guest) Remove(SeatComponent) error {
	return fmt.Errorf("%w: cannot remove from a guest", errors.ErrUnsupportedOperation)
}

func (g *Guest) String() string { return g.Name() }
