package seating

import (
	"fmt"
	"iter"
	"slices"

	"wedding-planner/errors"
)

// Family is a transient grouping of guests sharing one family id, built by the
// caller to request joint seating. It checks family membership only: capacity
// and bans are the table's business.
type Family struct {
	familyID string
	members  []*Guest
}

func NewFamily(familyID string) *Family {
	return &Family{familyID: familyID}
}

func (f *Family) FamilyID() string { return f.familyID }

func (f *Family) Name() string {
	return fmt.Sprintf("Family %s", f.familyID)
}

func (f *Family) GuestCount() int { return len(f.members) }

func (f *Family) Guests() iter.Seq[*Guest] {
	return func(yield func(*Guest) bool) {
		for _, guest := range f.members {
			if !yield(guest) {
				return
			}
		}
	}
}

// Families is always the single family id, even when the family is empty.
func (f *Family) Families() FamilySet {
	return NewFamilySet(f.familyID)
}

func (f *Family) CanAdd(component SeatComponent) bool {
	guest, ok := component.(*Guest)
	return ok && guest != nil && guest.familyID == f.familyID
}

func (f *Family) Add(component SeatComponent) error {
	guest, ok := component.(*Guest)
	if !ok || guest == nil {
		return fmt.Errorf("%w: only guests can join %s", errors.ErrInvalidArgument, f.Name())
	}
	if guest.familyID != f.familyID {
		return fmt.Errorf("%w: guest %s does not belong to %s",
			errors.ErrInvalidArgument, guest.Name(), f.Name())
	}
	f.members = append(f.members, guest)
	return nil
}

// Remove drops the first occurrence of the guest. Removing an absent guest,
// or anything that is not a guest, is a no-op.
func (f *Family) Remove(component SeatComponent) error {
	guest, ok := component.(*Guest)
	if !ok {
		return nil
	}
	if i := slices.Index(f.members, guest); i >= 0 {
		f.members = slices.Delete(f.members, i, i+1)
	}
	return nil
}

func (f *Family) String() string {
	return fmt.Sprintf("%s (%d members)", f.Name(), len(f.members))
}
