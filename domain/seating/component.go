// Package seating holds the seating-constraint engine: guests, families and
// tables sharing one SeatComponent surface, the rules a table enforces and the
// events it broadcasts to its observers.
// No runtime, storage or UI logic should be added here.
package seating

import (
	"iter"
	"reflect"
)

// SeatComponent is the uniform view over a group of guests.
// Guest is a leaf, Family and Table are composites.
type SeatComponent interface {
	Name() string
	GuestCount() int
	// Guests yields every guest depth-first, in insertion order.
	// The sequence can be ranged over any number of times.
	Guests() iter.Seq[*Guest]
	Families() FamilySet
	CanAdd(component SeatComponent) bool
	Add(component SeatComponent) error
	Remove(component SeatComponent) error
}

// CollectGuests materializes a component's guest sequence.
func CollectGuests(component SeatComponent) []*Guest {
	var guests []*Guest
	for guest := range component.Guests() {
		guests = append(guests, guest)
	}
	return guests
}

// isNil also catches typed nils such as (*Family)(nil).
func isNil(component SeatComponent) bool {
	if component == nil {
		return true
	}
	v := reflect.ValueOf(component)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
