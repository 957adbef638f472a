package seating

import (
	"fmt"
	"strings"

	"wedding-planner/errors"
)

// FamilyPair is an unordered pair of family ids stored in canonical order:
// First < Second by ordinal string comparison.
type FamilyPair struct {
	First  string
	Second string
}

// NewFamilyPair builds the canonical pair, so (a, b) and (b, a) are equal.
// The same normalization is used when a ban is declared and when it is checked.
func NewFamilyPair(a, b string) FamilyPair {
	if strings.Compare(a, b) <= 0 {
		return FamilyPair{First: a, Second: b}
	}
	return FamilyPair{First: b, Second: a}
}

func (p FamilyPair) Validate() error {
	if p.First == "" || p.Second == "" {
		return fmt.Errorf("%w: family ids must not be empty", errors.ErrInvalidArgument)
	}
	if p.First == p.Second {
		return fmt.Errorf("%w: cannot ban family %s from itself", errors.ErrInvalidArgument, p.First)
	}
	return nil
}

func (p FamilyPair) String() string {
	return fmt.Sprintf("%s - %s", p.First, p.Second)
}
