package seating

import (
	"cmp"
	"fmt"
	"iter"
	"log/slog"
	"slices"
	"strings"

	"wedding-planner/errors"

	"github.com/samber/lo"
)

const (
	DefaultMaxGuests   = 10
	DefaultMaxFamilies = 2
)

type TableID int

// Table is the composite that enforces the seating rules and broadcasts
// every seating change to its observers.
//
// MaxGuests and MaxFamilies may be changed at any time. New limits apply to
// future additions only, current guests are never re-validated.
// A table is not safe for concurrent use.
type Table struct {
	MaxGuests   int
	MaxFamilies int

	id         TableID
	components []SeatComponent
	banned     map[FamilyPair]struct{}
	hub        *Hub
	log        *slog.Logger
}

type Option func(*Table)

func WithLogger(log *slog.Logger) Option {
	return func(t *Table) { t.log = log }
}

func WithMaxGuests(maxGuests int) Option {
	return func(t *Table) { t.MaxGuests = maxGuests }
}

func WithMaxFamilies(maxFamilies int) Option {
	return func(t *Table) { t.MaxFamilies = maxFamilies }
}

func NewTable(id int, opts ...Option) *Table {
	t := &Table{
		MaxGuests:   DefaultMaxGuests,
		MaxFamilies: DefaultMaxFamilies,
		id:          TableID(id),
		banned:      make(map[FamilyPair]struct{}),
		log:         slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.hub = NewHub(t.log)
	return t
}

func (t *Table) ID() TableID { return t.id }

func (t *Table) Name() string {
	return fmt.Sprintf("Table %d", t.id)
}

func (t *Table) Attach(observer Observer) bool { return t.hub.Attach(observer) }

func (t *Table) Detach(observer Observer) bool { return t.hub.Detach(observer) }

func (t *Table) GuestCount() int {
	return lo.SumBy(t.components, func(c SeatComponent) int {
		return c.GuestCount()
	})
}

func (t *Table) Guests() iter.Seq[*Guest] {
	return func(yield func(*Guest) bool) {
		for _, component := range t.components {
			for guest := range component.Guests() {
				if !yield(guest) {
					return
				}
			}
		}
	}
}

func (t *Table) Families() FamilySet {
	families := make(FamilySet)
	for _, component := range t.components {
		families = families.Union(component.Families())
	}
	return families
}

// Components returns a copy of the seated components, in seating order.
func (t *Table) Components() []SeatComponent {
	return slices.Clone(t.components)
}

// CanAdd checks, in order, the guest limit, the family limit and the banned
// pairs. The first broken rule is broadcast as a RuleViolation event before
// false is returned. Nothing else is changed.
func (t *Table) CanAdd(candidate SeatComponent) bool {
	if isNil(candidate) || t.enclosedBy(candidate) {
		return false
	}
	violation, violated := t.violation(candidate)
	if violated {
		t.hub.Broadcast(newEvent(RuleViolationType, violation))
		return false
	}
	return true
}

func (t *Table) violation(candidate SeatComponent) (RuleViolation, bool) {
	reject := func(rule Rule, reason string) (RuleViolation, bool) {
		return RuleViolation{
			Table:     t,
			Candidate: candidate.Name(),
			Rule:      rule,
			Message:   fmt.Sprintf("Cannot add %s to %s: %s", candidate.Name(), t.Name(), reason),
		}, true
	}

	if t.GuestCount()+candidate.GuestCount() > t.MaxGuests {
		return reject(GuestLimitRule, fmt.Sprintf("Exceeds maximum of %d guests", t.MaxGuests))
	}

	current := t.Families()
	incoming := candidate.Families()
	if len(current.Union(incoming)) > t.MaxFamilies {
		return reject(FamilyLimitRule, fmt.Sprintf("Exceeds maximum of %d families", t.MaxFamilies))
	}

	for _, seated := range current.Sorted() {
		for _, newcomer := range incoming.Sorted() {
			if seated == newcomer {
				continue
			}
			pair := NewFamilyPair(seated, newcomer)
			if _, ok := t.banned[pair]; ok {
				return reject(BannedPairRule, fmt.Sprintf("Families %s and %s are banned from sitting together",
					pair.First, pair.Second))
			}
		}
	}
	return RuleViolation{}, false
}

// Add seats the candidate if CanAdd accepts it, then broadcasts one
// GuestAdded event per guest of the candidate.
func (t *Table) Add(candidate SeatComponent) error {
	if isNil(candidate) {
		return fmt.Errorf("%w: nothing to add to %s", errors.ErrInvalidArgument, t.Name())
	}
	if t.enclosedBy(candidate) {
		return fmt.Errorf("%w: %s cannot be seated inside itself", errors.ErrInvalidArgument, t.Name())
	}
	if !t.CanAdd(candidate) {
		return fmt.Errorf("%w: cannot add %s to %s", errors.ErrInvalidOperation, candidate.Name(), t.Name())
	}
	t.components = append(t.components, candidate)
	t.log.Debug("component seated", "table", t.Name(), "component", candidate.Name())

	for guest := range candidate.Guests() {
		t.hub.Broadcast(newEvent(GuestAddedType, GuestAdded{Guest: guest, Table: t}))
	}
	return nil
}

// enclosedBy reports whether component is this table or holds it at any depth.
// Seating such a component would make the composite cyclic.
func (t *Table) enclosedBy(component SeatComponent) bool {
	if component == SeatComponent(t) {
		return true
	}
	nested, ok := component.(*Table)
	if !ok {
		return false
	}
	return slices.ContainsFunc(nested.components, t.enclosedBy)
}

// Remove unseats the candidate and broadcasts one GuestRemoved event per
// guest it holds. A candidate that is not seated here is ignored: no error,
// no event.
func (t *Table) Remove(candidate SeatComponent) error {
	i := slices.IndexFunc(t.components, func(c SeatComponent) bool {
		return c == candidate
	})
	if i < 0 {
		return nil
	}
	t.components = slices.Delete(t.components, i, i+1)
	t.log.Debug("component unseated", "table", t.Name(), "component", candidate.Name())

	for guest := range candidate.Guests() {
		t.hub.Broadcast(newEvent(GuestRemovedType, GuestRemoved{Guest: guest, Table: t}))
	}
	return nil
}

// ClearTable empties the table and broadcasts one GuestRemoved event per
// guest, in the order the guests were seated.
func (t *Table) ClearTable() []*Guest {
	guests := CollectGuests(t)
	t.components = nil
	t.log.Debug("table cleared", "table", t.Name(), "guests", len(guests))

	for _, guest := range guests {
		t.hub.Broadcast(newEvent(GuestRemovedType, GuestRemoved{Guest: guest, Table: t}))
	}
	return guests
}

// BanFamilyPair forbids two families from sharing this table. Families
// already seated together are left in place: only later additions are checked.
func (t *Table) BanFamilyPair(family1, family2 string) error {
	pair := NewFamilyPair(family1, family2)
	if err := pair.Validate(); err != nil {
		return err
	}
	t.banned[pair] = struct{}{}
	t.log.Debug("family pair banned", "table", t.Name(), "pair", pair.String())

	t.hub.Broadcast(newEvent(FamilyBannedType, FamilyBanned{
		Family1: family1,
		Family2: family2,
		Pair:    pair,
		Table:   t,
	}))
	return nil
}

func (t *Table) IsBanned(family1, family2 string) bool {
	_, ok := t.banned[NewFamilyPair(family1, family2)]
	return ok
}

// BannedFamilyPairs returns the canonical pairs sorted by First then Second.
func (t *Table) BannedFamilyPairs() []FamilyPair {
	pairs := lo.Keys(t.banned)
	slices.SortFunc(pairs, func(a, b FamilyPair) int {
		return cmp.Or(strings.Compare(a.First, b.First), strings.Compare(a.Second, b.Second))
	})
	return pairs
}

// BannedPairs renders every banned pair as "A - B".
func (t *Table) BannedPairs() []string {
	return lo.Map(t.BannedFamilyPairs(), func(p FamilyPair, _ int) string {
		return p.String()
	})
}

func (t *Table) String() string {
	return fmt.Sprintf("%s - %d/%d guests, %d/%d families",
		t.Name(), t.GuestCount(), t.MaxGuests, len(t.Families()), t.MaxFamilies)
}
