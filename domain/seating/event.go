//go:generate go run go.uber.org/mock/mockgen -source=event.go -destination=../../mocks/mock_observer.go -package=mocks
package seating

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	GuestAddedType    Type = "GUEST_ADDED"
	GuestRemovedType  Type = "GUEST_REMOVED"
	FamilyBannedType  Type = "FAMILY_BANNED"
	RuleViolationType Type = "RULE_VIOLATION"
)

// Rule names the table constraint a rejected candidate broke.
type Rule string

const (
	GuestLimitRule  Rule = "GUEST_LIMIT"
	FamilyLimitRule Rule = "FAMILY_LIMIT"
	BannedPairRule  Rule = "BANNED_PAIR"
)

// Event is what a table broadcasts. Payload is one of GuestAdded,
// GuestRemoved, FamilyBanned or RuleViolation, matching Type.
type Event struct {
	ID      uuid.UUID
	Type    Type
	At      time.Time
	Payload any
}

type GuestAdded struct {
	Guest *Guest
	Table *Table
}

type GuestRemoved struct {
	Guest *Guest
	Table *Table
}

// FamilyBanned keeps the ids in the order they were declared,
// Pair holds the canonical form.
type FamilyBanned struct {
	Family1 string
	Family2 string
	Pair    FamilyPair
	Table   *Table
}

type RuleViolation struct {
	Table     *Table
	Candidate string
	Rule      Rule
	Message   string
}

// Observer receives every event of the tables it is attached to,
// synchronously, within the call that triggered it.
// A returned error is logged by the table and never reaches the caller.
type Observer interface {
	Handle(evt Event) error
}

func newEvent(eventType Type, payload any) Event {
	return Event{
		ID:      uuid.New(),
		Type:    eventType,
		At:      time.Now().UTC(),
		Payload: payload,
	}
}
