package observability

import (
	"log/slog"
	"sync/atomic"

	"wedding-planner/domain/seating"
	"wedding-planner/errors"
)

// SeatingStats is a snapshot of the SeatingMonitor counters.
type SeatingStats struct {
	GuestsSeated   uint64 `json:"guests_seated"`
	GuestsRemoved  uint64 `json:"guests_removed"`
	BansDeclared   uint64 `json:"bans_declared"`
	RuleViolations uint64 `json:"rule_violations"`
}

// SeatingMonitor counts seating events by type and logs each of them.
// It can observe several tables at once.
type SeatingMonitor struct {
	log *slog.Logger

	guestsSeated   uint64
	guestsRemoved  uint64
	bansDeclared   uint64
	ruleViolations uint64
}

func NewSeatingMonitor(log *slog.Logger) *SeatingMonitor {
	return &SeatingMonitor{log: log}
}

func (m *SeatingMonitor) Handle(evt seating.Event) error {
	switch evt.Type {
	case seating.GuestAddedType:
		payload, ok := evt.Payload.(seating.GuestAdded)
		if !ok {
			return errors.ErrInvalidPayload
		}
		atomic.AddUint64(&m.guestsSeated, 1)
		m.log.Debug("guest seated", "guest", payload.Guest.Name(), "table", payload.Table.Name())
	case seating.GuestRemovedType:
		payload, ok := evt.Payload.(seating.GuestRemoved)
		if !ok {
			return errors.ErrInvalidPayload
		}
		atomic.AddUint64(&m.guestsRemoved, 1)
		m.log.Debug("guest removed", "guest", payload.Guest.Name(), "table", payload.Table.Name())
	case seating.FamilyBannedType:
		payload, ok := evt.Payload.(seating.FamilyBanned)
		if !ok {
			return errors.ErrInvalidPayload
		}
		atomic.AddUint64(&m.bansDeclared, 1)
		m.log.Info("family pair banned", "pair", payload.Pair.String(), "table", payload.Table.Name())
	case seating.RuleViolationType:
		payload, ok := evt.Payload.(seating.RuleViolation)
		if !ok {
			return errors.ErrInvalidPayload
		}
		atomic.AddUint64(&m.ruleViolations, 1)
		m.log.Warn("seating rule violated",
			"rule", payload.Rule,
			"candidate", payload.Candidate,
			"table", payload.Table.Name(),
		)
	}
	return nil
}

func (m *SeatingMonitor) Stats() SeatingStats {
	return SeatingStats{
		GuestsSeated:   atomic.LoadUint64(&m.guestsSeated),
		GuestsRemoved:  atomic.LoadUint64(&m.guestsRemoved),
		BansDeclared:   atomic.LoadUint64(&m.bansDeclared),
		RuleViolations: atomic.LoadUint64(&m.ruleViolations),
	}
}
