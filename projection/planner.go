// Package projection builds the wedding planner's notification log from
// observed seating events.
// Does not emit events or mutate tables.
package projection

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"wedding-planner/domain/seating"
	"wedding-planner/errors"
)

const NoNotifications = "No notifications"

// Planner is the reference observer: every event becomes one timestamped,
// human-readable line, appended in arrival order.
type Planner struct {
	Name string

	log           *slog.Logger
	now           func() time.Time
	mu            sync.RWMutex
	notifications []string
}

func NewPlanner(log *slog.Logger, name string) *Planner {
	return &Planner{Name: name, log: log, now: time.Now}
}

// WithClock replaces the clock used to stamp notifications.
func (p *Planner) WithClock(now func() time.Time) *Planner {
	p.now = now
	return p
}

func (p *Planner) Handle(evt seating.Event) error {
	message, err := describe(evt)
	if err != nil {
		p.log.Error(err.Error(), "event", evt.Type)
		return err
	}
	line := fmt.Sprintf("[%s] %s", p.now().Format(time.TimeOnly), message)

	p.mu.Lock()
	p.notifications = append(p.notifications, line)
	p.mu.Unlock()

	p.log.Info(fmt.Sprintf("%s notified: %s", p.Name, line))
	return nil
}

func describe(evt seating.Event) (string, error) {
	switch evt.Type {
	case seating.GuestAddedType:
		if payload, ok := evt.Payload.(seating.GuestAdded); ok {
			return fmt.Sprintf("%s was seated at %s", payload.Guest.GuestName(), payload.Table.Name()), nil
		}
	case seating.GuestRemovedType:
		if payload, ok := evt.Payload.(seating.GuestRemoved); ok {
			return fmt.Sprintf("%s was removed from %s", payload.Guest.GuestName(), payload.Table.Name()), nil
		}
	case seating.FamilyBannedType:
		if payload, ok := evt.Payload.(seating.FamilyBanned); ok {
			return fmt.Sprintf("Families %s and %s banned from sitting together at %s",
				payload.Family1, payload.Family2, payload.Table.Name()), nil
		}
	case seating.RuleViolationType:
		if payload, ok := evt.Payload.(seating.RuleViolation); ok {
			return fmt.Sprintf("RULE VIOLATION: %s", payload.Message), nil
		}
	}
	return "", fmt.Errorf("%w: %s event carries %T", errors.ErrInvalidPayload, evt.Type, evt.Payload)
}

func (p *Planner) Notifications() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.notifications)
}

// Latest returns the most recent notification, or NoNotifications.
func (p *Planner) Latest() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if len(p.notifications) == 0 {
		return NoNotifications
	}
	return p.notifications[len(p.notifications)-1]
}

func (p *Planner) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.notifications = nil
}
