// Package sink forwards seating events to consumers outside the process.
package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"wedding-planner/contract"
	"wedding-planner/domain/seating"
	"wedding-planner/errors"
)

// SeatingMessage is the JSON body published for every seating event.
type SeatingMessage struct {
	ID       string    `json:"id"`
	Type     string    `json:"type"`
	At       time.Time `json:"at"`
	TableID  int       `json:"table_id"`
	Table    string    `json:"table"`
	Guest    string    `json:"guest,omitempty"`
	FamilyID string    `json:"family_id,omitempty"`
	Families []string  `json:"families,omitempty"`
	Rule     string    `json:"rule,omitempty"`
	Message  string    `json:"message,omitempty"`
}

// BrokerSink is a seating observer publishing each event through a Publisher.
// A publish failure is returned to the table, which logs it; the seating
// change itself is already committed.
type BrokerSink struct {
	log       *slog.Logger
	publisher contract.Publisher
	timeout   time.Duration
}

func NewBrokerSink(log *slog.Logger, publisher contract.Publisher, timeout time.Duration) *BrokerSink {
	return &BrokerSink{log: log, publisher: publisher, timeout: timeout}
}

func (s *BrokerSink) Handle(evt seating.Event) error {
	message, err := ToSeatingMessage(evt)
	if err != nil {
		return err
	}
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", evt.Type, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.publisher.Publish(ctx, contract.Message{
		ID:        message.ID,
		Type:      message.Type,
		Timestamp: message.At,
		Body:      body,
	}); err != nil {
		return fmt.Errorf("publish %s event: %w", evt.Type, err)
	}
	s.log.Debug("seating event published", "event_id", message.ID, "type", message.Type)
	return nil
}

func ToSeatingMessage(evt seating.Event) (SeatingMessage, error) {
	message := SeatingMessage{
		ID:   evt.ID.String(),
		Type: string(evt.Type),
		At:   evt.At,
	}
	withTable := func(table *seating.Table) {
		message.TableID = int(table.ID())
		message.Table = table.Name()
	}

	switch payload := evt.Payload.(type) {
	case seating.GuestAdded:
		withTable(payload.Table)
		message.Guest = payload.Guest.GuestName()
		message.FamilyID = payload.Guest.FamilyID()
	case seating.GuestRemoved:
		withTable(payload.Table)
		message.Guest = payload.Guest.GuestName()
		message.FamilyID = payload.Guest.FamilyID()
	case seating.FamilyBanned:
		withTable(payload.Table)
		message.Families = []string{payload.Pair.First, payload.Pair.Second}
	case seating.RuleViolation:
		withTable(payload.Table)
		message.Rule = string(payload.Rule)
		message.Message = payload.Message
	default:
		return SeatingMessage{}, fmt.Errorf("%w: %s event carries %T", errors.ErrInvalidPayload, evt.Type, evt.Payload)
	}
	return message, nil
}
