package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"wedding-planner/contract"
	"wedding-planner/domain/seating"
	"wedding-planner/errors"
	"wedding-planner/mocks"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBrokerSink_Publishes_Guest_Added(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	publisher := mocks.NewMockPublisher(ctrl)
	brokerSink := NewBrokerSink(log, publisher, time.Second)

	table := seating.NewTable(7)
	table.Attach(brokerSink)

	var published contract.Message
	// Given the publisher accepts one message within the timeout
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, msg contract.Message) error {
			_, hasDeadline := ctx.Deadline()
			req.True(hasDeadline)
			published = msg
			return nil
		}).Times(1)

	// When a guest is seated
	req.NoError(table.Add(seating.NewGuest("Ivan Petrov", "Petrovi")))

	// Then the JSON body describes the seating
	req.Equal(string(seating.GuestAddedType), published.Type)
	var body SeatingMessage
	req.NoError(json.Unmarshal(published.Body, &body))
	req.Equal(published.ID, body.ID)
	req.Equal(7, body.TableID)
	req.Equal("Table 7", body.Table)
	req.Equal("Ivan Petrov", body.Guest)
	req.Equal("Petrovi", body.FamilyID)
}

func TestBrokerSink_Publish_Failure_Does_Not_Undo_Seating(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	publisher := mocks.NewMockPublisher(ctrl)
	brokerSink := NewBrokerSink(slog.Default(), publisher, 10*time.Millisecond)

	table := seating.NewTable(1)
	table.Attach(brokerSink)

	// Given the broker is unreachable
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(fmt.Errorf("connection refused")).Times(1)

	// When a guest is seated, the table still commits it
	req.NoError(table.Add(seating.NewGuest("Ann", "A")))
	req.Equal(1, table.GuestCount())
}

func TestBrokerSink_Handle_Returns_Publish_Error(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	publisher := mocks.NewMockPublisher(ctrl)
	brokerSink := NewBrokerSink(slog.Default(), publisher, time.Second)
	table := seating.NewTable(1)

	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(context.DeadlineExceeded).Times(1)

	err := brokerSink.Handle(seating.Event{
		Type:    seating.GuestRemovedType,
		Payload: seating.GuestRemoved{Guest: seating.NewGuest("Ann", "A"), Table: table},
	})
	req.ErrorIs(err, context.DeadlineExceeded)
}

func TestToSeatingMessage(t *testing.T) {
	req := require.New(t)
	table := seating.NewTable(3)

	banned, err := ToSeatingMessage(seating.Event{
		Type:    seating.FamilyBannedType,
		Payload: seating.FamilyBanned{Family1: "Smith", Family2: "Jones", Pair: seating.NewFamilyPair("Smith", "Jones"), Table: table},
	})
	req.NoError(err)
	req.Equal([]string{"Jones", "Smith"}, banned.Families)
	req.Equal("Table 3", banned.Table)

	violation, err := ToSeatingMessage(seating.Event{
		Type: seating.RuleViolationType,
		Payload: seating.RuleViolation{
			Table:     table,
			Candidate: "Family B",
			Rule:      seating.FamilyLimitRule,
			Message:   "Cannot add Family B to Table 3: Exceeds maximum of 2 families",
		},
	})
	req.NoError(err)
	req.Equal(string(seating.FamilyLimitRule), violation.Rule)
	req.Equal("Cannot add Family B to Table 3: Exceeds maximum of 2 families", violation.Message)

	_, err = ToSeatingMessage(seating.Event{Type: seating.GuestAddedType, Payload: nil})
	req.ErrorIs(err, errors.ErrInvalidPayload)
}
