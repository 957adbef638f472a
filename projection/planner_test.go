package projection

import (
	"log/slog"
	"testing"
	"time"

	"wedding-planner/domain/seating"
	"wedding-planner/errors"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2026, time.June, 20, 18, 30, 5, 0, time.UTC)
}

func newTestPlanner() *Planner {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	return NewPlanner(log, "Main Wedding Planner").WithClock(fixedClock)
}

func TestPlanner_Logs_Every_Seating_Event(t *testing.T) {
	req := require.New(t)
	planner := newTestPlanner()
	table := seating.NewTable(1)
	table.Attach(planner)

	// Given an empty log
	req.Empty(planner.Notifications())
	req.Equal(NoNotifications, planner.Latest())

	// When a family is seated, a pair banned, a family rejected and a table cleared
	petrovi := seating.NewFamily("Petrovi")
	req.NoError(petrovi.Add(seating.NewGuest("Ivan Petrov", "Petrovi")))
	req.NoError(table.Add(petrovi))
	req.NoError(table.BanFamilyPair("Petrovi", "Ivanovi"))
	req.False(table.CanAdd(seating.NewGuest("Georgi Ivanov", "Ivanovi")))
	table.ClearTable()

	// Then each event is one line, in order
	req.Equal([]string{
		"[18:30:05] Ivan Petrov was seated at Table 1",
		"[18:30:05] Families Petrovi and Ivanovi banned from sitting together at Table 1",
		"[18:30:05] RULE VIOLATION: Cannot add Georgi Ivanov (Ivanovi) to Table 1: Families Ivanovi and Petrovi are banned from sitting together",
		"[18:30:05] Ivan Petrov was removed from Table 1",
	}, planner.Notifications())
	req.Equal("[18:30:05] Ivan Petrov was removed from Table 1", planner.Latest())
}

func TestPlanner_Clear(t *testing.T) {
	req := require.New(t)
	planner := newTestPlanner()
	table := seating.NewTable(2)
	table.Attach(planner)

	req.NoError(table.Add(seating.NewGuest("Ann", "A")))
	req.Len(planner.Notifications(), 1)

	planner.Clear()

	req.Empty(planner.Notifications())
	req.Equal(NoNotifications, planner.Latest())
}

func TestPlanner_Rejects_Mismatched_Payload(t *testing.T) {
	req := require.New(t)
	planner := newTestPlanner()

	err := planner.Handle(seating.Event{Type: seating.GuestAddedType, Payload: "Ann"})

	req.ErrorIs(err, errors.ErrInvalidPayload)
	req.Empty(planner.Notifications())
}

func TestPlanner_Notifications_Is_A_Copy(t *testing.T) {
	req := require.New(t)
	planner := newTestPlanner()
	table := seating.NewTable(1)
	table.Attach(planner)
	req.NoError(table.Add(seating.NewGuest("Ann", "A")))

	notifications := planner.Notifications()
	notifications[0] = "tampered"

	req.Equal("[18:30:05] Ann was seated at Table 1", planner.Latest())
}
