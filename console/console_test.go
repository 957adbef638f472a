package console_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"wedding-planner/console"
	"wedding-planner/errors"
	"wedding-planner/projection"
	"wedding-planner/services"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newTestConsole(t *testing.T) (*console.Console, *services.SeatingService, *bytes.Buffer) {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	planner := projection.NewPlanner(log, "Console Planner").WithClock(func() time.Time {
		return time.Date(2026, time.June, 20, 18, 30, 0, 0, time.UTC)
	})
	service, err := services.NewSeatingService(log, planner, services.Limits{MaxGuests: 10, MaxFamilies: 2})
	require.NoError(t, err)
	out := &bytes.Buffer{}
	return console.NewConsole(log, service, out, false), service, out
}

func TestConsole_Run_Seats_Families_Until_Constraint(t *testing.T) {
	req := require.New(t)

	// Given a console over a service seeded with sample guests
	c, service, out := newTestConsole(t)
	service.LoadSampleData()
	script := strings.Join([]string{
		"table",
		"family 1 Petrovi",
		"family 1 Ivanovi",
		"family 1 Dimitrovi",
		"show 1",
		"quit",
		"table",
	}, "\n")

	// When the script is run
	err := c.Run(context.Background(), strings.NewReader(script))

	// Then two families are seated and the third is refused with the rule message
	req.NoError(err)
	text := out.String()
	req.Contains(text, "Created Table 1")
	req.Contains(text, "Assigned Family Petrovi to Table 1")
	req.Contains(text, "Assigned Family Ivanovi to Table 1")
	req.Contains(text, "Cannot assign Family Dimitrovi to Table 1 - violates constraints")
	req.Contains(text, "Exceeds maximum of 2 families")
	req.Contains(text, "Total Guests: 4/10")
	req.Contains(text, "Ivan Petrov (Petrovi)")
	// And nothing after quit is executed
	req.Len(service.Tables(), 1)
}

func TestConsole_Run_Keeps_Going_After_Errors(t *testing.T) {
	req := require.New(t)

	// Given a console with no tables
	c, _, out := newTestConsole(t)
	script := "dance\nseat 7 Nobody\nguest Ivan Petrov Petrovi\nguests\n"

	// When the script is run to end of input
	err := c.Run(context.Background(), strings.NewReader(script))

	// Then every error is printed and later commands still run
	req.NoError(err)
	text := out.String()
	req.Contains(text, "Error: unknown command: dance")
	req.Contains(text, "Error: table not found")
	req.Contains(text, "Added guest: Ivan Petrov (Petrovi)")
	req.Contains(text, "Ivan Petrov")
}

func TestConsole_Execute_Unknown_Command(t *testing.T) {
	req := require.New(t)
	c, _, _ := newTestConsole(t)

	quit, err := c.Execute("polka now")

	req.False(quit)
	req.ErrorIs(err, errors.ErrUnknownCommand)
}

func TestConsole_Execute_Usage_Errors(t *testing.T) {
	c, _, _ := newTestConsole(t)
	for _, line := range []string{
		"guest Lonely",
		"seat 1",
		"family 1",
		"ban 1 Petrovi",
		"limits 1 ten 2",
		"show zero",
		"clear -1",
	} {
		t.Run(line, func(t *testing.T) {
			_, err := c.Execute(line)
			require.ErrorIs(t, err, errors.ErrInvalidArgument)
		})
	}
}

func TestConsole_Execute_Quit_And_Blank_Line(t *testing.T) {
	req := require.New(t)
	c, _, _ := newTestConsole(t)

	quit, err := c.Execute("   ")
	req.NoError(err)
	req.False(quit)

	quit, err = c.Execute("QUIT")
	req.NoError(err)
	req.True(quit)
}

func TestConsole_Ban_Refuses_Second_Family(t *testing.T) {
	req := require.New(t)

	// Given a table where Petrovi and Ivanovi are banned
	c, service, out := newTestConsole(t)
	service.LoadSampleData()
	for _, line := range []string{"table", "ban 1 Petrovi Ivanovi", "seat 1 Ivan Petrov"} {
		_, err := c.Execute(line)
		req.NoError(err)
	}

	// When an Ivanovi guest is seated at the same table
	_, err := c.Execute("seat 1 Georgi Ivanov")

	// Then the console warns with the banned pair and the guest stays available
	req.NoError(err)
	text := out.String()
	req.Contains(text, "Banned Petrovi and Ivanovi from sitting together at Table 1")
	req.Contains(text, "Successfully assigned Ivan Petrov to Table 1!")
	req.Contains(text, "Cannot assign Georgi Ivanov to Table 1 - constraints violated")
	req.Contains(text, "Families Ivanovi and Petrovi are banned from sitting together")

	_, err = c.Execute("show 1")
	req.NoError(err)
	req.Contains(out.String(), "Banned pairs: Ivanovi - Petrovi")
}

func TestConsole_Unseat_Clear_And_Notifications(t *testing.T) {
	req := require.New(t)

	// Given two seated families
	c, service, out := newTestConsole(t)
	service.LoadSampleData()
	for _, line := range []string{"table", "family 1 Todorovi", "seat 1 Ivan Petrov"} {
		_, err := c.Execute(line)
		req.NoError(err)
	}

	// When one guest is unseated by name and the table is cleared
	_, err := c.Execute("unseat 1 Ivan Petrov")
	req.NoError(err)
	_, err = c.Execute("clear 1")
	req.NoError(err)

	// Then every guest is back in the pool and the log tells the story
	req.Len(service.AvailableGuests(), 9)
	out.Reset()
	_, err = c.Execute("notifications")
	req.NoError(err)
	text := out.String()
	req.Contains(text, "=== WEDDING PLANNER NOTIFICATIONS ===")
	req.Contains(text, "[18:30:00] Ivan Petrov (Petrovi) was removed from Table 1")
	req.Contains(text, "Total: 8 notifications")

	// When the log is cleared
	_, err = c.Execute("clear-notifications")
	req.NoError(err)
	out.Reset()
	_, err = c.Execute("latest")

	// Then there is nothing left to report
	req.NoError(err)
	req.Contains(out.String(), "Latest: "+projection.NoNotifications)
}

func TestConsole_Limits_Changes_Table(t *testing.T) {
	req := require.New(t)
	c, service, _ := newTestConsole(t)
	_, err := c.Execute("table")
	req.NoError(err)

	_, err = c.Execute("limits 1 4 3")

	req.NoError(err)
	summary := service.Tables()[0]
	req.Equal(4, summary.MaxGuests)
	req.Equal(3, summary.MaxFamilies)
}

func TestConsole_Run_Stops_On_Cancelled_Context(t *testing.T) {
	req := require.New(t)
	c, service, _ := newTestConsole(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Run(ctx, strings.NewReader("table\ntable\n"))

	req.NoError(err)
	req.Empty(service.Tables())
}

func TestConsole_Run_Returns_When_Context_Is_Cancelled_During_Read(t *testing.T) {
	req := require.New(t)

	// Given a console waiting on input that never arrives
	c, service, _ := newTestConsole(t)
	reader, writer := io.Pipe()
	defer func() { _ = writer.Close() }()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx, reader) }()

	// When the context is cancelled mid-read
	time.Sleep(50 * time.Millisecond)
	cancel()

	// Then Run returns without another line being typed
	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(time.Second):
		req.FailNow("Run still blocked after context cancellation")
	}
	req.Empty(service.Tables())
}

func TestConsole_Run_Executes_Lines_Written_To_A_Pipe(t *testing.T) {
	req := require.New(t)

	// Given a console reading from a pipe
	c, service, _ := newTestConsole(t)
	reader, writer := io.Pipe()
	done := make(chan error, 1)
	go func() { done <- c.Run(context.Background(), reader) }()

	// When two commands are written and the input is closed
	_, err := io.WriteString(writer, "table\ntable\n")
	req.NoError(err)
	req.NoError(writer.Close())

	// Then both run before Run returns at end of input
	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(time.Second):
		req.FailNow("Run did not return at end of input")
	}
	req.Len(service.Tables(), 2)
}

func TestConsole_Seat_Picks_Family_For_Shared_Name(t *testing.T) {
	req := require.New(t)

	// Given two guests sharing a name
	c, service, out := newTestConsole(t)
	for _, line := range []string{"guest Alex Stoyanov Stoyanovi", "guest Alex Stoyanov Georgievi", "table"} {
		_, err := c.Execute(line)
		req.NoError(err)
	}

	// When the bare name is used
	_, err := c.Execute("seat 1 Alex Stoyanov")

	// Then the console asks for the family
	req.ErrorIs(err, errors.ErrAmbiguousGuest)

	// When the displayed "Name (Family)" form is used
	_, err = c.Execute("seat 1 Alex Stoyanov (Georgievi)")

	// Then that guest is seated
	req.NoError(err)
	req.Contains(out.String(), "Successfully assigned Alex Stoyanov to Table 1!")
	report, err := service.TableDetails(1)
	req.NoError(err)
	req.Equal([]string{"Alex Stoyanov (Georgievi)"}, report.Guests)
}
