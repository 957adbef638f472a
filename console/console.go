// Package console is a line-oriented front end over the seating service.
// Each input line is one command; failures are printed and never stop the loop.
package console

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"wedding-planner/errors"
	"wedding-planner/services"

	"github.com/gookit/color"
)

const helpText = `Commands:
  guest <name...> <family>              register an available guest
  table                                 create a table
  seat <table> <guest name...> [(family)] seat one guest
  family <table> <family>               seat every available guest of a family
  unseat <table> <component...>         release a guest or a family
  clear <table>                         release everybody at a table
  ban <table> <family> <family>         forbid two families from sharing a table
  limits <table> <guests> <families>    change a table's limits
  show <table>                          table details
  tables | guests                       list tables or available guests
  notifications | latest | clear-notifications
  help | quit`

type Console struct {
	log     *slog.Logger
	service services.ISeatingService
	out     io.Writer
	colours bool
}

func NewConsole(log *slog.Logger, service services.ISeatingService, out io.Writer, colours bool) *Console {
	return &Console{log: log, service: service, out: out, colours: colours}
}

// Run reads commands until quit, end of input or context cancellation.
// Input is scanned on its own goroutine so cancellation is seen while a
// read is still pending.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				scanErr <- nil
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	c.prompt()
	for {
		if ctx.Err() != nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return <-scanErr
			}
			if ctx.Err() != nil {
				return nil
			}
			quit, err := c.Execute(line)
			if err != nil {
				c.printError(err)
			}
			if quit {
				return nil
			}
			c.prompt()
		}
	}
}

// Execute runs a single command line and reports whether the user asked to quit.
func (c *Console) Execute(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	command, args := strings.ToLower(fields[0]), fields[1:]

	switch command {
	case "quit", "exit":
		return true, nil
	case "help":
		c.println(helpText)
		return false, nil
	case "guest":
		return false, c.addGuest(args)
	case "table":
		summary := c.service.CreateTable()
		c.success("Created %s", summary.Name)
		return false, nil
	case "seat":
		return false, c.seat(args)
	case "family":
		return false, c.seatFamily(args)
	case "unseat":
		return false, c.unseat(args)
	case "clear":
		return false, c.clear(args)
	case "ban":
		return false, c.ban(args)
	case "limits":
		return false, c.limits(args)
	case "show":
		return false, c.show(args)
	case "tables":
		c.renderTables(c.service.Tables())
		return false, nil
	case "guests":
		c.renderGuests(c.service.AvailableGuests())
		return false, nil
	case "notifications":
		c.renderNotifications(c.service.Notifications())
		return false, nil
	case "latest":
		c.println(fmt.Sprintf("Latest: %s", c.service.LatestNotification()))
		return false, nil
	case "clear-notifications":
		c.service.ClearNotifications()
		c.println("Notifications cleared")
		return false, nil
	}
	return false, fmt.Errorf("%w: %s (type help)", errors.ErrUnknownCommand, command)
}

func (c *Console) addGuest(args []string) error {
	if len(args) < 2 {
		return usage("guest <name...> <family>")
	}
	guest, err := c.service.AddGuest(services.AddGuestCommand{
		Name:     strings.Join(args[:len(args)-1], " "),
		FamilyID: args[len(args)-1],
	})
	if err != nil {
		return err
	}
	c.success("Added guest: %s", guest.Name())
	return nil
}

func (c *Console) seat(args []string) error {
	if len(args) < 2 {
		return usage("seat <table> <guest name...> [(family)]")
	}
	tableID, err := parseTableID(args[0])
	if err != nil {
		return err
	}
	name, familyID := parseGuestRef(strings.Join(args[1:], " "))
	if err := c.service.AssignGuest(services.AssignGuestCommand{
		TableID:   tableID,
		GuestName: name,
		FamilyID:  familyID,
	}); err != nil {
		return c.rejected(err, fmt.Sprintf("Cannot assign %s to Table %d - constraints violated", name, tableID))
	}
	c.success("Successfully assigned %s to Table %d!", name, tableID)
	return nil
}

func (c *Console) seatFamily(args []string) error {
	if len(args) != 2 {
		return usage("family <table> <family>")
	}
	tableID, err := parseTableID(args[0])
	if err != nil {
		return err
	}
	familyID := args[1]
	if err := c.service.AssignFamily(services.AssignFamilyCommand{TableID: tableID, FamilyID: familyID}); err != nil {
		return c.rejected(err, fmt.Sprintf("Cannot assign Family %s to Table %d - violates constraints", familyID, tableID))
	}
	c.success("Assigned Family %s to Table %d", familyID, tableID)
	return nil
}

// rejected turns a constraint violation into a warning carrying the
// planner's latest notification; any other error is returned as is.
func (c *Console) rejected(err error, message string) error {
	if !stderrors.Is(err, errors.ErrConstraintViolated) {
		return err
	}
	c.warn(message)
	c.warn(c.service.LatestNotification())
	return nil
}

func (c *Console) unseat(args []string) error {
	if len(args) < 2 {
		return usage("unseat <table> <component...>")
	}
	tableID, err := parseTableID(args[0])
	if err != nil {
		return err
	}
	component := strings.Join(args[1:], " ")
	if err := c.service.Unseat(services.UnseatCommand{TableID: tableID, Component: component}); err != nil {
		return err
	}
	c.success("Released %s from Table %d", component, tableID)
	return nil
}

func (c *Console) clear(args []string) error {
	if len(args) != 1 {
		return usage("clear <table>")
	}
	tableID, err := parseTableID(args[0])
	if err != nil {
		return err
	}
	if err := c.service.ClearTable(tableID); err != nil {
		return err
	}
	c.success("Cleared Table %d", tableID)
	return nil
}

func (c *Console) ban(args []string) error {
	if len(args) != 3 {
		return usage("ban <table> <family> <family>")
	}
	tableID, err := parseTableID(args[0])
	if err != nil {
		return err
	}
	if err := c.service.BanFamilies(services.BanFamiliesCommand{TableID: tableID, First: args[1], Second: args[2]}); err != nil {
		return err
	}
	c.success("Banned %s and %s from sitting together at Table %d", args[1], args[2], tableID)
	return nil
}

func (c *Console) limits(args []string) error {
	if len(args) != 3 {
		return usage("limits <table> <guests> <families>")
	}
	tableID, err := parseTableID(args[0])
	if err != nil {
		return err
	}
	maxGuests, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: guests must be a number, got %q", errors.ErrInvalidArgument, args[1])
	}
	maxFamilies, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("%w: families must be a number, got %q", errors.ErrInvalidArgument, args[2])
	}
	if err := c.service.SetLimits(services.SetLimitsCommand{
		TableID:     tableID,
		MaxGuests:   maxGuests,
		MaxFamilies: maxFamilies,
	}); err != nil {
		return err
	}
	c.success("Table %d now seats %d guests from at most %d families", tableID, maxGuests, maxFamilies)
	return nil
}

func (c *Console) show(args []string) error {
	if len(args) != 1 {
		return usage("show <table>")
	}
	tableID, err := parseTableID(args[0])
	if err != nil {
		return err
	}
	report, err := c.service.TableDetails(tableID)
	if err != nil {
		return err
	}
	c.renderReport(report)
	return nil
}

func parseTableID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: table must be a positive number, got %q", errors.ErrInvalidArgument, arg)
	}
	return id, nil
}

// parseGuestRef accepts a bare name or the "Name (Family)" form guests are
// displayed with.
func parseGuestRef(ref string) (name, familyID string) {
	i := strings.LastIndex(ref, " (")
	if i <= 0 || !strings.HasSuffix(ref, ")") {
		return ref, ""
	}
	return ref[:i], strings.TrimSpace(ref[i+2 : len(ref)-1])
}

func usage(format string) error {
	return fmt.Errorf("%w: usage: %s", errors.ErrInvalidArgument, format)
}

func (c *Console) prompt() {
	_, _ = fmt.Fprint(c.out, "> ")
}

func (c *Console) println(text string) {
	_, _ = fmt.Fprintln(c.out, text)
}

func (c *Console) paint(text string, colors ...color.Color) string {
	if !c.colours {
		return text
	}
	return color.New(colors...).Render(text)
}

func (c *Console) success(format string, args ...any) {
	c.println(c.paint(fmt.Sprintf(format, args...), color.FgGreen))
}

func (c *Console) warn(text string) {
	c.println(c.paint(text, color.FgYellow))
}

func (c *Console) printError(err error) {
	c.log.Debug("command failed", "error", err)
	c.println(c.paint(fmt.Sprintf("Error: %v", err), color.FgRed, color.OpBold))
}
