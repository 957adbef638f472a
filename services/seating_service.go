package services

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"wedding-planner/domain/seating"
	"wedding-planner/errors"
	"wedding-planner/projection"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var validate = validator.New()

type ISeatingService interface {
	LoadSampleData() int
	AddGuest(cmd AddGuestCommand) (*seating.Guest, error)
	CreateTable() TableSummary
	AssignGuest(cmd AssignGuestCommand) error
	AssignFamily(cmd AssignFamilyCommand) error
	Unseat(cmd UnseatCommand) error
	ClearTable(tableID int) error
	BanFamilies(cmd BanFamiliesCommand) error
	SetLimits(cmd SetLimitsCommand) error
	TableDetails(tableID int) (TableReport, error)
	Tables() []TableSummary
	AvailableGuests() []*seating.Guest
	Notifications() []string
	LatestNotification() string
	ClearNotifications()
}

// SeatingService is the collaborator that drives the seating engine on
// behalf of a user interface: it owns the pool of guests not yet seated and
// the tables, and serializes every call since tables are not thread-safe.
type SeatingService struct {
	mu        sync.Mutex
	log       *slog.Logger
	planner   *projection.Planner
	observers []seating.Observer
	limits    Limits
	available []*seating.Guest
	tables    []*seating.Table
}

// NewSeatingService attaches the planner, then every extra observer, to each
// table it creates.
func NewSeatingService(log *slog.Logger, planner *projection.Planner, limits Limits, observers ...seating.Observer) (*SeatingService, error) {
	if err := validate.Struct(limits); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidArgument, err)
	}
	return &SeatingService{
		log:       log,
		planner:   planner,
		observers: observers,
		limits:    limits,
	}, nil
}

// LoadSampleData seeds the available pool and returns how many guests were added.
func (s *SeatingService) LoadSampleData() int {
	added := 0
	for _, cmd := range sampleGuests {
		if _, err := s.AddGuest(cmd); err == nil {
			added++
		}
	}
	s.log.Info("Sample data loaded", "guests", added)
	return added
}

func (s *SeatingService) AddGuest(cmd AddGuestCommand) (*seating.Guest, error) {
	cmd.Name = strings.TrimSpace(cmd.Name)
	cmd.FamilyID = strings.TrimSpace(cmd.FamilyID)
	if err := validate.Struct(cmd); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidArgument, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isKnown(cmd.Name, cmd.FamilyID) {
		return nil, fmt.Errorf("%w: %s (%s)", errors.ErrDuplicateGuest, cmd.Name, cmd.FamilyID)
	}
	guest := seating.NewGuest(cmd.Name, cmd.FamilyID)
	s.available = append(s.available, guest)
	s.log.Debug("Added guest", "guest", guest.Name())
	return guest, nil
}

func (s *SeatingService) isKnown(name, familyID string) bool {
	same := func(g *seating.Guest) bool {
		return g.GuestName() == name && g.FamilyID() == familyID
	}
	if slices.ContainsFunc(s.available, same) {
		return true
	}
	return lo.SomeBy(s.tables, func(t *seating.Table) bool {
		for guest := range t.Guests() {
			if same(guest) {
				return true
			}
		}
		return false
	})
}

// CreateTable numbers tables 1, 2, 3... in creation order.
func (s *SeatingService) CreateTable() TableSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	table := seating.NewTable(len(s.tables)+1,
		seating.WithLogger(s.log),
		seating.WithMaxGuests(s.limits.MaxGuests),
		seating.WithMaxFamilies(s.limits.MaxFamilies),
	)
	table.Attach(s.planner)
	for _, observer := range s.observers {
		table.Attach(observer)
	}
	s.tables = append(s.tables, table)
	s.log.Info("Created table", "table", table.Name())
	return newTableSummary(table)
}

// AssignGuest wraps the guest in a family of one and seats it. A name shared
// by several available guests needs the family id to pick one.
func (s *SeatingService) AssignGuest(cmd AssignGuestCommand) error {
	cmd.GuestName = strings.TrimSpace(cmd.GuestName)
	cmd.FamilyID = strings.TrimSpace(cmd.FamilyID)
	if err := validate.Struct(cmd); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidArgument, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.table(cmd.TableID)
	if err != nil {
		return err
	}
	candidates := lo.Filter(s.available, func(g *seating.Guest, _ int) bool {
		return g.GuestName() == cmd.GuestName && (cmd.FamilyID == "" || g.FamilyID() == cmd.FamilyID)
	})
	if len(candidates) == 0 {
		return fmt.Errorf("%w: %s", errors.ErrGuestNotFound, cmd.GuestName)
	}
	if len(candidates) > 1 {
		families := lo.Map(candidates, func(g *seating.Guest, _ int) string { return g.FamilyID() })
		return fmt.Errorf("%w: %s is in families %s",
			errors.ErrAmbiguousGuest, cmd.GuestName, strings.Join(families, ", "))
	}
	guest := candidates[0]

	family := seating.NewFamily(guest.FamilyID())
	if err := family.Add(guest); err != nil {
		return err
	}
	return s.seat(table, family)
}

// AssignFamily seats every available guest of the family together.
func (s *SeatingService) AssignFamily(cmd AssignFamilyCommand) error {
	cmd.FamilyID = strings.TrimSpace(cmd.FamilyID)
	if err := validate.Struct(cmd); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidArgument, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.table(cmd.TableID)
	if err != nil {
		return err
	}
	members := lo.Filter(s.available, func(g *seating.Guest, _ int) bool {
		return g.FamilyID() == cmd.FamilyID
	})
	if len(members) == 0 {
		return fmt.Errorf("%w: %s", errors.ErrNoFamilyGuests, cmd.FamilyID)
	}

	family := seating.NewFamily(cmd.FamilyID)
	for _, guest := range members {
		if err := family.Add(guest); err != nil {
			return err
		}
	}
	return s.seat(table, family)
}

func (s *SeatingService) seat(table *seating.Table, family *seating.Family) error {
	if !table.CanAdd(family) {
		return fmt.Errorf("%w: cannot assign %s to %s", errors.ErrConstraintViolated, family.Name(), table.Name())
	}
	if err := table.Add(family); err != nil {
		return err
	}
	s.available = lo.Without(s.available, seating.CollectGuests(family)...)
	s.log.Info("Assigned component", "component", family.String(), "table", table.Name())
	return nil
}

// Unseat removes a component from its table and returns its guests to the pool.
func (s *SeatingService) Unseat(cmd UnseatCommand) error {
	cmd.Component = strings.TrimSpace(cmd.Component)
	if err := validate.Struct(cmd); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidArgument, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.table(cmd.TableID)
	if err != nil {
		return err
	}
	component, ok := lo.Find(table.Components(), func(c seating.SeatComponent) bool {
		return matches(c, cmd.Component)
	})
	if !ok {
		return fmt.Errorf("%w: %s at %s", errors.ErrComponentNotFound, cmd.Component, table.Name())
	}
	guests := seating.CollectGuests(component)
	if err := table.Remove(component); err != nil {
		return err
	}
	s.available = append(s.available, guests...)
	s.log.Info("Unseated component", "component", component.Name(), "table", table.Name())
	return nil
}

func matches(component seating.SeatComponent, name string) bool {
	if component.Name() == name {
		return true
	}
	guests := seating.CollectGuests(component)
	return len(guests) == 1 && guests[0].GuestName() == name
}

// ClearTable empties a table and returns its guests to the pool.
func (s *SeatingService) ClearTable(tableID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.table(tableID)
	if err != nil {
		return err
	}
	s.available = append(s.available, table.ClearTable()...)
	return nil
}

func (s *SeatingService) BanFamilies(cmd BanFamiliesCommand) error {
	cmd.First = strings.TrimSpace(cmd.First)
	cmd.Second = strings.TrimSpace(cmd.Second)
	if err := validate.Struct(cmd); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidArgument, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.table(cmd.TableID)
	if err != nil {
		return err
	}
	return table.BanFamilyPair(cmd.First, cmd.Second)
}

// SetLimits changes a table's limits. Guests already seated stay seated.
func (s *SeatingService) SetLimits(cmd SetLimitsCommand) error {
	if err := validate.Struct(cmd); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidArgument, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.table(cmd.TableID)
	if err != nil {
		return err
	}
	table.MaxGuests = cmd.MaxGuests
	table.MaxFamilies = cmd.MaxFamilies
	s.log.Info("Changed table limits", "table", table.Name(),
		"max_guests", cmd.MaxGuests, "max_families", cmd.MaxFamilies)
	return nil
}

func (s *SeatingService) TableDetails(tableID int) (TableReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.table(tableID)
	if err != nil {
		return TableReport{}, err
	}
	return newTableReport(table), nil
}

func (s *SeatingService) Tables() []TableSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo.Map(s.tables, func(t *seating.Table, _ int) TableSummary {
		return newTableSummary(t)
	})
}

func (s *SeatingService) AvailableGuests() []*seating.Guest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.available)
}

func (s *SeatingService) Notifications() []string { return s.planner.Notifications() }

func (s *SeatingService) LatestNotification() string { return s.planner.Latest() }

func (s *SeatingService) ClearNotifications() { s.planner.Clear() }

func (s *SeatingService) table(tableID int) (*seating.Table, error) {
	table, ok := lo.Find(s.tables, func(t *seating.Table) bool {
		return int(t.ID()) == tableID
	})
	if !ok {
		return nil, fmt.Errorf("%w: %d", errors.ErrTableNotFound, tableID)
	}
	return table, nil
}
