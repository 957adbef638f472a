package e2e

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"wedding-planner/console"
	"wedding-planner/domain/seating"
	"wedding-planner/observability"
	"wedding-planner/projection"
	"wedding-planner/services"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

type BasePlannerSuite struct {
	suite.Suite
	Config Config
}

// Session is one planner instance driven through its console.
type Session struct {
	Console *console.Console
	Service *services.SeatingService
	Monitor *observability.SeatingMonitor
	Out     *bytes.Buffer
}

// SetupSuite loads the environment configuration before running tests
func (s *BasePlannerSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

func (s *BasePlannerSuite) logger() *slog.Logger {
	if s.Config.DebugLog {
		return logs.GetLoggerFromLevel(slog.LevelDebug)
	}
	return logs.GetLoggerFromLevel(slog.LevelError)
}

// NewSession builds a planner with sample guests and the given extra observers.
func (s *BasePlannerSuite) NewSession(observers ...seating.Observer) *Session {
	log := s.logger()
	planner := projection.NewPlanner(log, "E2E Planner").WithClock(func() time.Time {
		return time.Date(2026, time.June, 20, 16, 0, 0, 0, time.UTC)
	})
	monitor := observability.NewSeatingMonitor(log)
	service, err := services.NewSeatingService(log, planner, services.Limits{
		MaxGuests:   seating.DefaultMaxGuests,
		MaxFamilies: seating.DefaultMaxFamilies,
	}, append([]seating.Observer{monitor}, observers...)...)
	s.Require().NoError(err)
	service.LoadSampleData()

	out := &bytes.Buffer{}
	return &Session{
		Console: console.NewConsole(log, service, out, false),
		Service: service,
		Monitor: monitor,
		Out:     out,
	}
}

// Script runs each line as a console command under a colorized step header
// and returns what the console printed.
func (s *BasePlannerSuite) Script(session *Session, name string, lines ...string) string {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)

	session.Out.Reset()
	for _, line := range lines {
		quit, err := session.Console.Execute(line)
		s.Require().NoError(err, "command failed: "+line)
		s.Require().False(quit)
	}
	output := session.Out.String()
	s.T().Log(strings.TrimSpace(output))
	return output
}
