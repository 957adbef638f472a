package services

import (
	"wedding-planner/domain/seating"

	"github.com/samber/lo"
)

type TableReport struct {
	ID          int
	Name        string
	Guests      []string
	Families    []string
	GuestCount  int
	MaxGuests   int
	MaxFamilies int
	BannedPairs []string
}

type TableSummary struct {
	ID          int
	Name        string
	GuestCount  int
	MaxGuests   int
	FamilyCount int
	MaxFamilies int
}

func newTableReport(table *seating.Table) TableReport {
	return TableReport{
		ID:   int(table.ID()),
		Name: table.Name(),
		Guests: lo.Map(seating.CollectGuests(table), func(g *seating.Guest, _ int) string {
			return g.Name()
		}),
		Families:    table.Families().Sorted(),
		GuestCount:  table.GuestCount(),
		MaxGuests:   table.MaxGuests,
		MaxFamilies: table.MaxFamilies,
		BannedPairs: table.BannedPairs(),
	}
}

func newTableSummary(table *seating.Table) TableSummary {
	return TableSummary{
		ID:          int(table.ID()),
		Name:        table.Name(),
		GuestCount:  table.GuestCount(),
		MaxGuests:   table.MaxGuests,
		FamilyCount: len(table.Families()),
		MaxFamilies: table.MaxFamilies,
	}
}
