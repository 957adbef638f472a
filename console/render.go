package console

import (
	"fmt"
	"strings"

	"wedding-planner/domain/seating"
	"wedding-planner/services"

	"github.com/olekukonko/tablewriter"
)

func (c *Console) newTable(header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(c.out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	return table
}

func (c *Console) renderTables(summaries []services.TableSummary) {
	if len(summaries) == 0 {
		c.println("No tables yet")
		return
	}
	table := c.newTable("ID", "Table", "Guests", "Families")
	for _, s := range summaries {
		table.Append([]string{
			fmt.Sprint(s.ID),
			s.Name,
			fmt.Sprintf("%d/%d", s.GuestCount, s.MaxGuests),
			fmt.Sprintf("%d/%d", s.FamilyCount, s.MaxFamilies),
		})
	}
	table.Render()
}

func (c *Console) renderGuests(guests []*seating.Guest) {
	if len(guests) == 0 {
		c.println("No available guests")
		return
	}
	table := c.newTable("Guest", "Family")
	for _, g := range guests {
		table.Append([]string{g.GuestName(), g.FamilyID()})
	}
	table.Render()
}

func (c *Console) renderReport(report services.TableReport) {
	c.println(fmt.Sprintf("%s Details:", report.Name))
	c.println(fmt.Sprintf("Total Guests: %d/%d", report.GuestCount, report.MaxGuests))
	c.println(fmt.Sprintf("Families: %s (%d/%d)",
		strings.Join(report.Families, ", "), len(report.Families), report.MaxFamilies))

	if len(report.Guests) == 0 {
		c.println("Guests: None")
	} else {
		table := c.newTable("#", "Guest")
		for i, guest := range report.Guests {
			table.Append([]string{fmt.Sprint(i + 1), guest})
		}
		table.Render()
	}

	if len(report.BannedPairs) == 0 {
		c.println("Banned pairs: None")
		return
	}
	c.println(fmt.Sprintf("Banned pairs: %s", strings.Join(report.BannedPairs, "; ")))
}

func (c *Console) renderNotifications(notifications []string) {
	if len(notifications) == 0 {
		c.println("No notifications yet")
		return
	}
	c.println("=== WEDDING PLANNER NOTIFICATIONS ===")
	for _, n := range notifications {
		c.println(n)
	}
	c.println(fmt.Sprintf("\nTotal: %d notifications", len(notifications)))
}
