package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/napolitain/unisim/internal/models"
)

var bannerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("14")).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("6")).
	Padding(0, 2)

func printBanner(w io.Writer) {
	fmt.Fprintln(w, bannerStyle.Render("University Simulation\nyearly resource allocation"))
	fmt.Fprintln(w)
}

// printer renders the event stream, coloured by the part of the year
type printer struct {
	out   io.Writer
	quiet bool
	year  int

	phase  map[models.Phase]*color.Color
	banner *color.Color
}

func newPrinter(out io.Writer, quiet bool) *printer {
	return &printer{
		out:   out,
		quiet: quiet,
		phase: map[models.Phase]*color.Color{
			models.PhaseStart:  color.New(color.FgGreen),
			models.PhaseDuring: color.New(color.FgCyan),
			models.PhaseEnd:    color.New(color.FgRed),
		},
		banner: color.New(color.FgYellow, color.Bold),
	}
}

func (p *printer) Emit(e models.Event) {
	if p.quiet {
		return
	}
	if e.Year != p.year {
		p.year = e.Year
		p.banner.Fprintf(p.out, "Year %d:\n", e.Year)
	}
	p.phase[e.Kind.Phase()].Fprintln(p.out, describe(e))
}

func describe(e models.Event) string {
	switch e.Kind {
	case models.EventBuilt:
		return fmt.Sprintf("Built %s %q for %s coins.", e.Facility, e.Subject, coins(e.Amount))
	case models.EventUpgraded:
		return fmt.Sprintf("Upgraded %s %q for %s coins.", e.Facility, e.Subject, coins(e.Amount))
	case models.EventCollectedTuition:
		return fmt.Sprintf("Collected %s coins in tuition.", coins(e.Amount))
	case models.EventCollectedProfit:
		return fmt.Sprintf("Collected %s coins profit from %s %q.", coins(e.Amount), e.Facility, e.Subject)
	case models.EventHired:
		return fmt.Sprintf("Hired %s for %s coins a year.", e.Subject, coins(e.Amount))
	case models.EventInstructed:
		return fmt.Sprintf("%s instructed %.0f students.", e.Subject, e.Amount)
	case models.EventReputationGained:
		return fmt.Sprintf("Gained %.0f reputation from instruction.", e.Amount)
	case models.EventPaidMaintenance:
		return fmt.Sprintf("Paid %s coins in maintenance costs.", coins(e.Amount))
	case models.EventPaidSalaries:
		return fmt.Sprintf("Paid %s coins in staff salaries.", coins(e.Amount))
	case models.EventReputationLost:
		return fmt.Sprintf("Lost %.0f reputation due to uninstructed students.", e.Amount)
	case models.EventRetired:
		return fmt.Sprintf("%s retired after %.0f years of teaching.", e.Subject, e.Amount)
	case models.EventLeft:
		return fmt.Sprintf("%s left the university.", e.Subject)
	case models.EventSkipped:
		return fmt.Sprintf("Skipped %s %q.", e.Facility, e.Subject)
	}
	return e.Kind.String()
}

func coins(v float64) string {
	return humanize.CommafWithDigits(v, 2)
}

// observeYear prints the end of year line
func (p *printer) observeYear(_ context.Context, s models.YearSummary) error {
	p.banner.Fprintf(p.out, "End of Year %d: Budget: %s Reputation: %s Students: %s\n",
		s.Year, coins(s.Budget), humanize.Comma(int64(s.Reputation)), humanize.Comma(int64(s.Students)))
	if !p.quiet {
		fmt.Fprintln(p.out)
	}
	return nil
}

func printSummaryTable(summaries []models.YearSummary) {
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Year", "Budget", "Reputation", "Students", "Staff", "Candidates"}),
	)
	for _, s := range summaries {
		row := []string{
			strconv.Itoa(s.Year),
			coins(s.Budget),
			humanize.Comma(int64(s.Reputation)),
			humanize.Comma(int64(s.Students)),
			strconv.Itoa(s.Staff),
			strconv.Itoa(s.Candidates),
		}
		_ = table.Append(row)
	}
	_ = table.Render()
}
