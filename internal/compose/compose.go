// Package compose assembles the markdown briefing from a finished report.
package compose

import (
	"fmt"
	"strings"

	"github.com/wexpand/talentboard/internal/report"
)

const dateLayout = "Jan 02, 2006"

// Briefing renders the report as a markdown document: velocity verdict,
// sourcing alerts, recruiter workload, terna activity and the funnel. The
// CLI prints it as-is; the server renders it to HTML.
func Briefing(r *report.Report) string {
	var sections []string

	header := fmt.Sprintf("# Recruiting briefing (%s)\n\n%s to %s, %d rows",
		r.Period.Label(),
		r.Start.Format(dateLayout),
		r.End.Format(dateLayout),
		r.RowCount,
	)
	if r.Position != "" && r.Position != report.AllPositions {
		header += ", position " + r.Position
	}
	sections = append(sections, header)

	sections = append(sections, velocitySection(r))
	sections = append(sections, alertsSection(r.Alerts))
	sections = append(sections, workloadSection(r.Workloads))
	sections = append(sections, ternaSection(r.Ternas))
	sections = append(sections, funnelSection(r.Funnel))

	return strings.Join(sections, "\n\n") + "\n"
}

func velocitySection(r *report.Report) string {
	v := r.Velocity
	switch {
	case !v.HasOpening && !v.HasHire:
		return "## Hiring velocity\n\nNo open positions and no hires in the selected window."
	case !v.HasOpening:
		return "## Hiring velocity\n\nNo open positions in the selected window."
	case !v.HasHire:
		return "## Hiring velocity\n\nNo hires recorded in the selected window."
	case v.Slow:
		return fmt.Sprintf(
			"## Hiring velocity\n\n**Slow:** %d days from opening to the last hire. Consider adjusting filters or speeding up interviews.",
			v.Days,
		)
	default:
		return fmt.Sprintf("## Hiring velocity\n\n**On track:** hired within %d days.", v.Days)
	}
}

func alertsSection(alerts []report.Alert) string {
	if len(alerts) == 0 {
		return "## Sourcing alerts\n\nNo open positions."
	}
	var lines []string
	for _, a := range alerts {
		lines = append(lines, fmt.Sprintf("- **%s** (%d business days open, %d candidates): %s",
			a.Position, a.BusinessDaysOpen, a.TotalCandidates, a.Message))
	}
	return "## Sourcing alerts\n\n" + strings.Join(lines, "\n")
}

func workloadSection(workloads []report.Workload) string {
	if len(workloads) == 0 {
		return "## Recruiter workload\n\nNo positions are currently open."
	}
	lines := []string{
		"| Recruiter | Open positions | Load |",
		"| --- | --- | --- |",
	}
	for _, w := range workloads {
		lines = append(lines, fmt.Sprintf("| %s | %d (%s) | %s |",
			w.Recruiter, w.Count(), strings.Join(w.OpenPositions, ", "), w.Level))
	}
	return "## Recruiter workload\n\n" + strings.Join(lines, "\n")
}

func ternaSection(ternas []report.TernaSummary) string {
	if len(ternas) == 0 {
		return "## Terna activity\n\nNo shortlist submissions in the selected window."
	}
	var lines []string
	for _, t := range ternas {
		last := t.Events[len(t.Events)-1]
		lines = append(lines, fmt.Sprintf("- **%s**: %d submissions, %d candidates; last on %s (day %d after opening)",
			t.Position, t.Submissions, t.Candidates,
			last.Date.Format(dateLayout), last.BusinessDayOffset))
	}
	return "## Terna activity\n\n" + strings.Join(lines, "\n")
}

func funnelSection(funnel []report.StageSum) string {
	if len(funnel) == 0 {
		return "## Funnel\n\nNo candidate movement in the selected window."
	}
	var parts []string
	for _, s := range funnel {
		parts = append(parts, fmt.Sprintf("%s %d", s.Label, s.Total))
	}
	return "## Funnel\n\n" + strings.Join(parts, " > ")
}
