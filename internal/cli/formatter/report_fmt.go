package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/dmaicboard/internal/report"
)

const indicatorBarWidth = 20

var countAligns = []Align{AlignLeft, AlignRight, AlignRight, AlignRight, AlignRight, AlignRight}

// FormatPhaseTable renders the per-phase status counts in phase order.
func FormatPhaseTable(phases []report.PhaseSummary) string {
	if len(phases) == 0 {
		return Dim("No activities") + "\n"
	}
	rows := make([][]string, 0, len(phases))
	for _, p := range phases {
		rows = append(rows, countRow(PhaseLabel(p.Phase), p.StatusCounts))
	}
	return RenderTableAligned(countHeaders("PHASE"), rows, countAligns)
}

// FormatOwnerTable renders the per-owner status counts, busiest owner first.
func FormatOwnerTable(owners []report.OwnerSummary) string {
	if len(owners) == 0 {
		return Dim("No activities") + "\n"
	}
	rows := make([][]string, 0, len(owners))
	for _, o := range owners {
		name := o.Owner
		if name == "" {
			name = Dim("(unassigned)")
		}
		rows = append(rows, countRow(name, o.StatusCounts))
	}
	return RenderTableAligned(countHeaders("OWNER"), rows, countAligns)
}

func countHeaders(first string) []string {
	return []string{first, "TOTAL", "COMPLETED", "IN PROGRESS", "NOT SCHEDULED", "DONE"}
}

func countRow(label string, c report.StatusCounts) []string {
	return []string{
		label,
		strconv.Itoa(c.Total),
		strconv.Itoa(c.Completed),
		strconv.Itoa(c.InProgress),
		strconv.Itoa(c.NotScheduled),
		FormatShare(c.Completed, c.Total),
	}
}

// FormatCompletionTable renders on-time and late completions per phase.
func FormatCompletionTable(rows []report.CompletionBreakdown) string {
	if len(rows) == 0 {
		return Dim("No completed activities yet") + "\n"
	}
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			PhaseLabel(r.Phase),
			strconv.Itoa(r.OnTime),
			strconv.Itoa(r.Late),
			FormatShare(r.OnTime, r.OnTime+r.Late),
		})
	}
	return RenderTableAligned(
		[]string{"PHASE", "ON TIME", "LATE", "ON TIME %"},
		out,
		[]Align{AlignLeft, AlignRight, AlignRight, AlignRight},
	)
}

// FormatIndicators renders the headline KPIs. Unavailable ratios show "--".
func FormatIndicators(g report.GlobalIndicators) string {
	lines := [][2]string{
		{"Total activities", strconv.Itoa(g.Total)},
		{"Completed", StyleGreen.Render(strconv.Itoa(g.Completed))},
		{"In progress", StyleBlue.Render(strconv.Itoa(g.InProgress))},
		{"Not scheduled", StyleRed.Render(strconv.Itoa(g.NotScheduled))},
		{"Progress indicator", indicatorValue(g.ProgressIndicator)},
	}
	if g.Completed > 0 {
		lines = append(lines,
			[2]string{"Completed on time", strconv.Itoa(g.CompletedOnTime)},
			[2]string{"Completed late", strconv.Itoa(g.CompletedLate)},
		)
	}
	lines = append(lines, [2]string{"On-time completion", indicatorValue(g.PctCompletedOnTime)})

	width := 0
	for _, l := range lines {
		width = max(width, len(l[0]))
	}
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(padRight(Dim(l[0]), width+2))
		b.WriteString(l[1])
		b.WriteString("\n")
	}
	return b.String()
}

func indicatorValue(v *float64) string {
	if v == nil {
		return Dim("--")
	}
	// The progress indicator can exceed 100 on small logs; the bar saturates.
	return RenderProgress(*v/100, indicatorBarWidth) + " " + Dim(FormatPercent(v))
}

// FormatWarnings renders data-quality findings, or nothing when there are none.
func FormatWarnings(warnings []string) string {
	if len(warnings) == 0 {
		return ""
	}
	var b strings.Builder
	for _, w := range warnings {
		b.WriteString(StyleYellow.Render("  WARNING: "+w) + "\n")
	}
	return b.String()
}

// FormatReport renders the full report as a stack of boxed sections.
func FormatReport(r *report.Report, warnings []string) string {
	sections := []string{
		RenderBox("Indicators", FormatIndicators(r.Indicators)),
		RenderBox("By phase", FormatPhaseTable(r.Phases)),
	}
	if r.Indicators.Completed > 0 {
		sections = append(sections, RenderBox("Completion quality", FormatCompletionTable(r.Completion)))
	}
	sections = append(sections, RenderBox("By owner", FormatOwnerTable(r.Owners)))
	if len(warnings) > 0 {
		sections = append(sections, RenderBox("Data quality", FormatWarnings(warnings)))
	}

	var b strings.Builder
	for _, s := range sections {
		b.WriteString(s)
		b.WriteString("\n")
	}
	n := len(r.Records)
	b.WriteString(Dim(fmt.Sprintf("%d %s · snapshot %s", n, pluralize(n, "activity", "activities"), r.SnapshotID)))
	b.WriteString("\n")
	return b.String()
}

// FormatStatusMappings renders how each raw status label was classified.
func FormatStatusMappings(mappings []report.StatusMapping) string {
	if len(mappings) == 0 {
		return Dim("No activities") + "\n"
	}
	rows := make([][]string, 0, len(mappings))
	for _, m := range mappings {
		raw := m.RawStatus
		if raw == "" {
			raw = Dim("(empty)")
		}
		pills := make([]string, len(m.Mapped))
		for i, s := range m.Mapped {
			pills[i] = StatusPill(s)
		}
		rows = append(rows, []string{raw, strconv.Itoa(m.Count), strings.Join(pills, ", ")})
	}
	return RenderTableAligned(
		[]string{"RAW STATUS", "ROWS", "CLASSIFIED AS"},
		rows,
		[]Align{AlignLeft, AlignRight, AlignLeft},
	)
}
