// Package chart builds chart-ready specifications from report tables.
// Specs describe series and layout only; rendering is left to the caller.
package chart

import (
	"github.com/alexanderramin/dmaicboard/internal/report"
)

type BarMode string

const (
	BarOverlay BarMode = "overlay"
	BarStack   BarMode = "stack"
)

// Series is one named bar trace.
type Series struct {
	Name    string    `json:"name" yaml:"name"`
	Values  []float64 `json:"values" yaml:"values"`
	Color   string    `json:"color" yaml:"color"`
	Opacity float64   `json:"opacity,omitempty" yaml:"opacity,omitempty"`
}

// Spec is a bar chart over categorical X labels.
type Spec struct {
	Title      string   `json:"title" yaml:"title"`
	XTitle     string   `json:"x_title" yaml:"x_title"`
	YTitle     string   `json:"y_title" yaml:"y_title"`
	Mode       BarMode  `json:"bar_mode" yaml:"bar_mode"`
	Categories []string `json:"categories" yaml:"categories"`
	Series     []Series `json:"series" yaml:"series"`
	// Annotation replaces the plot when there is nothing to draw.
	Annotation string `json:"annotation,omitempty" yaml:"annotation,omitempty"`
}

// Empty reports whether the spec has no data points.
func (s Spec) Empty() bool {
	return len(s.Categories) == 0
}

// PhaseProgress overlays total, completed and in-progress counts per phase.
func PhaseProgress(phases []report.PhaseSummary) Spec {
	spec := Spec{
		Title:  "Progress by phase: total vs completed vs in progress",
		XTitle: "Phase",
		YTitle: "Activities",
		Mode:   BarOverlay,
	}
	total := Series{Name: "Total activities", Color: "orange", Opacity: 0.5}
	completed := Series{Name: "Completed", Color: "green", Opacity: 0.9}
	inProgress := Series{Name: "In progress", Color: "royalblue", Opacity: 0.9}
	for _, p := range phases {
		spec.Categories = append(spec.Categories, string(p.Phase))
		total.Values = append(total.Values, float64(p.Total))
		completed.Values = append(completed.Values, float64(p.Completed))
		inProgress.Values = append(inProgress.Values, float64(p.InProgress))
	}
	spec.Series = []Series{total, completed, inProgress}
	return spec
}

// PhaseComposition stacks the status shares of each phase in percent.
// A phase with zero activities divides by one and shows all zeros.
func PhaseComposition(phases []report.PhaseSummary) Spec {
	spec := Spec{
		Title:  "Composition by phase (%)",
		XTitle: "Phase",
		YTitle: "Percent (%)",
		Mode:   BarStack,
	}
	completed := Series{Name: "Completed %", Color: "green"}
	inProgress := Series{Name: "In progress %", Color: "royalblue"}
	notScheduled := Series{Name: "Not scheduled %", Color: "lightcoral"}
	for _, p := range phases {
		denom := float64(p.Total)
		if denom == 0 {
			denom = 1
		}
		spec.Categories = append(spec.Categories, string(p.Phase))
		completed.Values = append(completed.Values, float64(p.Completed)/denom*100)
		inProgress.Values = append(inProgress.Values, float64(p.InProgress)/denom*100)
		notScheduled.Values = append(notScheduled.Values, float64(p.NotScheduled)/denom*100)
	}
	spec.Series = []Series{completed, inProgress, notScheduled}
	return spec
}

// CompletionQuality stacks on-time and late completions per phase.
func CompletionQuality(breakdown []report.CompletionBreakdown) Spec {
	spec := Spec{
		Title:  "Completion quality by phase",
		XTitle: "Phase",
		YTitle: "Completed activities",
		Mode:   BarStack,
	}
	if len(breakdown) == 0 {
		spec.Annotation = "No completed activities yet"
		return spec
	}
	onTime := Series{Name: "On time", Color: "darkgreen"}
	late := Series{Name: "Late", Color: "darkred"}
	for _, b := range breakdown {
		spec.Categories = append(spec.Categories, string(b.Phase))
		onTime.Values = append(onTime.Values, float64(b.OnTime))
		late.Values = append(late.Values, float64(b.Late))
	}
	spec.Series = []Series{onTime, late}
	return spec
}

// All returns the three dashboard charts for a report.
func All(r *report.Report) []Spec {
	return []Spec{
		PhaseProgress(r.Phases),
		PhaseComposition(r.Phases),
		CompletionQuality(r.Completion),
	}
}
