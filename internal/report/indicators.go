package report

import (
	"github.com/alexanderramin/dmaicboard/internal/domain"
	"github.com/alexanderramin/dmaicboard/internal/prepare"
)

// GlobalIndicators are the headline KPIs of the activity log.
type GlobalIndicators struct {
	Total           int `json:"total" yaml:"total"`
	Completed       int `json:"completed" yaml:"completed"`
	InProgress      int `json:"in_progress" yaml:"in_progress"`
	NotScheduled    int `json:"not_scheduled" yaml:"not_scheduled"`
	CompletedOnTime int `json:"completed_on_time" yaml:"completed_on_time"`
	CompletedLate   int `json:"completed_late" yaml:"completed_late"`

	// ProgressIndicator is sum(completion) / (total-1) * 100, nil when
	// there are fewer than two rows or no percentage column.
	ProgressIndicator *float64 `json:"progress_indicator" yaml:"progress_indicator"`
	// PctCompletedOnTime is nil when nothing is completed.
	PctCompletedOnTime *float64 `json:"pct_completed_on_time" yaml:"pct_completed_on_time"`
}

// ComputeIndicators tallies the prepared snapshot. It never fails: absent
// columns produce zero counts or nil ratios.
func ComputeIndicators(p *prepare.Prepared) GlobalIndicators {
	var g GlobalIndicators
	if p == nil {
		return g
	}

	var sum float64
	for _, r := range p.Records {
		g.Total++
		sum += r.CompletionFraction
		switch r.OperationalStatus {
		case domain.StatusCompleted:
			g.Completed++
			switch r.LabelOr("") {
			case string(domain.CompletionOnTime):
				g.CompletedOnTime++
			case string(domain.CompletionLate):
				g.CompletedLate++
			}
		case domain.StatusInProgress:
			g.InProgress++
		case domain.StatusNotScheduled:
			g.NotScheduled++
		}
	}

	if p.HasCompletion {
		g.ProgressIndicator = progressIndicator(sum, g.Total)
	}
	if g.Completed > 0 {
		pct := float64(g.CompletedOnTime) / float64(g.Completed) * 100
		g.PctCompletedOnTime = &pct
	}
	return g
}

// progressIndicator divides by n-1. It exceeds 100 when most activities
// are complete and the log is short.
func progressIndicator(sum float64, n int) *float64 {
	if n <= 1 {
		return nil
	}
	v := sum / float64(n-1) * 100
	return &v
}
