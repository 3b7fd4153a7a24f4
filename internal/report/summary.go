// Package report aggregates prepared activity records into the phase,
// owner and completion tables and the global indicators.
package report

import (
	"sort"

	"github.com/alexanderramin/dmaicboard/internal/domain"
)

// StatusCounts tallies activities by operational status.
type StatusCounts struct {
	Total        int `json:"total" yaml:"total"`
	Completed    int `json:"completed" yaml:"completed"`
	InProgress   int `json:"in_progress" yaml:"in_progress"`
	NotScheduled int `json:"not_scheduled" yaml:"not_scheduled"`
}

type PhaseSummary struct {
	Phase        domain.Phase `json:"phase" yaml:"phase"`
	StatusCounts `yaml:",inline"`
}

type OwnerSummary struct {
	Owner        string `json:"owner" yaml:"owner"`
	StatusCounts `yaml:",inline"`
}

// floorNotScheduled derives the not-scheduled count from the other counts,
// never returning a negative value.
func floorNotScheduled(total, completed, inProgress int) int {
	n := total - completed - inProgress
	if n < 0 {
		return 0
	}
	return n
}

func (c *StatusCounts) add(status domain.OperationalStatus) {
	c.Total++
	switch status {
	case domain.StatusCompleted:
		c.Completed++
	case domain.StatusInProgress:
		c.InProgress++
	}
}

func (c *StatusCounts) finish() {
	c.NotScheduled = floorNotScheduled(c.Total, c.Completed, c.InProgress)
}

// countBy groups records by key, preserving first-seen key order.
func countBy[K comparable](records []domain.ActivityRecord, key func(domain.ActivityRecord) K) ([]K, map[K]*StatusCounts) {
	var keys []K
	groups := make(map[K]*StatusCounts)
	for _, r := range records {
		k := key(r)
		c, ok := groups[k]
		if !ok {
			c = &StatusCounts{}
			groups[k] = c
			keys = append(keys, k)
		}
		c.add(r.OperationalStatus)
	}
	for _, c := range groups {
		c.finish()
	}
	return keys, groups
}

// SummarizeByPhase returns one row per distinct phase, in phase order.
func SummarizeByPhase(records []domain.ActivityRecord) []PhaseSummary {
	keys, groups := countBy(records, func(r domain.ActivityRecord) domain.Phase { return r.Phase })
	out := make([]PhaseSummary, 0, len(keys))
	for _, k := range keys {
		out = append(out, PhaseSummary{Phase: k, StatusCounts: *groups[k]})
	}
	sort.SliceStable(out, func(i, j int) bool { return domain.PhaseLess(out[i].Phase, out[j].Phase) })
	return out
}

// SummarizeByOwner returns one row per distinct owner, busiest owners
// first and ties broken by name.
func SummarizeByOwner(records []domain.ActivityRecord) []OwnerSummary {
	keys, groups := countBy(records, func(r domain.ActivityRecord) string { return r.Owner })
	out := make([]OwnerSummary, 0, len(keys))
	for _, k := range keys {
		out = append(out, OwnerSummary{Owner: k, StatusCounts: *groups[k]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Owner < out[j].Owner
	})
	return out
}
