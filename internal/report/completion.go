package report

import (
	"sort"

	"github.com/alexanderramin/dmaicboard/internal/domain"
)

// CompletionBreakdown counts completed activities of a phase by schedule.
type CompletionBreakdown struct {
	Phase  domain.Phase `json:"phase" yaml:"phase"`
	OnTime int          `json:"on_time" yaml:"on_time"`
	Late   int          `json:"late" yaml:"late"`
}

// CompletionByPhase cross-tabulates completed activities by phase and
// completion label. Only phases with at least one completed activity
// appear; the result is empty when nothing is completed. Labels other
// than On time and Late are counted in neither column.
func CompletionByPhase(records []domain.ActivityRecord) []CompletionBreakdown {
	idx := make(map[domain.Phase]int)
	out := []CompletionBreakdown{}
	for _, r := range records {
		if !r.IsCompleted() {
			continue
		}
		i, ok := idx[r.Phase]
		if !ok {
			i = len(out)
			idx[r.Phase] = i
			out = append(out, CompletionBreakdown{Phase: r.Phase})
		}
		switch r.LabelOr("") {
		case string(domain.CompletionOnTime):
			out[i].OnTime++
		case string(domain.CompletionLate):
			out[i].Late++
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return domain.PhaseLess(out[i].Phase, out[j].Phase) })
	return out
}
