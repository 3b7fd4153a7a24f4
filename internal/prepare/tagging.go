package prepare

import "github.com/alexanderramin/dmaicboard/internal/domain"

var scheduleSynonyms = map[string]domain.CompletionLabel{
	domain.RawScheduleOnTime:        domain.CompletionOnTime,
	domain.RawScheduleLate:          domain.CompletionLate,
	string(domain.CompletionOnTime): domain.CompletionOnTime,
	string(domain.CompletionLate):   domain.CompletionLate,
}

// CanonicalSchedule maps a schedule label to On time / Late. Unknown
// labels are returned unchanged with ok=false.
func CanonicalSchedule(label string) (domain.CompletionLabel, bool) {
	if l, ok := scheduleSynonyms[label]; ok {
		return l, true
	}
	return domain.CompletionLabel(label), false
}

// CompletionLabelFor returns the completion label of an activity: nil
// unless it is completed, the schedule label when one is recorded, and
// On time when the schedule is absent.
func CompletionLabelFor(status domain.OperationalStatus, schedule *string) *domain.CompletionLabel {
	if status != domain.StatusCompleted {
		return nil
	}
	label := domain.CompletionOnTime
	if schedule != nil && *schedule != "" {
		label, _ = CanonicalSchedule(*schedule)
	}
	return &label
}
