package prepare

import "github.com/alexanderramin/dmaicboard/internal/domain"

var rawStatusSynonyms = map[string]string{
	domain.RawStatusCompleted:    domain.RawStatusCompleted,
	domain.RawStatusInProgress:   domain.RawStatusInProgress,
	domain.RawStatusNotScheduled: domain.RawStatusNotScheduled,
	"Completed":                  domain.RawStatusCompleted,
	"In progress":                domain.RawStatusInProgress,
	"Not scheduled":              domain.RawStatusNotScheduled,
}

// RecognizedStatus reports whether raw is part of the status vocabulary.
func RecognizedStatus(raw string) bool {
	_, ok := rawStatusSynonyms[raw]
	return ok
}

// Classify derives the operational status of an activity. Completed and
// in-progress labels are taken literally; "not scheduled" and any
// unrecognized label become in progress when the activity is partially
// done (0 < fraction < 1) and not scheduled otherwise.
func Classify(rawStatus string, fraction float64) domain.OperationalStatus {
	switch rawStatusSynonyms[rawStatus] {
	case domain.RawStatusCompleted:
		return domain.StatusCompleted
	case domain.RawStatusInProgress:
		return domain.StatusInProgress
	}
	if fraction > 0 && fraction < 1 {
		return domain.StatusInProgress
	}
	return domain.StatusNotScheduled
}
