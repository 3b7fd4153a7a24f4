package domain

// Phase is a DMAIC phase label. Known phases have a fixed display order;
// any other label is carried through as-is so it can surface in reports.
type Phase string

const (
	PhaseDefinition  Phase = "Definición"
	PhaseMeasurement Phase = "Medición"
	PhaseAnalyze     Phase = "Analizar"
	PhaseImplement   Phase = "Implementar"
	PhaseControl     Phase = "Controlar"
)

var knownPhases = []Phase{
	PhaseDefinition,
	PhaseMeasurement,
	PhaseAnalyze,
	PhaseImplement,
	PhaseControl,
}

// KnownPhases returns the canonical phases in display order.
func KnownPhases() []Phase {
	out := make([]Phase, len(knownPhases))
	copy(out, knownPhases)
	return out
}

// Rank returns the position of the phase in the canonical order.
// Unknown labels share the rank after the last known phase.
func (p Phase) Rank() int {
	for i, k := range knownPhases {
		if p == k {
			return i
		}
	}
	return len(knownPhases)
}

// Known reports whether p is one of the canonical phases.
func (p Phase) Known() bool {
	return p.Rank() < len(knownPhases)
}

// PhaseLess is the total order used for every phase-sorted output:
// canonical rank first, then label for phases outside the vocabulary.
func PhaseLess(a, b Phase) bool {
	ra, rb := a.Rank(), b.Rank()
	if ra != rb {
		return ra < rb
	}
	return a < b
}

// Raw status labels as they appear in the activity log.
const (
	RawStatusCompleted    = "Finalizado"
	RawStatusInProgress   = "En proceso"
	RawStatusNotScheduled = "Sin programar"
)

type OperationalStatus string

const (
	StatusCompleted    OperationalStatus = "Completed"
	StatusInProgress   OperationalStatus = "In progress"
	StatusNotScheduled OperationalStatus = "Not scheduled"
)

// Valid reports whether s is one of the three operational statuses.
func (s OperationalStatus) Valid() bool {
	switch s {
	case StatusCompleted, StatusInProgress, StatusNotScheduled:
		return true
	}
	return false
}

// Raw schedule labels as they appear in the activity log.
const (
	RawScheduleOnTime = "A tiempo"
	RawScheduleLate   = "Con retraso"
)

type CompletionLabel string

const (
	CompletionOnTime CompletionLabel = "On time"
	CompletionLate   CompletionLabel = "Late"
)
