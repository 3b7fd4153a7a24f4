package testutil

import (
	"github.com/alexanderramin/dmaicboard/internal/domain"
	"github.com/alexanderramin/dmaicboard/internal/table"
)

// Record options
type RecordOption func(*domain.ActivityRecord)

func WithPhase(p domain.Phase) RecordOption {
	return func(r *domain.ActivityRecord) {
		r.Phase = p
	}
}

func WithOwner(owner string) RecordOption {
	return func(r *domain.ActivityRecord) {
		r.Owner = owner
	}
}

func WithStatus(s domain.OperationalStatus) RecordOption {
	return func(r *domain.ActivityRecord) {
		r.OperationalStatus = s
	}
}

func WithFraction(f float64) RecordOption {
	return func(r *domain.ActivityRecord) {
		r.CompletionFraction = f
	}
}

// WithCompleted marks the record completed with the given label.
func WithCompleted(label domain.CompletionLabel) RecordOption {
	return func(r *domain.ActivityRecord) {
		r.OperationalStatus = domain.StatusCompleted
		r.CompletionLabel = &label
	}
}

// NewTestRecord returns a not-scheduled Definition activity with no progress.
func NewTestRecord(opts ...RecordOption) domain.ActivityRecord {
	r := domain.ActivityRecord{
		Phase:             domain.PhaseDefinition,
		Type:              "Documento",
		ActivityName:      "Test activity",
		Owner:             "Test Owner",
		OperationalStatus: domain.StatusNotScheduled,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// ActivityLogColumns is the column layout of the shared activity log export,
// including the bookkeeping columns the normalizer drops.
var ActivityLogColumns = []string{
	"@odata.etag", "ItemInternalId", "Fase", "Tipo", "Actividad", "Responsable",
	"Estado", "Porcetaje", "Cronograma", "Correo responsable",
}

// NewRawActivityLog returns a small messy activity log as a data source
// would deliver it: unaccented phases, padded text, comma decimals,
// missing schedule cells and one unrecognized status.
func NewRawActivityLog() *table.Table {
	t := table.New(ActivityLogColumns...)
	t.Append("W/1", "1", "Definicion", "Documento", "Project charter", "Ana Gómez", "Finalizado", "1,0", "A tiempo", "ana@example.com")
	t.Append("W/2", "2", "Definicion", "Reunión", "Kick-off", " Ana Gómez ", "Finalizado", "1", nil, "ana@example.com")
	t.Append("W/3", "3", "Medicion", "Dato", "Baseline sampling", "Luis Pérez", "En proceso", "0,5", nil, "luis@example.com")
	t.Append("W/4", "4", "Medicion", "Dato", "Gauge R&R", "Luis Pérez", "Finalizado", "1,0", "Con retraso", "luis@example.com")
	t.Append("W/5", "5", "Analizar", "Análisis", "Root cause", "Marta Ruiz", "Sin programar", "0,25", nil, "marta@example.com")
	t.Append("W/6", "6", "Implementar", "Plan", "Pilot", "Marta Ruiz", "Sin programar", "0", nil, "marta@example.com")
	t.Append("W/7", "7", "Controlar", "Plan", "Control plan", "Ana Gómez", "Pausado", "abc", nil, "ana@example.com")
	return t
}
