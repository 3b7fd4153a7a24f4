package prepare

import (
	"github.com/alexanderramin/dmaicboard/internal/domain"
	"github.com/alexanderramin/dmaicboard/internal/table"
)

// Prepared is the classified snapshot every report is computed from.
type Prepared struct {
	// Table is the normalized table with the derived status and
	// completion columns appended.
	Table   *table.Table
	Records []domain.ActivityRecord

	// HasCompletion is false when the source had no percentage column.
	HasCompletion bool
	// HasSchedule is false when the source had no schedule column.
	HasSchedule bool
}

// Prepare normalizes raw and classifies every row. The result has the same
// row count as raw; data-quality problems never fail the preparation.
func Prepare(raw *table.Table, opts ...Option) *Prepared {
	o := newOptions(opts)
	t := Normalize(raw, opts...)

	p := &Prepared{
		Table:         t,
		Records:       make([]domain.ActivityRecord, 0, t.Len()),
		HasCompletion: t.Has(ColPercent),
		HasSchedule:   t.Has(ColSchedule),
	}

	counts := make(map[domain.OperationalStatus]int, 3)
	for i, row := range t.Rows {
		rec := domain.ActivityRecord{
			RowIndex:       i,
			Phase:          domain.Phase(textCell(row, ColPhase)),
			Type:           textCell(row, ColType),
			ActivityName:   textCell(row, ColActivity),
			Owner:          textCell(row, ColOwner),
			OwnerEmail:     textCell(row, ColOwnerEmail),
			RawStatus:      textCell(row, ColStatus),
			ScheduleStatus: optionalTextCell(row, ColSchedule),
		}
		if f, ok := row[ColPercent].(float64); ok {
			rec.CompletionFraction = f
		}

		rec.OperationalStatus = Classify(rec.RawStatus, rec.CompletionFraction)
		if rec.RawStatus != "" && !RecognizedStatus(rec.RawStatus) {
			o.logger.Debug("status outside vocabulary", "row", i, "status", rec.RawStatus)
		}
		rec.CompletionLabel = CompletionLabelFor(rec.OperationalStatus, rec.ScheduleStatus)
		counts[rec.OperationalStatus]++

		row[ColOperational] = string(rec.OperationalStatus)
		if rec.CompletionLabel != nil {
			row[ColCompletion] = string(*rec.CompletionLabel)
		} else {
			row[ColCompletion] = nil
		}
		p.Records = append(p.Records, rec)
	}
	t.Columns = append(t.Columns, ColOperational, ColCompletion)

	o.logger.Debug("preparation complete",
		"rows", len(p.Records),
		"completed", counts[domain.StatusCompleted],
		"in_progress", counts[domain.StatusInProgress],
		"not_scheduled", counts[domain.StatusNotScheduled],
	)
	return p
}

func textCell(row table.Row, col string) string {
	s, _ := row[col].(string)
	return s
}

func optionalTextCell(row table.Row, col string) *string {
	s, ok := row[col].(string)
	if !ok || s == "" {
		return nil
	}
	return &s
}
