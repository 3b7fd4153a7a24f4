// Package prepare turns a raw activity-log table into classified
// activity records: schema normalization, status classification and
// completion tagging.
package prepare

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/alexanderramin/dmaicboard/internal/domain"
	"github.com/alexanderramin/dmaicboard/internal/table"
)

// Source column names, spelled exactly as the activity log exports them.
const (
	ColPhase       = "Fase"
	ColType        = "Tipo"
	ColActivity    = "Actividad"
	ColOwner       = "Responsable"
	ColStatus      = "Estado"
	ColPercentRaw  = "Porcetaje"
	ColPercent     = "Porcentaje"
	ColSchedule    = "Cronograma"
	ColOwnerEmail  = "Correo responsable"
	ColOperational = "EstadoOp"
	ColCompletion  = "Finalización"
)

// AllowList is the set of columns retained by Normalize, in output order.
// Both spellings of the percentage column are accepted so that an
// already-normalized table normalizes to itself.
var AllowList = []string{
	ColPhase, ColType, ColActivity, ColOwner, ColStatus,
	ColPercentRaw, ColPercent, ColSchedule, ColOwnerEmail,
}

var textColumns = []string{
	ColPhase, ColType, ColActivity, ColOwner, ColStatus, ColSchedule, ColOwnerEmail,
}

var phaseDictionary = map[string]domain.Phase{
	"Definicion":  domain.PhaseDefinition,
	"Definición":  domain.PhaseDefinition,
	"Medicion":    domain.PhaseMeasurement,
	"Medición":    domain.PhaseMeasurement,
	"Analizar":    domain.PhaseAnalyze,
	"Implementar": domain.PhaseImplement,
	"Controlar":   domain.PhaseControl,
}

// CanonicalPhase maps a trimmed phase label to its canonical form by exact
// dictionary lookup. Labels outside the dictionary, including case variants,
// are returned unchanged.
func CanonicalPhase(label string) domain.Phase {
	if p, ok := phaseDictionary[label]; ok {
		return p
	}
	return domain.Phase(label)
}

// ParseNumber parses a decimal number written with either "." or "," as
// separator. Hex literals and digit separators are rejected. Out-of-range
// values keep the infinity strconv reports.
func ParseNumber(s string) (float64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	digits := strings.TrimLeft(s, "+-")
	if strings.Contains(s, "_") || strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return f, true
		}
		return 0, false
	}
	return f, true
}

// ParseFraction converts a percentage cell to a completion fraction.
// A comma decimal separator is accepted; unparsable or missing values
// become 0 and the result is clamped to [0, 1].
func ParseFraction(v any) float64 {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case int64:
		f = float64(x)
	case int:
		f = float64(x)
	default:
		s, ok := table.Text(v)
		if !ok {
			return 0
		}
		parsed, ok := ParseNumber(s)
		if !ok {
			return 0
		}
		f = parsed
	}
	if math.IsNaN(f) {
		return 0
	}
	return math.Max(0, math.Min(1, f))
}

// Normalize returns a cleaned copy of raw: allow-listed columns only, the
// misspelled percentage column renamed, text trimmed, phases canonical and
// percentages parsed. Missing text cells stay nil. The input is not
// modified and an empty or nil table yields an empty table.
func Normalize(raw *table.Table, opts ...Option) *table.Table {
	o := newOptions(opts)

	t := raw.Select(AllowList)
	o.logger.Debug("columns retained", "columns", t.Columns, "rows", t.Len())

	if t.Has(ColPercentRaw) {
		t.Rename(ColPercentRaw, ColPercent)
		o.logger.Debug("column renamed", "from", ColPercentRaw, "to", ColPercent)
	}

	for _, col := range textColumns {
		if !t.Has(col) {
			continue
		}
		for _, row := range t.Rows {
			s, ok := table.Text(row[col])
			if !ok {
				row[col] = nil
				continue
			}
			row[col] = strings.TrimSpace(s)
		}
	}

	if t.Has(ColPhase) {
		for _, row := range t.Rows {
			label, ok := row[ColPhase].(string)
			if !ok {
				continue
			}
			phase := CanonicalPhase(label)
			if !phase.Known() {
				o.logger.Debug("phase outside vocabulary", "phase", label)
			}
			row[ColPhase] = string(phase)
		}
	}

	if t.Has(ColPercent) {
		for _, row := range t.Rows {
			row[ColPercent] = ParseFraction(row[ColPercent])
		}
	}

	return t
}
