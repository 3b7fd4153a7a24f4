package prepare

import (
	"testing"

	"github.com/alexanderramin/dmaicboard/internal/domain"
	"github.com/alexanderramin/dmaicboard/internal/table"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawActivityLog() *table.Table {
	t := table.New("@odata.etag", "Fase", "Tipo", "Actividad", "Responsable",
		"Estado", "Porcetaje", "Cronograma", "Correo responsable", "ItemInternalId")
	t.Append("W/1", " Definicion ", "Doc", " Charter ", "Ana ", "Finalizado", "1,0", nil, "ana@example.com", "1")
	t.Append("W/2", "Medicion", "Dato", "Baseline", " Luis", " En proceso", "0,5", "nan", "luis@example.com", "2")
	t.Append("W/3", "Mejorar", "Plan", "Pilot", "Ana", "Pausado", "abc", "A tiempo", nil, "3")
	return t
}

func TestNormalize_SelectsRenamesAndTrims(t *testing.T) {
	got := Normalize(rawActivityLog())

	assert.Equal(t, []string{
		ColPhase, ColType, ColActivity, ColOwner, ColStatus,
		ColPercent, ColSchedule, ColOwnerEmail,
	}, got.Columns)
	require.Equal(t, 3, got.Len())

	first := got.Rows[0]
	assert.Equal(t, "Definición", first[ColPhase])
	assert.Equal(t, "Charter", first[ColActivity])
	assert.Equal(t, "Ana", first[ColOwner])
	assert.Equal(t, 1.0, first[ColPercent])
	assert.Nil(t, first[ColSchedule])

	second := got.Rows[1]
	assert.Equal(t, "Medición", second[ColPhase])
	assert.Equal(t, "En proceso", second[ColStatus])
	assert.Equal(t, "Luis", second[ColOwner])
	assert.Nil(t, second[ColSchedule], "textual NaN is a missing marker")

	third := got.Rows[2]
	assert.Equal(t, "Mejorar", third[ColPhase], "unknown phase passes through")
	assert.Equal(t, 0.0, third[ColPercent])
	assert.Nil(t, third[ColOwnerEmail])
}

func TestNormalize_DoesNotModifyInput(t *testing.T) {
	raw := rawActivityLog()
	_ = Normalize(raw)

	assert.True(t, raw.Has("Porcetaje"))
	assert.Equal(t, " Definicion ", raw.Rows[0]["Fase"])
}

func TestNormalize_Idempotent(t *testing.T) {
	once := Normalize(rawActivityLog())
	twice := Normalize(once)

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("normalizing a normalized table changed it (-once +twice):\n%s", diff)
	}
}

func TestNormalize_EmptyAndMissingColumns(t *testing.T) {
	assert.Equal(t, 0, Normalize(nil).Len())
	assert.Empty(t, Normalize(table.New()).Columns)

	onlyStatus := table.New("Estado", "Other")
	onlyStatus.Append("Finalizado", 1)
	got := Normalize(onlyStatus)
	assert.Equal(t, []string{ColStatus}, got.Columns)
	assert.Equal(t, "Finalizado", got.Rows[0][ColStatus])
}

func TestNormalize_NumericCellsInTextColumns(t *testing.T) {
	raw := table.New("Responsable", "Tipo")
	raw.Append(int64(42), 1.5)

	got := Normalize(raw)
	assert.Equal(t, "42", got.Rows[0][ColOwner])
	assert.Equal(t, "1.5", got.Rows[0][ColType])
}

func TestCanonicalPhase(t *testing.T) {
	tests := []struct {
		in   string
		want domain.Phase
	}{
		{"Definicion", domain.PhaseDefinition},
		{"Definición", domain.PhaseDefinition},
		{"DEFINICION", "DEFINICION"},
		{"definicion", "definicion"},
		{"ANALIZAR", "ANALIZAR"},
		{"medición", "medición"},
		{"Medicion", domain.PhaseMeasurement},
		{"Analizar", domain.PhaseAnalyze},
		{"Implementar", domain.PhaseImplement},
		{"Controlar", domain.PhaseControl},
		{"Mejorar", "Mejorar"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonicalPhase(tt.in))
		})
	}
}

func TestParseFraction(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"comma decimal", "0,75", 0.75},
		{"dot decimal", "0.25", 0.25},
		{"padded", " 0,5 ", 0.5},
		{"garbage", "abc", 0},
		{"missing", nil, 0},
		{"empty", "", 0},
		{"over one", 1.5, 1},
		{"over one text", "1,5", 1},
		{"negative", "-0,2", 0},
		{"integer", int64(1), 1},
		{"float", 0.4, 0.4},
		{"overflow", "1e400", 1},
		{"negative overflow", "-1e400", 0},
		{"infinity", "Inf", 1},
		{"hex float", "0x1p-1", 0},
		{"signed hex float", "-0x1p-1", 0},
		{"digit separator", "1_0", 0},
		{"exponent", "5e-1", 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseFraction(tt.in), 1e-9)
		})
	}
}
