package prepare

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/alexanderramin/dmaicboard/internal/domain"
	"github.com/alexanderramin/dmaicboard/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepare_EndToEndScenario(t *testing.T) {
	raw := table.New("Fase", "Estado", "Porcetaje", "Cronograma")
	raw.Append("Definicion", "Finalizado", "1,0", nil)
	raw.Append("Medicion", "En proceso", "0,5", nil)

	p := Prepare(raw)

	require.Len(t, p.Records, 2)
	assert.Equal(t, domain.PhaseDefinition, p.Records[0].Phase)
	assert.Equal(t, domain.PhaseMeasurement, p.Records[1].Phase)
	assert.Equal(t, domain.StatusCompleted, p.Records[0].OperationalStatus)
	assert.Equal(t, domain.StatusInProgress, p.Records[1].OperationalStatus)
	assert.Equal(t, "On time", p.Records[0].LabelOr(""))
	assert.Nil(t, p.Records[1].CompletionLabel)
	assert.True(t, p.HasCompletion)
	assert.True(t, p.HasSchedule)
}

func TestPrepare_DerivedColumnsOnTable(t *testing.T) {
	raw := table.New("Fase", "Estado", "Porcetaje", "Cronograma")
	raw.Append("Analizar", "Finalizado", "1", "Con retraso")
	raw.Append("Analizar", "Sin programar", "0", nil)

	p := Prepare(raw)

	assert.Equal(t, []string{ColPhase, ColStatus, ColPercent, ColSchedule, ColOperational, ColCompletion}, p.Table.Columns)
	assert.Equal(t, "Completed", p.Table.Rows[0][ColOperational])
	assert.Equal(t, "Late", p.Table.Rows[0][ColCompletion])
	assert.Equal(t, "Not scheduled", p.Table.Rows[1][ColOperational])
	assert.Nil(t, p.Table.Rows[1][ColCompletion])
}

func TestPrepare_MissingOptionalColumns(t *testing.T) {
	raw := table.New("Estado")
	raw.Append("Finalizado")
	raw.Append("Sin programar")

	p := Prepare(raw)

	require.Len(t, p.Records, 2)
	assert.False(t, p.HasCompletion)
	assert.False(t, p.HasSchedule)
	assert.Equal(t, domain.Phase(""), p.Records[0].Phase)
	assert.Equal(t, 0.0, p.Records[0].CompletionFraction)
	assert.Nil(t, p.Records[0].ScheduleStatus)
	assert.Equal(t, "On time", p.Records[0].LabelOr(""))
}

func TestPrepare_EmptyInput(t *testing.T) {
	p := Prepare(table.New("Fase", "Estado"))
	assert.Empty(t, p.Records)
	assert.Equal(t, 0, p.Table.Len())

	p = Prepare(nil)
	assert.Empty(t, p.Records)
}

func TestPrepare_StatusAlwaysCanonical(t *testing.T) {
	raw := table.New("Estado", "Porcetaje")
	raw.Append("???", "0,3")
	raw.Append(nil, nil)
	raw.Append(3.0, "x")

	for _, rec := range Prepare(raw).Records {
		assert.True(t, rec.OperationalStatus.Valid())
	}
}

func TestPrepare_LogsDiagnosticsWithoutAffectingResult(t *testing.T) {
	raw := table.New("Fase", "Estado", "Porcetaje")
	raw.Append("Mejorar", "Pausado", "0,4")

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logged := Prepare(raw, WithLogger(logger))
	silent := Prepare(raw)

	assert.Contains(t, buf.String(), "status outside vocabulary")
	assert.Contains(t, buf.String(), "phase outside vocabulary")
	assert.Equal(t, silent.Records, logged.Records)
}
