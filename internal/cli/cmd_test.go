package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/dmaicboard/internal/config"
	"github.com/alexanderramin/dmaicboard/internal/contract"
	"github.com/alexanderramin/dmaicboard/internal/importer"
	"github.com/alexanderramin/dmaicboard/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const activityCSV = "@odata.etag,Fase,Tipo,Actividad,Responsable,Estado,Porcetaje,Cronograma\n" +
	"W/1,Definicion,Documento,Project charter,Ana Gómez,Finalizado,\"1,0\",A tiempo\n" +
	"W/2,Medicion,Dato,Baseline sampling,Luis Pérez,En proceso,\"0,5\",\n" +
	"W/3,Medicion,Dato,Gauge R&R,Luis Pérez,Finalizado,1,Con retraso\n" +
	"W/4,Analizar,Análisis,Root cause,Marta Ruiz,Sin programar,0,\n"

// testApp wires a full App reading a temporary CSV activity log.
func testApp(t *testing.T) *App {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Actividades.csv")
	require.NoError(t, os.WriteFile(path, []byte(activityCSV), 0644))

	cfg := config.DefaultConfig()
	cfg.Source = path
	return &App{
		Reports: service.NewReportService(importer.NewLoader(time.Second)),
		Config:  cfg,
	}
}

func runCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestPhasesCmd_CSV(t *testing.T) {
	out, err := runCmd(t, testApp(t), "phases", "--format", "csv")
	require.NoError(t, err)

	want := "phase,total,completed,in_progress,not_scheduled\n" +
		"Definición,1,1,0,0\n" +
		"Medición,2,1,1,0\n" +
		"Analizar,1,0,0,1\n"
	assert.Equal(t, want, out)
}

func TestPhasesCmd_Text(t *testing.T) {
	out, err := runCmd(t, testApp(t), "phases")
	require.NoError(t, err)

	assert.Contains(t, out, "PHASE")
	assert.Contains(t, out, "Medición")
	assert.Contains(t, out, "NOT SCHEDULED")
}

func TestOwnersCmd_CSV(t *testing.T) {
	out, err := runCmd(t, testApp(t), "owners", "-o", "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "owner,total,completed,in_progress,not_scheduled", lines[0])
	assert.Equal(t, "Luis Pérez,2,1,1,0", lines[1])
	assert.Equal(t, "Ana Gómez,1,1,0,0", lines[2])
	assert.Equal(t, "Marta Ruiz,1,0,0,1", lines[3])
}

func TestCompletionCmd_CSV(t *testing.T) {
	out, err := runCmd(t, testApp(t), "completion", "--format", "csv")
	require.NoError(t, err)

	assert.Equal(t, "phase,on_time,late\nDefinición,1,0\nMedición,0,1\n", out)
}

func TestIndicatorsCmd_JSON(t *testing.T) {
	out, err := runCmd(t, testApp(t), "indicators", "--format", "json")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, float64(4), got["total"])
	assert.Equal(t, float64(2), got["completed"])
	assert.Equal(t, float64(1), got["in_progress"])
	assert.Equal(t, float64(1), got["not_scheduled"])
	assert.InDelta(t, 250.0/3.0, got["progress_indicator"], 1e-9)
	assert.InDelta(t, 50.0, got["pct_completed_on_time"], 1e-9)
}

func TestIndicatorsCmd_CSVNullsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "one.csv")
	require.NoError(t, os.WriteFile(path, []byte("Fase,Estado\nDefinicion,En proceso\n"), 0644))

	out, err := runCmd(t, testApp(t), "indicators", "--source", path, "--format", "csv")
	require.NoError(t, err)

	assert.Contains(t, out, "progress_indicator,\n")
	assert.Contains(t, out, "pct_completed_on_time,\n")
	assert.Contains(t, out, "in_progress,1\n")
}

func TestReportCmd_YAML(t *testing.T) {
	out, err := runCmd(t, testApp(t), "report", "--format", "yaml")
	require.NoError(t, err)

	var doc reportDocument
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.NotEmpty(t, doc.SnapshotID)
	assert.Equal(t, 4, doc.Indicators.Total)
	require.Len(t, doc.Phases, 3)
	assert.Equal(t, 2, doc.Phases[1].Total)
	require.Len(t, doc.Completion, 2)
	assert.Equal(t, 1, doc.Completion[1].Late)
	assert.Empty(t, doc.Warnings)
}

func TestReportCmd_TextIsStable(t *testing.T) {
	app := testApp(t)
	first, err := runCmd(t, app, "report")
	require.NoError(t, err)
	second, err := runCmd(t, app, "report")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "INDICATORS")
	assert.Contains(t, first, "4 activities")
}

func TestReportCmd_CSVUnsupported(t *testing.T) {
	_, err := runCmd(t, testApp(t), "report", "--format", "csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not support csv")
}

func TestPreparedCmd_CSV(t *testing.T) {
	out, err := runCmd(t, testApp(t), "prepared", "--format", "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Fase,Tipo,Actividad,Responsable,Estado,Porcentaje,Cronograma,EstadoOp,Finalización", lines[0])
	assert.Equal(t, "Definición,Documento,Project charter,Ana Gómez,Finalizado,1,A tiempo,Completed,On time", lines[1])
	assert.Equal(t, "Medición,Dato,Baseline sampling,Luis Pérez,En proceso,0.5,,In progress,", lines[2])
}

func TestPreparedCmd_YAMLKeepsColumnOrder(t *testing.T) {
	out, err := runCmd(t, testApp(t), "prepared", "--format", "yaml")
	require.NoError(t, err)

	first := strings.Index(out, "Fase:")
	last := strings.Index(out, "Finalización:")
	require.GreaterOrEqual(t, first, 0)
	assert.Greater(t, last, first)
	assert.Contains(t, out, "Cronograma: null")
}

func TestPreparedCmd_TextLimit(t *testing.T) {
	out, err := runCmd(t, testApp(t), "prepared", "--limit", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "Project charter")
	assert.NotContains(t, out, "Root cause")
	assert.Contains(t, out, "3 more rows")
}

func TestChartsCmd(t *testing.T) {
	out, err := runCmd(t, testApp(t), "charts", "--width", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "PROGRESS BY PHASE")
	assert.Contains(t, out, "COMPOSITION BY PHASE")
	assert.Contains(t, out, "COMPLETION QUALITY BY PHASE")

	out, err = runCmd(t, testApp(t), "charts", "--format", "json")
	require.NoError(t, err)
	var specs []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &specs))
	require.Len(t, specs, 3)
	assert.Equal(t, "overlay", specs[0]["bar_mode"])
	assert.Equal(t, "stack", specs[1]["bar_mode"])
}

func TestInspectCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messy.csv")
	require.NoError(t, os.WriteFile(path, []byte("Fase,Responsable,Estado,Porcetaje\nMejorar,Ana,Pausado,abc\n"), 0644))

	out, err := runCmd(t, testApp(t), "inspect", "--source", path)
	require.NoError(t, err)
	assert.Contains(t, out, "1 rows")
	assert.Contains(t, out, "Pausado")
	assert.Contains(t, out, "unknown phase \"Mejorar\"")

	out, err = runCmd(t, testApp(t), "inspect", "--source", path, "--format", "json")
	require.NoError(t, err)
	var doc inspectDocument
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 1, doc.Rows)
	require.Len(t, doc.StatusMappings, 1)
	assert.Equal(t, "Pausado", doc.StatusMappings[0].RawStatus)
	assert.NotEmpty(t, doc.Warnings)
}

func TestCmd_UnknownOutputFormat(t *testing.T) {
	_, err := runCmd(t, testApp(t), "phases", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestCmd_UnknownInputFormat(t *testing.T) {
	_, err := runCmd(t, testApp(t), "phases", "--input-format", "xlsx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown input format")
}

func TestCmd_MissingSource(t *testing.T) {
	_, err := runCmd(t, testApp(t), "report", "--source", filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)

	var repErr *contract.ReportError
	require.ErrorAs(t, err, &repErr)
	assert.Equal(t, contract.ReportErrSourceNotFound, repErr.Code)
	assert.True(t, strings.HasPrefix(FormatError(err), "activity log not found"))
}

func TestDashboardCmd_RequiresTerminal(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return false }

	_, err := runCmd(t, app, "dashboard")
	assert.ErrorIs(t, err, errNotInteractive)
}

func TestFormatError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"unavailable", &contract.ReportError{Code: contract.ReportErrSourceUnavailable, Message: "502"}, "activity log is temporarily unavailable, try again later: 502"},
		{"invalid", &contract.ReportError{Code: contract.ReportErrInvalidSource, Message: "bad json"}, "activity log cannot be read: bad json"},
		{"plain", assert.AnError, assert.AnError.Error()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatError(tt.err))
		})
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in   string
		want outputFormat
	}{
		{"", outputText},
		{"TEXT", outputText},
		{"json", outputJSON},
		{"yml", outputYAML},
		{" csv ", outputCSV},
	}
	for _, tt := range tests {
		got, err := parseOutputFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
