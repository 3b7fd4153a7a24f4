package formatter

import (
	"strings"
	"testing"

	"github.com/alexanderramin/dmaicboard/internal/chart"
	"github.com/alexanderramin/dmaicboard/internal/domain"
	"github.com/alexanderramin/dmaicboard/internal/report"
	"github.com/stretchr/testify/assert"
)

var chartPhases = []report.PhaseSummary{
	{Phase: domain.PhaseDefinition, StatusCounts: report.StatusCounts{Total: 4, Completed: 2, InProgress: 1, NotScheduled: 1}},
	{Phase: domain.PhaseControl, StatusCounts: report.StatusCounts{Total: 2, NotScheduled: 2}},
}

func TestFormatChart_Overlay(t *testing.T) {
	out := stripANSI(FormatChart(chart.PhaseProgress(chartPhases), 20))

	assert.Contains(t, out, "PROGRESS BY PHASE")
	assert.Contains(t, out, "Definición\n")
	assert.Contains(t, out, "Total activities")
	// Largest value spans the full width.
	assert.Contains(t, out, strings.Repeat(filledBlock, 20)+" 4")
	assert.Contains(t, out, strings.Repeat(filledBlock, 10)+" 2")
}

func TestFormatChart_Stacked(t *testing.T) {
	out := stripANSI(FormatChart(chart.PhaseComposition(chartPhases), 20))

	assert.Contains(t, out, "50 / 25 / 25")
	assert.Contains(t, out, "0 / 0 / 100")
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "Controlar") {
			assert.Equal(t, 20, strings.Count(line, filledBlock))
		}
	}
}

func TestFormatChart_EmptyShowsAnnotation(t *testing.T) {
	out := stripANSI(FormatChart(chart.CompletionQuality(nil), 20))

	assert.Contains(t, out, "COMPLETION QUALITY BY PHASE")
	assert.Contains(t, out, "No completed activities yet")
}
