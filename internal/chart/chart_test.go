package chart

import (
	"testing"

	"github.com/alexanderramin/dmaicboard/internal/domain"
	"github.com/alexanderramin/dmaicboard/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePhases() []report.PhaseSummary {
	return []report.PhaseSummary{
		{Phase: domain.PhaseDefinition, StatusCounts: report.StatusCounts{Total: 4, Completed: 2, InProgress: 1, NotScheduled: 1}},
		{Phase: domain.PhaseControl, StatusCounts: report.StatusCounts{}},
	}
}

func TestPhaseProgress(t *testing.T) {
	spec := PhaseProgress(samplePhases())

	assert.Equal(t, BarOverlay, spec.Mode)
	assert.Equal(t, []string{"Definición", "Controlar"}, spec.Categories)
	require.Len(t, spec.Series, 3)
	assert.Equal(t, []float64{4, 0}, spec.Series[0].Values)
	assert.Equal(t, []float64{2, 0}, spec.Series[1].Values)
	assert.Equal(t, []float64{1, 0}, spec.Series[2].Values)
}

func TestPhaseComposition_ZeroTotalUsesUnitDenominator(t *testing.T) {
	spec := PhaseComposition(samplePhases())

	require.Len(t, spec.Series, 3)
	assert.Equal(t, []float64{50, 0}, spec.Series[0].Values)
	assert.Equal(t, []float64{25, 0}, spec.Series[1].Values)
	assert.Equal(t, []float64{25, 0}, spec.Series[2].Values)
}

func TestCompletionQuality(t *testing.T) {
	spec := CompletionQuality([]report.CompletionBreakdown{{Phase: domain.PhaseAnalyze, OnTime: 3, Late: 1}})

	assert.Empty(t, spec.Annotation)
	assert.Equal(t, []string{"Analizar"}, spec.Categories)
	assert.Equal(t, []float64{3}, spec.Series[0].Values)
	assert.Equal(t, []float64{1}, spec.Series[1].Values)
}

func TestCompletionQuality_Empty(t *testing.T) {
	spec := CompletionQuality(nil)

	assert.True(t, spec.Empty())
	assert.Equal(t, "No completed activities yet", spec.Annotation)
	assert.Empty(t, spec.Series)
}

func TestAll(t *testing.T) {
	specs := All(&report.Report{Phases: samplePhases()})
	require.Len(t, specs, 3)
	assert.True(t, specs[2].Empty())
}
