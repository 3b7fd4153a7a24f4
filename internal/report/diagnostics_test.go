package report

import (
	"testing"

	"github.com/alexanderramin/dmaicboard/internal/domain"
	"github.com/alexanderramin/dmaicboard/internal/prepare"
	"github.com/alexanderramin/dmaicboard/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

func TestStatusMappings_MessyLog(t *testing.T) {
	p := prepare.Prepare(testutil.NewRawActivityLog())

	got := StatusMappings(p.Records)

	want := []StatusMapping{
		{RawStatus: "Finalizado", Count: 3, Mapped: []domain.OperationalStatus{domain.StatusCompleted}},
		{RawStatus: "En proceso", Count: 1, Mapped: []domain.OperationalStatus{domain.StatusInProgress}},
		{RawStatus: "Sin programar", Count: 2, Mapped: []domain.OperationalStatus{domain.StatusInProgress, domain.StatusNotScheduled}},
		{RawStatus: "Pausado", Count: 1, Mapped: []domain.OperationalStatus{domain.StatusNotScheduled}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("status mappings mismatch (-want +got):\n%s", diff)
	}
}

func TestStatusMappings_Empty(t *testing.T) {
	got := StatusMappings(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}
