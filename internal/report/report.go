package report

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/dmaicboard/internal/domain"
	"github.com/alexanderramin/dmaicboard/internal/prepare"
	"github.com/google/uuid"
)

// snapshotNamespace scopes snapshot IDs to this tool.
var snapshotNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("dmaicboard/snapshot"))

// Report bundles every output computed from one prepared snapshot.
type Report struct {
	SnapshotID string                  `json:"snapshot_id" yaml:"snapshot_id"`
	Records    []domain.ActivityRecord `json:"-" yaml:"-"`
	Phases     []PhaseSummary          `json:"phases" yaml:"phases"`
	Owners     []OwnerSummary          `json:"owners" yaml:"owners"`
	Completion []CompletionBreakdown   `json:"completion" yaml:"completion"`
	Indicators GlobalIndicators        `json:"indicators" yaml:"indicators"`
}

// Build computes all aggregates. The same prepared input always produces
// the same report, including the snapshot ID.
func Build(p *prepare.Prepared) *Report {
	var records []domain.ActivityRecord
	if p != nil {
		records = p.Records
	}
	return &Report{
		SnapshotID: SnapshotID(records),
		Records:    records,
		Phases:     SummarizeByPhase(records),
		Owners:     SummarizeByOwner(records),
		Completion: CompletionByPhase(records),
		Indicators: ComputeIndicators(p),
	}
}

// SnapshotID fingerprints the classified records as a name-based UUID.
func SnapshotID(records []domain.ActivityRecord) string {
	var b strings.Builder
	for _, r := range records {
		fmt.Fprintf(&b, "%d\x1f%s\x1f%s\x1f%s\x1f%s\x1f%s\x1f%s\x1f%g\x1f%s\x1f%s\x1e",
			r.RowIndex, r.Phase, r.Type, r.ActivityName, r.Owner, r.OwnerEmail,
			r.RawStatus, r.CompletionFraction, r.OperationalStatus, r.LabelOr(""))
	}
	return uuid.NewSHA1(snapshotNamespace, []byte(b.String())).String()
}
