package importer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/dmaicboard/internal/prepare"
	"github.com/alexanderramin/dmaicboard/internal/table"
)

var requiredForReports = []string{prepare.ColPhase, prepare.ColOwner, prepare.ColStatus}

// Inspect reports data-quality findings on a raw snapshot. Findings are
// informational: every snapshot can still be prepared.
func Inspect(t *table.Table) []string {
	var warnings []string
	if t == nil || t.Len() == 0 {
		return []string{"snapshot has no rows"}
	}

	for _, col := range requiredForReports {
		if !t.Has(col) {
			warnings = append(warnings, fmt.Sprintf("column %q is missing", col))
		}
	}
	if !t.Has(prepare.ColPercentRaw) && !t.Has(prepare.ColPercent) {
		warnings = append(warnings, fmt.Sprintf("column %q is missing; progress indicator unavailable", prepare.ColPercentRaw))
	}

	unknownPhases := make(map[string]int)
	unknownStatuses := make(map[string]int)
	var badPercent int
	for _, row := range t.Rows {
		if s, ok := table.Text(row[prepare.ColPhase]); ok {
			s = strings.TrimSpace(s)
			if !prepare.CanonicalPhase(s).Known() {
				unknownPhases[s]++
			}
		}
		if s, ok := table.Text(row[prepare.ColStatus]); ok {
			s = strings.TrimSpace(s)
			if !prepare.RecognizedStatus(s) {
				unknownStatuses[s]++
			}
		}
		pct := row[prepare.ColPercentRaw]
		if pct == nil {
			pct = row[prepare.ColPercent]
		}
		if s, ok := table.Text(pct); ok && !parsesAsNumber(s) {
			badPercent++
		}
	}

	for _, label := range sortedKeys(unknownPhases) {
		msg := fmt.Sprintf("unknown phase %q on %d row(s)", label, unknownPhases[label])
		if p, ok := suggestPhase(label); ok {
			msg += fmt.Sprintf("; did you mean %q?", string(p))
		}
		warnings = append(warnings, msg)
	}
	for _, label := range sortedKeys(unknownStatuses) {
		warnings = append(warnings, fmt.Sprintf("unrecognized status %q on %d row(s); classified by percentage", label, unknownStatuses[label]))
	}
	if badPercent > 0 {
		warnings = append(warnings, fmt.Sprintf("%d percentage value(s) could not be parsed and count as 0", badPercent))
	}
	return warnings
}

func parsesAsNumber(s string) bool {
	_, ok := prepare.ParseNumber(s)
	return ok
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
