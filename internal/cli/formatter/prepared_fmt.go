package formatter

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/dmaicboard/internal/domain"
	"github.com/alexanderramin/dmaicboard/internal/prepare"
	"github.com/alexanderramin/dmaicboard/internal/table"
)

// FormatPrepared renders the normalized table. A positive limit shows only
// the first limit rows followed by a count of the hidden ones.
func FormatPrepared(t *table.Table, limit int) string {
	if t == nil || t.Len() == 0 {
		return Dim("No activities") + "\n"
	}
	shown := t.Rows
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}

	rows := make([][]string, 0, len(shown))
	for _, row := range shown {
		cells := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			cells[i] = preparedCell(col, row[col])
		}
		rows = append(rows, cells)
	}

	out := RenderTable(t.Columns, rows)
	if hidden := t.Len() - len(shown); hidden > 0 {
		out += Dim(fmt.Sprintf("… %d more %s", hidden, pluralize(hidden, "row", "rows"))) + "\n"
	}
	return out
}

func preparedCell(col string, v any) string {
	if table.IsMissing(v) {
		return Dim("--")
	}
	switch col {
	case prepare.ColOperational:
		if s, ok := v.(string); ok {
			return StatusPill(domain.OperationalStatus(s))
		}
	case prepare.ColPercent:
		if f, ok := v.(float64); ok {
			return strconv.FormatFloat(f*100, 'f', 0, 64) + "%"
		}
	}
	s, _ := table.Text(v)
	return s
}
