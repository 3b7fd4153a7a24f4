// Package table holds the loosely-typed tabular snapshot read from an
// activity log before it is normalized into domain records.
package table

import (
	"math"
	"strconv"
	"strings"
)

// Row maps column names to cell values. Cells are string, float64, int64,
// bool or nil; any other type is rendered with strconv-style formatting.
type Row map[string]any

// Table is an ordered set of columns plus rows. Rows may omit columns.
type Table struct {
	Columns []string
	Rows    []Row
}

// New creates an empty table with the given columns.
func New(columns ...string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{Columns: cols}
}

// Append adds a row built from values matched positionally to Columns.
// Missing trailing values are left unset.
func (t *Table) Append(values ...any) {
	row := make(Row, len(t.Columns))
	for i, c := range t.Columns {
		if i < len(values) {
			row[c] = values[i]
		}
	}
	t.Rows = append(t.Rows, row)
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Has reports whether the table carries a column named col.
func (t *Table) Has(col string) bool {
	if t == nil {
		return false
	}
	for _, c := range t.Columns {
		if c == col {
			return true
		}
	}
	return false
}

// Select returns a new table keeping only the allowed columns that are
// present, in allow-list order. Absent columns are skipped.
func (t *Table) Select(allow []string) *Table {
	out := New()
	if t == nil {
		return out
	}
	for _, c := range allow {
		if t.Has(c) && !out.Has(c) {
			out.Columns = append(out.Columns, c)
		}
	}
	out.Rows = make([]Row, len(t.Rows))
	for i, r := range t.Rows {
		nr := make(Row, len(out.Columns))
		for _, c := range out.Columns {
			if v, ok := r[c]; ok {
				nr[c] = v
			}
		}
		out.Rows[i] = nr
	}
	return out
}

// Rename changes a column name in place. It is a no-op when from is
// absent; when to already exists the from column replaces it.
func (t *Table) Rename(from, to string) {
	if t == nil || from == to || !t.Has(from) {
		return
	}
	cols := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		switch c {
		case to:
			continue
		case from:
			cols = append(cols, to)
		default:
			cols = append(cols, c)
		}
	}
	t.Columns = cols
	for _, r := range t.Rows {
		v, ok := r[from]
		delete(r, from)
		delete(r, to)
		if ok {
			r[to] = v
		}
	}
}

// Clone returns a deep copy of the column list and rows.
func (t *Table) Clone() *Table {
	out := New(t.Columns...)
	out.Rows = make([]Row, len(t.Rows))
	for i, r := range t.Rows {
		nr := make(Row, len(r))
		for k, v := range r {
			nr[k] = v
		}
		out.Rows[i] = nr
	}
	return out
}

// Get returns the value of col in row i, or nil when unset.
func (t *Table) Get(i int, col string) any {
	if t == nil || i < 0 || i >= len(t.Rows) {
		return nil
	}
	return t.Rows[i][col]
}

var missingMarkers = map[string]bool{
	"":     true,
	"nan":  true,
	"none": true,
	"null": true,
	"<na>": true,
}

// IsMissing reports whether v is a missing-value marker: nil, NaN, or one
// of the textual markers spreadsheet exports use for empty cells.
func IsMissing(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(x)
	case string:
		return missingMarkers[strings.ToLower(strings.TrimSpace(x))]
	}
	return false
}

// Text coerces a cell to text. ok is false for missing values, in which
// case the returned string is empty.
func Text(v any) (s string, ok bool) {
	if IsMissing(v) {
		return "", false
	}
	switch x := v.(type) {
	case string:
		return x, true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case bool:
		return strconv.FormatBool(x), true
	case []byte:
		return string(x), true
	case interface{ String() string }:
		return x.String(), true
	}
	return "", false
}
