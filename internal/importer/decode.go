package importer

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/alexanderramin/dmaicboard/internal/table"
)

type decoder func(r io.Reader) (*table.Table, error)

func loadFile(path string, decode decoder) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		kind := KindInvalid
		if errors.Is(err, os.ErrNotExist) {
			kind = KindNotFound
		}
		return nil, &SourceError{Kind: kind, Location: path, Err: err}
	}
	defer f.Close()

	t, err := decode(f)
	if err != nil {
		return nil, &SourceError{Kind: KindInvalid, Location: path, Err: err}
	}
	return t, nil
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decodeCSV reads a comma-separated export with a header row. Header names
// are kept verbatim; empty cells are stored as nil.
func decodeCSV(r io.Reader) (*table.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}
	if len(records) == 0 {
		return table.New(), nil
	}

	t := table.New(records[0]...)
	for _, rec := range records[1:] {
		values := make([]any, len(rec))
		for i, cell := range rec {
			if cell == "" {
				values[i] = nil
				continue
			}
			values[i] = cell
		}
		t.Append(values...)
	}
	return t, nil
}

// decodeJSON reads an array of flat objects. Columns are ordered by first
// appearance, keys within one object alphabetically.
func decodeJSON(r io.Reader) (*table.Table, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var objs []map[string]any
	if err := dec.Decode(&objs); err != nil {
		return nil, fmt.Errorf("parsing json: %w", err)
	}

	t := table.New()
	seen := make(map[string]bool)
	for _, obj := range objs {
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		row := make(table.Row, len(obj))
		for _, k := range keys {
			if !seen[k] {
				seen[k] = true
				t.Columns = append(t.Columns, k)
			}
			row[k] = jsonCell(obj[k])
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func jsonCell(v any) any {
	switch x := v.(type) {
	case json.Number:
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x.String()
	case string, bool, nil:
		return x
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return nil
		}
		return string(b)
	}
}
