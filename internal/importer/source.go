// Package importer loads raw activity-log snapshots from files, URLs and
// SQLite databases into a loosely-typed table.
package importer

import (
	"context"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/dmaicboard/internal/table"
)

// Format identifies how a source is decoded.
type Format string

const (
	FormatAuto   Format = ""
	FormatCSV    Format = "csv"
	FormatJSON   Format = "json"
	FormatSQLite Format = "sqlite"
)

// DefaultSQLiteTable is read when a SQLite source names no table.
const DefaultSQLiteTable = "Actividades"

// Source describes where a snapshot comes from.
type Source struct {
	// Location is a local path or an http(s) URL.
	Location string
	Format   Format
	// Table selects the table of a SQLite source.
	Table string
}

// Loader reads sources. The zero value uses http.DefaultClient.
type Loader struct {
	HTTPClient *http.Client
	Timeout    time.Duration
}

// NewLoader returns a Loader whose remote fetches time out after timeout.
func NewLoader(timeout time.Duration) *Loader {
	return &Loader{
		HTTPClient: &http.Client{Timeout: timeout},
		Timeout:    timeout,
	}
}

// Load reads the whole snapshot into memory. On error no table is returned.
func (l *Loader) Load(ctx context.Context, src Source) (*table.Table, error) {
	if strings.TrimSpace(src.Location) == "" {
		return nil, &SourceError{Kind: KindInvalid, Location: src.Location, Err: errNoLocation}
	}

	format := src.Format
	if format == FormatAuto {
		format = detectFormat(src.Location)
	}

	if isRemote(src.Location) {
		if format == FormatSQLite {
			return nil, &SourceError{Kind: KindInvalid, Location: src.Location, Err: errRemoteSQLite}
		}
		return l.fetch(ctx, src.Location, format)
	}

	switch format {
	case FormatSQLite:
		name := src.Table
		if name == "" {
			name = DefaultSQLiteTable
		}
		return loadSQLite(ctx, src.Location, name)
	case FormatJSON:
		return loadFile(src.Location, decodeJSON)
	default:
		return loadFile(src.Location, decodeCSV)
	}
}

func isRemote(location string) bool {
	u, err := url.Parse(location)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

func detectFormat(location string) Format {
	p := location
	if u, err := url.Parse(location); err == nil && u.Path != "" {
		p = u.Path
	}
	switch strings.ToLower(filepath.Ext(p)) {
	case ".json":
		return FormatJSON
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	default:
		return FormatCSV
	}
}
