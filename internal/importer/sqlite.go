package importer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/alexanderramin/dmaicboard/internal/db"
	"github.com/alexanderramin/dmaicboard/internal/table"
)

func loadSQLite(ctx context.Context, path, name string) (*table.Table, error) {
	database, err := db.OpenDB(path, true)
	if err != nil {
		kind := KindInvalid
		if errors.Is(err, os.ErrNotExist) {
			kind = KindNotFound
		}
		return nil, &SourceError{Kind: kind, Location: path, Err: err}
	}
	defer database.Close()

	names, err := db.ListTables(ctx, database)
	if err != nil {
		return nil, &SourceError{Kind: KindInvalid, Location: path, Err: err}
	}
	if !slices.Contains(names, name) {
		return nil, &SourceError{Kind: KindNotFound, Location: path,
			Err: fmt.Errorf("table %q not found (have %v)", name, names)}
	}

	t, err := db.ReadTable(ctx, database, name)
	if err != nil {
		return nil, &SourceError{Kind: KindInvalid, Location: path, Err: err}
	}
	return t, nil
}
