package testutil

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/dmaicboard/internal/db"
	"github.com/alexanderramin/dmaicboard/internal/table"
)

// NewTestActivityDB writes t into a fresh SQLite file as tableName (all
// columns TEXT, values stored as given) and returns the file path.
func NewTestActivityDB(tb testing.TB, tableName string, t *table.Table) string {
	tb.Helper()
	path := filepath.Join(tb.TempDir(), "activities.db")

	database, err := db.OpenDB(path, false)
	if err != nil {
		tb.Fatalf("failed to create test database: %v", err)
	}
	defer database.Close()

	if err := seed(database, tableName, t); err != nil {
		tb.Fatalf("failed to seed test database: %v", err)
	}
	return path
}

func seed(database *sql.DB, tableName string, t *table.Table) error {
	quoted := make([]string, len(t.Columns))
	marks := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		quoted[i] = quote(c) + " TEXT"
		marks[i] = "?"
	}
	create := fmt.Sprintf("CREATE TABLE %s (%s)", quote(tableName), strings.Join(quoted, ", "))
	if _, err := database.Exec(create); err != nil {
		return err
	}

	insert := fmt.Sprintf("INSERT INTO %s VALUES (%s)", quote(tableName), strings.Join(marks, ", "))
	for _, row := range t.Rows {
		args := make([]any, len(t.Columns))
		for i, c := range t.Columns {
			args[i] = row[c]
		}
		if _, err := database.Exec(insert, args...); err != nil {
			return err
		}
	}
	return nil
}

func quote(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}
