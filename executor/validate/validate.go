// Package validate proves a synthesized DDL statement is actually valid SQL
// by running it against a throwaway modernc.org/sqlite database and loading
// a sample row through it.
package validate

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/eltorocorp/sqlinfer"
	_ "modernc.org/sqlite"
)

// CreateTable opens an in-memory sqlite database, translates columns into
// sqlite's type vocabulary, and executes the resulting CREATE TABLE. It
// returns the open handle so the caller can follow up with an INSERT
// round-trip; the caller owns closing it.
func CreateTable(ctx context.Context, table string, columns []sqlinfer.ColumnInfo) (*sql.DB, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("validate: opening sqlite: %w", err)
	}

	ddl := createTableDDL(table, columns)
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("validate: executing %q: %w", ddl, err)
	}
	return db, nil
}

// RoundTrip inserts values (one per column, in order) into table and reads
// the row back, confirming the synthesized schema actually accepts data
// shaped like what the scan observed.
func RoundTrip(ctx context.Context, db *sql.DB, table string, columns []sqlinfer.ColumnInfo, values []string) error {
	placeholders := make([]string, len(values))
	args := make([]interface{}, len(values))
	for i, v := range values {
		placeholders[i] = "?"
		args[i] = v
	}

	insert := fmt.Sprintf("INSERT INTO %s VALUES (%s)", quoteIdent(table), strings.Join(placeholders, ", "))
	if _, err := db.ExecContext(ctx, insert, args...); err != nil {
		return fmt.Errorf("validate: inserting round-trip row: %w", err)
	}

	row := db.QueryRowContext(ctx, fmt.Sprintf("SELECT * FROM %s LIMIT 1", quoteIdent(table)))
	scanned := make([]interface{}, len(columns))
	scannedPtrs := make([]interface{}, len(columns))
	for i := range scanned {
		scannedPtrs[i] = &scanned[i]
	}
	return row.Scan(scannedPtrs...)
}

// createTableDDL renders CREATE TABLE using sqlite's relaxed, dynamically
// typed column affinities rather than sqlinfer's dialect-specific
// spellings — sqlite accepts any type name and maps it to an affinity, so
// this only needs to produce syntactically valid SQL.
func createTableDDL(table string, columns []sqlinfer.ColumnInfo) string {
	parts := make([]string, len(columns))
	for i, c := range columns {
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("Column%d", i+1)
		}
		parts[i] = fmt.Sprintf("%s %s", quoteIdent(name), sqliteAffinity(c.SQLType))
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(table), strings.Join(parts, ", "))
}

func sqliteAffinity(sqlType string) string {
	switch {
	case strings.HasPrefix(sqlType, "INT"), sqlType == "BIGINT", sqlType == "TINYINT", sqlType == "BOOLEAN":
		return "INTEGER"
	case strings.HasPrefix(sqlType, "NUMERIC"):
		return "REAL"
	case sqlType == "DATE", sqlType == "TIMESTAMP":
		return "TEXT"
	default:
		return "TEXT"
	}
}

func quoteIdent(name string) string {
	return `"` + name + `"`
}
