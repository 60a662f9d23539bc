// Package executor turns an inferred column list into dialect-specific DDL
// and, optionally, runs it against a live database. It is a collaborator
// external to the inference engine: sqlinfer never imports it, matching how
// vippsas/sqlcode keeps its dialect-branching dbops separate from its SQL
// parser.
package executor

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/eltorocorp/sqlinfer"
	"github.com/jackc/pgx/v5/stdlib"
	mssql "github.com/microsoft/go-mssqldb"
)

// Dialect selects the target DDL flavor.
type Dialect int

const (
	// Postgres emits DDL for jackc/pgx's wire protocol.
	Postgres Dialect = iota
	// SQLServer emits T-SQL DDL for microsoft/go-mssqldb.
	SQLServer
)

// DialectOf inspects an open *sql.DB's driver to determine which dialect it
// speaks, the same driver-type switch dbops.go uses to branch its queries.
func DialectOf(db *sql.DB) (Dialect, error) {
	switch db.Driver().(type) {
	case *stdlib.Driver:
		return Postgres, nil
	case *mssql.Driver:
		return SQLServer, nil
	default:
		return 0, fmt.Errorf("executor: unrecognized driver %T", db.Driver())
	}
}

// CreateTableDDL renders a CREATE TABLE statement for columns under
// dialect. Each column's sqlinfer SQL type is translated into the target
// dialect's vocabulary by dialectSQLType below.
func CreateTableDDL(table string, columns []sqlinfer.ColumnInfo, strict bool, dialect Dialect) string {
	parts := make([]string, len(columns))
	for i, c := range columns {
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("Column%d", i+1)
		}
		sqlType := dialectSQLType(c.SQLType, dialect)
		part := fmt.Sprintf("%s %s", quoteIdent(name, dialect), sqlType)
		if strict && c.NullPct == 0 {
			part += " NOT NULL"
		}
		parts[i] = part
	}
	return fmt.Sprintf("CREATE TABLE %s (\n  %s\n)", quoteIdent(table, dialect), strings.Join(parts, ",\n  "))
}

// dialectSQLType translates sqlinfer's SQL type spellings into a concrete
// dialect's vocabulary. sqlinfer's own types lean generic
// (INT(n), VARCHAR(n)); SQL Server and Postgres diverge on a couple of
// names.
func dialectSQLType(generic string, dialect Dialect) string {
	switch dialect {
	case SQLServer:
		switch {
		case generic == "BOOLEAN":
			return "BIT"
		case generic == "LONGVARCHAR":
			return "VARCHAR(MAX)"
		case strings.HasPrefix(generic, "INT("):
			return "INT"
		case strings.HasPrefix(generic, "TINYINT"):
			return "TINYINT"
		}
	case Postgres:
		switch {
		case generic == "BOOLEAN":
			return "BOOLEAN"
		case generic == "LONGVARCHAR":
			return "TEXT"
		case strings.HasPrefix(generic, "INT("):
			return "INTEGER"
		case strings.HasPrefix(generic, "TINYINT"):
			return "SMALLINT"
		case strings.HasPrefix(generic, "VARCHAR("):
			return strings.Replace(generic, "VARCHAR(", "VARCHAR(", 1)
		}
	}
	return generic
}

func quoteIdent(name string, dialect Dialect) string {
	if dialect == SQLServer {
		return "[" + name + "]"
	}
	return `"` + name + `"`
}

// Execute runs ddl against db inside a transaction, rolling back on error.
// This is the only place in the module that talks to a live database;
// callers choose when (or whether) to invoke it.
func Execute(ctx context.Context, db *sql.DB, ddl string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
