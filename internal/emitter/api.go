// Package emitter renders a set of inferred columns into the
// comma-separated strings a DDL or bulk-load statement needs.
package emitter

import (
	"fmt"
	"strings"
)

// Column is the minimal shape the emitter needs from a ColumnInfo.
type Column struct {
	Name    string
	SQLType string
	NullPct float64
}

// resolvedName returns c.Name, or "Column<i>" (1-based) if c.Name is empty.
func resolvedName(c Column, i int) string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("Column%d", i+1)
}

// ColumnList renders "name sqlType[, name sqlType]*". With strict, a
// column observed with zero nulls gets " NOT NULL" appended.
func ColumnList(columns []Column, strict bool) string {
	parts := make([]string, len(columns))
	for i, c := range columns {
		part := fmt.Sprintf("%s %s", resolvedName(c, i), c.SQLType)
		if strict && c.NullPct == 0 {
			part += " NOT NULL"
		}
		parts[i] = part
	}
	return strings.Join(parts, ", ")
}

// NameList renders "name[, name]*" for use as a load statement's target
// column list.
func NameList(columns []Column) string {
	parts := make([]string, len(columns))
	for i, c := range columns {
		parts[i] = resolvedName(c, i)
	}
	return strings.Join(parts, ", ")
}
