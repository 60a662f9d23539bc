// Package header decides whether the header candidate line is actually a
// header record.
package header

import "github.com/eltorocorp/sqlinfer/internal/numeric"

// Mode mirrors sqlinfer.HeaderMode without importing the root package,
// keeping this an internal, dependency-free stage.
type Mode int

const (
	Auto Mode = iota
	Present
	Absent
)

// Decide returns whether fields (the header candidate split by the
// detected delimiter) should be treated as a header.
//
// An explicit Present/Absent override always wins. Under Auto, the
// candidate is assumed to be a header unless at least one field parses as
// numeric, in which case it's assumed to be a data line.
func Decide(mode Mode, fields []string) (isHeader bool) {
	switch mode {
	case Present:
		return true
	case Absent:
		return false
	default:
		for _, f := range fields {
			if ok, _, _ := numeric.IsNumeric(f); ok {
				return false
			}
		}
		return true
	}
}
