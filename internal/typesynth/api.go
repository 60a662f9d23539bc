// Package typesynth maps a column's accumulated statistics to a semantic
// type and a concrete SQL type spelling.
package typesynth

import (
	"fmt"
	"math"
	"strings"
)

// Input is the subset of a column's statistics the decision table needs.
type Input struct {
	Name string

	NonNull        int
	NumCount       int
	DateCount      int
	TimestampCount int

	HasNumeric bool
	Min, Max   float64

	LengthMax    int
	LengthStdDev float64

	ScaleMax    int
	ScaleStdDev float64
}

// Output is the synthesized semantic type and SQL spelling.
type Output struct {
	Type    string
	SQLType string
}

const (
	typeInteger   = "integer"
	typeNumber    = "number"
	typeDate      = "date"
	typeTimestamp = "timestamp"
	typeString    = "string"
	typeStream    = "stream"
)

// Synthesize walks a fixed decision table in order; the first matching case
// wins.
func Synthesize(in Input) Output {
	allNumeric := in.NonNull > 0 && in.NumCount == in.NonNull
	allDate := in.NonNull > 0 && in.DateCount == in.NonNull
	allTimestamp := in.NonNull > 0 && in.TimestampCount == in.NonNull

	switch {
	case allNumeric && in.ScaleMax == 0 && containsID(in.Name):
		return Output{Type: typeInteger, SQLType: "BIGINT"}

	case allNumeric && in.ScaleMax == 0 && in.NonNull >= 50 && in.Min == 0 && in.Max == 1:
		return Output{Type: typeInteger, SQLType: "BOOLEAN"}

	case allNumeric && in.ScaleMax == 0 && in.NonNull >= 100 && in.Min > -100 && in.Max < 100:
		return Output{Type: typeInteger, SQLType: "TINYINT"}

	case allNumeric && in.ScaleMax == 0:
		return Output{Type: typeInteger, SQLType: fmt.Sprintf("INT(%d)", margin(in.LengthMax, in.LengthStdDev))}

	case allNumeric:
		return Output{Type: typeNumber, SQLType: fmt.Sprintf(
			"NUMERIC(%d,%d)",
			margin(in.LengthMax, in.LengthStdDev),
			margin(in.ScaleMax, in.ScaleStdDev),
		)}

	case allDate:
		return Output{Type: typeDate, SQLType: "DATE"}

	case allTimestamp:
		return Output{Type: typeTimestamp, SQLType: "TIMESTAMP"}

	case in.LengthMax > 10000:
		return Output{Type: typeStream, SQLType: "LONGVARCHAR"}

	default:
		return Output{Type: typeString, SQLType: fmt.Sprintf("VARCHAR(%d)", margin(in.LengthMax, in.LengthStdDev))}
	}
}

// containsID reports whether name looks like an identifier column: an
// unbounded, case-insensitive substring match against "ID". This also
// matches names like WIDTH, which is accepted as the cost of a simple rule.
func containsID(name string) bool {
	return strings.Contains(strings.ToUpper(name), "ID")
}

// margin pads an observed maximum to give headroom for values outside the
// sample: a generous multiple of the standard deviation when the sample is
// volatile, or a flat +1 when it's essentially constant.
func margin(max int, stdDev float64) int {
	if stdDev > 0.34 {
		return max + int(math.Floor(3*stdDev))
	}
	return max + 1
}
