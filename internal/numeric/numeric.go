// Package numeric implements the value classifiers shared by the header
// heuristic and the column statistician: numeric, date, and timestamp
// pattern matching.
package numeric

import (
	"regexp"
	"strconv"
)

// numberRE matches a signed integer or fixed-point decimal, with an
// optional exponent accepted but not required.
var numberRE = regexp.MustCompile(`^[+-]?(\d+\.(\d+)|\d+)([eE][+-]?\d+)?$`)

// dateRE matches YYYY-MM-DD with 2-4 digit years and 1-2 digit month/day.
var dateRE = regexp.MustCompile(`^\d{2,4}-\d{1,2}-\d{1,2}$`)

// timestampRE matches YYYY-MM-DD HH:MM:SS.
var timestampRE = regexp.MustCompile(`^\d{2,4}-\d{1,2}-\d{1,2} \d{1,2}:\d{2}:\d{2}$`)

// IsNumeric reports whether v parses as a signed decimal number, and if so
// returns its value and the count of digits after the decimal point (0 for
// integers).
func IsNumeric(v string) (ok bool, value float64, scale int) {
	m := numberRE.FindStringSubmatch(v)
	if m == nil {
		return false, 0, 0
	}
	value, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return false, 0, 0
	}
	return true, value, len(m[2])
}

// IsDate reports whether v matches the YYYY-MM-DD shape.
func IsDate(v string) bool {
	return dateRE.MatchString(v)
}

// IsTimestamp reports whether v matches the YYYY-MM-DD HH:MM:SS shape.
func IsTimestamp(v string) bool {
	return timestampRE.MatchString(v)
}
