// Package util holds small helpers shared by the scanning pipeline that
// don't belong to any single stage: quote-aware substring search used by
// the delimiter detector, and a panic-on-error helper used where a failure
// can only mean a programming error.
package util

import (
	"strings"
)

// IndexNonQuoted returns the index of the first occurrence of substr in s
// that falls outside of a pair of double quotes. It returns -1 if every
// occurrence of substr is quoted, or if substr does not appear at all.
func IndexNonQuoted(s, substr string) int {
	inQuotes := false
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i] == '"' {
			inQuotes = !inQuotes
			continue
		}
		if !inQuotes && strings.HasPrefix(s[i:], substr) {
			return i
		}
	}
	return -1
}

// Panic will panic if err is not nil. It is reserved for call sites where
// failure can only indicate a bug (e.g. a fixed, pre-validated template
// failing to execute), never for conditions a caller can recover from.
func Panic(err error) {
	if err != nil {
		panic(err)
	}
}
