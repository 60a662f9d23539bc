// Package delimiter picks the most likely field separator for a sample of
// lines by scoring a fixed candidate set on the dispersion of the piece
// counts each candidate produces.
package delimiter

import (
	"math"

	"github.com/eltorocorp/sqlinfer/internal/histogram"
	"github.com/eltorocorp/sqlinfer/internal/util"
)

// Candidates is the fixed set of delimiters considered, in priority order
// used to break ties (earlier wins).
var Candidates = []rune{',', ';', '|', '\t'}

// Default is used when no candidate scores above the threshold.
const Default = ','

// Result is the outcome of delimiter detection.
type Result struct {
	Separator rune
	// Defaulted is true when every candidate scored -Inf and Separator
	// fell back to Default.
	Defaulted bool
}

// Detect scores each candidate in Candidates against lines and returns the
// best-scoring one.
func Detect(lines []string) Result {
	type candidateState struct {
		sep  rune
		hist *histogram.Histogram
	}

	states := make([]candidateState, len(Candidates))
	for i, c := range Candidates {
		states[i] = candidateState{sep: c, hist: histogram.New()}
	}

	for _, line := range lines {
		for i, c := range Candidates {
			pieces := countUnquoted(line, string(c)) + 1
			states[i].hist.Add(pieces)
		}
	}

	bestIdx := -1
	bestScore := math.Inf(-1)
	for i, st := range states {
		score := score(st.hist)
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	if bestIdx == -1 || math.IsInf(bestScore, -1) {
		return Result{Separator: Default, Defaulted: true}
	}
	return Result{Separator: states[bestIdx].sep}
}

// score rewards a candidate whose piece count stays consistent across the
// sample: it's the median piece count minus the standard deviation around
// the mean, so a delimiter that usually produces the same number of fields
// beats one that happens to produce more fields on one unrepresentative
// line. A candidate whose typical line doesn't even split (median <= 1)
// never wins.
func score(h *histogram.Histogram) float64 {
	if h.Empty() {
		return math.Inf(-1)
	}
	median := h.Median()
	if median <= 1 {
		return math.Inf(-1)
	}
	return median - h.StdDev()
}

// countUnquoted reports how many times sep occurs in line outside of a
// quoted field, so a delimiter byte embedded inside a quoted value doesn't
// inflate that candidate's piece count.
func countUnquoted(line, sep string) int {
	count := 0
	for {
		idx := util.IndexNonQuoted(line, sep)
		if idx == -1 {
			return count
		}
		count++
		line = line[idx+len(sep):]
	}
}
