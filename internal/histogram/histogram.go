// Package histogram accumulates small, sparse integer-keyed distributions
// and derives summary statistics (mean, median, population standard
// deviation) from them. It backs both the delimiter detector's piece-count
// scoring and the column statistician's length/scale distributions.
package histogram

import (
	"math"
	"sort"
)

// Histogram is a sparse mapping of observed integer value to occurrence
// count. It is not safe for concurrent use.
type Histogram struct {
	counts map[int]int
	n      int
}

// New returns an empty Histogram.
func New() *Histogram {
	return &Histogram{counts: make(map[int]int)}
}

// Add records one occurrence of v.
func (h *Histogram) Add(v int) {
	h.counts[v]++
	h.n++
}

// Count returns the number of observations recorded.
func (h *Histogram) Count() int {
	return h.n
}

// Empty reports whether no observations have been recorded.
func (h *Histogram) Empty() bool {
	return h.n == 0
}

func (h *Histogram) sortedKeys() []int {
	keys := make([]int, 0, len(h.counts))
	for k := range h.counts {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Min returns the smallest observed value, or 0 if empty.
func (h *Histogram) Min() int {
	if h.n == 0 {
		return 0
	}
	keys := h.sortedKeys()
	return keys[0]
}

// Max returns the largest observed value, or 0 if empty.
func (h *Histogram) Max() int {
	if h.n == 0 {
		return 0
	}
	keys := h.sortedKeys()
	return keys[len(keys)-1]
}

// Mean returns the arithmetic mean of all observations.
func (h *Histogram) Mean() float64 {
	if h.n == 0 {
		return 0
	}
	var sum int64
	for v, c := range h.counts {
		sum += int64(v) * int64(c)
	}
	return float64(sum) / float64(h.n)
}

// Median returns the sample median, walking the histogram in ascending
// order until half the observations have been consumed. On an exact split
// between two values, the higher value wins.
func (h *Histogram) Median() float64 {
	if h.n == 0 {
		return 0
	}
	keys := h.sortedKeys()
	cumulative := 0
	for _, k := range keys {
		cumulative += h.counts[k]
		if cumulative*2 > h.n {
			return float64(k)
		}
	}
	return float64(keys[len(keys)-1])
}

// StdDev returns the population standard deviation around the mean.
func (h *Histogram) StdDev() float64 {
	if h.n == 0 {
		return 0
	}
	mean := h.Mean()
	var sq float64
	for v, c := range h.counts {
		d := float64(v) - mean
		sq += d * d * float64(c)
	}
	return math.Sqrt(sq / float64(h.n))
}
