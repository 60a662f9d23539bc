// Package stats accumulates per-column statistics over a sample of
// tokenized field values: count, null count, length distribution,
// numeric-parseability, and date/timestamp pattern matches.
package stats

import (
	"github.com/eltorocorp/sqlinfer/internal/histogram"
	"github.com/eltorocorp/sqlinfer/internal/numeric"
)

// ColumnAccumulator collects statistics for one column position across a
// scan. It is not safe for concurrent use.
type ColumnAccumulator struct {
	count     int
	nullCount int
	length    *histogram.Histogram

	numCount int
	dateCount int
	tsCount   int
	scale     *histogram.Histogram
	hasNumeric bool
	min, max   float64
}

// NewColumnAccumulator returns an empty accumulator.
func NewColumnAccumulator() *ColumnAccumulator {
	return &ColumnAccumulator{
		length: histogram.New(),
		scale:  histogram.New(),
	}
}

// IsNull reports whether a raw field value is a null marker: empty, the
// two-character string `""`, or the literal NULL.
func IsNull(v string) bool {
	return v == "" || v == `""` || v == "NULL"
}

// Observe records one field value at this column's position.
func (c *ColumnAccumulator) Observe(v string) {
	c.count++
	c.length.Add(len([]byte(v)))

	if IsNull(v) {
		c.nullCount++
		return
	}

	if ok, value, scale := numeric.IsNumeric(v); ok {
		c.numCount++
		if !c.hasNumeric {
			c.min, c.max = value, value
			c.hasNumeric = true
		} else {
			if value < c.min {
				c.min = value
			}
			if value > c.max {
				c.max = value
			}
		}
		c.scale.Add(scale)
	}
	if numeric.IsDate(v) {
		c.dateCount++
	}
	if numeric.IsTimestamp(v) {
		c.tsCount++
	}
}

// Count returns the number of observations, including nulls.
func (c *ColumnAccumulator) Count() int { return c.count }

// NullCount returns the number of observations classified as null.
func (c *ColumnAccumulator) NullCount() int { return c.nullCount }

// NonNull returns Count() - NullCount().
func (c *ColumnAccumulator) NonNull() int { return c.count - c.nullCount }

// NumCount returns the number of non-null observations that parsed as
// numeric.
func (c *ColumnAccumulator) NumCount() int { return c.numCount }

// DateCount returns the number of observations matching the date pattern.
func (c *ColumnAccumulator) DateCount() int { return c.dateCount }

// TimestampCount returns the number of observations matching the
// timestamp pattern.
func (c *ColumnAccumulator) TimestampCount() int { return c.tsCount }

// HasNumeric reports whether any numeric value has been observed.
func (c *ColumnAccumulator) HasNumeric() bool { return c.hasNumeric }

// Min and Max return the smallest/largest numeric value observed. They are
// only meaningful when HasNumeric reports true.
func (c *ColumnAccumulator) Min() float64 { return c.min }
func (c *ColumnAccumulator) Max() float64 { return c.max }

// LengthHistogram returns the distribution of raw field byte lengths.
func (c *ColumnAccumulator) LengthHistogram() *histogram.Histogram { return c.length }

// ScaleHistogram returns the distribution of digits-after-decimal among
// numeric observations.
func (c *ColumnAccumulator) ScaleHistogram() *histogram.Histogram { return c.scale }
