package stats_test

import (
	"testing"

	"github.com/eltorocorp/sqlinfer/internal/stats"
	"github.com/stretchr/testify/assert"
)

func Test_IsNull(t *testing.T) {
	assert.True(t, stats.IsNull(""))
	assert.True(t, stats.IsNull(`""`))
	assert.True(t, stats.IsNull("NULL"))
	assert.False(t, stats.IsNull("null"))
	assert.False(t, stats.IsNull("0"))
	assert.False(t, stats.IsNull("a"))
}

func Test_ColumnAccumulator_Observe(t *testing.T) {
	acc := stats.NewColumnAccumulator()
	for _, v := range []string{"1", "2", "", "4"} {
		acc.Observe(v)
	}
	assert.Equal(t, 4, acc.Count())
	assert.Equal(t, 1, acc.NullCount())
	assert.Equal(t, 3, acc.NonNull())
	assert.Equal(t, 3, acc.NumCount())
	assert.True(t, acc.HasNumeric())
	assert.Equal(t, float64(1), acc.Min())
	assert.Equal(t, float64(4), acc.Max())
}

func Test_ColumnAccumulator_ScaleAndLength(t *testing.T) {
	acc := stats.NewColumnAccumulator()
	for _, v := range []string{"1.50", "2.3", "10"} {
		acc.Observe(v)
	}
	assert.Equal(t, 3, acc.NumCount())
	assert.Equal(t, 2, acc.ScaleHistogram().Max())
	assert.Equal(t, 0, acc.ScaleHistogram().Min())
	assert.Equal(t, 4, acc.LengthHistogram().Max())
	assert.Equal(t, 2, acc.LengthHistogram().Min())
}

func Test_ColumnAccumulator_DatesAndTimestamps(t *testing.T) {
	acc := stats.NewColumnAccumulator()
	acc.Observe("2024-02-15")
	acc.Observe("2023-11-01")
	assert.Equal(t, 2, acc.DateCount())
	assert.Equal(t, 0, acc.TimestampCount())

	tsAcc := stats.NewColumnAccumulator()
	tsAcc.Observe("2024-02-15 10:30:00")
	assert.Equal(t, 1, tsAcc.TimestampCount())
}
