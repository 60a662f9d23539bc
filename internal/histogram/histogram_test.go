package histogram_test

import (
	"testing"

	"github.com/eltorocorp/sqlinfer/internal/histogram"
	"github.com/stretchr/testify/assert"
)

func Test_Histogram_Empty(t *testing.T) {
	h := histogram.New()
	assert.True(t, h.Empty())
	assert.Equal(t, 0, h.Count())
	assert.Equal(t, 0, h.Min())
	assert.Equal(t, 0, h.Max())
	assert.Equal(t, float64(0), h.Mean())
	assert.Equal(t, float64(0), h.Median())
	assert.Equal(t, float64(0), h.StdDev())
}

func Test_Histogram_MinMaxMean(t *testing.T) {
	h := histogram.New()
	for _, v := range []int{1, 2, 2, 3, 3, 3} {
		h.Add(v)
	}
	assert.Equal(t, 6, h.Count())
	assert.Equal(t, 1, h.Min())
	assert.Equal(t, 3, h.Max())
	assert.InDelta(t, 2.33333, h.Mean(), 0.0001)
}

func Test_Histogram_Median_TieBreaksHigh(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   float64
	}{
		{
			name:   "odd count, clean middle",
			values: []int{2, 2, 2, 3, 3},
			want:   2,
		},
		{
			name:   "even count, exact split picks higher",
			values: []int{2, 2, 3, 3},
			want:   3,
		},
		{
			name:   "single value",
			values: []int{5},
			want:   5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := histogram.New()
			for _, v := range tt.values {
				h.Add(v)
			}
			assert.Equal(t, tt.want, h.Median())
		})
	}
}

func Test_Histogram_StdDev(t *testing.T) {
	h := histogram.New()
	for _, v := range []int{2, 4, 4, 4, 5, 5, 7, 9} {
		h.Add(v)
	}
	assert.InDelta(t, 2.0, h.StdDev(), 0.01)
}
