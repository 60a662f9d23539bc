package typesynth_test

import (
	"testing"

	"github.com/eltorocorp/sqlinfer/internal/typesynth"
	"github.com/stretchr/testify/assert"
)

func Test_Synthesize(t *testing.T) {
	tests := []struct {
		name string
		in   typesynth.Input
		want typesynth.Output
	}{
		{
			name: "id column is always bigint",
			in: typesynth.Input{
				Name: "customer_id", NonNull: 10, NumCount: 10,
				LengthMax: 3, LengthStdDev: 0,
			},
			want: typesynth.Output{Type: "integer", SQLType: "BIGINT"},
		},
		{
			name: "unbounded ID rule matches WIDTH",
			in: typesynth.Input{
				Name: "width", NonNull: 10, NumCount: 10,
				LengthMax: 2, LengthStdDev: 0,
			},
			want: typesynth.Output{Type: "integer", SQLType: "BIGINT"},
		},
		{
			name: "boolean needs 50+ rows of 0/1",
			in: typesynth.Input{
				Name: "flag", NonNull: 100, NumCount: 100,
				Min: 0, Max: 1, LengthMax: 1, LengthStdDev: 0,
			},
			want: typesynth.Output{Type: "integer", SQLType: "BOOLEAN"},
		},
		{
			name: "tinyint needs 100+ rows within -100..100",
			in: typesynth.Input{
				Name: "score", NonNull: 100, NumCount: 100,
				Min: -50, Max: 50, LengthMax: 3, LengthStdDev: 0,
			},
			want: typesynth.Output{Type: "integer", SQLType: "TINYINT"},
		},
		{
			name: "plain integer falls through to INT",
			in: typesynth.Input{
				Name: "score", NonNull: 10, NumCount: 10,
				Min: -50, Max: 50, LengthMax: 3, LengthStdDev: 0.1,
			},
			want: typesynth.Output{Type: "integer", SQLType: "INT(4)"},
		},
		{
			name: "fractional numeric",
			in: typesynth.Input{
				Name: "price", NonNull: 10, NumCount: 10,
				LengthMax: 6, LengthStdDev: 0.5, ScaleMax: 2, ScaleStdDev: 0.1,
			},
			want: typesynth.Output{Type: "number", SQLType: "NUMERIC(7,3)"},
		},
		{
			name: "all date values",
			in: typesynth.Input{
				Name: "d", NonNull: 3, DateCount: 3,
			},
			want: typesynth.Output{Type: "date", SQLType: "DATE"},
		},
		{
			name: "all timestamp values",
			in: typesynth.Input{
				Name: "ts", NonNull: 3, TimestampCount: 3,
			},
			want: typesynth.Output{Type: "timestamp", SQLType: "TIMESTAMP"},
		},
		{
			name: "long values become a stream",
			in: typesynth.Input{
				Name: "blob", NonNull: 3, LengthMax: 20000, LengthStdDev: 0,
			},
			want: typesynth.Output{Type: "stream", SQLType: "LONGVARCHAR"},
		},
		{
			name: "mixed content falls back to varchar",
			in: typesynth.Input{
				Name: "notes", NonNull: 4, NumCount: 3,
				LengthMax: 12, LengthStdDev: 0.2,
			},
			want: typesynth.Output{Type: "string", SQLType: "VARCHAR(13)"},
		},
		{
			name: "all-null column falls back to varchar",
			in: typesynth.Input{
				Name: "empty", NonNull: 0, LengthMax: 0, LengthStdDev: 0,
			},
			want: typesynth.Output{Type: "string", SQLType: "VARCHAR(1)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, typesynth.Synthesize(tt.in))
		})
	}
}
