package querysql

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_EmptyFilter(t *testing.T) {
	sql, params, err := Compile(Filter{})
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT "+MeasurementColumns+" FROM measurements WHERE 1 = 1"+
			" ORDER BY dataset_id COLLATE BINARY ASC, seq ASC, id COLLATE BINARY ASC",
		sql)
	assert.Empty(t, params)
}

func TestCompile_AllFields(t *testing.T) {
	sql, params, err := Compile(Filter{
		DatasetID: "ds-1",
		Name:      "distance",
		Exponents: []float64{0, 1, 0, 0, 0, 0, 0},
		Overlaps:  &Interval{Lo: 100, Hi: 200},
	})
	require.NoError(t, err)

	assert.Contains(t, sql,
		"WHERE dataset_id = ? AND name = ? AND exponents = ? AND value + error >= ? AND value - error <= ?")
	assert.Contains(t, sql, "ORDER BY")
	assert.Equal(t, []any{"ds-1", "distance", "[0,1,0,0,0,0,0]", 100.0, 200.0}, params)
}

func TestCompile_ValuesNeverInterpolated(t *testing.T) {
	sql, params, err := Compile(Filter{Name: "x'; DROP TABLE measurements; --"})
	require.NoError(t, err)

	assert.NotContains(t, sql, "DROP")
	assert.Equal(t, []any{"x'; DROP TABLE measurements; --"}, params)
}

func TestCompile_DimensionlessExponents(t *testing.T) {
	_, params, err := Compile(Filter{Exponents: make([]float64, 7)})
	require.NoError(t, err)
	assert.Equal(t, []any{"[0,0,0,0,0,0,0]"}, params)
}

func TestCompile_InvalidInterval(t *testing.T) {
	tests := []struct {
		name string
		iv   Interval
	}{
		{"empty", Interval{Lo: 2, Hi: 1}},
		{"nan lo", Interval{Lo: math.NaN(), Hi: 1}},
		{"nan hi", Interval{Lo: 0, Hi: math.NaN()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Compile(Filter{Overlaps: &tt.iv})
			assert.ErrorIs(t, err, ErrInvalidFilter)
		})
	}
}

func TestCompile_NonFiniteExponent(t *testing.T) {
	_, _, err := Compile(Filter{Exponents: []float64{math.Inf(1)}})
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestEncodeExponents(t *testing.T) {
	text, err := EncodeExponents([]float64{1, 2, -2, 0, 0, 0, 0.5})
	require.NoError(t, err)
	assert.Equal(t, "[1,2,-2,0,0,0,0.5]", text)
}
