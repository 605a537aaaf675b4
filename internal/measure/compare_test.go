package measure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/derr/internal/unit"
)

func TestOverlaps(t *testing.T) {
	// [90,110] and [100,110]
	assert.True(t, New(100, 10, metre, "a").Overlaps(Of(New(105, 5, metre, "b"))))
	// [95,105] and [115,125]
	assert.False(t, New(100, 5, metre, "a").Overlaps(Of(New(120, 5, metre, "b"))))
	// touching endpoints [95,105] and [105,115]
	assert.True(t, New(100, 5, metre, "a").Overlaps(Of(New(110, 5, metre, "b"))))
	// same interval, different units
	assert.False(t, New(100, 5, metre, "a").Overlaps(Of(New(100, 5, second, "b"))))
}

func TestIntervalOrdering(t *testing.T) {
	low := New(100, 5, metre, "low")    // [95,105]
	high := New(120, 5, metre, "high")  // [115,125]
	touch := New(110, 5, metre, "touch") // [105,115]

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"high > low", high.Greater(Of(low)), true},
		{"low > high", low.Greater(Of(high)), false},
		{"low < high", low.Less(Of(high)), true},
		{"high < low", high.Less(Of(low)), false},
		{"touch > low", touch.Greater(Of(low)), false},
		{"touch >= low", touch.GreaterOrEqual(Of(low)), true},
		{"low <= touch", low.LessOrEqual(Of(touch)), true},
		{"low < touch", low.Less(Of(touch)), false},
		{"low >= touch", low.GreaterOrEqual(Of(touch)), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.got)
		})
	}
}

func TestOrderingRequiresMatchingUnits(t *testing.T) {
	big := New(1000, 1, metre, "big")
	small := New(1, 0.1, second, "small")

	assert.False(t, big.Greater(Of(small)))
	assert.False(t, big.GreaterOrEqual(Of(small)))
	assert.False(t, small.Less(Of(big)))
	assert.False(t, small.LessOrEqual(Of(big)))
	assert.True(t, big.Disjoint(Of(small)))
}

func TestScalarIsDegenerateInterval(t *testing.T) {
	m := New(100, 5, metre, "m") // [95,105]

	assert.True(t, m.Greater(Scalar(90)))
	assert.False(t, m.Greater(Scalar(95)))
	assert.True(t, m.GreaterOrEqual(Scalar(95)))
	assert.True(t, m.Less(Scalar(106)))
	assert.True(t, m.LessOrEqual(Scalar(105)))
	assert.True(t, m.Overlaps(Scalar(104)))
	assert.True(t, m.Disjoint(Scalar(106)))
}

func TestPairComparisons(t *testing.T) {
	m := New(100, 5, metre, "m") // [95,105]

	assert.True(t, m.Overlaps(Pair(110, 5)))
	assert.True(t, m.Less(Pair(110, 4)))
	assert.True(t, m.LessOrEqual(Pair(110, 5)))
	assert.True(t, m.Greater(Pair(80, 10)))
}

// Overlaps interval-tests a scalar while ValueEquals compares the central value
// exactly. The two must stay separate predicates.
func TestValueEqualsIsExact(t *testing.T) {
	m := New(100, 5, metre, "m")

	assert.True(t, m.Overlaps(Scalar(101)))
	assert.False(t, m.ValueEquals(101))
	assert.True(t, m.ValueDiffers(101))

	assert.True(t, m.ValueEquals(100))
	assert.False(t, m.ValueDiffers(100))
}

func TestDisjointIsNegationOfOverlaps(t *testing.T) {
	units := []unit.Unit{metre, second}
	values := []float64{-10, 0, 4.5, 5, 10, 20}
	errs := []float64{0, 0.5, 5}

	for _, ua := range units {
		for _, ub := range units {
			for _, va := range values {
				for _, vb := range values {
					for _, e := range errs {
						a := New(va, e, ua, "a")
						b := Of(New(vb, e, ub, "b"))
						require.Equal(t, !a.Overlaps(b), a.Disjoint(b),
							"a=%v b=%v", a, b)
					}
				}
			}
		}
	}
}

func TestCompareByPredicate(t *testing.T) {
	m := New(100, 5, metre, "m")

	tests := []struct {
		name string
		x    Operand
		want bool
	}{
		{"overlaps", Scalar(100), true},
		{"disjoint", Scalar(100), false},
		{"greater", Scalar(90), true},
		{"less", Scalar(90), false},
		{"greater_or_equal", Scalar(95), true},
		{"less_or_equal", Scalar(105), true},
		{"value_equals", Scalar(100), true},
		{"value_differs", Scalar(100), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := ParsePredicate(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.name, p.String())
			assert.Equal(t, tc.want, m.Compare(p, tc.x))
		})
	}

	_, err := ParsePredicate("roughly")
	assert.ErrorIs(t, err, ErrUnknownPredicate)
	assert.False(t, m.Compare(Predicate(42), Scalar(100)))
}
