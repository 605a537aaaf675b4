package measure

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/derr/internal/unit"
)

var (
	metre  = unit.Base(unit.Length)
	second = unit.Base(unit.Time)
)

func TestAddQuadrature(t *testing.T) {
	a := New(10, 3, metre, "a")
	b := New(10, 4, metre, "b")

	sum, err := a.Add(Of(b))
	require.NoError(t, err)
	assert.Equal(t, 20.0, sum.Value())
	assert.Equal(t, 5.0, sum.Err())
	assert.True(t, sum.Unit().Equal(metre))
	assert.Equal(t, DefaultName, sum.Name())
}

func TestSubQuadrature(t *testing.T) {
	a := New(10, 3, metre, "a")
	b := New(4, 4, metre, "b")

	diff, err := a.Sub(Of(b))
	require.NoError(t, err)
	assert.Equal(t, 6.0, diff.Value())
	assert.Equal(t, 5.0, diff.Err())
}

func TestAddPairAndScalarAdoptReceiverUnit(t *testing.T) {
	a := New(10, 3, metre, "a")

	withPair, err := a.Add(Pair(5, -4))
	require.NoError(t, err)
	assert.Equal(t, 15.0, withPair.Value())
	assert.Equal(t, 5.0, withPair.Err())
	assert.True(t, withPair.Unit().Equal(metre))

	withScalar, err := a.Sub(Scalar(2))
	require.NoError(t, err)
	assert.Equal(t, 8.0, withScalar.Value())
	assert.Equal(t, 3.0, withScalar.Err())
}

func TestAddKeepsReceiverSymbol(t *testing.T) {
	joule := unit.New(1, 2, -2, 0, 0, 0, 0).WithSymbol("J")
	a := New(1, 0.1, joule, "a")

	sum, err := a.Add(Of(New(2, 0.1, joule, "b")))
	require.NoError(t, err)
	assert.Equal(t, "J", sum.UnitsText())
}

func TestAddUnitMismatch(t *testing.T) {
	length := New(180, 60, metre, "distance")
	time := New(230, 20, second, "time")

	for _, op := range []Op{OpAdd, OpSub} {
		t.Run(op.String(), func(t *testing.T) {
			got, err := length.Combine(op, Of(time))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnitMismatch)
			assert.Equal(t, Measurement{}, got, "no partial result on failure")

			var opErr *OpError
			require.True(t, errors.As(err, &opErr))
			assert.Equal(t, op, opErr.Op)
			assert.Contains(t, opErr.Error(), "unit mismatch")
		})
	}
}

func TestMulRelativeQuadrature(t *testing.T) {
	a := New(10, 1, metre, "a")
	b := New(5, 1, metre, "b")

	prod, err := a.Mul(Of(b))
	require.NoError(t, err)
	assert.Equal(t, 50.0, prod.Value())

	rel, err := prod.RelativeError()
	require.NoError(t, err)
	assert.InDelta(t, 0.2236, rel, 1e-4)
	assert.InDelta(t, 11.18, prod.Err(), 1e-2)
	assert.Equal(t, "L^2", prod.Dimensions())
}

func TestMulByScalarKeepsRelativeError(t *testing.T) {
	a := New(10, 1, metre, "a")

	got, err := a.Mul(Scalar(-3))
	require.NoError(t, err)
	assert.Equal(t, -30.0, got.Value())
	assert.InDelta(t, 3.0, got.Err(), 1e-12)
	assert.True(t, got.Unit().Equal(metre), "scalar is dimensionless for products")
}

func TestMulPairUsesAbsoluteError(t *testing.T) {
	a := New(10, 1, metre, "a")

	got, err := a.Mul(Pair(5, 1))
	require.NoError(t, err)
	assert.InDelta(t, 50*math.Hypot(0.1, 0.2), got.Err(), 1e-9)
}

// Division combines units by division: metres over seconds is a velocity.
func TestDivUsesUnitDivision(t *testing.T) {
	d := New(100, 5, metre, "d")
	tm := New(20, 1, second, "t")

	v, err := d.Div(Of(tm))
	require.NoError(t, err)
	assert.Equal(t, 5.0, v.Value())
	assert.InDelta(t, 5*math.Hypot(0.05, 0.05), v.Err(), 1e-12)
	assert.Equal(t, "L T^-1", v.Dimensions())
	assert.Equal(t, "m s^-1", v.UnitsText())
}

func TestRelativeErrorUndefinedForZero(t *testing.T) {
	zero := New(0, 1, metre, "zero")
	one := New(1, 0.1, metre, "one")

	_, err := zero.RelativeError()
	assert.ErrorIs(t, err, ErrUndefinedRelativeError)

	tests := []struct {
		name string
		fn   func() (Measurement, error)
	}{
		{"zero times", func() (Measurement, error) { return zero.Mul(Of(one)) }},
		{"times zero", func() (Measurement, error) { return one.Mul(Of(zero)) }},
		{"zero divided", func() (Measurement, error) { return zero.Div(Scalar(2)) }},
		{"divide by zero", func() (Measurement, error) { return one.Div(Scalar(0)) }},
		{"zero base", func() (Measurement, error) { return zero.Pow(Scalar(2)) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.fn()
			assert.ErrorIs(t, err, ErrUndefinedRelativeError)
			assert.Equal(t, Measurement{}, got)
		})
	}
}

func TestPowScalarExponent(t *testing.T) {
	side := New(2, 0.1, metre, "side")

	area, err := side.Pow(Scalar(2))
	require.NoError(t, err)
	assert.Equal(t, 4.0, area.Value())
	assert.InDelta(t, 0.4, area.Err(), 1e-12)
	assert.Equal(t, "L^2", area.Dimensions())

	root, err := area.Pow(Scalar(0.5))
	require.NoError(t, err)
	assert.InDelta(t, 2.0, root.Value(), 1e-12)
	assert.True(t, root.Unit().Equal(metre))
}

func TestPowMeasurementExponent(t *testing.T) {
	base := New(2, 0.1, unit.Dimensionless, "base")
	exp := New(3, 0.2, unit.Dimensionless, "exp")

	got, err := base.Pow(Of(exp))
	require.NoError(t, err)
	assert.InDelta(t, 8.0, got.Value(), 1e-12)

	r1, r2 := 0.1/2, 0.2/3
	want := 3 * math.Sqrt(r1*r1+math.Pow(math.Log(2)*r2, 2)) * 8
	assert.InDelta(t, want, got.Err(), 1e-12)
}

func TestPowZeroExponentWithError(t *testing.T) {
	base := New(4, 0.2, unit.Dimensionless, "base")

	got, err := base.Pow(Pair(0, 0.1))
	require.NoError(t, err)
	assert.Equal(t, 1.0, got.Value())
	assert.InDelta(t, math.Log(4)*0.1, got.Err(), 1e-12)
}

func TestPowNegativeBase(t *testing.T) {
	neg := New(-2, 0.1, unit.Dimensionless, "neg")

	cube, err := neg.Pow(Scalar(3))
	require.NoError(t, err)
	assert.Equal(t, -8.0, cube.Value())
	assert.InDelta(t, 1.2, cube.Err(), 1e-12)

	_, err = neg.Pow(Scalar(0.5))
	assert.ErrorIs(t, err, ErrNotFinite)

	_, err = neg.Pow(Pair(2, 0.1))
	assert.ErrorIs(t, err, ErrUndefinedRelativeError)
}

func TestPowRejectsDimensionedExponent(t *testing.T) {
	base := New(2, 0.1, metre, "base")
	exp := New(2, 0, second, "exp")

	got, err := base.Pow(Of(exp))
	assert.ErrorIs(t, err, ErrInvalidExponentUnit)
	assert.Equal(t, Measurement{}, got)
}

func TestSigFigsMerge(t *testing.T) {
	a := New(1, 0.1, metre, "a")
	b := New(2, 0.1, metre, "b")
	require.NoError(t, a.SetSigFigs(5))
	require.NoError(t, b.SetSigFigs(2))

	sum, err := a.Add(Of(b))
	require.NoError(t, err)
	assert.Equal(t, 2, sum.SigFigs())

	scaled, err := a.Mul(Scalar(2))
	require.NoError(t, err)
	assert.Equal(t, 5, scaled.SigFigs())
}

func TestUpdate(t *testing.T) {
	m := New(10, 3, metre, "total")
	require.NoError(t, m.SetSigFigs(4))

	require.NoError(t, m.Update(OpAdd, Of(New(10, 4, metre, "x"))))
	assert.Equal(t, 20.0, m.Value())
	assert.Equal(t, 5.0, m.Err())
	assert.Equal(t, "total", m.Name())
	assert.Equal(t, 4, m.SigFigs())

	require.NoError(t, m.Update(OpDiv, Of(New(2, 0, second, "t"))))
	assert.Equal(t, 10.0, m.Value())
	assert.Equal(t, "L T^-1", m.Dimensions())

	before := m
	err := m.Update(OpAdd, Of(New(1, 1, metre, "wrong")))
	assert.ErrorIs(t, err, ErrUnitMismatch)
	assert.Equal(t, before, m, "failed update leaves receiver untouched")
}

func TestErrorNeverNegative(t *testing.T) {
	m := New(5, -2, metre, "m")
	assert.Equal(t, 2.0, m.Err())

	m.SetErr(-7)
	assert.Equal(t, 7.0, m.Err())

	m.SetRelativeError(-0.5)
	assert.Equal(t, 2.5, m.Err())

	neg := New(-5, 1, metre, "n")
	got, err := neg.Mul(Scalar(3))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, got.Err(), 0.0)

	m.Set(Pair(1, -3))
	assert.Equal(t, 3.0, m.Err())
}

func TestOperandString(t *testing.T) {
	assert.Equal(t, "2", Scalar(2).String())
	assert.Equal(t, "3 ± 1", Pair(3, -1).String())
	assert.Equal(t, "180 ± 60 m", Of(New(180, 60, metre, "d")).String())
}

func TestParseOp(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Op
	}{
		{"add", OpAdd}, {"+", OpAdd}, {"SUB", OpSub}, {"*", OpMul},
		{"div", OpDiv}, {"^", OpPow}, {" pow ", OpPow},
	} {
		got, err := ParseOp(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := ParseOp("mod")
	assert.ErrorIs(t, err, ErrUnknownOp)
	assert.Equal(t, "Op(9)", Op(9).String())
}
