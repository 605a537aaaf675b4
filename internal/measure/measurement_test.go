package measure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/derr/internal/unit"
)

func TestNewDefaults(t *testing.T) {
	m := New(1.5, 0.5, metre, "")

	assert.Equal(t, DefaultName, m.Name())
	assert.Equal(t, DefaultSigFigs, m.SigFigs())
	assert.Equal(t, 1.0, m.Min())
	assert.Equal(t, 2.0, m.Max())
	assert.Equal(t, "m", m.UnitsText())
	assert.Equal(t, "L", m.Dimensions())
	assert.Equal(t, ValueErr{Value: 1.5, Err: 0.5}, m.Pair())
}

func TestZeroValueMeasurement(t *testing.T) {
	var m Measurement
	assert.Equal(t, DefaultName, m.Name())
	assert.Equal(t, DefaultSigFigs, m.SigFigs())
	assert.Equal(t, "NoName / unitless : 0.00 +/- 0.00", m.Show())
}

func TestFromPair(t *testing.T) {
	m := FromPair(ValueErr{Value: 3, Err: -1}, second, "t")
	assert.Equal(t, 3.0, m.Value())
	assert.Equal(t, 1.0, m.Err())
	assert.Equal(t, "t", m.Name())
}

func TestSetters(t *testing.T) {
	m := New(1, 0, unit.Dimensionless, "x")
	m.SetValue(4)
	m.SetErr(0.5)
	m.SetUnit(second)
	m.SetName("duration")

	assert.Equal(t, 4.0, m.Value())
	assert.Equal(t, 0.5, m.Err())
	assert.True(t, m.Unit().Equal(second))
	assert.Equal(t, "duration", m.Name())

	m.SetRelativeError(0.25)
	assert.Equal(t, 1.0, m.Err())

	assert.ErrorIs(t, m.SetSigFigs(0), ErrInvalidSigFigs)
	assert.Equal(t, DefaultSigFigs, m.SigFigs())
	require.NoError(t, m.SetSigFigs(5))
	assert.Equal(t, 5, m.SigFigs())
}

func TestSetFromOperand(t *testing.T) {
	m := New(1, 1, metre, "keep")
	require.NoError(t, m.SetSigFigs(4))

	m.Set(Of(New(7, 2, second, "other")))
	assert.Equal(t, 7.0, m.Value())
	assert.Equal(t, 2.0, m.Err())
	assert.True(t, m.Unit().Equal(second))
	assert.Equal(t, "keep", m.Name())
	assert.Equal(t, 4, m.SigFigs())

	m.Set(Pair(3, 1))
	assert.Equal(t, 3.0, m.Value())
	assert.Equal(t, 1.0, m.Err())
	assert.True(t, m.Unit().IsUnitless())

	m.SetUnit(metre)
	m.Set(Scalar(9))
	assert.Equal(t, 9.0, m.Value())
	assert.Equal(t, 0.0, m.Err())
	assert.True(t, m.Unit().IsUnitless())
}

func TestNeg(t *testing.T) {
	m := New(3, 1, metre, "x")
	n := m.Neg()

	assert.Equal(t, -3.0, n.Value())
	assert.Equal(t, 1.0, n.Err())
	assert.Equal(t, "x", n.Name())
	assert.Equal(t, 3.0, m.Value(), "receiver is a copy")
}

func TestSplit(t *testing.T) {
	ms := []Measurement{
		New(1, 0.1, metre, "a"),
		New(2, 0.2, metre, "b"),
		New(3, -0.3, metre, "c"),
	}

	values, errs := Split(ms)
	assert.Equal(t, []float64{1, 2, 3}, values)
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, errs)

	values, errs = Split(nil)
	assert.Empty(t, values)
	assert.Empty(t, errs)
}
