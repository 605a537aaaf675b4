package measure

import (
	"fmt"
	"math"

	"github.com/roach88/derr/internal/unit"
)

// Defaults applied by New and to arithmetic results.
const (
	DefaultName    = "NoName"
	DefaultSigFigs = 3
)

// Measurement is a value with a non-negative absolute error and an SI unit.
// It is a plain value type: copy it freely.
//
// The zero value is 0 ± 0, dimensionless, unnamed, and renders with DefaultSigFigs.
type Measurement struct {
	value   float64
	err     float64
	unit    unit.Unit
	name    string
	sigFigs int
}

// New creates a measurement. A negative err is stored as its magnitude and an
// empty name becomes DefaultName.
func New(value, err float64, u unit.Unit, name string) Measurement {
	if name == "" {
		name = DefaultName
	}
	return Measurement{
		value:   value,
		err:     math.Abs(err),
		unit:    u,
		name:    name,
		sigFigs: DefaultSigFigs,
	}
}

// FromPair creates a measurement from a (value, error) pair.
func FromPair(p ValueErr, u unit.Unit, name string) Measurement {
	return New(p.Value, p.Err, u, name)
}

// Value returns the central value.
func (m Measurement) Value() float64 { return m.value }

// Err returns the absolute error, always >= 0.
func (m Measurement) Err() float64 { return m.err }

// Unit returns the unit.
func (m Measurement) Unit() unit.Unit { return m.unit }

// Name returns the display name.
func (m Measurement) Name() string {
	if m.name == "" {
		return DefaultName
	}
	return m.name
}

// SigFigs returns the number of significant figures used by Show.
func (m Measurement) SigFigs() int {
	if m.sigFigs < 1 {
		return DefaultSigFigs
	}
	return m.sigFigs
}

// Min returns value - error.
func (m Measurement) Min() float64 { return m.value - m.err }

// Max returns value + error.
func (m Measurement) Max() float64 { return m.value + m.err }

// RelativeError returns |error / value|.
// Fails with ErrUndefinedRelativeError when the value is 0.
func (m Measurement) RelativeError() (float64, error) {
	return relativeError(m.value, m.err)
}

// UnitsText renders the unit via unit.Unit.Units.
func (m Measurement) UnitsText() string { return m.unit.Units() }

// Dimensions renders the unit via unit.Unit.Dimensions.
func (m Measurement) Dimensions() string { return m.unit.Dimensions() }

// Pair returns the (value, error) pair.
func (m Measurement) Pair() ValueErr {
	return ValueErr{Value: m.value, Err: m.err}
}

// SetValue sets the central value.
func (m *Measurement) SetValue(v float64) { m.value = v }

// SetErr sets the absolute error. Negative input is stored as its magnitude.
func (m *Measurement) SetErr(err float64) { m.err = math.Abs(err) }

// SetRelativeError sets the error to |value * rel|.
func (m *Measurement) SetRelativeError(rel float64) { m.err = math.Abs(m.value * rel) }

// SetUnit sets the unit.
func (m *Measurement) SetUnit(u unit.Unit) { m.unit = u }

// SetName sets the display name.
func (m *Measurement) SetName(name string) { m.name = name }

// SetSigFigs sets the significant figures used by Show.
func (m *Measurement) SetSigFigs(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidSigFigs, n)
	}
	m.sigFigs = n
	return nil
}

// Set assigns from an operand.
//
// A Measurement operand replaces value, error and unit; the receiver keeps its
// name and significant figures. A pair or number resets the unit to
// dimensionless, and a number also resets the error to 0.
func (m *Measurement) Set(x Operand) {
	m.value = x.value
	m.err = x.err
	if x.kind == kindMeasurement {
		m.unit = x.unit
		return
	}
	m.unit = unit.Dimensionless
}

// Neg returns the measurement with its value negated.
func (m Measurement) Neg() Measurement {
	m.value = -m.value
	return m
}

// relativeError is the shared |err/value| rule.
func relativeError(value, err float64) (float64, error) {
	if value == 0 {
		return 0, ErrUndefinedRelativeError
	}
	return math.Abs(err / value), nil
}
