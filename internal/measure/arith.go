package measure

import (
	"math"

	"github.com/roach88/derr/internal/unit"
)

// Add returns m + x. Units must be equal.
func (m Measurement) Add(x Operand) (Measurement, error) { return m.Combine(OpAdd, x) }

// Sub returns m - x. Units must be equal.
func (m Measurement) Sub(x Operand) (Measurement, error) { return m.Combine(OpSub, x) }

// Mul returns m * x.
func (m Measurement) Mul(x Operand) (Measurement, error) { return m.Combine(OpMul, x) }

// Div returns m / x.
func (m Measurement) Div(x Operand) (Measurement, error) { return m.Combine(OpDiv, x) }

// Pow returns m ^ x. The exponent must be dimensionless.
func (m Measurement) Pow(x Operand) (Measurement, error) { return m.Combine(OpPow, x) }

// Combine applies op to m and x and returns a new measurement.
//
// On failure the zero Measurement is returned with an *OpError wrapping one of
// ErrUnitMismatch, ErrInvalidExponentUnit, ErrUndefinedRelativeError or ErrNotFinite.
func (m Measurement) Combine(op Op, x Operand) (Measurement, error) {
	var (
		value, err float64
		u          unit.Unit
		opErr      error
	)

	switch op {
	case OpAdd:
		value, err, u, opErr = m.sum(x, 1)
	case OpSub:
		value, err, u, opErr = m.sum(x, -1)
	case OpMul:
		value, err, u, opErr = m.product(x, false)
	case OpDiv:
		value, err, u, opErr = m.product(x, true)
	case OpPow:
		value, err, u, opErr = m.power(x)
	default:
		opErr = ErrUnknownOp
	}

	if opErr == nil && !(finite(value) && finite(err)) {
		opErr = ErrNotFinite
	}
	if opErr != nil {
		return Measurement{}, &OpError{Op: op, Left: Of(m).String(), Right: x.String(), Err: opErr}
	}

	return Measurement{
		value:   value,
		err:     math.Abs(err),
		unit:    u,
		name:    DefaultName,
		sigFigs: m.mergeSigFigs(x),
	}, nil
}

// Update applies op in place (the compound assignment form, e.g. m += x).
// The receiver is left untouched when the operation fails; name and significant
// figures are always kept.
func (m *Measurement) Update(op Op, x Operand) error {
	r, err := m.Combine(op, x)
	if err != nil {
		return err
	}
	m.value, m.err, m.unit = r.value, r.err, r.unit
	return nil
}

// sum adds (sign 1) or subtracts (sign -1) with absolute errors in quadrature.
func (m Measurement) sum(x Operand, sign float64) (float64, float64, unit.Unit, error) {
	if !m.unit.Equal(x.unitFor(m.unit, true)) {
		return 0, 0, unit.Unit{}, ErrUnitMismatch
	}
	return m.value + sign*x.value, math.Hypot(m.err, x.err), m.unit, nil
}

// product multiplies or divides with relative errors in quadrature.
func (m Measurement) product(x Operand, divide bool) (float64, float64, unit.Unit, error) {
	r1, err := relativeError(m.value, m.err)
	if err != nil {
		return 0, 0, unit.Unit{}, err
	}
	r2, err := relativeError(x.value, x.err)
	if err != nil {
		return 0, 0, unit.Unit{}, err
	}

	xu := x.unitFor(m.unit, false)
	value, u := m.value*x.value, m.unit.Mul(xu)
	if divide {
		value, u = m.value/x.value, m.unit.Div(xu)
	}
	return value, math.Hypot(r1, r2) * value, u, nil
}

// power raises m to x.
//
// For an uncertain exponent the relative error is sqrt((v2*r1)^2 + (ln(v1)*e2)^2),
// which equals |v2| * sqrt(r1^2 + (ln(v1)*r2)^2) without dividing by v2. A bare
// number exponent contributes no error: rel = |n| * r1.
func (m Measurement) power(x Operand) (float64, float64, unit.Unit, error) {
	if !x.unitFor(m.unit, false).IsUnitless() {
		return 0, 0, unit.Unit{}, ErrInvalidExponentUnit
	}
	r1, err := relativeError(m.value, m.err)
	if err != nil {
		return 0, 0, unit.Unit{}, err
	}

	var logTerm float64
	if x.err != 0 {
		if m.value < 0 {
			return 0, 0, unit.Unit{}, ErrUndefinedRelativeError
		}
		logTerm = math.Log(m.value) * x.err
	}

	value := math.Pow(m.value, x.value)
	rel := math.Hypot(x.value*r1, logTerm)
	return value, rel * value, m.unit.Pow(x.value), nil
}

func (m Measurement) mergeSigFigs(x Operand) int {
	sf := m.SigFigs()
	if x.kind == kindMeasurement && x.sigFigs > 0 && x.sigFigs < sf {
		return x.sigFigs
	}
	return sf
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
