package measure

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/roach88/derr/internal/unit"
)

// ValueErr is a bare (value, error) pair.
type ValueErr struct {
	Value float64
	Err   float64
}

type operandKind int

const (
	kindScalar operandKind = iota
	kindPair
	kindMeasurement
)

// Operand is the right-hand side of an operation: a Measurement, a (value, error)
// pair or a bare number. Build one with Of, Pair or Scalar.
//
// Every operand is held in canonical form: value, absolute error and, for
// measurements, a unit and significant figures.
type Operand struct {
	kind    operandKind
	value   float64
	err     float64
	unit    unit.Unit
	sigFigs int
}

// Of wraps a Measurement.
func Of(m Measurement) Operand {
	return Operand{
		kind:    kindMeasurement,
		value:   m.value,
		err:     m.err,
		unit:    m.unit,
		sigFigs: m.SigFigs(),
	}
}

// Pair wraps a (value, error) pair. A negative error is stored as its magnitude.
func Pair(value, err float64) Operand {
	return Operand{kind: kindPair, value: value, err: math.Abs(err)}
}

// Scalar wraps a bare number with zero error.
func Scalar(value float64) Operand {
	return Operand{kind: kindScalar, value: value}
}

// Value returns the operand's value.
func (x Operand) Value() float64 { return x.value }

// Err returns the operand's absolute error.
func (x Operand) Err() float64 { return x.err }

// IsMeasurement reports whether the operand wraps a Measurement.
func (x Operand) IsMeasurement() bool { return x.kind == kindMeasurement }

// unitFor returns the operand's unit as seen by a receiver with unit recv.
// Pairs and numbers inherit recv when inherit is set and are dimensionless otherwise.
func (x Operand) unitFor(recv unit.Unit, inherit bool) unit.Unit {
	switch {
	case x.kind == kindMeasurement:
		return x.unit
	case inherit:
		return recv
	default:
		return unit.Dimensionless
	}
}

// String renders the operand for diagnostics, e.g. "180 ± 60 m" or "2".
func (x Operand) String() string {
	switch x.kind {
	case kindScalar:
		return fmt.Sprintf("%g", x.value)
	case kindPair:
		return fmt.Sprintf("%g ± %g", x.value, x.err)
	default:
		return fmt.Sprintf("%g ± %g %s", x.value, x.err, x.unit.Units())
	}
}

// Op names an arithmetic operation.
type Op int

// Arithmetic operations.
const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpPow
)

// ErrUnknownOp is returned by ParseOp.
var ErrUnknownOp = errors.New("unknown operation")

var opNames = [...]struct{ name, symbol string }{
	OpAdd: {"add", "+"},
	OpSub: {"sub", "-"},
	OpMul: {"mul", "*"},
	OpDiv: {"div", "/"},
	OpPow: {"pow", "^"},
}

// String returns the operation name, e.g. "add".
func (op Op) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", int(op))
	}
	return opNames[op].name
}

// Symbol returns the operator symbol, e.g. "+".
func (op Op) Symbol() string {
	if op < 0 || int(op) >= len(opNames) {
		return "?"
	}
	return opNames[op].symbol
}

// ParseOp accepts an operation name or symbol ("add" or "+").
func ParseOp(s string) (Op, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range opNames {
		if s == n.name || s == n.symbol {
			return Op(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOp, s)
}
