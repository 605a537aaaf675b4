package unit

import (
	"errors"
	"fmt"
)

// Dimension indexes one SI base dimension in a Unit's exponent vector.
type Dimension int

// SI base dimensions in their fixed rendering order.
const (
	Mass Dimension = iota
	Length
	Time
	Temperature
	Current
	Amount
	Luminous

	// NumDimensions is the length of every exponent vector.
	NumDimensions = 7
)

// dimensionLetters and siSymbols are indexed by Dimension.
var (
	dimensionLetters = [NumDimensions]string{"M", "L", "T", "K", "I", "N", "J"}
	siSymbols        = [NumDimensions]string{"kg", "m", "s", "K", "A", "mol", "cd"}
)

// ErrTooManyExponents is returned by FromSlice for sequences longer than NumDimensions.
var ErrTooManyExponents = errors.New("unit: too many exponents")

// Letter returns the dimension letter used by Dimensions (e.g. "L").
func (d Dimension) Letter() string {
	if !d.valid() {
		return fmt.Sprintf("Dimension(%d)", int(d))
	}
	return dimensionLetters[d]
}

// Symbol returns the SI base unit symbol for d (e.g. "m").
func (d Dimension) Symbol() string {
	if !d.valid() {
		return fmt.Sprintf("Dimension(%d)", int(d))
	}
	return siSymbols[d]
}

func (d Dimension) valid() bool {
	return d >= 0 && d < NumDimensions
}

// Unit is a vector of SI exponents with an optional display symbol.
// The zero value is dimensionless.
type Unit struct {
	exps   [NumDimensions]float64
	symbol string
}

// Dimensionless is the unit of pure numbers.
var Dimensionless = Unit{}

// New builds a Unit from explicit exponents in dimension order.
// Example: New(0, 1, -2, 0, 0, 0, 0) is an acceleration.
func New(m, l, t, k, i, n, j float64) Unit {
	return Unit{exps: [NumDimensions]float64{m, l, t, k, i, n, j}}
}

// FromExponents builds a Unit from a fixed-size exponent array.
func FromExponents(exps [NumDimensions]float64) Unit {
	return Unit{exps: exps}
}

// FromSlice builds a Unit from a sequence of at most NumDimensions exponents.
// Missing trailing slots are zero.
func FromSlice(exps []float64) (Unit, error) {
	if len(exps) > NumDimensions {
		return Unit{}, fmt.Errorf("%w: got %d, max %d", ErrTooManyExponents, len(exps), NumDimensions)
	}
	var u Unit
	copy(u.exps[:], exps)
	return u, nil
}

// Base returns the unit with exponent 1 on d and 0 elsewhere.
// It panics if d is not one of the Dimension constants.
func Base(d Dimension) Unit {
	var u Unit
	u.exps[d] = 1
	return u
}

// Mul combines units whose quantities multiply (exponent addition).
func (u Unit) Mul(other Unit) Unit {
	var out Unit
	for i := range out.exps {
		out.exps[i] = u.exps[i] + other.exps[i]
	}
	return out
}

// Div combines units whose quantities divide (exponent subtraction).
func (u Unit) Div(other Unit) Unit {
	var out Unit
	for i := range out.exps {
		out.exps[i] = u.exps[i] - other.exps[i]
	}
	return out
}

// Pow raises the unit to a real power (exponent scaling).
func (u Unit) Pow(n float64) Unit {
	var out Unit
	for i := range out.exps {
		out.exps[i] = u.exps[i] * n
	}
	return out
}

// Equal reports whether every exponent matches exactly. Symbols are ignored.
func (u Unit) Equal(other Unit) bool {
	return u.exps == other.exps
}

// IsUnitless reports whether the unit has no dimension (every exponent is 0).
func (u Unit) IsUnitless() bool {
	return u.exps == [NumDimensions]float64{}
}

// Exp returns the exponent of dimension d.
// It panics if d is not one of the Dimension constants.
func (u Unit) Exp(d Dimension) float64 {
	return u.exps[d]
}

// Exponents returns a copy of the exponent vector.
func (u Unit) Exponents() [NumDimensions]float64 {
	return u.exps
}

// Symbol returns the display symbol, or "" when none is defined.
func (u Unit) Symbol() string {
	return u.symbol
}

// SetExp sets the exponent of dimension d.
// It panics if d is not one of the Dimension constants.
func (u *Unit) SetExp(d Dimension, exp float64) {
	u.exps[d] = exp
}

// SetExponents replaces the whole exponent vector.
func (u *Unit) SetExponents(exps [NumDimensions]float64) {
	u.exps = exps
}

// DefineSymbol attaches a display symbol such as "J".
func (u *Unit) DefineSymbol(symbol string) {
	u.symbol = symbol
}

// WithSymbol returns a copy of u carrying the display symbol.
func (u Unit) WithSymbol(symbol string) Unit {
	u.symbol = symbol
	return u
}
