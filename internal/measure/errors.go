package measure

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped in *OpError) by measurement operations.
var (
	// ErrUnitMismatch indicates an add or subtract over unequal units.
	ErrUnitMismatch = errors.New("unit mismatch")

	// ErrInvalidExponentUnit indicates a power whose exponent carries a dimension.
	ErrInvalidExponentUnit = errors.New("exponent is not dimensionless")

	// ErrUndefinedRelativeError indicates a relative error was needed for a zero value.
	ErrUndefinedRelativeError = errors.New("relative error undefined for zero value")

	// ErrNotFinite indicates the result value or error is NaN or infinite.
	ErrNotFinite = errors.New("result is not finite")

	// ErrInvalidSigFigs indicates a significant-figure count below 1.
	ErrInvalidSigFigs = errors.New("significant figures must be at least 1")
)

// OpError describes a failed operation between two operands.
type OpError struct {
	// Op is the operation that failed.
	Op Op

	// Left and Right describe the operands, e.g. "180 ± 60 m".
	Left  string
	Right string

	// Err is one of the sentinel errors above.
	Err error
}

// Error implements the error interface.
func (e *OpError) Error() string {
	return fmt.Sprintf("%s (%s) %s (%s): %v", e.Op, e.Left, e.Op.Symbol(), e.Right, e.Err)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *OpError) Unwrap() error {
	return e.Err
}
