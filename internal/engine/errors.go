package engine

import (
	"errors"
	"fmt"

	"github.com/roach88/derr/internal/measure"
)

// ErrorCode categorizes evaluation errors.
type ErrorCode string

const (
	// ErrCodeUnknownOperand: a reference is neither a defined name nor a literal.
	ErrCodeUnknownOperand ErrorCode = "UNKNOWN_OPERAND"

	// ErrCodeBadLiteral: a literal looked numeric but did not parse.
	ErrCodeBadLiteral ErrorCode = "BAD_LITERAL"

	// ErrCodeUnknownOp: the operator or predicate name is not recognised.
	ErrCodeUnknownOp ErrorCode = "UNKNOWN_OP"

	// ErrCodeOperationFailed: the measurement operation itself failed.
	ErrCodeOperationFailed ErrorCode = "OPERATION_FAILED"
)

// EvalError is returned by Engine operations. Err carries the underlying
// cause, e.g. measure.ErrUnitMismatch, for errors.Is.
type EvalError struct {
	Code    ErrorCode
	Message string
	Step    string
	Err     error
}

func (e *EvalError) Error() string {
	if e.Step != "" {
		return fmt.Sprintf("%s: %s (step=%s)", e.Code, e.Message, e.Step)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *EvalError) Unwrap() error {
	return e.Err
}

// CodeOf returns the EvalError code of err, or "" when err is not one.
func CodeOf(err error) ErrorCode {
	var ee *EvalError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return ""
}

// IsUnknownOperand reports whether err is an unresolved reference.
func IsUnknownOperand(err error) bool {
	return CodeOf(err) == ErrCodeUnknownOperand
}

// IsUnitMismatch reports whether err was caused by incompatible units.
func IsUnitMismatch(err error) bool {
	return errors.Is(err, measure.ErrUnitMismatch)
}

// IsUndefinedRelativeError reports whether err was caused by a zero value in
// a relative-error rule.
func IsUndefinedRelativeError(err error) bool {
	return errors.Is(err, measure.ErrUndefinedRelativeError)
}
