package compiler

import (
	"fmt"

	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

// CompileError reports a bad unit or measurement definition. Field is the
// dotted path of the offending value, e.g. "measurement.d.error".
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	msg := e.Field + ": " + e.Message
	if !e.Pos.IsValid() {
		return msg
	}
	return fmt.Sprintf("%s:%d:%d: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), msg)
}

// cueError converts an error raised by the CUE evaluator into a CompileError
// positioned at its first reported location. Errors without a position are
// returned unchanged.
func cueError(err error) error {
	if err == nil {
		return nil
	}
	list := errors.Errors(err)
	if len(list) == 0 {
		return err
	}
	if pos := errors.Positions(list[0]); len(pos) > 0 {
		return &CompileError{Field: "cue", Message: list[0].Error(), Pos: pos[0]}
	}
	return err
}
