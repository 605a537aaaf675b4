package harness

import (
	"fmt"
	"math"

	"github.com/roach88/derr/internal/engine"
)

// checkExpect compares a step outcome against its expectation.
// A step without an expectation must succeed.
func checkExpect(e *Expect, out engine.Outcome, err error) []string {
	if e == nil {
		if err != nil {
			return []string{fmt.Sprintf("unexpected failure: %v", err)}
		}
		return nil
	}

	if e.Fails {
		if err == nil {
			return []string{fmt.Sprintf("expected failure, got %s", out.Show())}
		}
		if e.Code != "" && string(out.Code) != e.Code {
			return []string{fmt.Sprintf("expected code %s, got %s", e.Code, out.Code)}
		}
		return nil
	}
	if err != nil {
		return []string{fmt.Sprintf("unexpected failure: %v", err)}
	}

	tol := e.Tolerance
	if tol == 0 {
		tol = DefaultTolerance
	}

	var errs []string
	if e.Value != nil && !within(out.Result.Value(), *e.Value, tol) {
		errs = append(errs, fmt.Sprintf("value: expected %g ± %g, got %g", *e.Value, tol, out.Result.Value()))
	}
	if e.Error != nil && !within(out.Result.Err(), *e.Error, tol) {
		errs = append(errs, fmt.Sprintf("error: expected %g ± %g, got %g", *e.Error, tol, out.Result.Err()))
	}
	if e.Dimensions != "" && out.Result.Dimensions() != e.Dimensions {
		errs = append(errs, fmt.Sprintf("dimensions: expected %q, got %q", e.Dimensions, out.Result.Dimensions()))
	}
	if e.Show != "" && out.Show() != e.Show {
		errs = append(errs, fmt.Sprintf("show: expected %q, got %q", e.Show, out.Show()))
	}
	return errs
}

func within(got, want, tol float64) bool {
	return math.Abs(got-want) <= tol
}

// EvaluateAssertions runs each assertion against eng, appends an assert event
// per assertion to result.Trace and returns a message for each one that did
// not hold.
func EvaluateAssertions(eng *engine.Engine, assertions []Assertion, result *Result) []string {
	var errs []string

	for i, a := range assertions {
		holds, seq, err := eng.Compare(a.Type, a.Left, a.Right)

		event := TraceEvent{
			Type:  EventAssert,
			Seq:   seq,
			Op:    a.Type,
			Left:  a.Left,
			Right: a.Right,
			Holds: holds,
		}
		if err != nil {
			event.Code = string(engine.CodeOf(err))
			errs = append(errs, fmt.Sprintf("assertions[%d] (%s %s %s): %v", i, a.Left, a.Type, a.Right, err))
			result.Trace = append(result.Trace, event)
			continue
		}
		result.Trace = append(result.Trace, event)

		if a.Want != nil && holds != *a.Want {
			errs = append(errs, fmt.Sprintf("assertions[%d]: %s %s %s is %t, want %t", i, a.Left, a.Type, a.Right, holds, *a.Want))
		}
	}

	return errs
}
