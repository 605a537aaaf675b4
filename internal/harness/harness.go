package harness

import (
	"fmt"
	"log/slog"

	"github.com/roach88/derr/internal/compiler"
	"github.com/roach88/derr/internal/engine"
	"github.com/roach88/derr/internal/measure"
	"github.com/roach88/derr/internal/testutil"
	"github.com/roach88/derr/internal/unit"
)

// Harness runs one scenario on a fresh engine.
type Harness struct {
	engine *engine.Engine
	logger *slog.Logger
}

// Run executes a scenario and returns the result.
//
// Execution flow:
//  1. Resolve declared unit symbols
//  2. Define quantities on a fresh engine with a clock at zero
//  3. Apply steps in order, checking expectations
//  4. Evaluate assertions
//
// A non-nil error means the scenario could not be set up (bad unit text).
// Failed expectations and assertions are reported in Result.Errors.
func Run(scenario *Scenario) (*Result, error) {
	logger := testutil.DiscardLogger()
	h := &Harness{
		engine: engine.New(engine.WithClock(engine.NewClock()), engine.WithLogger(logger)),
		logger: logger,
	}

	symbols, err := resolveUnits(scenario.Units)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve units: %w", err)
	}
	if err := h.defineQuantities(scenario.Quantities, symbols); err != nil {
		return nil, fmt.Errorf("failed to define quantities: %w", err)
	}

	result := NewResult()
	for i, step := range scenario.Steps {
		h.executeStep(i, step, result)
	}
	for _, msg := range EvaluateAssertions(h.engine, scenario.Assertions, result) {
		result.AddError(msg)
	}

	return result, nil
}

func resolveUnits(units map[string]string) (compiler.Symbols, error) {
	symbols := compiler.Symbols{}
	for sym, text := range units {
		u, err := unit.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("unit %s: %w", sym, err)
		}
		symbols[sym] = u.WithSymbol(sym)
	}
	return symbols, nil
}

func (h *Harness) defineQuantities(qs []Quantity, symbols compiler.Symbols) error {
	for _, q := range qs {
		u := unit.Dimensionless
		if q.Unit != "" {
			var err error
			u, err = symbols.Resolve(q.Unit)
			if err != nil {
				return fmt.Errorf("quantity %s: %w", q.Name, err)
			}
		}

		m := measure.New(q.Value, q.Error, u, q.Name)
		if q.SigFigs > 0 {
			if err := m.SetSigFigs(q.SigFigs); err != nil {
				return fmt.Errorf("quantity %s: %w", q.Name, err)
			}
		}
		h.engine.Define(q.Name, m)
	}
	return nil
}

func (h *Harness) executeStep(i int, step Step, result *Result) {
	out, err := h.engine.Apply(engine.Step{Op: step.Op, Left: step.Left, Right: step.Right, Into: step.As})

	event := TraceEvent{
		Type:  EventStep,
		Seq:   out.Seq,
		Op:    step.Op,
		Left:  step.Left,
		Right: step.Right,
		As:    step.As,
		Code:  string(out.Code),
	}
	if err == nil {
		event.Show = out.Show()
		event.Dimensions = out.Result.Dimensions()
	} else {
		h.logger.Debug("step failed", "index", i, "error", err)
	}
	result.Trace = append(result.Trace, event)

	for _, msg := range checkExpect(step.Expect, out, err) {
		result.AddError(fmt.Sprintf("steps[%d] (%s %s %s): %s", i, step.Left, step.Op, step.Right, msg))
	}
}
