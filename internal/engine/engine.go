package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/roach88/derr/internal/measure"
	"github.com/roach88/derr/internal/unit"
)

// Step is one calculation: Left Op Right, optionally stored under Into.
type Step struct {
	// Op is an operation name or symbol accepted by measure.ParseOp.
	Op string

	// Left must resolve to a measurement: a defined name or a literal.
	Left string

	// Right may be a defined name or a literal.
	Right string

	// Into names the result. Empty means the result is not stored.
	Into string
}

// Label renders the step for logs and errors, e.g. "d * t -> v".
func (s Step) Label() string {
	label := fmt.Sprintf("%s %s %s", s.Left, s.Op, s.Right)
	if s.Into != "" {
		label += " -> " + s.Into
	}
	return label
}

// Outcome records one evaluated step.
// On failure Result is the zero Measurement and Code is set.
type Outcome struct {
	Seq    int64
	Step   Step
	Op     measure.Op
	Result measure.Measurement
	Code   ErrorCode
}

// OK reports whether the step succeeded.
func (o Outcome) OK() bool { return o.Code == "" }

// Show returns the result's Show text, or "" on failure.
func (o Outcome) Show() string {
	if !o.OK() {
		return ""
	}
	return o.Result.Show()
}

// Engine evaluates steps over a table of named measurements.
type Engine struct {
	clock  *Clock
	logger *slog.Logger
	table  map[string]measure.Measurement
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the logical clock. Used to resume a sequence or to share one
// clock between engines.
func WithClock(c *Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// New creates an empty Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		clock:  NewClock(),
		logger: slog.Default(),
		table:  make(map[string]measure.Measurement),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Clock returns the engine's logical clock.
func (e *Engine) Clock() *Clock {
	return e.clock
}

// Define stores m under name, replacing any earlier definition.
// The stored copy is renamed to name.
func (e *Engine) Define(name string, m measure.Measurement) {
	m.SetName(name)
	e.table[name] = m
}

// Lookup returns the measurement defined under name.
func (e *Engine) Lookup(name string) (measure.Measurement, bool) {
	m, ok := e.table[name]
	return m, ok
}

// Names returns every defined name in sorted order.
func (e *Engine) Names() []string {
	return slices.Sorted(maps.Keys(e.table))
}

// Resolve returns the operand for ref: a defined name or a literal.
func (e *Engine) Resolve(ref string) (measure.Operand, error) {
	if m, ok := e.table[ref]; ok {
		return measure.Of(m), nil
	}
	if !looksLiteral(ref) {
		return measure.Operand{}, &EvalError{
			Code:    ErrCodeUnknownOperand,
			Message: fmt.Sprintf("%q is not defined", ref),
		}
	}
	x, err := parseLiteral(ref)
	if err != nil {
		return measure.Operand{}, &EvalError{Code: ErrCodeBadLiteral, Message: err.Error(), Err: err}
	}
	return x, nil
}

// resolveMeasurement resolves ref as a left-hand side. Literals become
// dimensionless measurements.
func (e *Engine) resolveMeasurement(ref string) (measure.Measurement, error) {
	if m, ok := e.table[ref]; ok {
		return m, nil
	}
	x, err := e.Resolve(ref)
	if err != nil {
		return measure.Measurement{}, err
	}
	return measure.New(x.Value(), x.Err(), unit.Dimensionless, ""), nil
}

// Apply evaluates step. Every call consumes a sequence number, including
// failed ones, so the outcome is always returned alongside any error.
func (e *Engine) Apply(step Step) (Outcome, error) {
	out := Outcome{Seq: e.clock.Next(), Step: step}

	res, err := e.apply(step, &out)
	if err != nil {
		var ee *EvalError
		if errors.As(err, &ee) {
			ee.Step = step.Label()
			out.Code = ee.Code
		}
		e.logger.Info("step failed",
			"seq", out.Seq,
			"op", step.Op,
			"left", step.Left,
			"right", step.Right,
			"error", err,
		)
		return out, err
	}

	out.Result = res
	if step.Into != "" {
		e.Define(step.Into, res)
		out.Result = e.table[step.Into]
	}

	e.logger.Debug("step applied",
		"seq", out.Seq,
		"op", out.Op.String(),
		"left", step.Left,
		"right", step.Right,
		"result", out.Result.Show(),
	)
	return out, nil
}

func (e *Engine) apply(step Step, out *Outcome) (measure.Measurement, error) {
	op, err := measure.ParseOp(step.Op)
	if err != nil {
		return measure.Measurement{}, &EvalError{Code: ErrCodeUnknownOp, Message: err.Error(), Err: err}
	}
	out.Op = op

	left, err := e.resolveMeasurement(step.Left)
	if err != nil {
		return measure.Measurement{}, err
	}
	right, err := e.Resolve(step.Right)
	if err != nil {
		return measure.Measurement{}, err
	}

	res, err := left.Combine(op, right)
	if err != nil {
		return measure.Measurement{}, &EvalError{Code: ErrCodeOperationFailed, Message: err.Error(), Err: err}
	}
	return res, nil
}

// Compare evaluates the named predicate between left and right.
// The comparison consumes a sequence number; the seq is returned for tracing.
func (e *Engine) Compare(pred, left, right string) (bool, int64, error) {
	seq := e.clock.Next()

	p, err := measure.ParsePredicate(pred)
	if err != nil {
		return false, seq, &EvalError{Code: ErrCodeUnknownOp, Message: err.Error(), Err: err}
	}
	m, err := e.resolveMeasurement(left)
	if err != nil {
		return false, seq, err
	}
	x, err := e.Resolve(right)
	if err != nil {
		return false, seq, err
	}

	got := m.Compare(p, x)
	e.logger.Debug("compared",
		"seq", seq,
		"predicate", p.String(),
		"left", left,
		"right", right,
		"result", got,
	)
	return got, seq, nil
}
