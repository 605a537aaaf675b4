package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/derr/internal/engine"
	"github.com/roach88/derr/internal/measure"
	"github.com/roach88/derr/internal/unit"
)

// EvalOptions holds flags for the eval command.
type EvalOptions struct {
	*RootOptions
	LeftUnit  string
	RightUnit string
	SigFigs   int
}

// EvalResult is the JSON payload of the eval command.
type EvalResult struct {
	Show       string  `json:"show"`
	Value      float64 `json:"value"`
	Error      float64 `json:"error"`
	Units      string  `json:"units"`
	Dimensions string  `json:"dimensions"`
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "eval <left> <op> <right>",
		Short: "Evaluate one operation between two measurements",
		Long: `Evaluate left op right and print the result with its propagated error.

Operands are literals: "3", "3+/-1", "3 ± 1" or "(3, 1)". The left operand
takes --left-unit. The right operand becomes a measurement with --right-unit
when set; otherwise a pair or number takes the left unit for + and - and is
dimensionless for *, / and ^.

Examples:
  derr eval "180 +/- 60" / "230 +/- 20" --left-unit m --right-unit s
  derr eval "10 +/- 3" + "10 +/- 4"
  derr eval "3 +/- 0.2" ^ 2 --left-unit "m s^-1" --sigfigs 4`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(opts, args[0], args[1], args[2], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.LeftUnit, "left-unit", "", "unit of the left operand")
	cmd.Flags().StringVar(&opts.RightUnit, "right-unit", "", "unit of the right operand")
	cmd.Flags().IntVar(&opts.SigFigs, "sigfigs", measure.DefaultSigFigs, "significant figures of the result")

	return cmd
}

func runEval(opts *EvalOptions, left, op, right string, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd.OutOrStdout())
	eng := engine.New(engine.WithLogger(opts.logger()))

	if err := defineLiteral(eng, "left", left, opts.LeftUnit, opts.SigFigs); err != nil {
		return f.Fail(ExitCommandError, ErrCodeBadOperand, err.Error(), nil)
	}
	rightRef := right
	if opts.RightUnit != "" {
		if err := defineLiteral(eng, "right", right, opts.RightUnit, opts.SigFigs); err != nil {
			return f.Fail(ExitCommandError, ErrCodeBadOperand, err.Error(), nil)
		}
		rightRef = "right"
	}

	out, err := eng.Apply(engine.Step{Op: op, Left: "left", Right: rightRef, Into: "result"})
	if err != nil {
		switch engine.CodeOf(err) {
		case engine.ErrCodeOperationFailed:
			return f.Fail(ExitFailure, ErrCodeEvalFailed, err.Error(), nil)
		default:
			return f.Fail(ExitCommandError, ErrCodeBadOperand, err.Error(), nil)
		}
	}

	res := out.Result
	if f.JSON() {
		return f.Success(EvalResult{
			Show:       res.Show(),
			Value:      res.Value(),
			Error:      res.Err(),
			Units:      res.UnitsText(),
			Dimensions: res.Dimensions(),
		})
	}
	return f.Success(res.Show())
}

// defineLiteral parses a literal operand and defines it on eng as a
// measurement with the given unit text and significant figures.
func defineLiteral(eng *engine.Engine, name, literal, unitText string, sigFigs int) error {
	x, err := eng.Resolve(literal)
	if err != nil {
		return err
	}
	if x.IsMeasurement() {
		return fmt.Errorf("%q must be a literal", literal)
	}
	u, err := unit.Parse(unitText)
	if err != nil {
		return fmt.Errorf("%s unit: %w", name, err)
	}

	m := measure.New(x.Value(), x.Err(), u, name)
	if err := m.SetSigFigs(sigFigs); err != nil {
		return fmt.Errorf("--sigfigs: %w", err)
	}
	eng.Define(name, m)
	return nil
}
