package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/derr/internal/engine"
	"github.com/roach88/derr/internal/measure"
	"github.com/roach88/derr/internal/unit"
)

// DemoLine is one successful combination printed by the demo.
type DemoLine struct {
	Left   string `json:"left"`
	Op     string `json:"op"`
	Right  string `json:"right"`
	Result string `json:"result"`
}

// demoQuantities returns the demo's distance and its five operands.
func demoQuantities() (measure.Measurement, []measure.Measurement) {
	distance := measure.New(180, 60, unit.Base(unit.Length), "distance")
	return distance, []measure.Measurement{
		measure.New(230, 20, unit.Base(unit.Time), "time"),
		measure.New(3, 1, unit.Dimensionless, "ratio"),
		measure.New(150, 23, unit.Base(unit.Length), "height"),
		measure.New(20, 0, unit.Base(unit.Mass), "mass"),
		measure.New(2, 0, unit.Dimensionless, "two"),
	}
}

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Combine a sample distance with five operands under every operator",
		Long: `Combine 180 +/- 60 m with a time, a ratio, a height, a mass and a bare
number under +, -, *, / and ^. Combinations that fail (unit mismatch,
dimensioned exponent) are skipped.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(rootOpts, cmd)
		},
	}
}

func runDemo(opts *RootOptions, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd.OutOrStdout())
	w := cmd.OutOrStdout()

	eng := engine.New(engine.WithLogger(opts.logger()))
	distance, operands := demoQuantities()
	eng.Define(distance.Name(), distance)
	for _, m := range operands {
		eng.Define(m.Name(), m)
	}
	distance, _ = eng.Lookup(distance.Name())

	if !f.JSON() {
		fmt.Fprintln(w, distance.Show())
		fmt.Fprintln(w)
	}

	ops := []measure.Op{measure.OpAdd, measure.OpSub, measure.OpMul, measure.OpDiv, measure.OpPow}
	lines := []DemoLine{}
	for _, m := range operands {
		right, _ := eng.Lookup(m.Name())
		for _, op := range ops {
			out, err := eng.Apply(engine.Step{Op: op.String(), Left: distance.Name(), Right: m.Name()})
			if err != nil {
				continue
			}
			line := DemoLine{Left: distance.Show(), Op: op.Symbol(), Right: right.Show(), Result: out.Show()}
			lines = append(lines, line)
			if !f.JSON() {
				fmt.Fprintf(w, "(%s) %s (%s)\n%s\n\n", line.Left, line.Op, line.Right, line.Result)
			}
		}
	}

	if f.JSON() {
		return f.Success(lines)
	}
	return nil
}
