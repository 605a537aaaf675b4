package cli

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/derr/internal/measure"
)

// MeasurementView is the JSON form of a measurement in CLI output.
type MeasurementView struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Error      float64 `json:"error"`
	Units      string  `json:"units"`
	Dimensions string  `json:"dimensions"`
	SigFigs    int     `json:"sig_figs"`
	Show       string  `json:"show"`
}

func viewOf(m measure.Measurement) MeasurementView {
	return MeasurementView{
		Name:       m.Name(),
		Value:      m.Value(),
		Error:      m.Err(),
		Units:      m.UnitsText(),
		Dimensions: m.Dimensions(),
		SigFigs:    m.SigFigs(),
		Show:       m.Show(),
	}
}

// LoadOutput is the JSON payload of the load command.
type LoadOutput struct {
	Units        []string          `json:"units"`
	Measurements []MeasurementView `json:"measurements"`
}

// NewLoadCommand creates the load command.
func NewLoadCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "load <defs-dir>",
		Short: "Compile CUE measurement definitions and print them",
		Long: `Compile the unit and measurement definitions in a CUE package:

  unit: J: {M: 1, L: 2, T: -2}
  measurement: work: {value: 4.5, error: 0.25, unit: "J"}

All errors are reported, not just the first.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(rootOpts, args[0], cmd)
		},
	}
}

func runLoad(opts *RootOptions, dir string, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd.OutOrStdout())

	res, errs := LoadDefinitions(dir, LoadModeCollectAll)
	if len(errs) > 0 {
		code, msg := firstLoadError(errs)
		exit := ExitFailure
		if res == nil {
			exit = ExitCommandError
		}
		failErr := f.Fail(exit, code, msg, loadErrorDetails(errs))
		if !f.JSON() {
			for _, err := range errs[1:] {
				fmt.Fprintf(f.Writer, "  %v\n", err)
			}
		}
		return failErr
	}
	opts.logger().Debug("definitions loaded", "dir", dir, "files", res.FileCount, "measurements", len(res.Library.Measurements))

	symbols := slices.Sorted(maps.Keys(res.Library.Symbols))

	if f.JSON() {
		out := LoadOutput{Units: symbols, Measurements: make([]MeasurementView, 0, len(res.Library.Measurements))}
		for _, m := range res.Library.Measurements {
			out.Measurements = append(out.Measurements, viewOf(m))
		}
		return f.Success(out)
	}

	w := f.Writer
	fmt.Fprintf(w, "✓ Loaded %d measurement(s), %d unit(s) from %d file(s)\n\n",
		len(res.Library.Measurements), len(symbols), res.FileCount)
	for _, sym := range symbols {
		u := res.Library.Symbols[sym]
		fmt.Fprintf(w, "  unit %s = %s (%s)\n", sym, u.SIUnits(), u.Dimensions())
	}
	if len(symbols) > 0 {
		fmt.Fprintln(w)
	}
	for _, m := range res.Library.Measurements {
		fmt.Fprintf(w, "  %s\n", m.Show())
	}
	return nil
}
