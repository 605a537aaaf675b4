package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/derr/internal/measure"
	"github.com/roach88/derr/internal/querysql"
	"github.com/roach88/derr/internal/store"
	"github.com/roach88/derr/internal/unit"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	DBPath   string
	Name     string
	Unit     string
	Overlaps string // "lo,hi"
}

// ExportOutput is the parallel-array form of a dataset.
type ExportOutput struct {
	Values []float64 `json:"values"`
	Errors []float64 `json:"errors"`
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export <dataset-id>",
		Short: "Export a stored dataset as value and error arrays",
		Long: `Export the measurements of a dataset as {"values": [...], "errors": [...]}
in dataset order, optionally filtered.

Examples:
  derr export 0190a1b2-... --db ./derr.db
  derr export 0190a1b2-... --db ./derr.db --unit m
  derr export 0190a1b2-... --db ./derr.db --overlaps 100,200`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DBPath, "db", "", "path to SQLite database (required)")
	cmd.Flags().StringVar(&opts.Name, "name", "", "only measurements with this name")
	cmd.Flags().StringVar(&opts.Unit, "unit", "", "only measurements with exactly this unit")
	cmd.Flags().StringVar(&opts.Overlaps, "overlaps", "", "only measurements whose interval overlaps lo,hi")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runExport(opts *ExportOptions, datasetID string, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd.OutOrStdout())
	ctx := cmd.Context()

	filter, err := buildFilter(datasetID, opts)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeInvalidFilter, err.Error(), nil)
	}

	if _, err := os.Stat(opts.DBPath); os.IsNotExist(err) {
		return f.Fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("database not found: %s", opts.DBPath), nil)
	}
	st, err := store.Open(opts.DBPath)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeStore, fmt.Sprintf("opening database: %v", err), nil)
	}
	defer st.Close()

	if _, err := st.ReadDataset(ctx, datasetID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return f.Fail(ExitCommandError, ErrCodeNotFound, err.Error(), nil)
		}
		return f.Fail(ExitCommandError, ErrCodeStore, err.Error(), nil)
	}

	recs, err := st.QueryMeasurements(ctx, filter)
	if err != nil {
		if errors.Is(err, querysql.ErrInvalidFilter) {
			return f.Fail(ExitCommandError, ErrCodeInvalidFilter, err.Error(), nil)
		}
		return f.Fail(ExitCommandError, ErrCodeStore, err.Error(), nil)
	}

	ms := make([]measure.Measurement, 0, len(recs))
	for _, rec := range recs {
		m, err := store.ToMeasurement(rec)
		if err != nil {
			return f.Fail(ExitCommandError, ErrCodeStore, err.Error(), nil)
		}
		ms = append(ms, m)
	}
	opts.logger().Debug("dataset exported", "id", datasetID, "measurements", len(ms))

	values, errs := measure.Split(ms)
	out := ExportOutput{Values: values, Errors: errs}

	if f.JSON() {
		return f.Success(out)
	}
	return json.NewEncoder(f.Writer).Encode(out)
}

func buildFilter(datasetID string, opts *ExportOptions) (querysql.Filter, error) {
	filter := querysql.Filter{DatasetID: datasetID, Name: opts.Name}

	if opts.Unit != "" {
		u, err := unit.Parse(opts.Unit)
		if err != nil {
			return querysql.Filter{}, fmt.Errorf("--unit: %w", err)
		}
		exps := u.Exponents()
		filter.Exponents = exps[:]
	}

	if opts.Overlaps != "" {
		loText, hiText, ok := strings.Cut(opts.Overlaps, ",")
		if !ok {
			return querysql.Filter{}, fmt.Errorf("--overlaps: want lo,hi, got %q", opts.Overlaps)
		}
		lo, err := strconv.ParseFloat(strings.TrimSpace(loText), 64)
		if err != nil {
			return querysql.Filter{}, fmt.Errorf("--overlaps: bad lower bound %q", loText)
		}
		hi, err := strconv.ParseFloat(strings.TrimSpace(hiText), 64)
		if err != nil {
			return querysql.Filter{}, fmt.Errorf("--overlaps: bad upper bound %q", hiText)
		}
		filter.Overlaps = &querysql.Interval{Lo: lo, Hi: hi}
	}

	return filter, nil
}
