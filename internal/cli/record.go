package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/derr/internal/ir"
	"github.com/roach88/derr/internal/store"
)

// RecordOptions holds flags for the record command.
type RecordOptions struct {
	*RootOptions
	DBPath string
	Name   string
}

// RecordOutput is the JSON payload of the record command.
type RecordOutput struct {
	Dataset      ir.Dataset             `json:"dataset"`
	Measurements []ir.MeasurementRecord `json:"measurements"`
}

// NewRecordCommand creates the record command.
func NewRecordCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RecordOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "record <defs-dir>",
		Short: "Store CUE measurement definitions as a dataset",
		Long: `Compile the definitions in a CUE package and store every measurement as
one dataset. The database is created if it does not exist.

Examples:
  derr record ./defs --db ./derr.db
  derr record ./defs --db ./derr.db --name "run 3"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecord(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DBPath, "db", "", "path to SQLite database (required)")
	cmd.Flags().StringVar(&opts.Name, "name", "", "dataset name (default: directory name)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runRecord(opts *RecordOptions, dir string, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd.OutOrStdout())
	logger := opts.logger()

	res, errs := LoadDefinitions(dir, LoadModeFailFast)
	if len(errs) > 0 {
		code, msg := firstLoadError(errs)
		exit := ExitFailure
		if res == nil {
			exit = ExitCommandError
		}
		return f.Fail(exit, code, msg, loadErrorDetails(errs))
	}

	name := opts.Name
	if name == "" {
		name = filepath.Base(filepath.Clean(dir))
	}

	st, err := store.Open(opts.DBPath)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeStore, fmt.Sprintf("opening database: %v", err), nil)
	}
	defer st.Close()

	id := opts.ids().Generate()
	ds, recs, err := st.AppendDataset(cmd.Context(), id, name, res.Library.Measurements)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeStore, fmt.Sprintf("recording dataset: %v", err), nil)
	}
	logger.Info("dataset recorded", "id", ds.ID, "name", ds.Name, "seq", ds.Seq, "measurements", len(recs))

	if f.JSON() {
		return f.Success(RecordOutput{Dataset: ds, Measurements: recs})
	}

	w := f.Writer
	fmt.Fprintf(w, "✓ Recorded %d measurement(s) as dataset %s\n", len(recs), ds.ID)
	fmt.Fprintf(w, "  name: %s\n", ds.Name)
	fmt.Fprintf(w, "  seq:  %d\n", ds.Seq)
	return nil
}
