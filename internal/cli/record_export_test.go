package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordDefs records testdata/defs into a fresh database and returns its path.
func recordDefs(t *testing.T) string {
	t.Helper()
	db := filepath.Join(t.TempDir(), "derr.db")
	out, err := execute(t, nil, "record", "testdata/defs", "--db", db)
	require.NoError(t, err)
	require.Contains(t, out, "✓ Recorded 4 measurement(s) as dataset ds-0001")
	return db
}

func TestRecordText(t *testing.T) {
	db := filepath.Join(t.TempDir(), "derr.db")
	out, err := execute(t, nil, "record", "testdata/defs", "--db", db, "--name", "run 3")
	require.NoError(t, err)

	assert.Contains(t, out, "✓ Recorded 4 measurement(s) as dataset ds-0001")
	assert.Contains(t, out, "name: run 3")
}

func TestRecordJSON(t *testing.T) {
	db := filepath.Join(t.TempDir(), "derr.db")
	out, err := execute(t, nil, "--format", "json", "record", "testdata/defs", "--db", db)
	require.NoError(t, err)

	var resp struct {
		Status string       `json:"status"`
		Data   RecordOutput `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ds-0001", resp.Data.Dataset.ID)
	assert.Equal(t, "defs", resp.Data.Dataset.Name)
	require.Len(t, resp.Data.Measurements, 4)
	assert.Equal(t, "distance", resp.Data.Measurements[0].Name)
	assert.Equal(t, "J", resp.Data.Measurements[2].Symbol)
}

func TestRecordRequiresDB(t *testing.T) {
	_, err := execute(t, nil, "record", "testdata/defs")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"db" not set`)
}

func TestRecordBadDefinitions(t *testing.T) {
	db := filepath.Join(t.TempDir(), "derr.db")
	out, err := execute(t, nil, "record", "testdata/baddefs", "--db", db)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Error [E102]:")
}

func TestExport(t *testing.T) {
	db := recordDefs(t)

	tests := []struct {
		name   string
		flags  []string
		values []float64
		errors []float64
	}{
		{
			name:   "whole dataset",
			values: []float64{180, 230, 4.5, 150},
			errors: []float64{60, 20, 0.25, 10},
		},
		{
			name:   "by unit",
			flags:  []string{"--unit", "m"},
			values: []float64{180, 150},
			errors: []float64{60, 10},
		},
		{
			name:   "by name",
			flags:  []string{"--name", "distance"},
			values: []float64{180},
			errors: []float64{60},
		},
		{
			name:   "overlapping an interval",
			flags:  []string{"--overlaps", "100,200"},
			values: []float64{180, 150},
			errors: []float64{60, 10},
		},
		{
			name:   "overlapping a narrow interval",
			flags:  []string{"--overlaps", "200,215"},
			values: []float64{180, 230},
			errors: []float64{60, 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"export", "ds-0001", "--db", db}, tt.flags...)
			out, err := execute(t, nil, args...)
			require.NoError(t, err)

			var got ExportOutput
			require.NoError(t, json.Unmarshal([]byte(out), &got))
			assert.Equal(t, tt.values, got.Values)
			assert.Equal(t, tt.errors, got.Errors)
		})
	}
}

func TestExportErrors(t *testing.T) {
	db := recordDefs(t)

	tests := []struct {
		name string
		args []string
		code string
	}{
		{"missing database", []string{"export", "ds-0001", "--db", filepath.Join(t.TempDir(), "none.db")}, ErrCodeNotFound},
		{"unknown dataset", []string{"export", "ds-9999", "--db", db}, ErrCodeNotFound},
		{"bad unit", []string{"export", "ds-0001", "--db", db, "--unit", "furlong"}, ErrCodeInvalidFilter},
		{"bad interval", []string{"export", "ds-0001", "--db", db, "--overlaps", "100"}, ErrCodeInvalidFilter},
		{"bad bound", []string{"export", "ds-0001", "--db", db, "--overlaps", "a,2"}, ErrCodeInvalidFilter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, nil, append([]string{"--format", "json"}, tt.args...)...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))

			var resp CLIResponse
			require.NoError(t, json.Unmarshal([]byte(out), &resp))
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}
