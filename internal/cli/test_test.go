package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const velocityScenario = `name: velocity
description: "Average speed over a timed distance"
quantities:
  - name: d
    value: 180
    error: 60
    unit: m
  - name: t
    value: 230
    error: 20
    unit: s
steps:
  - op: div
    left: d
    right: t
    as: v
    expect:
      dimensions: "L T^-1"
      show: "v / m s^-1 : 7.82E-1 +/- 2.69E-1"
`

const brokenScenario = `name: broken
description: "Expects a valid sum to fail"
quantities:
  - name: d
    value: 1
    error: 0.1
    unit: m
steps:
  - op: add
    left: d
    right: d
    expect:
      fails: true
`

// writeScenarios creates a scenarios directory holding the given files.
func writeScenarios(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestTestCommandUpdateThenPass(t *testing.T) {
	dir := writeScenarios(t, map[string]string{"velocity.yaml": velocityScenario})

	out, err := execute(t, nil, "test", dir, "--update")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ velocity")

	golden := filepath.Join(dir, "golden", "velocity.golden")
	require.FileExists(t, golden)

	out, err = execute(t, nil, "test", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Test Summary: 1 passed, 0 failed, 1 total")
	assert.Contains(t, out, "✓ All scenarios passed")
}

func TestTestCommandGoldenMismatch(t *testing.T) {
	dir := writeScenarios(t, map[string]string{"velocity.yaml": velocityScenario})
	_, err := execute(t, nil, "test", dir, "--update")
	require.NoError(t, err)

	golden := filepath.Join(dir, "golden", "velocity.golden")
	require.NoError(t, os.WriteFile(golden, []byte(`{"name":"velocity","trace":[]}`), 0o644))

	out, err := execute(t, nil, "test", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ velocity")
	assert.Contains(t, out, "trace does not match golden file")
}

func TestTestCommandFailingExpectation(t *testing.T) {
	dir := writeScenarios(t, map[string]string{
		"velocity.yaml": velocityScenario,
		"broken.yaml":   brokenScenario,
	})

	out, err := execute(t, nil, "test", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ broken")
	assert.Contains(t, out, "Test Summary: 1 passed, 1 failed, 2 total")
}

func TestTestCommandFilter(t *testing.T) {
	dir := writeScenarios(t, map[string]string{
		"velocity.yaml": velocityScenario,
		"broken.yaml":   brokenScenario,
	})

	out, err := execute(t, nil, "test", dir, "--filter", "velo*")
	require.NoError(t, err)
	assert.Contains(t, out, "Test Summary: 1 passed, 0 failed, 1 total")
	assert.NotContains(t, out, "broken")
}

func TestTestCommandJSON(t *testing.T) {
	dir := writeScenarios(t, map[string]string{
		"velocity.yaml": velocityScenario,
		"broken.yaml":   brokenScenario,
	})

	out, err := execute(t, nil, "--format", "json", "test", dir)
	require.Error(t, err)

	var resp struct {
		Status string     `json:"status"`
		Data   TestResult `json:"data"`
		Error  *CLIError  `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, 2, resp.Data.Total)
	assert.Equal(t, 1, resp.Data.Failed)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeTestFailed, resp.Error.Code)
	for _, sc := range resp.Data.Scenarios {
		assert.Len(t, sc.TraceHash, 64, "scenario %s", sc.Name)
	}
}

func TestTestCommandNoScenarios(t *testing.T) {
	out, err := execute(t, nil, "test", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "No scenarios found.")
}

func TestTestCommandMissingDirectory(t *testing.T) {
	_, err := execute(t, nil, "test", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestGoldenFilePath(t *testing.T) {
	assert.Equal(t, filepath.Join("s", "golden", "a.golden"), goldenFilePath(filepath.Join("s", "a.yaml")))
}
