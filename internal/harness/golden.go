package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/derr/internal/ir"
)

// GoldenDir is where RunWithGolden and AssertGolden keep golden files,
// relative to the test's package directory.
const GoldenDir = "testdata/golden"

// MarshalTrace serializes a scenario trace as canonical JSON. The bytes are
// stable across runs and platforms.
func MarshalTrace(scenarioName string, trace []TraceEvent) ([]byte, error) {
	return ir.MarshalCanonical(traceDocument(scenarioName, trace))
}

// TraceHash fingerprints a scenario trace. Equal traces hash equally
// regardless of map ordering.
func TraceHash(scenarioName string, trace []TraceEvent) (string, error) {
	return ir.TraceHash(traceDocument(scenarioName, trace))
}

func traceDocument(scenarioName string, trace []TraceEvent) map[string]any {
	events := make([]any, len(trace))
	for i, e := range trace {
		events[i] = e.canonical()
	}
	return map[string]any{
		"scenario_name": scenarioName,
		"trace":         events,
	}
}

// RunWithGolden executes a scenario and compares the trace against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns the result so callers can also check Pass.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}
	if err := AssertGolden(t, scenario.Name, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares an existing result's trace against a golden file
// without re-running the scenario.
func AssertGolden(t *testing.T, scenarioName string, result *Result) error {
	t.Helper()

	traceJSON, err := MarshalTrace(scenarioName, result.Trace)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir(GoldenDir),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, traceJSON)

	return nil
}
