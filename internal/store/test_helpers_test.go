package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/derr/internal/measure"
	"github.com/roach88/derr/internal/unit"
)

// createTestStore opens a fresh store in a temp dir.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// sampleMeasurements mirrors the demo quantities.
func sampleMeasurements() []measure.Measurement {
	metre := unit.Base(unit.Length)
	second := unit.Base(unit.Time)
	joule := unit.New(1, 2, -2, 0, 0, 0, 0).WithSymbol("J")
	return []measure.Measurement{
		measure.New(180, 60, metre, "distance"),
		measure.New(230, 20, second, "time"),
		measure.New(4.5, 0.25, joule, "energy"),
		measure.New(150, 10, metre, "height"),
	}
}
