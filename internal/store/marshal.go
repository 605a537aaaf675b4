package store

import (
	"encoding/json"
	"fmt"

	"github.com/roach88/derr/internal/ir"
	"github.com/roach88/derr/internal/measure"
	"github.com/roach88/derr/internal/querysql"
	"github.com/roach88/derr/internal/unit"
)

// RecordFrom builds the persisted form of m at position seq in a dataset.
// The returned record carries its content-addressed ID.
func RecordFrom(datasetID string, seq int64, m measure.Measurement) (ir.MeasurementRecord, error) {
	exps := m.Unit().Exponents()
	rec := ir.MeasurementRecord{
		DatasetID: datasetID,
		Seq:       seq,
		Name:      m.Name(),
		Value:     m.Value(),
		Error:     m.Err(),
		Exponents: exps[:],
		Symbol:    m.Unit().Symbol(),
		SigFigs:   m.SigFigs(),
	}

	id, err := ir.MeasurementID(rec)
	if err != nil {
		return ir.MeasurementRecord{}, fmt.Errorf("record %q: %w", rec.Name, err)
	}
	rec.ID = id
	return rec, nil
}

// ToMeasurement rebuilds a measurement from its stored record.
func ToMeasurement(rec ir.MeasurementRecord) (measure.Measurement, error) {
	u, err := unit.FromSlice(rec.Exponents)
	if err != nil {
		return measure.Measurement{}, fmt.Errorf("measurement %s: %w", rec.ID, err)
	}
	if rec.Symbol != "" {
		u = u.WithSymbol(rec.Symbol)
	}

	m := measure.New(rec.Value, rec.Error, u, rec.Name)
	if err := m.SetSigFigs(rec.SigFigs); err != nil {
		return measure.Measurement{}, fmt.Errorf("measurement %s: %w", rec.ID, err)
	}
	return m, nil
}

func marshalExponents(exps []float64) (string, error) {
	return querysql.EncodeExponents(exps)
}

func unmarshalExponents(data string) ([]float64, error) {
	var exps []float64
	if err := json.Unmarshal([]byte(data), &exps); err != nil {
		return nil, fmt.Errorf("unmarshal exponents: %w", err)
	}
	return exps, nil
}
