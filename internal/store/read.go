package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/derr/internal/ir"
	"github.com/roach88/derr/internal/querysql"
)

// ErrNotFound is returned when a dataset does not exist.
var ErrNotFound = errors.New("not found")

// ReadDataset returns the dataset with the given id.
func (s *Store) ReadDataset(ctx context.Context, id string) (ir.Dataset, error) {
	var ds ir.Dataset
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, seq FROM datasets WHERE id = ?
	`, id).Scan(&ds.ID, &ds.Name, &ds.Seq)
	if errors.Is(err, sql.ErrNoRows) {
		return ir.Dataset{}, fmt.Errorf("dataset %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return ir.Dataset{}, fmt.Errorf("read dataset: %w", err)
	}
	return ds, nil
}

// ListDatasets returns every dataset in creation order.
// Returns an empty slice (not nil) when there are none.
func (s *Store) ListDatasets(ctx context.Context) ([]ir.Dataset, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, seq FROM datasets
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query datasets: %w", err)
	}
	defer rows.Close()

	datasets := []ir.Dataset{}
	for rows.Next() {
		var ds ir.Dataset
		if err := rows.Scan(&ds.ID, &ds.Name, &ds.Seq); err != nil {
			return nil, fmt.Errorf("scan dataset: %w", err)
		}
		datasets = append(datasets, ds)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate datasets: %w", err)
	}
	return datasets, nil
}

// ReadMeasurements returns the measurements of a dataset in seq order.
func (s *Store) ReadMeasurements(ctx context.Context, datasetID string) ([]ir.MeasurementRecord, error) {
	if _, err := s.ReadDataset(ctx, datasetID); err != nil {
		return nil, err
	}
	return s.QueryMeasurements(ctx, querysql.Filter{DatasetID: datasetID})
}

// QueryMeasurements returns the measurements matching f.
// Returns an empty slice (not nil) when nothing matches.
func (s *Store) QueryMeasurements(ctx context.Context, f querysql.Filter) ([]ir.MeasurementRecord, error) {
	query, params, err := querysql.Compile(f)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("query measurements: %w", err)
	}
	defer rows.Close()

	recs := []ir.MeasurementRecord{}
	for rows.Next() {
		rec, err := scanMeasurement(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate measurements: %w", err)
	}
	return recs, nil
}

// scanMeasurement reads one row in querysql.MeasurementColumns order.
func scanMeasurement(rows *sql.Rows) (ir.MeasurementRecord, error) {
	var rec ir.MeasurementRecord
	var exps string
	err := rows.Scan(
		&rec.ID,
		&rec.DatasetID,
		&rec.Seq,
		&rec.Name,
		&rec.Value,
		&rec.Error,
		&exps,
		&rec.Symbol,
		&rec.SigFigs,
	)
	if err != nil {
		return ir.MeasurementRecord{}, fmt.Errorf("scan measurement: %w", err)
	}

	rec.Exponents, err = unmarshalExponents(exps)
	if err != nil {
		return ir.MeasurementRecord{}, fmt.Errorf("measurement %s: %w", rec.ID, err)
	}
	return rec, nil
}
