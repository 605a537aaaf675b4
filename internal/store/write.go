package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/derr/internal/ir"
	"github.com/roach88/derr/internal/measure"
)

// CreateDataset inserts a dataset with the next creation seq and returns it.
func (s *Store) CreateDataset(ctx context.Context, id, name string) (ir.Dataset, error) {
	return createDataset(ctx, s.db, id, name)
}

func createDataset(ctx context.Context, db dbtx, id, name string) (ir.Dataset, error) {
	var seq int64
	err := db.QueryRowContext(ctx, `
		INSERT INTO datasets (id, name, seq)
		SELECT ?, ?, COALESCE(MAX(seq), 0) + 1 FROM datasets
		RETURNING seq
	`, id, name).Scan(&seq)
	if err != nil {
		return ir.Dataset{}, fmt.Errorf("create dataset: %w", err)
	}
	return ir.Dataset{ID: id, Name: name, Seq: seq}, nil
}

// WriteMeasurement inserts a measurement record.
// Uses ON CONFLICT(id) DO NOTHING: rewriting an identical record is a no-op.
// Other constraint violations (unknown dataset, negative error) still return errors.
func (s *Store) WriteMeasurement(ctx context.Context, rec ir.MeasurementRecord) error {
	return writeMeasurement(ctx, s.db, rec)
}

// AppendDataset creates a dataset and stores ms at seq 1..len(ms) in a single
// transaction. The records are returned in input order.
func (s *Store) AppendDataset(ctx context.Context, id, name string, ms []measure.Measurement) (ir.Dataset, []ir.MeasurementRecord, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ir.Dataset{}, nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	ds, err := createDataset(ctx, tx, id, name)
	if err != nil {
		return ir.Dataset{}, nil, err
	}

	recs := make([]ir.MeasurementRecord, 0, len(ms))
	for i, m := range ms {
		rec, err := RecordFrom(ds.ID, int64(i+1), m)
		if err != nil {
			return ir.Dataset{}, nil, err
		}
		if err := writeMeasurement(ctx, tx, rec); err != nil {
			return ir.Dataset{}, nil, err
		}
		recs = append(recs, rec)
	}

	if err := tx.Commit(); err != nil {
		return ir.Dataset{}, nil, fmt.Errorf("commit: %w", err)
	}
	return ds, recs, nil
}

// dbtx is satisfied by both *sql.DB and *sql.Tx.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func writeMeasurement(ctx context.Context, db dbtx, rec ir.MeasurementRecord) error {
	exps, err := marshalExponents(rec.Exponents)
	if err != nil {
		return fmt.Errorf("write measurement: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO measurements
		(id, dataset_id, seq, name, value, error, exponents, symbol, sig_figs)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		rec.ID,
		rec.DatasetID,
		rec.Seq,
		rec.Name,
		rec.Value,
		rec.Error,
		exps,
		rec.Symbol,
		rec.SigFigs,
	)
	if err != nil {
		return fmt.Errorf("write measurement: %w", err)
	}
	return nil
}
