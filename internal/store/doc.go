// Package store provides SQLite-backed storage for measurement datasets.
//
// A dataset is a named, ordered collection of measurements:
//   - datasets: one row per dataset, ordered by a logical seq
//   - measurements: one row per stored measurement with its unit exponents
//     kept as canonical JSON text
//
// Measurement rows are content-addressed (ir.MeasurementID), so writing the
// same measurement at the same position twice is a no-op.
//
// All reads are ordered deterministically: ORDER BY seq ASC, id COLLATE BINARY ASC.
package store
