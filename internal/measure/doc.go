// Package measure provides Measurement, a value with an absolute uncertainty and an
// SI unit, and the error-propagation rules for combining measurements.
//
// Sums and differences add absolute errors in quadrature and require equal units.
// Products, quotients and powers add relative errors in quadrature and combine
// units. Comparisons treat a measurement as the closed interval [Min, Max].
//
// The right-hand side of every operation is an Operand: another Measurement, a
// (value, error) pair or a bare number. Pairs and numbers take the receiver's unit
// for sums, differences and comparisons, and are dimensionless otherwise.
//
// Errors are assumed independent. There is no correlation tracking.
package measure
