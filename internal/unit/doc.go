// Package unit provides the SI dimensional signature carried by measurements.
//
// A Unit is a fixed vector of seven real exponents over the SI base dimensions,
// indexed by the Dimension constants. Units combine pointwise: multiplication adds
// exponents, division subtracts them and Pow scales them.
//
// Key constraints:
//   - Exactly NumDimensions slots, enforced by the array type
//   - Equality is exact on every slot; the display symbol never participates
//   - Combination results never inherit a symbol
//
// This package imports nothing internal. measure builds on it.
package unit
