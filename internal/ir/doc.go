// Package ir provides the canonical record types persisted by derr.
//
// This package contains type definitions and canonical serialization only. All
// other internal packages may import ir; ir imports nothing internal.
//
// Key constraints:
//   - Floats are allowed but must be finite; NaN and Inf are rejected
//   - Strings are NFC normalized before hashing
//   - All JSON tags use snake_case
//   - Logical clocks (seq) only, never wall-clock timestamps
package ir
