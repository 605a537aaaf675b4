// Package engine evaluates named calculations over measurements.
//
// An Engine holds a table of named Measurements. Steps combine a left-hand
// measurement with a right-hand operand and may store the result under a new
// name, so later steps can build on earlier ones.
//
// Operands are either defined names or literals:
//
//	3         bare number
//	3+/-1     value and absolute error
//	3 ± 1     same, with the plus-minus sign
//	(3, 1)    same, as a pair
//
// Every Apply and Compare call is stamped with a sequence number from the
// engine's logical Clock. Outcomes are ordered by seq, never by wall-clock time,
// so a scenario replayed with a fresh clock produces an identical trace.
//
// An Engine is not safe for concurrent use. Drive it from a single goroutine.
package engine
