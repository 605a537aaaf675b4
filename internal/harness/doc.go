// Package harness runs calculation scenarios against the evaluation engine.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: velocity
//	description: "Average speed over a measured distance"
//	units:
//	  J: "kg m^2 s^-2"
//	quantities:
//	  - name: d
//	    value: 180
//	    error: 60
//	    unit: m
//	  - name: t
//	    value: 230
//	    error: 20
//	    unit: s
//	steps:
//	  - op: div
//	    left: d
//	    right: t
//	    as: v
//	    expect:
//	      value: 0.7826
//	      error: 0.2696
//	      tolerance: 0.0001
//	      dimensions: "L T^-1"
//	  - op: add
//	    left: d
//	    right: t
//	    expect:
//	      fails: true
//	      code: OPERATION_FAILED
//	assertions:
//	  - type: overlaps
//	    left: v
//	    right: "0.8 +/- 0.1"
//	    want: true
//
// units declares display symbols; quantity units may name one of them or use
// any notation accepted by unit.Parse. Step operands are quantity names,
// earlier step results, or literals such as "3", "3 +/- 1" and "(3, 1)".
//
// # Assertion Types
//
// Assertion types are the comparison predicates of package measure:
// overlaps, disjoint, greater, less, greater_or_equal, less_or_equal,
// value_equals and value_differs.
//
// # Deterministic Traces
//
// Each run uses a fresh engine and logical clock, so the trace of a scenario
// is identical across runs. Traces are serialized as canonical JSON and
// compared against golden files with RunWithGolden or AssertGolden.
//
// The trace records Show text rather than raw floats, so golden files do not
// depend on the last bits of a computed error.
package harness
