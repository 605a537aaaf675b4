package compiler

import (
	"fmt"
	"math"

	"cuelang.org/go/cue"

	"github.com/roach88/derr/internal/unit"
)

// dimensionKeys maps the field names accepted in a unit definition.
var dimensionKeys = map[string]unit.Dimension{
	"M": unit.Mass,
	"L": unit.Length,
	"T": unit.Time,
	"K": unit.Temperature,
	"I": unit.Current,
	"N": unit.Amount,
	"J": unit.Luminous,
}

// CompileUnit parses a unit definition into a symbol-bearing Unit.
// The symbol is the struct label:
//
//	unit: J: {M: 1, L: 2, T: -2}
//
// Omitted dimensions are 0. An empty struct defines a dimensionless symbol.
func CompileUnit(v cue.Value) (unit.Unit, error) {
	if err := v.Err(); err != nil {
		return unit.Unit{}, cueError(err)
	}

	symbol := lastLabel(v)
	if symbol == "" {
		return unit.Unit{}, &CompileError{Field: "unit", Message: "unit symbol is required", Pos: v.Pos()}
	}

	iter, err := v.Fields()
	if err != nil {
		return unit.Unit{}, cueError(err)
	}

	var u unit.Unit
	for iter.Next() {
		key := iter.Label()
		d, ok := dimensionKeys[key]
		if !ok {
			return unit.Unit{}, &CompileError{
				Field:   "unit." + symbol,
				Message: fmt.Sprintf("unknown dimension %q (want one of M L T K I N J)", key),
				Pos:     iter.Value().Pos(),
			}
		}
		exp, err := number(iter.Value(), "unit."+symbol+"."+key)
		if err != nil {
			return unit.Unit{}, err
		}
		u.SetExp(d, exp)
	}

	return u.WithSymbol(symbol), nil
}

// number reads a finite int or float field.
func number(v cue.Value, field string) (float64, error) {
	var f float64
	switch v.IncompleteKind() {
	case cue.IntKind:
		n, err := v.Int64()
		if err != nil {
			return 0, cueError(err)
		}
		f = float64(n)
	case cue.FloatKind, cue.NumberKind:
		x, err := v.Float64()
		if err != nil {
			return 0, cueError(err)
		}
		f = x
	default:
		return 0, &CompileError{Field: field, Message: "must be a number", Pos: v.Pos()}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &CompileError{Field: field, Message: "must be finite", Pos: v.Pos()}
	}
	return f, nil
}

func lastLabel(v cue.Value) string {
	sels := v.Path().Selectors()
	if len(sels) == 0 {
		return ""
	}
	sel := sels[len(sels)-1]
	if sel.LabelType() == cue.StringLabel {
		return sel.Unquoted()
	}
	return sel.String()
}
