package compiler

import (
	"fmt"

	"cuelang.org/go/cue"

	"github.com/roach88/derr/internal/measure"
	"github.com/roach88/derr/internal/unit"
)

// Symbols resolves unit symbols declared under `unit:`.
type Symbols map[string]unit.Unit

// Resolve returns the unit for text: a declared symbol first, otherwise the
// dimension or SI notation accepted by unit.Parse.
func (s Symbols) Resolve(text string) (unit.Unit, error) {
	if u, ok := s[text]; ok {
		return u, nil
	}
	return unit.Parse(text)
}

// CompileMeasurement parses a measurement definition. The struct label is the
// name unless a name field overrides it:
//
//	measurement: distance: {value: 180, error: 60, unit: "L"}
//	measurement: work: {value: 4.5, error: 0.25, unit: "J", sigfigs: 4}
//
// value is required. error defaults to 0 and a negative error is stored as its
// magnitude. unit defaults to dimensionless.
func CompileMeasurement(v cue.Value, symbols Symbols) (measure.Measurement, error) {
	if err := v.Err(); err != nil {
		return measure.Measurement{}, cueError(err)
	}

	name := lastLabel(v)
	if nv := v.LookupPath(cue.ParsePath("name")); nv.Exists() {
		s, err := nv.String()
		if err != nil {
			return measure.Measurement{}, cueError(err)
		}
		name = s
	}
	field := "measurement." + name

	vv := v.LookupPath(cue.ParsePath("value"))
	if !vv.Exists() {
		return measure.Measurement{}, &CompileError{Field: field + ".value", Message: "value is required", Pos: v.Pos()}
	}
	value, err := number(vv, field+".value")
	if err != nil {
		return measure.Measurement{}, err
	}

	var errVal float64
	if ev := v.LookupPath(cue.ParsePath("error")); ev.Exists() {
		errVal, err = number(ev, field+".error")
		if err != nil {
			return measure.Measurement{}, err
		}
	}

	u := unit.Dimensionless
	if uv := v.LookupPath(cue.ParsePath("unit")); uv.Exists() {
		text, err := uv.String()
		if err != nil {
			return measure.Measurement{}, cueError(err)
		}
		u, err = symbols.Resolve(text)
		if err != nil {
			return measure.Measurement{}, &CompileError{Field: field + ".unit", Message: err.Error(), Pos: uv.Pos()}
		}
	}

	m := measure.New(value, errVal, u, name)

	if sv := v.LookupPath(cue.ParsePath("sigfigs")); sv.Exists() {
		n, err := sv.Int64()
		if err != nil {
			return measure.Measurement{}, cueError(err)
		}
		if err := m.SetSigFigs(int(n)); err != nil {
			return measure.Measurement{}, &CompileError{Field: field + ".sigfigs", Message: err.Error(), Pos: sv.Pos()}
		}
	}

	return m, nil
}

// Library is the compiled content of a definitions value.
type Library struct {
	Symbols      Symbols
	Measurements []measure.Measurement
}

// Lookup returns the measurement with the given name.
func (l *Library) Lookup(name string) (measure.Measurement, bool) {
	for _, m := range l.Measurements {
		if m.Name() == name {
			return m, true
		}
	}
	return measure.Measurement{}, false
}

// CompileLibrary compiles every `unit:` and `measurement:` entry of v in
// declaration order. Units are compiled first so measurements may use their
// symbols. When failFast is false all errors are collected.
func CompileLibrary(v cue.Value, failFast bool) (*Library, []error) {
	lib := &Library{Symbols: Symbols{}}
	var errs []error

	if err := v.Err(); err != nil {
		return lib, []error{cueError(err)}
	}

	each := func(section string, fn func(cue.Value) error) bool {
		sv := v.LookupPath(cue.ParsePath(section))
		if !sv.Exists() {
			return true
		}
		iter, err := sv.Fields()
		if err != nil {
			errs = append(errs, cueError(err))
			return !failFast
		}
		for iter.Next() {
			if err := fn(iter.Value()); err != nil {
				errs = append(errs, err)
				if failFast {
					return false
				}
			}
		}
		return true
	}

	ok := each("unit", func(uv cue.Value) error {
		u, err := CompileUnit(uv)
		if err != nil {
			return err
		}
		lib.Symbols[u.Symbol()] = u
		return nil
	})
	if !ok {
		return lib, errs
	}

	seen := map[string]bool{}
	each("measurement", func(mv cue.Value) error {
		m, err := CompileMeasurement(mv, lib.Symbols)
		if err != nil {
			return err
		}
		if seen[m.Name()] {
			return &CompileError{
				Field:   "measurement." + m.Name(),
				Message: fmt.Sprintf("duplicate measurement name %q", m.Name()),
				Pos:     mv.Pos(),
			}
		}
		seen[m.Name()] = true
		lib.Measurements = append(lib.Measurements, m)
		return nil
	})

	return lib, errs
}
