package unit

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse errors.
var (
	ErrUnknownSymbol = errors.New("unit: unknown symbol")
	ErrBadExponent   = errors.New("unit: bad exponent")
)

// Parse reads the text produced by Dimensions or SIUnits back into a Unit.
//
// Terms are space separated and take the form "sym" or "sym^exp", where sym is a
// dimension letter (M L T K I N J) or an SI base symbol (kg m s K A mol cd).
// LaTeX braces around exponents are accepted. Repeated terms add up.
// "unitless" and the empty string parse as Dimensionless.
//
// "K" is both the temperature letter and the kelvin symbol, so the two
// vocabularies never conflict.
func Parse(text string) (Unit, error) {
	text = strings.TrimSpace(strings.Trim(strings.TrimSpace(text), "$"))
	if text == "" || text == Unitless {
		return Dimensionless, nil
	}

	var u Unit
	for _, term := range strings.Fields(text) {
		name, expText, hasExp := strings.Cut(term, "^")

		d, ok := lookupDimension(name)
		if !ok {
			return Unit{}, fmt.Errorf("%w: %q", ErrUnknownSymbol, name)
		}

		exp := 1.0
		if hasExp {
			expText = strings.TrimSuffix(strings.TrimPrefix(expText, "{"), "}")
			v, err := strconv.ParseFloat(expText, 64)
			if err != nil {
				return Unit{}, fmt.Errorf("%w: %q in term %q", ErrBadExponent, expText, term)
			}
			exp = v
		}
		u.exps[d] += exp
	}
	return u, nil
}

// MustParse is like Parse but panics on error.
// Use only in tests or with literal unit text.
func MustParse(text string) Unit {
	u, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return u
}

func lookupDimension(name string) (Dimension, bool) {
	for i := range NumDimensions {
		if dimensionLetters[i] == name || siSymbols[i] == name {
			return Dimension(i), true
		}
	}
	return 0, false
}
