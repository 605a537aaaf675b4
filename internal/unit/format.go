package unit

import (
	"math"
	"strconv"
	"strings"
)

// Unitless is the placeholder rendered for a dimensionless unit.
const Unitless = "unitless"

// Dimensions renders the unit with dimension letters, e.g. "L T^-2".
func (u Unit) Dimensions() string {
	return u.render(dimensionLetters, "^", "")
}

// SIUnits renders the unit with SI base symbols, e.g. "kg m^2 s^-2".
// The display symbol is ignored.
func (u Unit) SIUnits() string {
	return u.render(siSymbols, "^", "")
}

// SILatex renders SIUnits as inline LaTeX, e.g. "$kg m^{2} s^{-2}$".
func (u Unit) SILatex() string {
	return "$" + u.render(siSymbols, "^{", "}") + "$"
}

// Units renders the display symbol when defined, otherwise SIUnits.
func (u Unit) Units() string {
	if u.symbol != "" {
		return u.symbol
	}
	return u.SIUnits()
}

// Latex renders the display symbol as "$sym$" when defined, otherwise SILatex.
func (u Unit) Latex() string {
	if u.symbol != "" {
		return "$" + u.symbol + "$"
	}
	return u.SILatex()
}

// String implements fmt.Stringer.
func (u Unit) String() string {
	return u.Units()
}

// render joins "name[open exp close]" terms in dimension order, skipping zero
// slots and omitting the exponent when it is exactly 1.
func (u Unit) render(names [NumDimensions]string, open, close string) string {
	if u.IsUnitless() {
		return Unitless
	}

	terms := make([]string, 0, NumDimensions)
	for i, exp := range u.exps {
		switch exp {
		case 0:
			continue
		case 1:
			terms = append(terms, names[i])
		default:
			terms = append(terms, names[i]+open+FormatExponent(exp)+close)
		}
	}
	return strings.Join(terms, " ")
}

// FormatExponent renders an exponent in plain decimal notation with at most
// two significant digits below 100 and no trailing zeros: 2 -> "2",
// -0.5 -> "-0.5", 1/3 -> "0.33", 99.7 -> "100", 1e-5 -> "0.00001".
// Exponents of 100 or more are rounded to integers.
func FormatExponent(exp float64) string {
	if math.Abs(exp) >= 100 {
		exp = math.Round(exp)
	} else {
		exp, _ = strconv.ParseFloat(strconv.FormatFloat(exp, 'g', 2, 64), 64)
	}
	return strconv.FormatFloat(exp, 'f', -1, 64)
}
