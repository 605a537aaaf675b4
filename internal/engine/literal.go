package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/roach88/derr/internal/measure"
)

// plusMinus lists the accepted separators between value and error.
var plusMinus = []string{"+/-", "±"}

// looksLiteral reports whether ref should be parsed as a literal rather than
// looked up as a name. Names never start with a digit, sign, dot or paren.
func looksLiteral(ref string) bool {
	if ref == "" {
		return false
	}
	switch c := ref[0]; {
	case c >= '0' && c <= '9', c == '-', c == '+', c == '.', c == '(':
		return true
	}
	return false
}

// parseLiteral parses "3", "3+/-1", "3 ± 1" or "(3, 1)".
// A bare number is a Scalar; the other forms are Pairs.
func parseLiteral(ref string) (measure.Operand, error) {
	s := strings.TrimSpace(ref)

	if strings.HasPrefix(s, "(") {
		if !strings.HasSuffix(s, ")") {
			return measure.Operand{}, fmt.Errorf("unterminated pair %q", ref)
		}
		parts := strings.Split(s[1:len(s)-1], ",")
		if len(parts) != 2 {
			return measure.Operand{}, fmt.Errorf("pair %q needs exactly two numbers", ref)
		}
		return parsePair(parts[0], parts[1])
	}

	for _, sep := range plusMinus {
		if v, e, ok := strings.Cut(s, sep); ok {
			return parsePair(v, e)
		}
	}

	v, err := parseNumber(s)
	if err != nil {
		return measure.Operand{}, err
	}
	return measure.Scalar(v), nil
}

func parsePair(value, err string) (measure.Operand, error) {
	v, perr := parseNumber(value)
	if perr != nil {
		return measure.Operand{}, perr
	}
	e, perr := parseNumber(err)
	if perr != nil {
		return measure.Operand{}, perr
	}
	return measure.Pair(v, e), nil
}

func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("number %q is not finite", s)
	}
	return f, nil
}
