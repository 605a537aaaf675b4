package measure

import (
	"errors"
	"fmt"
	"strings"
)

// Overlaps reports whether units match and the intervals [Min, Max] intersect.
// Touching endpoints count as overlapping.
func (m Measurement) Overlaps(x Operand) bool {
	lo, hi := x.bounds()
	return m.sameUnit(x) && m.Max() >= lo && hi >= m.Min()
}

// Disjoint is the negation of Overlaps: units differ or the intervals are separate.
func (m Measurement) Disjoint(x Operand) bool {
	lo, hi := x.bounds()
	return !m.sameUnit(x) || m.Max() < lo || hi < m.Min()
}

// Greater reports whether units match and m lies strictly above x.
func (m Measurement) Greater(x Operand) bool {
	_, hi := x.bounds()
	return m.sameUnit(x) && m.Min() > hi
}

// Less reports whether units match and m lies strictly below x.
func (m Measurement) Less(x Operand) bool {
	lo, _ := x.bounds()
	return m.sameUnit(x) && m.Max() < lo
}

// GreaterOrEqual reports whether units match and m lies above x or touches it.
func (m Measurement) GreaterOrEqual(x Operand) bool {
	_, hi := x.bounds()
	return m.sameUnit(x) && m.Min() >= hi
}

// LessOrEqual reports whether units match and m lies below x or touches it.
func (m Measurement) LessOrEqual(x Operand) bool {
	lo, _ := x.bounds()
	return m.sameUnit(x) && m.Max() <= lo
}

// ValueEquals compares the central value exactly, ignoring error and unit.
func (m Measurement) ValueEquals(v float64) bool {
	return m.value == v
}

// ValueDiffers is the negation of ValueEquals.
func (m Measurement) ValueDiffers(v float64) bool {
	return m.value != v
}

func (m Measurement) sameUnit(x Operand) bool {
	return m.unit.Equal(x.unitFor(m.unit, true))
}

func (x Operand) bounds() (lo, hi float64) {
	return x.value - x.err, x.value + x.err
}

// Predicate names a comparison, for callers that select one at run time.
type Predicate int

// Comparison predicates.
const (
	PredOverlaps Predicate = iota
	PredDisjoint
	PredGreater
	PredLess
	PredGreaterOrEqual
	PredLessOrEqual
	PredValueEquals
	PredValueDiffers
)

// ErrUnknownPredicate is returned by ParsePredicate.
var ErrUnknownPredicate = errors.New("unknown predicate")

var predicateNames = [...]string{
	PredOverlaps:       "overlaps",
	PredDisjoint:       "disjoint",
	PredGreater:        "greater",
	PredLess:           "less",
	PredGreaterOrEqual: "greater_or_equal",
	PredLessOrEqual:    "less_or_equal",
	PredValueEquals:    "value_equals",
	PredValueDiffers:   "value_differs",
}

// String returns the predicate name, e.g. "greater_or_equal".
func (p Predicate) String() string {
	if p < 0 || int(p) >= len(predicateNames) {
		return fmt.Sprintf("Predicate(%d)", int(p))
	}
	return predicateNames[p]
}

// ParsePredicate accepts a predicate name as returned by Predicate.String.
func ParsePredicate(s string) (Predicate, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range predicateNames {
		if s == n {
			return Predicate(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPredicate, s)
}

// Compare evaluates p against x. The value predicates use x's central value.
func (m Measurement) Compare(p Predicate, x Operand) bool {
	switch p {
	case PredOverlaps:
		return m.Overlaps(x)
	case PredDisjoint:
		return m.Disjoint(x)
	case PredGreater:
		return m.Greater(x)
	case PredLess:
		return m.Less(x)
	case PredGreaterOrEqual:
		return m.GreaterOrEqual(x)
	case PredLessOrEqual:
		return m.LessOrEqual(x)
	case PredValueEquals:
		return m.ValueEquals(x.value)
	case PredValueDiffers:
		return m.ValueDiffers(x.value)
	default:
		return false
	}
}
