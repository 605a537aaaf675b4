package querysql

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/roach88/derr/internal/ir"
)

// MeasurementColumns is the column list returned by every compiled query, in
// scan order.
const MeasurementColumns = "id, dataset_id, seq, name, value, error, exponents, symbol, sig_figs"

// ErrInvalidFilter is returned for filters that cannot be compiled.
var ErrInvalidFilter = errors.New("invalid filter")

// Interval is a closed range [Lo, Hi].
type Interval struct {
	Lo, Hi float64
}

// Filter selects stored measurements. Zero fields do not constrain.
type Filter struct {
	DatasetID string
	Name      string
	// Exponents matches the unit exactly, in M L T K I N J order.
	Exponents []float64
	// Overlaps keeps rows whose [value-error, value+error] intersects it.
	Overlaps *Interval
}

// predicate is a sealed WHERE fragment.
type predicate interface {
	predicateNode()
}

type equals struct {
	Column string
	Value  any
}

func (equals) predicateNode() {}

type overlaps struct {
	Interval Interval
}

func (overlaps) predicateNode() {}

type and struct {
	Predicates []predicate
}

func (and) predicateNode() {}

// Compile converts f to parameterized SQL over the measurements table.
// Returns (sql, params, error).
//
// Every query carries a stable ORDER BY. Values are never interpolated.
func Compile(f Filter) (string, []any, error) {
	pred, err := f.predicate()
	if err != nil {
		return "", nil, err
	}

	where, params, err := compilePredicate(pred)
	if err != nil {
		return "", nil, err
	}

	sql := fmt.Sprintf("SELECT %s FROM measurements WHERE %s ORDER BY %s",
		MeasurementColumns, where, stableOrderKey())
	return sql, params, nil
}

// stableOrderKey orders by dataset, then position, with a binary id tiebreak.
func stableOrderKey() string {
	return "dataset_id COLLATE BINARY ASC, seq ASC, id COLLATE BINARY ASC"
}

func (f Filter) predicate() (predicate, error) {
	var preds []predicate
	if f.DatasetID != "" {
		preds = append(preds, equals{Column: "dataset_id", Value: f.DatasetID})
	}
	if f.Name != "" {
		preds = append(preds, equals{Column: "name", Value: f.Name})
	}
	if f.Exponents != nil {
		text, err := EncodeExponents(f.Exponents)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidFilter, err)
		}
		preds = append(preds, equals{Column: "exponents", Value: text})
	}
	if f.Overlaps != nil {
		iv := *f.Overlaps
		if math.IsNaN(iv.Lo) || math.IsNaN(iv.Hi) {
			return nil, fmt.Errorf("%w: interval bound is NaN", ErrInvalidFilter)
		}
		if iv.Lo > iv.Hi {
			return nil, fmt.Errorf("%w: interval [%g, %g] is empty", ErrInvalidFilter, iv.Lo, iv.Hi)
		}
		preds = append(preds, overlaps{Interval: iv})
	}
	return and{Predicates: preds}, nil
}

func compilePredicate(p predicate) (string, []any, error) {
	switch pred := p.(type) {
	case equals:
		return pred.Column + " = ?", []any{pred.Value}, nil
	case overlaps:
		return "value + error >= ? AND value - error <= ?",
			[]any{pred.Interval.Lo, pred.Interval.Hi}, nil
	case and:
		if len(pred.Predicates) == 0 {
			return "1 = 1", nil, nil
		}
		var parts []string
		var params []any
		for _, sub := range pred.Predicates {
			sql, subParams, err := compilePredicate(sub)
			if err != nil {
				return "", nil, err
			}
			parts = append(parts, sql)
			params = append(params, subParams...)
		}
		return strings.Join(parts, " AND "), params, nil
	default:
		return "", nil, fmt.Errorf("unsupported predicate type: %T", p)
	}
}

// EncodeExponents renders an exponent vector as canonical JSON, the form held
// in the exponents column. Equal units encode to equal text.
func EncodeExponents(exps []float64) (string, error) {
	data, err := ir.MarshalCanonical(ir.FloatArray(exps))
	if err != nil {
		return "", fmt.Errorf("encode exponents: %w", err)
	}
	return string(data), nil
}
