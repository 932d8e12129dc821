package filter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/vegasq/tabproc/dataset"
	"github.com/vegasq/tabproc/reader"
)

// Apply returns a new dataset holding the rows of ds that satisfy every
// condition, in their original order. The source dataset is never modified.
//
// Conditions with an operator outside the Op constants fail with
// ErrUnknownOperator before any column is examined. Conditions naming an
// absent column fail with dataset.ErrColumnNotFound. An empty condition list
// keeps every row.
func Apply(ds *dataset.Dataset, conds []Condition) (*dataset.Dataset, error) {
	keep := make([]bool, ds.NumRows())
	for i := range keep {
		keep[i] = true
	}

	for _, cond := range conds {
		if !knownOperator(cond.Op) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownOperator, string(cond.Op))
		}
		col, err := ds.Column(cond.Column)
		if err != nil {
			return nil, err
		}
		if err := applyCondition(col, cond, keep); err != nil {
			return nil, err
		}
	}

	rows := make([]int, 0, len(keep))
	for i, ok := range keep {
		if ok {
			rows = append(rows, i)
		}
	}
	return ds.Select(rows), nil
}

// applyCondition clears keep[i] for every row the condition rejects.
// Missing cells never satisfy a condition.
func applyCondition(col *dataset.Series, cond Condition, keep []bool) error {
	switch col.Kind() {
	case dataset.Numeric:
		want, ok := toFloat64(cond.Value)
		if !ok {
			return valueTypeError(cond, col)
		}
		if cond.Op == OpContains {
			return valueTypeError(cond, col)
		}
		for i := range keep {
			if !keep[i] {
				continue
			}
			v, present := col.FloatAt(i)
			keep[i] = present && compareNumbers(v, cond.Op, want)
		}
		return nil

	case dataset.Text:
		want, ok := cond.Value.(string)
		if !ok {
			return valueTypeError(cond, col)
		}
		for i := range keep {
			if !keep[i] {
				continue
			}
			v, present := col.StringAt(i)
			keep[i] = present && compareStrings(v, cond.Op, want)
		}
		return nil

	case dataset.Datetime:
		want, ok := toTime(cond.Value)
		if !ok {
			return valueTypeError(cond, col)
		}
		if cond.Op == OpContains {
			return valueTypeError(cond, col)
		}
		for i := range keep {
			if !keep[i] {
				continue
			}
			v, present := col.TimeAt(i)
			keep[i] = present && compareTimes(v, cond.Op, want)
		}
		return nil

	case dataset.Bool:
		want, ok := toBool(cond.Value)
		if !ok {
			return valueTypeError(cond, col)
		}
		if cond.Op != OpEquals && cond.Op != OpNotEquals {
			return fmt.Errorf("%w: operator %s is not defined for boolean column %q", ErrValueType, cond.Op, col.Name())
		}
		for i := range keep {
			if !keep[i] {
				continue
			}
			v, present := col.BoolAt(i)
			keep[i] = present && ((cond.Op == OpEquals) == (v == want))
		}
		return nil

	default:
		return fmt.Errorf("%w: column %q has unsupported kind", ErrValueType, col.Name())
	}
}

func valueTypeError(cond Condition, col *dataset.Series) error {
	return fmt.Errorf("%w: cannot apply %s %T(%v) to %s column %q",
		ErrValueType, cond.Op, cond.Value, cond.Value, col.Kind(), col.Name())
}

// compareNumbers compares two numbers. Equality uses an epsilon scaled by
// the larger operand so it stays meaningful for both small and large values.
func compareNumbers(left float64, op Operator, right float64) bool {
	const epsilon = 1e-9
	switch op {
	case OpEquals:
		diff := math.Abs(left - right)
		threshold := epsilon * max(1.0, max(math.Abs(left), math.Abs(right)))
		return diff < threshold
	case OpNotEquals:
		diff := math.Abs(left - right)
		threshold := epsilon * max(1.0, max(math.Abs(left), math.Abs(right)))
		return diff >= threshold
	case OpGreaterThan:
		return left > right
	case OpGreaterOrEqual:
		return left >= right
	case OpLessThan:
		return left < right
	case OpLessOrEqual:
		return left <= right
	default:
		return false
	}
}

// compareStrings compares two strings (case-sensitive).
func compareStrings(left string, op Operator, right string) bool {
	switch op {
	case OpEquals:
		return left == right
	case OpNotEquals:
		return left != right
	case OpGreaterThan:
		return left > right
	case OpGreaterOrEqual:
		return left >= right
	case OpLessThan:
		return left < right
	case OpLessOrEqual:
		return left <= right
	case OpContains:
		return strings.Contains(left, right)
	default:
		return false
	}
}

// compareTimes compares two instants chronologically.
func compareTimes(left time.Time, op Operator, right time.Time) bool {
	switch op {
	case OpEquals:
		return left.Equal(right)
	case OpNotEquals:
		return !left.Equal(right)
	case OpGreaterThan:
		return left.After(right)
	case OpGreaterOrEqual:
		return left.After(right) || left.Equal(right)
	case OpLessThan:
		return left.Before(right)
	case OpLessOrEqual:
		return left.Before(right) || left.Equal(right)
	default:
		return false
	}
}

// toFloat64 converts a condition value to float64 if possible.
func toFloat64(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int8:
		return float64(val), true
	case int16:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint8:
		return float64(val), true
	case uint16:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	default:
		return 0, false
	}
}

// toBool converts a condition value to bool if possible. Strings are
// accepted so parsed conditions can target boolean columns.
func toBool(v interface{}) (bool, bool) {
	switch val := v.(type) {
	case bool:
		return val, true
	case string:
		switch strings.ToLower(val) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

// toTime converts a condition value to an instant. Strings are parsed with
// the same layouts the reader accepts.
func toTime(v interface{}) (time.Time, bool) {
	switch val := v.(type) {
	case time.Time:
		return val, true
	case string:
		for _, layout := range reader.DefaultDateFormats() {
			if t, err := time.Parse(layout, val); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}
