// Package stats computes descriptive statistics over dataset columns.
package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/vegasq/tabproc/dataset"
)

// ErrNotNumeric is returned when statistics are requested for a column that
// is not numeric.
var ErrNotNumeric = errors.New("column is not numeric")

// ColumnStats holds descriptive statistics for one numeric column. Count is
// the number of non-missing cells; the value fields describe only those
// cells and are zero when Count is zero.
type ColumnStats struct {
	Column  string  `json:"column"`
	Count   int     `json:"count"`
	Missing int     `json:"missing"`
	Mean    float64 `json:"mean"`
	Median  float64 `json:"median"`
	Std     float64 `json:"std"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Sum     float64 `json:"sum"`
}

// Describe computes statistics over the non-missing cells of a numeric
// column. Std is the sample standard deviation, zero when fewer than two
// cells are present. Columns of any other kind fail with ErrNotNumeric.
func Describe(col *dataset.Series) (ColumnStats, error) {
	if col.Kind() != dataset.Numeric {
		return ColumnStats{}, fmt.Errorf("%w: column %q is %s", ErrNotNumeric, col.Name(), col.Kind())
	}

	cs := ColumnStats{Column: col.Name()}
	values := make([]float64, 0, col.Len())
	for i := 0; i < col.Len(); i++ {
		v, ok := col.FloatAt(i)
		if !ok {
			cs.Missing++
			continue
		}
		values = append(values, v)
	}
	cs.Count = len(values)
	if cs.Count == 0 {
		return cs, nil
	}

	cs.Min = values[0]
	cs.Max = values[0]
	for _, v := range values {
		cs.Sum += v
		if v < cs.Min {
			cs.Min = v
		}
		if v > cs.Max {
			cs.Max = v
		}
	}
	cs.Mean = cs.Sum / float64(cs.Count)

	var m2 float64
	for _, v := range values {
		d := v - cs.Mean
		m2 += d * d
	}
	if cs.Count > 1 {
		cs.Std = math.Sqrt(m2 / float64(cs.Count-1))
	}

	cs.Median = median(values)
	return cs, nil
}

// median returns the middle value, or the average of the two middle values
// for an even count. Sorts its argument.
func median(values []float64) float64 {
	sort.Float64s(values)
	mid := len(values) / 2
	if len(values)%2 == 1 {
		return values[mid]
	}
	return (values[mid-1] + values[mid]) / 2
}
