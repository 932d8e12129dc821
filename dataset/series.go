package dataset

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// Kind identifies the element type of a Series.
type Kind int

const (
	Numeric Kind = iota
	Text
	Datetime
	Bool
)

// String returns the coarse type tag used in summaries and CLI output.
func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Text:
		return "text"
	case Datetime:
		return "datetime"
	case Bool:
		return "boolean"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the kind as its string tag.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Series is a single named column. Storage is a tagged union selected by
// Kind; only one of the value slices is populated. Missing cells are tracked
// in a parallel validity slice rather than with sentinel values.
type Series struct {
	name  string
	kind  Kind
	nums  []float64
	texts []string
	times []time.Time
	bools []bool
	valid []bool
}

// NewNumeric creates a numeric Series. valid marks which cells are present;
// a nil valid means every cell is present. NaN values are always recorded as
// missing cells so that stored numbers compare reliably.
func NewNumeric(name string, values []float64, valid []bool) (*Series, error) {
	v, err := normalizeValid(name, len(values), valid)
	if err != nil {
		return nil, err
	}
	nums := make([]float64, len(values))
	copy(nums, values)
	for i, x := range nums {
		if math.IsNaN(x) {
			nums[i] = 0
			v[i] = false
		}
	}
	return &Series{name: name, kind: Numeric, nums: nums, valid: v}, nil
}

// NewText creates a text Series.
func NewText(name string, values []string, valid []bool) (*Series, error) {
	v, err := normalizeValid(name, len(values), valid)
	if err != nil {
		return nil, err
	}
	texts := make([]string, len(values))
	copy(texts, values)
	return &Series{name: name, kind: Text, texts: texts, valid: v}, nil
}

// NewDatetime creates a datetime Series.
func NewDatetime(name string, values []time.Time, valid []bool) (*Series, error) {
	v, err := normalizeValid(name, len(values), valid)
	if err != nil {
		return nil, err
	}
	times := make([]time.Time, len(values))
	copy(times, values)
	return &Series{name: name, kind: Datetime, times: times, valid: v}, nil
}

// NewBool creates a boolean Series.
func NewBool(name string, values []bool, valid []bool) (*Series, error) {
	v, err := normalizeValid(name, len(values), valid)
	if err != nil {
		return nil, err
	}
	bools := make([]bool, len(values))
	copy(bools, values)
	return &Series{name: name, kind: Bool, bools: bools, valid: v}, nil
}

// normalizeValid copies valid or builds an all-present slice of length n.
func normalizeValid(name string, n int, valid []bool) ([]bool, error) {
	if valid != nil && len(valid) != n {
		return nil, fmt.Errorf("column %q: validity length %d does not match value length %d", name, len(valid), n)
	}
	v := make([]bool, n)
	if valid == nil {
		for i := range v {
			v[i] = true
		}
	} else {
		copy(v, valid)
	}
	return v, nil
}

// Name returns the column name.
func (s *Series) Name() string {
	return s.name
}

// Kind returns the element type tag.
func (s *Series) Kind() Kind {
	return s.kind
}

// Len returns the number of cells, including missing ones.
func (s *Series) Len() int {
	return len(s.valid)
}

// IsMissing reports whether the cell at index i is missing.
func (s *Series) IsMissing(i int) bool {
	return !s.valid[i]
}

// MissingCount returns the number of missing cells.
func (s *Series) MissingCount() int {
	count := 0
	for _, ok := range s.valid {
		if !ok {
			count++
		}
	}
	return count
}

// Value returns the cell at index i as an untyped value, or nil when the
// cell is missing.
func (s *Series) Value(i int) interface{} {
	if !s.valid[i] {
		return nil
	}
	switch s.kind {
	case Numeric:
		return s.nums[i]
	case Text:
		return s.texts[i]
	case Datetime:
		return s.times[i]
	case Bool:
		return s.bools[i]
	default:
		return nil
	}
}

// FloatAt returns the numeric cell at index i. ok is false when the Series
// is not numeric or the cell is missing.
func (s *Series) FloatAt(i int) (float64, bool) {
	if s.kind != Numeric || !s.valid[i] {
		return 0, false
	}
	return s.nums[i], true
}

// StringAt returns the text cell at index i. ok is false when the Series is
// not text or the cell is missing.
func (s *Series) StringAt(i int) (string, bool) {
	if s.kind != Text || !s.valid[i] {
		return "", false
	}
	return s.texts[i], true
}

// TimeAt returns the datetime cell at index i. ok is false when the Series
// is not datetime or the cell is missing.
func (s *Series) TimeAt(i int) (time.Time, bool) {
	if s.kind != Datetime || !s.valid[i] {
		return time.Time{}, false
	}
	return s.times[i], true
}

// BoolAt returns the boolean cell at index i. ok is false when the Series is
// not boolean or the cell is missing.
func (s *Series) BoolAt(i int) (bool, bool) {
	if s.kind != Bool || !s.valid[i] {
		return false, false
	}
	return s.bools[i], true
}

// take builds a new Series from the cells at the given row indices.
func (s *Series) take(rows []int) *Series {
	out := &Series{name: s.name, kind: s.kind, valid: make([]bool, len(rows))}
	switch s.kind {
	case Numeric:
		out.nums = make([]float64, len(rows))
	case Text:
		out.texts = make([]string, len(rows))
	case Datetime:
		out.times = make([]time.Time, len(rows))
	case Bool:
		out.bools = make([]bool, len(rows))
	}
	for j, i := range rows {
		out.valid[j] = s.valid[i]
		switch s.kind {
		case Numeric:
			out.nums[j] = s.nums[i]
		case Text:
			out.texts[j] = s.texts[i]
		case Datetime:
			out.times[j] = s.times[i]
		case Bool:
			out.bools[j] = s.bools[i]
		}
	}
	return out
}

// equal reports whether two Series have the same name, kind, length and
// cell-for-cell contents.
func (s *Series) equal(other *Series) bool {
	if s.name != other.name || s.kind != other.kind || s.Len() != other.Len() {
		return false
	}
	for i := range s.valid {
		if s.valid[i] != other.valid[i] {
			return false
		}
		if !s.valid[i] {
			continue
		}
		switch s.kind {
		case Numeric:
			if s.nums[i] != other.nums[i] {
				return false
			}
		case Text:
			if s.texts[i] != other.texts[i] {
				return false
			}
		case Datetime:
			if !s.times[i].Equal(other.times[i]) {
				return false
			}
		case Bool:
			if s.bools[i] != other.bools[i] {
				return false
			}
		}
	}
	return true
}
