package dataset

import (
	"testing"
	"time"
)

// mustNumeric builds a numeric Series or fails the test.
func mustNumeric(t *testing.T, name string, values []float64, valid []bool) *Series {
	t.Helper()
	s, err := NewNumeric(name, values, valid)
	if err != nil {
		t.Fatalf("NewNumeric(%q) error: %v", name, err)
	}
	return s
}

// mustText builds a text Series or fails the test.
func mustText(t *testing.T, name string, values []string, valid []bool) *Series {
	t.Helper()
	s, err := NewText(name, values, valid)
	if err != nil {
		t.Fatalf("NewText(%q) error: %v", name, err)
	}
	return s
}

// mustDatetime builds a datetime Series or fails the test.
func mustDatetime(t *testing.T, name string, values []time.Time, valid []bool) *Series {
	t.Helper()
	s, err := NewDatetime(name, values, valid)
	if err != nil {
		t.Fatalf("NewDatetime(%q) error: %v", name, err)
	}
	return s
}

// mustBool builds a boolean Series or fails the test.
func mustBool(t *testing.T, name string, values []bool, valid []bool) *Series {
	t.Helper()
	s, err := NewBool(name, values, valid)
	if err != nil {
		t.Fatalf("NewBool(%q) error: %v", name, err)
	}
	return s
}

// mustDataset builds a Dataset or fails the test.
func mustDataset(t *testing.T, cols ...*Series) *Dataset {
	t.Helper()
	ds, err := New(cols...)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return ds
}

// sampleDataset builds the five-row fixture used across the cleaning tests:
// three fully populated rows and two rows with a missing nullable cell.
func sampleDataset(t *testing.T) *Dataset {
	t.Helper()
	return mustDataset(t,
		mustNumeric(t, "id", []float64{1, 2, 3, 4, 5}, nil),
		mustNumeric(t, "value", []float64{10, 20, 30, 40, 50}, nil),
		mustText(t, "category", []string{"A", "B", "A", "C", "B"}, nil),
		mustNumeric(t, "nullable", []float64{1, 0, 3, 0, 5}, []bool{true, false, true, false, true}),
	)
}
