package output

import (
	"testing"
	"time"

	"github.com/vegasq/tabproc/dataset"
)

func numericColumn(t *testing.T, name string, values []float64, valid []bool) *dataset.Series {
	t.Helper()
	col, err := dataset.NewNumeric(name, values, valid)
	if err != nil {
		t.Fatalf("NewNumeric(%q) error: %v", name, err)
	}
	return col
}

func textColumn(t *testing.T, name string, values []string, valid []bool) *dataset.Series {
	t.Helper()
	col, err := dataset.NewText(name, values, valid)
	if err != nil {
		t.Fatalf("NewText(%q) error: %v", name, err)
	}
	return col
}

func boolColumn(t *testing.T, name string, values []bool, valid []bool) *dataset.Series {
	t.Helper()
	col, err := dataset.NewBool(name, values, valid)
	if err != nil {
		t.Fatalf("NewBool(%q) error: %v", name, err)
	}
	return col
}

func timeColumn(t *testing.T, name string, values []time.Time, valid []bool) *dataset.Series {
	t.Helper()
	col, err := dataset.NewDatetime(name, values, valid)
	if err != nil {
		t.Fatalf("NewDatetime(%q) error: %v", name, err)
	}
	return col
}

func buildDataset(t *testing.T, cols ...*dataset.Series) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New(cols...)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return ds
}

// peopleDataset is the shared formatter fixture: three rows covering every
// column kind plus a missing cell.
func peopleDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	return buildDataset(t,
		numericColumn(t, "id", []float64{1, 2, 3}, nil),
		textColumn(t, "name", []string{"alice", "bob", "carol"}, nil),
		numericColumn(t, "score", []float64{95.5, 0, 87.25}, []bool{true, false, true}),
		boolColumn(t, "active", []bool{true, false, true}, nil),
		timeColumn(t, "joined", []time.Time{
			time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 20, 18, 45, 30, 0, time.UTC),
		}, nil),
	)
}
