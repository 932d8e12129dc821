package dataset

import (
	"errors"
	"reflect"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cols    func(t *testing.T) []*Series
		wantErr bool
	}{
		{
			name: "valid columns",
			cols: func(t *testing.T) []*Series {
				return []*Series{
					mustNumeric(t, "a", []float64{1, 2}, nil),
					mustText(t, "b", []string{"x", "y"}, nil),
				}
			},
		},
		{
			name: "no columns",
			cols: func(t *testing.T) []*Series { return nil },
		},
		{
			name: "duplicate names",
			cols: func(t *testing.T) []*Series {
				return []*Series{
					mustNumeric(t, "a", []float64{1}, nil),
					mustText(t, "a", []string{"x"}, nil),
				}
			},
			wantErr: true,
		},
		{
			name: "length mismatch",
			cols: func(t *testing.T) []*Series {
				return []*Series{
					mustNumeric(t, "a", []float64{1, 2}, nil),
					mustText(t, "b", []string{"x"}, nil),
				}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cols(t)...)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDatasetShape(t *testing.T) {
	ds := sampleDataset(t)

	if got := ds.NumRows(); got != 5 {
		t.Errorf("NumRows() = %d, want 5", got)
	}
	if got := ds.NumCols(); got != 4 {
		t.Errorf("NumCols() = %d, want 4", got)
	}
	wantNames := []string{"id", "value", "category", "nullable"}
	if got := ds.ColumnNames(); !reflect.DeepEqual(got, wantNames) {
		t.Errorf("ColumnNames() = %v, want %v", got, wantNames)
	}

	empty := Empty()
	if empty.NumRows() != 0 || empty.NumCols() != 0 {
		t.Errorf("Empty() shape = (%d, %d), want (0, 0)", empty.NumRows(), empty.NumCols())
	}
}

func TestDatasetColumn(t *testing.T) {
	ds := sampleDataset(t)

	col, err := ds.Column("value")
	if err != nil {
		t.Fatalf("Column(\"value\") error: %v", err)
	}
	if col.Name() != "value" || col.Kind() != Numeric {
		t.Errorf("Column(\"value\") = (%q, %v), want (\"value\", Numeric)", col.Name(), col.Kind())
	}

	_, err = ds.Column("nonexistent")
	if !errors.Is(err, ErrColumnNotFound) {
		t.Errorf("Column(\"nonexistent\") error = %v, want ErrColumnNotFound", err)
	}

	if !ds.HasColumn("category") {
		t.Error("HasColumn(\"category\") = false, want true")
	}
	if ds.HasColumn("nonexistent") {
		t.Error("HasColumn(\"nonexistent\") = true, want false")
	}
}

func TestDatasetRow(t *testing.T) {
	ds := sampleDataset(t)

	got := ds.Row(1)
	want := map[string]interface{}{
		"id":       2.0,
		"value":    20.0,
		"category": "B",
		"nullable": nil,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Row(1) = %v, want %v", got, want)
	}
}

func TestDatasetSelect(t *testing.T) {
	ds := sampleDataset(t)

	sub := ds.Select([]int{4, 0})
	if sub.NumRows() != 2 {
		t.Fatalf("Select NumRows() = %d, want 2", sub.NumRows())
	}
	id, err := sub.Column("id")
	if err != nil {
		t.Fatalf("Column(\"id\") error: %v", err)
	}
	if v, _ := id.FloatAt(0); v != 5 {
		t.Errorf("selected row 0 id = %v, want 5", v)
	}
	if v, _ := id.FloatAt(1); v != 1 {
		t.Errorf("selected row 1 id = %v, want 1", v)
	}

	// The original is untouched.
	if ds.NumRows() != 5 {
		t.Errorf("source NumRows() = %d after Select, want 5", ds.NumRows())
	}
}

func TestDatasetEqual(t *testing.T) {
	a := sampleDataset(t)
	b := sampleDataset(t)

	if !a.Equal(b) {
		t.Error("identical datasets compare unequal")
	}

	c := mustDataset(t,
		mustNumeric(t, "id", []float64{1, 2, 3, 4, 6}, nil),
		mustNumeric(t, "value", []float64{10, 20, 30, 40, 50}, nil),
		mustText(t, "category", []string{"A", "B", "A", "C", "B"}, nil),
		mustNumeric(t, "nullable", []float64{1, 0, 3, 0, 5}, []bool{true, false, true, false, true}),
	)
	if a.Equal(c) {
		t.Error("datasets with different cells compare equal")
	}
}
