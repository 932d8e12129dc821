package dataset

import (
	"errors"
	"fmt"
)

// ErrColumnNotFound is returned when a requested column does not exist.
var ErrColumnNotFound = errors.New("column not found")

// Dataset is an ordered collection of equally sized named columns.
type Dataset struct {
	cols  []*Series
	index map[string]int
}

// New creates a Dataset from the given columns. All columns must have the
// same length and distinct names.
func New(cols ...*Series) (*Dataset, error) {
	ds := &Dataset{
		cols:  make([]*Series, 0, len(cols)),
		index: make(map[string]int, len(cols)),
	}
	for _, col := range cols {
		if col == nil {
			return nil, errors.New("nil column")
		}
		if _, exists := ds.index[col.Name()]; exists {
			return nil, fmt.Errorf("duplicate column %q", col.Name())
		}
		if len(ds.cols) > 0 && col.Len() != ds.cols[0].Len() {
			return nil, fmt.Errorf("column %q has %d rows, want %d", col.Name(), col.Len(), ds.cols[0].Len())
		}
		ds.index[col.Name()] = len(ds.cols)
		ds.cols = append(ds.cols, col)
	}
	return ds, nil
}

// Empty creates a Dataset with no columns and no rows.
func Empty() *Dataset {
	return &Dataset{index: make(map[string]int)}
}

// NumRows returns the number of rows.
func (ds *Dataset) NumRows() int {
	if len(ds.cols) == 0 {
		return 0
	}
	return ds.cols[0].Len()
}

// NumCols returns the number of columns.
func (ds *Dataset) NumCols() int {
	return len(ds.cols)
}

// ColumnNames returns the column names in order.
func (ds *Dataset) ColumnNames() []string {
	names := make([]string, len(ds.cols))
	for i, col := range ds.cols {
		names[i] = col.Name()
	}
	return names
}

// Column returns the named column, or ErrColumnNotFound.
func (ds *Dataset) Column(name string) (*Series, error) {
	i, ok := ds.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	return ds.cols[i], nil
}

// HasColumn reports whether the named column exists.
func (ds *Dataset) HasColumn(name string) bool {
	_, ok := ds.index[name]
	return ok
}

// Columns returns the columns in order. The returned slice is a copy but the
// Series themselves are shared.
func (ds *Dataset) Columns() []*Series {
	cols := make([]*Series, len(ds.cols))
	copy(cols, ds.cols)
	return cols
}

// Row returns the cells of row i keyed by column name. Missing cells map to
// nil.
func (ds *Dataset) Row(i int) map[string]interface{} {
	row := make(map[string]interface{}, len(ds.cols))
	for _, col := range ds.cols {
		row[col.Name()] = col.Value(i)
	}
	return row
}

// Select builds a new Dataset containing only the given rows, in the given
// order. Row indices may repeat.
func (ds *Dataset) Select(rows []int) *Dataset {
	out := &Dataset{
		cols:  make([]*Series, len(ds.cols)),
		index: make(map[string]int, len(ds.cols)),
	}
	for i, col := range ds.cols {
		out.cols[i] = col.take(rows)
		out.index[col.Name()] = i
	}
	return out
}

// Equal reports whether two Datasets have the same columns in the same order
// with identical contents.
func (ds *Dataset) Equal(other *Dataset) bool {
	if len(ds.cols) != len(other.cols) {
		return false
	}
	for i := range ds.cols {
		if !ds.cols[i].equal(other.cols[i]) {
			return false
		}
	}
	return true
}

// replace swaps in the columns of another Dataset. Used by the cleaning
// operations so the swap happens only after the replacement is fully built.
func (ds *Dataset) replace(other *Dataset) {
	ds.cols = other.cols
	ds.index = other.index
}
