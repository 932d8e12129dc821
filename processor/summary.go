package processor

import "github.com/vegasq/tabproc/dataset"

// Summary describes the owned dataset: its shape, column order, per-column
// missing counts and kinds, and which columns are numeric.
type Summary struct {
	Rows           int                     `json:"rows"`
	Columns        int                     `json:"columns"`
	ColumnNames    []string                `json:"column_names"`
	MissingValues  map[string]int          `json:"missing_values"`
	ColumnTypes    map[string]dataset.Kind `json:"column_types"`
	NumericColumns []string                `json:"numeric_columns"`
}

// Summary reports on the owned dataset without modifying it.
func (p *Processor) Summary() Summary {
	s := Summary{
		Rows:           p.ds.NumRows(),
		Columns:        p.ds.NumCols(),
		ColumnNames:    p.ds.ColumnNames(),
		MissingValues:  make(map[string]int, p.ds.NumCols()),
		ColumnTypes:    make(map[string]dataset.Kind, p.ds.NumCols()),
		NumericColumns: make([]string, 0, p.ds.NumCols()),
	}
	for _, col := range p.ds.Columns() {
		s.MissingValues[col.Name()] = col.MissingCount()
		s.ColumnTypes[col.Name()] = col.Kind()
		if col.Kind() == dataset.Numeric {
			s.NumericColumns = append(s.NumericColumns, col.Name())
		}
	}
	return s
}
