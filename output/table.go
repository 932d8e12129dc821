package output

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/tabproc/dataset"
)

// TableFormatter outputs a dataset as an aligned text table for terminals.
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// Format renders the dataset as a table with one header row. Missing cells
// render as empty cells.
func (t *TableFormatter) Format(ds *dataset.Dataset) error {
	if ds.NumCols() == 0 {
		return nil
	}

	table := tablewriter.NewWriter(t.writer)
	table.SetHeader(ds.ColumnNames())
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)

	cols := ds.Columns()
	for i := 0; i < ds.NumRows(); i++ {
		row := make([]string, len(cols))
		for j, col := range cols {
			row[j] = cellString(col.Value(i))
		}
		table.Append(row)
	}

	table.Render()
	return nil
}

// cellString converts a cell value to its display form. Unlike the CSV
// formatter it does not guard against spreadsheet formula injection; the
// table is for terminals, not for re-import.
func cellString(v interface{}) string {
	if v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", val)
	}
}
