package reader

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/vegasq/tabproc/dataset"
)

// readExcel loads one worksheet of an .xlsx workbook. The first row is the
// header; cells go through the same type inference as delimited text.
func readExcel(path string, opts Options) (*dataset.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	defer func() { _ = f.Close() }()

	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%w: workbook has no sheets", ErrMalformed)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q: %v", ErrMalformed, sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet %q has no header row", ErrMalformed, sheet)
	}

	header := rows[0]
	// GetRows trims trailing empty cells, so short rows are padded back to
	// the header width with missing cells.
	data := make([][]string, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) > len(header) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want at most %d", ErrMalformed, i+1, len(row), len(header))
		}
		padded := make([]string, len(header))
		copy(padded, row)
		data = append(data, padded)
	}

	return buildDataset(header, data, opts)
}
