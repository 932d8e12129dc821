package reader

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vegasq/tabproc/dataset"
)

// buildDataset turns a header row plus a grid of string cells into a typed
// Dataset. Every row must have exactly one cell per header field.
func buildDataset(header []string, rows [][]string, opts Options) (*dataset.Dataset, error) {
	names := normalizeHeader(header)
	for i, row := range rows {
		if len(row) != len(names) {
			return nil, fmt.Errorf("%w: row %d has %d fields, want %d", ErrMalformed, i+1, len(row), len(names))
		}
	}

	nulls := opts.nulls()
	layouts := opts.layouts()

	cols := make([]*dataset.Series, len(names))
	for j, name := range names {
		cells := make([]string, len(rows))
		valid := make([]bool, len(rows))
		for i, row := range rows {
			if nulls[strings.TrimSpace(row[j])] {
				continue
			}
			cells[i] = row[j]
			valid[i] = true
		}
		col, err := buildSeries(name, cells, valid, layouts, opts.ThousandsSeparator)
		if err != nil {
			return nil, err
		}
		cols[j] = col
	}

	ds, err := dataset.New(cols...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return ds, nil
}

// normalizeHeader trims header cells, strips a UTF-8 BOM from the first one
// and names anonymous columns by position.
func normalizeHeader(header []string) []string {
	names := make([]string, len(header))
	for i, cell := range header {
		if i == 0 {
			cell = strings.TrimPrefix(cell, "\ufeff")
		}
		name := strings.TrimSpace(cell)
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		names[i] = name
	}
	return names
}

// buildSeries infers the column kind and converts the cells accordingly.
func buildSeries(name string, cells []string, valid []bool, layouts []string, sep rune) (*dataset.Series, error) {
	switch inferKind(cells, valid, layouts, sep) {
	case dataset.Bool:
		values := make([]bool, len(cells))
		for i, cell := range cells {
			if valid[i] {
				values[i], _ = parseBool(cell)
			}
		}
		return dataset.NewBool(name, values, valid)
	case dataset.Numeric:
		values := make([]float64, len(cells))
		for i, cell := range cells {
			if valid[i] {
				values[i], _ = parseNumber(cell, sep)
			}
		}
		return dataset.NewNumeric(name, values, valid)
	case dataset.Datetime:
		values := make([]time.Time, len(cells))
		for i, cell := range cells {
			if valid[i] {
				values[i], _ = parseTime(cell, layouts)
			}
		}
		return dataset.NewDatetime(name, values, valid)
	default:
		return dataset.NewText(name, cells, valid)
	}
}

// inferKind assigns the narrowest kind that fits every non-missing cell, in
// the order boolean, numeric, datetime, text. Columns with no non-missing
// cells are text.
func inferKind(cells []string, valid []bool, layouts []string, sep rune) dataset.Kind {
	isBool, isNumber, isTime := true, true, true
	seen := false
	for i, cell := range cells {
		if !valid[i] {
			continue
		}
		seen = true
		if isBool {
			_, isBool = parseBool(cell)
		}
		if isNumber {
			_, isNumber = parseNumber(cell, sep)
		}
		if isTime {
			_, isTime = parseTime(cell, layouts)
		}
		if !isBool && !isNumber && !isTime {
			break
		}
	}
	switch {
	case !seen:
		return dataset.Text
	case isBool:
		return dataset.Bool
	case isNumber:
		return dataset.Numeric
	case isTime:
		return dataset.Datetime
	default:
		return dataset.Text
	}
}

// parseBool recognizes the literals true and false, case-insensitively.
func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

// parseNumber parses a float, optionally stripping a thousands separator
// first.
func parseNumber(s string, sep rune) (float64, bool) {
	s = strings.TrimSpace(s)
	if sep != 0 {
		s = strings.ReplaceAll(s, string(sep), "")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseTime tries each layout in order.
func parseTime(s string, layouts []string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range layouts {
		if v, err := time.Parse(layout, s); err == nil {
			return v, true
		}
	}
	return time.Time{}, false
}
