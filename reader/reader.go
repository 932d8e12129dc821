package reader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vegasq/tabproc/dataset"
)

var (
	// ErrUnsupportedFormat is returned for file extensions with no reader.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrMalformed is returned when a file exists but its content cannot be
	// parsed as tabular data.
	ErrMalformed = errors.New("malformed input")
)

// Options control how files are parsed. The zero value selects sensible
// defaults for every field.
type Options struct {
	// Delimiter separates fields in delimited text files. Zero means sniff
	// the delimiter from the header line.
	Delimiter rune

	// NullValues are the cell contents treated as missing, compared after
	// trimming surrounding whitespace. Nil means DefaultNullValues.
	NullValues []string

	// DateFormats are the time layouts tried in order during datetime
	// inference. Nil means DefaultDateFormats.
	DateFormats []string

	// ThousandsSeparator, when nonzero, is stripped from numeric cells
	// before parsing, so "1,234.5" with ',' reads as 1234.5.
	ThousandsSeparator rune

	// Sheet selects the worksheet of an Excel workbook. Empty means the
	// first sheet.
	Sheet string
}

// DefaultNullValues returns the cell contents treated as missing when
// Options.NullValues is nil.
func DefaultNullValues() []string {
	return []string{"", "NA", "N/A", "NaN", "nan", "null", "NULL", "None"}
}

// DefaultDateFormats returns the time layouts tried when Options.DateFormats
// is nil.
func DefaultDateFormats() []string {
	return []string{
		"2006-01-02T15:04:05Z07:00",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
}

// nulls returns the effective missing-value markers as a set.
func (o Options) nulls() map[string]bool {
	values := o.NullValues
	if values == nil {
		values = DefaultNullValues()
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// layouts returns the effective datetime layouts.
func (o Options) layouts() []string {
	if o.DateFormats == nil {
		return DefaultDateFormats()
	}
	return o.DateFormats
}

// Read loads the file at path into a Dataset, dispatching on the file
// extension: .csv/.tsv/.txt are delimited text, .parquet is Apache Parquet
// and .xlsx is an Excel workbook.
//
// A missing or unreadable path returns the wrapped file system error, so
// errors.Is(err, fs.ErrNotExist) works. Content that cannot be parsed
// returns an error wrapping ErrMalformed.
func Read(path string, opts Options) (*dataset.Dataset, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv", ".txt":
		return readDelimited(path, opts)
	case ".tsv":
		if opts.Delimiter == 0 {
			opts.Delimiter = '\t'
		}
		return readDelimited(path, opts)
	case ".parquet":
		return readParquet(path)
	case ".xlsx":
		return readExcel(path, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
