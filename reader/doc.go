// Package reader loads tabular data files into datasets.
//
// Supported formats are delimited text (CSV, TSV and friends), Apache
// Parquet, and Excel workbooks. The format is chosen by file extension.
// Delimited and Excel cells arrive as strings and go through per-column type
// inference; Parquet files carry their own schema.
//
// # Basic Usage
//
// Reading a file with default options:
//
//	ds, err := reader.Read("data.csv", reader.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d rows, %d columns\n", ds.NumRows(), ds.NumCols())
//
// # Options
//
// Options control delimiter sniffing, missing-value markers, datetime
// layouts, thousands separators and Excel sheet selection:
//
//	ds, err := reader.Read("data.txt", reader.Options{
//	    Delimiter:  ';',
//	    NullValues: []string{"", "-"},
//	})
//
// # Type Inference
//
// For formats without a schema, every column starts as strings and is
// assigned the narrowest kind that fits all of its non-missing cells:
// boolean, then numeric, then datetime, then text. A column with no
// non-missing cells is text.
//
// # Errors
//
// Missing or unreadable paths return the underlying file system error.
// Unparsable content returns an error wrapping ErrMalformed, and extensions
// with no reader return an error wrapping ErrUnsupportedFormat.
//
// The package uses github.com/parquet-go/parquet-go for parquet files and
// github.com/xuri/excelize/v2 for Excel workbooks.
package reader
