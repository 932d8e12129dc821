// Package output provides formatters for writing datasets to various output formats.
//
// This package defines the Formatter interface and provides implementations
// for common output formats. All formatters work over a *dataset.Dataset and
// write columns in dataset order.
//
// # Supported Formats
//
//   - JSON Lines: One JSON object per row (suitable for streaming)
//   - CSV: Comma-separated values with header row
//   - Table: Aligned text table for terminals
//
// # Basic Usage
//
// Using the JSON formatter:
//
//	formatter := output.NewJSONFormatter(os.Stdout)
//	if err := formatter.Format(ds); err != nil {
//	    log.Fatal(err)
//	}
//
// Using the CSV formatter:
//
//	formatter := output.NewCSVFormatter(os.Stdout)
//	if err := formatter.Format(ds); err != nil {
//	    log.Fatal(err)
//	}
//
// # Writing to Different Destinations
//
// Change output destination dynamically:
//
//	formatter := output.NewJSONFormatter(os.Stdout)
//
//	// Write to file
//	file, err := os.Create("output.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer file.Close()
//
//	formatter.SetOutput(file)
//	if err := formatter.Format(ds); err != nil {
//	    log.Fatal(err)
//	}
//
// # Formatter Interface
//
// Implement custom formatters by satisfying the Formatter interface:
//
//	type Formatter interface {
//	    Format(ds *dataset.Dataset) error
//	    SetOutput(w io.Writer)
//	}
//
// # Type Handling
//
// Cell values are rendered per column kind:
//   - Numeric cells use the shortest decimal form (%g)
//   - Datetime cells use RFC 3339
//   - Boolean cells render as true/false
//   - Missing cells become empty CSV/table cells and JSON nulls
//
// The CSV formatter additionally sanitizes text cells that could be
// interpreted as formulas by spreadsheet applications.
package output
