package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/tabproc/dataset"
)

// parquetReader reads parquet files and returns rows as maps.
//
// It maintains both an OS file handle and a parquet file handle to enable
// proper resource cleanup.
type parquetReader struct {
	file   *os.File
	pqFile *parquet.File
}

// newParquetReader opens and validates a parquet file.
func newParquetReader(path string) (*parquetReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return &parquetReader{
		file:   file,
		pqFile: pqFile,
	}, nil
}

// readAll reads all rows from the parquet file into memory.
//
// Each row is a map keyed by column name. The entire file is loaded into
// memory, matching the dataset model.
func (r *parquetReader) readAll() ([]map[string]interface{}, error) {
	rows := make([]map[string]interface{}, 0)

	reader := parquet.NewReader(r.pqFile)
	defer func() { _ = reader.Close() }()

	for {
		row := make(map[string]interface{})
		err := reader.Read(&row)
		if err != nil {
			// Use errors.Is for proper EOF detection
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w: failed to read row: %v", ErrMalformed, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// close releases the underlying file handle. Safe to call multiple times.
func (r *parquetReader) close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// readParquet loads a parquet file into a Dataset. Column order and kinds
// come from the file schema; nil cells become missing values.
func readParquet(path string) (*dataset.Dataset, error) {
	r, err := newParquetReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.close() }()

	fields, err := schemaFields(r.pqFile.Schema())
	if err != nil {
		return nil, err
	}

	rows, err := r.readAll()
	if err != nil {
		return nil, err
	}

	cols := make([]*dataset.Series, 0, len(fields))
	for _, field := range fields {
		col, err := parquetColumn(field, rows)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}

	ds, err := dataset.New(cols...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return ds, nil
}

// parquetColumn converts one column of map rows into a Series of the kind
// the schema declared for it.
func parquetColumn(field fieldInfo, rows []map[string]interface{}) (*dataset.Series, error) {
	valid := make([]bool, len(rows))

	switch field.kind {
	case dataset.Bool:
		values := make([]bool, len(rows))
		for i, row := range rows {
			cell := row[field.name]
			if cell == nil {
				continue
			}
			v, ok := cell.(bool)
			if !ok {
				return nil, cellTypeError(field.name, cell)
			}
			values[i] = v
			valid[i] = true
		}
		return dataset.NewBool(field.name, values, valid)

	case dataset.Numeric:
		values := make([]float64, len(rows))
		for i, row := range rows {
			cell := row[field.name]
			if cell == nil {
				continue
			}
			v, ok := toFloat(cell)
			if !ok {
				return nil, cellTypeError(field.name, cell)
			}
			values[i] = v
			valid[i] = true
		}
		return dataset.NewNumeric(field.name, values, valid)

	case dataset.Datetime:
		values := make([]time.Time, len(rows))
		for i, row := range rows {
			cell := row[field.name]
			if cell == nil {
				continue
			}
			v, ok := toTime(cell, field.unit)
			if !ok {
				return nil, cellTypeError(field.name, cell)
			}
			values[i] = v
			valid[i] = true
		}
		return dataset.NewDatetime(field.name, values, valid)

	default:
		values := make([]string, len(rows))
		for i, row := range rows {
			cell := row[field.name]
			if cell == nil {
				continue
			}
			v, ok := toText(cell)
			if !ok {
				return nil, cellTypeError(field.name, cell)
			}
			values[i] = v
			valid[i] = true
		}
		return dataset.NewText(field.name, values, valid)
	}
}

func cellTypeError(column string, cell interface{}) error {
	return fmt.Errorf("%w: column %q has unexpected value type %T", ErrMalformed, column, cell)
}

// toFloat converts any numeric cell value to float64.
func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// toText converts a string or byte-slice cell value to a string.
func toText(v interface{}) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case []byte:
		return string(s), true
	default:
		return "", false
	}
}

// toTime converts a cell to an instant. Readers may surface timestamps as
// time.Time directly or as raw integers in the unit the schema declared.
func toTime(v interface{}, unit timeUnit) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case int64:
		return epochTime(t, unit), true
	case int32:
		return epochTime(int64(t), unit), true
	default:
		return time.Time{}, false
	}
}

// epochTime interprets n as an offset from the Unix epoch in the given unit.
func epochTime(n int64, unit timeUnit) time.Time {
	switch unit {
	case unitDays:
		return time.Unix(n*24*60*60, 0).UTC()
	case unitMillis:
		return time.UnixMilli(n).UTC()
	case unitMicros:
		return time.UnixMicro(n).UTC()
	default:
		return time.Unix(0, n).UTC()
	}
}
