package reader

import (
	"fmt"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/tabproc/dataset"
)

// timeUnit identifies how a parquet column encodes instants.
type timeUnit int

const (
	unitNone timeUnit = iota
	unitDays
	unitMillis
	unitMicros
	unitNanos
)

// fieldInfo describes one leaf column of a parquet schema.
type fieldInfo struct {
	name string
	kind dataset.Kind
	unit timeUnit
}

// schemaFields extracts the columns of a parquet schema in order. Nested and
// repeated fields have no tabular representation and are rejected.
func schemaFields(schema *parquet.Schema) ([]fieldInfo, error) {
	fields := schema.Fields()
	infos := make([]fieldInfo, 0, len(fields))
	for _, field := range fields {
		if len(field.Fields()) > 0 || field.Repeated() {
			return nil, fmt.Errorf("%w: column %q is nested or repeated", ErrMalformed, field.Name())
		}
		kind, unit := fieldKind(field)
		infos = append(infos, fieldInfo{name: field.Name(), kind: kind, unit: unit})
	}
	return infos, nil
}

// fieldKind maps a leaf parquet field to a column kind.
//
// The logical type is checked first for more specific typing; physical types
// are the fallback. Logical type names are matched by substring so both bare
// and parameterized string forms work.
func fieldKind(field parquet.Field) (dataset.Kind, timeUnit) {
	t := field.Type()
	if t == nil {
		return dataset.Text, unitNone
	}

	if logicalType := t.LogicalType(); logicalType != nil {
		s := logicalType.String()
		switch {
		case strings.Contains(s, "TIMESTAMP") || strings.Contains(s, "TIME"):
			switch {
			case strings.Contains(s, "MILLIS"):
				return dataset.Datetime, unitMillis
			case strings.Contains(s, "MICROS"):
				return dataset.Datetime, unitMicros
			default:
				return dataset.Datetime, unitNanos
			}
		case strings.Contains(s, "DATE"):
			return dataset.Datetime, unitDays
		case strings.Contains(s, "STRING") || strings.Contains(s, "UTF8") ||
			strings.Contains(s, "ENUM") || strings.Contains(s, "JSON") ||
			strings.Contains(s, "UUID"):
			return dataset.Text, unitNone
		}
	}

	switch t.Kind() {
	case parquet.Boolean:
		return dataset.Bool, unitNone
	case parquet.Int32, parquet.Int64, parquet.Float, parquet.Double:
		return dataset.Numeric, unitNone
	case parquet.Int96:
		// Legacy timestamp encoding.
		return dataset.Datetime, unitNanos
	default:
		return dataset.Text, unitNone
	}
}
