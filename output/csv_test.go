package output

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vegasq/tabproc/dataset"
	"github.com/vegasq/tabproc/reader"
)

func TestCSVFormatter_Format(t *testing.T) {
	tests := []struct {
		name      string
		ds        *dataset.Dataset
		wantLines int
	}{
		{
			name:      "no columns",
			ds:        dataset.Empty(),
			wantLines: 0,
		},
		{
			name:      "header only",
			ds:        buildDataset(t, textColumn(t, "name", nil, nil)),
			wantLines: 1,
		},
		{
			name: "single row",
			ds: buildDataset(t,
				numericColumn(t, "id", []float64{1}, nil),
				textColumn(t, "name", []string{"alice"}, nil),
			),
			wantLines: 2, // header + 1 data row
		},
		{
			name:      "multiple rows",
			ds:        peopleDataset(t),
			wantLines: 4, // header + 3 data rows
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			formatter := NewCSVFormatter(&buf)

			if err := formatter.Format(tt.ds); err != nil {
				t.Fatalf("Format() error = %v", err)
			}

			output := buf.String()
			if tt.wantLines == 0 {
				if output != "" {
					t.Errorf("Format() output should be empty, got %q", output)
				}
				return
			}

			// Parse CSV to verify format
			records, err := csv.NewReader(strings.NewReader(output)).ReadAll()
			if err != nil {
				t.Fatalf("Format() produced invalid CSV: %v", err)
			}
			if len(records) != tt.wantLines {
				t.Errorf("Format() produced %d lines, want %d", len(records), tt.wantLines)
			}
		})
	}
}

func TestCSVFormatter_ColumnOrder(t *testing.T) {
	// The header must follow dataset column order, not alphabetical order,
	// so a written file loads back with the same schema.
	ds := buildDataset(t,
		textColumn(t, "z_last", []string{"value1"}, nil),
		textColumn(t, "a_first", []string{"value2"}, nil),
		textColumn(t, "m_middle", []string{"value3"}, nil),
	)

	var buf bytes.Buffer
	if err := NewCSVFormatter(&buf).Format(ds); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse CSV: %v", err)
	}
	if len(records) < 1 {
		t.Fatal("No header row in CSV output")
	}

	header := records[0]
	want := []string{"z_last", "a_first", "m_middle"}
	if len(header) != len(want) {
		t.Fatalf("Expected %d columns, got %d", len(want), len(header))
	}
	for i := range want {
		if header[i] != want[i] {
			t.Errorf("Column %d should be %q, got %q", i, want[i], header[i])
		}
	}
}

func TestCSVFormatter_TypeFormatting(t *testing.T) {
	ds := peopleDataset(t)

	var buf bytes.Buffer
	if err := NewCSVFormatter(&buf).Format(ds); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse CSV: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("Expected 4 records (header + data), got %d", len(records))
	}

	header := records[0]
	getValue := func(row []string, col string) string {
		for i, h := range header {
			if h == col {
				return row[i]
			}
		}
		return ""
	}

	first := records[1]
	if getValue(first, "name") != "alice" {
		t.Errorf("name column should be 'alice', got %q", getValue(first, "name"))
	}
	if getValue(first, "id") != "1" {
		t.Errorf("id column should be '1', got %q", getValue(first, "id"))
	}
	if getValue(first, "score") != "95.5" {
		t.Errorf("score column should be '95.5', got %q", getValue(first, "score"))
	}
	if getValue(first, "active") != "true" {
		t.Errorf("active column should be 'true', got %q", getValue(first, "active"))
	}
	if getValue(first, "joined") != "2024-01-15T10:30:00Z" {
		t.Errorf("joined column should be RFC 3339, got %q", getValue(first, "joined"))
	}

	second := records[2]
	if getValue(second, "score") != "" {
		t.Errorf("missing cell should be empty, got %q", getValue(second, "score"))
	}
}

func TestCSVFormatter_FormulaInjection(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"equals prefix", "=1+2", "'=1+2"},
		{"plus prefix", "+SUM(A1)", "'+SUM(A1)"},
		{"minus prefix", "-2+3", "'-2+3"},
		{"at prefix", "@cmd", "'@cmd"},
		{"pipe prefix", "|calc", "'|calc"},
		{"quote doubling", "=it's", "'=it''s"},
		{"plain text untouched", "hello", "hello"},
		{"inner equals untouched", "a=b", "a=b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := buildDataset(t, textColumn(t, "v", []string{tt.value}, nil))

			var buf bytes.Buffer
			if err := NewCSVFormatter(&buf).Format(ds); err != nil {
				t.Fatalf("Format() error = %v", err)
			}

			records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
			if err != nil {
				t.Fatalf("Failed to parse CSV: %v", err)
			}
			if got := records[1][0]; got != tt.want {
				t.Errorf("formatValue(%q) wrote %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestCSVFormatter_SpecialCharacters(t *testing.T) {
	ds := buildDataset(t,
		textColumn(t, "name", []string{"Alice, Bob"}, nil),
		textColumn(t, "quote", []string{`He said "hello"`}, nil),
		textColumn(t, "newline", []string{"line1\nline2"}, nil),
	)

	var buf bytes.Buffer
	if err := NewCSVFormatter(&buf).Format(ds); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	// CSV library should handle escaping automatically
	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse CSV with special characters: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}

	dataRow := records[1]
	if dataRow[0] != "Alice, Bob" {
		t.Errorf("comma in value not handled correctly: %q", dataRow[0])
	}
	if dataRow[1] != `He said "hello"` {
		t.Errorf("quotes in value not handled correctly: %q", dataRow[1])
	}
	if dataRow[2] != "line1\nline2" {
		t.Errorf("newline in value not handled correctly: %q", dataRow[2])
	}
}

func TestCSVFormatter_SetOutput(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	formatter := NewCSVFormatter(&buf1)

	ds := buildDataset(t,
		numericColumn(t, "id", []float64{1}, nil),
		textColumn(t, "name", []string{"alice"}, nil),
	)

	// Write to first buffer
	if err := formatter.Format(ds); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if buf1.Len() == 0 {
		t.Error("First buffer should have content")
	}

	// Change output and write again
	formatter.SetOutput(&buf2)
	if err := formatter.Format(ds); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if buf2.Len() == 0 {
		t.Error("Second buffer should have content")
	}
}

func TestCSVRoundTrip(t *testing.T) {
	ds := peopleDataset(t)

	path := filepath.Join(t.TempDir(), "people.csv")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if err := NewCSVFormatter(file).Format(ds); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if err := file.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	loaded, err := reader.Read(path, reader.Options{})
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if !loaded.Equal(ds) {
		t.Errorf("round-tripped dataset differs from the original\noriginal columns: %v\nloaded columns:   %v",
			ds.ColumnNames(), loaded.ColumnNames())
	}
}
