package output

import (
	"encoding/json"
	"io"

	"github.com/vegasq/tabproc/dataset"
)

// JSONFormatter outputs a dataset as JSON Lines.
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes the dataset as JSON Lines, one object per row. Missing cells
// encode as null; datetime cells encode in RFC 3339 form.
func (j *JSONFormatter) Format(ds *dataset.Dataset) error {
	encoder := json.NewEncoder(j.writer)
	for i := 0; i < ds.NumRows(); i++ {
		if err := encoder.Encode(ds.Row(i)); err != nil {
			return err
		}
	}
	return nil
}
