package output

import (
	"io"

	"github.com/vegasq/tabproc/dataset"
)

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to write a dataset in the target format
// and SetOutput to change the output destination.
type Formatter interface {
	// Format writes the dataset in the formatter's specific format
	Format(ds *dataset.Dataset) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}
