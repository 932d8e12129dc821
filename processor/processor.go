package processor

import (
	"log/slog"

	"github.com/vegasq/tabproc/dataset"
	"github.com/vegasq/tabproc/filter"
	"github.com/vegasq/tabproc/reader"
	"github.com/vegasq/tabproc/stats"
)

// Config carries the processor's settings.
type Config struct {
	// Reader controls how Load parses files.
	Reader reader.Options
}

// Processor owns a dataset and exposes the processing operations over it.
type Processor struct {
	cfg    Config
	logger *slog.Logger
	ds     *dataset.Dataset
}

// New creates a Processor owning an empty dataset. A nil logger falls back
// to slog.Default().
func New(cfg Config, logger *slog.Logger) *Processor {
	return NewFromDataset(dataset.Empty(), cfg, logger)
}

// NewFromDataset creates a Processor owning the given dataset. The caller
// hands over ownership; the dataset must not be mutated elsewhere afterward.
func NewFromDataset(ds *dataset.Dataset, cfg Config, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if ds == nil {
		ds = dataset.Empty()
	}
	return &Processor{cfg: cfg, logger: logger, ds: ds}
}

// Load reads the file at path and replaces the owned dataset with its
// contents. On failure the previous dataset is kept unchanged.
func (p *Processor) Load(path string) error {
	ds, err := reader.Read(path, p.cfg.Reader)
	if err != nil {
		return err
	}
	p.ds = ds
	p.logger.Info("loaded dataset",
		slog.String("path", path),
		slog.Int("rows", ds.NumRows()),
		slog.Int("columns", ds.NumCols()))
	return nil
}

// Clean removes rows with missing cells, then exact duplicate rows, keeping
// first occurrences. Both passes replace the column set only after the
// surviving rows are fully assembled. Cleaning twice is a no-op.
func (p *Processor) Clean() (missingDropped, duplicatesDropped int) {
	missingDropped = p.ds.DropMissing()
	duplicatesDropped = p.ds.DropDuplicates()
	p.logger.Info("cleaned dataset",
		slog.Int("dropped_missing", missingDropped),
		slog.Int("dropped_duplicates", duplicatesDropped),
		slog.Int("rows", p.ds.NumRows()))
	return missingDropped, duplicatesDropped
}

// Statistics computes descriptive statistics for the named numeric column.
// Absent columns fail with dataset.ErrColumnNotFound, non-numeric ones with
// stats.ErrNotNumeric.
func (p *Processor) Statistics(column string) (stats.ColumnStats, error) {
	col, err := p.ds.Column(column)
	if err != nil {
		return stats.ColumnStats{}, err
	}
	return stats.Describe(col)
}

// Filter returns a new dataset holding the rows satisfying every condition.
// The owned dataset is never modified. An empty condition list yields a
// dataset equal to the owned one.
func (p *Processor) Filter(conds []filter.Condition) (*dataset.Dataset, error) {
	return filter.Apply(p.ds, conds)
}

// ColumnTypes returns the coarse kind of every column.
func (p *Processor) ColumnTypes() map[string]dataset.Kind {
	types := make(map[string]dataset.Kind, p.ds.NumCols())
	for _, col := range p.ds.Columns() {
		types[col.Name()] = col.Kind()
	}
	return types
}

// Dataset returns the owned dataset. Callers must treat it as read-only.
func (p *Processor) Dataset() *dataset.Dataset {
	return p.ds
}
