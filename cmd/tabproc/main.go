package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vegasq/tabproc/dataset"
	"github.com/vegasq/tabproc/filter"
	"github.com/vegasq/tabproc/internal/config"
	"github.com/vegasq/tabproc/output"
	"github.com/vegasq/tabproc/processor"
	"github.com/vegasq/tabproc/stats"
)

var (
	formatFlag  = flag.String("f", "", "Output format: table, csv, jsonl (default from config)")
	cleanFlag   = flag.Bool("clean", false, "Drop rows with missing cells, then duplicate rows")
	statsFlag   = flag.String("stats", "", "Show statistics for the named numeric column")
	summaryFlag = flag.Bool("summary", false, "Show a per-column summary instead of data")
	limitFlag   = flag.Int("limit", 0, "Limit number of output rows (0 = unlimited)")
	configFlag  = flag.String("config", "", "Path to a YAML config file")
	whereFlag   conditionList
)

// conditionList collects repeated -where flags.
type conditionList []string

func (c *conditionList) String() string {
	return strings.Join(*c, "; ")
}

func (c *conditionList) Set(value string) error {
	*c = append(*c, value)
	return nil
}

func main() {
	flag.Var(&whereFlag, "where", "Filter condition, repeatable (e.g. \"age > 30\")")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <file>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "A tool to load, clean, filter and summarize tabular data files.\n")
		fmt.Fprintf(os.Stderr, "Supported inputs: .csv, .tsv, .txt, .parquet, .xlsx\n\n")
		fmt.Fprintf(os.Stderr, "IMPORTANT: All flags must come BEFORE the file argument.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s data.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -f jsonl data.parquet\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -clean -where \"age > 30\" -where \"city equals Berlin\" data.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -stats price -f csv data.xlsx\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -summary data.csv\n", os.Args[0])
	}

	flag.Parse()

	// Validate flag values
	if *limitFlag < 0 {
		fmt.Fprintf(os.Stderr, "Error: -limit must be non-negative, got %d\n", *limitFlag)
		os.Exit(1)
	}

	// Validate flag combinations
	if *statsFlag != "" && *summaryFlag {
		fmt.Fprintf(os.Stderr, "Error: -stats and -summary cannot be used together\n")
		os.Exit(1)
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	format := cfg.Output.Format
	if *formatFlag != "" {
		format = *formatFlag
	}

	formatter, err := newFormatter(format, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Supported formats: table, csv, jsonl\n")
		os.Exit(1)
	}

	// Data goes to stdout, logs to stderr
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel()}))

	// Get filename from positional args
	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: missing data file argument\n\n")
		flag.Usage()
		os.Exit(1)
	}
	filename := flag.Arg(0)

	proc := processor.New(processor.Config{Reader: cfg.ReaderOptions()}, logger)
	if err := proc.Load(filename); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error: file '%s' not found\n", filename)
			fmt.Fprintf(os.Stderr, "Please check the file path and try again.\n")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	// Clean before filtering so conditions run against complete rows
	if *cleanFlag {
		proc.Clean()
	}

	// Parse and apply filter conditions if specified
	conds, err := parseConditions(whereFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing condition: %v\n\n", err)
		fmt.Fprintf(os.Stderr, "Condition format: <column> <operator> <value>\n")
		fmt.Fprintf(os.Stderr, "Example: -where \"age > 30\" -where \"city equals Berlin\"\n")
		os.Exit(1)
	}
	if len(conds) > 0 {
		filtered, err := proc.Filter(conds)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error applying filter: %v\n", err)
			if errors.Is(err, dataset.ErrColumnNotFound) {
				listColumns(proc.Dataset())
			}
			os.Exit(1)
		}
		proc = processor.NewFromDataset(filtered, processor.Config{Reader: cfg.ReaderOptions()}, logger)
	}

	var out *dataset.Dataset
	switch {
	case *statsFlag != "":
		cs, err := proc.Statistics(*statsFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error computing statistics: %v\n", err)
			if errors.Is(err, dataset.ErrColumnNotFound) {
				listColumns(proc.Dataset())
			} else if errors.Is(err, stats.ErrNotNumeric) {
				fmt.Fprintf(os.Stderr, "\nNumeric columns: %s\n", strings.Join(proc.Summary().NumericColumns, ", "))
			}
			os.Exit(1)
		}
		out, err = statsDataset(cs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case *summaryFlag:
		s := proc.Summary()
		logger.Info("dataset shape", slog.Int("rows", s.Rows), slog.Int("columns", s.Columns))
		out, err = summaryDataset(s)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		out = limitRows(proc.Dataset(), *limitFlag)
	}

	if err := formatter.Format(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}
}

// newFormatter selects the output formatter for a format name
func newFormatter(format string, w io.Writer) (output.Formatter, error) {
	switch format {
	case "table":
		return output.NewTableFormatter(w), nil
	case "json", "jsonl":
		return output.NewJSONFormatter(w), nil
	case "csv":
		return output.NewCSVFormatter(w), nil
	default:
		return nil, fmt.Errorf("unsupported format '%s'", format)
	}
}

// parseConditions parses every -where expression
func parseConditions(exprs []string) ([]filter.Condition, error) {
	conds := make([]filter.Condition, 0, len(exprs))
	for _, expr := range exprs {
		cond, err := filter.ParseCondition(expr)
		if err != nil {
			return nil, err
		}
		conds = append(conds, cond)
	}
	return conds, nil
}

// limitRows truncates the dataset to the first limit rows. 0 means unlimited.
func limitRows(ds *dataset.Dataset, limit int) *dataset.Dataset {
	if limit <= 0 || ds.NumRows() <= limit {
		return ds
	}
	rows := make([]int, limit)
	for i := range rows {
		rows[i] = i
	}
	return ds.Select(rows)
}

// statsDataset converts a statistics record into a one-row dataset so it can
// go through the regular formatters.
func statsDataset(cs stats.ColumnStats) (*dataset.Dataset, error) {
	column, err := dataset.NewText("column", []string{cs.Column}, nil)
	if err != nil {
		return nil, err
	}

	cols := []*dataset.Series{column}
	numbers := []struct {
		name  string
		value float64
	}{
		{"count", float64(cs.Count)},
		{"missing", float64(cs.Missing)},
		{"mean", cs.Mean},
		{"median", cs.Median},
		{"std", cs.Std},
		{"min", cs.Min},
		{"max", cs.Max},
		{"sum", cs.Sum},
	}
	for _, n := range numbers {
		col, err := dataset.NewNumeric(n.name, []float64{n.value}, nil)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}

	return dataset.New(cols...)
}

// summaryDataset converts the summary record into a dataset with one row per
// column.
func summaryDataset(s processor.Summary) (*dataset.Dataset, error) {
	types := make([]string, len(s.ColumnNames))
	missing := make([]float64, len(s.ColumnNames))
	for i, name := range s.ColumnNames {
		types[i] = s.ColumnTypes[name].String()
		missing[i] = float64(s.MissingValues[name])
	}

	column, err := dataset.NewText("column", s.ColumnNames, nil)
	if err != nil {
		return nil, err
	}
	kind, err := dataset.NewText("type", types, nil)
	if err != nil {
		return nil, err
	}
	miss, err := dataset.NewNumeric("missing", missing, nil)
	if err != nil {
		return nil, err
	}

	return dataset.New(column, kind, miss)
}

// listColumns prints the available columns to help the user fix a condition
func listColumns(ds *dataset.Dataset) {
	fmt.Fprintf(os.Stderr, "\nAvailable columns: %s\n", strings.Join(ds.ColumnNames(), ", "))
}
