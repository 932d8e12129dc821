package reader

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vegasq/tabproc/dataset"
)

// delimiterCandidates are tried during sniffing; ties go to the earlier
// candidate.
var delimiterCandidates = []rune{',', ';', '\t', '|'}

// readDelimited reads a delimited text file. The first record is the header;
// all records must have the same number of fields.
func readDelimited(path string, opts Options) (*dataset.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	delim := opts.Delimiter
	if delim == 0 {
		delim, err = sniffDelimiter(file)
		if err != nil {
			return nil, err
		}
		if _, err := file.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("failed to rewind file: %w", err)
		}
	}

	r := csv.NewReader(file)
	r.Comma = delim
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: file has no header row", ErrMalformed)
	}
	return buildDataset(records[0], records[1:], opts)
}

// sniffDelimiter picks the candidate delimiter occurring most often in the
// first line. Lines with none of the candidates fall back to a comma, which
// covers single-column files.
func sniffDelimiter(file *os.File) (rune, error) {
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, fmt.Errorf("failed to read header line: %w", err)
		}
		return 0, fmt.Errorf("%w: file has no header row", ErrMalformed)
	}
	line := scanner.Text()

	best := ','
	bestCount := 0
	for _, cand := range delimiterCandidates {
		if n := strings.Count(line, string(cand)); n > bestCount {
			best = cand
			bestCount = n
		}
	}
	return best, nil
}
