package dataset

import (
	"fmt"
	"strings"
)

// DropMissing removes every row that has at least one missing cell and
// returns the number of rows removed. The Dataset is modified in place, but
// only after the replacement columns are fully built.
func (ds *Dataset) DropMissing() int {
	before := ds.NumRows()
	keep := make([]int, 0, before)
	for i := 0; i < before; i++ {
		complete := true
		for _, col := range ds.cols {
			if col.IsMissing(i) {
				complete = false
				break
			}
		}
		if complete {
			keep = append(keep, i)
		}
	}
	if len(keep) == before {
		return 0
	}
	ds.replace(ds.Select(keep))
	return before - len(keep)
}

// DropDuplicates removes every row whose cells match an earlier row and
// returns the number of rows removed. The first occurrence is kept.
func (ds *Dataset) DropDuplicates() int {
	before := ds.NumRows()
	seen := make(map[string]bool, before)
	keep := make([]int, 0, before)
	for i := 0; i < before; i++ {
		key := ds.rowKey(i)
		if seen[key] {
			continue
		}
		seen[key] = true
		keep = append(keep, i)
	}
	if len(keep) == before {
		return 0
	}
	ds.replace(ds.Select(keep))
	return before - len(keep)
}

// rowKey creates a unique string key from a row for deduplication.
func (ds *Dataset) rowKey(i int) string {
	var key strings.Builder
	for j, col := range ds.cols {
		if j > 0 {
			key.WriteString("\x00||\x00") // Use unlikely separator to avoid collisions
		}
		key.WriteString(col.Name())
		key.WriteString("\x00:\x00")
		if col.IsMissing(i) {
			key.WriteString("<missing>")
		} else {
			key.WriteString(fmt.Sprintf("%#v", col.Value(i))) // Use %#v for better type differentiation
		}
	}
	return key.String()
}
