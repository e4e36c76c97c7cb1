// Package schema derives the column layout of a flattened record set and
// projects records onto it.
package schema

import (
	"sort"

	"github.com/vegasq/flatcat/flatten"
)

// ColumnSet is the sorted, duplicate-free list of paths seen across a
// record set. It defines the column order of every output row.
type ColumnSet []string

// Index returns the position of path, or -1 when it is not a column.
func (c ColumnSet) Index(path string) int {
	i := sort.SearchStrings(c, path)
	if i < len(c) && c[i] == path {
		return i
	}
	return -1
}

// Collect flattens every record and returns the union of their paths.
//
// The first record that cannot be flattened stops the scan; the returned
// error carries its index.
func Collect(records []flatten.Value) (ColumnSet, error) {
	flat := make([]flatten.Record, 0, len(records))
	for i, rec := range records {
		f, err := flatten.Flatten(rec)
		if err != nil {
			return nil, flatten.AtIndex(err, i)
		}
		flat = append(flat, f)
	}
	return CollectFlattened(flat), nil
}

// CollectFlattened returns the union of paths of already flattened records.
func CollectFlattened(records []flatten.Record) ColumnSet {
	seen := make(map[string]struct{})
	for _, rec := range records {
		for path := range rec {
			seen[path] = struct{}{}
		}
	}

	columns := make(ColumnSet, 0, len(seen))
	for path := range seen {
		columns = append(columns, path)
	}
	sort.Strings(columns)
	return columns
}

// Project renders rec onto columns. Paths the record lacks become "".
func Project(rec flatten.Record, columns ColumnSet) []string {
	row := make([]string, len(columns))
	for i, col := range columns {
		row[i], _ = rec.Lookup(col)
	}
	return row
}

// Table is a record set together with its column layout.
type Table struct {
	Columns ColumnSet
	Records []flatten.Record
}

// NewTable collects the columns of records.
func NewTable(records []flatten.Record) *Table {
	return &Table{
		Columns: CollectFlattened(records),
		Records: records,
	}
}

// Rows projects every record onto the table columns.
func (t *Table) Rows() [][]string {
	rows := make([][]string, len(t.Records))
	for i, rec := range t.Records {
		rows[i] = Project(rec, t.Columns)
	}
	return rows
}
