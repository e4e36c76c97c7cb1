package schema

import (
	"sort"
	"strconv"
	"strings"

	"github.com/vegasq/flatcat/flatten"
)

// ColumnInfo describes one column of a record set.
type ColumnInfo struct {
	Name    string   `json:"name"`
	Kinds   []string `json:"kinds"`
	Present int      `json:"present"`
	Missing int      `json:"missing"`
}

// Describe reports, for each column, which value kinds were observed and
// how many records carry it.
//
// Kinds are listed in a fixed order: null, boolean, number, string, object,
// array. Empty objects and arrays are reported under their own kind.
func Describe(records []flatten.Record) []ColumnInfo {
	columns := CollectFlattened(records)

	kinds := make([]map[flatten.Kind]bool, len(columns))
	infos := make([]ColumnInfo, len(columns))
	for i, col := range columns {
		infos[i].Name = col
		kinds[i] = make(map[flatten.Kind]bool)
	}

	for _, rec := range records {
		for path, v := range rec {
			i := columns.Index(path)
			infos[i].Present++
			kinds[i][v.Kind] = true
		}
	}

	for i := range infos {
		infos[i].Missing = len(records) - infos[i].Present
		infos[i].Kinds = kindNames(kinds[i])
	}
	return infos
}

func kindNames(set map[flatten.Kind]bool) []string {
	ks := make([]flatten.Kind, 0, len(set))
	for k := range set {
		ks = append(ks, k)
	}
	sort.Slice(ks, func(i, j int) bool { return ks[i] < ks[j] })

	names := make([]string, len(ks))
	for i, k := range ks {
		names[i] = k.String()
	}
	return names
}

// DescribeTable lays out ColumnInfo rows as a table so any formatter can
// print them.
func DescribeTable(infos []ColumnInfo) *Table {
	records := make([]flatten.Record, len(infos))
	for i, info := range infos {
		records[i] = flatten.Record{
			"column":  flatten.StringValue(info.Name),
			"kinds":   flatten.StringValue(strings.Join(info.Kinds, "|")),
			"present": flatten.NumberValue(strconv.Itoa(info.Present)),
			"missing": flatten.NumberValue(strconv.Itoa(info.Missing)),
		}
	}
	return &Table{
		Columns: ColumnSet{"column", "kinds", "present", "missing"},
		Records: records,
	}
}
