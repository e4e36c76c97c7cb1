// Package output provides formatters that write a flattened table in
// various text formats.
//
// Currently supported formats:
//   - quoted: every cell double-quoted and comma-terminated, no escaping
//   - csv: RFC 4180 CSV with header row
//   - json/jsonl: One JSON object per record
//   - table: aligned text table for terminals
//
// Example usage:
//
//	formatter := output.NewQuotedFormatter(os.Stdout)
//	if err := formatter.Format(table); err != nil {
//	    log.Fatal(err)
//	}
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/vegasq/flatcat/schema"
)

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to write a table in the target format
// and SetOutput to change the output destination.
type Formatter interface {
	// Format writes the table in the formatter's specific format
	Format(t *schema.Table) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// Format names accepted by New.
const (
	FormatQuoted = "quoted"
	FormatCSV    = "csv"
	FormatJSON   = "json"
	FormatJSONL  = "jsonl"
	FormatTable  = "table"
)

// Formats lists every accepted format name.
var Formats = []string{FormatQuoted, FormatCSV, FormatJSON, FormatJSONL, FormatTable}

// Options tune formatters that support them. Zero values are defaults.
type Options struct {
	// Safe guards CSV cells against spreadsheet formula injection.
	Safe bool

	// MaxWidth truncates table cells to this display width. 0 disables it.
	MaxWidth int
}

// New returns the formatter registered under name.
func New(name string, w io.Writer, opts Options) (Formatter, error) {
	switch name {
	case FormatQuoted:
		return NewQuotedFormatter(w), nil
	case FormatCSV:
		f := NewCSVFormatter(w)
		f.Safe = opts.Safe
		return f, nil
	case FormatJSON, FormatJSONL:
		return NewJSONFormatter(w), nil
	case FormatTable:
		f := NewTableFormatter(w)
		f.MaxWidth = opts.MaxWidth
		return f, nil
	default:
		return nil, fmt.Errorf("unsupported format '%s' (supported formats: %s)", name, strings.Join(Formats, ", "))
	}
}
