package output

import (
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/flatcat/schema"
)

// TableFormatter renders a table with aligned columns for terminals.
type TableFormatter struct {
	writer io.Writer

	// MaxWidth truncates cells wider than this many terminal columns.
	// 0 disables truncation.
	MaxWidth int
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (tf *TableFormatter) SetOutput(w io.Writer) {
	tf.writer = w
}

// Format renders the table. A table without columns writes nothing.
func (tf *TableFormatter) Format(t *schema.Table) error {
	if len(t.Columns) == 0 {
		return nil
	}

	tw := tablewriter.NewWriter(tf.writer)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetHeader(tf.truncateAll(t.Columns))
	for _, rec := range t.Records {
		tw.Append(tf.truncateAll(schema.Project(rec, t.Columns)))
	}
	tw.Render()
	return nil
}

func (tf *TableFormatter) truncateAll(cells []string) []string {
	if tf.MaxWidth <= 0 {
		return cells
	}
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = truncate(c, tf.MaxWidth)
	}
	return out
}

// truncate shortens s to width display columns, marking the cut with "~".
func truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 1 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "~")
}
