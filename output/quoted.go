package output

import (
	"bufio"
	"io"

	"github.com/vegasq/flatcat/schema"
)

// QuotedFormatter writes each line as a run of `"value",` cells.
//
// Values are not escaped: an embedded quote, comma or newline is written
// as is. Every line, including an empty header, ends with the trailing
// comma of its last cell followed by a newline.
type QuotedFormatter struct {
	writer io.Writer
}

// NewQuotedFormatter creates a new quoted formatter
func NewQuotedFormatter(w io.Writer) *QuotedFormatter {
	return &QuotedFormatter{writer: w}
}

// SetOutput sets the output writer
func (q *QuotedFormatter) SetOutput(w io.Writer) {
	q.writer = w
}

// Format writes the header line followed by one line per record.
func (q *QuotedFormatter) Format(t *schema.Table) error {
	bw := bufio.NewWriter(q.writer)

	writeQuotedLine(bw, t.Columns)
	for _, rec := range t.Records {
		writeQuotedLine(bw, schema.Project(rec, t.Columns))
	}

	// bufio keeps the first write error and reports it here
	return bw.Flush()
}

func writeQuotedLine(w *bufio.Writer, cells []string) {
	for _, cell := range cells {
		_ = w.WriteByte('"')
		_, _ = w.WriteString(cell)
		_, _ = w.WriteString(`",`)
	}
	_ = w.WriteByte('\n')
}
