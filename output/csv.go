package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/vegasq/flatcat/schema"
)

// CSVFormatter outputs a table as RFC 4180 CSV
type CSVFormatter struct {
	writer io.Writer

	// Safe prefixes cells that a spreadsheet would evaluate as a formula.
	Safe bool
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes the header row and one row per record
func (c *CSVFormatter) Format(t *schema.Table) error {
	csvWriter := csv.NewWriter(c.writer)

	// Write header. Keys come from the input, so they are guarded too.
	header := []string(t.Columns)
	if c.Safe {
		header = make([]string, len(t.Columns))
		for i, col := range t.Columns {
			header[i] = sanitizeCell(col)
		}
	}
	if err := csvWriter.Write(header); err != nil {
		return err
	}

	// Write rows
	for _, rec := range t.Records {
		record := schema.Project(rec, t.Columns)
		if c.Safe {
			for i := range record {
				record[i] = sanitizeCell(record[i])
			}
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	// Flush and check for errors
	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return nil
}

// sanitizeCell guards against CSV injection by prefixing characters that
// could trigger formula execution in spreadsheet applications
func sanitizeCell(val string) string {
	if len(val) == 0 {
		return val
	}
	switch val[0] {
	case '=', '+', '-', '@', '\t', '\r', '\n', '|':
		// Escape existing single quotes and prefix with quote
		return "'" + strings.ReplaceAll(val, "'", "''")
	}
	return val
}
