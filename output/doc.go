// Package output provides formatters for writing flattened records in
// various output formats.
//
// This package defines the Formatter interface and provides implementations
// for the quoted legacy layout, CSV, JSON Lines and terminal tables. All
// formatters work with a *schema.Table: the sorted column set plus the
// flattened records projected onto it.
//
// # Supported Formats
//
//   - quoted: `"a","b.c",` lines, no escaping, trailing comma on every line
//   - csv: Comma-separated values with header row and RFC 4180 quoting
//   - json / jsonl: One JSON object per record (suitable for streaming)
//   - table: Bordered table with aligned columns
//
// # Basic Usage
//
// Picking a formatter by name:
//
//	formatter, err := output.New("csv", os.Stdout, output.Options{Safe: true})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := formatter.Format(table); err != nil {
//	    log.Fatal(err)
//	}
//
// # Using as String
//
// Write to a bytes buffer to get string output:
//
//	var buf bytes.Buffer
//	formatter := output.NewQuotedFormatter(&buf)
//	if err := formatter.Format(table); err != nil {
//	    log.Fatal(err)
//	}
//	csvString := buf.String()
//
// # Value Rendering
//
// Every formatter renders leaves the same way: numbers keep their source
// literal, booleans are true/false, and null or empty objects and arrays
// become empty cells. A record lacking a column gets an empty cell.
package output
