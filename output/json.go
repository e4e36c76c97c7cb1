package output

import (
	"io"

	"github.com/segmentio/encoding/json"

	"github.com/vegasq/flatcat/schema"
)

// JSONFormatter outputs flattened records as JSON Lines format
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes one JSON object per record, keyed by path. Only paths the
// record carries are written; numbers are emitted as their source literal
// in a string.
func (j *JSONFormatter) Format(t *schema.Table) error {
	encoder := json.NewEncoder(j.writer)
	for _, rec := range t.Records {
		obj := make(map[string]interface{}, len(rec))
		for path, v := range rec {
			obj[path] = v.Interface()
		}
		if err := encoder.Encode(obj); err != nil {
			return err
		}
	}
	return nil
}
