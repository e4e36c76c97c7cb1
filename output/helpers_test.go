package output

import (
	"strings"
	"testing"

	"github.com/segmentio/encoding/json"

	"github.com/vegasq/flatcat/flatten"
	"github.com/vegasq/flatcat/schema"
)

// mustTable decodes a JSON array and builds the table the pipeline would.
func mustTable(t *testing.T, doc string) *schema.Table {
	t.Helper()

	dec := json.NewDecoder(strings.NewReader(doc))
	dec.UseNumber()
	var raw []interface{}
	if err := dec.Decode(&raw); err != nil {
		t.Fatalf("failed to decode test input: %v", err)
	}

	records := make([]flatten.Record, 0, len(raw))
	for _, r := range raw {
		v, err := flatten.FromInterface(r)
		if err != nil {
			t.Fatalf("FromInterface() error = %v", err)
		}
		rec, err := flatten.Flatten(v)
		if err != nil {
			t.Fatalf("Flatten() error = %v", err)
		}
		records = append(records, rec)
	}
	return schema.NewTable(records)
}
