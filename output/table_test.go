package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestTableFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewTableFormatter(&buf)

	if err := formatter.Format(mustTable(t, `[{"user":{"name":"alice"},"id":1},{"id":2}]`)); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"id", "user.name", "alice", "2"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q:\n%s", want, out)
		}
	}
	// headers keep their case and dots
	if strings.Contains(out, "USER") {
		t.Errorf("headers should not be reformatted:\n%s", out)
	}
}

func TestTableFormatter_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTableFormatter(&buf).Format(mustTable(t, `[]`)); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty table should write nothing, got %q", buf.String())
	}
}

func TestTableFormatter_MaxWidth(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewTableFormatter(&buf)
	formatter.MaxWidth = 6

	if err := formatter.Format(mustTable(t, `[{"k":"abcdefghijkl"}]`)); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if strings.Contains(buf.String(), "abcdefghijkl") {
		t.Errorf("cell should be truncated:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "abcde~") {
		t.Errorf("cell should end with the truncation marker:\n%s", buf.String())
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"toolong", 4, "too~"},
		{"日本語テキスト", 5, "日本~"},
		{"abc", 1, "a"},
	}

	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestNew(t *testing.T) {
	for _, name := range Formats {
		if _, err := New(name, &bytes.Buffer{}, Options{}); err != nil {
			t.Errorf("New(%q) error = %v", name, err)
		}
	}

	_, err := New("xml", &bytes.Buffer{}, Options{})
	if err == nil || !strings.Contains(err.Error(), "unsupported format 'xml'") {
		t.Errorf("New(xml) error = %v, want unsupported format", err)
	}
}
