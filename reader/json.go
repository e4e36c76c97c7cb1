package reader

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/segmentio/encoding/json"

	"github.com/vegasq/flatcat/flatten"
)

// maxLineSize bounds a single JSON Lines record.
const maxLineSize = 64 * 1024 * 1024

// Decode reads a JSON array from r and returns its elements as records.
//
// Numbers keep their source literal. Elements are not checked for being
// objects here; that is left to the flattener so callers can choose how to
// treat them.
func Decode(r io.Reader) ([]flatten.Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{Err: errors.New("empty input, want a JSON array")}
		}
		return nil, &ParseError{Err: err}
	}

	items, ok := raw.([]interface{})
	if !ok {
		return nil, &ParseError{Err: fmt.Errorf("top-level value is %s, want a JSON array", describeJSON(raw))}
	}

	var extra interface{}
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, &ParseError{Err: errors.New("unexpected data after the top-level array")}
	}

	return toValues(items)
}

// DecodeLines reads one JSON value per line. Blank lines are skipped.
func DecodeLines(r io.Reader) ([]flatten.Value, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var records []flatten.Value
	line := 0
	for scanner.Scan() {
		line++
		text := bytes.TrimSpace(scanner.Bytes())
		if len(text) == 0 {
			continue
		}

		dec := json.NewDecoder(bytes.NewReader(text))
		dec.UseNumber()
		var raw interface{}
		if err := dec.Decode(&raw); err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}
		var extra interface{}
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, &ParseError{Line: line, Err: errors.New("more than one value on the line")}
		}

		v, err := flatten.FromInterface(raw)
		if err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}
		records = append(records, v)
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &ParseError{Line: line + 1, Err: fmt.Errorf("line longer than %d bytes", maxLineSize)}
		}
		return nil, err
	}

	if records == nil {
		records = []flatten.Value{}
	}
	return records, nil
}

func toValues(items []interface{}) ([]flatten.Value, error) {
	records := make([]flatten.Value, len(items))
	for i, item := range items {
		v, err := flatten.FromInterface(item)
		if err != nil {
			return nil, &ParseError{Err: flatten.AtIndex(err, i)}
		}
		records[i] = v
	}
	return records, nil
}

func describeJSON(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]interface{}:
		return "an object"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	case json.Number:
		return "a number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
