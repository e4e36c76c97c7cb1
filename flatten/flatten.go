package flatten

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Separator joins path segments.
const Separator = "."

var keyEscaper = strings.NewReplacer(`\`, `\\`, Separator, `\`+Separator)

// Record maps paths to leaf values.
type Record map[string]Value

// Paths returns the record's paths in sorted order.
func (r Record) Paths() []string {
	paths := make([]string, 0, len(r))
	for p := range r {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Lookup returns the rendered cell for path and whether the path exists.
func (r Record) Lookup(path string) (string, bool) {
	v, ok := r[path]
	if !ok {
		return "", false
	}
	return v.String(), true
}

// EscapeKey escapes an object key so it forms a single path segment.
func EscapeKey(key string) string {
	if !strings.ContainsAny(key, `\`+Separator) {
		return key
	}
	return keyEscaper.Replace(key)
}

// Flatten walks a composite value and returns one entry per leaf.
//
// It returns an InvalidInputError when v is not an object or an array, or
// when the nesting exceeds MaxDepth.
func Flatten(v Value) (Record, error) {
	if !v.IsComposite() {
		return nil, &InvalidInputError{Index: -1, Kind: v.Kind}
	}

	out := make(Record)
	if err := walk(out, "", v, 0); err != nil {
		return nil, err
	}
	return out, nil
}

func walk(out Record, path string, v Value, depth int) error {
	if depth > MaxDepth {
		return &InvalidInputError{Index: -1, Reason: fmt.Sprintf("nesting deeper than %d levels", MaxDepth)}
	}

	// Scalars and empty composites are leaves. The top level itself is
	// never a leaf.
	if v.Len() == 0 {
		if depth > 0 {
			out[path] = v
		}
		return nil
	}

	// Below the top level the separator is always written, so an empty key
	// still yields a distinct path.
	join := func(segment string) string {
		if depth == 0 {
			return segment
		}
		return path + Separator + segment
	}

	switch v.Kind {
	case Object:
		for key, child := range v.Fields {
			if err := walk(out, join(EscapeKey(key)), child, depth+1); err != nil {
				return err
			}
		}
	case Array:
		for i, child := range v.Items {
			if err := walk(out, join(strconv.Itoa(i)), child, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}
