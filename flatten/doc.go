// Package flatten turns nested JSON-like values into flat path/value maps.
//
// A record is held as a Value, a tagged variant covering the six JSON kinds.
// Flatten walks a composite Value and returns a Record keyed by path strings.
//
// # Path Convention
//
// Object keys and array indices become path segments joined by Separator:
//
//	{"a": 1, "b": {"c": 2}, "x": [true, null]}
//
// flattens to the paths a, b.c, x.0 and x.1.
//
// Keys that themselves contain the separator or a backslash are escaped with
// a backslash, so {"a.b": 1} produces the path a\.b and never collides with
// {"a": {"b": 1}}.
//
// # Leaves
//
// Strings, numbers, booleans and null are leaves. An empty object or an empty
// array is a leaf too and renders as an empty string, which keeps the column
// present in the header even when no record has data below it.
//
// # Basic Usage
//
//	v, err := flatten.FromInterface(decoded)
//	if err != nil {
//	    return err
//	}
//	rec, err := flatten.Flatten(v)
//	if err != nil {
//	    return err
//	}
//	for _, path := range rec.Paths() {
//	    fmt.Printf("%s=%s\n", path, rec[path])
//	}
package flatten
