package flatten

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/segmentio/encoding/json"
)

// MaxDepth is the deepest nesting FromInterface and Flatten accept.
const MaxDepth = 512

// Kind identifies which variant a Value holds.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Object
	Array
)

// String returns the JSON name of the kind.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case Object:
		return "object"
	case Array:
		return "array"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is one node of a JSON document.
//
// Text carries the payload of scalar kinds: the string itself, the number
// literal as it appeared in the source, or "true"/"false". Fields and Items
// are only set for Object and Array.
type Value struct {
	Kind   Kind
	Text   string
	Fields map[string]Value
	Items  []Value
}

func NullValue() Value { return Value{Kind: Null} }

func BoolValue(b bool) Value {
	return Value{Kind: Bool, Text: strconv.FormatBool(b)}
}

// NumberValue wraps a number literal. The literal is kept verbatim.
func NumberValue(literal string) Value {
	return Value{Kind: Number, Text: literal}
}

func StringValue(s string) Value { return Value{Kind: String, Text: s} }

func ObjectValue(fields map[string]Value) Value {
	if fields == nil {
		fields = map[string]Value{}
	}
	return Value{Kind: Object, Fields: fields}
}

func ArrayValue(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{Kind: Array, Items: items}
}

// IsComposite reports whether v is an object or an array.
func (v Value) IsComposite() bool {
	return v.Kind == Object || v.Kind == Array
}

// Len returns the number of children of a composite, zero for scalars.
func (v Value) Len() int {
	switch v.Kind {
	case Object:
		return len(v.Fields)
	case Array:
		return len(v.Items)
	default:
		return 0
	}
}

// String renders a leaf for a CSV cell. Null and empty composites render
// as the empty string.
func (v Value) String() string {
	switch v.Kind {
	case Null, Object, Array:
		return ""
	default:
		return v.Text
	}
}

// Interface converts a leaf back to a plain Go value for encoders.
// Numbers stay strings so the source literal survives.
func (v Value) Interface() interface{} {
	switch v.Kind {
	case Null:
		return nil
	case Bool:
		return v.Text == "true"
	case Object, Array:
		return ""
	default:
		return v.Text
	}
}

// FromInterface converts the output of a JSON decoder or a parquet row map
// into a Value tree.
func FromInterface(x interface{}) (Value, error) {
	return fromInterface(x, 0)
}

func fromInterface(x interface{}, depth int) (Value, error) {
	if depth > MaxDepth {
		return Value{}, &InvalidInputError{Index: -1, Reason: fmt.Sprintf("nesting deeper than %d levels", MaxDepth)}
	}

	switch val := x.(type) {
	case nil:
		return NullValue(), nil
	case Value:
		return val, nil
	case bool:
		return BoolValue(val), nil
	case string:
		return StringValue(val), nil
	case []byte:
		return StringValue(string(val)), nil
	case json.Number:
		return NumberValue(val.String()), nil
	case int:
		return NumberValue(strconv.FormatInt(int64(val), 10)), nil
	case int8:
		return NumberValue(strconv.FormatInt(int64(val), 10)), nil
	case int16:
		return NumberValue(strconv.FormatInt(int64(val), 10)), nil
	case int32:
		return NumberValue(strconv.FormatInt(int64(val), 10)), nil
	case int64:
		return NumberValue(strconv.FormatInt(val, 10)), nil
	case uint:
		return NumberValue(strconv.FormatUint(uint64(val), 10)), nil
	case uint8:
		return NumberValue(strconv.FormatUint(uint64(val), 10)), nil
	case uint16:
		return NumberValue(strconv.FormatUint(uint64(val), 10)), nil
	case uint32:
		return NumberValue(strconv.FormatUint(uint64(val), 10)), nil
	case uint64:
		return NumberValue(strconv.FormatUint(val, 10)), nil
	case float32:
		return floatValue(float64(val), 32)
	case float64:
		return floatValue(val, 64)
	case time.Time:
		return StringValue(val.UTC().Format(time.RFC3339Nano)), nil
	case map[string]interface{}:
		fields := make(map[string]Value, len(val))
		for k, child := range val {
			cv, err := fromInterface(child, depth+1)
			if err != nil {
				return Value{}, err
			}
			fields[k] = cv
		}
		return ObjectValue(fields), nil
	case []interface{}:
		items := make([]Value, len(val))
		for i, child := range val {
			cv, err := fromInterface(child, depth+1)
			if err != nil {
				return Value{}, err
			}
			items[i] = cv
		}
		return ArrayValue(items...), nil
	default:
		return Value{}, &InvalidInputError{Index: -1, Reason: fmt.Sprintf("unsupported value type %T", x)}
	}
}

func floatValue(f float64, bits int) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, &InvalidInputError{Index: -1, Reason: fmt.Sprintf("non-finite number %v", f)}
	}
	// Plain notation in the range where JSON encoders print it that way.
	if abs := math.Abs(f); abs == 0 || (abs >= 1e-6 && abs < 1e21) {
		return NumberValue(strconv.FormatFloat(f, 'f', -1, bits)), nil
	}
	return NumberValue(strconv.FormatFloat(f, 'g', -1, bits)), nil
}
