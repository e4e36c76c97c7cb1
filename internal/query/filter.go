package query

import (
	"strconv"

	"github.com/vegasq/flatcat/flatten"
)

// compare compares a leaf with a literal using the given operator.
//
// Number leaves compare numerically with number literals, string leaves
// byte-wise with strings, booleans by equality. Any other pairing compares
// the rendered leaf with the literal's text byte-wise.
func compare(left flatten.Value, operator TokenType, right interface{}) bool {
	// Handle null on either side
	if right == nil || left.Kind == flatten.Null {
		same := right == nil && left.Kind == flatten.Null
		switch operator {
		case TokenEqual:
			return same
		case TokenNotEqual:
			return !same
		default:
			return false
		}
	}

	switch r := right.(type) {
	case float64:
		if left.Kind == flatten.Number {
			if l, err := strconv.ParseFloat(left.Text, 64); err == nil {
				return compareNumbers(l, operator, r)
			}
		}
	case string:
		if left.Kind == flatten.String {
			return compareStrings(left.Text, operator, r)
		}
	case bool:
		if left.Kind == flatten.Bool {
			return compareBools(left.Text == "true", operator, r)
		}
	}

	return compareStrings(left.String(), operator, literalText(right))
}

// literalText renders a parsed literal the way it would appear in a cell.
func literalText(v interface{}) string {
	switch v := v.(type) {
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case string:
		return v
	default:
		return ""
	}
}

// compareNumbers compares two numbers
func compareNumbers(left float64, operator TokenType, right float64) bool {
	switch operator {
	case TokenEqual:
		return left == right
	case TokenNotEqual:
		return left != right
	case TokenLess:
		return left < right
	case TokenGreater:
		return left > right
	case TokenLessEqual:
		return left <= right
	case TokenGreaterEqual:
		return left >= right
	default:
		return false
	}
}

// compareStrings compares two strings (case-sensitive)
func compareStrings(left string, operator TokenType, right string) bool {
	switch operator {
	case TokenEqual:
		return left == right
	case TokenNotEqual:
		return left != right
	case TokenLess:
		return left < right
	case TokenGreater:
		return left > right
	case TokenLessEqual:
		return left <= right
	case TokenGreaterEqual:
		return left >= right
	default:
		return false
	}
}

// compareBools compares two booleans
func compareBools(left bool, operator TokenType, right bool) bool {
	switch operator {
	case TokenEqual:
		return left == right
	case TokenNotEqual:
		return left != right
	default:
		return false
	}
}

// Apply returns the records matching filter, keeping their order. A nil
// filter keeps every record.
func Apply(records []flatten.Record, filter Expression) []flatten.Record {
	if filter == nil {
		return records
	}

	filtered := make([]flatten.Record, 0, len(records))
	for _, rec := range records {
		if filter.Evaluate(rec) {
			filtered = append(filtered, rec)
		}
	}

	return filtered
}
