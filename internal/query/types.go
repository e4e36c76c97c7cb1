// Package query parses and evaluates record filters.
//
// A filter is a boolean expression over flattened paths: comparisons joined
// with AND/OR, optionally grouped with parentheses. The package includes a
// lexer for tokenization, a parser for building ASTs, and an evaluator for
// filtering flattened records.
//
// Example usage:
//
//	f, err := Parse(`user.age > 30 AND user.tags.0 = "admin"`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	kept := Apply(records, f)
package query

import "github.com/vegasq/flatcat/flatten"

// TokenType represents the type of a token
type TokenType int

const (
	// Keywords
	TokenWhere TokenType = iota
	TokenAnd
	TokenOr

	// Operators
	TokenEqual        // =
	TokenNotEqual     // !=
	TokenLess         // <
	TokenGreater      // >
	TokenLessEqual    // <=
	TokenGreaterEqual // >=
	TokenLParen       // (
	TokenRParen       // )

	// Literals
	TokenString
	TokenNumber
	TokenIdent
	TokenBool
	TokenNull

	// Special
	TokenEOF
	TokenError
)

var tokenNames = map[TokenType]string{
	TokenWhere:        "WHERE",
	TokenAnd:          "AND",
	TokenOr:           "OR",
	TokenEqual:        "=",
	TokenNotEqual:     "!=",
	TokenLess:         "<",
	TokenGreater:      ">",
	TokenLessEqual:    "<=",
	TokenGreaterEqual: ">=",
	TokenLParen:       "(",
	TokenRParen:       ")",
	TokenString:       "string",
	TokenNumber:       "number",
	TokenIdent:        "path",
	TokenBool:         "boolean",
	TokenNull:         "null",
	TokenEOF:          "end of input",
	TokenError:        "invalid character",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "unknown"
}

// Token represents a lexical token
type Token struct {
	Type  TokenType
	Value string
}

// Expression represents a boolean filter expression
type Expression interface {
	Evaluate(rec flatten.Record) bool
}

// BinaryExpr represents a binary expression (AND/OR)
type BinaryExpr struct {
	Left     Expression
	Operator TokenType // TokenAnd or TokenOr
	Right    Expression
}

// ComparisonExpr compares the leaf at Path with a literal.
//
// Value holds a string, a float64, a bool, or nil for null.
type ComparisonExpr struct {
	Path     string
	Operator TokenType
	Value    interface{}
}

// Evaluate evaluates a binary expression
func (b *BinaryExpr) Evaluate(rec flatten.Record) bool {
	switch b.Operator {
	case TokenAnd:
		return b.Left.Evaluate(rec) && b.Right.Evaluate(rec)
	case TokenOr:
		return b.Left.Evaluate(rec) || b.Right.Evaluate(rec)
	default:
		return false
	}
}

// Evaluate evaluates a comparison expression. A record without the path
// only satisfies !=.
func (c *ComparisonExpr) Evaluate(rec flatten.Record) bool {
	value, exists := rec[c.Path]
	if !exists {
		return c.Operator == TokenNotEqual
	}

	return compare(value, c.Operator, c.Value)
}
