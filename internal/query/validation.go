package query

import (
	"errors"
	"fmt"
)

// Validation constants to prevent DoS and resource exhaustion
const (
	// MaxQueryLength is the maximum allowed filter length (64KB)
	MaxQueryLength = 64 * 1024

	// MaxTokens is the maximum number of tokens in a filter
	MaxTokens = 1000

	// MaxExpressionDepth is the maximum nesting depth for expressions
	MaxExpressionDepth = 100

	// MaxPathLength is the maximum length for a path
	MaxPathLength = 4096
)

var (
	// ErrQueryTooLong is returned when a filter exceeds MaxQueryLength
	ErrQueryTooLong = errors.New("filter too long")

	// ErrTooManyTokens is returned when a filter has too many tokens
	ErrTooManyTokens = errors.New("too many tokens in filter")

	// ErrExpressionTooDeep is returned when expression nesting exceeds limit
	ErrExpressionTooDeep = errors.New("expression nesting too deep")

	// ErrPathTooLong is returned when a path is too long
	ErrPathTooLong = errors.New("path too long")
)

// ValidateQuery performs security validation on filter input
func ValidateQuery(query string) error {
	if len(query) > MaxQueryLength {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrQueryTooLong, len(query), MaxQueryLength)
	}
	return nil
}

// ValidatePath validates path length
func ValidatePath(path string) error {
	if len(path) > MaxPathLength {
		return fmt.Errorf("%w: %d chars (max %d)", ErrPathTooLong, len(path), MaxPathLength)
	}
	return nil
}

// ValidateTokens validates token count
func ValidateTokens(tokens []Token) error {
	if len(tokens) > MaxTokens {
		return fmt.Errorf("%w: %d tokens (max %d)", ErrTooManyTokens, len(tokens), MaxTokens)
	}
	return nil
}

// ExpressionDepthCounter tracks expression nesting depth
type ExpressionDepthCounter struct {
	depth    int
	maxDepth int
}

// NewExpressionDepthCounter creates a new depth counter
func NewExpressionDepthCounter() *ExpressionDepthCounter {
	return &ExpressionDepthCounter{depth: 0, maxDepth: MaxExpressionDepth}
}

// Enter increments depth and returns error if limit exceeded
func (c *ExpressionDepthCounter) Enter() error {
	c.depth++
	if c.depth > c.maxDepth {
		return fmt.Errorf("%w: %d (max %d)", ErrExpressionTooDeep, c.depth, c.maxDepth)
	}
	return nil
}

// Exit decrements depth
func (c *ExpressionDepthCounter) Exit() {
	c.depth--
}
