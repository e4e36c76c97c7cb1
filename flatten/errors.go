package flatten

import (
	"errors"
	"fmt"
)

// ErrInvalidInput matches every InvalidInputError with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports a value that cannot be flattened into a row.
type InvalidInputError struct {
	// Index is the record position in the input, or -1 when unknown.
	Index  int
	Kind   Kind
	Reason string
}

func (e *InvalidInputError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = fmt.Sprintf("top-level %s cannot be flattened", e.Kind)
	}
	if e.Index >= 0 {
		return fmt.Sprintf("invalid input: record %d: %s", e.Index, reason)
	}
	return "invalid input: " + reason
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// AtIndex attaches a record position to err when it is an InvalidInputError.
// Other errors are returned unchanged.
func AtIndex(err error, index int) error {
	var iie *InvalidInputError
	if errors.As(err, &iie) {
		cp := *iie
		cp.Index = index
		return &cp
	}
	return err
}
