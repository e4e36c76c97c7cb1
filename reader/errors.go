package reader

import (
	"errors"
	"fmt"
)

var (
	// ErrFileRead matches every FileReadError with errors.Is.
	ErrFileRead = errors.New("file read error")

	// ErrParse matches every ParseError with errors.Is.
	ErrParse = errors.New("parse error")
)

// FileReadError is returned when an input file is missing or cannot be read.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", displayPath(e.Path), e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

func (e *FileReadError) Is(target error) bool { return target == ErrFileRead }

// ParseError is returned when input content is not valid for its format.
type ParseError struct {
	Path string
	// Line is the 1-based line of a JSON Lines input, 0 otherwise.
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("failed to parse %s line %d: %v", displayPath(e.Path), e.Line, e.Err)
	}
	return fmt.Sprintf("failed to parse %s: %v", displayPath(e.Path), e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

func displayPath(path string) string {
	switch path {
	case "":
		return "input"
	case StdinPath:
		return "standard input"
	default:
		return path
	}
}
