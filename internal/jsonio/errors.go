package jsonio

import "fmt"

// NotFoundError signals a missing input JSON file.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("JSON file not found: %s", e.Path)
}

// Domain marks NotFoundError as an expected domain failure.
func (e *NotFoundError) Domain() {}

// ParseError signals an unreadable or malformed input JSON file.
type ParseError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Message, e.Path, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Path)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Domain marks ParseError as an expected domain failure.
func (e *ParseError) Domain() {}
