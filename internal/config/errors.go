package config

import "fmt"

// Error represents a fatal configuration problem: missing file, malformed
// JSON or missing required keys.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("config error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Domain marks Error as an expected domain failure.
func (e *Error) Domain() {}
