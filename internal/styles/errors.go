package styles

import "fmt"

// Error represents a fatal problem with the visual style configuration.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("style error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("style error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Domain marks Error as an expected domain failure.
func (e *Error) Domain() {}
