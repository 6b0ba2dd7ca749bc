package pipeline

import "fmt"

// OutputPathError signals a missing per-language file configuration or a
// computed output path that escaped the configured output directory.
type OutputPathError struct {
	Message string
}

func (e *OutputPathError) Error() string {
	return fmt.Sprintf("output path error: %s", e.Message)
}

// Domain marks OutputPathError as an expected domain failure.
func (e *OutputPathError) Domain() {}
