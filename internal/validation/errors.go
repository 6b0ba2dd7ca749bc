package validation

// DataError represents CV data that fails the required schema. Violations
// holds every broken rule for display and assertions.
type DataError struct {
	Message    string
	Violations []string
}

func (e *DataError) Error() string {
	return e.Message
}

// Domain marks DataError as an expected domain failure.
func (e *DataError) Domain() {}
