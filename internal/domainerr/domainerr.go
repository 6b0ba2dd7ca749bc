// Package domainerr distinguishes expected, named failure kinds from
// unexpected errors at the CLI boundary.
package domainerr

import "errors"

// domainError is implemented by every typed error in the taxonomy.
type domainError interface {
	error
	Domain()
}

// Is reports whether err, or any error it wraps, is an expected domain
// error. Domain errors get a one-line user-facing message; everything else
// is treated as an unexpected fatal with detail sent to the log sink only.
func Is(err error) bool {
	for err != nil {
		if _, ok := err.(domainError); ok {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}
