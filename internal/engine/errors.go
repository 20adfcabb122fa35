package engine

import "fmt"

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors for row conversion. Comparable with errors.Is().
var (
	// ErrUnknownDietType indicates a diet_type outside the factor table.
	ErrUnknownDietType = constError("unknown diet type")

	// ErrBadDateFormat indicates a date that does not parse as YYYY-MM-DD.
	ErrBadDateFormat = constError("date must match YYYY-MM-DD")

	// ErrNotNumeric indicates a field value that cannot be read as a number.
	ErrNotNumeric = constError("value is not numeric")
)

// MissingFieldError reports a mandatory field absent from a row.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// RowError wraps a conversion failure with the 0-based index of the row
// that caused it. Batch conversion aborts on the first RowError.
type RowError struct {
	Index int
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Index, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }
