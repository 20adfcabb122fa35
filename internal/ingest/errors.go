package ingest

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors for source-level failures. Comparable with errors.Is().
var (
	// ErrUnsupportedFormat indicates a source that is neither CSV, JSON,
	// nor extracted text.
	ErrUnsupportedFormat = constError("unsupported file format")

	// ErrMissingFields indicates a source that does not expose every
	// mandatory field.
	ErrMissingFields = constError(
		"required fields missing: " + FieldDate + ", " + FieldDietType + ", " + FieldEnergyKWh)

	// ErrEmptySource indicates a source with no rows at all, not even a header.
	ErrEmptySource = constError("source contains no data")
)
