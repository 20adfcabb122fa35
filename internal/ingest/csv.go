package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/carbonlens/carbonlens/internal/logging"
)

// ValidateCSV reports whether the CSV file at path exposes every mandatory
// field in its header row. Any read or parse failure yields false, never
// an error: downstream conversion performs its own fine-grained checks.
func ValidateCSV(path string) bool {
	return ValidateCSVWithContext(context.Background(), path)
}

// ValidateCSVWithContext is ValidateCSV with a context carrying the logger.
// Only the header row is inspected; data rows are not read.
func ValidateCSVWithContext(ctx context.Context, path string) bool {
	log := logging.FromContext(ctx)

	f, err := os.Open(path)
	if err != nil {
		log.Debug().
			Ctx(ctx).
			Str("component", "ingest").
			Str("source", path).
			Err(err).
			Msg("csv validation failed to open source")
		return false
	}
	defer func() { _ = f.Close() }()

	header, err := csv.NewReader(f).Read()
	if err != nil {
		log.Debug().
			Ctx(ctx).
			Str("component", "ingest").
			Str("source", path).
			Err(err).
			Msg("csv validation failed to read header")
		return false
	}

	return headerHasMandatoryFields(header)
}

// ParseCSV reads header-keyed rows from r. The first record is the header;
// each subsequent record becomes a RawRow keyed by the header names. Records
// shorter than the header simply omit the trailing fields; extra values
// beyond the header are dropped.
func ParseCSV(r io.Reader) ([]RawRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptySource
	}
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	var rows []RawRow
	for {
		record, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("reading csv record: %w", readErr)
		}

		row := make(RawRow, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// LoadCSV loads and parses the CSV file at path into raw rows.
func LoadCSV(path string) ([]RawRow, error) {
	return LoadCSVWithContext(context.Background(), path)
}

// LoadCSVWithContext loads and parses the CSV file at path using the logger
// carried in ctx.
func LoadCSVWithContext(ctx context.Context, path string) ([]RawRow, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Ctx(ctx).
		Str("component", "ingest").
		Str("operation", "load_csv").
		Str("source", path).
		Msg("loading csv source")

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading csv file: %w", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := ParseCSV(f)
	if err != nil {
		log.Error().
			Ctx(ctx).
			Str("component", "ingest").
			Str("source", path).
			Err(err).
			Msg("failed to parse csv source")
		return nil, err
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "ingest").
		Int("row_count", len(rows)).
		Msg("csv source loaded")

	return rows, nil
}

// headerHasMandatoryFields reports whether the header contains every
// mandatory field name.
func headerHasMandatoryFields(header []string) bool {
	keys := make(map[string]bool, len(header))
	for _, name := range header {
		keys[name] = true
	}
	return hasMandatoryKeys(keys)
}
