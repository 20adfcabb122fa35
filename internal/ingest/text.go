package ingest

import (
	"context"
	"strings"

	"github.com/carbonlens/carbonlens/internal/logging"
)

// ParseText normalizes text handed over by an OCR adapter. The text is
// first tried as a JSON array of objects; when that fails it is treated as
// a CSV-shaped blob (header line plus data lines). In both cases the source
// must expose the mandatory fields or ErrMissingFields is returned.
//
// Image decoding and text-extraction quality are entirely the adapter's
// problem; this function only sees the resulting text.
func ParseText(text string) ([]RawRow, error) {
	return ParseTextWithContext(context.Background(), text)
}

// ParseTextWithContext is ParseText with a context carrying the logger.
func ParseTextWithContext(ctx context.Context, text string) ([]RawRow, error) {
	log := logging.FromContext(ctx)

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrEmptySource
	}

	if rows, err := ParseJSON([]byte(trimmed)); err == nil {
		log.Debug().
			Ctx(ctx).
			Str("component", "ingest").
			Str("operation", "parse_text").
			Int("row_count", len(rows)).
			Msg("extracted text parsed as json")
		if !rowsHaveMandatoryFields(rows) {
			return nil, ErrMissingFields
		}
		return rows, nil
	}

	// Not JSON; treat the blob as CSV.
	lines := splitLines(trimmed)
	header := strings.Split(lines[0], ",")
	if !headerHasMandatoryFields(trimFields(header)) {
		return nil, ErrMissingFields
	}

	rows, err := ParseCSV(strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		return nil, err
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "ingest").
		Str("operation", "parse_text").
		Int("row_count", len(rows)).
		Msg("extracted text parsed as csv")

	return rows, nil
}

// rowsHaveMandatoryFields reports whether every row individually contains
// all mandatory fields.
func rowsHaveMandatoryFields(rows []RawRow) bool {
	for _, row := range rows {
		keys := make(map[string]bool, len(row))
		for k := range row {
			keys[k] = true
		}
		if !hasMandatoryKeys(keys) {
			return false
		}
	}
	return true
}

// splitLines splits text into non-empty lines. OCR output tends to carry
// stray blank lines between records.
func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimSpace(line))
		}
	}
	return lines
}

// trimFields trims surrounding whitespace from each field name.
func trimFields(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = strings.TrimSpace(f)
	}
	return out
}
