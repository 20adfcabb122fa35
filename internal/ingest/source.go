package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/carbonlens/carbonlens/internal/logging"
)

// Format identifies the shape of a raw record source.
type Format string

// Supported source formats.
const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// DetectFormat determines the source format from the file extension.
// Text files carry OCR-extracted content from an image adapter.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	case ".txt":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Validate reports whether the source at path exposes all mandatory fields,
// dispatching on the detected format. Unsupported formats are invalid.
func Validate(ctx context.Context, path string) bool {
	format, err := DetectFormat(path)
	if err != nil {
		return false
	}

	switch format {
	case FormatCSV:
		return ValidateCSVWithContext(ctx, path)
	case FormatJSON:
		return ValidateJSONWithContext(ctx, path)
	case FormatText:
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return false
		}
		_, parseErr := ParseTextWithContext(ctx, string(data))
		return parseErr == nil
	default:
		return false
	}
}

// LoadFile validates and loads the source at path into raw rows. A source
// that fails validation is rejected with ErrMissingFields before any row is
// handed to the engine.
func LoadFile(ctx context.Context, path string) ([]RawRow, error) {
	log := logging.FromContext(ctx)

	format, err := DetectFormat(path)
	if err != nil {
		log.Error().
			Ctx(ctx).
			Str("component", "ingest").
			Str("source", path).
			Err(err).
			Msg("unsupported source format")
		return nil, err
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "ingest").
		Str("operation", "load_file").
		Str("source", path).
		Str("format", string(format)).
		Msg("loading source")

	switch format {
	case FormatCSV:
		if !ValidateCSVWithContext(ctx, path) {
			return nil, fmt.Errorf("invalid csv source %q: %w", path, ErrMissingFields)
		}
		return LoadCSVWithContext(ctx, path)

	case FormatJSON:
		if !ValidateJSONWithContext(ctx, path) {
			return nil, fmt.Errorf("invalid json source %q: %w", path, ErrMissingFields)
		}
		return LoadJSONWithContext(ctx, path)

	case FormatText:
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil, fmt.Errorf("reading text file: %w", readErr)
		}
		return ParseTextWithContext(ctx, string(data))

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}
