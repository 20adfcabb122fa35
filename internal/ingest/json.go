package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/carbonlens/carbonlens/internal/logging"
)

// ValidateJSON reports whether the JSON file at path is an array of objects
// in which every object individually contains all mandatory fields. A single
// non-conforming object invalidates the whole source. Any read or decode
// failure yields false, never an error.
func ValidateJSON(path string) bool {
	return ValidateJSONWithContext(context.Background(), path)
}

// ValidateJSONWithContext is ValidateJSON with a context carrying the logger.
func ValidateJSONWithContext(ctx context.Context, path string) bool {
	log := logging.FromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Debug().
			Ctx(ctx).
			Str("component", "ingest").
			Str("source", path).
			Err(err).
			Msg("json validation failed to read source")
		return false
	}

	rows, err := ParseJSON(data)
	if err != nil {
		log.Debug().
			Ctx(ctx).
			Str("component", "ingest").
			Str("source", path).
			Err(err).
			Msg("json validation failed to decode source")
		return false
	}

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

// ParseJSON decodes a JSON array of objects into raw rows. Numbers are kept
// as json.Number so the engine's coercion decides how to interpret them.
func ParseJSON(data []byte) ([]RawRow, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var rows []RawRow
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("decoding json array: %w", err)
	}
	return rows, nil
}

// LoadJSON loads and parses the JSON file at path into raw rows.
func LoadJSON(path string) ([]RawRow, error) {
	return LoadJSONWithContext(context.Background(), path)
}

// LoadJSONWithContext loads and parses the JSON file at path using the
// logger carried in ctx.
func LoadJSONWithContext(ctx context.Context, path string) ([]RawRow, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Ctx(ctx).
		Str("component", "ingest").
		Str("operation", "load_json").
		Str("source", path).
		Msg("loading json source")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading json file: %w", err)
	}

	rows, err := ParseJSON(data)
	if err != nil {
		log.Error().
			Ctx(ctx).
			Str("component", "ingest").
			Str("source", path).
			Err(err).
			Msg("failed to parse json source")
		return nil, err
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "ingest").
		Int("row_count", len(rows)).
		Msg("json source loaded")

	return rows, nil
}
