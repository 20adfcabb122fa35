package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/carbonlens/carbonlens/internal/ingest"
	"github.com/carbonlens/carbonlens/internal/logging"
)

// roundingScale converts kgCO2 values to hundredths for rounding.
const roundingScale = 100

// defaultMeals is the meal count assumed when a row omits the meals field.
const defaultMeals = 1.0

// Convert turns one raw row into an emission breakdown.
//
// It fails with a field-naming error when a mandatory field is absent, when
// the date does not parse as YYYY-MM-DD, when diet_type is outside the
// factor table, or when a numeric field holds a non-numeric string. Optional
// distance and waste fields default to 0; meals defaults to 1.
//
// Negative inputs propagate arithmetically: there is deliberately no
// negative-value guard, so malformed but superficially valid input is not
// silently reshaped.
//
// Convert is pure. It never touches session state; appending to a Session
// is a separate, explicit step.
func (e *Engine) Convert(ctx context.Context, row ingest.RawRow) (Breakdown, error) {
	log := logging.FromContext(ctx)

	dateStr, err := requiredString(row, ingest.FieldDate)
	if err != nil {
		return Breakdown{}, err
	}
	date, err := time.Parse(dateLayout, strings.TrimSpace(dateStr))
	if err != nil {
		return Breakdown{}, fmt.Errorf("%w: got %q", ErrBadDateFormat, dateStr)
	}

	carKm, err := optionalNumber(row, ingest.FieldCarKm, 0)
	if err != nil {
		return Breakdown{}, err
	}
	busKm, err := optionalNumber(row, ingest.FieldBusKm, 0)
	if err != nil {
		return Breakdown{}, err
	}
	transport := carKm*e.factors.Transport[TransportCar] + busKm*e.factors.Transport[TransportBus]

	dietType, err := requiredString(row, ingest.FieldDietType)
	if err != nil {
		return Breakdown{}, err
	}
	dietFactor, ok := e.factors.Diet[strings.TrimSpace(dietType)]
	if !ok {
		return Breakdown{}, fmt.Errorf("%w: %q", ErrUnknownDietType, dietType)
	}
	meals, err := optionalNumber(row, ingest.FieldMeals, defaultMeals)
	if err != nil {
		return Breakdown{}, err
	}
	diet := dietFactor * meals

	energyKWh, err := requiredNumber(row, ingest.FieldEnergyKWh)
	if err != nil {
		return Breakdown{}, err
	}
	energy := energyKWh * e.factors.EnergyPerKWh

	wasteKg, err := optionalNumber(row, ingest.FieldWasteKg, 0)
	if err != nil {
		return Breakdown{}, err
	}
	waste := wasteKg * e.factors.WastePerKg

	b := Breakdown{
		Date:      date,
		Transport: round2(transport),
		Diet:      round2(diet),
		Energy:    round2(energy),
		Waste:     round2(waste),
	}
	b.Total = round2(b.Transport + b.Diet + b.Energy + b.Waste)

	log.Trace().
		Ctx(ctx).
		Str("component", "engine").
		Str("date", dateStr).
		Float64("total", b.Total).
		Msg("converted row")

	return b, nil
}

// ConvertAll converts rows in order, aborting on the first failure. The
// returned error wraps the underlying conversion error with the 0-based
// index of the offending row; no partial results are returned.
func (e *Engine) ConvertAll(ctx context.Context, rows []ingest.RawRow) ([]Breakdown, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Ctx(ctx).
		Str("component", "engine").
		Str("operation", "convert_all").
		Int("row_count", len(rows)).
		Msg("converting batch")

	breakdowns := make([]Breakdown, 0, len(rows))
	for i, row := range rows {
		b, err := e.Convert(ctx, row)
		if err != nil {
			log.Error().
				Ctx(ctx).
				Str("component", "engine").
				Int("row_index", i).
				Err(err).
				Msg("row conversion failed, aborting batch")
			return nil, &RowError{Index: i, Err: err}
		}
		breakdowns = append(breakdowns, b)
	}
	return breakdowns, nil
}

// requiredString reads a mandatory field as a string.
func requiredString(row ingest.RawRow, field string) (string, error) {
	v, ok := row[field]
	if !ok || v == nil {
		return "", &MissingFieldError{Field: field}
	}
	switch s := v.(type) {
	case string:
		return s, nil
	case json.Number:
		return s.String(), nil
	default:
		return fmt.Sprint(v), nil
	}
}

// requiredNumber reads a mandatory field as a float64.
func requiredNumber(row ingest.RawRow, field string) (float64, error) {
	v, ok := row[field]
	if !ok || v == nil {
		return 0, &MissingFieldError{Field: field}
	}
	return coerceNumber(field, v)
}

// optionalNumber reads an optional field as a float64, returning def when
// the field is absent or empty. A present but non-numeric value is still
// an error: absence is tolerated, garbage is not.
func optionalNumber(row ingest.RawRow, field string, def float64) (float64, error) {
	v, ok := row[field]
	if !ok || v == nil {
		return def, nil
	}
	if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
		return def, nil
	}
	return coerceNumber(field, v)
}

// coerceNumber accepts numeric types and numeric strings.
func coerceNumber(field string, v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("field %q: %w: %q", field, ErrNotNumeric, n.String())
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("field %q: %w: %q", field, ErrNotNumeric, n)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("field %q: %w: %v", field, ErrNotNumeric, v)
	}
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*roundingScale) / roundingScale
}
