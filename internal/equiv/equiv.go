// Package equiv converts aggregate carbon footprints (kgCO2) into
// relatable real-world equivalencies such as miles driven or smartphones
// charged, using EPA-published conversion factors.
package equiv

import (
	"fmt"
	"math"
)

// EPA formula constants (2024 edition).
// Source: https://www.epa.gov/energy/greenhouse-gas-equivalencies-calculator
//
// Each constant is the kgCO2 equivalent of one unit of the activity; the
// equivalency is kg / factor.
const (
	// EPAMilesDrivenFactor is kgCO2 per mile for an average passenger vehicle.
	EPAMilesDrivenFactor = 0.192

	// EPASmartphoneChargeFactor is kgCO2 per smartphone full charge.
	EPASmartphoneChargeFactor = 0.00822

	// EPATreeSeedlingFactor is kgCO2 absorbed per tree seedling grown for 10 years.
	EPATreeSeedlingFactor = 60.0
)

// MinEquivalencyThresholdKg is the minimum kgCO2 for showing equivalencies.
// Below it the figures become meaninglessly small.
const MinEquivalencyThresholdKg = 1.0

// Sentinel errors, comparable with errors.Is().
var (
	// ErrNegativeValue indicates a negative carbon value.
	ErrNegativeValue = constError("negative carbon value")

	// ErrCalculationOverflow indicates a value too large to calculate safely.
	ErrCalculationOverflow = constError("calculation overflow")
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Result is a single calculated equivalency.
type Result struct {
	// Value is the raw calculated equivalency value.
	Value float64 `json:"value"`
	// FormattedValue is the display-ready string with separators/scaling.
	FormattedValue string `json:"formatted_value"`
	// Label is the descriptive phrase (e.g., "miles driven").
	Label string `json:"label"`
}

// Output contains all equivalency results for display.
type Output struct {
	// InputKg is the input value in kgCO2.
	InputKg float64 `json:"input_kg"`
	// Results contains calculated equivalencies in priority order.
	Results []Result `json:"results"`
	// DisplayText is the full prose format for CLI output.
	DisplayText string `json:"display_text"`
	// IsEmpty reports that no equivalencies were calculated.
	IsEmpty bool `json:"is_empty"`
}

// Calculate computes carbon equivalencies for kg of CO2.
//
// Values below MinEquivalencyThresholdKg yield an empty output with no
// error. Negative values are rejected: emissions cannot be negative here,
// even though the engine lets negative inputs propagate into totals.
func Calculate(kg float64) (Output, error) {
	if kg < 0 {
		return Output{IsEmpty: true}, ErrNegativeValue
	}
	if kg < MinEquivalencyThresholdKg {
		return Output{InputKg: kg, IsEmpty: true}, nil
	}

	miles := kg / EPAMilesDrivenFactor
	phones := kg / EPASmartphoneChargeFactor
	trees := kg / EPATreeSeedlingFactor

	if math.IsInf(miles, 0) || math.IsNaN(miles) ||
		math.IsInf(phones, 0) || math.IsNaN(phones) {
		return Output{IsEmpty: true}, ErrCalculationOverflow
	}

	milesFormatted := formatValue(miles)
	phonesFormatted := formatValue(phones)
	treesFormatted := formatValue(trees)

	results := []Result{
		{Value: miles, FormattedValue: milesFormatted, Label: "miles driven"},
		{Value: phones, FormattedValue: phonesFormatted, Label: "smartphones charged"},
		{Value: trees, FormattedValue: treesFormatted, Label: "tree seedlings grown for 10 years"},
	}

	displayText := fmt.Sprintf(
		"Equivalent to driving ~%s miles, charging ~%s smartphones, or growing ~%s tree seedlings for 10 years",
		milesFormatted, phonesFormatted, treesFormatted)

	return Output{
		InputKg:     kg,
		Results:     results,
		DisplayText: displayText,
		IsEmpty:     false,
	}, nil
}

// formatValue formats an equivalency value for display, using abbreviated
// notation for large magnitudes and comma separators otherwise.
func formatValue(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(math.Round(v)))
}
