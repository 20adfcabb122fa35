// Package ingest normalizes raw activity-record sources into row mappings
// for the emission engine.
//
// A source is either a CSV file with a header row, a JSON array of objects,
// or a text blob handed over by an OCR adapter. Validation here is
// deliberately coarse: it answers "does this source expose the mandatory
// fields" with a boolean and nothing more. Fine-grained field checks happen
// at conversion time in the engine, which raises descriptive row-level
// errors.
package ingest

// RawRow is one unvalidated input record prior to conversion. Keys are
// field names; values are strings (CSV) or strings/numbers (JSON).
type RawRow map[string]any

// Mandatory field names every source must expose.
const (
	FieldDate      = "date"
	FieldDietType  = "diet_type"
	FieldEnergyKWh = "energy_kwh"
)

// Optional field names, defaulted by the engine when absent.
const (
	FieldCarKm   = "car_km"
	FieldBusKm   = "bus_km"
	FieldWasteKg = "waste_kg"
	FieldMeals   = "meals"
)

// MandatoryFields lists the fields every source must expose, in the order
// they are quoted in error messages.
func MandatoryFields() []string {
	return []string{FieldDate, FieldDietType, FieldEnergyKWh}
}

// hasMandatoryKeys reports whether every mandatory field is present in keys.
func hasMandatoryKeys(keys map[string]bool) bool {
	for _, f := range MandatoryFields() {
		if !keys[f] {
			return false
		}
	}
	return true
}
