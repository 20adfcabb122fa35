package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateValidFiles(t *testing.T) {
	csvPath := writeTestFile(t, "ok.csv", "date,diet_type,energy_kwh\n2024-03-01,meat,12.5\n")
	jsonPath := writeTestFile(t, "ok.json",
		`[{"date": "2024-03-01", "diet_type": "vegan", "energy_kwh": 3}]`)

	out, _, err := executeCommand(t, "validate", csvPath, jsonPath)
	require.NoError(t, err)
	assert.Contains(t, out, csvPath+": valid")
	assert.Contains(t, out, jsonPath+": valid")
}

func TestValidateInvalidFile(t *testing.T) {
	path := writeTestFile(t, "bad.csv", "date,car_km\n2024-03-01,10\n")

	out, _, err := executeCommand(t, "validate", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 file(s) failed validation")
	assert.Contains(t, out, "required fields missing")
}

func TestValidateMixedFiles(t *testing.T) {
	good := writeTestFile(t, "ok.csv", "date,diet_type,energy_kwh\n")
	bad := writeTestFile(t, "bad.csv", "date\n")

	out, _, err := executeCommand(t, "validate", good, bad)
	require.Error(t, err)
	assert.Contains(t, out, good+": valid")
	assert.Contains(t, out, bad+": invalid")
}

func TestValidateRequiresArgs(t *testing.T) {
	_, _, err := executeCommand(t, "validate")
	require.Error(t, err)
}
