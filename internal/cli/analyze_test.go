package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carbonlens/carbonlens/internal/engine"
)

const analyzeCSV = `date,diet_type,energy_kwh,car_km,bus_km,waste_kg,meals
2024-03-01,meat,12.5,16.4,0,0.3,1
2024-03-02,vegan,8.0,0,10,0.5,2
`

const analyzeJSON = `[
  {"date": "2024-03-03", "diet_type": "mixed", "energy_kwh": 5, "car_km": 10}
]`

func TestAnalyzeTable(t *testing.T) {
	path := writeTestFile(t, "activities.csv", analyzeCSV)

	out, _, err := executeCommand(t, "analyze", "--input", path)
	require.NoError(t, err)

	assert.Contains(t, out, "DATE")
	assert.Contains(t, out, "2024-03-01")
	assert.Contains(t, out, "12.09")
	assert.Contains(t, out, "Comparison with World Averages:")
	assert.Contains(t, out, "Advice:")
	assert.Contains(t, out, "monthly goal of 1000 kgCO2")
}

func TestAnalyzeJSONReport(t *testing.T) {
	path := writeTestFile(t, "activities.csv", analyzeCSV)

	out, _, err := executeCommand(t, "analyze", "--input", path, "--output", "json")
	require.NoError(t, err)

	var report engine.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))

	assert.Len(t, report.Records, 2)
	assert.InDelta(t, 12.09, report.Records[0].Total, 1e-9)
	assert.InDelta(t, 1000.0, report.GoalKg, 1e-9)
	assert.Contains(t, report.Comparison.Summary, "Comparison with World Averages:")
	assert.Contains(t, report.EquivalencyText, "miles")
}

func TestAnalyzeMultipleInputsOrdered(t *testing.T) {
	csvPath := writeTestFile(t, "first.csv", analyzeCSV)
	jsonPath := writeTestFile(t, "second.json", analyzeJSON)

	out, _, err := executeCommand(t,
		"analyze", "--input", csvPath, "--input", jsonPath, "--output", "ndjson")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)

	// Record order follows flag order even though files load concurrently.
	var first, last engine.Breakdown
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &last))
	assert.Equal(t, "2024-03-01", first.Date.Format("2006-01-02"))
	assert.Equal(t, "2024-03-03", last.Date.Format("2006-01-02"))
}

func TestAnalyzeRespectsConfiguredPrecision(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, ".carbonlens")
	require.NoError(t, os.MkdirAll(dir, 0750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("output:\n  default_format: table\n  precision: 4\n"), 0600))

	path := writeTestFile(t, "activities.csv", analyzeCSV)

	out, _, err := executeCommandInHome(t, home, "analyze", "--input", path)
	require.NoError(t, err)

	// Record table and summary both honor the configured decimal places.
	assert.Contains(t, out, "12.0900")
	assert.Contains(t, out, "Category Totals (kgCO2):")
	assert.NotContains(t, out, "12.09 ")
}

func TestAnalyzeMissingFile(t *testing.T) {
	_, _, err := executeCommand(t, "analyze", "--input", "does-not-exist.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.csv")
}

func TestAnalyzeBadRowReportsIndex(t *testing.T) {
	path := writeTestFile(t, "bad.csv", `date,diet_type,energy_kwh
2024-03-01,meat,12.5
2024-03-02,keto,8.0
`)

	_, _, err := executeCommand(t, "analyze", "--input", path)
	require.Error(t, err)

	var rowErr *engine.RowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, 1, rowErr.Index)
	assert.ErrorIs(t, err, engine.ErrUnknownDietType)
}

func TestAnalyzeUnsupportedOutput(t *testing.T) {
	path := writeTestFile(t, "activities.csv", analyzeCSV)

	_, _, err := executeCommand(t, "analyze", "--input", path, "--output", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestAnalyzeRequiresInput(t *testing.T) {
	_, _, err := executeCommand(t, "analyze")
	require.Error(t, err)
}
