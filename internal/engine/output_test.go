package engine

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderSample() []Breakdown {
	return []Breakdown{
		{
			Date:      time.Date(2023, 8, 1, 0, 0, 0, 0, time.UTC),
			Transport: 3.28, Diet: 2.5, Energy: 6.25, Waste: 0.06, Total: 12.09,
		},
		{
			Date: time.Date(2023, 8, 2, 0, 0, 0, 0, time.UTC),
			Diet: 1.5, Energy: 5.0, Waste: 0.04, Transport: 0.44, Total: 6.98,
		},
	}
}

func TestRenderResultsTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderResults(&buf, OutputTable, renderSample()))

	out := buf.String()
	assert.Contains(t, out, "DATE")
	assert.Contains(t, out, "2023-08-01")
	assert.Contains(t, out, "12.09")

	// Trailing TOTAL row sums every category.
	lines := strings.Split(strings.TrimSpace(out), "\n")
	last := lines[len(lines)-1]
	assert.True(t, strings.HasPrefix(last, "TOTAL"))
	assert.Contains(t, last, "19.07")
}

func TestRenderResultsWithPrecision(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderResultsWithPrecision(&buf, OutputTable, renderSample(), 4))

	out := buf.String()
	assert.Contains(t, out, "12.0900")
	assert.Contains(t, out, "0.0600")
	assert.NotContains(t, out, "12.09 ")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Contains(t, lines[len(lines)-1], "19.0700")
}

func TestRenderResultsPrecisionZero(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderResultsWithPrecision(&buf, OutputTable, renderSample(), 0))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Contains(t, lines[len(lines)-1], "19")
	assert.NotContains(t, buf.String(), "12.09")
}

func TestRenderResultsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderResults(&buf, OutputJSON, renderSample()))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "2023-08-01", decoded[0]["date"])
	assert.InDelta(t, 12.09, decoded[0]["total"].(float64), 0.001)
}

func TestRenderResultsNDJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderResults(&buf, OutputNDJSON, renderSample()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		var decoded map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &decoded))
	}
}

func TestRenderResultsUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := RenderResults(&buf, OutputFormat("xml"), renderSample())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestRenderReportJSON(t *testing.T) {
	records := renderSample()
	totals := Aggregate(records)
	report := &Report{
		Records:    records,
		Totals:     totals,
		Comparison: Compare(totals, DefaultBaseline()),
		GoalKg:     DefaultMonthlyGoalKg,
	}

	var buf bytes.Buffer
	require.NoError(t, RenderReport(&buf, OutputJSON, report))

	var decoded struct {
		Records         []map[string]any `json:"records"`
		Totals          map[string]float64
		Comparison      map[string]any `json:"comparison"`
		GoalKg          float64        `json:"goal_kg"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded.Records, 2)
	assert.InDelta(t, 1000.0, decoded.GoalKg, 0.001)
	assert.Contains(t, decoded.Comparison, "total_difference")
}

func TestBreakdownJSONRoundTrip(t *testing.T) {
	orig := renderSample()[0]

	data, err := json.Marshal(orig)
	require.NoError(t, err)

	var back Breakdown
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, orig.Date.Equal(back.Date))
	assert.InDelta(t, orig.Total, back.Total, 1e-9)
}

func TestOutputFormatIsValid(t *testing.T) {
	assert.True(t, OutputTable.IsValid())
	assert.True(t, OutputJSON.IsValid())
	assert.True(t, OutputNDJSON.IsValid())
	assert.False(t, OutputFormat("yaml").IsValid())
}
