package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactorsTable(t *testing.T) {
	out, _, err := executeCommand(t, "factors")
	require.NoError(t, err)

	assert.Contains(t, out, "CATEGORY")
	assert.Contains(t, out, "car")
	assert.Contains(t, out, "0.20")
	assert.Contains(t, out, "train")
	assert.Contains(t, out, "0.05")
	assert.Contains(t, out, "meat")
	assert.Contains(t, out, "2.50")
	assert.Contains(t, out, "kgCO2/kWh")
	assert.Contains(t, out, "kgCO2/kg")
}
