package equiv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name        string
		kg          float64
		wantMiles   float64
		wantPhones  float64
		wantTrees   float64
		wantIsEmpty bool
		wantErr     error
	}{
		{
			name:       "150kg reference value",
			kg:         150.0,
			wantMiles:  781.25, // 150 / 0.192
			wantPhones: 18248.18,
			wantTrees:  2.5,
		},
		{
			name:        "below threshold returns empty",
			kg:          0.5,
			wantIsEmpty: true,
		},
		{
			name:       "exactly at threshold",
			kg:         1.0,
			wantMiles:  5.208333,
			wantPhones: 121.65,
			wantTrees:  0.0166667,
		},
		{
			name:        "zero returns empty",
			kg:          0.0,
			wantIsEmpty: true,
		},
		{
			name:    "negative value returns error",
			kg:      -100.0,
			wantErr: ErrNegativeValue,
		},
		{
			name:       "large value",
			kg:         1_000_000.0,
			wantMiles:  5_208_333.33,
			wantPhones: 121_654_501.22,
			wantTrees:  16_666.67,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Calculate(tt.kg)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, out.IsEmpty)
				return
			}
			require.NoError(t, err)

			if tt.wantIsEmpty {
				assert.True(t, out.IsEmpty)
				assert.Empty(t, out.Results)
				return
			}

			require.Len(t, out.Results, 3)
			assert.InDelta(t, tt.wantMiles, out.Results[0].Value, 0.01)
			assert.InDelta(t, tt.wantPhones, out.Results[1].Value, 0.01)
			assert.InDelta(t, tt.wantTrees, out.Results[2].Value, 0.01)
			assert.Contains(t, out.DisplayText, "driving")
			assert.Contains(t, out.DisplayText, "smartphones")
			assert.Contains(t, out.DisplayText, "tree seedlings")
		})
	}
}

func TestCalculateFormatting(t *testing.T) {
	out, err := Calculate(150.0)
	require.NoError(t, err)

	assert.Equal(t, "781", out.Results[0].FormattedValue)
	assert.Equal(t, "18,248", out.Results[1].FormattedValue)
	assert.Equal(t, "3", out.Results[2].FormattedValue)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "999", FormatNumber(999))
	assert.Equal(t, "18,248", FormatNumber(18248))
	assert.Equal(t, "1,234,567", FormatNumber(1234567))
}

func TestFormatLarge(t *testing.T) {
	assert.Equal(t, "999,999", FormatLarge(999_999))
	assert.Equal(t, "~1.5 million", FormatLarge(1_500_000))
	assert.Equal(t, "~1.5 billion", FormatLarge(1_500_000_000))
}
