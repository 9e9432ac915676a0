package hunt_test

import (
	"testing"

	"github.com/jobhunt-dev/hunt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPayRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		min  int64
		max  int64
	}{
		{"k range", "$150K - $200K", 150000, 200000},
		{"k range lowercase with yr suffix", "$120k/yr - $160k/yr", 120000, 160000},
		{"hourly range annualized", "$45/hr - $60/hr", 93600, 124800},
		{"compensation labeled", "Compensation Range: $120,000 - $180,000", 120000, 180000},
		{"bare comma range", "Base pay $110,000 - $140,000 plus equity", 110000, 140000},
		{"reversed bounds swapped", "$200K - $150K", 150000, 200000},
		{"en dash separator", "$150K – $200K", 150000, 200000},
		{"fallback bare thousands", "We pay $150 - $180 per year", 150000, 180000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			payMin, payMax := hunt.ExtractPayRange(tt.text)

			require.NotNil(t, payMin)
			require.NotNil(t, payMax)
			assert.Equal(t, tt.min, *payMin)
			assert.Equal(t, tt.max, *payMax)
		})
	}

	t.Run("no dollar sign yields nothing", func(t *testing.T) {
		t.Parallel()

		payMin, payMax := hunt.ExtractPayRange("Competitive salary and benefits")

		assert.Nil(t, payMin)
		assert.Nil(t, payMax)
	})

	t.Run("single amount yields min only", func(t *testing.T) {
		t.Parallel()

		payMin, payMax := hunt.ExtractPayRange("Up to $175,500 depending on experience")

		require.NotNil(t, payMin)
		assert.Equal(t, int64(175500), *payMin)
		assert.Nil(t, payMax)
	})
}
