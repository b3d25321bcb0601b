package tax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimate(t *testing.T) {
	tests := []struct {
		name     string
		income   int
		category string
		total    int
	}{
		{"below exemption", 250000, "", 0},
		{"exemption boundary", 300000, "", 0},
		{"second slab full", 600000, "", 15000},
		{"mid third slab", 750000, "", 30000},
		{"ten lakh", 1000000, "", 60000},
		{"fifteen lakh", 1500000, "", 150000},
		{"top slab", 2000000, "", 300000},
		{"freelancer surcharge", 600000, "freelancer", 15750},
		{"business surcharge", 600000, "business", 16500},
		{"unknown category ignored", 600000, "salaried", 15000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			estimate, err := Estimate(tt.income, tt.category)
			require.NoError(t, err)
			assert.Equal(t, tt.total, estimate.TotalTax)
			assert.Equal(t, tt.income, estimate.TotalIncome)
			assert.Equal(t, tt.income/10, estimate.DeductibleExpenses)
		})
	}
}

func TestEstimateInvalidIncome(t *testing.T) {
	_, err := Estimate(0, "")
	assert.ErrorIs(t, err, ErrInvalidIncome)

	_, err = Estimate(-100, "")
	assert.ErrorIs(t, err, ErrInvalidIncome)
}

func TestEstimateQuarterlyTax(t *testing.T) {
	estimate, err := Estimate(1000000, "")
	require.NoError(t, err)
	assert.Equal(t, 15000, estimate.QuarterlyTax)

	estimate, err = Estimate(600000, CategoryFreelancer)
	require.NoError(t, err)
	assert.Equal(t, 3938, estimate.QuarterlyTax)
}

func TestEstimateEffectiveRate(t *testing.T) {
	estimate, err := Estimate(1000000, "")
	require.NoError(t, err)
	assert.InDelta(t, 6.0, estimate.EffectiveRate, 1e-9)
}

func TestEstimateSlabBreakdown(t *testing.T) {
	estimate, err := Estimate(1000000, "")
	require.NoError(t, err)

	require.Len(t, estimate.TaxSlabs, 4)
	assert.Equal(t, "0 - 3L", estimate.TaxSlabs[0].Slab)
	assert.Equal(t, 0, estimate.TaxSlabs[0].Tax)
	assert.Equal(t, "3L - 6L", estimate.TaxSlabs[1].Slab)
	assert.Equal(t, 15000, estimate.TaxSlabs[1].Tax)
	assert.Equal(t, "6L - 9L", estimate.TaxSlabs[2].Slab)
	assert.Equal(t, 30000, estimate.TaxSlabs[2].Tax)
	assert.Equal(t, "9L - 12L", estimate.TaxSlabs[3].Slab)
	assert.Equal(t, 15000, estimate.TaxSlabs[3].Tax)

	sum := 0
	for _, s := range estimate.TaxSlabs {
		sum += s.Tax
	}
	assert.Equal(t, estimate.TotalTax, sum)
}
