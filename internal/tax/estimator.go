// Package tax estimates liability under the simplified Indian new-regime
// slab schedule (FY 2025-26).
package tax

import (
	"errors"
	"math"

	"github.com/growai/fincoach/internal/models"
)

// ErrInvalidIncome is returned for a non-positive annual income.
var ErrInvalidIncome = errors.New("income must be positive")

// Income categories carrying a surcharge multiplier on the computed tax.
const (
	CategoryFreelancer = "freelancer"
	CategoryBusiness   = "business"
)

type slab struct {
	label string
	floor int
	ceil  int // math.MaxInt for the open-ended top slab
	rate  float64
	fixed int // cumulative tax for all slabs below
}

var slabs = []slab{
	{"0 - 3L", 0, 300000, 0, 0},
	{"3L - 6L", 300000, 600000, 0.05, 0},
	{"6L - 9L", 600000, 900000, 0.10, 15000},
	{"9L - 12L", 900000, 1200000, 0.15, 45000},
	{"12L - 15L", 1200000, 1500000, 0.20, 90000},
	{"15L+", 1500000, math.MaxInt, 0.30, 150000},
}

// Estimate computes the tax payable on an annual income. The category
// multiplier (freelancer +5%, business +10%) applies to the computed tax,
// not to the income. The slab breakdown is reported pre-multiplier.
func Estimate(income int, category string) (*models.TaxEstimate, error) {
	if income <= 0 {
		return nil, ErrInvalidIncome
	}

	var breakdown []models.TaxSlab
	baseTax := 0.0
	for _, s := range slabs {
		if income <= s.floor {
			break
		}
		taxable := income - s.floor
		if income > s.ceil {
			taxable = s.ceil - s.floor
		}
		slabTax := float64(taxable) * s.rate
		breakdown = append(breakdown, models.TaxSlab{
			Slab: s.label,
			Rate: s.rate,
			Tax:  int(math.Round(slabTax)),
		})
		if income <= s.ceil {
			baseTax = float64(s.fixed) + slabTax
			break
		}
	}

	multiplier := 1.0
	switch category {
	case CategoryFreelancer:
		multiplier = 1.05
	case CategoryBusiness:
		multiplier = 1.10
	}
	totalTax := int(math.Round(baseTax * multiplier))

	return &models.TaxEstimate{
		TotalIncome:        income,
		DeductibleExpenses: income / 10,
		TaxSlabs:           breakdown,
		TotalTax:           totalTax,
		QuarterlyTax:       int(math.Round(float64(totalTax) / 4)),
		EffectiveRate:      float64(totalTax) / float64(income) * 100,
	}, nil
}
