package models

// TaxSlab is one row of the progressive-bracket breakdown.
type TaxSlab struct {
	Slab string  `json:"slab"`
	Rate float64 `json:"rate"`
	Tax  int     `json:"tax"`
}

// TaxEstimate is the derived tax view for an annual income figure.
type TaxEstimate struct {
	TotalIncome        int       `json:"total_income"`
	DeductibleExpenses int       `json:"deductible_expenses"`
	TaxSlabs           []TaxSlab `json:"tax_slabs"`
	TotalTax           int       `json:"total_tax"`
	QuarterlyTax       int       `json:"quarterly_tax"`
	EffectiveRate      float64   `json:"effective_rate"`
}
