package models

// Nudge categories.
const (
	CategorySavings     = "Savings"
	CategorySpending    = "Spending"
	CategoryInvestments = "Investments"
	CategoryDebt        = "Debt"
	CategoryTax         = "Tax"
)

// Nudge is one advisory message derived from the current snapshot.
// Nudges are ephemeral and recomputed on every view; ID identifies the rule
// that produced the nudge, not a stored record.
type Nudge struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
}
