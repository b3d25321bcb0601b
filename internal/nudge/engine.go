// Package nudge derives advisory messages from a financial snapshot. Rules
// are independent and evaluated in a fixed order; nothing is persisted.
package nudge

import (
	"fmt"

	"github.com/growai/fincoach/internal/models"
)

// Rule identifiers, stable across evaluations.
const (
	RuleSavingsRate = iota + 1
	RuleEmergencyFund
	RuleCreditUtilization
	RuleInvestmentRatio
	RuleDiningSpend
	RuleQuarterlyTax
)

const (
	targetSavingsRate     = 20.0
	emergencyFundMonths   = 3
	maxCreditUtilization  = 30.0
	investmentIncomeRatio = 6
	diningIncomeShare     = 0.10
)

// Evaluate runs every rule over the snapshot and the derived tax estimate.
// The estimate may be nil, which only disables the tax rule.
func Evaluate(snap *models.FinancialSnapshot, estimate *models.TaxEstimate) []models.Nudge {
	var nudges []models.Nudge

	monthlyIncome := snap.Income.Monthly
	monthlyExpenses := snap.Summary.TotalExpenses
	savingsRate := snap.Summary.SavingsRate
	emergencyFund := emergencyFundTotal(snap)
	investments := snap.TotalInvestments()
	utilization := maxUtilization(snap)
	dining := snap.Expenses["dining"]

	if savingsRate < targetSavingsRate {
		nudges = append(nudges, models.Nudge{
			ID:       RuleSavingsRate,
			Title:    "Increase Savings Rate",
			Category: models.CategorySavings,
			Description: fmt.Sprintf(
				"Your savings rate is %.0f%%. Aim for at least %.0f%% to build wealth faster; review discretionary spending first.",
				savingsRate, targetSavingsRate),
		})
	}

	if emergencyFund < emergencyFundMonths*monthlyExpenses {
		months := 0.0
		if monthlyExpenses > 0 {
			months = float64(emergencyFund) / float64(monthlyExpenses)
		}
		nudges = append(nudges, models.Nudge{
			ID:       RuleEmergencyFund,
			Title:    "Build Emergency Fund",
			Category: models.CategorySavings,
			Description: fmt.Sprintf(
				"Your emergency fund covers %.1f months of expenses. Target %d-6 months for security.",
				months, emergencyFundMonths),
		})
	}

	if utilization > maxCreditUtilization {
		nudges = append(nudges, models.Nudge{
			ID:       RuleCreditUtilization,
			Title:    "Optimize Credit Usage",
			Category: models.CategoryDebt,
			Description: fmt.Sprintf(
				"Credit card utilization is at %.0f%%. Keep it under %.0f%% for a better credit score.",
				utilization, maxCreditUtilization),
		})
	}

	if investments < investmentIncomeRatio*monthlyIncome {
		ratio := 0.0
		if monthlyIncome > 0 {
			ratio = float64(investments) / float64(monthlyIncome)
		}
		nudges = append(nudges, models.Nudge{
			ID:       RuleInvestmentRatio,
			Title:    "Grow Investments",
			Category: models.CategoryInvestments,
			Description: fmt.Sprintf(
				"Your investments are %.1fx your monthly income. Target %dx-12x for long-term growth.",
				ratio, investmentIncomeRatio),
		})
	}

	if float64(dining) > diningIncomeShare*float64(monthlyIncome) {
		nudges = append(nudges, models.Nudge{
			ID:       RuleDiningSpend,
			Title:    "Optimize Dining Expenses",
			Category: models.CategorySpending,
			Description: fmt.Sprintf(
				"Dining spend is ₹%d/month. Cooking two more meals a week could save around ₹%d.",
				dining, dining/4),
		})
	}

	if estimate != nil && estimate.QuarterlyTax > 0 {
		nudges = append(nudges, models.Nudge{
			ID:       RuleQuarterlyTax,
			Title:    "Quarterly Tax Payment Due",
			Category: models.CategoryTax,
			Description: fmt.Sprintf(
				"Your estimated advance tax installment is ₹%d. Pay before the due date to avoid late-payment interest.",
				estimate.QuarterlyTax),
		})
	}

	return nudges
}

func emergencyFundTotal(snap *models.FinancialSnapshot) int {
	total := 0
	for _, bank := range snap.Banks {
		total += bank.Investments["emergency_fund"]
	}
	return total
}

func maxUtilization(snap *models.FinancialSnapshot) float64 {
	highest := 0.0
	for _, bank := range snap.Banks {
		if bank.CreditCard.UtilizationRate > highest {
			highest = bank.CreditCard.UtilizationRate
		}
	}
	return highest
}
