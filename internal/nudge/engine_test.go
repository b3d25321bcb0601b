package nudge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/growai/fincoach/internal/models"
)

// healthySnapshot trips none of the rules.
func healthySnapshot() *models.FinancialSnapshot {
	return &models.FinancialSnapshot{
		Income: models.Income{Monthly: 100000},
		Expenses: map[string]int{
			"housing": 30000,
			"dining":  5000,
		},
		Banks: map[string]models.BankAccount{
			"HDFC": {
				CreditCard: models.CreditCard{Limit: 100000, CurrentBalance: 20000, UtilizationRate: 20},
				Investments: map[string]int{
					"emergency_fund": 300000,
					"mutual_funds":   500000,
					"stocks":         200000,
				},
			},
		},
		Summary: models.Summary{
			TotalExpenses:  70000,
			MonthlySavings: 30000,
			SavingsRate:    30,
		},
	}
}

func nudgeIDs(nudges []models.Nudge) []int {
	ids := make([]int, 0, len(nudges))
	for _, n := range nudges {
		ids = append(ids, n.ID)
	}
	return ids
}

func TestEvaluateHealthySnapshot(t *testing.T) {
	assert.Empty(t, Evaluate(healthySnapshot(), nil))
}

func TestEvaluateLowSavingsRate(t *testing.T) {
	snap := healthySnapshot()
	snap.Summary.SavingsRate = 10

	nudges := Evaluate(snap, nil)
	assert.Contains(t, nudgeIDs(nudges), RuleSavingsRate)
	for _, n := range nudges {
		if n.ID == RuleSavingsRate {
			assert.Equal(t, "Increase Savings Rate", n.Title)
			assert.Equal(t, models.CategorySavings, n.Category)
			assert.Contains(t, n.Description, "10%")
		}
	}
}

func TestEvaluateThinEmergencyFund(t *testing.T) {
	snap := healthySnapshot()
	bank := snap.Banks["HDFC"]
	bank.Investments["emergency_fund"] = 50000
	snap.Banks["HDFC"] = bank

	assert.Contains(t, nudgeIDs(Evaluate(snap, nil)), RuleEmergencyFund)
}

func TestEvaluateHighCreditUtilization(t *testing.T) {
	snap := healthySnapshot()
	bank := snap.Banks["HDFC"]
	bank.CreditCard.UtilizationRate = 65
	snap.Banks["HDFC"] = bank

	nudges := Evaluate(snap, nil)
	assert.Contains(t, nudgeIDs(nudges), RuleCreditUtilization)
}

func TestEvaluateLowInvestments(t *testing.T) {
	snap := healthySnapshot()
	snap.Banks["HDFC"] = models.BankAccount{
		CreditCard:  models.CreditCard{UtilizationRate: 20},
		Investments: map[string]int{"emergency_fund": 300000, "mutual_funds": 100000},
	}

	assert.Contains(t, nudgeIDs(Evaluate(snap, nil)), RuleInvestmentRatio)
}

func TestEvaluateDiningSpend(t *testing.T) {
	snap := healthySnapshot()
	snap.Expenses["dining"] = 15000

	nudges := Evaluate(snap, nil)
	assert.Contains(t, nudgeIDs(nudges), RuleDiningSpend)
	for _, n := range nudges {
		if n.ID == RuleDiningSpend {
			assert.Contains(t, n.Description, "₹15000")
		}
	}
}

func TestEvaluateQuarterlyTax(t *testing.T) {
	snap := healthySnapshot()

	assert.NotContains(t, nudgeIDs(Evaluate(snap, nil)), RuleQuarterlyTax)
	assert.NotContains(t, nudgeIDs(Evaluate(snap, &models.TaxEstimate{QuarterlyTax: 0})), RuleQuarterlyTax)

	nudges := Evaluate(snap, &models.TaxEstimate{QuarterlyTax: 25000})
	assert.Contains(t, nudgeIDs(nudges), RuleQuarterlyTax)
	for _, n := range nudges {
		if n.ID == RuleQuarterlyTax {
			assert.Equal(t, models.CategoryTax, n.Category)
			assert.Contains(t, n.Description, "₹25000")
		}
	}
}

func TestEvaluateStackedRules(t *testing.T) {
	snap := &models.FinancialSnapshot{
		Income:   models.Income{Monthly: 50000},
		Expenses: map[string]int{"dining": 10000},
		Banks: map[string]models.BankAccount{
			"HDFC": {
				CreditCard:  models.CreditCard{UtilizationRate: 80},
				Investments: map[string]int{},
			},
		},
		Summary: models.Summary{TotalExpenses: 48000, SavingsRate: 4},
	}

	ids := nudgeIDs(Evaluate(snap, &models.TaxEstimate{QuarterlyTax: 5000}))
	assert.ElementsMatch(t, []int{
		RuleSavingsRate,
		RuleEmergencyFund,
		RuleCreditUtilization,
		RuleInvestmentRatio,
		RuleDiningSpend,
		RuleQuarterlyTax,
	}, ids)
}
