package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/growai/fincoach/internal/models"
	"github.com/growai/fincoach/internal/templates"
)

func TestGenerateYoungProfessional(t *testing.T) {
	gen := New(templates.NewStore())

	snap, err := gen.Generate(templates.YoungProfessional, []string{"HDFC"}, nil)
	require.NoError(t, err)

	assert.NotEmpty(t, snap.ID)
	assert.Equal(t, "Young Professional", snap.Profile.Name)
	assert.GreaterOrEqual(t, snap.Income.Monthly, 40000)
	assert.LessOrEqual(t, snap.Income.Monthly, 80000)
	assert.Len(t, snap.Income.MonthlyHistory, 12)
	assert.Len(t, snap.Banks, 1)
	assert.Contains(t, snap.Banks, "HDFC")
	assert.False(t, snap.GeneratedAt.IsZero())

	// High variability perturbs history months by up to ±40%.
	for _, m := range snap.Income.MonthlyHistory {
		assert.GreaterOrEqual(t, m, int(float64(snap.Income.Monthly)*0.59))
		assert.LessOrEqual(t, m, int(float64(snap.Income.Monthly)*1.41))
	}

	bank := snap.Banks["HDFC"]
	assert.Contains(t, bank.Loans, "education_loan")
	assert.Contains(t, bank.Investments, "emergency_fund")
}

func TestGenerateUnknownProfile(t *testing.T) {
	gen := New(templates.NewStore())

	_, err := gen.Generate("day_trader", []string{"HDFC"}, nil)
	assert.ErrorIs(t, err, templates.ErrUnknownProfile)
}

func TestGenerateSummaryInvariants(t *testing.T) {
	gen := New(templates.NewStore())

	snap, err := gen.Generate(templates.EstablishedInvestor, []string{"HDFC", "ICICI"}, nil)
	require.NoError(t, err)

	totalExpenses := 0
	for _, amount := range snap.Expenses {
		totalExpenses += amount
	}
	assert.Equal(t, snap.Income.Monthly, snap.Summary.TotalIncome)
	assert.Equal(t, totalExpenses, snap.Summary.TotalExpenses)
	assert.Equal(t, snap.Income.Monthly-totalExpenses, snap.Summary.MonthlySavings)
	assert.InDelta(t,
		float64(snap.Summary.MonthlySavings)/float64(snap.Income.Monthly)*100,
		snap.Summary.SavingsRate, 1e-9)
	assert.Equal(t, CalculateNetWorth(snap.Banks), snap.Summary.NetWorth)
}

func TestGenerateHonorsOverrides(t *testing.T) {
	gen := New(templates.NewStore())

	ov := &models.Overrides{
		IncomePattern: "₹1,00,000 - ₹1,00,000 per month",
		Debt: &models.DebtDetails{
			Type:        "Car Loan",
			AmountRange: "300000",
			EMIRange:    "9000",
			Remaining:   "4",
		},
		Accounts: map[string]models.BankDetails{
			"HDFC": {
				Savings:    &models.SavingsDetails{Balance: "150000", Interest: "4.5%"},
				CreditCard: &models.CreditCardDetails{Limit: "100000", Balance: "25000"},
				Investment: &models.InvestmentDetails{MutualFunds: "50000", Stocks: "20000"},
			},
		},
	}

	snap, err := gen.Generate(templates.YoungProfessional, []string{"HDFC"}, ov)
	require.NoError(t, err)

	assert.Equal(t, 100000, snap.Income.Monthly)

	bank := snap.Banks["HDFC"]
	assert.Equal(t, 150000, bank.SavingsAccount.Balance)
	assert.InDelta(t, 4.5, bank.SavingsAccount.InterestRate, 1e-9)
	assert.Equal(t, 100000, bank.CreditCard.Limit)
	assert.Equal(t, 25000, bank.CreditCard.CurrentBalance)
	assert.InDelta(t, 25.0, bank.CreditCard.UtilizationRate, 1e-9)

	require.Contains(t, bank.Loans, "car_loan")
	loan := bank.Loans["car_loan"]
	assert.Equal(t, 300000, loan.Principal)
	assert.Equal(t, 9000, loan.EMI)
	assert.Equal(t, 4, loan.RemainingYears)
	assert.Equal(t, "Car Loan declared during setup", loan.Description)

	assert.Equal(t, map[string]int{"mutual_funds": 50000, "stocks": 20000}, bank.Investments)
}

func TestGenerateCreditCardDefaultBalance(t *testing.T) {
	gen := New(templates.NewStore())

	card := gen.GenerateCreditCard(&models.CreditCardDetails{Limit: "200000"}, templates.NewStore().Products())
	assert.Equal(t, 200000, card.Limit)
	assert.Equal(t, 80000, card.CurrentBalance)
	assert.InDelta(t, 40.0, card.UtilizationRate, 1e-9)
}

func TestGenerateNoOutstandingLoanSuppressesDebt(t *testing.T) {
	gen := New(templates.NewStore())

	ov := &models.Overrides{Debt: &models.DebtDetails{Type: NoOutstandingLoan}}
	snap, err := gen.Generate(templates.YoungProfessional, []string{"HDFC"}, ov)
	require.NoError(t, err)

	// The archetype default still applies when debt is explicitly declined.
	assert.Contains(t, snap.Banks["HDFC"].Loans, "education_loan")
	assert.NotContains(t, snap.Banks["HDFC"].Loans, "no_outstanding_loan")
}

func TestGenerateBankLoanFallsBackToProductRanges(t *testing.T) {
	store := templates.NewStore()
	gen := New(store)

	bankLoan := &models.LoanDetails{Type: "Personal Loan", Tenure: "3"}
	tpl, err := store.Profile(templates.YoungProfessional)
	require.NoError(t, err)

	loans := gen.GenerateLoans(nil, bankLoan, tpl, store.Products())
	require.Contains(t, loans, "personal_loan")

	product := store.Products().Loans["personal_loan"]
	loan := loans["personal_loan"]
	assert.GreaterOrEqual(t, loan.Principal, product.AmountRange.Min)
	assert.LessOrEqual(t, loan.Principal, product.AmountRange.Max)
	assert.GreaterOrEqual(t, loan.EMI, product.EMIRange.Min)
	assert.LessOrEqual(t, loan.EMI, product.EMIRange.Max)
	assert.Equal(t, 3, loan.RemainingYears)
}

func TestGenerateZeroIncomeSavingsRate(t *testing.T) {
	profiles := map[string]*templates.ProfileTemplate{
		"unemployed": {
			Profile: models.ProfileInfo{Name: "Unemployed", Type: "unemployed"},
			Income:  templates.IncomeTemplate{MonthlyRange: templates.Range{Min: 0, Max: 0}},
		},
	}
	gen := New(templates.NewStoreWith(profiles, templates.NewStore().Products()))

	snap, err := gen.Generate("unemployed", []string{"HDFC"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, snap.Income.Monthly)
	assert.Equal(t, 0.0, snap.Summary.SavingsRate)
}

func TestCalculateNetWorth(t *testing.T) {
	banks := map[string]models.BankAccount{
		"HDFC": {
			SavingsAccount: models.SavingsAccount{Balance: 100000},
			SalaryAccount:  models.SalaryAccount{Balance: 50000},
			CreditCard:     models.CreditCard{CurrentBalance: 20000},
			Loans: map[string]models.Loan{
				"home_loan": {Principal: 500000},
			},
			Investments: map[string]int{
				"mutual_funds":   80000,
				"stocks":         40000,
				"fixed_deposits": 60000,
				"real_estate":    900000, // informational, excluded
			},
		},
	}
	// 100000+50000+80000+40000+60000 - 20000 - 500000
	assert.Equal(t, -190000, CalculateNetWorth(banks))
}
