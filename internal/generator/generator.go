// Package generator produces synthetic financial snapshots from archetype
// templates and optional user-declared figures. All operations are pure over
// in-memory data apart from the random draws; malformed user input always
// falls back to template defaults instead of failing the generation.
package generator

import (
	"math"
	"math/rand/v2"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/growai/fincoach/internal/models"
	"github.com/growai/fincoach/internal/templates"
)

const defaultSavingsInterest = 3.5

// incomePattern matches the two currency figures of a free-text income
// description such as "₹40,000 - ₹80,000 per month".
var incomePattern = regexp.MustCompile(`₹([\d,]+)\s*-\s*₹([\d,]+)`)

// Generator builds snapshots from an injected template store.
type Generator struct {
	store *templates.Store
}

// New creates a generator over the given template store.
func New(store *templates.Store) *Generator {
	return &Generator{store: store}
}

// Generate produces a complete snapshot for an archetype, the selected banks
// and optional overrides. The only error condition is an unknown archetype
// key; user-supplied figures never fail generation.
func (g *Generator) Generate(profileType string, selectedBanks []string, ov *models.Overrides) (*models.FinancialSnapshot, error) {
	tpl, err := g.store.Profile(profileType)
	if err != nil {
		return nil, err
	}
	if ov == nil {
		ov = &models.Overrides{}
	}

	income := g.GenerateIncome(tpl, ov.IncomePattern)
	expenses := g.GenerateExpenses(tpl)
	banks := g.generateBanks(tpl, selectedBanks, ov)

	totalExpenses := 0
	for _, amount := range expenses {
		totalExpenses += amount
	}
	monthlySavings := income.Monthly - totalExpenses
	savingsRate := 0.0
	if income.Monthly > 0 {
		savingsRate = float64(monthlySavings) / float64(income.Monthly) * 100
	}

	return &models.FinancialSnapshot{
		ID:       uuid.NewString(),
		Profile:  tpl.Profile,
		Income:   income,
		Expenses: expenses,
		Banks:    banks,
		Summary: models.Summary{
			TotalIncome:    income.Monthly,
			TotalExpenses:  totalExpenses,
			MonthlySavings: monthlySavings,
			SavingsRate:    savingsRate,
			NetWorth:       CalculateNetWorth(banks),
		},
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// GenerateIncome draws the monthly income and its 12-month history. A
// declared income pattern with two currency figures takes priority over the
// template range. History months vary independently by ±20% (low/medium
// variability) or ±40% (high).
func (g *Generator) GenerateIncome(tpl *templates.ProfileTemplate, pattern string) models.Income {
	base := 0
	if pattern != "" {
		if m := incomePattern.FindStringSubmatch(pattern); m != nil {
			lo := ParseAmountRange(m[1])
			hi := ParseAmountRange(m[2])
			if lo > 0 && hi > 0 {
				base = RandomInRange(lo, hi)
			}
		}
	}
	if base == 0 {
		base = drawRange(tpl.Income.MonthlyRange)
	}

	variation := 0.2
	if tpl.Income.Variability == "high" {
		variation = 0.4
	}
	history := make([]int, 12)
	for i := range history {
		factor := 1 + (rand.Float64()*2-1)*variation
		history[i] = int(math.Floor(float64(base) * factor))
	}

	return models.Income{
		Monthly:        base,
		Sources:        tpl.Income.Sources,
		Variability:    tpl.Income.Variability,
		MonthlyHistory: history,
	}
}

// GenerateExpenses draws every template expense category independently.
func (g *Generator) GenerateExpenses(tpl *templates.ProfileTemplate) map[string]int {
	expenses := make(map[string]int, len(tpl.Expenses))
	for category, e := range tpl.Expenses {
		expenses[category] = drawRange(e.Range)
	}
	return expenses
}

func (g *Generator) generateBanks(tpl *templates.ProfileTemplate, selectedBanks []string, ov *models.Overrides) map[string]models.BankAccount {
	products := g.store.Products()
	banks := make(map[string]models.BankAccount, len(selectedBanks))
	for _, name := range selectedBanks {
		details := ov.Accounts[name]
		banks[name] = models.BankAccount{
			SavingsAccount: g.GenerateSavingsAccount(details.Savings, products),
			SalaryAccount:  g.GenerateSalaryAccount(details.Salary, products),
			CreditCard:     g.GenerateCreditCard(details.CreditCard, products),
			Loans:          g.GenerateLoans(ov.Debt, details.Loan, tpl, products),
			Investments:    g.GenerateInvestments(details.Investment, tpl, products),
		}
	}
	return banks
}

// GenerateSavingsAccount prefers a declared balance over the product-table
// fallback.
func (g *Generator) GenerateSavingsAccount(d *models.SavingsDetails, products *templates.BankProducts) models.SavingsAccount {
	acct := models.SavingsAccount{
		InterestRate: defaultSavingsInterest,
		Use:          "Savings",
		Description:  "Primary Savings Account",
	}
	if d != nil && d.Balance != "" {
		acct.Balance = ParseAmountRange(d.Balance)
		if rate, ok := parsePercent(d.Interest); ok {
			acct.InterestRate = rate
		}
		if d.Use != "" {
			acct.Use = d.Use
		}
		if d.Description != "" {
			acct.Description = d.Description
		}
		return acct
	}
	acct.Balance = drawRange(products.SavingsAccount.BalanceRange)
	return acct
}

// GenerateSalaryAccount prefers a declared balance over the product-table
// fallback. The monthly transaction count takes the first number of a
// declared range, else a 10-50 draw.
func (g *Generator) GenerateSalaryAccount(d *models.SalaryDetails, products *templates.BankProducts) models.SalaryAccount {
	acct := models.SalaryAccount{Description: "Primary Salary Account"}
	if d != nil && d.Balance != "" {
		acct.Balance = ParseAmountRange(d.Balance)
		acct.Transactions = RandomInRange(10, 50)
		if n := firstNumber(d.Transactions); n > 0 {
			acct.Transactions = n
		}
		if d.Description != "" {
			acct.Description = d.Description
		}
		return acct
	}
	acct.Balance = drawRange(products.SalaryAccount.BalanceRange)
	acct.Transactions = RandomInRange(10, 50)
	return acct
}

// GenerateCreditCard prefers a declared limit and balance. A missing balance
// defaults to 40% of the limit. Utilization is always recomputed from the
// resulting figures.
func (g *Generator) GenerateCreditCard(d *models.CreditCardDetails, products *templates.BankProducts) models.CreditCard {
	card := models.CreditCard{
		Use:         "General Expenses",
		Description: "Primary Credit Card",
	}
	if d != nil && d.Limit != "" {
		card.Limit = ParseAmountRange(d.Limit)
		if d.Balance != "" {
			card.CurrentBalance = ParseAmountRange(d.Balance)
		} else {
			card.CurrentBalance = card.Limit * 40 / 100
		}
		if d.Use != "" {
			card.Use = d.Use
		}
		if d.Description != "" {
			card.Description = d.Description
		}
	} else {
		card.Limit = drawRange(products.CreditCard.LimitRange)
		card.CurrentBalance = card.Limit * 40 / 100
	}
	if card.Limit > 0 {
		card.UtilizationRate = float64(card.CurrentBalance) / float64(card.Limit) * 100
	}
	return card
}

// GenerateLoans builds one bank's loan map. A user-declared debt takes
// priority; this bank's own declared loan is layered on top under its
// normalized type key, so distinct loan types coexist. With neither, the
// archetype's default loan entry is drawn when the template has one. Declared
// loans with no figures fall back to the generic loan-product ranges.
func (g *Generator) GenerateLoans(debt *models.DebtDetails, bankLoan *models.LoanDetails, tpl *templates.ProfileTemplate, products *templates.BankProducts) map[string]models.Loan {
	loans := make(map[string]models.Loan)

	if debt != nil && debt.Type != "" && debt.Type != NoOutstandingLoan {
		key := NormalizeLoanKey(debt.Type)
		loans[key] = models.Loan{
			Principal:      ParseAmountRange(debt.AmountRange),
			EMI:            ParseAmountRange(debt.EMIRange),
			RemainingYears: ParseDurationRange(debt.Remaining),
			Type:           debt.Type,
			Description:    debt.Type + " declared during setup",
		}
	} else if dt, ok := tpl.Debts[tpl.DefaultLoan]; ok && tpl.DefaultLoan != "" {
		name := loanDisplayName(tpl.DefaultLoan)
		loans[tpl.DefaultLoan] = models.Loan{
			Principal:      drawRange(dt.PrincipalRange),
			EMI:            drawRange(dt.EMIRange),
			RemainingYears: drawRange(dt.RemainingYears),
			Type:           name,
			Description:    name,
		}
	}

	if bankLoan != nil && bankLoan.Type != "" {
		key := NormalizeLoanKey(bankLoan.Type)
		principal := ParseAmountRange(bankLoan.Amount)
		emi := ParseAmountRange(bankLoan.EMI)
		if product, ok := products.Loans[key]; ok {
			if principal == 0 {
				principal = drawRange(product.AmountRange)
			}
			if emi == 0 {
				emi = drawRange(product.EMIRange)
			}
		}
		description := bankLoan.Description
		if description == "" {
			description = bankLoan.Type
		}
		loans[key] = models.Loan{
			Principal:      principal,
			EMI:            emi,
			RemainingYears: ParseDurationRange(bankLoan.Tenure),
			Type:           bankLoan.Type,
			Description:    description,
		}
	}

	return loans
}

// GenerateInvestments uses declared non-empty holdings when the user filled
// the investment form at all; otherwise every archetype-listed type is drawn,
// with the generic product table as the last fallback.
func (g *Generator) GenerateInvestments(d *models.InvestmentDetails, tpl *templates.ProfileTemplate, products *templates.BankProducts) map[string]int {
	investments := make(map[string]int)
	if d != nil {
		if d.MutualFunds != "" {
			investments["mutual_funds"] = ParseAmountRange(d.MutualFunds)
		}
		if d.Stocks != "" {
			investments["stocks"] = ParseAmountRange(d.Stocks)
		}
		if d.FixedDeposits != "" {
			investments["fixed_deposits"] = ParseAmountRange(d.FixedDeposits)
		}
		return investments
	}
	source := tpl.Investments
	if len(source) == 0 {
		source = products.Investments
	}
	for name, inv := range source {
		investments[name] = drawRange(inv.Range)
	}
	return investments
}

// CalculateNetWorth sums deposit balances plus mutual-fund, stock and
// fixed-deposit holdings across all banks, minus credit-card balances and
// loan principals. Other investment types are informational and excluded.
func CalculateNetWorth(banks map[string]models.BankAccount) int {
	assets, liabilities := 0, 0
	for _, bank := range banks {
		assets += bank.SavingsAccount.Balance + bank.SalaryAccount.Balance
		assets += bank.Investments["mutual_funds"]
		assets += bank.Investments["stocks"]
		assets += bank.Investments["fixed_deposits"]

		liabilities += bank.CreditCard.CurrentBalance
		for _, loan := range bank.Loans {
			liabilities += loan.Principal
		}
	}
	return assets - liabilities
}

func drawRange(r templates.Range) int {
	return RandomInRange(r.Min, r.Max)
}
