package models

import "time"

// ProfileInfo is the descriptive metadata copied from the archetype template.
type ProfileInfo struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Type           string   `json:"type"`
	RiskTolerance  string   `json:"risk_tolerance"`
	FinancialFocus []string `json:"financial_focus"`
}

// Income holds the generated income figures for one snapshot.
type Income struct {
	Monthly        int      `json:"monthly"`
	Sources        []string `json:"sources"`
	Variability    string   `json:"variability"`
	MonthlyHistory []int    `json:"monthly_history"`
}

// SavingsAccount is a generated savings account at one bank.
type SavingsAccount struct {
	Balance      int     `json:"balance"`
	InterestRate float64 `json:"interest_rate"`
	Use          string  `json:"use"`
	Description  string  `json:"description"`
}

// SalaryAccount is a generated salary account at one bank.
type SalaryAccount struct {
	Balance      int    `json:"balance"`
	Transactions int    `json:"transactions"`
	Description  string `json:"description"`
}

// CreditCard is a generated credit card at one bank. UtilizationRate is
// always CurrentBalance/Limit*100.
type CreditCard struct {
	Limit           int     `json:"limit"`
	CurrentBalance  int     `json:"current_balance"`
	UtilizationRate float64 `json:"utilization_rate"`
	Use             string  `json:"use"`
	Description     string  `json:"description"`
}

// Loan is one generated loan, keyed in BankAccount.Loans by its normalized type.
type Loan struct {
	Principal      int    `json:"principal"`
	EMI            int    `json:"emi"`
	RemainingYears int    `json:"remaining_years"`
	Type           string `json:"type"`
	Description    string `json:"description"`
}

// BankAccount groups every generated product at a single bank.
type BankAccount struct {
	SavingsAccount SavingsAccount  `json:"savings_account"`
	SalaryAccount  SalaryAccount   `json:"salary_account"`
	CreditCard     CreditCard      `json:"credit_card"`
	Loans          map[string]Loan `json:"loans"`
	Investments    map[string]int  `json:"investments"`
}

// Summary is the derived totals block of a snapshot.
type Summary struct {
	TotalIncome    int     `json:"total_income"`
	TotalExpenses  int     `json:"total_expenses"`
	MonthlySavings int     `json:"monthly_savings"`
	SavingsRate    float64 `json:"savings_rate"`
	NetWorth       int     `json:"net_worth"`
}

// FinancialSnapshot is one fully generated synthetic financial profile.
// Two generations from the same template produce different draws; the stored
// document for a user is replaced wholesale on regeneration.
type FinancialSnapshot struct {
	ID          string                 `json:"id"`
	Profile     ProfileInfo            `json:"profile"`
	Income      Income                 `json:"income"`
	Expenses    map[string]int         `json:"expenses"`
	Banks       map[string]BankAccount `json:"banks"`
	Summary     Summary                `json:"summary"`
	GeneratedAt time.Time              `json:"generated_at"`
}

// TotalInvestments sums every investment holding across all banks.
func (s *FinancialSnapshot) TotalInvestments() int {
	total := 0
	for _, bank := range s.Banks {
		for _, amount := range bank.Investments {
			total += amount
		}
	}
	return total
}

// DebtsByType sums loan principals across all banks, keyed by loan type.
func (s *FinancialSnapshot) DebtsByType() map[string]int {
	debts := make(map[string]int)
	for _, bank := range s.Banks {
		for loanType, loan := range bank.Loans {
			debts[loanType] += loan.Principal
		}
	}
	return debts
}
