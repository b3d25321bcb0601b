package models

// Overrides carries the optional figures a user declares during profile setup.
// Every field is either declared (non-nil / non-empty) or absent; absent fields
// fall back to template-drawn values during generation. Amount fields hold either
// a literal rupee figure ("250000") or a delimited range ("1,00,000-5,00,000").
type Overrides struct {
	// IncomePattern is free text that may embed a currency range, e.g.
	// "₹40,000 - ₹80,000 per month".
	IncomePattern string `json:"income_pattern,omitempty"`
	// Debt is the user-declared outstanding loan, if any.
	Debt *DebtDetails `json:"debt,omitempty"`
	// Accounts holds per-bank account details keyed by bank name.
	Accounts map[string]BankDetails `json:"account_details,omitempty"`
}

// DebtDetails describes a user-declared loan.
type DebtDetails struct {
	Type        string `json:"type"`
	AmountRange string `json:"amount_range"`
	EMIRange    string `json:"emi_range"`
	Remaining   string `json:"remaining"`
}

// BankDetails groups the per-bank, per-product override figures.
type BankDetails struct {
	Savings    *SavingsDetails    `json:"savings,omitempty"`
	Salary     *SalaryDetails     `json:"salary,omitempty"`
	CreditCard *CreditCardDetails `json:"credit_card,omitempty"`
	Loan       *LoanDetails       `json:"loan,omitempty"`
	Investment *InvestmentDetails `json:"investment,omitempty"`
}

// SavingsDetails describes a declared savings account.
type SavingsDetails struct {
	Balance     string `json:"balance"`
	Interest    string `json:"interest,omitempty"`
	Use         string `json:"use,omitempty"`
	Description string `json:"description,omitempty"`
}

// SalaryDetails describes a declared salary account.
type SalaryDetails struct {
	Balance      string `json:"balance"`
	Transactions string `json:"transactions,omitempty"`
	Description  string `json:"description,omitempty"`
}

// CreditCardDetails describes a declared credit card. Balance is a rupee
// figure, never a utilization percentage.
type CreditCardDetails struct {
	Limit       string `json:"limit"`
	Balance     string `json:"balance,omitempty"`
	Use         string `json:"use,omitempty"`
	Description string `json:"description,omitempty"`
}

// LoanDetails describes a loan held at a specific bank.
type LoanDetails struct {
	Type        string `json:"type"`
	Amount      string `json:"amount"`
	EMI         string `json:"emi"`
	Tenure      string `json:"tenure"`
	Description string `json:"description,omitempty"`
}

// InvestmentDetails describes declared investment holdings.
type InvestmentDetails struct {
	MutualFunds   string `json:"mutual_funds,omitempty"`
	Stocks        string `json:"stocks,omitempty"`
	FixedDeposits string `json:"fixed_deposits,omitempty"`
}
