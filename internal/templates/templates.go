// Package templates holds the static configuration the generator draws from:
// three archetype profiles and a generic bank-product table. The data is
// immutable; tests substitute alternate tables through NewStoreWith.
package templates

import (
	"errors"

	"github.com/growai/fincoach/internal/models"
)

// ErrUnknownProfile is returned when an archetype key is not in the store.
// There is no safe default archetype, so lookups fail loudly.
var ErrUnknownProfile = errors.New("unknown financial profile type")

// Archetype keys.
const (
	YoungProfessional   = "young_professional"
	EstablishedInvestor = "established_investor"
	RetirementFocused   = "retirement_focused"
)

// Range is an inclusive [Min, Max] bound for a drawn value.
type Range struct {
	Min int
	Max int
}

// IncomeTemplate configures monthly income generation for an archetype.
type IncomeTemplate struct {
	MonthlyRange Range
	// Variability is "low", "medium" or "high" and controls the monthly
	// history perturbation (±20% for low/medium, ±40% for high).
	Variability string
	Sources     []string
}

// ExpenseTemplate configures one expense category.
type ExpenseTemplate struct {
	Range    Range
	Category string
}

// DebtTemplate configures one archetype-specific loan.
type DebtTemplate struct {
	PrincipalRange Range
	EMIRange       Range
	RemainingYears Range
	InterestRate   float64
}

// InvestmentTemplate configures one investment holding.
type InvestmentTemplate struct {
	Range Range
}

// ProfileTemplate is the full static description of one archetype.
type ProfileTemplate struct {
	Profile     models.ProfileInfo
	Income      IncomeTemplate
	Expenses    map[string]ExpenseTemplate
	Debts       map[string]DebtTemplate
	Investments map[string]InvestmentTemplate
	// DefaultLoan names the Debts entry generated when the user declares no
	// debt of their own. Empty means no fallback loan.
	DefaultLoan string
}

// AccountTemplate configures a deposit-account product.
type AccountTemplate struct {
	BalanceRange Range
}

// CreditCardTemplate configures the credit-card product.
type CreditCardTemplate struct {
	LimitRange Range
}

// LoanProductTemplate configures a generic loan product by type.
type LoanProductTemplate struct {
	AmountRange  Range
	EMIRange     Range
	InterestRate [2]float64
}

// BankProducts is the archetype-independent product table, used as the last
// fallback when neither the user nor the archetype supplies a figure.
type BankProducts struct {
	SavingsAccount AccountTemplate
	SalaryAccount  AccountTemplate
	CreditCard     CreditCardTemplate
	Loans          map[string]LoanProductTemplate
	Investments    map[string]InvestmentTemplate
}

// Store resolves archetype keys to templates and exposes the product table.
type Store struct {
	profiles map[string]*ProfileTemplate
	products *BankProducts
}

// NewStore builds a store over the built-in archetype and product tables.
func NewStore() *Store {
	return NewStoreWith(map[string]*ProfileTemplate{
		YoungProfessional:   youngProfessionalTemplate,
		EstablishedInvestor: establishedInvestorTemplate,
		RetirementFocused:   retirementFocusedTemplate,
	}, bankProductTemplates)
}

// NewStoreWith builds a store over caller-supplied tables.
func NewStoreWith(profiles map[string]*ProfileTemplate, products *BankProducts) *Store {
	return &Store{profiles: profiles, products: products}
}

// Profile returns the template for an archetype key.
func (s *Store) Profile(profileType string) (*ProfileTemplate, error) {
	tpl, ok := s.profiles[profileType]
	if !ok {
		return nil, ErrUnknownProfile
	}
	return tpl, nil
}

// Products returns the generic bank-product table.
func (s *Store) Products() *BankProducts {
	return s.products
}
