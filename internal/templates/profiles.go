package templates

import "github.com/growai/fincoach/internal/models"

// All monetary values are rupees per month unless the field is a principal or
// corpus figure.

var youngProfessionalTemplate = &ProfileTemplate{
	Profile: models.ProfileInfo{
		Name:           "Young Professional",
		Description:    "Early career professional focused on building financial foundations",
		Type:           YoungProfessional,
		RiskTolerance:  "medium_high",
		FinancialFocus: []string{"emergency_fund", "debt_repayment", "skill_investment"},
	},
	Income: IncomeTemplate{
		MonthlyRange: Range{40000, 80000},
		Variability:  "high",
		Sources:      []string{"freelance_projects", "gig_work"},
	},
	Expenses: map[string]ExpenseTemplate{
		"housing":                  {Range{15000, 22000}, "essential"},
		"food":                     {Range{6000, 9000}, "essential"},
		"transportation":           {Range{4000, 7000}, "essential"},
		"entertainment":            {Range{3000, 6000}, "discretionary"},
		"education_loan":           {Range{8000, 12000}, "debt"},
		"professional_development": {Range{2000, 4000}, "investment"},
	},
	Debts: map[string]DebtTemplate{
		"education_loan": {
			PrincipalRange: Range{500000, 800000},
			EMIRange:       Range{8000, 12000},
			RemainingYears: Range{3, 5},
			InterestRate:   8.5,
		},
	},
	Investments: map[string]InvestmentTemplate{
		"emergency_fund": {Range{80000, 150000}},
		"mutual_funds":   {Range{20000, 80000}},
		"stocks":         {Range{10000, 40000}},
	},
	DefaultLoan: "education_loan",
}

var establishedInvestorTemplate = &ProfileTemplate{
	Profile: models.ProfileInfo{
		Name:           "Established Investor",
		Description:    "Mid-career consultant or business owner focused on wealth accumulation",
		Type:           EstablishedInvestor,
		RiskTolerance:  "medium",
		FinancialFocus: []string{"wealth_accumulation", "tax_optimization", "portfolio_diversification"},
	},
	Income: IncomeTemplate{
		MonthlyRange: Range{120000, 250000},
		Variability:  "medium",
		Sources:      []string{"consulting_projects", "retainer_clients", "business_revenue"},
	},
	Expenses: map[string]ExpenseTemplate{
		"housing":               {Range{30000, 50000}, "essential"},
		"utilities":             {Range{6000, 10000}, "essential"},
		"food":                  {Range{12000, 18000}, "essential"},
		"transportation":        {Range{10000, 15000}, "essential"},
		"children_education":    {Range{15000, 25000}, "essential"},
		"family_insurance":      {Range{8000, 12000}, "essential"},
		"professional_services": {Range{10000, 20000}, "business"},
		"office_space":          {Range{15000, 25000}, "business"},
		"team_salaries":         {Range{30000, 60000}, "business"},
		"entertainment_travel":  {Range{15000, 25000}, "discretionary"},
		"investments_taxes":     {Range{20000, 40000}, "financial"},
	},
	Debts: map[string]DebtTemplate{
		"home_loan": {
			PrincipalRange: Range{3000000, 5000000},
			EMIRange:       Range{30000, 50000},
			RemainingYears: Range{10, 15},
			InterestRate:   8.0,
		},
		"business_loan": {
			PrincipalRange: Range{500000, 1500000},
			EMIRange:       Range{15000, 30000},
			RemainingYears: Range{3, 7},
			InterestRate:   11.0,
		},
	},
	Investments: map[string]InvestmentTemplate{
		"equity_portfolio":  {Range{800000, 2000000}},
		"mutual_funds":      {Range{500000, 1500000}},
		"real_estate":       {Range{2000000, 5000000}},
		"fixed_income":      {Range{500000, 1200000}},
		"retirement_corpus": {Range{1000000, 3000000}},
	},
	DefaultLoan: "home_loan",
}

var retirementFocusedTemplate = &ProfileTemplate{
	Profile: models.ProfileInfo{
		Name:           "Retirement Focused",
		Description:    "Pre-retirement professional planning for financial independence and legacy",
		Type:           RetirementFocused,
		RiskTolerance:  "conservative",
		FinancialFocus: []string{"wealth_preservation", "income_generation", "succession_planning"},
	},
	Income: IncomeTemplate{
		MonthlyRange: Range{150000, 300000},
		Variability:  "low",
		Sources:      []string{"business_revenue", "investment_income", "rental_income", "consulting"},
	},
	Expenses: map[string]ExpenseTemplate{
		"healthcare":            {Range{10000, 20000}, "essential"},
		"housing_maintenance":   {Range{8000, 15000}, "essential"},
		"utilities":             {Range{8000, 12000}, "essential"},
		"food":                  {Range{10000, 15000}, "essential"},
		"family_support":        {Range{10000, 20000}, "essential"},
		"travel_leisure":        {Range{15000, 25000}, "discretionary"},
		"insurance_premiums":    {Range{15000, 25000}, "essential"},
		"business_operations":   {Range{50000, 100000}, "business"},
		"professional_services": {Range{10000, 20000}, "business"},
		"tax_payments":          {Range{25000, 50000}, "financial"},
	},
	Debts: map[string]DebtTemplate{
		"home_loan": {
			PrincipalRange: Range{500000, 1500000},
			EMIRange:       Range{15000, 25000},
			RemainingYears: Range{3, 7},
			InterestRate:   7.5,
		},
		"business_loan": {
			PrincipalRange: Range{1000000, 3000000},
			EMIRange:       Range{30000, 50000},
			RemainingYears: Range{3, 7},
			InterestRate:   10.0,
		},
	},
	Investments: map[string]InvestmentTemplate{
		"retirement_corpus": {Range{3000000, 8000000}},
		"fixed_income":      {Range{2000000, 5000000}},
		"real_estate":       {Range{5000000, 15000000}},
		"equity":            {Range{1000000, 3000000}},
		"gold_commodities":  {Range{500000, 1500000}},
	},
	DefaultLoan: "home_loan",
}
