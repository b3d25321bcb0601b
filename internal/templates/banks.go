package templates

// bankProductTemplates is the generic product table shared by every bank the
// user selects. Bank names themselves are free-form mapping keys.
var bankProductTemplates = &BankProducts{
	SavingsAccount: AccountTemplate{BalanceRange: Range{25000, 200000}},
	SalaryAccount:  AccountTemplate{BalanceRange: Range{50000, 300000}},
	CreditCard:     CreditCardTemplate{LimitRange: Range{25000, 200000}},
	Loans: map[string]LoanProductTemplate{
		"education_loan": {
			AmountRange:  Range{500000, 1200000},
			EMIRange:     Range{8000, 15000},
			InterestRate: [2]float64{8.0, 9.0},
		},
		"home_loan": {
			AmountRange:  Range{2000000, 5000000},
			EMIRange:     Range{20000, 45000},
			InterestRate: [2]float64{7.5, 8.5},
		},
		"personal_loan": {
			AmountRange:  Range{100000, 500000},
			EMIRange:     Range{5000, 12000},
			InterestRate: [2]float64{10.0, 12.0},
		},
		"car_loan": {
			AmountRange:  Range{300000, 800000},
			EMIRange:     Range{8000, 15000},
			InterestRate: [2]float64{8.5, 10.0},
		},
		"business_loan": {
			AmountRange:  Range{500000, 2000000},
			EMIRange:     Range{15000, 35000},
			InterestRate: [2]float64{10.0, 12.0},
		},
	},
	Investments: map[string]InvestmentTemplate{
		"mutual_funds":   {Range{50000, 500000}},
		"stocks":         {Range{25000, 300000}},
		"fixed_deposits": {Range{100000, 1000000}},
		"bonds":          {Range{50000, 300000}},
	},
}
