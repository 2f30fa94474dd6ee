package models

// MortgageCalculation - разбивка ежемесячного платежа по ипотеке.
// Чистое производное значение, в базе не хранится.
type MortgageCalculation struct {
	LoanAmount     float64 `json:"loanAmount"`
	InterestRate   float64 `json:"interestRate"`
	LoanTerm       int     `json:"loanTerm"`
	DownPayment    float64 `json:"downPayment"`
	PropertyTax    float64 `json:"propertyTax"` // в месяц
	Insurance      float64 `json:"insurance"`   // в месяц
	PMI            float64 `json:"pmi"`         // в месяц
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalInterest  float64 `json:"totalInterest"`
	TotalPayment   float64 `json:"totalPayment"`
}
