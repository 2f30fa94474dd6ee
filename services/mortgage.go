package services

import (
	"math"

	"houselyzer/models"
)

// CalculateMortgage считает разбивку ежемесячного платежа по ипотеке.
// Чистая функция без состояния: входы не валидирует (границы обрезает
// вызывающая сторона), одинаковые входы всегда дают одинаковый результат.
func CalculateMortgage(homePrice, downPaymentPercent, interestRate float64, loanTermYears int, propertyTaxAnnual, insuranceAnnual float64) *models.MortgageCalculation {
	downPayment := homePrice * downPaymentPercent / 100
	loanAmount := homePrice - downPayment
	monthlyRate := interestRate / 100 / 12
	numPayments := float64(loanTermYears * 12)

	var monthlyPI float64
	if monthlyRate > 0 {
		factor := math.Pow(1+monthlyRate, numPayments)
		monthlyPI = loanAmount * monthlyRate * factor / (factor - 1)
	} else {
		// нулевая ставка: равными долями, иначе формула аннуитета делит на ноль
		monthlyPI = loanAmount / numPayments
	}

	totalPayment := monthlyPI * numPayments
	totalInterest := totalPayment - loanAmount

	monthlyTax := propertyTaxAnnual / 12
	monthlyInsurance := insuranceAnnual / 12

	// PMI начисляется, пока собственный капитал меньше 20%
	var pmi float64
	if loanAmount > homePrice*0.8 {
		pmi = loanAmount * 0.005 / 12
	}

	return &models.MortgageCalculation{
		LoanAmount:     loanAmount,
		InterestRate:   interestRate,
		LoanTerm:       loanTermYears,
		DownPayment:    downPayment,
		PropertyTax:    monthlyTax,
		Insurance:      monthlyInsurance,
		PMI:            pmi,
		MonthlyPayment: monthlyPI + monthlyTax + monthlyInsurance + pmi,
		TotalInterest:  totalInterest,
		TotalPayment:   totalPayment,
	}
}
