package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"houselyzer/models"
)

func TestCalculateMortgageEndpoint(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(r, "POST", "/calculator/mortgage", map[string]interface{}{
		"homePrice":          500000,
		"downPaymentPercent": 20,
		"interestRate":       6.5,
		"loanTermYears":      30,
		"propertyTaxAnnual":  6000,
		"insuranceAnnual":    1200,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var calc models.MortgageCalculation
	resp := parseResponse(t, w, &calc)
	assert.True(t, resp.Success)
	assert.Equal(t, 400000.0, calc.LoanAmount)
	assert.Equal(t, 500.0, calc.PropertyTax)
	assert.Equal(t, 100.0, calc.Insurance)
	assert.Equal(t, 0.0, calc.PMI)
	assert.InDelta(t, 3128.27, calc.MonthlyPayment, 0.5)
}

func TestCalculateMortgageEndpointValidation(t *testing.T) {
	r := setupRouter(t)

	cases := []map[string]interface{}{
		{"homePrice": 0, "downPaymentPercent": 20, "interestRate": 6.5, "loanTermYears": 30},
		{"homePrice": 500000, "downPaymentPercent": 20, "interestRate": 6.5, "loanTermYears": 0},
		{"homePrice": 500000, "downPaymentPercent": 120, "interestRate": 6.5, "loanTermYears": 30},
		{"homePrice": 500000, "downPaymentPercent": 20, "interestRate": -1, "loanTermYears": 30},
	}
	for _, body := range cases {
		w := doRequest(r, "POST", "/calculator/mortgage", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "%v", body)
	}
}
