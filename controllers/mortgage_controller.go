package controllers

import (
	"net/http"

	"houselyzer/services"

	"github.com/gin-gonic/gin"
)

type MortgageController struct{}

func NewMortgageController() *MortgageController {
	return &MortgageController{}
}

// POST /calculator/mortgage
// Границы входов обрезаются здесь: движок расчёта сам ничего не проверяет
func (mc *MortgageController) Calculate(c *gin.Context) {
	var req struct {
		HomePrice          float64 `json:"homePrice"`
		DownPaymentPercent float64 `json:"downPaymentPercent"`
		InterestRate       float64 `json:"interestRate"`
		LoanTermYears      int     `json:"loanTermYears"`
		PropertyTaxAnnual  float64 `json:"propertyTaxAnnual"`
		InsuranceAnnual    float64 `json:"insuranceAnnual"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}

	if req.HomePrice <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "homePrice must be positive"})
		return
	}
	if req.LoanTermYears <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "loanTermYears must be positive"})
		return
	}
	if req.DownPaymentPercent < 0 || req.DownPaymentPercent > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "downPaymentPercent must be between 0 and 100"})
		return
	}
	if req.InterestRate < 0 || req.PropertyTaxAnnual < 0 || req.InsuranceAnnual < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "interestRate, propertyTaxAnnual and insuranceAnnual must not be negative"})
		return
	}

	calculation := services.CalculateMortgage(
		req.HomePrice,
		req.DownPaymentPercent,
		req.InterestRate,
		req.LoanTermYears,
		req.PropertyTaxAnnual,
		req.InsuranceAnnual,
	)

	c.JSON(http.StatusOK, gin.H{"result": calculation, "success": true})
}
