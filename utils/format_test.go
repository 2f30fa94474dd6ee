package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$500,000", FormatCurrency(500000, "USD"))
	assert.Equal(t, "450.000 €", FormatCurrency(450000, "EUR"))
	assert.Equal(t, "$1,234,568", FormatCurrency(1234567.89, "USD"))
	assert.Equal(t, "$0", FormatCurrency(0.4, "USD"))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "1,200", FormatNumber(1200))
	assert.Equal(t, "999", FormatNumber(999))
	assert.Equal(t, "-12,500", FormatNumber(-12500))
}
