package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatCurrency форматирует сумму как "$500,000" (USD) или "450.000 €" (EUR).
// Копейки/центы не показываем - цены объявлений целые.
func FormatCurrency(amount float64, currency string) string {
	rounded := int64(math.Round(amount))
	if currency == "EUR" {
		return groupDigits(rounded, '.') + " €"
	}
	return "$" + groupDigits(rounded, ',')
}

// FormatNumber форматирует число с разделителями тысяч: 1234567 -> "1,234,567"
func FormatNumber(value float64) string {
	return groupDigits(int64(math.Round(value)), ',')
}

func groupDigits(value int64, sep byte) string {
	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}
	s := fmt.Sprintf("%d", value)

	var b strings.Builder
	cnt := 0
	for i := len(s) - 1; i >= 0; i-- {
		b.WriteByte(s[i])
		cnt++
		if cnt%3 == 0 && i != 0 {
			b.WriteByte(sep)
		}
	}

	runes := []rune(b.String())
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return sign + string(runes)
}
