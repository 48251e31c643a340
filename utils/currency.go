package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"IDR": "Rp ",
}

// FormatPrice memformat harga sesuai kode mata uang menu.
// Example: FormatPrice(15000.5, "IDR") -> "Rp 15.000,50", FormatPrice(1250, "SAR") -> "SAR 1,250.00"
func FormatPrice(amount float64, currency string) string {
	code := strings.ToUpper(strings.TrimSpace(currency))
	value := decimal.NewFromFloat(amount).Round(2)
	if value.IsNegative() {
		value = decimal.Zero
	}

	if code == "IDR" {
		return currencySymbols[code] + formatIDR(value)
	}

	formatted := groupThousands(value.StringFixed(2), ",", ".")
	if symbol, ok := currencySymbols[code]; ok {
		return symbol + formatted
	}
	if code == "" {
		return formatted
	}
	return code + " " + formatted
}

// Rupiah: pemisah ribuan "." dan desimal "," hanya jika ada sen.
func formatIDR(value decimal.Decimal) string {
	if value.Equal(value.Truncate(0)) {
		return groupThousands(value.StringFixed(0), ".", ",")
	}
	return groupThousands(value.StringFixed(2), ".", ",")
}

func groupThousands(fixed, thousandSep, decimalSep string) string {
	integerPart, decimalPart, hasDecimal := strings.Cut(fixed, ".")

	var result []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		result = append([]string{integerPart[start:i]}, result...)
	}

	out := strings.Join(result, thousandSep)
	if hasDecimal {
		out += decimalSep + decimalPart
	}
	return out
}
