package services

import (
	"math"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ResolvePrice menghitung harga akhir yang ditampilkan dari harga asli,
// persen diskon, dan harga mentah.
//
//   - discount > 0 and original present: round2(original * (1 - discount/100))
//   - original present, discount absent or zero: original
//   - otherwise: rawPrice
//
// Rounding is half-up to 2 places. The result is never negative; malformed
// numbers (NaN, Inf) are treated as absent.
func ResolvePrice(originalPrice *float64, discountPercent *float64, rawPrice float64) float64 {
	original, hasOriginal := finite(originalPrice)
	discount, hasDiscount := finite(discountPercent)

	var price decimal.Decimal
	switch {
	case hasOriginal && hasDiscount && discount > 0:
		pct := decimal.NewFromFloat(math.Min(discount, 100))
		factor := decimal.NewFromInt(1).Sub(pct.Div(hundred))
		price = decimal.NewFromFloat(original).Mul(factor)
	case hasOriginal:
		price = decimal.NewFromFloat(original)
	default:
		if math.IsNaN(rawPrice) || math.IsInf(rawPrice, 0) {
			return 0
		}
		price = decimal.NewFromFloat(rawPrice)
	}

	return clampRound2(price)
}

// EffectiveDiscount returns the discount percent actually applied by
// ResolvePrice, clamped to 0..100; zero when no discount applies.
func EffectiveDiscount(originalPrice *float64, discountPercent *float64) float64 {
	if _, ok := finite(originalPrice); !ok {
		return 0
	}
	discount, ok := finite(discountPercent)
	if !ok || discount <= 0 {
		return 0
	}
	return math.Min(discount, 100)
}

func clampRound2(d decimal.Decimal) float64 {
	// Round rounds half away from zero; for non-negative amounts that is half-up.
	rounded := d.Round(2)
	if rounded.IsNegative() {
		return 0
	}
	f, _ := rounded.Float64()
	return f
}

func finite(v *float64) (float64, bool) {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0, false
	}
	return *v, true
}
