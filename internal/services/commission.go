package services

import (
	"github.com/shopspring/decimal"
)

// PayoutRate is the share of a tip paid out to the creator after the 5% platform commission.
var PayoutRate = decimal.RequireFromString("0.95")

// NetOfCommission applies the payout rate to an amount in minor units.
func NetOfCommission(amountMinor int64) float64 {
	f, _ := decimal.NewFromInt(amountMinor).Mul(PayoutRate).Float64()
	return f
}

// PayableMinorUnits is the whole minor-unit amount transferable for a tip. Fractions of
// the smallest unit stay with the platform.
func PayableMinorUnits(amountMinor int64) int64 {
	return decimal.NewFromInt(amountMinor).Mul(PayoutRate).Floor().IntPart()
}

// FormatRate renders num/den as a percentage with two decimals, or "0%" when den is zero.
func FormatRate(num, den int64) string {
	if den == 0 {
		return "0%"
	}
	pct := decimal.NewFromInt(num).Mul(decimal.NewFromInt(100)).DivRound(decimal.NewFromInt(den), 2)
	return pct.StringFixed(2) + "%"
}
