package report

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Growth returns the percentage change from previous to current, one
// decimal place, sign preserved. A zero baseline with a positive current
// value is reported as 100 (full growth from nothing); zero over zero is 0.
// Callers never divide by zero themselves.
func Growth(current, previous decimal.Decimal) float64 {
	if previous.IsZero() {
		if current.IsZero() {
			return 0
		}
		return 100
	}
	return round1(current.Sub(previous).Div(previous).Mul(hundred))
}

// GrowthInt is Growth over plain counts.
func GrowthInt(current, previous int) float64 {
	return Growth(decimal.NewFromInt(int64(current)), decimal.NewFromInt(int64(previous)))
}

// GrowthFloat is Growth over float metrics such as mean durations.
func GrowthFloat(current, previous float64) float64 {
	return Growth(decimal.NewFromFloat(current), decimal.NewFromFloat(previous))
}

// round1 is the single rounding point for every percentage in this package.
func round1(d decimal.Decimal) float64 {
	f, _ := d.Round(1).Float64()
	return f
}

// pctOf returns 100*part/total rounded to one decimal, 0 when total is 0.
func pctOf(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(decimal.NewFromInt(int64(part)).Div(decimal.NewFromInt(int64(total))).Mul(hundred))
}

// pctOfDecimal returns 100*part/total rounded to one decimal, 0 when total
// is zero.
func pctOfDecimal(part, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0
	}
	return round1(part.Div(total).Mul(hundred))
}
