package utils

import "math"

// Round2 rounds x to 2 decimal places (banking-style simple round).
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Margin returns net profit over gross revenue as a percentage,
// rounded to one decimal. Zero revenue yields a 0% margin.
func Margin(netProfit, grossRevenue float64) float64 {
	if grossRevenue <= 0 {
		return 0
	}
	return math.Round(netProfit/grossRevenue*1000) / 10
}
