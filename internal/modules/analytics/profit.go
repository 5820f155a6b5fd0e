package analytics

import "math"

// ComputeProfit derives a property's bottom line for a period. Profit is
// clamped at zero: a losing month reports zero profit, not a negative
// number, matching how the dashboard presents results. Margin is the
// profit share of income as a fraction of one, rounded to four decimal
// places, zero when there was no income.
func ComputeProfit(income, ownerPayout, expenses float64) (profit, margin float64) {
	profit = income - ownerPayout - expenses
	if profit < 0 {
		profit = 0
	}
	profit = math.Round(profit*100) / 100
	if income > 0 {
		margin = math.Round(profit/income*10000) / 10000
	}
	return profit, margin
}
