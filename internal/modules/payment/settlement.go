package payment

import "math"

// ComputeCommission splits a gross amount into the commission retained
// and the payout owed to the property owner. Both halves are rounded to
// cents; the owner share is derived from the rounded commission so the
// two always sum back to the gross amount.
func ComputeCommission(amount, pct float64) (commission, owner float64) {
	commission = math.Round(amount*pct) / 100
	owner = math.Round((amount-commission)*100) / 100
	return commission, owner
}
