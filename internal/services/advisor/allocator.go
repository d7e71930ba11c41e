// Package advisor implements the allocation and recommendation engine.
package advisor

import (
	"math"

	"github.com/mattcarrick/advisor/internal/models"
)

// Two allocators coexist deliberately, under distinct names:
//
//   - BaselineAllocation: the static risk-tier table. This is the
//     authoritative split sent to the text-generation service.
//   - ComputeAllocation: the age/risk/goal heuristic, used for local
//     previews and narrative explanations. No external call involved.
//
// They are not reconciled with each other; callers pick one path.

// baselineTable maps risk tier to the authoritative percentage split.
var baselineTable = map[models.RiskTolerance]models.AllocationWeights{
	models.RiskLow:    {Stocks: 30, Bonds: 50, Cash: 20},
	models.RiskMedium: {Stocks: 60, Bonds: 30, Cash: 10},
	models.RiskHigh:   {Stocks: 80, Bonds: 15, Cash: 5},
}

// BaselineAllocation returns the static allocation for a risk tier.
// Unrecognized tiers fall back to Medium. Pure lookup, no hidden state.
func BaselineAllocation(risk models.RiskTolerance) models.AllocationWeights {
	if w, ok := baselineTable[risk]; ok {
		return w
	}
	return baselineTable[models.RiskMedium]
}

// ComputeAllocation derives a percentage allocation from age, risk tolerance,
// and goal. Pure and total: it never fails, and the result always sums to
// exactly 100 with every weight non-negative for ages in [18,100].
func ComputeAllocation(age int, risk models.RiskTolerance, goal models.Goal) models.AllocationWeights {
	// Years-to-retirement heuristic: 100 - age, clamped.
	base := clamp(100-age, 20, 90)

	multiplier := 1.0
	switch risk {
	case models.RiskLow:
		multiplier = 0.7
	case models.RiskHigh:
		multiplier = 1.3
	}

	stocks := clamp(int(math.Round(float64(base)*multiplier)), 10, 90)
	bonds := 0
	cash := 0

	switch goal {
	case models.GoalRetirement:
		if age > 50 {
			stocks = max(30, stocks-10)
			// Fixed defensive split, not derived from 100-stocks.
			bonds = 60
			cash = 10
		} else {
			bonds = int(math.Round(float64(100-stocks) * 0.8))
			cash = 100 - stocks - bonds
		}
	case models.GoalEducation:
		stocks = max(40, stocks-5)
		bonds = int(math.Round(float64(100-stocks) * 0.7))
		cash = 100 - stocks - bonds
	case models.GoalGrowth:
		stocks = min(85, stocks+5)
		bonds = int(math.Round(float64(100-stocks) * 0.6))
		cash = 100 - stocks - bonds
	}

	// Reconcile any residual into the bonds bucket.
	if total := stocks + bonds + cash; total != 100 {
		bonds += 100 - total
	}

	return models.AllocationWeights{Stocks: stocks, Bonds: bonds, Cash: cash}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
