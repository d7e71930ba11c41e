package advisor

import (
	"fmt"
	"strings"

	"github.com/mattcarrick/advisor/internal/models"
)

// BuildExplanation produces the plain-language rationale for a heuristic
// allocation. Deterministic, composed from age band, risk tolerance, and
// goal sentences in that order.
func BuildExplanation(profile models.ClientProfile, allocation models.AllocationWeights) string {
	var b strings.Builder
	b.WriteString("Based on your profile, here's why we recommend this allocation:\n\n")

	switch {
	case profile.Age < 35:
		fmt.Fprintf(&b, "At %d years old, you have a long investment horizon, allowing for higher equity exposure to maximize growth potential. ", profile.Age)
	case profile.Age < 55:
		fmt.Fprintf(&b, "At %d years old, you're in your prime earning years with moderate time horizon, balancing growth with some stability. ", profile.Age)
	default:
		fmt.Fprintf(&b, "At %d years old, we've increased bond allocation to preserve capital while maintaining some growth exposure. ", profile.Age)
	}

	switch models.ParseRiskTolerance(profile.RiskTolerance) {
	case models.RiskLow:
		fmt.Fprintf(&b, "Your conservative risk profile led us to emphasize stability with %d%% bonds and %d%% cash, while still maintaining %d%% stocks for inflation protection. ",
			allocation.Bonds, allocation.Cash, allocation.Stocks)
	case models.RiskMedium:
		fmt.Fprintf(&b, "Your moderate risk tolerance allows for a balanced approach with %d%% stocks for growth and %d%% bonds for stability. ",
			allocation.Stocks, allocation.Bonds)
	case models.RiskHigh:
		fmt.Fprintf(&b, "Your high risk tolerance enables aggressive growth with %d%% stocks, accepting higher volatility for potentially greater returns. ",
			allocation.Stocks)
	}

	switch models.ParseGoal(profile.Goal) {
	case models.GoalRetirement:
		b.WriteString("For retirement planning, we've structured this portfolio to provide long-term growth while gradually becoming more conservative as you approach retirement age.")
	case models.GoalEducation:
		b.WriteString("For education funding, this allocation balances growth potential with capital preservation, ensuring funds will be available when needed.")
	case models.GoalGrowth:
		b.WriteString("For wealth growth, we've maximized equity exposure while maintaining prudent diversification across asset classes.")
	}

	b.WriteString("\n\nThis allocation follows a philosophy of diversified, risk-adjusted portfolio construction tailored to your individual circumstances.")
	return b.String()
}
