// Package models defines data structures for Advisor
package models

import "strings"

// RiskTolerance is the client-declared appetite for volatility.
type RiskTolerance string

const (
	RiskLow    RiskTolerance = "Low"
	RiskMedium RiskTolerance = "Medium"
	RiskHigh   RiskTolerance = "High"
)

// ParseRiskTolerance normalizes a risk tolerance value. Unrecognized values
// fall back to Medium rather than failing — the engine never rejects a
// profile on risk tolerance alone.
func ParseRiskTolerance(s string) RiskTolerance {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return RiskLow
	case "medium":
		return RiskMedium
	case "high":
		return RiskHigh
	default:
		return RiskMedium
	}
}

// Goal is the client's financial goal.
type Goal string

const (
	GoalRetirement Goal = "Retirement"
	GoalEducation  Goal = "Education"
	GoalGrowth     Goal = "Growth"
	// GoalNone is the no-adjustment path used when the stated goal is
	// unrecognized.
	GoalNone Goal = ""
)

// ParseGoal normalizes a goal value. Unrecognized values map to GoalNone,
// which skips the goal adjustment step in the allocator.
func ParseGoal(s string) Goal {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "retirement":
		return GoalRetirement
	case "education":
		return GoalEducation
	case "growth":
		return GoalGrowth
	default:
		return GoalNone
	}
}

// ClientProfile is the investor profile submitted with a recommendation
// request.
type ClientProfile struct {
	Name          string  `json:"name,omitempty"`
	Age           int     `json:"age"`
	Income        float64 `json:"income"`
	RiskTolerance string  `json:"risk_tolerance"`
	Goal          string  `json:"goal"`
}

// Validate checks required fields and documented ranges. Risk tolerance and
// goal must be present but are otherwise normalized, not rejected.
func (p *ClientProfile) Validate() error {
	if p.Age == 0 {
		return &ValidationError{Field: "age", Reason: "age is required"}
	}
	if p.Age < 18 || p.Age > 100 {
		return &ValidationError{Field: "age", Reason: "age must be between 18 and 100"}
	}
	if p.Income <= 0 {
		return &ValidationError{Field: "income", Reason: "income is required and must be positive"}
	}
	if strings.TrimSpace(p.RiskTolerance) == "" {
		return &ValidationError{Field: "risk_tolerance", Reason: "risk_tolerance is required"}
	}
	if strings.TrimSpace(p.Goal) == "" {
		return &ValidationError{Field: "goal", Reason: "goal is required"}
	}
	return nil
}

// DisplayName returns the client name, falling back to "Client".
func (p *ClientProfile) DisplayName() string {
	if strings.TrimSpace(p.Name) == "" {
		return "Client"
	}
	return p.Name
}
