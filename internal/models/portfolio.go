package models

import "time"

// Asset is a single holding within a persisted portfolio.
type Asset struct {
	AssetType    string  `json:"asset_type"` // Stocks, Bonds, Cash
	Name         string  `json:"name"`
	Symbol       string  `json:"symbol,omitempty"`
	Quantity     float64 `json:"quantity"`
	CurrentValue float64 `json:"current_value"`
}

// PortfolioRecord is the durable profile + holdings record for one owner.
// It is independent of any single recommendation call: created on first
// save, replaced in full on every subsequent save (no partial-field merge,
// no version history), destroyed only by explicit deletion.
type PortfolioRecord struct {
	OwnerID         string    `json:"owner_id"`
	Name            string    `json:"name,omitempty"`
	Age             int       `json:"age,omitempty"`
	Income          float64   `json:"income,omitempty"`
	RiskTolerance   string    `json:"risk_tolerance,omitempty"`
	Goal            string    `json:"goal,omitempty"`
	Assets          []Asset   `json:"assets"`
	TotalInvestment float64   `json:"total_investment"`
	AnnualSavings   float64   `json:"annual_savings"`
	TimeHorizon     int       `json:"time_horizon"` // years
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// PortfolioSummary is the aggregation of a recommendation's instrument lines:
// totals, projected values, and category/risk rollups. Computed on demand,
// never persisted.
type PortfolioSummary struct {
	TotalInvestment float64            `json:"total_investment"`
	ProjectedValue  float64            `json:"projected_value"`
	CategoryTotals  map[string]float64 `json:"category_totals"`
	RiskTotals      map[string]float64 `json:"risk_totals"`
	LineCount       int                `json:"line_count"`
}
