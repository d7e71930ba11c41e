package interfaces

import (
	"context"

	"github.com/mattcarrick/advisor/internal/models"
)

// AdvisorService produces investment recommendations for a client profile.
type AdvisorService interface {
	// Recommend validates the profile, asks the text-generation service to
	// fill each allocation bucket, and returns the assembled result.
	// Fails with *models.ValidationError before any external call, or
	// *models.ExternalServiceError when the call cannot be completed.
	// Unparseable content is not an error — the result carries a raw
	// fallback instead of buckets.
	Recommend(ctx context.Context, profile models.ClientProfile) (*models.RecommendationResult, error)

	// Preview computes the heuristic allocation and its narrative
	// explanation locally, with no external call.
	Preview(profile models.ClientProfile) (models.AllocationWeights, string, error)
}

// PortfolioService manages persisted portfolios and derives summary metrics.
type PortfolioService interface {
	// GetPortfolio retrieves the owner's portfolio record.
	GetPortfolio(ctx context.Context, ownerID string) (*models.PortfolioRecord, error)

	// SavePortfolio fully replaces the owner's portfolio record,
	// creating it if absent. Omitted optional fields are default-filled.
	SavePortfolio(ctx context.Context, record *models.PortfolioRecord) (*models.PortfolioRecord, error)

	// DeletePortfolio removes the owner's portfolio record.
	DeletePortfolio(ctx context.Context, ownerID string) error

	// Summarize computes totals, projected values, and category/risk
	// rollups for a set of recommendation buckets.
	Summarize(buckets models.RecommendationBuckets) models.PortfolioSummary
}
