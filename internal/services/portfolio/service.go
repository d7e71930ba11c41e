package portfolio

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mattcarrick/advisor/internal/common"
	"github.com/mattcarrick/advisor/internal/interfaces"
	"github.com/mattcarrick/advisor/internal/models"
)

// Service implements the PortfolioService interface.
type Service struct {
	store  interfaces.PortfolioStore
	logger *common.Logger
}

// NewService creates a new portfolio service.
func NewService(store interfaces.PortfolioStore, logger *common.Logger) *Service {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Service{
		store:  store,
		logger: logger,
	}
}

// GetPortfolio retrieves the owner's portfolio record.
func (s *Service) GetPortfolio(ctx context.Context, ownerID string) (*models.PortfolioRecord, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, &models.ValidationError{Field: "owner_id", Reason: "owner_id is required"}
	}
	return s.store.Get(ctx, ownerID)
}

// SavePortfolio fully replaces the owner's record, creating it if absent.
// Omitted optional fields are default-filled; the stored record is returned.
func (s *Service) SavePortfolio(ctx context.Context, record *models.PortfolioRecord) (*models.PortfolioRecord, error) {
	if record == nil {
		return nil, &models.ValidationError{Field: "record", Reason: "record is required"}
	}
	record.OwnerID = strings.TrimSpace(record.OwnerID)
	if record.OwnerID == "" {
		return nil, &models.ValidationError{Field: "owner_id", Reason: "owner_id is required"}
	}

	now := time.Now().UTC()
	record.UpdatedAt = now
	record.CreatedAt = now
	if existing, err := s.store.Get(ctx, record.OwnerID); err == nil {
		record.CreatedAt = existing.CreatedAt
	}

	if record.Assets == nil {
		record.Assets = []models.Asset{}
	}
	if record.TotalInvestment == 0 {
		for _, asset := range record.Assets {
			record.TotalInvestment += asset.CurrentValue
		}
	}

	if err := s.store.Upsert(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save portfolio for %s: %w", record.OwnerID, err)
	}

	s.logger.Debug().
		Str("owner_id", record.OwnerID).
		Int("assets", len(record.Assets)).
		Msg("Portfolio saved")

	return record, nil
}

// DeletePortfolio removes the owner's portfolio record.
func (s *Service) DeletePortfolio(ctx context.Context, ownerID string) error {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return &models.ValidationError{Field: "owner_id", Reason: "owner_id is required"}
	}
	return s.store.Delete(ctx, ownerID)
}

// Summarize computes aggregate metrics for a set of recommendation buckets.
func (s *Service) Summarize(buckets models.RecommendationBuckets) models.PortfolioSummary {
	return Aggregate(buckets)
}

// Ensure Service implements PortfolioService
var _ interfaces.PortfolioService = (*Service)(nil)
