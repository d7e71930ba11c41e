package surrealdb

import (
	"context"
	"fmt"

	"github.com/surrealdb/surrealdb.go"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/mattcarrick/advisor/internal/common"
	"github.com/mattcarrick/advisor/internal/interfaces"
	"github.com/mattcarrick/advisor/internal/models"
)

// PortfolioStore persists one portfolio record per owner. Records are keyed
// by owner ID and fully replaced on every write; last writer wins.
type PortfolioStore struct {
	db     *surrealdb.DB
	logger *common.Logger
}

func NewPortfolioStore(db *surrealdb.DB, logger *common.Logger) *PortfolioStore {
	return &PortfolioStore{
		db:     db,
		logger: logger,
	}
}

func (s *PortfolioStore) Get(ctx context.Context, ownerID string) (*models.PortfolioRecord, error) {
	record, err := surrealdb.Select[models.PortfolioRecord](ctx, s.db, surrealmodels.NewRecordID("portfolio", ownerID))
	if err != nil {
		return nil, fmt.Errorf("failed to select portfolio: %w", err)
	}
	if record == nil || record.OwnerID == "" {
		return nil, fmt.Errorf("portfolio for %s: %w", ownerID, models.ErrNotFound)
	}
	return record, nil
}

func (s *PortfolioStore) Upsert(ctx context.Context, record *models.PortfolioRecord) error {
	sql := "UPSERT type::record('portfolio', $id) CONTENT $portfolio"
	vars := map[string]any{"id": record.OwnerID, "portfolio": record}

	for attempt := 1; attempt <= 3; attempt++ {
		_, err := surrealdb.Query[[]models.PortfolioRecord](ctx, s.db, sql, vars)
		if err == nil {
			return nil
		}
		if attempt == 3 {
			return fmt.Errorf("failed to save portfolio after retries: %w", err)
		}
	}
	return nil
}

func (s *PortfolioStore) Delete(ctx context.Context, ownerID string) error {
	if _, err := s.Get(ctx, ownerID); err != nil {
		return err
	}
	_, err := surrealdb.Delete[models.PortfolioRecord](ctx, s.db, surrealmodels.NewRecordID("portfolio", ownerID))
	if err != nil {
		return fmt.Errorf("failed to delete portfolio: %w", err)
	}
	return nil
}

// Compile-time check
var _ interfaces.PortfolioStore = (*PortfolioStore)(nil)
