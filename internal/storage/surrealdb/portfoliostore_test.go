package surrealdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattcarrick/advisor/internal/models"
)

func TestPortfolioStoreLifecycle(t *testing.T) {
	db := testDB(t)
	store := NewPortfolioStore(db, testLogger())
	ctx := context.Background()

	record := &models.PortfolioRecord{
		OwnerID:       "user-1",
		Name:          "Priya",
		Age:           25,
		Income:        9000000,
		RiskTolerance: "High",
		Goal:          "Retirement",
		Assets: []models.Asset{
			{AssetType: models.BucketStocks, Name: "HDFC Bank", CurrentValue: 250000},
		},
		TotalInvestment: 250000,
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}

	require.NoError(t, store.Upsert(ctx, record))

	got, err := store.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Priya", got.Name)
	require.Len(t, got.Assets, 1)
	assert.Equal(t, "HDFC Bank", got.Assets[0].Name)

	// Full replace: the asset list is overwritten, not merged.
	record.Assets = []models.Asset{
		{AssetType: models.BucketCash, Name: "Liquid Fund", CurrentValue: 50000},
	}
	require.NoError(t, store.Upsert(ctx, record))

	got, err = store.Get(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, got.Assets, 1)
	assert.Equal(t, "Liquid Fund", got.Assets[0].Name)

	require.NoError(t, store.Delete(ctx, "user-1"))

	_, err = store.Get(ctx, "user-1")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestPortfolioStoreGetMissing(t *testing.T) {
	db := testDB(t)
	store := NewPortfolioStore(db, testLogger())

	_, err := store.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestPortfolioStoreDeleteMissing(t *testing.T) {
	db := testDB(t)
	store := NewPortfolioStore(db, testLogger())

	err := store.Delete(context.Background(), "nobody")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
