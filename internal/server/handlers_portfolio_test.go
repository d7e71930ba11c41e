package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattcarrick/advisor/internal/models"
)

func TestPortfolioSaveAndGet(t *testing.T) {
	h := newTestServer()

	body := models.PortfolioRecord{
		Name:          "Priya",
		Age:           25,
		Income:        9000000,
		RiskTolerance: "High",
		Goal:          "Retirement",
		Assets: []models.Asset{
			{AssetType: models.BucketStocks, Name: "HDFC Bank", CurrentValue: 250000},
		},
	}

	rec := h.do(jsonRequest(http.MethodPut, "/api/portfolios/user-1", body))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = h.do(httptest.NewRequest(http.MethodGet, "/api/portfolios/user-1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data models.PortfolioRecord `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "user-1", resp.Data.OwnerID)
	assert.Equal(t, "Priya", resp.Data.Name)
	require.Len(t, resp.Data.Assets, 1)
	assert.InDelta(t, 250000, resp.Data.TotalInvestment, 0.01)
	assert.False(t, resp.Data.CreatedAt.IsZero())
}

func TestPortfolioSaveReplaces(t *testing.T) {
	h := newTestServer()

	first := models.PortfolioRecord{
		Name: "Priya",
		Assets: []models.Asset{
			{AssetType: models.BucketStocks, Name: "HDFC Bank", CurrentValue: 250000},
			{AssetType: models.BucketCash, Name: "Liquid Fund", CurrentValue: 50000},
		},
	}
	rec := h.do(jsonRequest(http.MethodPut, "/api/portfolios/user-1", first))
	require.Equal(t, http.StatusOK, rec.Code)

	second := models.PortfolioRecord{
		Name: "Priya",
		Assets: []models.Asset{
			{AssetType: models.BucketBonds, Name: "Tax-Free Bonds", CurrentValue: 100000},
		},
	}
	rec = h.do(jsonRequest(http.MethodPut, "/api/portfolios/user-1", second))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data models.PortfolioRecord `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Assets, 1)
	assert.Equal(t, "Tax-Free Bonds", resp.Data.Assets[0].Name)
}

func TestPortfolioGetNotFound(t *testing.T) {
	h := newTestServer()

	rec := h.do(httptest.NewRequest(http.MethodGet, "/api/portfolios/nobody", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPortfolioDelete(t *testing.T) {
	h := newTestServer()

	rec := h.do(jsonRequest(http.MethodPut, "/api/portfolios/user-1", models.PortfolioRecord{Name: "Priya"}))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = h.do(httptest.NewRequest(http.MethodDelete, "/api/portfolios/user-1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = h.do(httptest.NewRequest(http.MethodGet, "/api/portfolios/user-1", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPortfolioSummary(t *testing.T) {
	h := newTestServer()

	body := models.PortfolioRecord{
		Assets: []models.Asset{
			{AssetType: models.BucketStocks, Name: "HDFC Bank", CurrentValue: 250000},
			{AssetType: models.BucketBonds, Name: "Tax-Free Bonds", CurrentValue: 100000},
			{AssetType: models.BucketCash, Name: "Liquid Fund", CurrentValue: 50000},
		},
	}
	rec := h.do(jsonRequest(http.MethodPut, "/api/portfolios/user-1", body))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = h.do(httptest.NewRequest(http.MethodGet, "/api/portfolios/user-1/summary?sort=amount&desc=true", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Summary models.PortfolioSummary `json:"summary"`
			Lines   []models.InstrumentLine `json:"lines"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.InDelta(t, 400000, resp.Data.Summary.TotalInvestment, 0.01)
	assert.Equal(t, 3, resp.Data.Summary.LineCount)
	assert.InDelta(t, 250000, resp.Data.Summary.CategoryTotals[models.BucketStocks], 0.01)
	require.Len(t, resp.Data.Lines, 3)
	assert.Equal(t, "HDFC Bank", resp.Data.Lines[0].Label)
}

func TestPortfolioSummaryNotFound(t *testing.T) {
	h := newTestServer()

	rec := h.do(httptest.NewRequest(http.MethodGet, "/api/portfolios/nobody/summary", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPortfolioUnknownSubpath(t *testing.T) {
	h := newTestServer()

	rec := h.do(httptest.NewRequest(http.MethodGet, "/api/portfolios/user-1/history", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
