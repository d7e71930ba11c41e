package server

import (
	"net/http"
	"strings"

	"github.com/mattcarrick/advisor/internal/models"
	"github.com/mattcarrick/advisor/internal/services/portfolio"
)

// --- Portfolio handlers ---

// routePortfolios dispatches /api/portfolios/{owner} and subpaths.
func (s *Server) routePortfolios(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/portfolios/")
	if rest == "" {
		WriteError(w, http.StatusBadRequest, "owner id is required in path")
		return
	}

	ownerID, subpath, _ := strings.Cut(rest, "/")

	switch subpath {
	case "":
		switch r.Method {
		case http.MethodGet:
			s.handlePortfolioGet(w, r, ownerID)
		case http.MethodPut:
			s.handlePortfolioSave(w, r, ownerID)
		case http.MethodDelete:
			s.handlePortfolioDelete(w, r, ownerID)
		default:
			RequireMethod(w, r, http.MethodGet, http.MethodPut, http.MethodDelete)
		}
	case "summary":
		s.handlePortfolioSummary(w, r, ownerID)
	default:
		WriteError(w, http.StatusNotFound, "Not found")
	}
}

// handlePortfolioSummary handles GET /api/portfolios/{owner}/summary —
// aggregation rollups over the stored holdings. Query parameters sort and
// desc order the returned lines.
func (s *Server) handlePortfolioSummary(w http.ResponseWriter, r *http.Request, ownerID string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	record, err := s.app.PortfolioService.GetPortfolio(r.Context(), ownerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	buckets := portfolio.BucketsFromAssets(record.Assets)
	summary := s.app.PortfolioService.Summarize(buckets)

	lines := buckets.All()
	if key := r.URL.Query().Get("sort"); key != "" {
		desc := r.URL.Query().Get("desc") == "true"
		portfolio.SortLines(lines, key, desc)
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"data": map[string]interface{}{
			"owner_id": record.OwnerID,
			"summary":  summary,
			"lines":    lines,
		},
	})
}

// handlePortfolioGet handles GET /api/portfolios/{owner}.
func (s *Server) handlePortfolioGet(w http.ResponseWriter, r *http.Request, ownerID string) {
	record, err := s.app.PortfolioService.GetPortfolio(r.Context(), ownerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"data":   record,
	})
}

// handlePortfolioSave handles PUT /api/portfolios/{owner} — full replace,
// creates the record if absent.
func (s *Server) handlePortfolioSave(w http.ResponseWriter, r *http.Request, ownerID string) {
	var record models.PortfolioRecord
	if !DecodeJSON(w, r, &record) {
		return
	}

	// Path owner is authoritative over any owner in the body
	record.OwnerID = ownerID

	saved, err := s.app.PortfolioService.SavePortfolio(r.Context(), &record)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"data":   saved,
	})
}

// handlePortfolioDelete handles DELETE /api/portfolios/{owner}.
func (s *Server) handlePortfolioDelete(w http.ResponseWriter, r *http.Request, ownerID string) {
	if err := s.app.PortfolioService.DeletePortfolio(r.Context(), ownerID); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
	})
}
