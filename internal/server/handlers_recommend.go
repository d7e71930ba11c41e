package server

import (
	"net/http"

	"github.com/mattcarrick/advisor/internal/models"
	"github.com/mattcarrick/advisor/internal/services/portfolio"
)

// --- Recommendation handlers ---

// handleRecommend handles POST /api/recommendations — full pipeline through
// the text-generation service.
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var profile models.ClientProfile
	if !DecodeJSON(w, r, &profile) {
		return
	}

	result, err := s.app.AdvisorService.Recommend(r.Context(), profile)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"data":   result,
	})
}

// handleRecommendPreview handles POST /api/recommendations/preview — local
// heuristic allocation with narrative, no external call.
func (s *Server) handleRecommendPreview(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var profile models.ClientProfile
	if !DecodeJSON(w, r, &profile) {
		return
	}

	allocation, explanation, err := s.app.AdvisorService.Preview(profile)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"data": map[string]interface{}{
			"profile":     profile,
			"allocation":  allocation,
			"explanation": explanation,
		},
	})
}

// handleRecommendSummary handles POST /api/recommendations/summary —
// aggregate metrics for a set of recommendation buckets. Query parameters
// sort (name|amount|return|projected|risk) and desc order the returned lines.
func (s *Server) handleRecommendSummary(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var buckets models.RecommendationBuckets
	if !DecodeJSON(w, r, &buckets) {
		return
	}

	summary := s.app.PortfolioService.Summarize(buckets)

	lines := buckets.All()
	if key := r.URL.Query().Get("sort"); key != "" {
		desc := r.URL.Query().Get("desc") == "true"
		portfolio.SortLines(lines, key, desc)
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"data": map[string]interface{}{
			"summary": summary,
			"lines":   lines,
		},
	})
}
