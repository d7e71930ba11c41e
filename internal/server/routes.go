package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/mattcarrick/advisor/internal/common"
)

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)
	mux.HandleFunc("/api/config", s.handleConfig)
	mux.HandleFunc("/api/shutdown", s.handleShutdown)

	// Recommendations
	mux.HandleFunc("/api/recommendations", s.handleRecommend)
	mux.HandleFunc("/api/recommendations/preview", s.handleRecommendPreview)
	mux.HandleFunc("/api/recommendations/summary", s.handleRecommendSummary)

	// Portfolios
	mux.HandleFunc("/api/portfolios/", s.routePortfolios)

	// Users
	mux.HandleFunc("/api/users/", s.routeUsers)
	mux.HandleFunc("/api/users", s.handleUserCreate)

	// Auth
	mux.HandleFunc("/api/auth/login", s.handleAuthLogin)
}

// --- System handlers ---

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	ctx := r.Context()

	store := s.app.Storage.InternalStore()

	// Build runtime settings from system KV
	kvAll := map[string]string{}
	for _, key := range []string{"gemini_api_key", "gemini_model"} {
		if val, err := store.GetSystemKV(ctx, key); err == nil && val != "" {
			kvAll[key] = val
		}
	}
	// Mask secrets
	for k, v := range kvAll {
		if strings.Contains(k, "api_key") {
			kvAll[k] = maskSecret(v)
		}
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"runtime_settings":  kvAll,
		"environment":       s.app.Config.Environment,
		"storage_address":   s.app.Config.Storage.Address,
		"storage_namespace": s.app.Config.Storage.Namespace,
		"storage_database":  s.app.Config.Storage.Database,
		"logging_level":     s.app.Config.Logging.Level,
		"gemini_model":      s.app.Config.Clients.Gemini.Model,
		"gemini_configured": s.app.GeminiClient != nil,
	})
}

// handleShutdown handles POST /api/shutdown (dev mode only).
func (s *Server) handleShutdown(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	if s.app.Config.IsProduction() {
		WriteError(w, http.StatusForbidden, "Shutdown endpoint disabled in production")
		return
	}

	s.logger.Info().Msg("Shutdown requested via HTTP endpoint")

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Shutting down gracefully...\n"))

	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}

	if s.shutdownChan != nil {
		go func() {
			time.Sleep(100 * time.Millisecond)
			s.shutdownChan <- struct{}{}
		}()
	}
}

func maskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return "****"
	}
	return s[:4] + "****"
}
