package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoint(t *testing.T) {
	h := newTestServer()

	rec := h.do(httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestVersionEndpoint(t *testing.T) {
	h := newTestServer()

	rec := h.do(httptest.NewRequest(http.MethodGet, "/api/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "version")
}

func TestConfigEndpointMasksSecrets(t *testing.T) {
	h := newTestServer()
	h.storage.internal.kv["gemini_api_key"] = "AIzaSyExampleExampleExample"

	rec := h.do(httptest.NewRequest(http.MethodGet, "/api/config", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "AIzaSyExampleExampleExample")
	assert.Contains(t, rec.Body.String(), "AIza****")
}

func TestCorrelationIDGenerated(t *testing.T) {
	h := newTestServer()

	rec := h.do(httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Len(t, rec.Header().Get("X-Correlation-ID"), 8)
}

func TestCorrelationIDPassthrough(t *testing.T) {
	h := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "abc123")
	rec := h.do(req)

	assert.Equal(t, "abc123", rec.Header().Get("X-Correlation-ID"))
}

func TestCORSPreflight(t *testing.T) {
	h := newTestServer()

	rec := h.do(httptest.NewRequest(http.MethodOptions, "/api/recommendations", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "", maskSecret(""))
	assert.Equal(t, "****", maskSecret("abcd"))
	assert.Equal(t, "abcd****", maskSecret("abcdefgh"))
}
