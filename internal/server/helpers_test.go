package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathParam(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/portfolios/user-1/summary", nil)
	assert.Equal(t, "user-1", PathParam(req, "/api/portfolios/", "/summary"))
	assert.Equal(t, "user-1", PathParam(req, "/api/portfolios/", ""))

	other := httptest.NewRequest(http.MethodGet, "/api/users/priya", nil)
	assert.Equal(t, "priya", PathParam(other, "/api/users/", ""))
	assert.Equal(t, "", PathParam(other, "/api/portfolios/", ""))
}

func TestDecodeJSONRejectsBadBody(t *testing.T) {
	h := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/recommendations", nil)
	rec := h.do(req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
