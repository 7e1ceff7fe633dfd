package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fitlog/fitlog/internal/handler/dto"
)

func TestHandler_Index(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.True(t, strings.Contains(rec.Body.String(), "Fitlog"))
}

func TestHandler_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	var errResp dto.ErrorResponse
	rec := doJSON(t, router, http.MethodGet, "/api/nope", "", &errResp)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "resource not found", errResp.Message)
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	router, _ := newTestRouter(t)

	var errResp dto.ErrorResponse
	rec := doJSON(t, router, http.MethodDelete, "/api/users", "", &errResp)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "method not allowed", errResp.Message)
}
