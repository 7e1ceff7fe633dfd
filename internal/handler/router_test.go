package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/fitlog/fitlog/internal/service"
	"github.com/fitlog/fitlog/internal/testutil"
)

// newTestRouter builds the API routes over an in-memory store, mirroring
// the wiring in cmd/api.
func newTestRouter(t *testing.T) (*chi.Mux, *testutil.MemStore) {
	t.Helper()

	store := testutil.NewMemStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	userSvc := service.NewUserService(store, nil)
	logSvc := service.NewLogService(store, nil, 100, nil)

	h := New()
	userHandler := NewUserHandler(userSvc, logger)
	logHandler := NewLogHandler(logSvc, logger)

	r := chi.NewRouter()
	r.Get("/", h.Index)
	r.Route("/api", func(r chi.Router) {
		r.Get("/users", userHandler.List)
		r.Post("/users", userHandler.Create)
		r.Get("/users/{id}/logs", logHandler.GetLog)
		r.Post("/users/{id}/exercises", logHandler.CreateExercise)
	})
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r, store
}

// doJSON performs a request with a JSON body and decodes the JSON response
// into out when out is non-nil.
func doJSON(t *testing.T, router http.Handler, method, path, body string, out any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if out != nil {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
	}

	return rec
}

// doForm performs a form-encoded POST and decodes the JSON response into
// out when out is non-nil.
func doForm(t *testing.T, router http.Handler, path, form string, out any) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if out != nil {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
	}

	return rec
}
