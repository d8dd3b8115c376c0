package mwlogger

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
)

func TestLoggerMiddleware(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(New(log))
	router.Get("/artists", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/artists", nil))

	out := buf.String()
	assert.Contains(t, out, `"msg":"logger middleware enabled"`)
	assert.Contains(t, out, `"msg":"request completed"`)
	assert.Contains(t, out, `"path":"/artists"`)
	assert.Contains(t, out, `"status":418`)
	assert.Contains(t, out, `"request_id":"`)
}
