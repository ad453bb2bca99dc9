package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rivergarden/training-backend/config"
)

func corsHandler(cfg config.CORSConfig) http.Handler {
	return NewCORSMiddleware(cfg).Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
}

func TestCORSDefaultAllowsAnyOrigin(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/courses", nil)
	req.Header.Set("Origin", "https://anywhere.example")

	corsHandler(config.CORSConfig{}).ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}

func TestCORSConfiguredOrigins(t *testing.T) {
	cfg := config.CORSConfig{AllowedOrigins: []string{"https://training.rivergarden.example"}}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/courses", nil)
	req.Header.Set("Origin", "https://training.rivergarden.example")
	corsHandler(cfg).ServeHTTP(rec, req)

	assert.Equal(t, "https://training.rivergarden.example", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Values("Vary"), "Origin")

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/courses", nil)
	req.Header.Set("Origin", "https://evil.example")
	corsHandler(cfg).ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSPreflightShortCircuits(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/enrollments", nil)
	req.Header.Set("Origin", "https://anywhere.example")

	corsHandler(config.CORSConfig{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
