package middleware

import (
	"net/http"

	"github.com/rivergarden/training-backend/config"
)

type CORSMiddleware struct {
	allowedOrigins map[string]bool
}

func NewCORSMiddleware(cfg config.CORSConfig) *CORSMiddleware {
	allowed := make(map[string]bool, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		allowed[origin] = true
	}
	return &CORSMiddleware{allowedOrigins: allowed}
}

func (m *CORSMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		origin := req.Header.Get("Origin")
		if allowed := m.allowOrigin(origin); allowed != "" {
			w.Header().Set("Access-Control-Allow-Origin", allowed)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if allowed != "*" {
				w.Header().Add("Vary", "Origin")
			}
		}

		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, req)
	})
}

// allowOrigin resolves the Allow-Origin header value for a request origin.
// No configured origins means any origin is allowed.
func (m *CORSMiddleware) allowOrigin(origin string) string {
	if len(m.allowedOrigins) == 0 {
		return "*"
	}
	if m.allowedOrigins[origin] {
		return origin
	}
	return ""
}
