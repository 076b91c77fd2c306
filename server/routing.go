package server

import (
	"net/http"
	"strings"
)

// routes configures all HTTP handlers. Endpoints are registered both
// bare and under /api/ so reverse proxies that strip or keep the
// prefix both work.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.corsMiddleware(s.HandleHealth))
	mux.HandleFunc("/api/health", s.corsMiddleware(s.HandleHealth))
	mux.HandleFunc("/classify", s.corsMiddleware(s.HandleClassify))
	mux.HandleFunc("/api/classify", s.corsMiddleware(s.HandleClassify))
	mux.HandleFunc("/api/upload", s.corsMiddleware(s.HandleUpload))
	mux.HandleFunc("/metrics", s.corsMiddleware(s.HandleMetrics))
	mux.HandleFunc("/api/metrics", s.corsMiddleware(s.HandleMetrics))
	mux.HandleFunc("/api/config", s.corsMiddleware(s.HandleConfig))

	return mux
}

// corsMiddleware adds CORS headers using the configured allowed origins
func (s *Server) corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if origin != "" && s.originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

// originAllowed checks an Origin header against the configured allowed
// origins. Prefix matching allows any port number.
func (s *Server) originAllowed(origin string) bool {
	for _, allowed := range s.cfg.GetServerAllowedOrigins() {
		if strings.HasPrefix(origin, allowed) {
			return true
		}
	}
	return false
}
