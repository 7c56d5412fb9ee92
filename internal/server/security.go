package server

import (
	"net/http"

	"github.com/go-chi/cors"
)

// SecurityConfig controls response hardening and cross-origin access.
type SecurityConfig struct {
	// EnableCORS turns on CORS handling for browser clients.
	EnableCORS bool
	// AllowedOrigins lists accepted origins; "*" accepts any.
	AllowedOrigins []string
	// AllowedMethods lists the methods advertised to preflight requests.
	AllowedMethods []string
	// AllowedHeaders lists the request headers browsers may send.
	AllowedHeaders []string
	// MaxAge is the preflight cache lifetime in seconds.
	MaxAge int
	// MaxBodyBytes caps request bodies. Game payloads are tiny.
	MaxBodyBytes int64
}

// DefaultSecurityConfig returns the configuration used when none is given.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
		MaxBodyBytes:   4 << 10,
	}
}

// SecurityMiddleware sets defensive response headers and bounds the request
// body before calling next.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		if config.MaxBodyBytes > 0 && r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, config.MaxBodyBytes)
		}
		next(w, r)
	}
}

// corsMiddleware returns the CORS handler for config, or a pass-through when
// CORS is disabled.
func corsMiddleware(config SecurityConfig) func(http.Handler) http.Handler {
	if !config.EnableCORS {
		return func(next http.Handler) http.Handler { return next }
	}
	return cors.Handler(cors.Options{
		AllowedOrigins:   config.AllowedOrigins,
		AllowedMethods:   config.AllowedMethods,
		AllowedHeaders:   config.AllowedHeaders,
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           config.MaxAge,
	})
}

// originAllowed reports whether a WebSocket handshake from origin is
// accepted. Requests without an Origin header come from non-browser clients
// and are always accepted.
func originAllowed(config SecurityConfig, origin string) bool {
	if origin == "" || !config.EnableCORS {
		return true
	}
	for _, o := range config.AllowedOrigins {
		if o == "*" || o == origin {
			return true
		}
	}
	return false
}
