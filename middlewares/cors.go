package middlewares

import (
	"net/http"
	"os"
	"strings"
)

const defaultCorsOrigin = "http://localhost:3000"

// CorsConfig holds CORS configuration settings.
type CorsConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
}

// LoadCorsConfig builds the CORS policy: the origin named by CORS_ORIGIN,
// GET and POST only, the content-type header, and credentials.
func LoadCorsConfig() *CorsConfig {
	origin := os.Getenv("CORS_ORIGIN")
	if origin == "" {
		origin = defaultCorsOrigin
	}

	return &CorsConfig{
		AllowedOrigins:   []string{origin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"content-type"},
		AllowCredentials: true,
	}
}

// CorsMiddleware creates a CORS middleware based on the provided configuration.
// Preflight requests are answered here and never reach the router.
func CorsMiddleware(config *CorsConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			allowed := origin != "" && contains(config.AllowedOrigins, origin)

			if allowed {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
				if config.AllowCredentials {
					w.Header().Set("Access-Control-Allow-Credentials", "true")
				}
			}

			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "deny")

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				if !allowed || !contains(config.AllowedMethods, r.Header.Get("Access-Control-Request-Method")) {
					w.WriteHeader(http.StatusForbidden)
					return
				}
				w.Header().Set("Access-Control-Allow-Methods", commaSeparated(config.AllowedMethods))
				w.Header().Set("Access-Control-Allow-Headers", commaSeparated(config.AllowedHeaders))
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func contains(arr []string, val string) bool {
	for _, item := range arr {
		if strings.EqualFold(item, val) {
			return true
		}
	}
	return false
}

func commaSeparated(arr []string) string {
	return strings.Join(arr, ", ")
}
